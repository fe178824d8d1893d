package services

import (
	"context"
	"strings"

	"aliccedress/apperror"
	"aliccedress/models"
	"aliccedress/repositories"
	"aliccedress/utils"

	"github.com/rs/zerolog/log"
)

// SeedAccount is registered when storage holds no credential records.
type SeedAccount struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

// ProfileStore holds the session, the credential records and the profile
// page state (edit mode, draft, logout confirmation). It is not safe for
// concurrent use.
type ProfileStore struct {
	userRepo  *repositories.UserRepository
	passwords utils.PasswordScheme
	seed      *SeedAccount

	records  []models.CredentialRecord
	session  models.Session
	editMode models.EditMode
	snapshot *models.UserProfile
	draft    *models.UserProfile
	logout   models.LogoutState
}

func NewProfileStore(ctx context.Context, userRepo *repositories.UserRepository, passwords utils.PasswordScheme, seed *SeedAccount) (*ProfileStore, error) {
	if passwords == nil {
		passwords = utils.PlainScheme{}
	}
	s := &ProfileStore{
		userRepo:  userRepo,
		passwords: passwords,
		seed:      seed,
		editMode:  models.EditModeViewing,
		logout:    models.LogoutIdle,
	}
	if err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload re-reads credentials and session from storage. The seed account
// is added in memory only; it is written on the next credential change.
func (s *ProfileStore) Reload(ctx context.Context) error {
	records, err := s.userRepo.LoadCredentials(ctx)
	if err != nil {
		return apperror.Wrap(apperror.CodeDependency, err, "failed to load accounts")
	}
	if len(records) == 0 && s.seed != nil {
		hashed, err := s.passwords.Hash(s.seed.Password)
		if err != nil {
			return apperror.Wrap(apperror.CodeInternal, err, "failed to hash seed password")
		}
		records = append(records, models.CredentialRecord{
			Email:    s.seed.Email,
			Password: hashed,
			Profile: models.UserProfile{
				Name:  s.seed.Name,
				Email: s.seed.Email,
				Phone: s.seed.Phone,
			},
		})
	}

	session, err := s.userRepo.LoadSession(ctx)
	if err != nil {
		return apperror.Wrap(apperror.CodeDependency, err, "failed to load session")
	}

	s.records = records
	s.session = session
	s.resetPageState()
	return nil
}

func (s *ProfileStore) IsLoggedIn() bool {
	return s.session.IsLoggedIn && s.session.CurrentProfile != nil
}

func (s *ProfileStore) Session() models.Session {
	return models.Session{
		IsLoggedIn:     s.session.IsLoggedIn,
		CurrentProfile: cloneProfile(s.session.CurrentProfile),
	}
}

func (s *ProfileStore) View() models.ProfileView {
	return models.ProfileView{
		Session:     s.Session(),
		EditMode:    s.editMode,
		Draft:       cloneProfile(s.draft),
		LogoutState: s.logout,
	}
}

// Records returns a copy of the credential records.
func (s *ProfileStore) Records() []models.CredentialRecord {
	records := make([]models.CredentialRecord, len(s.records))
	copy(records, s.records)
	return records
}

// Login starts a session for the first record matching both email and
// password. A mismatch never reveals which of the two was wrong.
func (s *ProfileStore) Login(ctx context.Context, email, password string) (models.UserProfile, error) {
	email = strings.TrimSpace(email)
	for _, record := range s.records {
		if record.Email != email || !s.passwords.Verify(record.Password, password) {
			continue
		}
		profile := record.Profile
		if err := s.startSession(ctx, profile); err != nil {
			return models.UserProfile{}, err
		}
		log.Info().Str("email", email).Msg("user logged in")
		return profile, nil
	}
	return models.UserProfile{}, apperror.ErrInvalidCredentials
}

// Register appends a new credential record and logs the new account in.
func (s *ProfileStore) Register(ctx context.Context, req models.RegisterRequest) (models.UserProfile, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)

	if fields := utils.ValidateStruct(req); len(fields) > 0 {
		return models.UserProfile{}, apperror.Validation("invalid registration data", fields...)
	}
	if s.indexOfEmail(req.Email) >= 0 {
		return models.UserProfile{}, apperror.ErrEmailTaken
	}

	hashed, err := s.passwords.Hash(req.Password)
	if err != nil {
		return models.UserProfile{}, apperror.Wrap(apperror.CodeInternal, err, "failed to hash password")
	}

	profile := models.UserProfile{Name: req.Name, Email: req.Email, Phone: req.Phone}
	records := append(s.Records(), models.CredentialRecord{
		Email:    req.Email,
		Password: hashed,
		Profile:  profile,
	})
	if err := s.userRepo.SaveCredentials(ctx, records); err != nil {
		return models.UserProfile{}, apperror.Wrap(apperror.CodeDependency, err, "failed to save accounts")
	}
	s.records = records

	if err := s.startSession(ctx, profile); err != nil {
		return models.UserProfile{}, err
	}
	log.Info().Str("email", req.Email).Msg("user registered")
	return profile, nil
}

// RequestLogout asks for confirmation before the session is cleared.
func (s *ProfileStore) RequestLogout() error {
	if !s.IsLoggedIn() {
		return apperror.ErrNotLoggedIn
	}
	s.logout = models.LogoutPendingConfirm
	return nil
}

func (s *ProfileStore) CancelLogout() error {
	if s.logout != models.LogoutPendingConfirm {
		return apperror.New(apperror.CodeStateConflict, "no logout pending")
	}
	s.logout = models.LogoutIdle
	return nil
}

// ConfirmLogout clears the session, writes isLoggedIn=false and removes
// the stored profile.
func (s *ProfileStore) ConfirmLogout(ctx context.Context) error {
	if s.logout != models.LogoutPendingConfirm {
		return apperror.New(apperror.CodeStateConflict, "no logout pending")
	}
	if err := s.userRepo.SaveSession(ctx, models.Session{}); err != nil {
		return apperror.Wrap(apperror.CodeDependency, err, "failed to save session")
	}
	s.session = models.Session{}
	s.resetPageState()
	s.logout = models.LogoutDone
	log.Info().Msg("user logged out")
	return nil
}

// StartEditing snapshots the current profile into the draft. Calling it
// while already editing keeps the existing draft.
func (s *ProfileStore) StartEditing() error {
	if !s.IsLoggedIn() {
		return apperror.ErrNotLoggedIn
	}
	if s.editMode == models.EditModeEditing {
		return nil
	}
	s.snapshot = cloneProfile(s.session.CurrentProfile)
	s.draft = cloneProfile(s.session.CurrentProfile)
	s.editMode = models.EditModeEditing
	return nil
}

// UpdateDraft replaces the draft fields. The draft is validated on save.
func (s *ProfileStore) UpdateDraft(fields models.ProfileFields) error {
	if s.editMode != models.EditModeEditing || s.draft == nil {
		return apperror.New(apperror.CodeStateConflict, "profile is not being edited")
	}
	s.draft.Name = fields.Name
	s.draft.Email = fields.Email
	s.draft.Phone = fields.Phone
	if fields.Avatar != "" {
		s.draft.Avatar = fields.Avatar
	}
	return nil
}

// CancelEditing restores the draft to the snapshot and returns to viewing.
func (s *ProfileStore) CancelEditing() {
	if s.editMode != models.EditModeEditing {
		return
	}
	s.draft = cloneProfile(s.snapshot)
	s.editMode = models.EditModeViewing
}

// SaveProfile validates fields and writes them to both the session and
// the credential record of the logged-in email. On any failure the
// previous profile and record stay untouched.
func (s *ProfileStore) SaveProfile(ctx context.Context, fields models.ProfileFields) (models.UserProfile, error) {
	if !s.IsLoggedIn() {
		return models.UserProfile{}, apperror.ErrNotLoggedIn
	}

	fields.Name = strings.TrimSpace(fields.Name)
	fields.Email = strings.TrimSpace(fields.Email)
	fields.Phone = strings.TrimSpace(fields.Phone)
	if invalid := utils.ValidateStruct(fields); len(invalid) > 0 {
		return models.UserProfile{}, apperror.Validation("invalid profile data", invalid...)
	}

	profile := *s.session.CurrentProfile
	profile.Name = fields.Name
	profile.Email = fields.Email
	profile.Phone = fields.Phone
	if fields.Avatar != "" {
		profile.Avatar = fields.Avatar
	}

	if err := s.writeProfile(ctx, profile); err != nil {
		return models.UserProfile{}, err
	}
	s.editMode = models.EditModeViewing
	s.snapshot = nil
	s.draft = nil
	return profile, nil
}

// SetAvatar stores url as the avatar of the logged-in profile. An open
// draft picks up the new avatar too.
func (s *ProfileStore) SetAvatar(ctx context.Context, url string) (models.UserProfile, error) {
	if !s.IsLoggedIn() {
		return models.UserProfile{}, apperror.ErrNotLoggedIn
	}
	profile := *s.session.CurrentProfile
	profile.Avatar = url
	if err := s.writeProfile(ctx, profile); err != nil {
		return models.UserProfile{}, err
	}
	if s.draft != nil {
		s.draft.Avatar = url
	}
	if s.snapshot != nil {
		s.snapshot.Avatar = url
	}
	return profile, nil
}

// writeProfile updates the credential record owned by the session email
// and then the session itself. Memory changes only after both writes
// succeed; a failed session write restores the stored records.
func (s *ProfileStore) writeProfile(ctx context.Context, profile models.UserProfile) error {
	current := s.session.CurrentProfile.Email
	idx := s.indexOfEmail(current)
	if idx < 0 {
		return apperror.New(apperror.CodeStateConflict, "account record not found")
	}
	if profile.Email != current && s.indexOfEmail(profile.Email) >= 0 {
		return apperror.ErrEmailTaken
	}

	records := s.Records()
	records[idx].Email = profile.Email
	records[idx].Profile = profile
	session := models.Session{IsLoggedIn: true, CurrentProfile: &profile}

	if err := s.userRepo.SaveCredentials(ctx, records); err != nil {
		return apperror.Wrap(apperror.CodeDependency, err, "failed to save accounts")
	}
	if err := s.userRepo.SaveSession(ctx, session); err != nil {
		if rbErr := s.userRepo.SaveCredentials(ctx, s.records); rbErr != nil {
			log.Error().Err(rbErr).Msg("failed to restore accounts after session write failure")
		}
		return apperror.Wrap(apperror.CodeDependency, err, "failed to save session")
	}

	s.records = records
	s.session = session
	return nil
}

func (s *ProfileStore) startSession(ctx context.Context, profile models.UserProfile) error {
	session := models.Session{IsLoggedIn: true, CurrentProfile: &profile}
	if err := s.userRepo.SaveSession(ctx, session); err != nil {
		return apperror.Wrap(apperror.CodeDependency, err, "failed to save session")
	}
	s.session = session
	s.resetPageState()
	return nil
}

func (s *ProfileStore) resetPageState() {
	s.editMode = models.EditModeViewing
	s.snapshot = nil
	s.draft = nil
	s.logout = models.LogoutIdle
}

func (s *ProfileStore) indexOfEmail(email string) int {
	for i, record := range s.records {
		if record.Email == email {
			return i
		}
	}
	return -1
}

func cloneProfile(p *models.UserProfile) *models.UserProfile {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}
