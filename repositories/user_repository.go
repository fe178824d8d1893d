package repositories

import (
	"context"
	"fmt"

	"aliccedress/models"
)

type UserRepository struct {
	storage Storage
}

func NewUserRepository(storage Storage) *UserRepository {
	return &UserRepository{storage: storage}
}

func (r *UserRepository) LoadCredentials(ctx context.Context) ([]models.CredentialRecord, error) {
	records := []models.CredentialRecord{}
	found, err := loadJSON(ctx, r.storage, KeyRegisteredUsers, &records)
	if err != nil {
		return nil, err
	}
	if !found || records == nil {
		records = []models.CredentialRecord{}
	}
	return records, nil
}

func (r *UserRepository) SaveCredentials(ctx context.Context, records []models.CredentialRecord) error {
	if records == nil {
		records = []models.CredentialRecord{}
	}
	return saveJSON(ctx, r.storage, KeyRegisteredUsers, records)
}

// LoadSession reads isLoggedIn and userData. A logged-in flag without a
// stored profile is treated as logged out.
func (r *UserRepository) LoadSession(ctx context.Context) (models.Session, error) {
	var loggedIn bool
	if _, err := loadJSON(ctx, r.storage, KeyIsLoggedIn, &loggedIn); err != nil {
		return models.Session{}, err
	}
	if !loggedIn {
		return models.Session{}, nil
	}

	var profile models.UserProfile
	found, err := loadJSON(ctx, r.storage, KeyUserData, &profile)
	if err != nil {
		return models.Session{}, err
	}
	if !found {
		return models.Session{}, nil
	}
	return models.Session{IsLoggedIn: true, CurrentProfile: &profile}, nil
}

// SaveSession writes isLoggedIn and either writes or removes userData.
func (r *UserRepository) SaveSession(ctx context.Context, session models.Session) error {
	if err := saveJSON(ctx, r.storage, KeyIsLoggedIn, session.IsLoggedIn); err != nil {
		return err
	}
	if session.IsLoggedIn && session.CurrentProfile != nil {
		return saveJSON(ctx, r.storage, KeyUserData, session.CurrentProfile)
	}
	if err := r.storage.Remove(ctx, KeyUserData); err != nil {
		return fmt.Errorf("remove %s: %w", KeyUserData, err)
	}
	return nil
}
