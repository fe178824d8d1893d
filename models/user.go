package models

type UserProfile struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Avatar string `json:"avatar,omitempty"`
}

// CredentialRecord is a registered account. Password holds whatever the
// configured password scheme produced; with the default scheme that is
// the plaintext password.
type CredentialRecord struct {
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Profile  UserProfile `json:"profile"`
}

type Session struct {
	IsLoggedIn     bool         `json:"isLoggedIn"`
	CurrentProfile *UserProfile `json:"currentProfile,omitempty"`
}

type EditMode string

const (
	EditModeViewing EditMode = "viewing"
	EditModeEditing EditMode = "editing"
)

type LogoutState string

const (
	LogoutIdle           LogoutState = "idle"
	LogoutPendingConfirm LogoutState = "pendingConfirm"
	LogoutDone           LogoutState = "loggedOut"
)

// ProfileView is the profile page state returned to clients.
type ProfileView struct {
	Session     Session      `json:"session"`
	EditMode    EditMode     `json:"editMode"`
	Draft       *UserProfile `json:"draft,omitempty"`
	LogoutState LogoutState  `json:"logoutState"`
}
