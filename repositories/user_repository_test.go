package repositories

import (
	"context"
	"testing"

	"aliccedress/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepositoryCredentials(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	repo := NewUserRepository(storage)

	records, err := repo.LoadCredentials(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)

	require.NoError(t, repo.SaveCredentials(ctx, []models.CredentialRecord{{
		Email:    "anna@example.com",
		Password: "secret",
		Profile:  models.UserProfile{Name: "Анна", Email: "anna@example.com", Phone: "+7 900"},
	}}))

	raw, err := storage.Get(ctx, KeyRegisteredUsers)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"email":"anna@example.com","password":"secret",
		"profile":{"name":"Анна","email":"anna@example.com","phone":"+7 900"}}]`, string(raw))

	records, err = repo.LoadCredentials(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Анна", records[0].Profile.Name)
}

func TestUserRepositorySessionRoundTrip(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	repo := NewUserRepository(storage)

	session, err := repo.LoadSession(ctx)
	require.NoError(t, err)
	assert.False(t, session.IsLoggedIn)

	profile := models.UserProfile{Name: "Анна", Email: "anna@example.com", Phone: "+7 900"}
	require.NoError(t, repo.SaveSession(ctx, models.Session{IsLoggedIn: true, CurrentProfile: &profile}))

	session, err = repo.LoadSession(ctx)
	require.NoError(t, err)
	assert.True(t, session.IsLoggedIn)
	require.NotNil(t, session.CurrentProfile)
	assert.Equal(t, profile, *session.CurrentProfile)

	require.NoError(t, repo.SaveSession(ctx, models.Session{}))
	raw, err := storage.Get(ctx, KeyIsLoggedIn)
	require.NoError(t, err)
	assert.Equal(t, "false", string(raw))
	_, err = storage.Get(ctx, KeyUserData)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestUserRepositoryFlagWithoutProfileIsLoggedOut(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	require.NoError(t, storage.Set(ctx, KeyIsLoggedIn, []byte(`true`)))

	session, err := NewUserRepository(storage).LoadSession(ctx)
	require.NoError(t, err)
	assert.False(t, session.IsLoggedIn)
	assert.Nil(t, session.CurrentProfile)
}
