package auth

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStoreSeed(t *testing.T) {
	s, err := NewStore(DemoSeed())
	require.NoError(t, err)

	admin, err := s.FindByUsername("admin")
	require.NoError(t, err)
	require.True(t, admin.Admin)
	require.NotEqual(t, "adminpass", admin.PasswordDigest)

	ok, err := VerifyPassword("adminpass", admin.PasswordDigest)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = VerifyPassword("wrong", admin.PasswordDigest)
	require.NoError(t, err)
	require.False(t, ok)

	user, err := s.FindByID(admin.ID + 1)
	require.NoError(t, err)
	require.Equal(t, "user", user.Username)
	require.False(t, user.Admin)
}

func TestStoreUnknownUser(t *testing.T) {
	s, err := NewStore(nil)
	require.NoError(t, err)

	_, err = s.FindByUsername("ghost")
	var notFound UserNotFound
	if !errors.As(err, &notFound) {
		t.Fatalf("unexpected error for unknown user: %v", err)
	}
	_, err = s.FindByID(42)
	if !errors.As(err, &notFound) {
		t.Fatalf("unexpected error for unknown id: %v", err)
	}
}

func TestStoreRejectsDuplicateSeed(t *testing.T) {
	_, err := NewStore([]Seed{
		{Username: "admin", Password: "a"},
		{Username: "admin", Password: "b"},
	})
	require.Error(t, err)
}

func TestUsernameLookupIsCaseSensitive(t *testing.T) {
	s, err := NewStore(DemoSeed())
	require.NoError(t, err)
	_, err = s.FindByUsername("Admin")
	require.Error(t, err)
}
