package session

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCreateResolve(t *testing.T) {
	s := NewStore()
	rec, err := s.Create(7, true)
	require.NoError(t, err)
	require.NotEmpty(t, rec.ID)
	require.Equal(t, TTL, rec.ExpiresAt.Sub(rec.CreatedAt))

	got, err := s.Resolve(rec.ID)
	require.NoError(t, err)
	require.Equal(t, uint(7), got.UserID)
	require.True(t, got.Admin)
}

func TestCreateIssuesUniqueIDs(t *testing.T) {
	s := NewStore()
	a, err := s.Create(1, false)
	require.NoError(t, err)
	b, err := s.Create(1, false)
	require.NoError(t, err)
	require.NotEqual(t, a.ID, b.ID)
}

func TestResolveUnknown(t *testing.T) {
	s := NewStore()
	_, err := s.Resolve("no-such-session")
	var notFound NotFound
	if !errors.As(err, &notFound) {
		t.Fatalf("unexpected error for unknown session: %v", err)
	}
	_, err = s.Resolve("")
	if !errors.As(err, &notFound) {
		t.Fatalf("unexpected error for empty session id: %v", err)
	}
}

func TestResolveExpired(t *testing.T) {
	s := NewStore()
	rec, err := s.Create(1, false)
	require.NoError(t, err)

	s.now = func() time.Time { return time.Now().Add(TTL + time.Minute) }
	_, err = s.Resolve(rec.ID)
	var notFound NotFound
	if !errors.As(err, &notFound) {
		t.Fatalf("expired session should not resolve, got: %v", err)
	}
}

func TestDestroyIsIdempotent(t *testing.T) {
	s := NewStore()
	rec, err := s.Create(1, false)
	require.NoError(t, err)

	s.Destroy(rec.ID)
	_, err = s.Resolve(rec.ID)
	require.Error(t, err)

	// destroying again must not blow up
	s.Destroy(rec.ID)
	s.Destroy("never-existed")
}
