// Package session keeps server-side session records keyed by an opaque
// random identifier. The client only ever holds that identifier, signed,
// inside the sid cookie; no user data travels in the cookie itself.
package session

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/allegro/bigcache/v3"
)

// TTL is fixed from creation, there is no sliding window.
const TTL = time.Hour

type (
	Record struct {
		ID        string    `json:"id"`
		UserID    uint      `json:"user_id"`
		Admin     bool      `json:"admin"`
		CreatedAt time.Time `json:"created_at"`
		ExpiresAt time.Time `json:"expires_at"`
	}

	Store struct {
		cache *bigcache.BigCache
		now   func() time.Time
	}
)

func NewStore() *Store {
	cache, _ := bigcache.NewBigCache(bigcache.DefaultConfig(TTL))
	return &Store{
		cache: cache,
		now:   time.Now,
	}
}

// Create issues a fresh unguessable identifier. Admin is a snapshot of the
// user's role at login time, gates re-check the live user record.
func (s *Store) Create(userID uint, admin bool) (Record, error) {
	var id [32]byte
	if _, err := rand.Read(id[:]); err != nil {
		return Record{}, fmt.Errorf("unable to generate session id, cause %w", err)
	}
	now := s.now()
	rec := Record{
		ID:        base64.RawURLEncoding.EncodeToString(id[:]),
		UserID:    userID,
		Admin:     admin,
		CreatedAt: now,
		ExpiresAt: now.Add(TTL),
	}
	body, err := json.Marshal(rec)
	if err != nil {
		return Record{}, fmt.Errorf("unable to encode session record, cause %w", err)
	}
	if err := s.cache.Set(rec.ID, body); err != nil {
		return Record{}, fmt.Errorf("unable to store session record, cause %w", err)
	}
	return rec, nil
}

// Resolve returns the record for id, or NotFound when the id is unknown,
// destroyed or past its deadline.
func (s *Store) Resolve(id string) (Record, error) {
	if id == "" {
		return Record{}, NotFound{}
	}
	body, err := s.cache.Get(id)
	if err != nil {
		return Record{}, NotFound{ID: id}
	}
	var rec Record
	if err := json.Unmarshal(body, &rec); err != nil {
		return Record{}, fmt.Errorf("unable to decode session record, cause %w", err)
	}
	// bigcache eviction is lazy, the record carries the authoritative deadline
	if s.now().After(rec.ExpiresAt) {
		s.Destroy(id)
		return Record{}, NotFound{ID: id}
	}
	return rec, nil
}

// Destroy is idempotent, destroying an unknown id is not an error.
func (s *Store) Destroy(id string) {
	_ = s.cache.Delete(id)
}
