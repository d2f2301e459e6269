// Package auth holds the credential store and the password verifier.
//
// The store is seeded once at startup and immutable afterwards, there is
// no signup flow. Because it never changes after construction it can be
// shared by concurrent requests without locking.
package auth

import (
	"fmt"
)

type (
	User struct {
		ID             uint
		Username       string
		PasswordDigest string
		Admin          bool
	}

	Seed struct {
		Username string
		Password string
		Admin    bool
	}

	Store struct {
		byName map[string]User
		byID   map[uint]User
	}
)

// NewStore hashes every seed password and builds the lookup maps.
// It only returns once the whole seed is usable, so a caller that
// constructs the store before binding its listener cannot serve a
// login attempt against a half-populated store.
func NewStore(seeds []Seed) (*Store, error) {
	s := &Store{
		byName: make(map[string]User, len(seeds)),
		byID:   make(map[uint]User, len(seeds)),
	}
	for i, seed := range seeds {
		if _, dup := s.byName[seed.Username]; dup {
			return nil, fmt.Errorf("duplicate seed user %v", seed.Username)
		}
		digest, err := HashPassword(seed.Password)
		if err != nil {
			return nil, fmt.Errorf("unable to seed user %v, cause %w", seed.Username, err)
		}
		u := User{
			ID:             uint(i + 1),
			Username:       seed.Username,
			PasswordDigest: digest,
			Admin:          seed.Admin,
		}
		s.byName[u.Username] = u
		s.byID[u.ID] = u
	}
	return s, nil
}

// DemoSeed is the fixed account list used by the training scenario.
func DemoSeed() []Seed {
	return []Seed{
		{Username: "admin", Password: "adminpass", Admin: true},
		{Username: "user", Password: "userpass", Admin: false},
	}
}

// FindByUsername is case-sensitive, matching the login form contract.
func (s *Store) FindByUsername(name string) (User, error) {
	u, ok := s.byName[name]
	if !ok {
		return User{}, UserNotFound{Username: name}
	}
	return u, nil
}

func (s *Store) FindByID(id uint) (User, error) {
	u, ok := s.byID[id]
	if !ok {
		return User{}, UserNotFound{ID: id}
	}
	return u, nil
}
