package store

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/fintrackhq/fintrack/internal/model"
)

// User returns the profile's logged-in user, or nil when nobody is logged in.
func (s *Store) User(ctx context.Context) (*model.User, error) {
	var user model.User
	ok, err := s.getJSON(ctx, keyUser, &user)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &user, nil
}

// SaveUser stores the logged-in user.
func (s *Store) SaveUser(ctx context.Context, user model.User) error {
	return s.setJSON(ctx, keyUser, user)
}

// DeleteUser logs the user out of this profile.
func (s *Store) DeleteUser(ctx context.Context) error {
	return s.kv.Remove(ctx, s.ns.key(keyUser))
}

// The PIN is a single device lock shared by both profiles, so it is stored
// un-namespaced. It is a stored-equality check, not a security boundary.

// SetPIN stores the device PIN.
func (s *Store) SetPIN(ctx context.Context, pin string) error {
	if len(pin) != 4 {
		return fmt.Errorf("pin must be 4 digits")
	}
	return s.kv.Set(ctx, keyPIN, []byte(pin))
}

// VerifyPIN reports whether input matches the stored PIN.
func (s *Store) VerifyPIN(ctx context.Context, input string) (bool, error) {
	stored, ok, err := s.kv.Get(ctx, keyPIN)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	return subtle.ConstantTimeCompare(stored, []byte(input)) == 1, nil
}

// HasPIN reports whether a PIN has been set on this device.
func (s *Store) HasPIN(ctx context.Context) (bool, error) {
	_, ok, err := s.kv.Get(ctx, keyPIN)
	return ok, err
}

// ClearPIN removes the device PIN.
func (s *Store) ClearPIN(ctx context.Context) error {
	return s.kv.Remove(ctx, keyPIN)
}
