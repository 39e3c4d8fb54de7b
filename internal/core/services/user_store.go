package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/comitanigiacomo/movewell-api/internal/core/domain"
)

var _ domain.UserRepository = (*UserStore)(nil)

// UserStore keeps session profiles in the key/value store, with an
// email -> id index under movewell_user_email:<email>.
type UserStore struct {
	store domain.KeyValueStore
	mu    sync.Mutex
}

func NewUserStore(store domain.KeyValueStore) *UserStore {
	return &UserStore{store: store}
}

func (s *UserStore) Save(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	owner, err := s.LookupEmail(ctx, user.Email)
	switch {
	case err == nil && owner != user.ID:
		return domain.ErrEmailInUse
	case err != nil && !errors.Is(err, domain.ErrUserNotFound):
		return err
	}

	prev := getItem[*domain.User](ctx, s.store, domain.ScopedKey(domain.KeyUser, user.ID), nil)

	if err := setItem(ctx, s.store, domain.ScopedKey(domain.KeyUser, user.ID), user); err != nil {
		return err
	}
	if err := setItem(ctx, s.store, domain.ScopedKey(domain.KeyUserEmail, user.Email), user.ID); err != nil {
		return err
	}

	if prev != nil && prev.Email != "" && prev.Email != user.Email {
		if err := s.store.Delete(ctx, domain.ScopedKey(domain.KeyUserEmail, prev.Email)); err != nil && !errors.Is(err, domain.ErrKeyNotFound) {
			return fmt.Errorf("user store: release %s: %w", prev.Email, err)
		}
	}
	return nil
}

func (s *UserStore) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user := getItem[*domain.User](ctx, s.store, domain.ScopedKey(domain.KeyUser, id), nil)
	if user == nil || user.ID == "" {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (s *UserStore) LookupEmail(ctx context.Context, email string) (string, error) {
	key := domain.ScopedKey(domain.KeyUserEmail, domain.NormalizeEmail(email))

	raw, err := s.store.Get(ctx, key)
	if errors.Is(err, domain.ErrKeyNotFound) {
		return "", domain.ErrUserNotFound
	}
	if err != nil {
		return "", fmt.Errorf("user store: lookup %s: %w", email, err)
	}

	var id string
	if err := json.Unmarshal(raw, &id); err != nil || id == "" {
		return "", fmt.Errorf("user store: corrupt index entry %s: %q", key, raw)
	}
	return id, nil
}

func (s *UserStore) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, domain.ScopedKey(domain.KeyUser, id)); err != nil && !errors.Is(err, domain.ErrKeyNotFound) {
		return fmt.Errorf("user store: delete %s: %w", id, err)
	}
	return nil
}
