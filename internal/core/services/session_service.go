package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/comitanigiacomo/movewell-api/internal/core/domain"
)

// StatsRefresher recomputes a user's persisted stats in the background.
type StatsRefresher interface {
	Enqueue(userID string)
}

// ConversationResetter drops a user's chat history.
type ConversationResetter interface {
	Reset(userID string)
}

type SessionService struct {
	users     domain.UserRepository
	tokens    *TokenService
	refresher StatsRefresher
	chat      ConversationResetter
}

func NewSessionService(users domain.UserRepository, tokens *TokenService, refresher StatsRefresher, chat ConversationResetter) *SessionService {
	return &SessionService{
		users:     users,
		tokens:    tokens,
		refresher: refresher,
		chat:      chat,
	}
}

type LoginInput struct {
	Email    string
	Password string
}

type SignupInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

type UpdateProfileInput struct {
	UserID string
	Name   string
	Email  string
}

type Session struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

// Login opens a session for email. Credentials are only checked for
// presence; a returning email gets its stored profile back.
func (s *SessionService) Login(ctx context.Context, input LoginInput) (*Session, error) {
	if strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return nil, domain.ErrMissingCredentials
	}

	id, err := s.knownID(ctx, input.Email)
	if err != nil {
		return nil, err
	}

	if id != "" {
		user, err := s.users.GetByID(ctx, id)
		if err == nil {
			return s.open(ctx, user)
		}
		if !errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
	}

	user, err := domain.NewUser(domain.DefaultUserName, input.Email)
	if err != nil {
		return nil, err
	}
	if id != "" {
		user.ID = id
	}
	return s.open(ctx, user)
}

func (s *SessionService) Signup(ctx context.Context, input SignupInput) (*Session, error) {
	if strings.TrimSpace(input.FirstName) == "" {
		return nil, domain.ErrMissingName
	}
	if strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return nil, domain.ErrMissingCredentials
	}

	user, err := domain.NewUser(domain.FullName(input.FirstName, input.LastName), input.Email)
	if err != nil {
		return nil, err
	}

	id, err := s.knownID(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if id != "" {
		user.ID = id
	}
	return s.open(ctx, user)
}

// knownID returns the id already indexed for email, or "" for a new address.
// Reusing it is what reopens the data scoped to that id.
func (s *SessionService) knownID(ctx context.Context, email string) (string, error) {
	id, err := s.users.LookupEmail(ctx, email)
	if errors.Is(err, domain.ErrUserNotFound) {
		return "", nil
	}
	return id, err
}

func (s *SessionService) open(ctx context.Context, user *domain.User) (*Session, error) {
	if err := s.users.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("session service: failed to save user: %w", err)
	}

	token, err := s.tokens.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	if s.refresher != nil {
		s.refresher.Enqueue(user.ID)
	}

	return &Session{User: user, Token: token}, nil
}

func (s *SessionService) Current(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.GetByID(ctx, userID)
}

// UpdateProfile merges the provided fields into the stored profile. The user
// id stays fixed when the email changes; the email index moves with it.
func (s *SessionService) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if err := user.Merge(input.Name, input.Email); err != nil {
		return nil, err
	}

	if err := s.users.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("session service: failed to update user: %w", err)
	}
	return user, nil
}

func (s *SessionService) Logout(ctx context.Context, userID string) error {
	if err := s.users.Delete(ctx, userID); err != nil {
		return err
	}
	if s.chat != nil {
		s.chat.Reset(userID)
	}
	return nil
}
