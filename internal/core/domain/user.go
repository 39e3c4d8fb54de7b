package domain

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrMissingCredentials = errors.New("email and password are required")
	ErrMissingName        = errors.New("first name is required")
	ErrEmailInUse         = errors.New("email already belongs to another user")
)

const DefaultUserName = "Alex Johnson"

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserRepository stores profiles by id and keeps an email index next to them.
// The index survives Delete, so an address keeps pointing at its id (and the
// data scoped to it) after a logout.
type UserRepository interface {
	// Save writes the profile and claims its email, releasing the previous
	// address. It returns ErrEmailInUse when the email is indexed to another id.
	Save(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	// LookupEmail returns the id indexed for email, or ErrUserNotFound.
	LookupEmail(ctx context.Context, email string) (string, error)
	// Delete removes the profile only.
	Delete(ctx context.Context, id string) error
}

func NewUser(name, email string) (*User, error) {
	email = NormalizeEmail(email)
	if !isValidEmail(email) {
		return nil, ErrInvalidEmail
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultUserName
	}

	return &User{
		ID:    uuid.NewString(),
		Name:  name,
		Email: email,
	}, nil
}

// Merge applies the non-empty fields of a profile update.
func (u *User) Merge(name, email string) error {
	if email = NormalizeEmail(email); email != "" {
		if !isValidEmail(email) {
			return ErrInvalidEmail
		}
		u.Email = email
	}
	if name = strings.TrimSpace(name); name != "" {
		u.Name = name
	}
	return nil
}

// FullName joins first and last name the way the signup form does.
func FullName(first, last string) string {
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}

// NormalizeEmail is the form emails are stored and indexed under.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func isValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
