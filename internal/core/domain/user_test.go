package domain

import (
	"testing"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	t.Run("Should create user with normalized email", func(t *testing.T) {
		t.Parallel()

		dirtyEmail := "  Test.User@Gmail.COM  "

		user, err := NewUser("Sam Doe", dirtyEmail)

		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		expectedEmail := "test.user@gmail.com"
		if user.Email != expectedEmail {
			t.Errorf("Expected email %s, got %s", expectedEmail, user.Email)
		}

		if user.ID == "" {
			t.Error("Expected an id to be assigned")
		}
	})

	t.Run("Should fall back to the default name", func(t *testing.T) {
		t.Parallel()
		user, err := NewUser("   ", "alex@example.com")
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if user.Name != DefaultUserName {
			t.Errorf("Expected %q, got %q", DefaultUserName, user.Name)
		}
	})

	t.Run("Should fail with invalid email", func(t *testing.T) {
		t.Parallel()

		invalid := []string{
			"invalid-email-format",
			"Jane Doe <jane@example.com>",
			"<jane@example.com>",
			"jane@example.com, sam@example.com",
		}
		for _, email := range invalid {
			if _, err := NewUser("Sam", email); err != ErrInvalidEmail {
				t.Errorf("NewUser(%q): expected ErrInvalidEmail, got %v", email, err)
			}
		}
	})
}

func TestNewUser_DistinctIDs(t *testing.T) {
	t.Parallel()

	a, _ := NewUser("", "alex@example.com")
	b, _ := NewUser("", "alex@example.com")

	if a.ID == b.ID {
		t.Error("Expected every new user to get its own id")
	}
}

func TestUser_Merge(t *testing.T) {
	t.Parallel()

	t.Run("Should keep fields that are not provided", func(t *testing.T) {
		t.Parallel()
		user := &User{ID: "1", Name: "Alex Johnson", Email: "alex@example.com"}

		if err := user.Merge("Alex Smith", ""); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if user.Name != "Alex Smith" || user.Email != "alex@example.com" {
			t.Errorf("Unexpected user after merge: %+v", user)
		}
		if user.ID != "1" {
			t.Error("Merge must never change the id")
		}
	})

	t.Run("Should reject an invalid email", func(t *testing.T) {
		t.Parallel()
		user := &User{ID: "1", Name: "Alex", Email: "alex@example.com"}

		if err := user.Merge("", "nope"); err != ErrInvalidEmail {
			t.Errorf("Expected ErrInvalidEmail, got %v", err)
		}
		if err := user.Merge("", "Alex <alex@example.org>"); err != ErrInvalidEmail {
			t.Errorf("Expected ErrInvalidEmail for a display-name address, got %v", err)
		}
		if user.Email != "alex@example.com" {
			t.Error("Email must stay unchanged on error")
		}
	})
}

func TestFullName(t *testing.T) {
	t.Parallel()

	cases := map[string][2]string{
		"Sam Doe": {" Sam ", "Doe"},
		"Sam":     {"Sam", ""},
	}
	for want, in := range cases {
		if got := FullName(in[0], in[1]); got != want {
			t.Errorf("FullName(%q, %q) = %q, want %q", in[0], in[1], got, want)
		}
	}
}
