package service

import (
	"errors"
	"testing"

	"github.com/mindwell-app/mindwell/database"
	"github.com/mindwell-app/mindwell/database/model"
)

func countUsers(t *testing.T) int64 {
	t.Helper()
	var count int64
	if err := database.GetDB().Model(model.User{}).Count(&count).Error; err != nil {
		t.Fatalf("count users: %v", err)
	}
	return count
}

func TestRegisterAndAuthenticate(t *testing.T) {
	setupTestDB(t)
	s := UserService{}

	if err := s.Register("alice", "alice@example.com", "secret123", "secret123"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	user, err := s.Authenticate("alice@example.com", "secret123")
	if err != nil {
		t.Fatalf("Authenticate() error = %v", err)
	}
	if user.Username != "alice" {
		t.Errorf("Authenticate() username = %q, expected %q", user.Username, "alice")
	}
	if user.Password == "secret123" {
		t.Error("password stored in plain text")
	}
}

func TestRegisterPasswordMismatch(t *testing.T) {
	setupTestDB(t)
	s := UserService{}

	err := s.Register("bob", "bob@example.com", "secret123", "different")
	if !errors.Is(err, ErrPasswordMismatch) {
		t.Fatalf("Register() error = %v, expected ErrPasswordMismatch", err)
	}
	if n := countUsers(t); n != 0 {
		t.Errorf("users after failed register = %d, expected 0", n)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	setupTestDB(t)
	s := UserService{}

	if err := s.Register("carol", "carol@example.com", "secret123", "secret123"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	tests := []struct {
		name     string
		username string
		email    string
	}{
		{"duplicate username", "carol", "other@example.com"},
		{"duplicate email", "other", "carol@example.com"},
		{"duplicate both", "carol", "carol@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Register(tt.username, tt.email, "secret123", "secret123")
			if !errors.Is(err, ErrUserExists) {
				t.Fatalf("Register() error = %v, expected ErrUserExists", err)
			}
			if n := countUsers(t); n != 1 {
				t.Errorf("users after conflict = %d, expected 1", n)
			}
		})
	}
}

func TestAuthenticateFailures(t *testing.T) {
	setupTestDB(t)
	s := UserService{}

	if err := s.Register("dave", "dave@example.com", "secret123", "secret123"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "dave@example.com", "wrong"},
		{"unknown email", "nobody@example.com", "secret123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Authenticate(tt.email, tt.password)
			if !errors.Is(err, ErrInvalidCredentials) {
				t.Fatalf("Authenticate() error = %v, expected ErrInvalidCredentials", err)
			}
		})
	}
}
