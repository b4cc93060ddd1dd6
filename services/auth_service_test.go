package services

import (
	"errors"
	"testing"

	"github.com/Tanmay0Bhosale/diet-tracker-modern/models"
	"github.com/Tanmay0Bhosale/diet-tracker-modern/utils"
)

var testSecret = []byte("test-secret")

func TestRegister(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testSecret)

	user, token, err := svc.Register("Alice", "alice@example.com", "password123", fptr(165), fptr(60))
	if err != nil {
		t.Fatalf("unexpected error on register: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("expected persisted user with id")
	}
	if token == "" {
		t.Fatal("expected session token")
	}
	if user.Password == "password123" {
		t.Fatal("password must not be stored in plaintext")
	}
	if !utils.CheckPasswordHash("password123", user.Password) {
		t.Fatal("stored hash does not match the password")
	}

	// the token must resolve back to this account
	userID, err := utils.ParseJWT(token, testSecret)
	if err != nil {
		t.Fatalf("failed to parse issued token: %v", err)
	}
	if userID != user.ID {
		t.Fatalf("token carries id %d, want %d", userID, user.ID)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testSecret)

	if _, _, err := svc.Register("Alice", "dup@example.com", "password123", nil, nil); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	_, _, err := svc.Register("Mallory", "dup@example.com", "hunter2", nil, nil)
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	var count int64
	db.Model(&models.User{}).Where("email = ?", "dup@example.com").Count(&count)
	if count != 1 {
		t.Fatalf("expected exactly one account, found %d", count)
	}
}

func TestLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testSecret)

	if _, _, err := svc.Register("Bob", "bob@example.com", "secret", nil, nil); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	user, token, err := svc.Login("bob@example.com", "secret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" || user.Email != "bob@example.com" {
		t.Fatalf("unexpected login result: user=%+v token=%q", user, token)
	}
}

func TestLoginNoEnumerationSignal(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db, testSecret)

	if _, _, err := svc.Register("Bob", "bob@example.com", "secret", nil, nil); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, _, wrongPassword := svc.Login("bob@example.com", "wrong")
	_, _, unknownEmail := svc.Login("nobody@example.com", "secret")

	if !errors.Is(wrongPassword, ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPassword)
	}
	if !errors.Is(unknownEmail, ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", unknownEmail)
	}
	if wrongPassword.Error() != unknownEmail.Error() {
		t.Fatalf("errors must be indistinguishable: %q vs %q",
			wrongPassword.Error(), unknownEmail.Error())
	}
}
