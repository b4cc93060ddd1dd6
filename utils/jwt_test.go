package utils

import (
	"testing"
	"time"
)

func TestJWTRoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateJWT(42, secret, time.Hour)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	userID, err := ParseJWT(token, secret)
	if err != nil {
		t.Fatalf("failed to parse token: %v", err)
	}
	if userID != 42 {
		t.Fatalf("expected userId 42, got %d", userID)
	}
}

func TestJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT(42, []byte("secret-a"), time.Hour)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	if _, err := ParseJWT(token, []byte("secret-b")); err == nil {
		t.Fatal("expected error for token signed with a different secret")
	}
}

func TestJWTExpired(t *testing.T) {
	secret := []byte("test-secret")
	token, err := GenerateJWT(42, secret, -time.Minute)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	if _, err := ParseJWT(token, secret); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestJWTGarbage(t *testing.T) {
	if _, err := ParseJWT("not.a.token", []byte("test-secret")); err == nil {
		t.Fatal("expected error for malformed token")
	}
}
