package jwt

import (
	"testing"
	"time"
)

func TestSignAndParse(t *testing.T) {
	token, err := Sign("user-abc", "a@example.com", time.Hour)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	claims, err := Parse(token)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if claims.ExternalID != "user-abc" {
		t.Errorf("ExternalID = %q", claims.ExternalID)
	}
	if claims.Email != "a@example.com" {
		t.Errorf("Email = %q", claims.Email)
	}
}

func TestParseExpired(t *testing.T) {
	token, err := Sign("user-abc", "", -time.Minute)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if _, err := Parse(token); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestParseGarbage(t *testing.T) {
	if _, err := Parse("not-a-token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}

func TestParseWrongSecret(t *testing.T) {
	token, err := Sign("user-abc", "", time.Hour)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	old := secret
	secret = []byte("different-secret")
	defer func() { secret = old }()

	if _, err := Parse(token); err == nil {
		t.Fatal("expected error for wrong secret")
	}
}
