package helpers

import (
	"testing"
	"time"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	m := NewJWTManager("test-secret", 30*time.Minute)

	token, exp, err := m.GenerateAccessToken("user-1", "parent")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if until := time.Until(exp); until > 30*time.Minute || until < 29*time.Minute {
		t.Fatalf("unexpected expiry window: %v", until)
	}

	claims, err := m.ParseAccessToken(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != "user-1" || claims.Role != "parent" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAccessTokenWrongSecret(t *testing.T) {
	m := NewJWTManager("test-secret", 30*time.Minute)
	other := NewJWTManager("another-secret", 30*time.Minute)

	token, _, err := m.GenerateAccessToken("user-1", "parent")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := other.ParseAccessToken(token); err == nil {
		t.Fatal("token signed with a different secret must not parse")
	}
}

func TestAccessTokenExpired(t *testing.T) {
	m := NewJWTManager("test-secret", -time.Minute)

	token, _, err := m.GenerateAccessToken("user-1", "parent")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := m.ParseAccessToken(token); err == nil {
		t.Fatal("expired token must not parse")
	}
}
