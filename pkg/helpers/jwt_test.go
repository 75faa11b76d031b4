package helpers

import (
	"strings"
	"testing"
	"time"
)

func newTestJWT(t *testing.T) *JWTManager {
	t.Helper()
	return NewJWTManager("test-secret-at-least-16-chars", time.Hour)
}

func TestGenerateAndParse(t *testing.T) {
	m := newTestJWT(t)

	token, exp, err := m.Generate("user-1")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if token == "" {
		t.Fatal("Generate returned empty token")
	}
	if strings.Count(token, ".") != 2 {
		t.Fatalf("token is not header.payload.signature: %q", token)
	}
	if until := time.Until(exp); until < 59*time.Minute || until > time.Hour {
		t.Fatalf("unexpected expiry: %v from now", until)
	}

	claims, err := m.Parse(token)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Fatalf("UserID = %q, want user-1", claims.UserID)
	}
}

func TestParseRejectsTampered(t *testing.T) {
	m := newTestJWT(t)
	token, _, err := m.Generate("user-1")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := m.Parse(tampered); err == nil {
		t.Fatal("Parse accepted a tampered token")
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	a := NewJWTManager("secret-a-0123456789", time.Hour)
	b := NewJWTManager("secret-b-0123456789", time.Hour)

	token, _, err := a.Generate("user-1")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if _, err := b.Parse(token); err == nil {
		t.Fatal("Parse accepted a token signed with a different secret")
	}
}

func TestParseRejectsExpired(t *testing.T) {
	m := NewJWTManager("test-secret-at-least-16-chars", -time.Minute)
	token, _, err := m.Generate("user-1")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if _, err := m.Parse(token); err == nil {
		t.Fatal("Parse accepted an expired token")
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	m := newTestJWT(t)
	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := m.Parse(tok); err == nil {
			t.Fatalf("Parse accepted %q", tok)
		}
	}
}
