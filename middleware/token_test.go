package middleware

import (
	"errors"
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret", TokenLifetime)

	token, err := svc.Issue("user-123")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	subject, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if subject != "user-123" {
		t.Fatalf("expected subject user-123, got %s", subject)
	}
}

func TestTokenExpired(t *testing.T) {
	svc := NewTokenService("test-secret", -time.Hour)

	token, err := svc.Issue("user-123")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	_, err = svc.Verify(token)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenTampered(t *testing.T) {
	svc := NewTokenService("test-secret", TokenLifetime)

	token, err := svc.Issue("user-123")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	// flip a character in the signature
	tampered := token[:len(token)-2] + "xx"
	if _, err := svc.Verify(tampered); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for tampered token, got %v", err)
	}
}

func TestTokenWrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", TokenLifetime)
	verifier := NewTokenService("secret-b", TokenLifetime)

	token, err := issuer.Issue("user-123")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := verifier.Verify(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid across secrets, got %v", err)
	}
}

func TestTokenMalformed(t *testing.T) {
	svc := NewTokenService("test-secret", TokenLifetime)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		if _, err := svc.Verify(token); !errors.Is(err, ErrTokenInvalid) {
			t.Fatalf("expected ErrTokenInvalid for %q, got %v", token, err)
		}
	}
}
