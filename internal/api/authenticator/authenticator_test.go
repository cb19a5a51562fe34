package authenticator

import (
	"testing"
	"time"
)

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	a := New("super-secret")
	userID := "0b7aa274-62a5-4f43-8b8a-2d68b7f9a8d0"

	tok, err := a.Issue(userID)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	gotUserID, err := a.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if gotUserID != userID {
		t.Fatalf("userID mismatch: got %q want %q", gotUserID, userID)
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	a := New("secret")
	a.ttl = -1 * time.Second

	tok, err := a.Issue("u1")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := a.Verify(tok); err == nil {
		t.Fatalf("expected error for expired token, got nil")
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := New("right-secret").Issue("u2")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := New("wrong-secret").Verify(tok); err == nil {
		t.Fatalf("expected error for invalid signature, got nil")
	}
}

func TestVerify_MalformedString(t *testing.T) {
	t.Parallel()

	if _, err := New("k").Verify("not.a.jwt"); err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
}

func TestVerify_EmptyUserID(t *testing.T) {
	t.Parallel()

	a := New("k")
	tok, err := a.Issue("")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := a.Verify(tok); err == nil {
		t.Fatalf("expected error for token without user id, got nil")
	}
}
