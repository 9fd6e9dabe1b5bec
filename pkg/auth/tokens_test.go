package auth

import (
	"testing"
	"time"
)

func newTestManager() *TokenManager {
	return NewTokenManager("test-secret", 15*time.Minute, 7*24*time.Hour)
}

func TestIssuePairAndValidate(t *testing.T) {
	tm := newTestManager()

	access, refresh, err := tm.IssuePair(42)
	if err != nil {
		t.Fatalf("IssuePair failed: %v", err)
	}
	if access == "" || refresh == "" {
		t.Fatal("expected non-empty tokens")
	}
	if access == refresh {
		t.Fatal("access and refresh tokens must differ")
	}

	userID, err := tm.ValidateAccess(access)
	if err != nil {
		t.Fatalf("ValidateAccess failed: %v", err)
	}
	if userID != 42 {
		t.Errorf("expected subject 42, got %d", userID)
	}

	userID, err = tm.ValidateRefresh(refresh)
	if err != nil {
		t.Fatalf("ValidateRefresh failed: %v", err)
	}
	if userID != 42 {
		t.Errorf("expected subject 42, got %d", userID)
	}
}

func TestTokenClassIsEnforced(t *testing.T) {
	tm := newTestManager()

	access, refresh, err := tm.IssuePair(7)
	if err != nil {
		t.Fatalf("IssuePair failed: %v", err)
	}

	if _, err := tm.ValidateRefresh(access); err == nil {
		t.Error("access token must not pass refresh validation")
	}
	if _, err := tm.ValidateAccess(refresh); err == nil {
		t.Error("refresh token must not pass access validation")
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	tm := newTestManager()

	access, err := tm.IssueAccess(9)
	if err != nil {
		t.Fatalf("IssueAccess failed: %v", err)
	}

	tm.now = func() time.Time { return time.Now().Add(16 * time.Minute) }
	if _, err := tm.ValidateAccess(access); err == nil {
		t.Error("expected expired token to be rejected")
	}
}

func TestWrongSecretRejected(t *testing.T) {
	tm := newTestManager()
	other := NewTokenManager("other-secret", 15*time.Minute, 7*24*time.Hour)

	access, err := tm.IssueAccess(3)
	if err != nil {
		t.Fatalf("IssueAccess failed: %v", err)
	}

	if _, err := other.ValidateAccess(access); err == nil {
		t.Error("token signed with a different secret must be rejected")
	}
}

func TestGarbageTokenRejected(t *testing.T) {
	tm := newTestManager()

	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := tm.ValidateAccess(tok); err == nil {
			t.Errorf("expected %q to be rejected", tok)
		}
	}
}
