package jwt

import (
	"testing"
	"time"

	"github.com/MobeenM17/SuswearGProject/config"
)

func newTestManager() *Manager {
	return NewManager(&config.AuthConfig{
		SessionSecret: "test-secret-key-for-unit-testing-2026",
		SessionTTL:    24 * time.Hour,
	})
}

func TestIssueAndParseSession(t *testing.T) {
	m := newTestManager()

	s, err := m.IssueSession(42, "Donor")
	if err != nil {
		t.Fatalf("IssueSession failed: %v", err)
	}
	if s.ID == "" {
		t.Fatal("session id should not be empty")
	}
	if s.RoleToken == s.UserToken {
		t.Error("role and user tokens should differ")
	}

	claims, err := m.ParseSession(s.RoleToken, s.UserToken)
	if err != nil {
		t.Fatalf("ParseSession failed: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("expected UserID=42, got %d", claims.UserID)
	}
	if claims.Role != "Donor" {
		t.Errorf("expected Role=Donor, got %s", claims.Role)
	}
	if claims.ID != s.ID {
		t.Errorf("expected JTI=%s, got %s", s.ID, claims.ID)
	}
	if claims.Issuer != "sustainwear" {
		t.Errorf("expected Issuer=sustainwear, got %s", claims.Issuer)
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl < 23*time.Hour || ttl > 25*time.Hour {
		t.Errorf("expected TTL of about 24h, got %v", ttl)
	}
}

func TestParseSession_SwappedCookies(t *testing.T) {
	m := newTestManager()
	s, _ := m.IssueSession(1, "Staff")

	if _, err := m.ParseSession(s.UserToken, s.RoleToken); err != ErrTokenInvalid {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestParseSession_MixedSessions(t *testing.T) {
	m := newTestManager()
	donor, _ := m.IssueSession(1, "Donor")
	admin, _ := m.IssueSession(2, "Admin")

	// a donor's user cookie next to someone else's admin role cookie
	if _, err := m.ParseSession(admin.RoleToken, donor.UserToken); err != ErrTokenMismatch {
		t.Errorf("expected ErrTokenMismatch, got %v", err)
	}
}

func TestParseToken_InvalidToken(t *testing.T) {
	m := newTestManager()

	_, err := m.ParseToken("invalid.token.string")
	if err == nil {
		t.Error("expected an error for a malformed token")
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	m1 := newTestManager()
	m2 := NewManager(&config.AuthConfig{
		SessionSecret: "different-secret-key",
		SessionTTL:    time.Hour,
	})

	s, _ := m1.IssueSession(1, "Admin")
	if _, err := m2.ParseToken(s.RoleToken); err == nil {
		t.Error("a token signed with another secret must not verify")
	}
}

func TestParseToken_ExpiredToken(t *testing.T) {
	m := NewManager(&config.AuthConfig{
		SessionSecret: "test-secret",
		SessionTTL:    1 * time.Millisecond,
	})

	s, _ := m.IssueSession(1, "Admin")
	time.Sleep(10 * time.Millisecond)

	_, err := m.ParseToken(s.UserToken)
	if err != ErrTokenExpired {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}
