package jwttoken

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := New(Config{
		Secret:    "test-secret-please-rotate",
		Issuer:    "petscare",
		Audience:  "petscare-api",
		AccessTTL: time.Hour,
	})
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	m := newTestManager(t)
	userID := uuid.Must(uuid.NewV7())

	tok, err := m.Issue(userID, "petOwner", "Jamie", "jamie@example.com")
	if err != nil {
		t.Fatal(err)
	}

	claims, err := m.Verify(tok)
	if err != nil {
		t.Fatal(err)
	}
	if claims.UserID != userID {
		t.Errorf("UserID = %s, want %s", claims.UserID, userID)
	}
	if claims.Role != "petOwner" {
		t.Errorf("Role = %q", claims.Role)
	}
	if claims.Email != "jamie@example.com" {
		t.Errorf("Email = %q", claims.Email)
	}
	if claims.IsExpired() {
		t.Error("fresh token reported expired")
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	m := newTestManager(t)
	other, err := New(Config{Secret: "different-secret", Issuer: "petscare", Audience: "petscare-api"})
	if err != nil {
		t.Fatal(err)
	}

	tok, err := other.Issue(uuid.Must(uuid.NewV7()), "admin", "", "")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.Verify(tok); err == nil {
		t.Error("token signed with a different secret verified")
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	m, err := New(Config{
		Secret:    "test-secret-please-rotate",
		AccessTTL: -time.Minute,
	})
	if err != nil {
		t.Fatal(err)
	}
	// New clamps non-positive TTLs, so force it after construction.
	m.cfg.AccessTTL = -time.Minute

	tok, err := m.Issue(uuid.Must(uuid.NewV7()), "petOwner", "", "")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.Verify(tok); err == nil {
		t.Error("expired token verified")
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m := newTestManager(t)
	if _, err := m.Verify("not.a.token"); err == nil {
		t.Error("garbage token verified")
	}
}

func TestNewRequiresSecret(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Error("empty secret accepted")
	}
}
