package session_test

import (
	"errors"
	"testing"
	"time"

	"github.com/msomdec/youth-portal/internal/domain"
	"github.com/msomdec/youth-portal/internal/session"
)

const testSecret = "test-secret-key-for-session-tests-0123"

func TestContext_StartsLoggedOut(t *testing.T) {
	c := session.NewContext()
	if c.IsLoggedIn() {
		t.Fatal("expected new context to be logged out")
	}
	if _, ok := c.User(); ok {
		t.Fatal("expected no user")
	}
}

func TestContext_LoginLogout(t *testing.T) {
	c := session.NewContext()

	c.Login(domain.User{ID: "1", FirstName: "Asha"})
	if !c.IsLoggedIn() {
		t.Fatal("expected logged in after Login")
	}
	u, ok := c.User()
	if !ok || u.FirstName != "Asha" {
		t.Fatalf("expected Asha, got %+v", u)
	}

	c.Logout()
	if c.IsLoggedIn() {
		t.Fatal("expected IsLoggedIn to be false after Logout")
	}
	if _, ok := c.User(); ok {
		t.Fatal("expected no user after Logout")
	}
}

func TestContext_UserIsACopy(t *testing.T) {
	c := session.NewContext()
	c.Login(domain.User{ID: "1", FirstName: "Asha"})

	u, _ := c.User()
	u.FirstName = "changed"

	again, _ := c.User()
	if again.FirstName != "Asha" {
		t.Fatalf("expected stored user to be unaffected, got %q", again.FirstName)
	}
}

func TestRegistry_PerClient(t *testing.T) {
	r := session.NewRegistry(time.Hour)

	r.Get("a").Login(domain.User{ID: "1"})
	if r.Get("b").IsLoggedIn() {
		t.Fatal("expected client b to be independent of client a")
	}
	if !r.Get("a").IsLoggedIn() {
		t.Fatal("expected client a to stay logged in")
	}
	if r.Len() != 2 {
		t.Fatalf("expected 2 contexts, got %d", r.Len())
	}
}

func TestTokens_IssueAndValidate(t *testing.T) {
	tokens := session.NewTokens(testSecret, time.Hour)

	id, token, err := tokens.Issue()
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	got, err := tokens.Validate(token)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if got != id {
		t.Fatalf("expected client id %q, got %q", id, got)
	}
}

func TestTokens_Rejects(t *testing.T) {
	tokens := session.NewTokens(testSecret, time.Hour)
	_, token, err := tokens.Issue()
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	expired := session.NewTokens(testSecret, -time.Minute)
	_, old, err := expired.Issue()
	if err != nil {
		t.Fatalf("Issue expired: %v", err)
	}

	cases := map[string]struct {
		tokens *session.Tokens
		token  string
	}{
		"garbage":      {tokens, "not-a-valid-jwt"},
		"tampered":     {tokens, token[:len(token)-5] + "XXXXX"},
		"wrong secret": {session.NewTokens("another-secret-another-secret-000", time.Hour), token},
		"expired":      {tokens, old},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := tc.tokens.Validate(tc.token); !errors.Is(err, domain.ErrUnauthorized) {
				t.Fatalf("expected ErrUnauthorized, got %v", err)
			}
		})
	}
}
