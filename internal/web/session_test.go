package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang.org/x/oauth2"
)

func TestMemorySessionStoreRoundTrip(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	token := &oauth2.Token{AccessToken: "tok"}
	session, err := store.Create(ctx, token, "user1", "Test User")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if session.ID == "" {
		t.Fatal("Create() returned empty session ID")
	}

	got := store.Get(ctx, session.ID)
	if got == nil {
		t.Fatal("Get() returned nil for existing session")
	}
	if got.UserID != "user1" || got.UserName != "Test User" {
		t.Errorf("Get() = %q/%q, want user1/Test User", got.UserID, got.UserName)
	}

	store.Delete(ctx, session.ID)
	if store.Get(ctx, session.ID) != nil {
		t.Error("Get() returned session after Delete()")
	}
}

func TestMemorySessionStoreExpiry(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	session, err := store.Create(ctx, &oauth2.Token{AccessToken: "tok"}, "user1", "Test User")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	store.mu.Lock()
	store.sessions[session.ID].CreatedAt = time.Now().Add(-sessionTTL - time.Minute)
	store.mu.Unlock()

	if store.Get(ctx, session.ID) != nil {
		t.Error("Get() returned expired session")
	}
}

func TestMemorySessionStoreUpdateToken(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	session, err := store.Create(ctx, &oauth2.Token{AccessToken: "old"}, "user1", "Test User")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	store.UpdateToken(ctx, session.ID, &oauth2.Token{AccessToken: "new"})

	got := store.Get(ctx, session.ID)
	if got == nil || got.Token.AccessToken != "new" {
		t.Errorf("token not updated, got %v", got)
	}
}

func TestGuestIDMintsAndReuses(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	minted := guestID(rec, req)
	if minted == "" {
		t.Fatal("guestID() minted empty id")
	}

	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == guestCookieName {
			cookie = c
		}
	}
	if cookie == nil || cookie.Value != minted {
		t.Fatalf("guest cookie not set to minted id")
	}

	// A request carrying the cookie keeps its identity.
	req2 := httptest.NewRequest(http.MethodGet, "/", nil)
	req2.AddCookie(cookie)
	rec2 := httptest.NewRecorder()

	if got := guestID(rec2, req2); got != minted {
		t.Errorf("guestID() = %q, want %q", got, minted)
	}
	if len(rec2.Result().Cookies()) != 0 {
		t.Error("guestID() re-set cookie for known guest")
	}
}
