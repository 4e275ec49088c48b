package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func fakeAmadeus(t *testing.T, calls *int32) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/security/oauth2/token" {
			http.NotFound(w, r)
			return
		}
		if calls != nil {
			atomic.AddInt32(calls, 1)
		}
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
			return
		}
		if r.PostForm.Get("grant_type") != "client_credentials" {
			t.Errorf("grant_type = %q", r.PostForm.Get("grant_type"))
		}

		w.Header().Set("Content-Type", "application/json")
		switch r.PostForm.Get("client_secret") {
		case "good":
			w.Write([]byte(`{"access_token":"tok-` + r.PostForm.Get("client_id") + `","token_type":"Bearer","expires_in":1799,"scope":"read"}`))
		case "garbled":
			w.Write([]byte(`not json`))
		default:
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"invalid_client","error_description":"Client credentials are invalid"}`))
		}
	}))
}

func TestCheckCredentials(t *testing.T) {
	srv := fakeAmadeus(t, nil)
	defer srv.Close()
	c := NewAmadeusClient("", "", srv.URL)

	info, err := c.CheckCredentials(context.Background(), "id", "good")
	if err != nil {
		t.Fatal(err)
	}
	if info.TokenType != "Bearer" || info.ExpiresIn != 1799 || info.Scope != "read" {
		t.Errorf("unexpected token info %+v", info)
	}
}

func TestCheckCredentialsRejected(t *testing.T) {
	srv := fakeAmadeus(t, nil)
	defer srv.Close()
	c := NewAmadeusClient("", "", srv.URL)

	_, err := c.CheckCredentials(context.Background(), "id", "bad")
	var perr *ProviderError
	if !errors.As(err, &perr) {
		t.Fatalf("got %v, want ProviderError", err)
	}
	if perr.StatusCode != http.StatusUnauthorized || perr.Message != "Client credentials are invalid" {
		t.Errorf("unexpected provider error %+v", perr)
	}
}

func TestCheckCredentialsGarbledBody(t *testing.T) {
	srv := fakeAmadeus(t, nil)
	defer srv.Close()
	c := NewAmadeusClient("", "", srv.URL)

	_, err := c.CheckCredentials(context.Background(), "id", "garbled")
	var perr *ProviderError
	if err == nil || errors.As(err, &perr) {
		t.Errorf("got %v, want a non-provider error", err)
	}
}

func TestCheckCredentialsFallsBackToConfigured(t *testing.T) {
	srv := fakeAmadeus(t, nil)
	defer srv.Close()

	if _, err := NewAmadeusClient("", "", srv.URL).CheckCredentials(context.Background(), "", ""); !errors.Is(err, ErrMissingCredentials) {
		t.Errorf("got %v, want ErrMissingCredentials", err)
	}

	c := NewAmadeusClient("cfg-id", "good", srv.URL)
	if _, err := c.CheckCredentials(context.Background(), "", ""); err != nil {
		t.Errorf("configured credentials: %v", err)
	}
}

func TestTokenIsCached(t *testing.T) {
	var calls int32
	srv := fakeAmadeus(t, &calls)
	defer srv.Close()
	c := NewAmadeusClient("me", "good", srv.URL)

	for i := 0; i < 3; i++ {
		tok, err := c.Token(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		if tok != "tok-me" {
			t.Errorf("token = %q", tok)
		}
	}
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Errorf("token endpoint called %d times, want 1", n)
	}
}

func TestSource(t *testing.T) {
	if got := NewAmadeusClient("", "", "https://test.api.amadeus.com").Source(); got != "amadeus_test" {
		t.Errorf("Source = %s", got)
	}
	if got := NewAmadeusClient("", "", "https://api.amadeus.com").Source(); got != "amadeus" {
		t.Errorf("Source = %s", got)
	}
}
