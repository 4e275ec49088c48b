package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"techtonic/services"
)

func amadeusRouter(t *testing.T, clientID, clientSecret string) (*gin.Engine, func()) {
	t.Helper()
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		switch r.PostForm.Get("client_secret") {
		case "good":
			w.Write([]byte(`{"access_token":"abc","token_type":"Bearer","expires_in":1799,"scope":""}`))
		case "garbled":
			w.Write([]byte(`<html>`))
		default:
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"invalid_client","error_description":"Client credentials are invalid"}`))
		}
	}))

	r := gin.New()
	r.POST("/api/amadeus/check", NewAmadeusHandler(services.NewAmadeusClient(clientID, clientSecret, provider.URL)).Check)
	return r, provider.Close
}

func TestAmadeusCheck(t *testing.T) {
	r, done := amadeusRouter(t, "", "")
	defer done()

	tests := []struct {
		body     string
		status   int
		contains string
	}{
		{`{"client_id":"id","client_secret":"good"}`, http.StatusOK, `"status":"success"`},
		{`{"client_id":"id","client_secret":"bad"}`, http.StatusUnauthorized, `"provider":"Client credentials are invalid"`},
		{`{"client_id":"id","client_secret":"garbled"}`, http.StatusBadGateway, `invalid response`},
		{``, http.StatusBadRequest, `required`},
		{`{"client_id":"id"}`, http.StatusBadRequest, `required`},
	}

	for _, tt := range tests {
		w := do(t, r, http.MethodPost, "/api/amadeus/check", tt.body)
		if w.Code != tt.status {
			t.Errorf("%s: status = %d, want %d (%s)", tt.body, w.Code, tt.status, w.Body)
		}
		if !strings.Contains(w.Body.String(), tt.contains) {
			t.Errorf("%s: body %s missing %q", tt.body, w.Body, tt.contains)
		}
		if strings.Contains(w.Body.String(), "good") {
			t.Errorf("%s: secret echoed in %s", tt.body, w.Body)
		}
	}
}

func TestAmadeusCheckUsesConfiguredCredentials(t *testing.T) {
	r, done := amadeusRouter(t, "cfg", "good")
	defer done()

	if w := do(t, r, http.MethodPost, "/api/amadeus/check", ""); w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 (%s)", w.Code, w.Body)
	}
}
