package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/qawafel/crm-backend/internal/intake"
	"github.com/qawafel/crm-backend/pkg/enums"
	pkgerrors "github.com/qawafel/crm-backend/pkg/errors"
)

func TestHTTPClientMutateSendsEnvelope(t *testing.T) {
	var gotAuth string
	var body struct {
		Action  string          `json:"action"`
		Payload json.RawMessage `json:"payload"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/mutate" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	c, err := NewHTTPClient(srv.URL+"/", WithBearerToken("abc"))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if err := c.Mutate(context.Background(), enums.ActionDeleteDeal, map[string]int64{"id": 9}); err != nil {
		t.Fatalf("mutate: %v", err)
	}
	if body.Action != "DELETE_DEAL" || string(body.Payload) != `{"id":9}` {
		t.Fatalf("unexpected body %+v", body)
	}
	if gotAuth != "Bearer abc" {
		t.Fatalf("unexpected auth header %q", gotAuth)
	}
}

func TestHTTPClientMapsErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/get-lead-by-token":
			if r.URL.Query().Get("token") != "a b" {
				t.Fatalf("token not encoded: %s", r.URL.RawQuery)
			}
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"Lead not found","code":"NOT_FOUND"}`))
		case "/api/update-lead-from-form":
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"Token is required"}`))
		default:
			w.WriteHeader(http.StatusBadGateway)
		}
	}))
	defer srv.Close()

	c, _ := NewHTTPClient(srv.URL)
	_, err := c.GetLeadByToken(context.Background(), "a b")
	if !pkgerrors.IsCode(err, pkgerrors.CodeNotFound) || pkgerrors.As(err).Message() != "Lead not found" {
		t.Fatalf("unexpected error %v", err)
	}
	err = c.UpdateLeadFromForm(context.Background(), intake.Submission{})
	if !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation code from status, got %v", err)
	}
	_, err = c.Init(context.Background())
	if !pkgerrors.IsCode(err, pkgerrors.CodeInternal) {
		t.Fatalf("expected internal for bare 502, got %v", err)
	}
}

func TestNewHTTPClientRequiresBaseURL(t *testing.T) {
	if _, err := NewHTTPClient("  "); err == nil {
		t.Fatal("expected error for empty base url")
	}
}
