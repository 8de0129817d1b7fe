package validators

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pkgerrors "github.com/qawafel/crm-backend/pkg/errors"
)

type sample struct {
	Name  string `json:"name" validate:"required,max=5"`
	Count int    `json:"count" validate:"min=0"`
}

func TestDecodeJSONBody(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"abc","count":2}`))
	var got sample
	if err := DecodeJSONBody(httptest.NewRecorder(), r, &got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "abc" || got.Count != 2 {
		t.Fatalf("unexpected decode %+v", got)
	}
}

func TestDecodeJSONBodyRejectsUnknownFields(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"abc","extra":1}`))
	var got sample
	err := DecodeJSONBody(httptest.NewRecorder(), r, &got)
	if !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDecodeJSONBodyReportsFieldErrors(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"","count":-1}`))
	var got sample
	err := DecodeJSONBody(httptest.NewRecorder(), r, &got)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	details, ok := typed.Details().(map[string]string)
	if !ok {
		t.Fatalf("expected field details, got %T", typed.Details())
	}
	if details["name"] != "is required" || details["count"] != "must be at least 0" {
		t.Fatalf("unexpected details %v", details)
	}
}

func TestDecodeJSONBodyRejectsOversizedBody(t *testing.T) {
	big := `{"name":"` + strings.Repeat("a", MaxBodyBytes) + `"}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(big))
	var got sample
	if err := DecodeJSONBody(httptest.NewRecorder(), r, &got); !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestQueryHelpers(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?token=%20abc%20&n=7&bad=x", nil)
	if got := QueryString(r, "token", 2); got != "ab" {
		t.Fatalf("unexpected query string %q", got)
	}
	if n, err := ParseQueryInt(r, "n", 1, 0, 10); err != nil || n != 7 {
		t.Fatalf("unexpected int %d err=%v", n, err)
	}
	if n, err := ParseQueryInt(r, "missing", 3, 0, 10); err != nil || n != 3 {
		t.Fatalf("expected default, got %d err=%v", n, err)
	}
	if _, err := ParseQueryInt(r, "bad", 0, 0, 10); err == nil {
		t.Fatalf("expected error for non-numeric value")
	}
	if _, err := ParseQueryInt(r, "n", 0, 0, 5); err == nil {
		t.Fatalf("expected range error")
	}
}

func TestBearerToken(t *testing.T) {
	cases := map[string]string{
		"Bearer abc":  "abc",
		"bearer  xyz": "xyz",
		"raw":         "raw",
		"":            "",
	}
	for in, want := range cases {
		if got := BearerToken(in); got != want {
			t.Fatalf("BearerToken(%q)=%q want %q", in, got, want)
		}
	}
}
