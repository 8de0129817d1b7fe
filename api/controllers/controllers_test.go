package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/qawafel/crm-backend/internal/bootstrap"
	"github.com/qawafel/crm-backend/internal/gateway"
	"github.com/qawafel/crm-backend/internal/intake"
	"github.com/qawafel/crm-backend/internal/leads"
	"github.com/qawafel/crm-backend/internal/messaging"
	"github.com/qawafel/crm-backend/pkg/config"
	pkgerrors "github.com/qawafel/crm-backend/pkg/errors"
	"github.com/qawafel/crm-backend/pkg/logger"
	"github.com/qawafel/crm-backend/pkg/types"
)

type testGateway struct {
	dispatchFn func(ctx context.Context, action string, payload json.RawMessage) error
}

func (g *testGateway) Dispatch(ctx context.Context, action string, payload json.RawMessage) error {
	if g.dispatchFn != nil {
		return g.dispatchFn(ctx, action, payload)
	}
	return nil
}

type testBootstrap struct {
	initFn func(ctx context.Context) (bootstrap.Snapshot, error)
	loadFn func(ctx context.Context) (bootstrap.Snapshot, error)
}

func (b *testBootstrap) Initialize(ctx context.Context) (bootstrap.Snapshot, error) {
	if b.initFn != nil {
		return b.initFn(ctx)
	}
	return bootstrap.Snapshot{}, nil
}

func (b *testBootstrap) Load(ctx context.Context) (bootstrap.Snapshot, error) {
	if b.loadFn != nil {
		return b.loadFn(ctx)
	}
	return bootstrap.Snapshot{}, nil
}

type testIntake struct {
	getFn    func(ctx context.Context, token string) (leads.Lead, error)
	updateFn func(ctx context.Context, in intake.Submission) error
}

func (s *testIntake) GetLeadByToken(ctx context.Context, token string) (leads.Lead, error) {
	if s.getFn != nil {
		return s.getFn(ctx, token)
	}
	return leads.Lead{}, nil
}

func (s *testIntake) UpdateLeadFromToken(ctx context.Context, in intake.Submission) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, in)
	}
	return nil
}

type testMessaging struct {
	generateFn func(ctx context.Context, req messaging.Request) (string, error)
}

func (s *testMessaging) GenerateMessage(ctx context.Context, req messaging.Request) (string, error) {
	if s.generateFn != nil {
		return s.generateFn(ctx, req)
	}
	return "", nil
}

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) types.ErrorBody {
	t.Helper()
	var body types.ErrorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v (%s)", err, rec.Body.String())
	}
	return body
}

func TestMutateDispatchesEnvelope(t *testing.T) {
	var gotAction string
	var gotPayload string
	svc := &testGateway{dispatchFn: func(ctx context.Context, action string, payload json.RawMessage) error {
		gotAction = action
		gotPayload = string(payload)
		return nil
	}}

	req := httptest.NewRequest(http.MethodPost, "/api/mutate", strings.NewReader(`{"action":"DELETE_LEAD","payload":{"id":3}}`))
	rec := httptest.NewRecorder()
	Mutate(svc, logger.Nop()).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if strings.TrimSpace(rec.Body.String()) != `{"success":true}` {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
	if gotAction != "DELETE_LEAD" || gotPayload != `{"id":3}` {
		t.Fatalf("unexpected dispatch %s %s", gotAction, gotPayload)
	}
}

func TestMutateInvalidActionIs400(t *testing.T) {
	svc := &testGateway{dispatchFn: func(ctx context.Context, action string, payload json.RawMessage) error {
		return pkgerrors.New(pkgerrors.CodeValidation, gateway.InvalidActionMessage)
	}}

	req := httptest.NewRequest(http.MethodPost, "/api/mutate", strings.NewReader(`{"action":"DROP_TABLE","payload":{}}`))
	rec := httptest.NewRecorder()
	Mutate(svc, logger.Nop()).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if body := decodeError(t, rec); body.Error != gateway.InvalidActionMessage {
		t.Fatalf("unexpected error message %q", body.Error)
	}
}

func TestMutateMalformedEnvelopeNeverDispatches(t *testing.T) {
	svc := &testGateway{dispatchFn: func(ctx context.Context, action string, payload json.RawMessage) error {
		t.Fatalf("dispatch should not be called")
		return nil
	}}

	req := httptest.NewRequest(http.MethodPost, "/api/mutate", strings.NewReader(`{"action":`))
	rec := httptest.NewRecorder()
	Mutate(svc, logger.Nop()).ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestMutateStorageFailureHidesDetail(t *testing.T) {
	svc := &testGateway{dispatchFn: func(ctx context.Context, action string, payload json.RawMessage) error {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, errors.New("UNIQUE constraint failed: vendors.email"), "ADD_VENDOR failed")
	}}

	req := httptest.NewRequest(http.MethodPost, "/api/mutate", strings.NewReader(`{"action":"ADD_VENDOR","payload":{}}`))
	rec := httptest.NewRecorder()
	Mutate(svc, logger.Nop()).ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body := decodeError(t, rec); body.Error != "Internal Server Error" || body.Code != string(pkgerrors.CodeInternal) {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestInitReturnsSnapshot(t *testing.T) {
	svc := &testBootstrap{initFn: func(ctx context.Context) (bootstrap.Snapshot, error) {
		return bootstrap.Snapshot{Leads: []leads.Lead{{ID: 1, Company: "Acme"}}}, nil
	}}

	rec := httptest.NewRecorder()
	Init(svc, logger.Nop()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/init", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, key := range []string{"retailers", "vendors", "tickets", "proposals", "leads", "deals", "activities", "userProfile"} {
		if _, ok := body[key]; !ok {
			t.Fatalf("snapshot missing %q: %s", key, rec.Body.String())
		}
	}
	if !strings.Contains(string(body["leads"]), `"company":"Acme"`) {
		t.Fatalf("unexpected leads %s", body["leads"])
	}
}

func TestInitFailureIs500(t *testing.T) {
	svc := &testBootstrap{initFn: func(ctx context.Context) (bootstrap.Snapshot, error) {
		return bootstrap.Snapshot{}, pkgerrors.Wrap(pkgerrors.CodeInternal, errors.New("disk full"), "initialize store")
	}}
	rec := httptest.NewRecorder()
	Init(svc, logger.Nop()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/init", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestDashboardUsesLoad(t *testing.T) {
	loaded := false
	svc := &testBootstrap{
		initFn: func(ctx context.Context) (bootstrap.Snapshot, error) {
			t.Fatalf("dashboard must not seed")
			return bootstrap.Snapshot{}, nil
		},
		loadFn: func(ctx context.Context) (bootstrap.Snapshot, error) {
			loaded = true
			return bootstrap.Snapshot{Leads: []leads.Lead{{ID: 1}, {ID: 2}}}, nil
		},
	}
	rec := httptest.NewRecorder()
	Dashboard(svc, logger.Nop()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard", nil))
	if rec.Code != http.StatusOK || !loaded {
		t.Fatalf("expected 200 from Load, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"totalLeads":2`) {
		t.Fatalf("unexpected stats %s", rec.Body.String())
	}
}

func TestGetLeadByTokenPassesTrimmedToken(t *testing.T) {
	var got string
	svc := &testIntake{getFn: func(ctx context.Context, token string) (leads.Lead, error) {
		got = token
		return leads.Lead{ID: 9, Company: "Souq"}, nil
	}}
	rec := httptest.NewRecorder()
	GetLeadByToken(svc, logger.Nop()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/get-lead-by-token?token=+tok-1+", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got != "tok-1" {
		t.Fatalf("expected trimmed token, got %q", got)
	}
}

func TestGetLeadByTokenErrors(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"missing", pkgerrors.New(pkgerrors.CodeValidation, intake.MsgTokenRequired), http.StatusBadRequest, intake.MsgTokenRequired},
		{"unknown", pkgerrors.New(pkgerrors.CodeNotFound, intake.MsgLeadNotFound), http.StatusNotFound, intake.MsgLeadNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &testIntake{getFn: func(ctx context.Context, token string) (leads.Lead, error) {
				return leads.Lead{}, tc.err
			}}
			rec := httptest.NewRecorder()
			GetLeadByToken(svc, logger.Nop()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/get-lead-by-token", nil))
			if rec.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, rec.Code)
			}
			if body := decodeError(t, rec); body.Error != tc.msg {
				t.Fatalf("unexpected message %q", body.Error)
			}
		})
	}
}

func TestUpdateLeadFromFormDecodesSubmission(t *testing.T) {
	var got intake.Submission
	svc := &testIntake{updateFn: func(ctx context.Context, in intake.Submission) error {
		got = in
		return nil
	}}
	req := httptest.NewRequest(http.MethodPost, "/api/update-lead-from-form", strings.NewReader(`{"token":"tok-1","businessSize":"Medium (11-50)","numberOfBranches":3}`))
	rec := httptest.NewRecorder()
	UpdateLeadFromForm(svc, logger.Nop()).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got.Token != "tok-1" || got.BusinessSize == nil || *got.BusinessSize != "Medium (11-50)" || got.NumberOfBranches == nil || *got.NumberOfBranches != 3 {
		t.Fatalf("unexpected submission %+v", got)
	}
}

func TestUpdateLeadFromFormNotFound(t *testing.T) {
	svc := &testIntake{updateFn: func(ctx context.Context, in intake.Submission) error {
		return pkgerrors.New(pkgerrors.CodeNotFound, intake.MsgLeadNotFoundToken)
	}}
	req := httptest.NewRequest(http.MethodPost, "/api/update-lead-from-form", strings.NewReader(`{"token":"nope"}`))
	rec := httptest.NewRecorder()
	UpdateLeadFromForm(svc, logger.Nop()).ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestGenerateMessage(t *testing.T) {
	svc := &testMessaging{generateFn: func(ctx context.Context, req messaging.Request) (string, error) {
		if req.Channel != "SMS" || req.RecipientType != "Vendor" {
			t.Fatalf("unexpected request %+v", req)
		}
		return "Hello vendor", nil
	}}
	req := httptest.NewRequest(http.MethodPost, "/api/generate-message", strings.NewReader(`{"recipientType":"Vendor","goal":"Onboarding","channel":"SMS"}`))
	rec := httptest.NewRecorder()
	GenerateMessage(svc, logger.Nop()).ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if strings.TrimSpace(rec.Body.String()) != `{"message":"Hello vendor"}` {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}

func TestGenerateMessageRejectsBadChannel(t *testing.T) {
	svc := &testMessaging{generateFn: func(ctx context.Context, req messaging.Request) (string, error) {
		t.Fatalf("generator should not be reached")
		return "", nil
	}}
	req := httptest.NewRequest(http.MethodPost, "/api/generate-message", strings.NewReader(`{"recipientType":"Vendor","goal":"x","channel":"Fax"}`))
	rec := httptest.NewRecorder()
	GenerateMessage(svc, logger.Nop()).ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestGenerateMessageNotConfigured(t *testing.T) {
	svc := &testMessaging{generateFn: func(ctx context.Context, req messaging.Request) (string, error) {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, messaging.ErrNotConfigured, messaging.ErrNotConfigured.Error())
	}}
	req := httptest.NewRequest(http.MethodPost, "/api/generate-message", strings.NewReader(`{"recipientType":"Retailer","goal":"x","channel":"Email"}`))
	rec := httptest.NewRecorder()
	GenerateMessage(svc, logger.Nop()).ServeHTTP(rec, req)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
	if body := decodeError(t, rec); body.Error != messaging.ErrNotConfigured.Error() {
		t.Fatalf("unexpected message %q", body.Error)
	}
}

func TestHealthReady(t *testing.T) {
	cfg := &config.Config{App: config.AppConfig{Env: "test"}}

	rec := httptest.NewRecorder()
	HealthReady(cfg, logger.Nop(), ReadinessCheck{Name: "database", Pinger: pingerFunc(func(context.Context) error { return nil })}).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Header().Get(envHeader) != "test" {
		t.Fatalf("expected env header")
	}

	rec = httptest.NewRecorder()
	HealthReady(cfg, logger.Nop(),
		ReadinessCheck{Name: "database", Pinger: pingerFunc(func(context.Context) error { return nil })},
		ReadinessCheck{Name: "redis", Pinger: pingerFunc(func(context.Context) error { return errors.New("refused") })},
	).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
	if body := decodeError(t, rec); body.Error != "redis unavailable" {
		t.Fatalf("unexpected message %q", body.Error)
	}
}
