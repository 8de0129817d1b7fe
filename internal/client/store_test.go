package client

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/qawafel/crm-backend/internal/accounts"
	"github.com/qawafel/crm-backend/internal/activities"
	"github.com/qawafel/crm-backend/internal/bootstrap"
	"github.com/qawafel/crm-backend/internal/deals"
	"github.com/qawafel/crm-backend/internal/intake"
	"github.com/qawafel/crm-backend/internal/leads"
	"github.com/qawafel/crm-backend/internal/proposals"
	"github.com/qawafel/crm-backend/internal/tickets"
	"github.com/qawafel/crm-backend/internal/vendors"
	"github.com/qawafel/crm-backend/pkg/enums"
	"github.com/qawafel/crm-backend/pkg/logger"
)

var storeNow = time.Date(2025, 1, 31, 8, 0, 0, 0, time.UTC)

type mutation struct {
	action  enums.MutationAction
	payload any
}

type fakeAPI struct {
	initFn    func(ctx context.Context) (bootstrap.Snapshot, error)
	mutateFn  func(ctx context.Context, action enums.MutationAction, payload any) error
	mutations []mutation
	inits     int
}

func (f *fakeAPI) Init(ctx context.Context) (bootstrap.Snapshot, error) {
	f.inits++
	if f.initFn == nil {
		return bootstrap.Snapshot{}, nil
	}
	return f.initFn(ctx)
}

func (f *fakeAPI) Mutate(ctx context.Context, action enums.MutationAction, payload any) error {
	f.mutations = append(f.mutations, mutation{action: action, payload: payload})
	if f.mutateFn == nil {
		return nil
	}
	return f.mutateFn(ctx, action, payload)
}

func (f *fakeAPI) GetLeadByToken(context.Context, string) (leads.Lead, error) {
	return leads.Lead{}, errors.New("not used")
}

func (f *fakeAPI) UpdateLeadFromForm(context.Context, intake.Submission) error {
	return errors.New("not used")
}

func newTestStore(t *testing.T, api API) *Store {
	t.Helper()
	s, err := NewStore(StoreParams{
		API:           api,
		Logger:        logger.Nop(),
		PublicBaseURL: "https://crm.example.com",
		Clock:         func() time.Time { return storeNow },
		NewToken:      func() (string, error) { return "tok-new", nil },
	})
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return s
}

func TestStoreStartsLoadingThenReady(t *testing.T) {
	api := &fakeAPI{initFn: func(context.Context) (bootstrap.Snapshot, error) {
		return bootstrap.Snapshot{Leads: []leads.Lead{{ID: 1}}}, nil
	}}
	s := newTestStore(t, api)
	if s.State() != StateLoading {
		t.Fatalf("expected loading before first load, got %s", s.State())
	}
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.State() != StateReady || len(s.Snapshot().Leads) != 1 {
		t.Fatalf("unexpected state %s snapshot %+v", s.State(), s.Snapshot())
	}
}

func TestMutationFailureStillReloads(t *testing.T) {
	version := 0
	api := &fakeAPI{
		initFn: func(context.Context) (bootstrap.Snapshot, error) {
			version++
			return bootstrap.Snapshot{Deals: make([]deals.Deal, version)}, nil
		},
		mutateFn: func(context.Context, enums.MutationAction, any) error { return errors.New("boom") },
	}
	s := newTestStore(t, api)

	err := s.Mutate(context.Background(), enums.ActionDeleteDeal, map[string]int64{"id": 1})
	if err == nil {
		t.Fatal("expected mutation error to be reported")
	}
	if api.inits != 1 {
		t.Fatalf("expected reload after failed mutation, got %d inits", api.inits)
	}
	if s.State() != StateReady {
		t.Fatalf("expected ready, got %s", s.State())
	}
}

func TestFailedReloadKeepsLastSnapshot(t *testing.T) {
	fail := false
	api := &fakeAPI{initFn: func(context.Context) (bootstrap.Snapshot, error) {
		if fail {
			return bootstrap.Snapshot{}, errors.New("offline")
		}
		return bootstrap.Snapshot{Tickets: []tickets.Ticket{{ID: 7}}}, nil
	}}
	s := newTestStore(t, api)
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	fail = true
	if err := s.Mutate(context.Background(), enums.ActionAddActivity, activities.Activity{}); err == nil {
		t.Fatal("expected reload error")
	}
	if got := s.Snapshot().Tickets; len(got) != 1 || got[0].ID != 7 {
		t.Fatalf("last good snapshot lost: %+v", got)
	}
	if s.State() != StateReady {
		t.Fatalf("expected ready, got %s", s.State())
	}
}

func TestAddTicketAndLeadDefaults(t *testing.T) {
	api := &fakeAPI{}
	s := newTestStore(t, api)
	ctx := context.Background()

	if err := s.AddTicket(ctx, tickets.Ticket{Title: "Help", Status: enums.TicketStatusClosed, CreatedAt: "2000-01-01"}); err != nil {
		t.Fatalf("add ticket: %v", err)
	}
	ticket := api.mutations[0].payload.(tickets.Ticket)
	if ticket.Status != enums.TicketStatusOpen || ticket.CreatedAt != "2025-01-31" {
		t.Fatalf("unexpected ticket defaults %+v", ticket)
	}

	if err := s.AddLead(ctx, leads.Lead{Company: "A"}); err != nil {
		t.Fatalf("add lead: %v", err)
	}
	lead := api.mutations[1].payload.(leads.Lead)
	if lead.FormToken == nil || *lead.FormToken != "tok-new" {
		t.Fatalf("expected generated token, got %v", lead.FormToken)
	}

	existing := "keep-me"
	if err := s.AddLead(ctx, leads.Lead{Company: "B", FormToken: &existing}); err != nil {
		t.Fatalf("add lead: %v", err)
	}
	if got := api.mutations[2].payload.(leads.Lead); *got.FormToken != "keep-me" {
		t.Fatalf("existing token replaced: %s", *got.FormToken)
	}
}

func TestIntakeLinkPersistsTokenFirst(t *testing.T) {
	stored := leads.Lead{ID: 4, Company: "City Mart"}
	api := &fakeAPI{}
	api.initFn = func(context.Context) (bootstrap.Snapshot, error) {
		return bootstrap.Snapshot{Leads: []leads.Lead{stored}}, nil
	}
	api.mutateFn = func(_ context.Context, action enums.MutationAction, payload any) error {
		if action != enums.ActionUpdateLead {
			t.Fatalf("unexpected action %s", action)
		}
		stored = payload.(leads.Lead)
		return nil
	}
	s := newTestStore(t, api)
	ctx := context.Background()
	if err := s.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}

	link, err := s.IntakeLink(ctx, 4)
	if err != nil {
		t.Fatalf("intake link: %v", err)
	}
	if link != "https://crm.example.com/form/lead/tok-new" {
		t.Fatalf("unexpected link %q", link)
	}

	again, err := s.IntakeLink(ctx, 4)
	if err != nil || again != link {
		t.Fatalf("expected same link without new mutation, got %q err=%v", again, err)
	}
	if len(api.mutations) != 1 {
		t.Fatalf("expected a single UPDATE_LEAD, got %d", len(api.mutations))
	}

	if _, err := s.IntakeLink(ctx, 99); err == nil {
		t.Fatal("expected error for unknown lead")
	}
}

func TestSendVendorProposalOpensDeal(t *testing.T) {
	api := &fakeAPI{initFn: func(context.Context) (bootstrap.Snapshot, error) {
		return bootstrap.Snapshot{Vendors: []vendors.Vendor{{
			BaseUser:     accounts.BaseUser{ID: 2, Name: "Mohammed Khan"},
			BusinessName: "Khan Dates",
		}}}, nil
	}}
	s := newTestStore(t, api)
	ctx := context.Background()
	if err := s.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}

	err := s.SendVendorProposal(ctx, 2, proposals.Proposal{Title: "Ramadan supply", Value: 42000, Currency: "SAR", Status: enums.ProposalStatusSent})
	if err != nil {
		t.Fatalf("send proposal: %v", err)
	}

	wantActions := []enums.MutationAction{enums.ActionAddProposal, enums.ActionAddDeal, enums.ActionAddActivity, enums.ActionAddActivity}
	if len(api.mutations) != len(wantActions) {
		t.Fatalf("expected %d mutations, got %+v", len(wantActions), api.mutations)
	}
	for i, want := range wantActions {
		if api.mutations[i].action != want {
			t.Fatalf("mutation %d: expected %s got %s", i, want, api.mutations[i].action)
		}
	}

	p := api.mutations[0].payload.(proposals.Proposal)
	if p.SentDate != "2025-01-31" || p.ClientName != "Mohammed Khan" || p.ClientCompany != "Khan Dates" {
		t.Fatalf("unexpected proposal %+v", p)
	}
	d := api.mutations[1].payload.(deals.Deal)
	if d.Stage != enums.DealStageProposal || d.Probability != 25 || d.Value != 42000 {
		t.Fatalf("unexpected deal %+v", d)
	}
	if d.CloseDate != "2025-03-03" {
		t.Fatalf("expected close date one month out, got %s", d.CloseDate)
	}
	last := api.mutations[3].payload.(activities.Activity)
	if last.Icon != enums.ActivityIconProposalSent || last.Timestamp != storeNow.UnixMilli() {
		t.Fatalf("unexpected activity %+v", last)
	}
}

func TestSendVendorDraftProposalSkipsDeal(t *testing.T) {
	api := &fakeAPI{initFn: func(context.Context) (bootstrap.Snapshot, error) {
		return bootstrap.Snapshot{Vendors: []vendors.Vendor{{BaseUser: accounts.BaseUser{ID: 1}, BusinessName: "Abdullah Spices"}}}, nil
	}}
	s := newTestStore(t, api)
	ctx := context.Background()
	_ = s.Load(ctx)

	if err := s.SendVendorProposal(ctx, 1, proposals.Proposal{Title: "Draft", Status: enums.ProposalStatusDraft}); err != nil {
		t.Fatalf("send: %v", err)
	}
	if len(api.mutations) != 2 || api.mutations[1].action != enums.ActionAddActivity {
		t.Fatalf("expected proposal and one activity, got %+v", api.mutations)
	}
	if p := api.mutations[0].payload.(proposals.Proposal); p.SentDate != "" {
		t.Fatalf("draft must not be stamped sent, got %q", p.SentDate)
	}
}

func TestSaveProposalUsesStoredVersion(t *testing.T) {
	api := &fakeAPI{initFn: func(context.Context) (bootstrap.Snapshot, error) {
		return bootstrap.Snapshot{Proposals: []proposals.Proposal{{ID: 3, Status: enums.ProposalStatusDraft, CreatedAt: "2024-06-25"}}}, nil
	}}
	s := newTestStore(t, api)
	ctx := context.Background()
	_ = s.Load(ctx)

	if err := s.SaveProposal(ctx, proposals.Proposal{ID: 3, Title: "x", Status: enums.ProposalStatusSent}); err != nil {
		t.Fatalf("save: %v", err)
	}
	got := api.mutations[0]
	if got.action != enums.ActionUpdateProposal {
		t.Fatalf("expected update, got %s", got.action)
	}
	p := got.payload.(proposals.Proposal)
	if p.SentDate != "2025-01-31" || p.CreatedAt != "2024-06-25" {
		t.Fatalf("unexpected stamped proposal %+v", p)
	}

	if err := s.SaveProposal(ctx, proposals.Proposal{ID: 42}); err == nil {
		t.Fatal("expected error for unknown proposal")
	}
}

func TestResolveRoute(t *testing.T) {
	if r := ResolveRoute("/form/lead/abc"); r.Kind != RouteIntake || r.Token != "abc" {
		t.Fatalf("unexpected route %+v", r)
	}
	for _, p := range []string{"/", "/deals", "/form/lead/"} {
		if r := ResolveRoute(p); r.Kind != RouteDashboard {
			t.Fatalf("path %q: expected dashboard, got %+v", p, r)
		}
	}
}

func TestLocalEncodesPayload(t *testing.T) {
	var got json.RawMessage
	local := &Local{Gateway: gatewayFunc(func(_ context.Context, action string, payload json.RawMessage) error {
		if action != "DELETE_LEAD" {
			t.Fatalf("unexpected action %s", action)
		}
		got = payload
		return nil
	})}
	if err := local.Mutate(context.Background(), enums.ActionDeleteLead, map[string]int64{"id": 5}); err != nil {
		t.Fatalf("mutate: %v", err)
	}
	if string(got) != `{"id":5}` {
		t.Fatalf("unexpected payload %s", got)
	}
}

type gatewayFunc func(ctx context.Context, action string, payload json.RawMessage) error

func (f gatewayFunc) Dispatch(ctx context.Context, action string, payload json.RawMessage) error {
	return f(ctx, action, payload)
}
