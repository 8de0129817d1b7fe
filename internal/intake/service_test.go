package intake

import (
	"context"
	"errors"
	"testing"

	"github.com/qawafel/crm-backend/internal/leads"
	"github.com/qawafel/crm-backend/internal/storetest"
	"github.com/qawafel/crm-backend/pkg/enums"
	pkgerrors "github.com/qawafel/crm-backend/pkg/errors"
	"github.com/qawafel/crm-backend/pkg/logger"
	"gorm.io/gorm"
)

type fakeStore struct {
	findFn   func(ctx context.Context, token string) (leads.Lead, error)
	updateFn func(ctx context.Context, token string, size *string, branches *int) (int64, error)
}

func (f fakeStore) FindByToken(ctx context.Context, token string) (leads.Lead, error) {
	return f.findFn(ctx, token)
}

func (f fakeStore) UpdateIntake(ctx context.Context, token string, size *string, branches *int) (int64, error) {
	return f.updateFn(ctx, token, size, branches)
}

func ptr[T any](v T) *T { return &v }

func TestTokenScenarioAgainstStore(t *testing.T) {
	client := storetest.Open(t)
	repo := leads.NewRepository(client.DB())
	ctx := context.Background()

	if _, err := repo.Create(ctx, leads.Lead{Company: "Modern Grocers", Status: enums.LeadStatusNew, FormToken: ptr("tok-1")}); err != nil {
		t.Fatalf("create lead: %v", err)
	}
	svc, err := NewService(repo, logger.Nop())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	if err := svc.UpdateLeadFromToken(ctx, Submission{Token: "tok-1", BusinessSize: ptr("1-10"), NumberOfBranches: ptr(2)}); err != nil {
		t.Fatalf("update: %v", err)
	}
	lead, err := svc.GetLeadByToken(ctx, "tok-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if lead.BusinessSize == nil || *lead.BusinessSize != "1-10" {
		t.Fatalf("unexpected business size %v", lead.BusinessSize)
	}
	if lead.NumberOfBranches == nil || *lead.NumberOfBranches != 2 {
		t.Fatalf("unexpected branches %v", lead.NumberOfBranches)
	}
	if lead.Company != "Modern Grocers" || lead.Status != enums.LeadStatusNew {
		t.Fatalf("other fields must be untouched: %+v", lead)
	}

	err = svc.UpdateLeadFromToken(ctx, Submission{Token: "tok-unknown", BusinessSize: ptr("1-10"), NumberOfBranches: ptr(2)})
	if !pkgerrors.IsCode(err, pkgerrors.CodeNotFound) {
		t.Fatalf("expected NOT_FOUND for unknown token, got %v", err)
	}
	if _, err := svc.GetLeadByToken(ctx, "tok-unknown"); !pkgerrors.IsCode(err, pkgerrors.CodeNotFound) {
		t.Fatalf("expected NOT_FOUND on read, got %v", err)
	}
}

func TestMissingTokenIsValidationError(t *testing.T) {
	called := false
	svc, _ := NewService(fakeStore{
		findFn: func(context.Context, string) (leads.Lead, error) { called = true; return leads.Lead{}, nil },
		updateFn: func(context.Context, string, *string, *int) (int64, error) {
			called = true
			return 1, nil
		},
	}, logger.Nop())

	if _, err := svc.GetLeadByToken(context.Background(), "  "); !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err := svc.UpdateLeadFromToken(context.Background(), Submission{}); !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if called {
		t.Fatal("store must not be reached without a token")
	}
}

func TestStoreFailureIsInternal(t *testing.T) {
	boom := errors.New("connection reset")
	svc, _ := NewService(fakeStore{
		findFn:   func(context.Context, string) (leads.Lead, error) { return leads.Lead{}, boom },
		updateFn: func(context.Context, string, *string, *int) (int64, error) { return 0, boom },
	}, logger.Nop())

	if _, err := svc.GetLeadByToken(context.Background(), "t"); !pkgerrors.IsCode(err, pkgerrors.CodeInternal) {
		t.Fatalf("expected internal error, got %v", err)
	}
	if err := svc.UpdateLeadFromToken(context.Background(), Submission{Token: "t"}); !pkgerrors.IsCode(err, pkgerrors.CodeInternal) {
		t.Fatalf("expected internal error, got %v", err)
	}
}

func TestNotFoundMapsGormSentinel(t *testing.T) {
	svc, _ := NewService(fakeStore{
		findFn: func(context.Context, string) (leads.Lead, error) { return leads.Lead{}, gorm.ErrRecordNotFound },
	}, logger.Nop())
	_, err := svc.GetLeadByToken(context.Background(), "t")
	if typed := pkgerrors.As(err); typed == nil || typed.Message() != MsgLeadNotFound {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestLinkAndTokenFromPath(t *testing.T) {
	link := Link("https://crm.qawafel.com/", "tok-1")
	if link != "https://crm.qawafel.com/form/lead/tok-1" {
		t.Fatalf("unexpected link %q", link)
	}
	if got := TokenFromPath("/form/lead/tok-1"); got != "tok-1" {
		t.Fatalf("unexpected token %q", got)
	}
	for _, p := range []string{"/", "/form/lead/", "/form/lead/a/b", "/leads"} {
		if got := TokenFromPath(p); got != "" {
			t.Fatalf("path %q should not yield a token, got %q", p, got)
		}
	}
}
