// Package intake serves the token-scoped lead form: a holder of a lead's
// form token may read that lead and fill in two fields, nothing else.
package intake

import (
	"context"
	"errors"
	"strings"

	"github.com/qawafel/crm-backend/internal/leads"
	pkgerrors "github.com/qawafel/crm-backend/pkg/errors"
	"github.com/qawafel/crm-backend/pkg/logger"
)

const (
	MsgTokenRequired     = "Token is required"
	MsgLeadNotFound      = "Lead not found"
	MsgLeadNotFoundToken = "Lead not found for the given token."
)

// LeadStore is the slice of the lead repository the form needs.
type LeadStore interface {
	FindByToken(ctx context.Context, token string) (leads.Lead, error)
	UpdateIntake(ctx context.Context, token string, businessSize *string, numberOfBranches *int) (int64, error)
}

// Submission is the body of a form post.
type Submission struct {
	Token            string  `json:"token"`
	BusinessSize     *string `json:"businessSize"`
	NumberOfBranches *int    `json:"numberOfBranches"`
}

type Service interface {
	GetLeadByToken(ctx context.Context, token string) (leads.Lead, error)
	UpdateLeadFromToken(ctx context.Context, in Submission) error
}

type service struct {
	leads LeadStore
	logg  *logger.Logger
}

func NewService(store LeadStore, logg *logger.Logger) (Service, error) {
	if store == nil {
		return nil, errors.New("lead store required")
	}
	if logg == nil {
		return nil, errors.New("logger required")
	}
	return &service{leads: store, logg: logg}, nil
}

func (s *service) GetLeadByToken(ctx context.Context, token string) (leads.Lead, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return leads.Lead{}, pkgerrors.New(pkgerrors.CodeValidation, MsgTokenRequired)
	}
	lead, err := s.leads.FindByToken(ctx, token)
	if leads.IsNotFound(err) {
		return leads.Lead{}, pkgerrors.New(pkgerrors.CodeNotFound, MsgLeadNotFound)
	}
	if err != nil {
		return leads.Lead{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "fetch lead by token")
	}
	return lead, nil
}

// UpdateLeadFromToken writes the two form fields. The token is not consumed;
// a second submission overwrites the first.
func (s *service) UpdateLeadFromToken(ctx context.Context, in Submission) error {
	token := strings.TrimSpace(in.Token)
	if token == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, MsgTokenRequired)
	}
	n, err := s.leads.UpdateIntake(ctx, token, in.BusinessSize, in.NumberOfBranches)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update lead from form")
	}
	if n == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, MsgLeadNotFoundToken)
	}
	s.logg.Info(ctx, "intake.submitted")
	return nil
}
