// Package client is the client side of the CRM: a snapshot store that
// applies every change through the mutation gateway and then reloads.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/qawafel/crm-backend/internal/bootstrap"
	"github.com/qawafel/crm-backend/internal/gateway"
	"github.com/qawafel/crm-backend/internal/intake"
	"github.com/qawafel/crm-backend/internal/leads"
	"github.com/qawafel/crm-backend/pkg/enums"
)

// API is the server surface the store talks to.
type API interface {
	Init(ctx context.Context) (bootstrap.Snapshot, error)
	Mutate(ctx context.Context, action enums.MutationAction, payload any) error
	GetLeadByToken(ctx context.Context, token string) (leads.Lead, error)
	UpdateLeadFromForm(ctx context.Context, in intake.Submission) error
}

// Local serves API in-process, for the CLI against a local store and for tests.
type Local struct {
	Gateway gateway.Service
	Loader  bootstrap.Service
	Intake  intake.Service
}

func NewLocal(gw gateway.Service, loader bootstrap.Service, in intake.Service) (*Local, error) {
	if gw == nil || loader == nil || in == nil {
		return nil, errors.New("gateway, loader and intake services are required")
	}
	return &Local{Gateway: gw, Loader: loader, Intake: in}, nil
}

func (l *Local) Init(ctx context.Context) (bootstrap.Snapshot, error) {
	return l.Loader.Initialize(ctx)
}

func (l *Local) Mutate(ctx context.Context, action enums.MutationAction, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s payload: %w", action, err)
	}
	return l.Gateway.Dispatch(ctx, string(action), raw)
}

func (l *Local) GetLeadByToken(ctx context.Context, token string) (leads.Lead, error) {
	return l.Intake.GetLeadByToken(ctx, token)
}

func (l *Local) UpdateLeadFromForm(ctx context.Context, in intake.Submission) error {
	return l.Intake.UpdateLeadFromToken(ctx, in)
}
