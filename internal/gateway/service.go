package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/qawafel/crm-backend/internal/activities"
	"github.com/qawafel/crm-backend/internal/deals"
	"github.com/qawafel/crm-backend/internal/leads"
	"github.com/qawafel/crm-backend/internal/profile"
	"github.com/qawafel/crm-backend/internal/proposals"
	"github.com/qawafel/crm-backend/internal/retailers"
	"github.com/qawafel/crm-backend/internal/tickets"
	"github.com/qawafel/crm-backend/internal/vendors"
	"github.com/qawafel/crm-backend/pkg/enums"
	pkgerrors "github.com/qawafel/crm-backend/pkg/errors"
	"github.com/qawafel/crm-backend/pkg/logger"
	"github.com/qawafel/crm-backend/pkg/metrics"
	"github.com/qawafel/crm-backend/pkg/types"
)

// InvalidActionMessage is returned for any action outside the closed set.
const InvalidActionMessage = "Invalid action"

// Service is the single write entry point: one action, one statement.
type Service interface {
	Dispatch(ctx context.Context, action string, payload json.RawMessage) error
}

// ServiceParams wires the gateway.
type ServiceParams struct {
	Stores  Stores
	Logger  *logger.Logger
	Metrics *metrics.GatewayMetrics
	// Clock defaults to time.Now.
	Clock func() time.Time
	// NewToken defaults to a random UUID.
	NewToken func() (string, error)
}

type handlerFunc func(ctx context.Context, payload json.RawMessage) error

type service struct {
	stores   Stores
	logg     *logger.Logger
	metrics  *metrics.GatewayMetrics
	now      func() time.Time
	newToken func() (string, error)
	handlers map[enums.MutationAction]handlerFunc
}

func errMissing(what string) error {
	return fmt.Errorf("%s required", what)
}

// NewService validates params and builds the action table.
func NewService(params ServiceParams) (Service, error) {
	if err := params.Stores.validate(); err != nil {
		return nil, err
	}
	if params.Logger == nil {
		return nil, errMissing("logger")
	}
	s := &service{
		stores:   params.Stores,
		logg:     params.Logger,
		metrics:  params.Metrics,
		now:      params.Clock,
		newToken: params.NewToken,
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newToken == nil {
		s.newToken = randomToken
	}
	s.handlers = map[enums.MutationAction]handlerFunc{
		enums.ActionAddRetailer:     s.addRetailer,
		enums.ActionUpdateRetailer:  s.updateRetailer,
		enums.ActionAddVendor:       s.addVendor,
		enums.ActionUpdateVendor:    s.updateVendor,
		enums.ActionAddLead:         s.addLead,
		enums.ActionUpdateLead:      s.updateLead,
		enums.ActionDeleteLead:      s.deleteLead,
		enums.ActionAddTicket:       s.addTicket,
		enums.ActionUpdateTicket:    s.updateTicket,
		enums.ActionAddProposal:     s.addProposal,
		enums.ActionUpdateProposal:  s.updateProposal,
		enums.ActionDeleteProposal:  s.deleteProposal,
		enums.ActionAddDeal:         s.addDeal,
		enums.ActionUpdateDeal:      s.updateDeal,
		enums.ActionDeleteDeal:      s.deleteDeal,
		enums.ActionUpdateDealStage: s.updateDealStage,
		enums.ActionUpdateProfile:   s.updateProfile,
		enums.ActionAddActivity:     s.addActivity,
	}
	return s, nil
}

func randomToken() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// Dispatch applies exactly one write for action. Unknown actions fail with a
// validation error and touch nothing; every other failure is reported as an
// internal error and the driver detail only reaches the log.
func (s *service) Dispatch(ctx context.Context, action string, payload json.RawMessage) error {
	start := time.Now()
	ctx = s.logg.WithAction(ctx, action)

	handler, ok := s.handlers[enums.MutationAction(action)]
	if !ok {
		// raw tag stays out of the label set
		s.metrics.Observe("unknown", metrics.OutcomeInvalidAction, time.Since(start))
		s.logg.Warn(ctx, "mutation.invalid_action")
		return pkgerrors.New(pkgerrors.CodeValidation, InvalidActionMessage)
	}

	if err := handler(ctx, payload); err != nil {
		s.metrics.Observe(action, metrics.OutcomeFailed, time.Since(start))
		s.logg.Error(s.logg.WithFields(ctx, pkgerrors.Dump(err).Fields()), "mutation.failed", err)
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, fmt.Sprintf("%s failed", action))
	}

	s.metrics.Observe(action, metrics.OutcomeOK, time.Since(start))
	s.logg.Debug(ctx, "mutation.applied")
	return nil
}

func decode[T any](payload json.RawMessage) (T, error) {
	var out T
	if err := json.Unmarshal(payload, &out); err != nil {
		return out, fmt.Errorf("decoding payload: %w", err)
	}
	return out, nil
}

type idPayload struct {
	ID int64 `json:"id"`
}

func (s *service) today() string {
	return types.FormatDate(s.now())
}

func (s *service) addRetailer(ctx context.Context, payload json.RawMessage) error {
	in, err := decode[retailers.Retailer](payload)
	if err != nil {
		return err
	}
	if in.JoinDate == "" {
		in.JoinDate = s.today()
	}
	_, err = s.stores.Retailers.Create(ctx, in)
	return err
}

func (s *service) updateRetailer(ctx context.Context, payload json.RawMessage) error {
	in, err := decode[retailers.Retailer](payload)
	if err != nil {
		return err
	}
	return s.stores.Retailers.Update(ctx, in)
}

func (s *service) addVendor(ctx context.Context, payload json.RawMessage) error {
	in, err := decode[vendors.Vendor](payload)
	if err != nil {
		return err
	}
	if in.JoinDate == "" {
		in.JoinDate = s.today()
	}
	_, err = s.stores.Vendors.Create(ctx, in)
	return err
}

func (s *service) updateVendor(ctx context.Context, payload json.RawMessage) error {
	in, err := decode[vendors.Vendor](payload)
	if err != nil {
		return err
	}
	return s.stores.Vendors.Update(ctx, in)
}

func (s *service) addLead(ctx context.Context, payload json.RawMessage) error {
	in, err := decode[leads.Lead](payload)
	if err != nil {
		return err
	}
	if !in.HasFormToken() {
		token, err := s.newToken()
		if err != nil {
			return fmt.Errorf("generating form token: %w", err)
		}
		in.FormToken = &token
	}
	_, err = s.stores.Leads.Create(ctx, in)
	return err
}

func (s *service) updateLead(ctx context.Context, payload json.RawMessage) error {
	in, err := decode[leads.Lead](payload)
	if err != nil {
		return err
	}
	return s.stores.Leads.Update(ctx, in)
}

func (s *service) deleteLead(ctx context.Context, payload json.RawMessage) error {
	in, err := decode[idPayload](payload)
	if err != nil {
		return err
	}
	return s.stores.Leads.Delete(ctx, in.ID)
}

func (s *service) addTicket(ctx context.Context, payload json.RawMessage) error {
	in, err := decode[tickets.Ticket](payload)
	if err != nil {
		return err
	}
	in.Status = enums.TicketStatusOpen
	in.CreatedAt = s.today()
	_, err = s.stores.Tickets.Create(ctx, in)
	return err
}

func (s *service) updateTicket(ctx context.Context, payload json.RawMessage) error {
	in, err := decode[tickets.Ticket](payload)
	if err != nil {
		return err
	}
	return s.stores.Tickets.Update(ctx, in)
}

func (s *service) addProposal(ctx context.Context, payload json.RawMessage) error {
	in, err := decode[proposals.Proposal](payload)
	if err != nil {
		return err
	}
	if in.CreatedAt == "" {
		in.CreatedAt = s.today()
	}
	_, err = s.stores.Proposals.Create(ctx, in)
	return err
}

func (s *service) updateProposal(ctx context.Context, payload json.RawMessage) error {
	in, err := decode[proposals.Proposal](payload)
	if err != nil {
		return err
	}
	return s.stores.Proposals.Update(ctx, in)
}

func (s *service) deleteProposal(ctx context.Context, payload json.RawMessage) error {
	in, err := decode[idPayload](payload)
	if err != nil {
		return err
	}
	return s.stores.Proposals.Delete(ctx, in.ID)
}

func (s *service) addDeal(ctx context.Context, payload json.RawMessage) error {
	in, err := decode[deals.Deal](payload)
	if err != nil {
		return err
	}
	_, err = s.stores.Deals.Create(ctx, in)
	return err
}

func (s *service) updateDeal(ctx context.Context, payload json.RawMessage) error {
	in, err := decode[deals.Deal](payload)
	if err != nil {
		return err
	}
	return s.stores.Deals.Update(ctx, in)
}

func (s *service) deleteDeal(ctx context.Context, payload json.RawMessage) error {
	in, err := decode[idPayload](payload)
	if err != nil {
		return err
	}
	return s.stores.Deals.Delete(ctx, in.ID)
}

func (s *service) updateDealStage(ctx context.Context, payload json.RawMessage) error {
	in, err := decode[deals.StageChange](payload)
	if err != nil {
		return err
	}
	return s.stores.Deals.UpdateStage(ctx, in)
}

func (s *service) updateProfile(ctx context.Context, payload json.RawMessage) error {
	in, err := decode[profile.Profile](payload)
	if err != nil {
		return err
	}
	return s.stores.Profile.Update(ctx, in)
}

func (s *service) addActivity(ctx context.Context, payload json.RawMessage) error {
	in, err := decode[activities.Activity](payload)
	if err != nil {
		return err
	}
	if in.Timestamp == 0 {
		in.Timestamp = types.EpochMillis(s.now())
	}
	_, err = s.stores.Activities.Append(ctx, in)
	return err
}
