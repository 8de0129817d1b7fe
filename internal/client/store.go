package client

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/qawafel/crm-backend/internal/activities"
	"github.com/qawafel/crm-backend/internal/bootstrap"
	"github.com/qawafel/crm-backend/internal/deals"
	"github.com/qawafel/crm-backend/internal/intake"
	"github.com/qawafel/crm-backend/internal/leads"
	"github.com/qawafel/crm-backend/internal/proposals"
	"github.com/qawafel/crm-backend/internal/tickets"
	"github.com/qawafel/crm-backend/pkg/enums"
	pkgerrors "github.com/qawafel/crm-backend/pkg/errors"
	"github.com/qawafel/crm-backend/pkg/logger"
	"github.com/qawafel/crm-backend/pkg/types"
)

// State is the store's load status. There is no error state: failures keep
// the last good snapshot.
type State string

const (
	StateLoading State = "loading"
	StateReady   State = "ready"
)

const vendorDealProbability = 25

type StoreParams struct {
	API    API
	Logger *logger.Logger
	// PublicBaseURL prefixes intake form links.
	PublicBaseURL string
	Clock         func() time.Time
	NewToken      func() (string, error)
}

// Store holds the last loaded snapshot. Mutations are serialized: each one is
// sent, then the snapshot is reloaded whether or not the write succeeded.
type Store struct {
	api      API
	logg     *logger.Logger
	baseURL  string
	now      func() time.Time
	newToken func() (string, error)

	mu    sync.Mutex
	state State
	snap  bootstrap.Snapshot
}

func NewStore(params StoreParams) (*Store, error) {
	if params.API == nil {
		return nil, errors.New("api required")
	}
	if params.Logger == nil {
		return nil, errors.New("logger required")
	}
	s := &Store{
		api:      params.API,
		logg:     params.Logger,
		baseURL:  params.PublicBaseURL,
		now:      params.Clock,
		newToken: params.NewToken,
		state:    StateLoading,
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newToken == nil {
		s.newToken = func() (string, error) {
			id, err := uuid.NewRandom()
			if err != nil {
				return "", err
			}
			return id.String(), nil
		}
	}
	return s, nil
}

// State reports the current load status.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Snapshot returns the last successfully loaded snapshot.
func (s *Store) Snapshot() bootstrap.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}

// Load fetches a fresh snapshot.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateLoading
	err := s.reloadLocked(ctx)
	s.state = StateReady
	return err
}

// Mutate sends one action and reloads. The returned error is the mutation's,
// or the reload's when only that failed.
func (s *Store) Mutate(ctx context.Context, action enums.MutationAction, payload any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mutateLocked(ctx, action, payload)
}

func (s *Store) mutateLocked(ctx context.Context, action enums.MutationAction, payload any) error {
	s.state = StateLoading
	defer func() { s.state = StateReady }()

	mutErr := s.api.Mutate(ctx, action, payload)
	if mutErr != nil {
		s.logg.Error(s.logg.WithAction(ctx, string(action)), "client.mutation_failed", mutErr)
	}
	reloadErr := s.reloadLocked(ctx)
	if mutErr != nil {
		return mutErr
	}
	return reloadErr
}

func (s *Store) reloadLocked(ctx context.Context) error {
	snap, err := s.api.Init(ctx)
	if err != nil {
		s.logg.Error(ctx, "client.reload_failed", err)
		return err
	}
	s.snap = snap
	return nil
}

func (s *Store) today() string {
	return types.FormatDate(s.now())
}

// AddTicket opens a ticket dated today.
func (s *Store) AddTicket(ctx context.Context, t tickets.Ticket) error {
	t.Status = enums.TicketStatusOpen
	t.CreatedAt = s.today()
	return s.Mutate(ctx, enums.ActionAddTicket, t)
}

// AddLead adds l with a fresh form token unless it already carries one.
func (s *Store) AddLead(ctx context.Context, l leads.Lead) error {
	if !l.HasFormToken() {
		token, err := s.newToken()
		if err != nil {
			return fmt.Errorf("generate form token: %w", err)
		}
		l.FormToken = &token
	}
	return s.Mutate(ctx, enums.ActionAddLead, l)
}

// SaveProposal adds or updates p, stamping its sent and created dates
// against the stored version.
func (s *Store) SaveProposal(ctx context.Context, p proposals.Proposal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var prev *proposals.Proposal
	if p.ID != 0 {
		for i := range s.snap.Proposals {
			if s.snap.Proposals[i].ID == p.ID {
				prev = &s.snap.Proposals[i]
				break
			}
		}
		if prev == nil {
			return pkgerrors.New(pkgerrors.CodeNotFound, "proposal not found")
		}
	}
	p = proposals.StampSentDate(prev, p, s.now())
	if prev == nil {
		return s.mutateLocked(ctx, enums.ActionAddProposal, p)
	}
	return s.mutateLocked(ctx, enums.ActionUpdateProposal, p)
}

// IntakeLink returns the public form link for lead leadID, issuing and
// persisting a token first if the lead has none.
func (s *Store) IntakeLink(ctx context.Context, leadID int64) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lead, ok := findLead(s.snap.Leads, leadID)
	if !ok {
		return "", pkgerrors.New(pkgerrors.CodeNotFound, "lead not found")
	}
	if lead.HasFormToken() {
		return intake.Link(s.baseURL, *lead.FormToken), nil
	}

	token, err := s.newToken()
	if err != nil {
		return "", fmt.Errorf("generate form token: %w", err)
	}
	lead.FormToken = &token
	if err := s.mutateLocked(ctx, enums.ActionUpdateLead, lead); err != nil {
		return "", err
	}
	// the link is only handed out once the stored token matches ours
	stored, ok := findLead(s.snap.Leads, leadID)
	if !ok || !stored.HasFormToken() {
		return "", pkgerrors.New(pkgerrors.CodeInternal, "form token was not persisted")
	}
	return intake.Link(s.baseURL, *stored.FormToken), nil
}

// SendVendorProposal records a proposal addressed to vendor vendorID. A
// proposal that is not a draft also opens a deal in the Proposal stage.
func (s *Store) SendVendorProposal(ctx context.Context, vendorID int64, p proposals.Proposal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var vendorName, businessName string
	found := false
	for _, v := range s.snap.Vendors {
		if v.ID == vendorID {
			vendorName, businessName, found = v.Name, v.BusinessName, true
			break
		}
	}
	if !found {
		return pkgerrors.New(pkgerrors.CodeNotFound, "vendor not found")
	}

	p.ID = 0
	if p.ClientName == "" {
		p.ClientName = vendorName
	}
	if p.ClientCompany == "" {
		p.ClientCompany = businessName
	}
	now := s.now()
	p = proposals.StampSentDate(nil, p, now)
	if err := s.mutateLocked(ctx, enums.ActionAddProposal, p); err != nil {
		return err
	}

	if p.Status != enums.ProposalStatusDraft {
		deal := deals.Deal{
			Title:       "Deal for " + businessName,
			Company:     businessName,
			ContactName: vendorName,
			Value:       p.Value,
			Stage:       enums.DealStageProposal,
			Probability: vendorDealProbability,
			CloseDate:   types.FormatDate(now.AddDate(0, 1, 0)),
		}
		if err := s.mutateLocked(ctx, enums.ActionAddDeal, deal); err != nil {
			return err
		}
		if err := s.mutateLocked(ctx, enums.ActionAddActivity, activities.Activity{
			Text:      fmt.Sprintf("New deal created for vendor %q from proposal.", businessName),
			Timestamp: types.EpochMillis(now),
			Icon:      enums.ActivityIconDealWon,
		}); err != nil {
			return err
		}
	}

	return s.mutateLocked(ctx, enums.ActionAddActivity, activities.Activity{
		Text:      fmt.Sprintf("Proposal %q sent to vendor %q.", p.Title, businessName),
		Timestamp: types.EpochMillis(now),
		Icon:      enums.ActivityIconProposalSent,
	})
}

func findLead(all []leads.Lead, id int64) (leads.Lead, bool) {
	for _, l := range all {
		if l.ID == id {
			return l, true
		}
	}
	return leads.Lead{}, false
}
