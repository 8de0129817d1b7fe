package gateway

import (
	"context"

	"github.com/qawafel/crm-backend/internal/activities"
	"github.com/qawafel/crm-backend/internal/deals"
	"github.com/qawafel/crm-backend/internal/leads"
	"github.com/qawafel/crm-backend/internal/profile"
	"github.com/qawafel/crm-backend/internal/proposals"
	"github.com/qawafel/crm-backend/internal/retailers"
	"github.com/qawafel/crm-backend/internal/tickets"
	"github.com/qawafel/crm-backend/internal/vendors"
	"gorm.io/gorm"
)

type RetailerStore interface {
	Create(ctx context.Context, in retailers.Retailer) (retailers.Retailer, error)
	Update(ctx context.Context, in retailers.Retailer) error
}

type VendorStore interface {
	Create(ctx context.Context, in vendors.Vendor) (vendors.Vendor, error)
	Update(ctx context.Context, in vendors.Vendor) error
}

type LeadStore interface {
	Create(ctx context.Context, in leads.Lead) (leads.Lead, error)
	Update(ctx context.Context, in leads.Lead) error
	Delete(ctx context.Context, id int64) error
}

type TicketStore interface {
	Create(ctx context.Context, in tickets.Ticket) (tickets.Ticket, error)
	Update(ctx context.Context, in tickets.Ticket) error
}

type ProposalStore interface {
	Create(ctx context.Context, in proposals.Proposal) (proposals.Proposal, error)
	Update(ctx context.Context, in proposals.Proposal) error
	Delete(ctx context.Context, id int64) error
}

type DealStore interface {
	Create(ctx context.Context, in deals.Deal) (deals.Deal, error)
	Update(ctx context.Context, in deals.Deal) error
	UpdateStage(ctx context.Context, change deals.StageChange) error
	Delete(ctx context.Context, id int64) error
}

type ProfileStore interface {
	Update(ctx context.Context, in profile.Profile) error
}

type ActivityStore interface {
	Append(ctx context.Context, in activities.Activity) (activities.Activity, error)
}

// Stores is the write side of every collection the gateway can touch.
type Stores struct {
	Retailers  RetailerStore
	Vendors    VendorStore
	Leads      LeadStore
	Tickets    TicketStore
	Proposals  ProposalStore
	Deals      DealStore
	Profile    ProfileStore
	Activities ActivityStore
}

// NewStores binds the gorm repositories of every collection to conn.
func NewStores(conn *gorm.DB) Stores {
	return Stores{
		Retailers:  retailers.NewRepository(conn),
		Vendors:    vendors.NewRepository(conn),
		Leads:      leads.NewRepository(conn),
		Tickets:    tickets.NewRepository(conn),
		Proposals:  proposals.NewRepository(conn),
		Deals:      deals.NewRepository(conn),
		Profile:    profile.NewRepository(conn),
		Activities: activities.NewRepository(conn),
	}
}

func (s Stores) validate() error {
	switch {
	case s.Retailers == nil:
		return errMissing("retailer store")
	case s.Vendors == nil:
		return errMissing("vendor store")
	case s.Leads == nil:
		return errMissing("lead store")
	case s.Tickets == nil:
		return errMissing("ticket store")
	case s.Proposals == nil:
		return errMissing("proposal store")
	case s.Deals == nil:
		return errMissing("deal store")
	case s.Profile == nil:
		return errMissing("profile store")
	case s.Activities == nil:
		return errMissing("activity store")
	}
	return nil
}
