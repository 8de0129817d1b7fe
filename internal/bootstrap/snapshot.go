package bootstrap

import (
	"github.com/qawafel/crm-backend/internal/activities"
	"github.com/qawafel/crm-backend/internal/deals"
	"github.com/qawafel/crm-backend/internal/leads"
	"github.com/qawafel/crm-backend/internal/profile"
	"github.com/qawafel/crm-backend/internal/proposals"
	"github.com/qawafel/crm-backend/internal/retailers"
	"github.com/qawafel/crm-backend/internal/tickets"
	"github.com/qawafel/crm-backend/internal/vendors"
)

// Snapshot is every collection as the client sees it after a load.
// UserProfile is nil only if the singleton row has gone missing.
type Snapshot struct {
	Retailers   []retailers.Retailer  `json:"retailers"`
	Vendors     []vendors.Vendor      `json:"vendors"`
	Tickets     []tickets.Ticket      `json:"tickets"`
	Proposals   []proposals.Proposal  `json:"proposals"`
	Leads       []leads.Lead          `json:"leads"`
	Deals       []deals.Deal          `json:"deals"`
	Activities  []activities.Activity `json:"activities"`
	UserProfile *profile.Profile      `json:"userProfile"`
}
