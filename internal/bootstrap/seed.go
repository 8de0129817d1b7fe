package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/qawafel/crm-backend/internal/accounts"
	"github.com/qawafel/crm-backend/internal/activities"
	"github.com/qawafel/crm-backend/internal/deals"
	"github.com/qawafel/crm-backend/internal/leads"
	"github.com/qawafel/crm-backend/internal/profile"
	"github.com/qawafel/crm-backend/internal/proposals"
	"github.com/qawafel/crm-backend/internal/retailers"
	"github.com/qawafel/crm-backend/internal/tickets"
	"github.com/qawafel/crm-backend/internal/vendors"
	"github.com/qawafel/crm-backend/pkg/enums"
	"github.com/qawafel/crm-backend/pkg/types"
	"gorm.io/gorm"
)

func strPtr(v string) *string { return &v }
func intPtr(v int) *int       { return &v }

var seedRetailers = []retailers.Retailer{
	{
		BaseUser: accounts.BaseUser{
			Name: "Ahmed Al-Farsi", Email: "ahmed@farsimarket.com", Phone: "555-0101",
			AccountStatus: enums.AccountStatusActive, MarketplaceStatus: enums.MarketplaceStatusActivated, JoinDate: "2023-01-15",
		},
		Company: "Farsi Supermarket",
	},
	{
		BaseUser: accounts.BaseUser{
			Name: "Fatima Al-Zahrani", Email: "fatima@zahranishop.com", Phone: "555-0102",
			AccountStatus: enums.AccountStatusActive, MarketplaceStatus: enums.MarketplaceStatusRetained, JoinDate: "2023-02-20",
		},
		Company: "Zahrani Corner Shop",
	},
}

var seedVendors = []vendors.Vendor{
	{
		BaseUser: accounts.BaseUser{
			Name: "Mohammed Khan", Email: "mohammed@khandates.com", Phone: "555-0201",
			AccountStatus: enums.AccountStatusActive, MarketplaceStatus: enums.MarketplaceStatusActivated, JoinDate: "2023-03-10",
		},
		BusinessName: "Khan Dates",
		Category:     "Dates",
	},
	{
		BaseUser: accounts.BaseUser{
			Name: "Aisha Abdullah", Email: "aisha@abdullahspices.com", Phone: "555-0202",
			AccountStatus: enums.AccountStatusDeactivated, MarketplaceStatus: enums.MarketplaceStatusChurned, JoinDate: "2023-04-05",
		},
		BusinessName: "Abdullah Spices",
		Category:     "Spices",
	},
}

var seedLeads = []leads.Lead{
	{
		Company: "Modern Grocers", ContactName: "Yusuf Ahmed", Email: "yusuf@moderngrocers.sa", Phone: "555-0301",
		Status: enums.LeadStatusNew, Source: "Website", Value: 50000,
		BusinessSize: strPtr("11-50 employees"), NumberOfBranches: intPtr(3), FormToken: strPtr("token-123-abc"),
	},
	{
		Company: "Fresh Foods Co.", ContactName: "Layla Ibrahim", Email: "layla@freshfoods.co", Phone: "555-0302",
		Status: enums.LeadStatusContacted, Source: "Referral", Value: 75000,
		BusinessSize: strPtr("51-200 employees"), NumberOfBranches: intPtr(12),
	},
	{
		Company: "City Mart", ContactName: "Khalid Hasan", Email: "khalid@citymart.sa", Phone: "555-0303",
		Status: enums.LeadStatusProposal, Source: "Cold Call", Value: 30000,
		FormToken: strPtr("token-456-def"),
	},
}

var seedDeals = []deals.Deal{
	{Title: "Expansion Deal with Fresh Foods Co.", Company: "Fresh Foods Co.", ContactName: "Layla Ibrahim", Value: 75000, Stage: enums.DealStageDiscovery, Probability: 30, CloseDate: "2024-08-30"},
	{Title: "Initial Supply for City Mart", Company: "City Mart", ContactName: "Khalid Hasan", Value: 30000, Stage: enums.DealStageProposal, Probability: 50, CloseDate: "2024-07-25"},
	{Title: "Q3 Dates Supply", Company: "Farsi Supermarket", ContactName: "Ahmed Al-Farsi", Value: 25000, Stage: enums.DealStageClosedWon, Probability: 100, CloseDate: "2024-06-15"},
}

var seedProposals = []proposals.Proposal{
	{Title: "Q3 Wholesale Package", ClientName: "Khalid Hasan", ClientCompany: "City Mart", Value: 30000, Currency: "SAR", Status: enums.ProposalStatusSent, ValidUntil: "2024-07-20", SentDate: "2024-06-20", CreatedAt: "2024-06-19"},
	{Title: "Draft for Regional Supplier", ClientName: "Noura Saad", ClientCompany: "Saad Trading", Value: 120000, Currency: "SAR", Status: enums.ProposalStatusDraft, ValidUntil: "2024-08-15", CreatedAt: "2024-06-25"},
}

var seedTickets = []tickets.Ticket{
	{Title: "Late delivery inquiry", Description: "Our last order #12345 was delayed. Can we get an update?", Status: enums.TicketStatusOpen, Type: enums.TicketTypeSupport, UserID: 1, UserType: enums.UserTypeRetailer, CreatedAt: "2024-06-28"},
	{Title: "API for inventory management", Description: "It would be great if vendors could integrate their inventory system via an API.", Status: enums.TicketStatusInProgress, Type: enums.TicketTypeFeatureRequest, UserID: 1, UserType: enums.UserTypeVendor, CreatedAt: "2024-06-25"},
}

var seedProfile = profile.Profile{FullName: "Sales Manager", Email: "manager@qawafel.com", Phone: "555-0000"}

// seedActivities are stamped relative to now so the feed looks recent.
func seedActivities(now time.Time) []activities.Activity {
	return []activities.Activity{
		{Text: "New lead 'Modern Grocers' was added.", Timestamp: types.EpochMillis(now.Add(-5 * time.Minute)), Icon: enums.ActivityIconUserPlus},
		{Text: "Proposal sent to 'City Mart'.", Timestamp: types.EpochMillis(now.Add(-2 * time.Hour)), Icon: enums.ActivityIconProposalSent},
		{Text: "Deal 'Q3 Dates Supply' was won!", Timestamp: types.EpochMillis(now.Add(-24 * time.Hour)), Icon: enums.ActivityIconDealWon},
	}
}

// seed writes the sample data through tx. The profile goes last so its
// presence means the whole seed committed.
func seed(ctx context.Context, tx *gorm.DB, now time.Time) error {
	retailerRepo := retailers.NewRepository(tx)
	for _, r := range seedRetailers {
		if _, err := retailerRepo.Create(ctx, r); err != nil {
			return fmt.Errorf("seed retailer %s: %w", r.Email, err)
		}
	}
	vendorRepo := vendors.NewRepository(tx)
	for _, v := range seedVendors {
		if _, err := vendorRepo.Create(ctx, v); err != nil {
			return fmt.Errorf("seed vendor %s: %w", v.Email, err)
		}
	}
	leadRepo := leads.NewRepository(tx)
	for _, l := range seedLeads {
		if _, err := leadRepo.Create(ctx, l); err != nil {
			return fmt.Errorf("seed lead %s: %w", l.Company, err)
		}
	}
	dealRepo := deals.NewRepository(tx)
	for _, d := range seedDeals {
		if _, err := dealRepo.Create(ctx, d); err != nil {
			return fmt.Errorf("seed deal %s: %w", d.Title, err)
		}
	}
	proposalRepo := proposals.NewRepository(tx)
	for _, p := range seedProposals {
		if _, err := proposalRepo.Create(ctx, p); err != nil {
			return fmt.Errorf("seed proposal %s: %w", p.Title, err)
		}
	}
	ticketRepo := tickets.NewRepository(tx)
	for _, tk := range seedTickets {
		if _, err := ticketRepo.Create(ctx, tk); err != nil {
			return fmt.Errorf("seed ticket %s: %w", tk.Title, err)
		}
	}
	activityRepo := activities.NewRepository(tx)
	for _, a := range seedActivities(now) {
		if _, err := activityRepo.Append(ctx, a); err != nil {
			return fmt.Errorf("seed activity: %w", err)
		}
	}
	if err := profile.NewRepository(tx).Create(ctx, seedProfile); err != nil {
		return fmt.Errorf("seed profile: %w", err)
	}
	return nil
}
