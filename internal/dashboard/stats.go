// Package dashboard derives the headline numbers shown on the CRM home page
// from a loaded snapshot.
package dashboard

import (
	"github.com/qawafel/crm-backend/internal/bootstrap"
	"github.com/qawafel/crm-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

type StageValue struct {
	Stage enums.DealStage `json:"stage"`
	Count int             `json:"count"`
	Value float64         `json:"value"`
}

type ProposalSummary struct {
	Status enums.ProposalStatus `json:"status"`
	Count  int                  `json:"count"`
	Value  float64              `json:"value"`
}

type Stats struct {
	TotalLeads     int               `json:"totalLeads"`
	TotalVendors   int               `json:"totalVendors"`
	TotalRetailers int               `json:"totalRetailers"`
	ActiveDeals    int               `json:"activeDeals"`
	Revenue        float64           `json:"revenue"`
	OpenTickets    int               `json:"openTickets"`
	Pipeline       []StageValue      `json:"pipeline"`
	Proposals      []ProposalSummary `json:"proposals"`
}

// Compute builds Stats. Money is summed in decimal so that repeated float
// additions do not drift. Lost deals are left out of the pipeline.
func Compute(snap bootstrap.Snapshot) Stats {
	stats := Stats{
		TotalLeads:     len(snap.Leads),
		TotalVendors:   len(snap.Vendors),
		TotalRetailers: len(snap.Retailers),
	}

	revenue := decimal.Zero
	stageTotals := make(map[enums.DealStage]decimal.Decimal)
	stageCounts := make(map[enums.DealStage]int)
	for _, d := range snap.Deals {
		if d.Stage == enums.DealStageLost {
			continue
		}
		value := decimal.NewFromFloat(d.Value)
		if d.Stage == enums.DealStageClosedWon {
			revenue = revenue.Add(value)
		} else {
			stats.ActiveDeals++
		}
		stageTotals[d.Stage] = stageTotals[d.Stage].Add(value)
		stageCounts[d.Stage]++
	}
	stats.Revenue = revenue.InexactFloat64()

	for _, stage := range enums.DealStageValues() {
		if stage == enums.DealStageLost {
			continue
		}
		stats.Pipeline = append(stats.Pipeline, StageValue{
			Stage: stage,
			Count: stageCounts[stage],
			Value: stageTotals[stage].InexactFloat64(),
		})
	}

	proposalTotals := make(map[enums.ProposalStatus]decimal.Decimal)
	proposalCounts := make(map[enums.ProposalStatus]int)
	for _, p := range snap.Proposals {
		proposalTotals[p.Status] = proposalTotals[p.Status].Add(decimal.NewFromFloat(p.Value))
		proposalCounts[p.Status]++
	}
	for _, status := range enums.ProposalStatusValues() {
		stats.Proposals = append(stats.Proposals, ProposalSummary{
			Status: status,
			Count:  proposalCounts[status],
			Value:  proposalTotals[status].InexactFloat64(),
		})
	}

	for _, t := range snap.Tickets {
		if t.Status != enums.TicketStatusClosed {
			stats.OpenTickets++
		}
	}
	return stats
}
