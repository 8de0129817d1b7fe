package enums

import "fmt"

// DealStage is the pipeline column a deal sits in. Any stage may move to any other.
type DealStage string

const (
	DealStageNew         DealStage = "New"
	DealStageDiscovery   DealStage = "Discovery"
	DealStageProposal    DealStage = "Proposal"
	DealStageNegotiation DealStage = "Negotiation"
	DealStageClosedWon   DealStage = "Closed Won"
	DealStageLost        DealStage = "Lost"
)

var validDealStages = []DealStage{
	DealStageNew,
	DealStageDiscovery,
	DealStageProposal,
	DealStageNegotiation,
	DealStageClosedWon,
	DealStageLost,
}

// String implements fmt.Stringer.
func (d DealStage) String() string {
	return string(d)
}

// IsValid reports whether the value is a known DealStage.
func (d DealStage) IsValid() bool {
	for _, candidate := range validDealStages {
		if candidate == d {
			return true
		}
	}
	return false
}

// ParseDealStage converts raw input into a DealStage.
func ParseDealStage(value string) (DealStage, error) {
	for _, candidate := range validDealStages {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid deal stage %q", value)
}

// DealStageValues lists every known DealStage in declaration order.
func DealStageValues() []DealStage {
	return append([]DealStage(nil), validDealStages...)
}
