package proposals

import (
	"time"

	"github.com/qawafel/crm-backend/pkg/enums"
	"github.com/qawafel/crm-backend/pkg/types"
)

// StampSentDate fills the server-owned dates of next before it is saved.
// prev is the stored version, or nil for a new proposal.
//
// SentDate becomes today the first time the proposal leaves Draft and is
// carried over unchanged afterwards, including when it goes back to Draft.
// CreatedAt keeps the stored value, or today for a new proposal.
func StampSentDate(prev *Proposal, next Proposal, now time.Time) Proposal {
	today := types.FormatDate(now)

	previouslySent := prev != nil && prev.SentDate != ""
	leavingDraft := next.Status != enums.ProposalStatusDraft &&
		(prev == nil || prev.Status == enums.ProposalStatusDraft)

	switch {
	case previouslySent:
		next.SentDate = prev.SentDate
	case leavingDraft:
		next.SentDate = today
	default:
		next.SentDate = ""
	}

	if prev != nil && prev.CreatedAt != "" {
		next.CreatedAt = prev.CreatedAt
	} else {
		next.CreatedAt = today
	}
	return next
}
