package enums

import "fmt"

// MutationAction tags one write accepted by the mutation gateway.
type MutationAction string

const (
	ActionAddRetailer     MutationAction = "ADD_RETAILER"
	ActionUpdateRetailer  MutationAction = "UPDATE_RETAILER"
	ActionAddVendor       MutationAction = "ADD_VENDOR"
	ActionUpdateVendor    MutationAction = "UPDATE_VENDOR"
	ActionAddLead         MutationAction = "ADD_LEAD"
	ActionUpdateLead      MutationAction = "UPDATE_LEAD"
	ActionDeleteLead      MutationAction = "DELETE_LEAD"
	ActionAddTicket       MutationAction = "ADD_TICKET"
	ActionUpdateTicket    MutationAction = "UPDATE_TICKET"
	ActionAddProposal     MutationAction = "ADD_PROPOSAL"
	ActionUpdateProposal  MutationAction = "UPDATE_PROPOSAL"
	ActionDeleteProposal  MutationAction = "DELETE_PROPOSAL"
	ActionAddDeal         MutationAction = "ADD_DEAL"
	ActionUpdateDeal      MutationAction = "UPDATE_DEAL"
	ActionDeleteDeal      MutationAction = "DELETE_DEAL"
	ActionUpdateDealStage MutationAction = "UPDATE_DEAL_STAGE"
	ActionUpdateProfile   MutationAction = "UPDATE_PROFILE"
	ActionAddActivity     MutationAction = "ADD_ACTIVITY"
)

var validMutationActions = []MutationAction{
	ActionAddRetailer,
	ActionUpdateRetailer,
	ActionAddVendor,
	ActionUpdateVendor,
	ActionAddLead,
	ActionUpdateLead,
	ActionDeleteLead,
	ActionAddTicket,
	ActionUpdateTicket,
	ActionAddProposal,
	ActionUpdateProposal,
	ActionDeleteProposal,
	ActionAddDeal,
	ActionUpdateDeal,
	ActionDeleteDeal,
	ActionUpdateDealStage,
	ActionUpdateProfile,
	ActionAddActivity,
}

// String implements fmt.Stringer.
func (a MutationAction) String() string {
	return string(a)
}

// IsValid reports whether the value is a known MutationAction.
func (a MutationAction) IsValid() bool {
	for _, candidate := range validMutationActions {
		if candidate == a {
			return true
		}
	}
	return false
}

// ParseMutationAction converts raw input into a MutationAction.
func ParseMutationAction(value string) (MutationAction, error) {
	for _, candidate := range validMutationActions {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid mutation action %q", value)
}

// MutationActionValues lists every known MutationAction in declaration order.
func MutationActionValues() []MutationAction {
	return append([]MutationAction(nil), validMutationActions...)
}
