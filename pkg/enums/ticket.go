package enums

import "fmt"

// TicketStatus is the support workflow state of a ticket.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "Open"
	TicketStatusInProgress TicketStatus = "In Progress"
	TicketStatusClosed     TicketStatus = "Closed"
)

var validTicketStatuses = []TicketStatus{
	TicketStatusOpen,
	TicketStatusInProgress,
	TicketStatusClosed,
}

// String implements fmt.Stringer.
func (t TicketStatus) String() string {
	return string(t)
}

// IsValid reports whether the value is a known TicketStatus.
func (t TicketStatus) IsValid() bool {
	for _, candidate := range validTicketStatuses {
		if candidate == t {
			return true
		}
	}
	return false
}

// ParseTicketStatus converts raw input into a TicketStatus.
func ParseTicketStatus(value string) (TicketStatus, error) {
	for _, candidate := range validTicketStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid ticket status %q", value)
}

// TicketStatusValues lists every known TicketStatus in declaration order.
func TicketStatusValues() []TicketStatus {
	return append([]TicketStatus(nil), validTicketStatuses...)
}

// TicketType distinguishes support requests from feature requests.
type TicketType string

const (
	TicketTypeSupport        TicketType = "Support"
	TicketTypeFeatureRequest TicketType = "Feature Request"
)

var validTicketTypes = []TicketType{
	TicketTypeSupport,
	TicketTypeFeatureRequest,
}

// String implements fmt.Stringer.
func (t TicketType) String() string {
	return string(t)
}

// IsValid reports whether the value is a known TicketType.
func (t TicketType) IsValid() bool {
	for _, candidate := range validTicketTypes {
		if candidate == t {
			return true
		}
	}
	return false
}

// ParseTicketType converts raw input into a TicketType.
func ParseTicketType(value string) (TicketType, error) {
	for _, candidate := range validTicketTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid ticket type %q", value)
}

// TicketTypeValues lists every known TicketType in declaration order.
func TicketTypeValues() []TicketType {
	return append([]TicketType(nil), validTicketTypes...)
}
