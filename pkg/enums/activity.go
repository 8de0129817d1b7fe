package enums

import "fmt"

// ActivityIcon tags an activity feed entry for rendering.
type ActivityIcon string

const (
	ActivityIconUserPlus     ActivityIcon = "user-plus"
	ActivityIconClipboard    ActivityIcon = "clipboard"
	ActivityIconEnvelope     ActivityIcon = "envelope"
	ActivityIconUserX        ActivityIcon = "user-x"
	ActivityIconPhone        ActivityIcon = "phone"
	ActivityIconBell         ActivityIcon = "bell"
	ActivityIconDealWon      ActivityIcon = "deal-won"
	ActivityIconProposalSent ActivityIcon = "proposal-sent"
)

var validActivityIcons = []ActivityIcon{
	ActivityIconUserPlus,
	ActivityIconClipboard,
	ActivityIconEnvelope,
	ActivityIconUserX,
	ActivityIconPhone,
	ActivityIconBell,
	ActivityIconDealWon,
	ActivityIconProposalSent,
}

// String implements fmt.Stringer.
func (a ActivityIcon) String() string {
	return string(a)
}

// IsValid reports whether the value is a known ActivityIcon.
func (a ActivityIcon) IsValid() bool {
	for _, candidate := range validActivityIcons {
		if candidate == a {
			return true
		}
	}
	return false
}

// ParseActivityIcon converts raw input into a ActivityIcon.
func ParseActivityIcon(value string) (ActivityIcon, error) {
	for _, candidate := range validActivityIcons {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid activity icon %q", value)
}

// ActivityIconValues lists every known ActivityIcon in declaration order.
func ActivityIconValues() []ActivityIcon {
	return append([]ActivityIcon(nil), validActivityIcons...)
}
