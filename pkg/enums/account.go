package enums

import "fmt"

// AccountStatus represents whether a retailer or vendor account may transact.
type AccountStatus string

const (
	AccountStatusActive      AccountStatus = "Active"
	AccountStatusDeactivated AccountStatus = "Deactivated"
)

var validAccountStatuses = []AccountStatus{
	AccountStatusActive,
	AccountStatusDeactivated,
}

// String implements fmt.Stringer.
func (a AccountStatus) String() string {
	return string(a)
}

// IsValid reports whether the value is a known AccountStatus.
func (a AccountStatus) IsValid() bool {
	for _, candidate := range validAccountStatuses {
		if candidate == a {
			return true
		}
	}
	return false
}

// ParseAccountStatus converts raw input into a AccountStatus.
func ParseAccountStatus(value string) (AccountStatus, error) {
	for _, candidate := range validAccountStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid account status %q", value)
}

// AccountStatusValues lists every known AccountStatus in declaration order.
func AccountStatusValues() []AccountStatus {
	return append([]AccountStatus(nil), validAccountStatuses...)
}

// MarketplaceStatus tracks where a retailer or vendor sits in the marketplace lifecycle.
type MarketplaceStatus string

const (
	MarketplaceStatusActivated   MarketplaceStatus = "Activated"
	MarketplaceStatusRetained    MarketplaceStatus = "Retained"
	MarketplaceStatusDormant     MarketplaceStatus = "Dormant"
	MarketplaceStatusChurned     MarketplaceStatus = "Churned"
	MarketplaceStatusResurrected MarketplaceStatus = "Resurrected"
)

var validMarketplaceStatuses = []MarketplaceStatus{
	MarketplaceStatusActivated,
	MarketplaceStatusRetained,
	MarketplaceStatusDormant,
	MarketplaceStatusChurned,
	MarketplaceStatusResurrected,
}

// String implements fmt.Stringer.
func (m MarketplaceStatus) String() string {
	return string(m)
}

// IsValid reports whether the value is a known MarketplaceStatus.
func (m MarketplaceStatus) IsValid() bool {
	for _, candidate := range validMarketplaceStatuses {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseMarketplaceStatus converts raw input into a MarketplaceStatus.
func ParseMarketplaceStatus(value string) (MarketplaceStatus, error) {
	for _, candidate := range validMarketplaceStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid marketplace status %q", value)
}

// MarketplaceStatusValues lists every known MarketplaceStatus in declaration order.
func MarketplaceStatusValues() []MarketplaceStatus {
	return append([]MarketplaceStatus(nil), validMarketplaceStatuses...)
}
