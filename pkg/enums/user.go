package enums

import "fmt"

// UserType discriminates the retailer and vendor variants of a marketplace user.
type UserType string

const (
	UserTypeRetailer UserType = "Retailer"
	UserTypeVendor   UserType = "Vendor"
)

var validUserTypes = []UserType{
	UserTypeRetailer,
	UserTypeVendor,
}

// String implements fmt.Stringer.
func (u UserType) String() string {
	return string(u)
}

// IsValid reports whether the value is a known UserType.
func (u UserType) IsValid() bool {
	for _, candidate := range validUserTypes {
		if candidate == u {
			return true
		}
	}
	return false
}

// ParseUserType converts raw input into a UserType.
func ParseUserType(value string) (UserType, error) {
	for _, candidate := range validUserTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid user type %q", value)
}

// UserTypeValues lists every known UserType in declaration order.
func UserTypeValues() []UserType {
	return append([]UserType(nil), validUserTypes...)
}
