// Package accounts holds the fields retailers and vendors have in common and
// the discriminant used to tell them apart.
package accounts

import (
	"github.com/qawafel/crm-backend/pkg/db/models"
	"github.com/qawafel/crm-backend/pkg/enums"
)

// BaseUser is embedded by retailers.Retailer and vendors.Vendor.
type BaseUser struct {
	ID                int64                   `json:"id"`
	Name              string                  `json:"name"`
	Email             string                  `json:"email"`
	Phone             string                  `json:"phone"`
	AccountStatus     enums.AccountStatus     `json:"accountStatus"`
	MarketplaceStatus enums.MarketplaceStatus `json:"marketplaceStatus"`
	JoinDate          string                  `json:"joinDate"`
}

// Ref identifies one retailer or vendor across both collections.
type Ref struct {
	Type enums.UserType
	ID   int64
}

// Account converts the shared fields to their column form.
func (b BaseUser) Account() models.Account {
	return models.Account{
		Name:              b.Name,
		Email:             b.Email,
		Phone:             b.Phone,
		AccountStatus:     b.AccountStatus,
		MarketplaceStatus: b.MarketplaceStatus,
		JoinDate:          b.JoinDate,
	}
}

// FromAccount builds a BaseUser from a stored row.
func FromAccount(id int64, a models.Account) BaseUser {
	return BaseUser{
		ID:                id,
		Name:              a.Name,
		Email:             a.Email,
		Phone:             a.Phone,
		AccountStatus:     a.AccountStatus,
		MarketplaceStatus: a.MarketplaceStatus,
		JoinDate:          a.JoinDate,
	}
}

// UpdateColumns lists the shared columns an update may overwrite. The join
// date is fixed at insert and never part of an update.
func (b BaseUser) UpdateColumns() map[string]any {
	return map[string]any{
		"name":               b.Name,
		"email":              b.Email,
		"phone":              b.Phone,
		"account_status":     b.AccountStatus,
		"marketplace_status": b.MarketplaceStatus,
	}
}
