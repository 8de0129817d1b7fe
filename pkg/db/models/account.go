package models

import "github.com/qawafel/crm-backend/pkg/enums"

// Account is the column set shared by retailers and vendors.
type Account struct {
	Name              string                  `gorm:"column:name;not null"`
	Email             string                  `gorm:"column:email;not null;unique"`
	Phone             string                  `gorm:"column:phone"`
	AccountStatus     enums.AccountStatus     `gorm:"column:account_status"`
	MarketplaceStatus enums.MarketplaceStatus `gorm:"column:marketplace_status"`
	JoinDate          string                  `gorm:"column:join_date"`
}
