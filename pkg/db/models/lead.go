package models

import "github.com/qawafel/crm-backend/pkg/enums"

// Lead is a prospective customer. FormToken is the opaque key for the
// public intake link and stays fixed once stored.
type Lead struct {
	ID               int64            `gorm:"column:id;primaryKey;autoIncrement"`
	Company          string           `gorm:"column:company"`
	ContactName      string           `gorm:"column:contact_name"`
	Email            string           `gorm:"column:email"`
	Phone            string           `gorm:"column:phone"`
	Status           enums.LeadStatus `gorm:"column:status"`
	Source           string           `gorm:"column:source"`
	Value            float64          `gorm:"column:value"`
	BusinessSize     *string          `gorm:"column:business_size"`
	NumberOfBranches *int             `gorm:"column:number_of_branches"`
	FormToken        *string          `gorm:"column:form_token;unique"`
}

func (Lead) TableName() string { return "leads" }
