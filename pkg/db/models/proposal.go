package models

import "github.com/qawafel/crm-backend/pkg/enums"

type Proposal struct {
	ID            int64                `gorm:"column:id;primaryKey;autoIncrement"`
	Title         string               `gorm:"column:title"`
	ClientName    string               `gorm:"column:client_name"`
	ClientCompany string               `gorm:"column:client_company"`
	Value         float64              `gorm:"column:value"`
	Currency      string               `gorm:"column:currency"`
	Status        enums.ProposalStatus `gorm:"column:status"`
	ValidUntil    string               `gorm:"column:valid_until"`
	SentDate      *string              `gorm:"column:sent_date"`
	CreatedAt     string               `gorm:"column:created_at;autoCreateTime:false"`
}

func (Proposal) TableName() string { return "proposals" }
