package models

import "github.com/qawafel/crm-backend/pkg/enums"

type Deal struct {
	ID          int64           `gorm:"column:id;primaryKey;autoIncrement"`
	Title       string          `gorm:"column:title"`
	Company     string          `gorm:"column:company"`
	ContactName string          `gorm:"column:contact_name"`
	Value       float64         `gorm:"column:value"`
	Stage       enums.DealStage `gorm:"column:stage"`
	Probability int             `gorm:"column:probability"`
	CloseDate   string          `gorm:"column:close_date"`
}

func (Deal) TableName() string { return "deals" }
