package models

type Vendor struct {
	ID           int64   `gorm:"column:id;primaryKey;autoIncrement"`
	Account      Account `gorm:"embedded"`
	BusinessName string  `gorm:"column:business_name"`
	Category     string  `gorm:"column:category"`
}

func (Vendor) TableName() string { return "vendors" }
