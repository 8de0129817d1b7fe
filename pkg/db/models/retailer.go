package models

type Retailer struct {
	ID      int64   `gorm:"column:id;primaryKey;autoIncrement"`
	Account Account `gorm:"embedded"`
	Company string  `gorm:"column:company"`
}

func (Retailer) TableName() string { return "retailers" }
