package models

import "github.com/qawafel/crm-backend/pkg/enums"

// Activity is an append-only feed entry. Timestamp is epoch milliseconds.
type Activity struct {
	ID        int64              `gorm:"column:id;primaryKey;autoIncrement"`
	Text      string             `gorm:"column:text"`
	Timestamp int64              `gorm:"column:timestamp"`
	Icon      enums.ActivityIcon `gorm:"column:icon"`
	UserID    *int64             `gorm:"column:user_id"`
	UserType  *enums.UserType    `gorm:"column:user_type"`
}

func (Activity) TableName() string { return "activities" }
