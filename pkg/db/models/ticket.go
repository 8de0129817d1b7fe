package models

import "github.com/qawafel/crm-backend/pkg/enums"

// Ticket is a support request raised by a retailer or vendor. Status and
// CreatedAt are fixed by the gateway on insert.
type Ticket struct {
	ID          int64              `gorm:"column:id;primaryKey;autoIncrement"`
	Title       string             `gorm:"column:title"`
	Description string             `gorm:"column:description"`
	Status      enums.TicketStatus `gorm:"column:status"`
	Type        enums.TicketType   `gorm:"column:type"`
	UserID      int64              `gorm:"column:user_id"`
	UserType    enums.UserType     `gorm:"column:user_type"`
	CreatedAt   string             `gorm:"column:created_at;autoCreateTime:false"`
}

func (Ticket) TableName() string { return "tickets" }
