package tickets

import (
	"github.com/qawafel/crm-backend/internal/accounts"
	"github.com/qawafel/crm-backend/pkg/db/models"
	"github.com/qawafel/crm-backend/pkg/enums"
)

// Ticket is the API shape of a support ticket.
type Ticket struct {
	ID          int64              `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Status      enums.TicketStatus `json:"status"`
	Type        enums.TicketType   `json:"type"`
	UserID      int64              `json:"userId"`
	UserType    enums.UserType     `json:"userType"`
	CreatedAt   string             `json:"createdAt"`
}

// Submitter identifies the retailer or vendor that raised the ticket.
func (t Ticket) Submitter() accounts.Ref {
	return accounts.Ref{Type: t.UserType, ID: t.UserID}
}

func FromModel(m models.Ticket) Ticket {
	return Ticket{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Status:      m.Status,
		Type:        m.Type,
		UserID:      m.UserID,
		UserType:    m.UserType,
		CreatedAt:   m.CreatedAt,
	}
}

func (t Ticket) ToModel() models.Ticket {
	return models.Ticket{
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		Type:        t.Type,
		UserID:      t.UserID,
		UserType:    t.UserType,
		CreatedAt:   t.CreatedAt,
	}
}
