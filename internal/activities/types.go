package activities

import (
	"github.com/qawafel/crm-backend/pkg/db/models"
	"github.com/qawafel/crm-backend/pkg/enums"
)

// Activity is an immutable feed entry. Timestamp is epoch milliseconds.
type Activity struct {
	ID        int64              `json:"id"`
	Text      string             `json:"text"`
	Timestamp int64              `json:"timestamp"`
	Icon      enums.ActivityIcon `json:"icon"`
	UserID    *int64             `json:"userId,omitempty"`
	UserType  *enums.UserType    `json:"userType,omitempty"`
}

func FromModel(m models.Activity) Activity {
	return Activity{
		ID:        m.ID,
		Text:      m.Text,
		Timestamp: m.Timestamp,
		Icon:      m.Icon,
		UserID:    m.UserID,
		UserType:  m.UserType,
	}
}

func (a Activity) ToModel() models.Activity {
	m := models.Activity{
		Text:      a.Text,
		Timestamp: a.Timestamp,
		Icon:      a.Icon,
		UserID:    a.UserID,
		UserType:  a.UserType,
	}
	// the original feed sends 0 / "" for "no user"
	if m.UserID != nil && *m.UserID == 0 {
		m.UserID = nil
	}
	if m.UserType != nil && *m.UserType == "" {
		m.UserType = nil
	}
	return m
}
