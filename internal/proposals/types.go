package proposals

import (
	"github.com/qawafel/crm-backend/pkg/db/models"
	"github.com/qawafel/crm-backend/pkg/enums"
)

// Proposal is the API shape of a proposal. SentDate is empty until the
// proposal first leaves Draft.
type Proposal struct {
	ID            int64                `json:"id"`
	Title         string               `json:"title"`
	ClientName    string               `json:"clientName"`
	ClientCompany string               `json:"clientCompany"`
	Value         float64              `json:"value"`
	Currency      string               `json:"currency"`
	Status        enums.ProposalStatus `json:"status"`
	ValidUntil    string               `json:"validUntil"`
	SentDate      string               `json:"sentDate"`
	CreatedAt     string               `json:"createdAt"`
}

func FromModel(m models.Proposal) Proposal {
	p := Proposal{
		ID:            m.ID,
		Title:         m.Title,
		ClientName:    m.ClientName,
		ClientCompany: m.ClientCompany,
		Value:         m.Value,
		Currency:      m.Currency,
		Status:        m.Status,
		ValidUntil:    m.ValidUntil,
		CreatedAt:     m.CreatedAt,
	}
	if m.SentDate != nil {
		p.SentDate = *m.SentDate
	}
	return p
}

func (p Proposal) ToModel() models.Proposal {
	return models.Proposal{
		Title:         p.Title,
		ClientName:    p.ClientName,
		ClientCompany: p.ClientCompany,
		Value:         p.Value,
		Currency:      p.Currency,
		Status:        p.Status,
		ValidUntil:    p.ValidUntil,
		SentDate:      nullableDate(p.SentDate),
		CreatedAt:     p.CreatedAt,
	}
}

func nullableDate(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
