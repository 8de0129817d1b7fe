package leads

import (
	"github.com/qawafel/crm-backend/pkg/db/models"
	"github.com/qawafel/crm-backend/pkg/enums"
)

// Lead is the API shape of a lead. BusinessSize and NumberOfBranches are only
// ever filled through the public intake form.
type Lead struct {
	ID               int64            `json:"id"`
	Company          string           `json:"company"`
	ContactName      string           `json:"contactName"`
	Email            string           `json:"email"`
	Phone            string           `json:"phone"`
	Status           enums.LeadStatus `json:"status"`
	Source           string           `json:"source"`
	Value            float64          `json:"value"`
	BusinessSize     *string          `json:"businessSize,omitempty"`
	NumberOfBranches *int             `json:"numberOfBranches,omitempty"`
	FormToken        *string          `json:"formToken,omitempty"`
}

// HasFormToken reports whether an intake token is already attached.
func (l Lead) HasFormToken() bool {
	return l.FormToken != nil && *l.FormToken != ""
}

func FromModel(m models.Lead) Lead {
	return Lead{
		ID:               m.ID,
		Company:          m.Company,
		ContactName:      m.ContactName,
		Email:            m.Email,
		Phone:            m.Phone,
		Status:           m.Status,
		Source:           m.Source,
		Value:            m.Value,
		BusinessSize:     m.BusinessSize,
		NumberOfBranches: m.NumberOfBranches,
		FormToken:        m.FormToken,
	}
}

func (l Lead) ToModel() models.Lead {
	return models.Lead{
		Company:          l.Company,
		ContactName:      l.ContactName,
		Email:            l.Email,
		Phone:            l.Phone,
		Status:           l.Status,
		Source:           l.Source,
		Value:            l.Value,
		BusinessSize:     l.BusinessSize,
		NumberOfBranches: l.NumberOfBranches,
		FormToken:        normalizeToken(l.FormToken),
	}
}

// normalizeToken stores a blank token as NULL so it never collides with the
// unique index.
func normalizeToken(token *string) *string {
	if token == nil || *token == "" {
		return nil
	}
	t := *token
	return &t
}
