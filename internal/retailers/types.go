package retailers

import (
	"github.com/qawafel/crm-backend/internal/accounts"
	"github.com/qawafel/crm-backend/pkg/db/models"
)

// Retailer is the API shape of a retailer account.
type Retailer struct {
	accounts.BaseUser
	Company string `json:"company"`
}

// FromModel maps a stored row to its API shape.
func FromModel(m models.Retailer) Retailer {
	return Retailer{
		BaseUser: accounts.FromAccount(m.ID, m.Account),
		Company:  m.Company,
	}
}

// ToModel maps the API shape to a row; the id is left for the store to assign.
func (r Retailer) ToModel() models.Retailer {
	return models.Retailer{
		Account: r.Account(),
		Company: r.Company,
	}
}
