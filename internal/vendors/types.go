package vendors

import (
	"github.com/qawafel/crm-backend/internal/accounts"
	"github.com/qawafel/crm-backend/pkg/db/models"
)

// Vendor is the API shape of a vendor account.
type Vendor struct {
	accounts.BaseUser
	BusinessName string `json:"businessName"`
	Category     string `json:"category"`
}

func FromModel(m models.Vendor) Vendor {
	return Vendor{
		BaseUser:     accounts.FromAccount(m.ID, m.Account),
		BusinessName: m.BusinessName,
		Category:     m.Category,
	}
}

func (v Vendor) ToModel() models.Vendor {
	return models.Vendor{
		Account:      v.Account(),
		BusinessName: v.BusinessName,
		Category:     v.Category,
	}
}
