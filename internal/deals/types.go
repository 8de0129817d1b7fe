package deals

import (
	"github.com/qawafel/crm-backend/pkg/db/models"
	"github.com/qawafel/crm-backend/pkg/enums"
)

// Deal is the API shape of a pipeline deal. Stage changes are free-form.
type Deal struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Company     string          `json:"company"`
	ContactName string          `json:"contactName"`
	Value       float64         `json:"value"`
	Stage       enums.DealStage `json:"stage"`
	Probability int             `json:"probability"`
	CloseDate   string          `json:"closeDate"`
}

// StageChange is the payload of a stage-only update.
type StageChange struct {
	ID    int64           `json:"id"`
	Stage enums.DealStage `json:"stage"`
}

func FromModel(m models.Deal) Deal {
	return Deal{
		ID:          m.ID,
		Title:       m.Title,
		Company:     m.Company,
		ContactName: m.ContactName,
		Value:       m.Value,
		Stage:       m.Stage,
		Probability: m.Probability,
		CloseDate:   m.CloseDate,
	}
}

func (d Deal) ToModel() models.Deal {
	return models.Deal{
		Title:       d.Title,
		Company:     d.Company,
		ContactName: d.ContactName,
		Value:       d.Value,
		Stage:       d.Stage,
		Probability: d.Probability,
		CloseDate:   d.CloseDate,
	}
}
