package deals

import (
	"context"

	"github.com/qawafel/crm-backend/internal/repo"
	"github.com/qawafel/crm-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository exposes deal persistence operations.
type Repository struct {
	repo.Base
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

func (r *Repository) Create(ctx context.Context, in Deal) (Deal, error) {
	row := in.ToModel()
	if err := r.Insert(ctx, &row); err != nil {
		return Deal{}, err
	}
	return FromModel(row), nil
}

func (r *Repository) Update(ctx context.Context, in Deal) error {
	_, err := r.UpdateColumns(ctx, &models.Deal{}, in.ID, map[string]any{
		"title":        in.Title,
		"company":      in.Company,
		"contact_name": in.ContactName,
		"value":        in.Value,
		"stage":        in.Stage,
		"probability":  in.Probability,
		"close_date":   in.CloseDate,
	})
	return err
}

// UpdateStage touches the stage column only.
func (r *Repository) UpdateStage(ctx context.Context, change StageChange) error {
	_, err := r.UpdateColumns(ctx, &models.Deal{}, change.ID, map[string]any{"stage": change.Stage})
	return err
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	return r.DeleteByID(ctx, &models.Deal{}, id)
}

// List returns every deal, newest first.
func (r *Repository) List(ctx context.Context) ([]Deal, error) {
	var rows []models.Deal
	if err := r.Base.List(ctx, &rows, "id DESC"); err != nil {
		return nil, err
	}
	out := make([]Deal, 0, len(rows))
	for _, row := range rows {
		out = append(out, FromModel(row))
	}
	return out, nil
}
