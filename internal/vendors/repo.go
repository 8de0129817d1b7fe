package vendors

import (
	"context"

	"github.com/qawafel/crm-backend/internal/repo"
	"github.com/qawafel/crm-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository exposes vendor persistence operations.
type Repository struct {
	repo.Base
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

func (r *Repository) Create(ctx context.Context, in Vendor) (Vendor, error) {
	row := in.ToModel()
	if err := r.Insert(ctx, &row); err != nil {
		return Vendor{}, err
	}
	return FromModel(row), nil
}

func (r *Repository) Update(ctx context.Context, in Vendor) error {
	cols := in.UpdateColumns()
	cols["business_name"] = in.BusinessName
	cols["category"] = in.Category
	_, err := r.UpdateColumns(ctx, &models.Vendor{}, in.ID, cols)
	return err
}

// List returns every vendor, oldest first.
func (r *Repository) List(ctx context.Context) ([]Vendor, error) {
	var rows []models.Vendor
	if err := r.Base.List(ctx, &rows, "id ASC"); err != nil {
		return nil, err
	}
	out := make([]Vendor, 0, len(rows))
	for _, row := range rows {
		out = append(out, FromModel(row))
	}
	return out, nil
}
