package retailers

import (
	"context"

	"github.com/qawafel/crm-backend/internal/repo"
	"github.com/qawafel/crm-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository exposes retailer persistence operations.
type Repository struct {
	repo.Base
}

// NewRepository constructs a retailer repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// Create inserts a retailer and returns it with its assigned id.
func (r *Repository) Create(ctx context.Context, in Retailer) (Retailer, error) {
	row := in.ToModel()
	if err := r.Insert(ctx, &row); err != nil {
		return Retailer{}, err
	}
	return FromModel(row), nil
}

// Update replaces the editable fields of retailer in.ID.
func (r *Repository) Update(ctx context.Context, in Retailer) error {
	cols := in.UpdateColumns()
	cols["company"] = in.Company
	_, err := r.UpdateColumns(ctx, &models.Retailer{}, in.ID, cols)
	return err
}

// List returns every retailer, oldest first.
func (r *Repository) List(ctx context.Context) ([]Retailer, error) {
	var rows []models.Retailer
	if err := r.Base.List(ctx, &rows, "id ASC"); err != nil {
		return nil, err
	}
	out := make([]Retailer, 0, len(rows))
	for _, row := range rows {
		out = append(out, FromModel(row))
	}
	return out, nil
}
