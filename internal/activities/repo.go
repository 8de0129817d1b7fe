package activities

import (
	"context"

	"github.com/qawafel/crm-backend/internal/repo"
	"github.com/qawafel/crm-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository appends to and reads the activity feed. There is no update or
// delete.
type Repository struct {
	repo.Base
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

func (r *Repository) Append(ctx context.Context, in Activity) (Activity, error) {
	row := in.ToModel()
	if err := r.Insert(ctx, &row); err != nil {
		return Activity{}, err
	}
	return FromModel(row), nil
}

// List returns the feed newest first.
func (r *Repository) List(ctx context.Context) ([]Activity, error) {
	var rows []models.Activity
	if err := r.Base.List(ctx, &rows, "timestamp DESC", "id DESC"); err != nil {
		return nil, err
	}
	out := make([]Activity, 0, len(rows))
	for _, row := range rows {
		out = append(out, FromModel(row))
	}
	return out, nil
}
