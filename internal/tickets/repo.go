package tickets

import (
	"context"

	"github.com/qawafel/crm-backend/internal/repo"
	"github.com/qawafel/crm-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository exposes ticket persistence operations.
type Repository struct {
	repo.Base
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// Create inserts in as given. Callers fix status and created_at beforehand.
func (r *Repository) Create(ctx context.Context, in Ticket) (Ticket, error) {
	row := in.ToModel()
	if err := r.Insert(ctx, &row); err != nil {
		return Ticket{}, err
	}
	return FromModel(row), nil
}

// Update writes status, title, description and type. The submitter and
// creation date are never changed.
func (r *Repository) Update(ctx context.Context, in Ticket) error {
	_, err := r.UpdateColumns(ctx, &models.Ticket{}, in.ID, map[string]any{
		"status":      in.Status,
		"title":       in.Title,
		"description": in.Description,
		"type":        in.Type,
	})
	return err
}

// List returns every ticket, most recently created first.
func (r *Repository) List(ctx context.Context) ([]Ticket, error) {
	var rows []models.Ticket
	if err := r.Base.List(ctx, &rows, "created_at DESC", "id DESC"); err != nil {
		return nil, err
	}
	out := make([]Ticket, 0, len(rows))
	for _, row := range rows {
		out = append(out, FromModel(row))
	}
	return out, nil
}
