package proposals

import (
	"context"

	"github.com/qawafel/crm-backend/internal/repo"
	"github.com/qawafel/crm-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository exposes proposal persistence operations.
type Repository struct {
	repo.Base
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

func (r *Repository) Create(ctx context.Context, in Proposal) (Proposal, error) {
	row := in.ToModel()
	if err := r.Insert(ctx, &row); err != nil {
		return Proposal{}, err
	}
	return FromModel(row), nil
}

// Update replaces the editable fields; created_at is left as stored.
func (r *Repository) Update(ctx context.Context, in Proposal) error {
	_, err := r.UpdateColumns(ctx, &models.Proposal{}, in.ID, map[string]any{
		"title":          in.Title,
		"client_name":    in.ClientName,
		"client_company": in.ClientCompany,
		"value":          in.Value,
		"currency":       in.Currency,
		"status":         in.Status,
		"valid_until":    in.ValidUntil,
		"sent_date":      nullableDate(in.SentDate),
	})
	return err
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	return r.DeleteByID(ctx, &models.Proposal{}, id)
}

// List returns every proposal, most recently created first.
func (r *Repository) List(ctx context.Context) ([]Proposal, error) {
	var rows []models.Proposal
	if err := r.Base.List(ctx, &rows, "created_at DESC", "id DESC"); err != nil {
		return nil, err
	}
	out := make([]Proposal, 0, len(rows))
	for _, row := range rows {
		out = append(out, FromModel(row))
	}
	return out, nil
}
