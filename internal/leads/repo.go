package leads

import (
	"context"
	"errors"

	"github.com/qawafel/crm-backend/internal/repo"
	"github.com/qawafel/crm-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository exposes lead persistence operations.
type Repository struct {
	repo.Base
}

// NewRepository constructs a lead repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// Create inserts a lead and returns it with its assigned id.
func (r *Repository) Create(ctx context.Context, in Lead) (Lead, error) {
	row := in.ToModel()
	if err := r.Insert(ctx, &row); err != nil {
		return Lead{}, err
	}
	return FromModel(row), nil
}

// Update replaces the editable lead fields. A form token is only written when
// the row does not have one yet; an existing token is never replaced or cleared.
func (r *Repository) Update(ctx context.Context, in Lead) error {
	_, err := r.UpdateColumns(ctx, &models.Lead{}, in.ID, map[string]any{
		"company":      in.Company,
		"contact_name": in.ContactName,
		"email":        in.Email,
		"phone":        in.Phone,
		"status":       in.Status,
		"source":       in.Source,
		"value":        in.Value,
		"form_token":   gorm.Expr("COALESCE(form_token, ?)", normalizeToken(in.FormToken)),
	})
	return err
}

// Delete removes lead id.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	return r.DeleteByID(ctx, &models.Lead{}, id)
}

// List returns every lead, newest first.
func (r *Repository) List(ctx context.Context) ([]Lead, error) {
	var rows []models.Lead
	if err := r.Base.List(ctx, &rows, "id DESC"); err != nil {
		return nil, err
	}
	out := make([]Lead, 0, len(rows))
	for _, row := range rows {
		out = append(out, FromModel(row))
	}
	return out, nil
}

// FindByToken returns the lead holding token, or gorm.ErrRecordNotFound.
func (r *Repository) FindByToken(ctx context.Context, token string) (Lead, error) {
	if token == "" {
		return Lead{}, gorm.ErrRecordNotFound
	}
	var row models.Lead
	err := r.DB(ctx).Where("form_token = ?", token).Take(&row).Error
	if err != nil {
		return Lead{}, err
	}
	return FromModel(row), nil
}

// UpdateIntake writes the two intake-form fields on the lead holding token
// and leaves every other column alone. It returns the number of rows touched.
func (r *Repository) UpdateIntake(ctx context.Context, token string, businessSize *string, numberOfBranches *int) (int64, error) {
	if token == "" {
		return 0, nil
	}
	res := r.DB(ctx).Model(&models.Lead{}).
		Where("form_token = ?", token).
		Updates(map[string]any{
			"business_size":      businessSize,
			"number_of_branches": numberOfBranches,
		})
	return res.RowsAffected, res.Error
}

// IsNotFound reports whether err means no lead matched.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
