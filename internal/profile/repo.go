package profile

import (
	"context"
	"errors"

	"github.com/qawafel/crm-backend/internal/repo"
	"github.com/qawafel/crm-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository reads and writes the profile singleton (id 1).
type Repository struct {
	repo.Base
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// Exists reports whether the singleton row is present.
func (r *Repository) Exists(ctx context.Context) (bool, error) {
	var count int64
	err := r.DB(ctx).Model(&models.UserProfile{}).Where("id = ?", models.ProfileID).Count(&count).Error
	return count > 0, err
}

// Create inserts the singleton. It fails if the row already exists.
func (r *Repository) Create(ctx context.Context, in Profile) error {
	row := in.ToModel()
	return r.Insert(ctx, &row)
}

// Update overwrites name, email and phone of the singleton.
func (r *Repository) Update(ctx context.Context, in Profile) error {
	_, err := r.UpdateColumns(ctx, &models.UserProfile{}, models.ProfileID, map[string]any{
		"full_name": in.FullName,
		"email":     in.Email,
		"phone":     in.Phone,
	})
	return err
}

// Get returns the singleton, or nil when it has not been seeded.
func (r *Repository) Get(ctx context.Context) (*Profile, error) {
	var row models.UserProfile
	err := r.DB(ctx).Where("id = ?", models.ProfileID).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	p := FromModel(row)
	return &p, nil
}
