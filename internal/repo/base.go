package repo

import (
	"context"

	"gorm.io/gorm"
)

// Base provides a shared foundation for the CRM collection repositories.
// Every write it issues is a single statement.
type Base struct {
	db *gorm.DB
}

// NewBase constructs a Base repository backed by the provided GORM connection.
// Passing a transaction handle scopes every call to that transaction.
func NewBase(db *gorm.DB) Base {
	return Base{db: db}
}

// DB returns the GORM connection bound to the supplied context (if any).
func (b Base) DB(ctx context.Context) *gorm.DB {
	if ctx == nil {
		return b.db
	}
	return b.db.WithContext(ctx)
}

// Insert writes row and fills its generated id.
func (b Base) Insert(ctx context.Context, row any) error {
	return b.DB(ctx).Create(row).Error
}

// UpdateColumns overwrites cols on the row of model's table with the given id.
// Zero values are written as-is. Unknown ids touch nothing and are not an error.
func (b Base) UpdateColumns(ctx context.Context, model any, id int64, cols map[string]any) (int64, error) {
	res := b.DB(ctx).Model(model).Where("id = ?", id).Updates(cols)
	return res.RowsAffected, res.Error
}

// DeleteByID removes the row with the given id from model's table.
func (b Base) DeleteByID(ctx context.Context, model any, id int64) error {
	return b.DB(ctx).Where("id = ?", id).Delete(model).Error
}

// List loads every row of dest's table using the given ORDER BY terms.
func (b Base) List(ctx context.Context, dest any, order ...string) error {
	q := b.DB(ctx)
	for _, o := range order {
		q = q.Order(o)
	}
	return q.Find(dest).Error
}
