package posgrest

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned by GetByID when no row matches.
var ErrNotFound = errors.New("record not found")

// repository is a generic GORM-based repository for entity type T.
type repository[T interface{}] struct {
	db *gorm.DB
}

func New[T interface{}](db *gorm.DB) *repository[T] {
	return &repository[T]{
		db,
	}
}

// Create inserts entity, or updates it when a row with the same primary key
// already exists.
func (r *repository[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Save(entity).Error
}

func (r *repository[T]) GetByID(ctx context.Context, id string) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entity, nil
}

// GetBy retrieves entities matching a condition such as "device_id = ?",
// ordered by creation time.
func (r *repository[T]) GetBy(ctx context.Context, query string, value interface{}) ([]T, error) {
	var entities []T
	if err := r.db.WithContext(ctx).Where(query, value).Order("created_at").Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}
