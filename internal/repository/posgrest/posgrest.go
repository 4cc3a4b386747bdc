package posgrest

import (
	"context"

	"gorm.io/gorm"
)

// repository is a generic GORM-based repository implementation.
// It provides standard CRUD operations for any entity type T.
type repository[T interface{}] struct {
	db *gorm.DB
}

// New creates a new generic repository instance for type T.
// The repository uses the provided GORM database connection for all operations.
func New[T interface{}](db *gorm.DB) *repository[T] {
	return &repository[T]{
		db,
	}
}

// Create inserts a new entity into the database.
func (r *repository[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

// GetAll retrieves all entities of type T from the database.
func (r *repository[T]) GetAll(ctx context.Context) (*[]T, error) {
	var entities []T
	err := r.db.WithContext(ctx).Find(&entities).Error
	if err != nil {
		return nil, err
	}
	return &entities, nil
}

// GetByID retrieves a single entity by its ID.
// It returns gorm.ErrRecordNotFound when no row matches.
func (r *repository[T]) GetByID(ctx context.Context, id string) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&entity).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}

// Update writes every column of the entity identified by ID, zero values included,
// so cleared fields such as a reset interest rate reach the database.
// It returns gorm.ErrRecordNotFound when no row matches.
func (r *repository[T]) Update(ctx context.Context, entity *T, id string) error {
	result := r.db.WithContext(ctx).Model(entity).Where("id = ?", id).Select("*").Updates(entity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
