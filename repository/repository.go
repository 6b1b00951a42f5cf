package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Entity is what a repository needs from a persisted type; model.DTO
// provides it for every entity.
type Entity interface {
	PrimaryKey() uint
	RowVersion() uint
	SetRowVersion(v uint)
}

// Repository is a generic data-access surface for one entity type.
// Reads and staged writes go through the transaction handle; Snapshot()
// yields a view on the base connection whose reads are unaffected by
// writes staged in the same unit of work.
type Repository[T any, PT interface {
	*T
	Entity
}] struct {
	tx   *gorm.DB
	base *gorm.DB
}

func newRepository[T any, PT interface {
	*T
	Entity
}](tx, base *gorm.DB) *Repository[T, PT] {
	return &Repository[T, PT]{tx: tx, base: base}
}

// New returns a repository bound directly to db, outside any unit of
// work. Suitable for read paths; writes that must be atomic with other
// writes belong in a UnitOfWork.
func New[T any, PT interface {
	*T
	Entity
}](db *gorm.DB) *Repository[T, PT] {
	return newRepository[T, PT](db, db)
}

// Snapshot returns a detached view reading from the base connection.
func (r *Repository[T, PT]) Snapshot() *Repository[T, PT] {
	return &Repository[T, PT]{tx: r.base, base: r.base}
}

func (r *Repository[T, PT]) GetByID(ctx context.Context, id uint) (PT, error) {
	entity := PT(new(T))
	if err := r.tx.WithContext(ctx).First(entity, id).Error; err != nil {
		return nil, translate(err)
	}
	return entity, nil
}

// Find returns the first row matching the predicate.
func (r *Repository[T, PT]) Find(ctx context.Context, query string, args ...any) (PT, error) {
	entity := PT(new(T))
	if err := r.tx.WithContext(ctx).Where(query, args...).First(entity).Error; err != nil {
		return nil, translate(err)
	}
	return entity, nil
}

func (r *Repository[T, PT]) FindAll(ctx context.Context, query string, args ...any) ([]T, error) {
	var entities []T
	if err := r.tx.WithContext(ctx).Where(query, args...).Find(&entities).Error; err != nil {
		return nil, translate(err)
	}
	return entities, nil
}

func (r *Repository[T, PT]) GetAll(ctx context.Context) ([]T, error) {
	var entities []T
	if err := r.tx.WithContext(ctx).Find(&entities).Error; err != nil {
		return nil, translate(err)
	}
	return entities, nil
}

func (r *Repository[T, PT]) Any(ctx context.Context, query string, args ...any) (bool, error) {
	var count int64
	err := r.tx.WithContext(ctx).Model(new(T)).Where(query, args...).Count(&count).Error
	if err != nil {
		return false, translate(err)
	}
	return count > 0, nil
}

// Add stages an insert and assigns the generated key to the entity.
func (r *Repository[T, PT]) Add(ctx context.Context, entity PT) error {
	return translate(r.tx.WithContext(ctx).Create(entity).Error)
}

// Update stages a full-row replace guarded by the row version. Zero
// affected rows means the row was modified or removed by another
// committed transaction since it was read.
func (r *Repository[T, PT]) Update(ctx context.Context, entity PT) error {
	prev := entity.RowVersion()
	entity.SetRowVersion(prev + 1)

	res := r.tx.WithContext(ctx).Model(entity).
		Where("version = ?", prev).
		Select("*").Omit("id", "created_at").
		Updates(entity)
	if res.Error != nil {
		entity.SetRowVersion(prev)
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		entity.SetRowVersion(prev)
		return ErrConcurrencyConflict
	}
	return nil
}

// Delete stages a removal and reports whether a row existed.
func (r *Repository[T, PT]) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.tx.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return false, translate(res.Error)
	}
	return res.RowsAffected > 0, nil
}

// translate maps storage errors onto the package sentinels so callers
// never branch on gorm internals. Requires TranslateError on the gorm
// config so driver errors arrive as gorm.ErrDuplicatedKey and friends.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConstraintViolation
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrConstraintViolation
	default:
		return err
	}
}
