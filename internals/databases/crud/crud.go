// Package crud holds the repository contract shared by every content entity:
// list active rows, get one active row, create, save and soft-delete.
package crud

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Status is the lifecycle state stored in the is_active column.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func StatusOf(isActive bool) Status {
	if isActive {
		return StatusActive
	}
	return StatusInactive
}

func (s Status) Flag() bool { return s == StatusActive }

var (
	ErrNotFound        = errors.New("record not found")
	ErrAlreadyInactive = errors.New("record already inactive")
)

// WithStatus scopes a query to rows in the given lifecycle state.
func WithStatus(s Status) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("is_active = ?", s.Flag())
	}
}

// Preload describes an eager-loaded relation. Active restricts the relation to
// active rows, Order sorts it and Select trims its columns.
type Preload struct {
	Name   string
	Active bool
	Order  string
	Select []string
}

type Repository[T any] struct {
	DB       *gorm.DB
	Order    []string
	Preloads []Preload
}

func New[T any](db *gorm.DB, order []string, preloads ...Preload) Repository[T] {
	return Repository[T]{DB: db, Order: order, Preloads: preloads}
}

// Query returns a session bound to ctx with preloads applied.
func (r Repository[T]) Query(ctx context.Context) *gorm.DB {
	q := r.DB.WithContext(ctx)
	for _, p := range r.Preloads {
		p := p
		if !p.Active && p.Order == "" && len(p.Select) == 0 {
			q = q.Preload(p.Name)
			continue
		}
		q = q.Preload(p.Name, func(db *gorm.DB) *gorm.DB {
			if p.Active {
				db = db.Scopes(WithStatus(StatusActive))
			}
			if p.Order != "" {
				db = db.Order(p.Order)
			}
			if len(p.Select) > 0 {
				db = db.Select(p.Select)
			}
			return db
		})
	}
	return q
}

func (r Repository[T]) ordered(q *gorm.DB) *gorm.DB {
	for _, o := range r.Order {
		q = q.Order(o)
	}
	return q
}

// List returns every active row in the default order.
func (r Repository[T]) List(ctx context.Context) ([]T, error) {
	rows := make([]T, 0)
	err := r.ordered(r.Query(ctx).Scopes(WithStatus(StatusActive))).Find(&rows).Error
	return rows, err
}

// FindActive returns the active row with the given id or ErrNotFound.
func (r Repository[T]) FindActive(ctx context.Context, id uint) (*T, error) {
	var row T
	err := r.Query(ctx).Scopes(WithStatus(StatusActive)).Where("id = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// FindAny returns the row regardless of its lifecycle state.
func (r Repository[T]) FindAny(ctx context.Context, id uint) (*T, error) {
	var row T
	err := r.DB.WithContext(ctx).Where("id = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Reload re-reads a row with its relations after a write.
func (r Repository[T]) Reload(ctx context.Context, id uint) (*T, error) {
	var row T
	err := r.Query(ctx).Where("id = ?", id).Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r Repository[T]) Create(ctx context.Context, row *T) error {
	return r.DB.WithContext(ctx).Omit(clause.Associations).Create(row).Error
}

// Save writes every column of an existing row; associations are left alone.
func (r Repository[T]) Save(ctx context.Context, row *T) error {
	return r.DB.WithContext(ctx).Omit(clause.Associations).Save(row).Error
}

// Exists reports whether an active row with id exists.
func (r Repository[T]) Exists(ctx context.Context, id uint) (bool, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(new(T)).Scopes(WithStatus(StatusActive)).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}

// Deactivate flips is_active to false. Absent rows yield ErrNotFound,
// rows already inactive yield ErrAlreadyInactive.
func (r Repository[T]) Deactivate(ctx context.Context, id uint) error {
	return Deactivate[T](r.DB.WithContext(ctx), id)
}

// Deactivate works on any table with id/is_active columns, inside or outside a transaction.
func Deactivate[T any](db *gorm.DB, id uint) error {
	var flags []bool
	if err := db.Model(new(T)).Where("id = ?", id).Limit(1).Pluck("is_active", &flags).Error; err != nil {
		return err
	}
	if len(flags) == 0 {
		return ErrNotFound
	}
	if StatusOf(flags[0]) == StatusInactive {
		return ErrAlreadyInactive
	}
	return db.Model(new(T)).Where("id = ?", id).Update("is_active", StatusInactive.Flag()).Error
}
