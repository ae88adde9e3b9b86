package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"clubolimpo_backend/internals/databases/crud"
	categoryModel "clubolimpo_backend/internals/features/content/categories/model"
	model "clubolimpo_backend/internals/features/content/news/model"
	helper "clubolimpo_backend/internals/helpers"
)

var ErrUnknownCategory = errors.New("one or more categories do not exist")

type NewsRepository struct {
	crud.Repository[model.News]
}

func NewNewsRepository(db *gorm.DB) *NewsRepository {
	return &NewsRepository{
		Repository: crud.New[model.News](db,
			[]string{"published_at DESC", "id DESC"},
			crud.Preload{Name: "Categories", Active: true, Order: "name ASC"},
		),
	}
}

// ListByPublished lists active news; a nil filter returns both published and drafts.
func (r *NewsRepository) ListByPublished(ctx context.Context, published *bool) ([]model.News, error) {
	if published == nil {
		return r.List(ctx)
	}
	rows := make([]model.News, 0)
	err := r.Query(ctx).
		Scopes(crud.WithStatus(crud.StatusActive)).
		Where("is_published = ?", *published).
		Order("published_at DESC").
		Order("id DESC").
		Find(&rows).Error
	return rows, err
}

// FindPublished resolves an id-or-slug key to an active, published article
// and counts the view.
func (r *NewsRepository) FindPublished(ctx context.Context, key helper.IDOrSlug) (*model.News, error) {
	q := r.Query(ctx).
		Scopes(crud.WithStatus(crud.StatusActive)).
		Where("is_published = ?", true)
	if key.IsID() {
		q = q.Where("id = ?", key.ID)
	} else {
		q = q.Where("slug = ?", key.Slug)
	}

	var n model.News
	if err := q.Take(&n).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, crud.ErrNotFound
		}
		return nil, err
	}

	if err := r.DB.WithContext(ctx).
		Model(&model.News{}).
		Where("id = ?", n.ID).
		UpdateColumn("views_count", gorm.Expr("views_count + ?", 1)).Error; err != nil {
		return nil, err
	}
	n.ViewsCount++
	return &n, nil
}

// CreateWithCategories inserts the article and its category links atomically.
func (r *NewsRepository) CreateWithCategories(ctx context.Context, n *model.News, categoryIDs []uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureCategories(tx, categoryIDs); err != nil {
			return err
		}
		if err := tx.Omit("Categories").Create(n).Error; err != nil {
			return err
		}
		return linkCategories(tx, n.ID, categoryIDs)
	})
}

// SaveWithCategories updates the article; when categoryIDs is non-nil the
// category set is replaced in the same transaction.
func (r *NewsRepository) SaveWithCategories(ctx context.Context, n *model.News, categoryIDs *[]uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if categoryIDs != nil {
			if err := ensureCategories(tx, *categoryIDs); err != nil {
				return err
			}
		}
		if err := tx.Omit("Categories").Save(n).Error; err != nil {
			return err
		}
		if categoryIDs == nil {
			return nil
		}
		if err := tx.Where("news_id = ?", n.ID).Delete(&model.NewsCategory{}).Error; err != nil {
			return err
		}
		return linkCategories(tx, n.ID, *categoryIDs)
	})
}

func ensureCategories(tx *gorm.DB, ids []uint) error {
	ids = dedupe(ids)
	if len(ids) == 0 {
		return nil
	}
	var n int64
	if err := tx.Model(&categoryModel.Category{}).
		Scopes(crud.WithStatus(crud.StatusActive)).
		Where("id IN ?", ids).
		Count(&n).Error; err != nil {
		return err
	}
	if int(n) != len(ids) {
		return ErrUnknownCategory
	}
	return nil
}

func linkCategories(tx *gorm.DB, newsID uint, ids []uint) error {
	ids = dedupe(ids)
	if len(ids) == 0 {
		return nil
	}
	links := make([]model.NewsCategory, 0, len(ids))
	for _, id := range ids {
		links = append(links, model.NewsCategory{NewsID: newsID, CategoryID: id})
	}
	return tx.Create(&links).Error
}

func dedupe(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok || id == 0 {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
