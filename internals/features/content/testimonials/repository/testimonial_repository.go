package repository

import (
	"gorm.io/gorm"

	"clubolimpo_backend/internals/databases/crud"
	model "clubolimpo_backend/internals/features/content/testimonials/model"
)

type TestimonialRepository struct {
	crud.Repository[model.Testimonial]
}

func NewTestimonialRepository(db *gorm.DB) *TestimonialRepository {
	return &TestimonialRepository{
		Repository: crud.New[model.Testimonial](db, []string{"created_at DESC", "id DESC"}),
	}
}
