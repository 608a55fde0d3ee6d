package repository

import (
	"context"

	"github.com/Bran258/land-roys-v4/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SliderRepository interface {
	Create(ctx context.Context, s *model.Slide) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Slide, error)
	List(ctx context.Context, soloActivos bool) ([]model.Slide, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, s *model.Slide) error
	UpdateOrdenTx(tx *gorm.DB, id uuid.UUID, orden int) error
	Delete(ctx context.Context, id uuid.UUID) error
	DB() *gorm.DB
}

type sliderRepo struct{ db *gorm.DB }

func NewSliderRepository(db *gorm.DB) SliderRepository { return &sliderRepo{db: db} }

func (r *sliderRepo) DB() *gorm.DB { return r.db }

func (r *sliderRepo) Create(ctx context.Context, s *model.Slide) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *sliderRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Slide, error) {
	var s model.Slide
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	return &s, err
}

func (r *sliderRepo) List(ctx context.Context, soloActivos bool) ([]model.Slide, error) {
	var slides []model.Slide
	q := r.db.WithContext(ctx).Model(&model.Slide{})
	if soloActivos {
		q = q.Where("activo = true")
	}
	err := q.Order("orden ASC").Find(&slides).Error
	return slides, err
}

func (r *sliderRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Slide{}).Count(&n).Error
	return n, err
}

func (r *sliderRepo) Update(ctx context.Context, s *model.Slide) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *sliderRepo) UpdateOrdenTx(tx *gorm.DB, id uuid.UUID, orden int) error {
	return tx.Model(&model.Slide{}).Where("id = ?", id).Update("orden", orden).Error
}

func (r *sliderRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Slide{}, "id = ?", id).Error
}
