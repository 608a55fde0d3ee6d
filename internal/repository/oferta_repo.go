package repository

import (
	"context"

	"github.com/Bran258/land-roys-v4/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OfertaRepository interface {
	Create(ctx context.Context, o *model.Oferta) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Oferta, error)
	List(ctx context.Context, soloActivas bool) ([]model.Oferta, error)
	Update(ctx context.Context, o *model.Oferta) error
	Delete(ctx context.Context, id uuid.UUID) error
	DB() *gorm.DB
}

type ofertaRepo struct{ db *gorm.DB }

func NewOfertaRepository(db *gorm.DB) OfertaRepository { return &ofertaRepo{db: db} }

func (r *ofertaRepo) DB() *gorm.DB { return r.db }

func (r *ofertaRepo) Create(ctx context.Context, o *model.Oferta) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *ofertaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Oferta, error) {
	var o model.Oferta
	err := r.db.WithContext(ctx).First(&o, "id = ?", id).Error
	return &o, err
}

func (r *ofertaRepo) List(ctx context.Context, soloActivas bool) ([]model.Oferta, error) {
	var ofertas []model.Oferta
	q := r.db.WithContext(ctx).Model(&model.Oferta{})
	if soloActivas {
		q = q.Where("activo = true")
	}
	err := q.Order("created_at DESC").Find(&ofertas).Error
	return ofertas, err
}

func (r *ofertaRepo) Update(ctx context.Context, o *model.Oferta) error {
	return r.db.WithContext(ctx).Save(o).Error
}

func (r *ofertaRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Oferta{}, "id = ?", id).Error
}
