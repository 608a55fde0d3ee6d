package repository

import (
	"context"
	"strings"

	"github.com/Bran258/land-roys-v4/internal/dto"
	"github.com/Bran258/land-roys-v4/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func lowered(s string) string { return strings.ToLower(s) }

type RepuestoRepository interface {
	Create(ctx context.Context, rep *model.Repuesto) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Repuesto, error)
	List(ctx context.Context, filter dto.RepuestoFilter, categorias []string) ([]model.Repuesto, int64, error)
	Update(ctx context.Context, rep *model.Repuesto) error
	UpdateStock(ctx context.Context, id uuid.UUID, stock int) error
	Delete(ctx context.Context, id uuid.UUID) error
	DB() *gorm.DB
}

type repuestoRepo struct{ db *gorm.DB }

func NewRepuestoRepository(db *gorm.DB) RepuestoRepository { return &repuestoRepo{db: db} }

func (r *repuestoRepo) DB() *gorm.DB { return r.db }

func (r *repuestoRepo) Create(ctx context.Context, rep *model.Repuesto) error {
	return r.db.WithContext(ctx).Create(rep).Error
}

func (r *repuestoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Repuesto, error) {
	var rep model.Repuesto
	err := r.db.WithContext(ctx).First(&rep, "id = ?", id).Error
	return &rep, err
}

func (r *repuestoRepo) List(ctx context.Context, filter dto.RepuestoFilter, categorias []string) ([]model.Repuesto, int64, error) {
	var repuestos []model.Repuesto
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Repuesto{})

	if len(categorias) > 0 {
		q = q.Where("categoria IN ?", categorias)
	}
	if filter.Busqueda != "" {
		term := "%" + lowered(filter.Busqueda) + "%"
		q = q.Where("LOWER(nombre) LIKE ? OR LOWER(descripcion) LIKE ? OR LOWER(categoria) LIKE ?",
			term, term, term)
	}
	if filter.ConStock {
		q = q.Where("stock > 0")
	}
	if filter.Estado != "" && filter.Estado != "all" {
		q = q.Where("estado = ?", filter.Estado)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Order("nombre ASC").Limit(filter.Limit).Offset(offset).Find(&repuestos).Error
	return repuestos, total, err
}

func (r *repuestoRepo) Update(ctx context.Context, rep *model.Repuesto) error {
	return r.db.WithContext(ctx).Save(rep).Error
}

func (r *repuestoRepo) UpdateStock(ctx context.Context, id uuid.UUID, stock int) error {
	return r.db.WithContext(ctx).Model(&model.Repuesto{}).
		Where("id = ?", id).
		Update("stock", stock).Error
}

func (r *repuestoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Repuesto{}, "id = ?", id).Error
}
