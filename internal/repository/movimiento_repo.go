package repository

import (
	"context"

	"github.com/Bran258/land-roys-v4/internal/dto"
	"github.com/Bran258/land-roys-v4/internal/model"

	"gorm.io/gorm"
)

type MovimientoRepository interface {
	Create(ctx context.Context, m *model.MovimientoStock) error
	CreateTx(tx *gorm.DB, m *model.MovimientoStock) error
	List(ctx context.Context, filter dto.MovimientoFilter) ([]model.MovimientoStock, int64, error)
	DB() *gorm.DB
}

type movimientoRepo struct{ db *gorm.DB }

func NewMovimientoRepository(db *gorm.DB) MovimientoRepository { return &movimientoRepo{db: db} }

func (r *movimientoRepo) DB() *gorm.DB { return r.db }

func (r *movimientoRepo) Create(ctx context.Context, m *model.MovimientoStock) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *movimientoRepo) CreateTx(tx *gorm.DB, m *model.MovimientoStock) error {
	return tx.Create(m).Error
}

func (r *movimientoRepo) List(ctx context.Context, filter dto.MovimientoFilter) ([]model.MovimientoStock, int64, error) {
	var movimientos []model.MovimientoStock
	var total int64

	q := r.db.WithContext(ctx).Model(&model.MovimientoStock{})

	if filter.ProductoTipo != "" {
		q = q.Where("producto_tipo = ?", filter.ProductoTipo)
	}
	if filter.ProductoID != "" {
		q = q.Where("producto_id = ?", filter.ProductoID)
	}
	if filter.Tipo != "" {
		q = q.Where("tipo = ?", filter.Tipo)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Order("created_at DESC").Limit(filter.Limit).Offset(offset).Find(&movimientos).Error
	return movimientos, total, err
}
