package repository

import (
	"context"

	"github.com/Bran258/land-roys-v4/internal/dto"
	"github.com/Bran258/land-roys-v4/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VentaRepository interface {
	CreateTx(tx *gorm.DB, v *model.Venta) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Venta, error)
	FindBySolicitudID(ctx context.Context, solicitudID uuid.UUID) (*model.Venta, error)
	List(ctx context.Context, filter dto.VentaFilter) ([]model.Venta, int64, error)

	// ListSinMovimiento returns sales with a catalog moto but no matching
	// ledger entry. Used by the reconciliation worker to detect writes that
	// predate the transactional conversion path.
	ListSinMovimiento(ctx context.Context) ([]model.Venta, error)

	DB() *gorm.DB
}

type ventaRepo struct{ db *gorm.DB }

func NewVentaRepository(db *gorm.DB) VentaRepository { return &ventaRepo{db: db} }

func (r *ventaRepo) DB() *gorm.DB { return r.db }

func (r *ventaRepo) CreateTx(tx *gorm.DB, v *model.Venta) error {
	return tx.Create(v).Error
}

func (r *ventaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Venta, error) {
	var v model.Venta
	err := r.db.WithContext(ctx).First(&v, "id = ?", id).Error
	return &v, err
}

func (r *ventaRepo) FindBySolicitudID(ctx context.Context, solicitudID uuid.UUID) (*model.Venta, error) {
	var v model.Venta
	err := r.db.WithContext(ctx).Where("solicitud_id = ?", solicitudID).First(&v).Error
	return &v, err
}

func (r *ventaRepo) List(ctx context.Context, filter dto.VentaFilter) ([]model.Venta, int64, error) {
	var ventas []model.Venta
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Venta{})

	if filter.Desde != "" {
		q = q.Where("DATE(created_at) >= ?", filter.Desde)
	}
	if filter.Hasta != "" {
		q = q.Where("DATE(created_at) <= ?", filter.Hasta)
	}
	if filter.MetodoPago != "" {
		q = q.Where("metodo_pago = ?", filter.MetodoPago)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Order("created_at DESC").Limit(filter.Limit).Offset(offset).Find(&ventas).Error
	return ventas, total, err
}

func (r *ventaRepo) ListSinMovimiento(ctx context.Context) ([]model.Venta, error) {
	var ventas []model.Venta
	err := r.db.WithContext(ctx).
		Where("moto_id IS NOT NULL").
		Where("id NOT IN (?)", r.db.Model(&model.MovimientoStock{}).
			Select("referencia_id").Where("referencia_id IS NOT NULL")).
		Find(&ventas).Error
	return ventas, err
}
