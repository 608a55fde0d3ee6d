package repository

import (
	"context"

	"github.com/Bran258/land-roys-v4/internal/dto"
	"github.com/Bran258/land-roys-v4/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SolicitudRepository interface {
	Create(ctx context.Context, s *model.Solicitud) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Solicitud, error)
	List(ctx context.Context, filter dto.SolicitudFilter) ([]model.Solicitud, int64, error)
	Update(ctx context.Context, s *model.Solicitud) error
	UpdateTx(tx *gorm.DB, s *model.Solicitud) error
	DB() *gorm.DB
}

type solicitudRepo struct{ db *gorm.DB }

func NewSolicitudRepository(db *gorm.DB) SolicitudRepository { return &solicitudRepo{db: db} }

func (r *solicitudRepo) DB() *gorm.DB { return r.db }

func (r *solicitudRepo) Create(ctx context.Context, s *model.Solicitud) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *solicitudRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Solicitud, error) {
	var s model.Solicitud
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	return &s, err
}

func (r *solicitudRepo) List(ctx context.Context, filter dto.SolicitudFilter) ([]model.Solicitud, int64, error) {
	var solicitudes []model.Solicitud
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Solicitud{})

	if filter.Estado != "" && filter.Estado != "all" {
		q = q.Where("estado = ?", filter.Estado)
	}
	if filter.Busqueda != "" {
		pat := "%" + lowered(filter.Busqueda) + "%"
		q = q.Where("LOWER(nombre) LIKE ? OR LOWER(email) LIKE ?", pat, pat)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Order("created_at DESC").Limit(filter.Limit).Offset(offset).Find(&solicitudes).Error
	return solicitudes, total, err
}

func (r *solicitudRepo) Update(ctx context.Context, s *model.Solicitud) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *solicitudRepo) UpdateTx(tx *gorm.DB, s *model.Solicitud) error {
	return tx.Save(s).Error
}
