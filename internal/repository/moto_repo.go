package repository

import (
	"context"

	"github.com/Bran258/land-roys-v4/internal/dto"
	"github.com/Bran258/land-roys-v4/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MotoRepository interface {
	Create(ctx context.Context, m *model.Moto) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Moto, error)
	List(ctx context.Context, filter dto.MotoFilter, categorias []string) ([]model.Moto, int64, error)
	Update(ctx context.Context, m *model.Moto) error
	UpdateStock(ctx context.Context, id uuid.UUID, stock int) error

	// DescontarStockVentaTx decrements stock by one only when stock remains
	// positive, reporting the post-decrement value and whether a row actually
	// changed. The conditional UPDATE is what closes the oversell race between
	// concurrent conversions; RETURNING makes the ledger snapshot come from
	// the row this transaction just wrote instead of a stale pre-flight read.
	DescontarStockVentaTx(tx *gorm.DB, id uuid.UUID) (int, bool, error)

	// Spec sheet (1:1, deleted before the parent row)
	UpsertSpecs(ctx context.Context, s *model.MotoSpec) error
	DeleteTx(tx *gorm.DB, id uuid.UUID) error
	DeleteSpecsTx(tx *gorm.DB, motoID uuid.UUID) error

	DB() *gorm.DB
}

type motoRepo struct{ db *gorm.DB }

func NewMotoRepository(db *gorm.DB) MotoRepository { return &motoRepo{db: db} }

func (r *motoRepo) DB() *gorm.DB { return r.db }

func (r *motoRepo) Create(ctx context.Context, m *model.Moto) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *motoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Moto, error) {
	var m model.Moto
	err := r.db.WithContext(ctx).Preload("Specs").First(&m, "id = ?", id).Error
	return &m, err
}

// List applies the storefront filters. categorias is the resolved name set
// for the Tipo filter (the Tipo's own name plus its subcategory names);
// empty means no category restriction.
func (r *motoRepo) List(ctx context.Context, filter dto.MotoFilter, categorias []string) ([]model.Moto, int64, error) {
	var motos []model.Moto
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Moto{})

	if len(categorias) > 0 {
		q = q.Where("categoria IN ?", categorias)
	}
	if filter.Busqueda != "" {
		// The storefront searches name, description and category name alike.
		// LOWER + LIKE keeps the query portable between postgres and the
		// sqlite test database.
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
	err := q.Preload("Specs").Order("nombre ASC").Limit(filter.Limit).Offset(offset).Find(&motos).Error
	return motos, total, err
}

func (r *motoRepo) Update(ctx context.Context, m *model.Moto) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *motoRepo) UpdateStock(ctx context.Context, id uuid.UUID, stock int) error {
	return r.db.WithContext(ctx).Model(&model.Moto{}).
		Where("id = ?", id).
		Update("stock", stock).Error
}

func (r *motoRepo) DescontarStockVentaTx(tx *gorm.DB, id uuid.UUID) (int, bool, error) {
	var stock int
	res := tx.Raw(
		"UPDATE motos SET stock = stock - 1 WHERE id = ? AND stock > 0 RETURNING stock",
		id,
	).Scan(&stock)
	if res.Error != nil {
		return 0, false, res.Error
	}
	return stock, res.RowsAffected == 1, nil
}

func (r *motoRepo) UpsertSpecs(ctx context.Context, s *model.MotoSpec) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *motoRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Delete(&model.Moto{}, "id = ?", id).Error
}

func (r *motoRepo) DeleteSpecsTx(tx *gorm.DB, motoID uuid.UUID) error {
	return tx.Delete(&model.MotoSpec{}, "moto_id = ?", motoID).Error
}
