package repository

import (
	"context"

	"github.com/Bran258/land-roys-v4/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoriaRepository defines the data access contract for the category tree.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type CategoriaRepository interface {
	Create(ctx context.Context, c *model.Categoria) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Categoria, error)
	List(ctx context.Context, linea string) ([]model.Categoria, error)
	FindChildren(ctx context.Context, parentID uuid.UUID) ([]model.Categoria, error)
	Update(ctx context.Context, c *model.Categoria) error
	UpdateParent(ctx context.Context, id uuid.UUID, parentID *uuid.UUID) error

	// Deletes run inside the caller's tx so a cascade (children first, then
	// the Tipo) commits or rolls back as a unit.
	DeleteTx(tx *gorm.DB, id uuid.UUID) error
	DeleteChildrenTx(tx *gorm.DB, parentID uuid.UUID) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type categoriaRepo struct{ db *gorm.DB }

func NewCategoriaRepository(db *gorm.DB) CategoriaRepository { return &categoriaRepo{db: db} }

func (r *categoriaRepo) DB() *gorm.DB { return r.db }

func (r *categoriaRepo) Create(ctx context.Context, c *model.Categoria) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *categoriaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Categoria, error) {
	var c model.Categoria
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return &c, err
}

func (r *categoriaRepo) List(ctx context.Context, linea string) ([]model.Categoria, error) {
	var categorias []model.Categoria
	q := r.db.WithContext(ctx).Model(&model.Categoria{})
	if linea != "" {
		q = q.Where("linea = ?", linea)
	}
	err := q.Order("nombre ASC").Find(&categorias).Error
	return categorias, err
}

func (r *categoriaRepo) FindChildren(ctx context.Context, parentID uuid.UUID) ([]model.Categoria, error) {
	var categorias []model.Categoria
	err := r.db.WithContext(ctx).
		Where("parent_id = ?", parentID).
		Order("nombre ASC").
		Find(&categorias).Error
	return categorias, err
}

func (r *categoriaRepo) Update(ctx context.Context, c *model.Categoria) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *categoriaRepo) UpdateParent(ctx context.Context, id uuid.UUID, parentID *uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Categoria{}).
		Where("id = ?", id).
		Update("parent_id", parentID).Error
}

func (r *categoriaRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Delete(&model.Categoria{}, "id = ?", id).Error
}

func (r *categoriaRepo) DeleteChildrenTx(tx *gorm.DB, parentID uuid.UUID) error {
	return tx.Delete(&model.Categoria{}, "parent_id = ?", parentID).Error
}
