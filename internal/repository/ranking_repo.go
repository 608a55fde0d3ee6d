package repository

import (
	"context"

	"github.com/Bran258/land-roys-v4/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RankingRepository interface {
	List(ctx context.Context, soloActivos bool) ([]model.RankingItem, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.RankingItem, error)

	// UpsertTx inserts the entry or, when its id already exists, overwrites
	// it. The admin saves the whole section at once so all upserts share one
	// transaction.
	UpsertTx(tx *gorm.DB, item *model.RankingItem) error

	Delete(ctx context.Context, id uuid.UUID) error
	DB() *gorm.DB
}

type rankingRepo struct{ db *gorm.DB }

func NewRankingRepository(db *gorm.DB) RankingRepository { return &rankingRepo{db: db} }

func (r *rankingRepo) DB() *gorm.DB { return r.db }

func (r *rankingRepo) List(ctx context.Context, soloActivos bool) ([]model.RankingItem, error) {
	var items []model.RankingItem
	q := r.db.WithContext(ctx).Model(&model.RankingItem{})
	if soloActivos {
		q = q.Where("activo = true")
	}
	err := q.Order("posicion ASC").Find(&items).Error
	return items, err
}

func (r *rankingRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.RankingItem, error) {
	var item model.RankingItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	return &item, err
}

func (r *rankingRepo) UpsertTx(tx *gorm.DB, item *model.RankingItem) error {
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(item).Error
}

func (r *rankingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.RankingItem{}, "id = ?", id).Error
}
