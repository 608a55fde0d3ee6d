package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MaxRankingItems caps the homepage "mas vendidas" section.
const MaxRankingItems = 3

// RankingItem is one podium entry of the homepage ranking, ordered by
// Posicion ascending. Entries are free-form: they name a product but carry
// their own copy, price and image so marketing can curate the section
// without touching the catalog.
type RankingItem struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Posicion      int       `gorm:"not null;default:0;index"`
	Etiqueta      *string
	Nombre        string `gorm:"not null"`
	Descripcion   *string
	Precio        *decimal.Decimal `gorm:"type:decimal(12,2)"`
	ImagenURL     *string
	BtnPrimaryURL *string
	Activo        bool `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (r *RankingItem) BeforeCreate(_ *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

func (RankingItem) TableName() string { return "ranking_home" }
