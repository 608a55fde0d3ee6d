package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Repuesto is a spare part. Unlike Moto it carries BOTH the denormalized
// category name and a CategoriaID reference (the display name still comes
// from the snapshot so a deleted category leaves items readable).
type Repuesto struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Nombre      string    `gorm:"index;not null"`
	Descripcion *string
	Categoria   string          `gorm:"index"`
	CategoriaID *uuid.UUID      `gorm:"type:uuid;index"`
	Precio      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Stock       int             `gorm:"not null;default:0"`
	Estado      string          `gorm:"type:varchar(20);not null;default:'disponible'"`
	ImagenURL   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (r *Repuesto) BeforeCreate(_ *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
