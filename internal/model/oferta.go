package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Oferta is a homepage promotion card.
type Oferta struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Titulo       string    `gorm:"not null"`
	Descripcion  *string
	PrecioOferta decimal.Decimal  `gorm:"type:decimal(12,2);not null"`
	PrecioNormal *decimal.Decimal `gorm:"type:decimal(12,2)"`
	ImagenURL    *string
	Activo       bool `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (o *Oferta) BeforeCreate(_ *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}
