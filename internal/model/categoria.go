package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Catalog lines a Categoria can belong to.
const (
	LineaMotos     = "motos"
	LineaRepuestos = "repuestos"
)

// Categoria is a node in the two-level catalog taxonomy.
// ParentID == nil means the category is a "Tipo" (top level); a non-nil
// ParentID marks a subcategory nested exactly one level under a Tipo.
type Categoria struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Nombre    string     `gorm:"index;not null"`
	Estado    bool       `gorm:"not null;default:true"`
	Linea     string     `gorm:"type:varchar(20);not null;default:'motos';index"`
	ParentID  *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Parent *Categoria `gorm:"foreignKey:ParentID"`
}

func (c *Categoria) BeforeCreate(_ *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// EsTipo reports whether the category sits at the top level.
func (c *Categoria) EsTipo() bool { return c.ParentID == nil }

// TableName overrides GORM's default pluralization for Spanish names.
func (Categoria) TableName() string { return "categorias" }
