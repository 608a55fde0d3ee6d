package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Catalog item availability states.
const (
	EstadoDisponible = "disponible"
	EstadoAgotado    = "agotado"
	EstadoPreventa   = "preventa"
)

// GaleriaItem is one entry of a motorcycle's featured gallery.
type GaleriaItem struct {
	ImagenURL   string `json:"imagen_url"`
	Titulo      string `json:"titulo"`
	Descripcion string `json:"descripcion"`
}

// Moto is a motorcycle model in the catalog.
// Categoria holds the category NAME copied at save time; renaming a category
// does not retroactively update motos tagged with the old name.
type Moto struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Nombre           string    `gorm:"index;not null"`
	Descripcion      *string
	Categoria        string          `gorm:"index"`
	Precio           decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Stock            int             `gorm:"not null;default:0"`
	Estado           string          `gorm:"type:varchar(20);not null;default:'disponible'"`
	ImagenURL        *string
	VideoURL         *string
	LogoURL          *string
	BrandLogoURL     *string
	Marca            *string
	ModeloCodigo     *string
	GaleriaDestacada []GaleriaItem `gorm:"serializer:json"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Specs *MotoSpec `gorm:"foreignKey:MotoID"`
}

func (m *Moto) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// MotoSpec is the 1:1 technical sheet of a Moto, keyed by the moto's id.
// It is deleted BEFORE its parent Moto to satisfy the FK (child-before-parent).
type MotoSpec struct {
	MotoID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Anio                *int
	CilindradaCC        *int `gorm:"column:cilindrada_cc"`
	CapacidadTanqueL    *decimal.Decimal `gorm:"type:decimal(6,2);column:capacidad_tanque_l"`
	MaximaVelocidadKmh  *int             `gorm:"column:maxima_velocidad_kmh"`
	Velocidades         *int
	MotorEspecificacion *string
	TorqueMaxNm         *decimal.Decimal `gorm:"type:decimal(8,2);column:torque_max_nm"`
	TorqueMaxRPM        *int             `gorm:"column:torque_max_rpm"`
	PotenciaMaxHP       *decimal.Decimal `gorm:"type:decimal(8,2);column:potencia_max_hp"`
	PotenciaMaxRPM      *int             `gorm:"column:potencia_max_rpm"`
}

func (MotoSpec) TableName() string { return "motos_specs" }
