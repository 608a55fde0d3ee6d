package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product kinds a stock movement can reference.
const (
	ProductoMoto     = "moto"
	ProductoRepuesto = "repuesto"
)

// Stock movement types.
const (
	MovimientoVenta          = "venta"
	MovimientoAjusteManual   = "ajuste_manual"
	MovimientoReconciliacion = "reconciliacion"
)

// MovimientoStock registra cada cambio de stock en el catálogo.
// Movements are never modified or deleted.
type MovimientoStock struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductoTipo  string    `gorm:"type:varchar(20);not null"`
	ProductoID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Tipo          string    `gorm:"not null"`
	Cantidad      int       `gorm:"not null"` // positive = entrada, negative = salida
	StockAnterior int       `gorm:"not null"`
	StockNuevo    int       `gorm:"not null"`
	Motivo        string
	// ReferenciaID links to the originating Venta when applicable.
	ReferenciaID *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt    time.Time
}

func (m *MovimientoStock) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName overrides GORM's default pluralization (movimiento_stocks → movimientos_stock).
func (MovimientoStock) TableName() string { return "movimientos_stock" }
