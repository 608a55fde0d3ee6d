package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Payment methods accepted on conversion.
const (
	PagoTransferencia = "transferencia"
	PagoEfectivo      = "efectivo"
	PagoTarjeta       = "tarjeta"
)

// Venta is the immutable record produced when a Solicitud is converted.
// Producto and Monto are point-in-time snapshots for audit purposes;
// there is no update or delete path once a Venta exists.
type Venta struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	SolicitudID   uuid.UUID `gorm:"type:uuid;not null;index"`
	MotoID        *uuid.UUID `gorm:"type:uuid;index"`
	ClienteNombre string     `gorm:"not null"`
	ClienteEmail  string
	Producto      string          `gorm:"not null"`
	Monto         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	MetodoPago    string          `gorm:"type:varchar(20);not null"`
	FechaEntrega  *time.Time
	// Notas carries the free-text notes plus the human-readable discount
	// breakdown appended at conversion time.
	Notas     string
	Estado    string `gorm:"type:varchar(20);not null;default:'completado'"`
	CreatedAt time.Time
}

func (v *Venta) BeforeCreate(_ *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}
