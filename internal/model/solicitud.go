package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Lead funnel states. pendiente → contactado → {vendido | cerrado};
// vendido and cerrado are terminal.
const (
	SolicitudPendiente  = "pendiente"
	SolicitudContactado = "contactado"
	SolicitudVendido    = "vendido"
	SolicitudCerrado    = "cerrado"
)

// Solicitud is a prospective customer's inquiry, created by the public
// contact forms and worked through the sales funnel by an admin.
type Solicitud struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Nombre   string    `gorm:"not null"`
	Email    string    `gorm:"index"`
	Telefono string
	Ciudad   string
	Mensaje  string
	Estado   string `gorm:"type:varchar(20);not null;default:'pendiente';index"`
	// NotasAdmin accumulates free-text follow-up notes, including the legacy
	// "PERDIDO: <motivo>" tag written alongside MotivoPerdida.
	NotasAdmin    *string
	MotivoPerdida *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (s *Solicitud) BeforeCreate(_ *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

func (Solicitud) TableName() string { return "solicitudes" }
