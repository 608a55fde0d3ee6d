package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaxSlides caps the homepage carousel size.
const MaxSlides = 5

// Slide is one entry of the homepage carousel, ordered by Orden ascending.
type Slide struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Titulo    string    `gorm:"not null"`
	Subtitulo *string
	ImagenURL string `gorm:"not null"`
	LinkURL   *string
	Orden     int  `gorm:"not null;default:0;index"`
	Activo    bool `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s *Slide) BeforeCreate(_ *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

func (Slide) TableName() string { return "slider_home" }
