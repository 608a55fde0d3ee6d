package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearOfertaRequest struct {
	Titulo       string           `json:"titulo"        validate:"required,min=2,max=120"`
	Descripcion  *string          `json:"descripcion"`
	PrecioOferta decimal.Decimal  `json:"precio_oferta" validate:"required"`
	PrecioNormal *decimal.Decimal `json:"precio_normal"`
	ImagenURL    *string          `json:"imagen_url"`
	Activo       *bool            `json:"activo"`
}

type ActualizarOfertaRequest struct {
	Titulo       *string          `json:"titulo"        validate:"omitempty,min=2,max=120"`
	Descripcion  *string          `json:"descripcion"`
	PrecioOferta *decimal.Decimal `json:"precio_oferta"`
	PrecioNormal *decimal.Decimal `json:"precio_normal"`
	ImagenURL    *string          `json:"imagen_url"`
	Activo       *bool            `json:"activo"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type OfertaResponse struct {
	ID           string           `json:"id"`
	Titulo       string           `json:"titulo"`
	Descripcion  *string          `json:"descripcion"`
	PrecioOferta decimal.Decimal  `json:"precio_oferta"`
	PrecioNormal *decimal.Decimal `json:"precio_normal"`
	ImagenURL    *string          `json:"imagen_url"`
	Activo       bool             `json:"activo"`
	CreatedAt    string           `json:"created_at"`
}
