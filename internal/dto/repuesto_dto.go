package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearRepuestoRequest struct {
	Nombre      string          `json:"nombre"       validate:"required,notblank,min=2,max=120"`
	Descripcion *string         `json:"descripcion"`
	CategoriaID *string         `json:"categoria_id" validate:"omitempty,uuid"`
	Categoria   string          `json:"categoria"`
	Precio      decimal.Decimal `json:"precio"       validate:"required"`
	Stock       int             `json:"stock"        validate:"min=0"`
	Estado      string          `json:"estado"       validate:"omitempty,oneof=disponible agotado preventa"`
	ImagenURL   *string         `json:"imagen_url"`
}

type ActualizarRepuestoRequest struct {
	Nombre      *string          `json:"nombre"       validate:"omitempty,notblank,min=2,max=120"`
	Descripcion *string          `json:"descripcion"`
	CategoriaID *string          `json:"categoria_id" validate:"omitempty,uuid"`
	Precio      *decimal.Decimal `json:"precio"`
	Stock       *int             `json:"stock"        validate:"omitempty,min=0"`
	Estado      *string          `json:"estado"       validate:"omitempty,oneof=disponible agotado preventa"`
	ImagenURL   *string          `json:"imagen_url"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type RepuestoFilter struct {
	Tipo     string `form:"tipo"`
	Busqueda string `form:"q"`
	ConStock bool   `form:"con_stock"`
	Estado   string `form:"estado" validate:"omitempty,oneof=disponible agotado preventa all"`
	Page     int    `form:"page,default=1"   validate:"min=1"`
	Limit    int    `form:"limit,default=20" validate:"min=1,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type RepuestoResponse struct {
	ID          string          `json:"id"`
	Nombre      string          `json:"nombre"`
	Descripcion *string         `json:"descripcion"`
	Categoria   string          `json:"categoria"`
	CategoriaID *string         `json:"categoria_id"`
	Precio      decimal.Decimal `json:"precio"`
	Stock       int             `json:"stock"`
	Estado      string          `json:"estado"`
	ImagenURL   *string         `json:"imagen_url"`
	CreatedAt   string          `json:"created_at"`
}

type RepuestoListResponse struct {
	Data       []RepuestoResponse `json:"data"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
}
