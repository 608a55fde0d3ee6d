package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// RankingItemRequest upserts one podium entry. An entry with an id updates in
// place; without one it is created.
type RankingItemRequest struct {
	ID            *string          `json:"id"              validate:"omitempty,uuid"`
	Posicion      int              `json:"posicion"        validate:"required,min=1,max=3"`
	Etiqueta      *string          `json:"etiqueta"        validate:"omitempty,max=40"`
	Nombre        string           `json:"nombre"          validate:"required,notblank,min=2,max=120"`
	Descripcion   *string          `json:"descripcion"     validate:"omitempty,max=300"`
	Precio        *decimal.Decimal `json:"precio"`
	ImagenURL     *string          `json:"imagen_url"      validate:"omitempty,url"`
	BtnPrimaryURL *string          `json:"btn_primary_url" validate:"omitempty,url"`
	Activo        *bool            `json:"activo"`
}

// GuardarRankingRequest replaces the section in one shot: the admin edits the
// three podium entries together and saves them as a list.
type GuardarRankingRequest struct {
	Items []RankingItemRequest `json:"items" validate:"required,min=1,max=3,dive"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type RankingItemResponse struct {
	ID            string           `json:"id"`
	Posicion      int              `json:"posicion"`
	Etiqueta      *string          `json:"etiqueta"`
	Nombre        string           `json:"nombre"`
	Descripcion   *string          `json:"descripcion"`
	Precio        *decimal.Decimal `json:"precio"`
	ImagenURL     *string          `json:"imagen_url"`
	BtnPrimaryURL *string          `json:"btn_primary_url"`
	Activo        bool             `json:"activo"`
}
