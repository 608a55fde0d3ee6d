package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearCategoriaRequest struct {
	Nombre   string  `json:"nombre"    validate:"required,notblank,min=2,max=80"`
	Linea    string  `json:"linea"     validate:"omitempty,oneof=motos repuestos"`
	ParentID *string `json:"parent_id" validate:"omitempty,uuid"`
	Estado   *bool   `json:"estado"`
}

type ActualizarCategoriaRequest struct {
	Nombre *string `json:"nombre"    validate:"omitempty,notblank,min=2,max=80"`
	Estado *bool   `json:"estado"`
	// ParentID moves the category in the tree: null reclassifies it as a
	// Tipo, a valid Tipo id nests it as subcategory. Use SetParent to
	// distinguish "not sent" from "sent as null".
	ParentID  *string `json:"parent_id" validate:"omitempty,uuid"`
	SetParent bool    `json:"set_parent"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type CategoriaResponse struct {
	ID        string  `json:"id"`
	Nombre    string  `json:"nombre"`
	Linea     string  `json:"linea"`
	Estado    bool    `json:"estado"`
	ParentID  *string `json:"parent_id"`
	CreatedAt string  `json:"created_at"`
}

// TipoConSubcategorias is one top-level node of the taxonomy tree.
type TipoConSubcategorias struct {
	CategoriaResponse
	Subcategorias []CategoriaResponse `json:"subcategorias"`
}

// ArbolCategoriasResponse is the assembled two-level tree. Huerfanas lists
// subcategories whose parent no longer exists so the back office can surface
// them instead of silently dropping them.
type ArbolCategoriasResponse struct {
	Tipos     []TipoConSubcategorias `json:"tipos"`
	Huerfanas []CategoriaResponse    `json:"huerfanas"`
}

// EliminarCategoriaResponse reports the cascade outcome: deleting a Tipo
// takes its subcategories with it and the count says how many.
type EliminarCategoriaResponse struct {
	ID                      string `json:"id"`
	SubcategoriasEliminadas int    `json:"subcategorias_eliminadas"`
}

type CategoriaFilter struct {
	Linea  string `form:"linea"  validate:"omitempty,oneof=motos repuestos"`
	Estado string `form:"estado" validate:"omitempty,oneof=true false all"`
}
