package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// AjustarStockRequest sets the ABSOLUTE stock of a catalog item. The
// movement ledger records the delta against the previous value.
type AjustarStockRequest struct {
	ProductoTipo string `json:"producto_tipo" validate:"required,oneof=moto repuesto"`
	ProductoID   string `json:"producto_id"   validate:"required,uuid"`
	Stock        int    `json:"stock"         validate:"min=0"`
	Motivo       string `json:"motivo"        validate:"max=300"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

type MovimientoFilter struct {
	ProductoTipo string `form:"producto_tipo" validate:"omitempty,oneof=moto repuesto"`
	ProductoID   string `form:"producto_id"   validate:"omitempty,uuid"`
	Tipo         string `form:"tipo"          validate:"omitempty,oneof=venta ajuste_manual reconciliacion"`
	Page         int    `form:"page,default=1"   validate:"min=1"`
	Limit        int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type MovimientoResponse struct {
	ID            string  `json:"id"`
	ProductoTipo  string  `json:"producto_tipo"`
	ProductoID    string  `json:"producto_id"`
	Tipo          string  `json:"tipo"`
	Cantidad      int     `json:"cantidad"`
	StockAnterior int     `json:"stock_anterior"`
	StockNuevo    int     `json:"stock_nuevo"`
	Motivo        string  `json:"motivo"`
	ReferenciaID  *string `json:"referencia_id"`
	CreatedAt     string  `json:"created_at"`
}

type MovimientoListResponse struct {
	Data  []MovimientoResponse `json:"data"`
	Total int64                `json:"total"`
	Page  int                  `json:"page"`
	Limit int                  `json:"limit"`
}
