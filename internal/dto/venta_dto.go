package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// ConvertirSolicitudRequest turns a lead into a sale. Exactly one of
// MotoID (catalog-linked) or Producto (free-text) identifies the product;
// when MotoID is set the moto's stock is decremented atomically.
type ConvertirSolicitudRequest struct {
	MotoID       *string         `json:"moto_id"       validate:"omitempty,uuid"`
	Producto     string          `json:"producto"      validate:"max=120"`
	Monto        decimal.Decimal `json:"monto"         validate:"required"`
	MetodoPago   string          `json:"metodo_pago"   validate:"required,oneof=transferencia efectivo tarjeta"`
	FechaEntrega *string         `json:"fecha_entrega" validate:"omitempty,datetime=2006-01-02"`
	Notas        string          `json:"notas"         validate:"max=2000"`
	// Descuento is optional: "porcentaje" applies DescuentoValor as a percent
	// of Monto, "fijo" subtracts it outright (clamped at zero).
	DescuentoTipo  string           `json:"descuento_tipo"  validate:"omitempty,oneof=porcentaje fijo"`
	DescuentoValor *decimal.Decimal `json:"descuento_valor"`
	// ClienteEmail overrides the solicitud's email for the receipt mail.
	ClienteEmail *string `json:"cliente_email" validate:"omitempty,email"`
}

// ─── Filter / List ──────────────────────────────────────────────────────────

type VentaFilter struct {
	Desde      string `form:"desde" validate:"omitempty,datetime=2006-01-02"`
	Hasta      string `form:"hasta" validate:"omitempty,datetime=2006-01-02"`
	MetodoPago string `form:"metodo_pago" validate:"omitempty,oneof=transferencia efectivo tarjeta"`
	Page       int    `form:"page,default=1"   validate:"min=1"`
	Limit      int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type VentaResponse struct {
	ID            string          `json:"id"`
	SolicitudID   string          `json:"solicitud_id"`
	MotoID        *string         `json:"moto_id"`
	ClienteNombre string          `json:"cliente_nombre"`
	ClienteEmail  string          `json:"cliente_email"`
	Producto      string          `json:"producto"`
	Monto         decimal.Decimal `json:"monto"`
	MetodoPago    string          `json:"metodo_pago"`
	FechaEntrega  *string         `json:"fecha_entrega"`
	Notas         string          `json:"notas"`
	Estado        string          `json:"estado"`
	CreatedAt     string          `json:"created_at"`
}

type VentaListResponse struct {
	Data  []VentaResponse `json:"data"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}
