package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CrearSolicitudRequest is bound from the PUBLIC contact form, no auth.
type CrearSolicitudRequest struct {
	Nombre   string `json:"nombre"   validate:"required,notblank,min=2,max=120"`
	Email    string `json:"email"    validate:"required,email"`
	Telefono string `json:"telefono" validate:"max=30"`
	Ciudad   string `json:"ciudad"   validate:"max=80"`
	Mensaje  string `json:"mensaje"  validate:"max=2000"`
}

type ActualizarSolicitudRequest struct {
	Estado     *string `json:"estado"      validate:"omitempty,oneof=pendiente contactado vendido cerrado"`
	NotasAdmin *string `json:"notas_admin" validate:"omitempty,max=4000"`
}

type MarcarPerdidaRequest struct {
	Motivo string `json:"motivo" validate:"required,min=3,max=500"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

type SolicitudFilter struct {
	Estado   string `form:"estado" validate:"omitempty,oneof=pendiente contactado vendido cerrado all"`
	Busqueda string `form:"q"`
	Page     int    `form:"page,default=1"   validate:"min=1"`
	Limit    int    `form:"limit,default=20" validate:"min=1,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type SolicitudResponse struct {
	ID            string  `json:"id"`
	Nombre        string  `json:"nombre"`
	Email         string  `json:"email"`
	Telefono      string  `json:"telefono"`
	Ciudad        string  `json:"ciudad"`
	Mensaje       string  `json:"mensaje"`
	Estado        string  `json:"estado"`
	NotasAdmin    *string `json:"notas_admin"`
	MotivoPerdida *string `json:"motivo_perdida"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

type SolicitudListResponse struct {
	Data  []SolicitudResponse `json:"data"`
	Total int64               `json:"total"`
	Page  int                 `json:"page"`
	Limit int                 `json:"limit"`
}
