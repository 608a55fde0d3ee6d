package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearSlideRequest struct {
	Titulo    string  `json:"titulo"     validate:"required,min=2,max=120"`
	Subtitulo *string `json:"subtitulo"  validate:"omitempty,max=200"`
	ImagenURL string  `json:"imagen_url" validate:"required,url"`
	LinkURL   *string `json:"link_url"   validate:"omitempty,url"`
	Activo    *bool   `json:"activo"`
}

type ActualizarSlideRequest struct {
	Titulo    *string `json:"titulo"     validate:"omitempty,min=2,max=120"`
	Subtitulo *string `json:"subtitulo"  validate:"omitempty,max=200"`
	ImagenURL *string `json:"imagen_url" validate:"omitempty,url"`
	LinkURL   *string `json:"link_url"   validate:"omitempty,url"`
	Activo    *bool   `json:"activo"`
}

// ReordenarSlidesRequest carries the full slide id list in the desired order;
// each slide's orden becomes its index in the list.
type ReordenarSlidesRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,max=5,dive,uuid"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type SlideResponse struct {
	ID        string  `json:"id"`
	Titulo    string  `json:"titulo"`
	Subtitulo *string `json:"subtitulo"`
	ImagenURL string  `json:"imagen_url"`
	LinkURL   *string `json:"link_url"`
	Orden     int     `json:"orden"`
	Activo    bool    `json:"activo"`
}
