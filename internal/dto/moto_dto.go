package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type GaleriaItemRequest struct {
	ImagenURL   string `json:"imagen_url"  validate:"required,url"`
	Titulo      string `json:"titulo"      validate:"max=120"`
	Descripcion string `json:"descripcion" validate:"max=300"`
}

type MotoSpecRequest struct {
	Anio                *int             `json:"anio"                 validate:"omitempty,min=1990,max=2100"`
	CilindradaCC        *int             `json:"cilindrada_cc"        validate:"omitempty,min=1"`
	CapacidadTanqueL    *decimal.Decimal `json:"capacidad_tanque_l"`
	MaximaVelocidadKmh  *int             `json:"maxima_velocidad_kmh" validate:"omitempty,min=1"`
	Velocidades         *int             `json:"velocidades"          validate:"omitempty,min=1,max=12"`
	MotorEspecificacion *string          `json:"motor_especificacion"`
	TorqueMaxNm         *decimal.Decimal `json:"torque_max_nm"`
	TorqueMaxRPM        *int             `json:"torque_max_rpm"`
	PotenciaMaxHP       *decimal.Decimal `json:"potencia_max_hp"`
	PotenciaMaxRPM      *int             `json:"potencia_max_rpm"`
}

type CrearMotoRequest struct {
	Nombre           string               `json:"nombre"      validate:"required,notblank,min=2,max=120"`
	Descripcion      *string              `json:"descripcion"`
	Categoria        string               `json:"categoria"   validate:"required"`
	Precio           decimal.Decimal      `json:"precio"      validate:"required"`
	Stock            int                  `json:"stock"       validate:"min=0"`
	Estado           string               `json:"estado"      validate:"omitempty,oneof=disponible agotado preventa"`
	ImagenURL        *string              `json:"imagen_url"`
	VideoURL         *string              `json:"video_url"`
	LogoURL          *string              `json:"logo_url"`
	BrandLogoURL     *string              `json:"brand_logo_url"`
	Marca            *string              `json:"marca"`
	ModeloCodigo     *string              `json:"modelo_codigo"`
	GaleriaDestacada []GaleriaItemRequest `json:"galeria_destacada" validate:"omitempty,dive"`
	Specs            *MotoSpecRequest     `json:"specs"`
}

type ActualizarMotoRequest struct {
	Nombre           *string               `json:"nombre"      validate:"omitempty,notblank,min=2,max=120"`
	Descripcion      *string               `json:"descripcion"`
	Categoria        *string               `json:"categoria"`
	Precio           *decimal.Decimal      `json:"precio"`
	Stock            *int                  `json:"stock"       validate:"omitempty,min=0"`
	Estado           *string               `json:"estado"      validate:"omitempty,oneof=disponible agotado preventa"`
	ImagenURL        *string               `json:"imagen_url"`
	VideoURL         *string               `json:"video_url"`
	LogoURL          *string               `json:"logo_url"`
	BrandLogoURL     *string               `json:"brand_logo_url"`
	Marca            *string               `json:"marca"`
	ModeloCodigo     *string               `json:"modelo_codigo"`
	GaleriaDestacada *[]GaleriaItemRequest `json:"galeria_destacada" validate:"omitempty,dive"`
	Specs            *MotoSpecRequest      `json:"specs"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type MotoFilter struct {
	// Tipo filters by a top-level category: motos tagged with the Tipo's own
	// name OR with any of its subcategory names match.
	Tipo     string `form:"tipo"`
	Busqueda string `form:"q"`
	ConStock bool   `form:"con_stock"`
	Estado   string `form:"estado" validate:"omitempty,oneof=disponible agotado preventa all"`
	Page     int    `form:"page,default=1"   validate:"min=1"`
	Limit    int    `form:"limit,default=20" validate:"min=1,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type MotoSpecResponse struct {
	Anio                *int             `json:"anio"`
	CilindradaCC        *int             `json:"cilindrada_cc"`
	CapacidadTanqueL    *decimal.Decimal `json:"capacidad_tanque_l"`
	MaximaVelocidadKmh  *int             `json:"maxima_velocidad_kmh"`
	Velocidades         *int             `json:"velocidades"`
	MotorEspecificacion *string          `json:"motor_especificacion"`
	TorqueMaxNm         *decimal.Decimal `json:"torque_max_nm"`
	TorqueMaxRPM        *int             `json:"torque_max_rpm"`
	PotenciaMaxHP       *decimal.Decimal `json:"potencia_max_hp"`
	PotenciaMaxRPM      *int             `json:"potencia_max_rpm"`
}

type MotoResponse struct {
	ID               string               `json:"id"`
	Nombre           string               `json:"nombre"`
	Descripcion      *string              `json:"descripcion"`
	Categoria        string               `json:"categoria"`
	Precio           decimal.Decimal      `json:"precio"`
	Stock            int                  `json:"stock"`
	Estado           string               `json:"estado"`
	ImagenURL        *string              `json:"imagen_url"`
	VideoURL         *string              `json:"video_url"`
	LogoURL          *string              `json:"logo_url"`
	BrandLogoURL     *string              `json:"brand_logo_url"`
	Marca            *string              `json:"marca"`
	ModeloCodigo     *string              `json:"modelo_codigo"`
	GaleriaDestacada []GaleriaItemRequest `json:"galeria_destacada"`
	Specs            *MotoSpecResponse    `json:"specs"`
	CreatedAt        string               `json:"created_at"`
}

type MotoListResponse struct {
	Data       []MotoResponse `json:"data"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"total_pages"`
}
