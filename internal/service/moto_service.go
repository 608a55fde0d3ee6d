package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/Bran258/land-roys-v4/internal/dto"
	"github.com/Bran258/land-roys-v4/internal/model"
	"github.com/Bran258/land-roys-v4/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MotoService interface {
	Crear(ctx context.Context, req dto.CrearMotoRequest) (*dto.MotoResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.MotoResponse, error)
	Listar(ctx context.Context, filter dto.MotoFilter) (*dto.MotoListResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarMotoRequest) (*dto.MotoResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type motoService struct {
	repo       repository.MotoRepository
	categorias CategoriaService
}

func NewMotoService(repo repository.MotoRepository, categorias CategoriaService) MotoService {
	return &motoService{repo: repo, categorias: categorias}
}

func (s *motoService) Crear(ctx context.Context, req dto.CrearMotoRequest) (*dto.MotoResponse, error) {
	if req.Precio.IsNegative() {
		return nil, fmt.Errorf("%w: el precio no puede ser negativo", ErrValidacion)
	}
	nombre, err := limpiarNombre(req.Nombre)
	if err != nil {
		return nil, err
	}

	m := model.Moto{
		Nombre:           nombre,
		Descripcion:      req.Descripcion,
		Categoria:        req.Categoria,
		Precio:           req.Precio,
		Stock:            req.Stock,
		Estado:           model.EstadoDisponible,
		ImagenURL:        req.ImagenURL,
		VideoURL:         req.VideoURL,
		LogoURL:          req.LogoURL,
		BrandLogoURL:     req.BrandLogoURL,
		Marca:            req.Marca,
		ModeloCodigo:     req.ModeloCodigo,
		GaleriaDestacada: galeriaFromRequest(req.GaleriaDestacada),
	}
	if req.Estado != "" {
		m.Estado = req.Estado
	}

	if err := s.repo.Create(ctx, &m); err != nil {
		return nil, err
	}

	if req.Specs != nil {
		spec := specFromRequest(m.ID, req.Specs)
		if err := s.repo.UpsertSpecs(ctx, spec); err != nil {
			return nil, err
		}
		m.Specs = spec
	}
	return motoToResponse(&m), nil
}

func (s *motoService) Obtener(ctx context.Context, id uuid.UUID) (*dto.MotoResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: moto %s", ErrNoEncontrado, id)
		}
		return nil, err
	}
	return motoToResponse(m), nil
}

func (s *motoService) Listar(ctx context.Context, filter dto.MotoFilter) (*dto.MotoListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	var categorias []string
	if filter.Tipo != "" {
		nombres, err := s.categorias.NombresDeTipo(ctx, model.LineaMotos, filter.Tipo)
		if err != nil {
			return nil, err
		}
		categorias = nombres
	}

	motos, total, err := s.repo.List(ctx, filter, categorias)
	if err != nil {
		return nil, err
	}

	data := make([]dto.MotoResponse, 0, len(motos))
	for i := range motos {
		data = append(data, *motoToResponse(&motos[i]))
	}
	return &dto.MotoListResponse{
		Data:       data,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
	}, nil
}

func (s *motoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarMotoRequest) (*dto.MotoResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: moto %s", ErrNoEncontrado, id)
		}
		return nil, err
	}

	if req.Nombre != nil {
		nombre, err := limpiarNombre(*req.Nombre)
		if err != nil {
			return nil, err
		}
		m.Nombre = nombre
	}
	if req.Descripcion != nil {
		m.Descripcion = req.Descripcion
	}
	if req.Categoria != nil {
		m.Categoria = *req.Categoria
	}
	if req.Precio != nil {
		if req.Precio.IsNegative() {
			return nil, fmt.Errorf("%w: el precio no puede ser negativo", ErrValidacion)
		}
		m.Precio = *req.Precio
	}
	if req.Stock != nil {
		m.Stock = *req.Stock
	}
	if req.Estado != nil {
		m.Estado = *req.Estado
	}
	if req.ImagenURL != nil {
		m.ImagenURL = req.ImagenURL
	}
	if req.VideoURL != nil {
		m.VideoURL = req.VideoURL
	}
	if req.LogoURL != nil {
		m.LogoURL = req.LogoURL
	}
	if req.BrandLogoURL != nil {
		m.BrandLogoURL = req.BrandLogoURL
	}
	if req.Marca != nil {
		m.Marca = req.Marca
	}
	if req.ModeloCodigo != nil {
		m.ModeloCodigo = req.ModeloCodigo
	}
	if req.GaleriaDestacada != nil {
		m.GaleriaDestacada = galeriaFromRequest(*req.GaleriaDestacada)
	}

	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}

	if req.Specs != nil {
		spec := specFromRequest(m.ID, req.Specs)
		if err := s.repo.UpsertSpecs(ctx, spec); err != nil {
			return nil, err
		}
		m.Specs = spec
	}
	return motoToResponse(m), nil
}

// Eliminar drops the spec sheet before the moto row inside one transaction;
// the FK points child to parent so the order matters.
func (s *motoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: moto %s", ErrNoEncontrado, id)
		}
		return err
	}
	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.DeleteSpecsTx(tx, id); err != nil {
			return err
		}
		return s.repo.DeleteTx(tx, id)
	})
}

func galeriaFromRequest(items []dto.GaleriaItemRequest) []model.GaleriaItem {
	if items == nil {
		return nil
	}
	out := make([]model.GaleriaItem, 0, len(items))
	for _, it := range items {
		out = append(out, model.GaleriaItem{
			ImagenURL:   it.ImagenURL,
			Titulo:      it.Titulo,
			Descripcion: it.Descripcion,
		})
	}
	return out
}

func specFromRequest(motoID uuid.UUID, req *dto.MotoSpecRequest) *model.MotoSpec {
	return &model.MotoSpec{
		MotoID:              motoID,
		Anio:                req.Anio,
		CilindradaCC:        req.CilindradaCC,
		CapacidadTanqueL:    req.CapacidadTanqueL,
		MaximaVelocidadKmh:  req.MaximaVelocidadKmh,
		Velocidades:         req.Velocidades,
		MotorEspecificacion: req.MotorEspecificacion,
		TorqueMaxNm:         req.TorqueMaxNm,
		TorqueMaxRPM:        req.TorqueMaxRPM,
		PotenciaMaxHP:       req.PotenciaMaxHP,
		PotenciaMaxRPM:      req.PotenciaMaxRPM,
	}
}

func specToResponse(s *model.MotoSpec) *dto.MotoSpecResponse {
	if s == nil {
		return nil
	}
	return &dto.MotoSpecResponse{
		Anio:                s.Anio,
		CilindradaCC:        s.CilindradaCC,
		CapacidadTanqueL:    s.CapacidadTanqueL,
		MaximaVelocidadKmh:  s.MaximaVelocidadKmh,
		Velocidades:         s.Velocidades,
		MotorEspecificacion: s.MotorEspecificacion,
		TorqueMaxNm:         s.TorqueMaxNm,
		TorqueMaxRPM:        s.TorqueMaxRPM,
		PotenciaMaxHP:       s.PotenciaMaxHP,
		PotenciaMaxRPM:      s.PotenciaMaxRPM,
	}
}

func motoToResponse(m *model.Moto) *dto.MotoResponse {
	galeria := make([]dto.GaleriaItemRequest, 0, len(m.GaleriaDestacada))
	for _, it := range m.GaleriaDestacada {
		galeria = append(galeria, dto.GaleriaItemRequest{
			ImagenURL:   it.ImagenURL,
			Titulo:      it.Titulo,
			Descripcion: it.Descripcion,
		})
	}
	return &dto.MotoResponse{
		ID:               m.ID.String(),
		Nombre:           m.Nombre,
		Descripcion:      m.Descripcion,
		Categoria:        m.Categoria,
		Precio:           m.Precio,
		Stock:            m.Stock,
		Estado:           m.Estado,
		ImagenURL:        m.ImagenURL,
		VideoURL:         m.VideoURL,
		LogoURL:          m.LogoURL,
		BrandLogoURL:     m.BrandLogoURL,
		Marca:            m.Marca,
		ModeloCodigo:     m.ModeloCodigo,
		GaleriaDestacada: galeria,
		Specs:            specToResponse(m.Specs),
		CreatedAt:        m.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
