package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Bran258/land-roys-v4/internal/dto"
	"github.com/Bran258/land-roys-v4/internal/model"
	"github.com/Bran258/land-roys-v4/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OfertaService interface {
	Crear(ctx context.Context, req dto.CrearOfertaRequest) (*dto.OfertaResponse, error)
	Listar(ctx context.Context, soloActivas bool) ([]dto.OfertaResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarOfertaRequest) (*dto.OfertaResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type ofertaService struct {
	repo repository.OfertaRepository
}

func NewOfertaService(repo repository.OfertaRepository) OfertaService {
	return &ofertaService{repo: repo}
}

func (s *ofertaService) Crear(ctx context.Context, req dto.CrearOfertaRequest) (*dto.OfertaResponse, error) {
	if req.PrecioOferta.IsNegative() {
		return nil, fmt.Errorf("%w: el precio de oferta no puede ser negativo", ErrValidacion)
	}
	if req.PrecioNormal != nil && req.PrecioNormal.LessThan(req.PrecioOferta) {
		return nil, fmt.Errorf("%w: el precio normal debe superar al de oferta", ErrValidacion)
	}

	o := model.Oferta{
		Titulo:       req.Titulo,
		Descripcion:  req.Descripcion,
		PrecioOferta: req.PrecioOferta,
		PrecioNormal: req.PrecioNormal,
		ImagenURL:    req.ImagenURL,
		Activo:       true,
	}
	if req.Activo != nil {
		o.Activo = *req.Activo
	}
	if err := s.repo.Create(ctx, &o); err != nil {
		return nil, err
	}
	return ofertaToResponse(&o), nil
}

func (s *ofertaService) Listar(ctx context.Context, soloActivas bool) ([]dto.OfertaResponse, error) {
	ofertas, err := s.repo.List(ctx, soloActivas)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OfertaResponse, 0, len(ofertas))
	for i := range ofertas {
		out = append(out, *ofertaToResponse(&ofertas[i]))
	}
	return out, nil
}

func (s *ofertaService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarOfertaRequest) (*dto.OfertaResponse, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: oferta %s", ErrNoEncontrado, id)
		}
		return nil, err
	}

	if req.Titulo != nil {
		o.Titulo = *req.Titulo
	}
	if req.Descripcion != nil {
		o.Descripcion = req.Descripcion
	}
	if req.PrecioOferta != nil {
		if req.PrecioOferta.IsNegative() {
			return nil, fmt.Errorf("%w: el precio de oferta no puede ser negativo", ErrValidacion)
		}
		o.PrecioOferta = *req.PrecioOferta
	}
	if req.PrecioNormal != nil {
		o.PrecioNormal = req.PrecioNormal
	}
	if req.ImagenURL != nil {
		o.ImagenURL = req.ImagenURL
	}
	if req.Activo != nil {
		o.Activo = *req.Activo
	}

	if err := s.repo.Update(ctx, o); err != nil {
		return nil, err
	}
	return ofertaToResponse(o), nil
}

func (s *ofertaService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: oferta %s", ErrNoEncontrado, id)
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}

func ofertaToResponse(o *model.Oferta) *dto.OfertaResponse {
	return &dto.OfertaResponse{
		ID:           o.ID.String(),
		Titulo:       o.Titulo,
		Descripcion:  o.Descripcion,
		PrecioOferta: o.PrecioOferta,
		PrecioNormal: o.PrecioNormal,
		ImagenURL:    o.ImagenURL,
		Activo:       o.Activo,
		CreatedAt:    o.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
