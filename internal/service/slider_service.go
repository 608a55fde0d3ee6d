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

type SliderService interface {
	Crear(ctx context.Context, req dto.CrearSlideRequest) (*dto.SlideResponse, error)
	Listar(ctx context.Context, soloActivos bool) ([]dto.SlideResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarSlideRequest) (*dto.SlideResponse, error)
	Reordenar(ctx context.Context, req dto.ReordenarSlidesRequest) ([]dto.SlideResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type sliderService struct {
	repo repository.SliderRepository
}

func NewSliderService(repo repository.SliderRepository) SliderService {
	return &sliderService{repo: repo}
}

func (s *sliderService) Crear(ctx context.Context, req dto.CrearSlideRequest) (*dto.SlideResponse, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if total >= model.MaxSlides {
		return nil, fmt.Errorf("%w: el carrusel admite hasta %d slides", ErrValidacion, model.MaxSlides)
	}

	slide := model.Slide{
		Titulo:    req.Titulo,
		Subtitulo: req.Subtitulo,
		ImagenURL: req.ImagenURL,
		LinkURL:   req.LinkURL,
		Orden:     int(total),
		Activo:    true,
	}
	if req.Activo != nil {
		slide.Activo = *req.Activo
	}
	if err := s.repo.Create(ctx, &slide); err != nil {
		return nil, err
	}
	return slideToResponse(&slide), nil
}

func (s *sliderService) Listar(ctx context.Context, soloActivos bool) ([]dto.SlideResponse, error) {
	slides, err := s.repo.List(ctx, soloActivos)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SlideResponse, 0, len(slides))
	for i := range slides {
		out = append(out, *slideToResponse(&slides[i]))
	}
	return out, nil
}

func (s *sliderService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarSlideRequest) (*dto.SlideResponse, error) {
	slide, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: slide %s", ErrNoEncontrado, id)
		}
		return nil, err
	}

	if req.Titulo != nil {
		slide.Titulo = *req.Titulo
	}
	if req.Subtitulo != nil {
		slide.Subtitulo = req.Subtitulo
	}
	if req.ImagenURL != nil {
		slide.ImagenURL = *req.ImagenURL
	}
	if req.LinkURL != nil {
		slide.LinkURL = req.LinkURL
	}
	if req.Activo != nil {
		slide.Activo = *req.Activo
	}

	if err := s.repo.Update(ctx, slide); err != nil {
		return nil, err
	}
	return slideToResponse(slide), nil
}

// Reordenar rewrites orden as each slide's index in the submitted list.
// Every current slide must appear exactly once so no two end up sharing a
// position.
func (s *sliderService) Reordenar(ctx context.Context, req dto.ReordenarSlidesRequest) ([]dto.SlideResponse, error) {
	slides, err := s.repo.List(ctx, false)
	if err != nil {
		return nil, err
	}
	if len(req.IDs) != len(slides) {
		return nil, fmt.Errorf("%w: se esperaban %d ids", ErrValidacion, len(slides))
	}

	existentes := make(map[string]bool, len(slides))
	for i := range slides {
		existentes[slides[i].ID.String()] = true
	}
	vistos := make(map[string]bool, len(req.IDs))
	ids := make([]uuid.UUID, 0, len(req.IDs))
	for _, raw := range req.IDs {
		if !existentes[raw] {
			return nil, fmt.Errorf("%w: slide %s", ErrNoEncontrado, raw)
		}
		if vistos[raw] {
			return nil, fmt.Errorf("%w: id repetido %s", ErrValidacion, raw)
		}
		vistos[raw] = true
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: id invalido", ErrValidacion)
		}
		ids = append(ids, id)
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		for i, id := range ids {
			if tx == nil {
				slide, err := s.repo.FindByID(ctx, id)
				if err != nil {
					return err
				}
				slide.Orden = i
				if err := s.repo.Update(ctx, slide); err != nil {
					return err
				}
				continue
			}
			if err := s.repo.UpdateOrdenTx(tx, id, i); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return s.Listar(ctx, false)
}

func (s *sliderService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: slide %s", ErrNoEncontrado, id)
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}

func slideToResponse(s *model.Slide) *dto.SlideResponse {
	return &dto.SlideResponse{
		ID:        s.ID.String(),
		Titulo:    s.Titulo,
		Subtitulo: s.Subtitulo,
		ImagenURL: s.ImagenURL,
		LinkURL:   s.LinkURL,
		Orden:     s.Orden,
		Activo:    s.Activo,
	}
}
