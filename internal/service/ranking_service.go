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

type RankingService interface {
	// Guardar upserts the whole podium in one transaction and returns the
	// resulting section.
	Guardar(ctx context.Context, req dto.GuardarRankingRequest) ([]dto.RankingItemResponse, error)
	Listar(ctx context.Context, soloActivos bool) ([]dto.RankingItemResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type rankingService struct {
	repo repository.RankingRepository
}

func NewRankingService(repo repository.RankingRepository) RankingService {
	return &rankingService{repo: repo}
}

func (s *rankingService) Guardar(ctx context.Context, req dto.GuardarRankingRequest) ([]dto.RankingItemResponse, error) {
	if len(req.Items) > model.MaxRankingItems {
		return nil, fmt.Errorf("%w: el ranking admite hasta %d posiciones", ErrValidacion, model.MaxRankingItems)
	}

	posiciones := make(map[int]bool, len(req.Items))
	items := make([]model.RankingItem, 0, len(req.Items))
	for _, it := range req.Items {
		if posiciones[it.Posicion] {
			return nil, fmt.Errorf("%w: posicion %d repetida", ErrValidacion, it.Posicion)
		}
		posiciones[it.Posicion] = true

		nombre, err := limpiarNombre(it.Nombre)
		if err != nil {
			return nil, err
		}
		if it.Precio != nil && it.Precio.IsNegative() {
			return nil, fmt.Errorf("%w: el precio no puede ser negativo", ErrValidacion)
		}

		item := model.RankingItem{
			Posicion:      it.Posicion,
			Etiqueta:      it.Etiqueta,
			Nombre:        nombre,
			Descripcion:   it.Descripcion,
			Precio:        it.Precio,
			ImagenURL:     it.ImagenURL,
			BtnPrimaryURL: it.BtnPrimaryURL,
			Activo:        true,
		}
		if it.Activo != nil {
			item.Activo = *it.Activo
		}
		if it.ID != nil {
			id, err := uuid.Parse(*it.ID)
			if err != nil {
				return nil, fmt.Errorf("%w: id invalido", ErrValidacion)
			}
			item.ID = id
		}
		items = append(items, item)
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		for i := range items {
			if err := s.repo.UpsertTx(tx, &items[i]); err != nil {
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

func (s *rankingService) Listar(ctx context.Context, soloActivos bool) ([]dto.RankingItemResponse, error) {
	items, err := s.repo.List(ctx, soloActivos)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RankingItemResponse, 0, len(items))
	for i := range items {
		out = append(out, *rankingToResponse(&items[i]))
	}
	return out, nil
}

func (s *rankingService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: entrada de ranking %s", ErrNoEncontrado, id)
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}

func rankingToResponse(r *model.RankingItem) *dto.RankingItemResponse {
	return &dto.RankingItemResponse{
		ID:            r.ID.String(),
		Posicion:      r.Posicion,
		Etiqueta:      r.Etiqueta,
		Nombre:        r.Nombre,
		Descripcion:   r.Descripcion,
		Precio:        r.Precio,
		ImagenURL:     r.ImagenURL,
		BtnPrimaryURL: r.BtnPrimaryURL,
		Activo:        r.Activo,
	}
}
