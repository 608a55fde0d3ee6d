package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Bran258/land-roys-v4/internal/dto"
	"github.com/Bran258/land-roys-v4/internal/model"
	"github.com/Bran258/land-roys-v4/internal/repository"
	"github.com/Bran258/land-roys-v4/internal/worker"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SolicitudService interface {
	Crear(ctx context.Context, req dto.CrearSolicitudRequest) (*dto.SolicitudResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.SolicitudResponse, error)
	Listar(ctx context.Context, filter dto.SolicitudFilter) (*dto.SolicitudListResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarSolicitudRequest) (*dto.SolicitudResponse, error)
	MarcarPerdida(ctx context.Context, id uuid.UUID, motivo string) (*dto.SolicitudResponse, error)
}

// estadoRank orders the funnel. Transitions may only move forward and the
// two terminal states never change again.
var estadoRank = map[string]int{
	model.SolicitudPendiente:  0,
	model.SolicitudContactado: 1,
	model.SolicitudVendido:    2,
	model.SolicitudCerrado:    2,
}

type solicitudService struct {
	repo       repository.SolicitudRepository
	dispatcher *worker.Dispatcher
}

func NewSolicitudService(repo repository.SolicitudRepository, dispatcher *worker.Dispatcher) SolicitudService {
	return &solicitudService{repo: repo, dispatcher: dispatcher}
}

func (s *solicitudService) Crear(ctx context.Context, req dto.CrearSolicitudRequest) (*dto.SolicitudResponse, error) {
	nombre, err := limpiarNombre(req.Nombre)
	if err != nil {
		return nil, err
	}
	// The public form arrives untrimmed; normalize before persisting.
	sol := model.Solicitud{
		Nombre:   nombre,
		Email:    strings.TrimSpace(req.Email),
		Telefono: strings.TrimSpace(req.Telefono),
		Ciudad:   strings.TrimSpace(req.Ciudad),
		Mensaje:  strings.TrimSpace(req.Mensaje),
		Estado:   model.SolicitudPendiente,
	}
	if err := s.repo.Create(ctx, &sol); err != nil {
		return nil, err
	}

	// Best effort: losing the notification must not lose the lead.
	if s.dispatcher != nil {
		_ = s.dispatcher.EnqueueNotificacion(ctx, map[string]interface{}{
			"solicitud_id": sol.ID.String(),
			"nombre":       sol.Nombre,
			"email":        sol.Email,
		})
	}
	return solicitudToResponse(&sol), nil
}

func (s *solicitudService) Obtener(ctx context.Context, id uuid.UUID) (*dto.SolicitudResponse, error) {
	sol, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: solicitud %s", ErrNoEncontrado, id)
		}
		return nil, err
	}
	return solicitudToResponse(sol), nil
}

func (s *solicitudService) Listar(ctx context.Context, filter dto.SolicitudFilter) (*dto.SolicitudListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}
	solicitudes, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.SolicitudResponse, 0, len(solicitudes))
	for i := range solicitudes {
		data = append(data, *solicitudToResponse(&solicitudes[i]))
	}
	return &dto.SolicitudListResponse{
		Data:  data,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (s *solicitudService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarSolicitudRequest) (*dto.SolicitudResponse, error) {
	sol, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: solicitud %s", ErrNoEncontrado, id)
		}
		return nil, err
	}

	if req.Estado != nil && *req.Estado != sol.Estado {
		if err := validarTransicion(sol.Estado, *req.Estado); err != nil {
			return nil, err
		}
		// vendido se alcanza solo via la conversion, que descuenta stock.
		if *req.Estado == model.SolicitudVendido {
			return nil, fmt.Errorf("%w: use la conversion a venta para marcar vendido", ErrEstadoInvalido)
		}
		sol.Estado = *req.Estado
	}
	if req.NotasAdmin != nil {
		sol.NotasAdmin = req.NotasAdmin
	}

	if err := s.repo.Update(ctx, sol); err != nil {
		return nil, err
	}
	return solicitudToResponse(sol), nil
}

// MarcarPerdida closes a lead keeping the reason both in the dedicated column
// and as the legacy "PERDIDO:" note consumed by older admin exports.
func (s *solicitudService) MarcarPerdida(ctx context.Context, id uuid.UUID, motivo string) (*dto.SolicitudResponse, error) {
	sol, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: solicitud %s", ErrNoEncontrado, id)
		}
		return nil, err
	}
	if err := validarTransicion(sol.Estado, model.SolicitudCerrado); err != nil {
		return nil, err
	}

	sol.Estado = model.SolicitudCerrado
	sol.MotivoPerdida = &motivo

	nota := "PERDIDO: " + motivo
	if sol.NotasAdmin != nil && *sol.NotasAdmin != "" {
		nota = *sol.NotasAdmin + "\n" + nota
	}
	sol.NotasAdmin = &nota

	if err := s.repo.Update(ctx, sol); err != nil {
		return nil, err
	}
	return solicitudToResponse(sol), nil
}

func validarTransicion(desde, hacia string) error {
	rankDesde, ok := estadoRank[desde]
	if !ok {
		return fmt.Errorf("%w: estado %q desconocido", ErrEstadoInvalido, desde)
	}
	rankHacia, ok := estadoRank[hacia]
	if !ok {
		return fmt.Errorf("%w: estado %q desconocido", ErrEstadoInvalido, hacia)
	}
	if desde == model.SolicitudVendido || desde == model.SolicitudCerrado {
		return fmt.Errorf("%w: %s es un estado terminal", ErrEstadoInvalido, desde)
	}
	if rankHacia < rankDesde {
		return fmt.Errorf("%w: no se puede volver de %s a %s", ErrEstadoInvalido, desde, hacia)
	}
	return nil
}

func solicitudToResponse(s *model.Solicitud) *dto.SolicitudResponse {
	return &dto.SolicitudResponse{
		ID:            s.ID.String(),
		Nombre:        s.Nombre,
		Email:         s.Email,
		Telefono:      s.Telefono,
		Ciudad:        s.Ciudad,
		Mensaje:       s.Mensaje,
		Estado:        s.Estado,
		NotasAdmin:    s.NotasAdmin,
		MotivoPerdida: s.MotivoPerdida,
		CreatedAt:     s.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:     s.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
