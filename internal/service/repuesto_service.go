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

type RepuestoService interface {
	Crear(ctx context.Context, req dto.CrearRepuestoRequest) (*dto.RepuestoResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.RepuestoResponse, error)
	Listar(ctx context.Context, filter dto.RepuestoFilter) (*dto.RepuestoListResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarRepuestoRequest) (*dto.RepuestoResponse, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type repuestoService struct {
	repo          repository.RepuestoRepository
	categoriaRepo repository.CategoriaRepository
	categorias    CategoriaService
}

func NewRepuestoService(repo repository.RepuestoRepository, categoriaRepo repository.CategoriaRepository, categorias CategoriaService) RepuestoService {
	return &repuestoService{repo: repo, categoriaRepo: categoriaRepo, categorias: categorias}
}

func (s *repuestoService) Crear(ctx context.Context, req dto.CrearRepuestoRequest) (*dto.RepuestoResponse, error) {
	if req.Precio.IsNegative() {
		return nil, fmt.Errorf("%w: el precio no puede ser negativo", ErrValidacion)
	}
	nombre, err := limpiarNombre(req.Nombre)
	if err != nil {
		return nil, err
	}

	rep := model.Repuesto{
		Nombre:      nombre,
		Descripcion: req.Descripcion,
		Categoria:   req.Categoria,
		Precio:      req.Precio,
		Stock:       req.Stock,
		Estado:      model.EstadoDisponible,
		ImagenURL:   req.ImagenURL,
	}
	if req.Estado != "" {
		rep.Estado = req.Estado
	}

	// Repuestos keep the FK besides the name snapshot: the name is what the
	// storefront shows, the id is what reclassification tooling follows.
	if req.CategoriaID != nil {
		cid, err := uuid.Parse(*req.CategoriaID)
		if err != nil {
			return nil, fmt.Errorf("%w: categoria_id invalido", ErrValidacion)
		}
		cat, err := s.categoriaRepo.FindByID(ctx, cid)
		if err != nil {
			return nil, fmt.Errorf("%w: categoria %s", ErrNoEncontrado, cid)
		}
		rep.CategoriaID = &cid
		if rep.Categoria == "" {
			rep.Categoria = cat.Nombre
		}
	}

	if err := s.repo.Create(ctx, &rep); err != nil {
		return nil, err
	}
	return repuestoToResponse(&rep), nil
}

func (s *repuestoService) Obtener(ctx context.Context, id uuid.UUID) (*dto.RepuestoResponse, error) {
	rep, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: repuesto %s", ErrNoEncontrado, id)
		}
		return nil, err
	}
	return repuestoToResponse(rep), nil
}

func (s *repuestoService) Listar(ctx context.Context, filter dto.RepuestoFilter) (*dto.RepuestoListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	var categorias []string
	if filter.Tipo != "" {
		nombres, err := s.categorias.NombresDeTipo(ctx, model.LineaRepuestos, filter.Tipo)
		if err != nil {
			return nil, err
		}
		categorias = nombres
	}

	repuestos, total, err := s.repo.List(ctx, filter, categorias)
	if err != nil {
		return nil, err
	}

	data := make([]dto.RepuestoResponse, 0, len(repuestos))
	for i := range repuestos {
		data = append(data, *repuestoToResponse(&repuestos[i]))
	}
	return &dto.RepuestoListResponse{
		Data:       data,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
	}, nil
}

func (s *repuestoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarRepuestoRequest) (*dto.RepuestoResponse, error) {
	rep, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: repuesto %s", ErrNoEncontrado, id)
		}
		return nil, err
	}

	if req.Nombre != nil {
		nombre, err := limpiarNombre(*req.Nombre)
		if err != nil {
			return nil, err
		}
		rep.Nombre = nombre
	}
	if req.Descripcion != nil {
		rep.Descripcion = req.Descripcion
	}
	if req.CategoriaID != nil {
		cid, err := uuid.Parse(*req.CategoriaID)
		if err != nil {
			return nil, fmt.Errorf("%w: categoria_id invalido", ErrValidacion)
		}
		cat, err := s.categoriaRepo.FindByID(ctx, cid)
		if err != nil {
			return nil, fmt.Errorf("%w: categoria %s", ErrNoEncontrado, cid)
		}
		rep.CategoriaID = &cid
		rep.Categoria = cat.Nombre
	}
	if req.Precio != nil {
		if req.Precio.IsNegative() {
			return nil, fmt.Errorf("%w: el precio no puede ser negativo", ErrValidacion)
		}
		rep.Precio = *req.Precio
	}
	if req.Stock != nil {
		rep.Stock = *req.Stock
	}
	if req.Estado != nil {
		rep.Estado = *req.Estado
	}
	if req.ImagenURL != nil {
		rep.ImagenURL = req.ImagenURL
	}

	if err := s.repo.Update(ctx, rep); err != nil {
		return nil, err
	}
	return repuestoToResponse(rep), nil
}

func (s *repuestoService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: repuesto %s", ErrNoEncontrado, id)
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}

func repuestoToResponse(r *model.Repuesto) *dto.RepuestoResponse {
	var categoriaID *string
	if r.CategoriaID != nil {
		s := r.CategoriaID.String()
		categoriaID = &s
	}
	return &dto.RepuestoResponse{
		ID:          r.ID.String(),
		Nombre:      r.Nombre,
		Descripcion: r.Descripcion,
		Categoria:   r.Categoria,
		CategoriaID: categoriaID,
		Precio:      r.Precio,
		Stock:       r.Stock,
		Estado:      r.Estado,
		ImagenURL:   r.ImagenURL,
		CreatedAt:   r.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
