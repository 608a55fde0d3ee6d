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

type CategoriaService interface {
	Crear(ctx context.Context, req dto.CrearCategoriaRequest) (*dto.CategoriaResponse, error)
	Listar(ctx context.Context, filter dto.CategoriaFilter) ([]dto.CategoriaResponse, error)
	ListarArbol(ctx context.Context, linea string) (*dto.ArbolCategoriasResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarCategoriaRequest) (*dto.CategoriaResponse, error)
	// Eliminar removes a category and, for a Tipo, its subcategories. It
	// reports how many subcategories went with it so the caller can surface
	// the cascade.
	Eliminar(ctx context.Context, id uuid.UUID) (int, error)

	// NombresDeTipo resolves a Tipo by name to the full set of category
	// names it covers (itself plus its subcategories). Catalog listings use
	// this to expand the tipo filter.
	NombresDeTipo(ctx context.Context, linea, nombre string) ([]string, error)
}

type categoriaService struct {
	repo repository.CategoriaRepository
}

func NewCategoriaService(repo repository.CategoriaRepository) CategoriaService {
	return &categoriaService{repo: repo}
}

func (s *categoriaService) Crear(ctx context.Context, req dto.CrearCategoriaRequest) (*dto.CategoriaResponse, error) {
	nombre, err := limpiarNombre(req.Nombre)
	if err != nil {
		return nil, err
	}
	c := model.Categoria{
		Nombre: nombre,
		Linea:  model.LineaMotos,
		Estado: true,
	}
	if req.Linea != "" {
		c.Linea = req.Linea
	}
	if req.Estado != nil {
		c.Estado = *req.Estado
	}

	if req.ParentID != nil {
		pid, err := uuid.Parse(*req.ParentID)
		if err != nil {
			return nil, fmt.Errorf("%w: parent_id invalido", ErrValidacion)
		}
		parent, err := s.repo.FindByID(ctx, pid)
		if err != nil {
			return nil, fmt.Errorf("%w: categoria padre %s", ErrNoEncontrado, pid)
		}
		// Two levels max: a subcategory can only hang off a Tipo.
		if !parent.EsTipo() {
			return nil, fmt.Errorf("%w: el padre debe ser una categoria de primer nivel", ErrValidacion)
		}
		c.ParentID = &pid
		c.Linea = parent.Linea
	}

	if err := s.repo.Create(ctx, &c); err != nil {
		return nil, err
	}
	return categoriaToResponse(&c), nil
}

func (s *categoriaService) Listar(ctx context.Context, filter dto.CategoriaFilter) ([]dto.CategoriaResponse, error) {
	categorias, err := s.repo.List(ctx, filter.Linea)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoriaResponse, 0, len(categorias))
	for i := range categorias {
		c := &categorias[i]
		switch filter.Estado {
		case "false":
			if c.Estado {
				continue
			}
		case "all":
		default:
			if !c.Estado {
				continue
			}
		}
		out = append(out, *categoriaToResponse(c))
	}
	return out, nil
}

// ListarArbol assembles the two-level tree in memory from a single query.
// Subcategories whose parent row is gone land in Huerfanas instead of being
// hidden, so the back office can reassign them.
func (s *categoriaService) ListarArbol(ctx context.Context, linea string) (*dto.ArbolCategoriasResponse, error) {
	categorias, err := s.repo.List(ctx, linea)
	if err != nil {
		return nil, err
	}

	tipos := make([]dto.TipoConSubcategorias, 0)
	tipoIdx := make(map[uuid.UUID]int)
	for i := range categorias {
		c := &categorias[i]
		if c.EsTipo() {
			tipoIdx[c.ID] = len(tipos)
			tipos = append(tipos, dto.TipoConSubcategorias{
				CategoriaResponse: *categoriaToResponse(c),
				Subcategorias:     []dto.CategoriaResponse{},
			})
		}
	}

	huerfanas := make([]dto.CategoriaResponse, 0)
	for i := range categorias {
		c := &categorias[i]
		if c.EsTipo() {
			continue
		}
		if idx, ok := tipoIdx[*c.ParentID]; ok {
			tipos[idx].Subcategorias = append(tipos[idx].Subcategorias, *categoriaToResponse(c))
		} else {
			huerfanas = append(huerfanas, *categoriaToResponse(c))
		}
	}

	return &dto.ArbolCategoriasResponse{Tipos: tipos, Huerfanas: huerfanas}, nil
}

func (s *categoriaService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarCategoriaRequest) (*dto.CategoriaResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: categoria %s", ErrNoEncontrado, id)
		}
		return nil, err
	}

	if req.Nombre != nil {
		nombre, err := limpiarNombre(*req.Nombre)
		if err != nil {
			return nil, err
		}
		c.Nombre = nombre
	}
	if req.Estado != nil {
		c.Estado = *req.Estado
	}

	if req.SetParent {
		if err := s.reclasificar(ctx, c, req.ParentID); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return categoriaToResponse(c), nil
}

// reclasificar moves a category between levels. Nesting a Tipo that still
// has subcategories is rejected: that would push its children to depth three.
func (s *categoriaService) reclasificar(ctx context.Context, c *model.Categoria, parentID *string) error {
	if parentID == nil {
		c.ParentID = nil
		return nil
	}

	pid, err := uuid.Parse(*parentID)
	if err != nil {
		return fmt.Errorf("%w: parent_id invalido", ErrValidacion)
	}
	if pid == c.ID {
		return fmt.Errorf("%w: una categoria no puede ser su propio padre", ErrValidacion)
	}
	parent, err := s.repo.FindByID(ctx, pid)
	if err != nil {
		return fmt.Errorf("%w: categoria padre %s", ErrNoEncontrado, pid)
	}
	if !parent.EsTipo() {
		return fmt.Errorf("%w: el padre debe ser una categoria de primer nivel", ErrValidacion)
	}

	hijos, err := s.repo.FindChildren(ctx, c.ID)
	if err != nil {
		return err
	}
	if len(hijos) > 0 {
		return fmt.Errorf("%w: el tipo tiene %d subcategorias, reubiquelas primero", ErrValidacion, len(hijos))
	}

	c.ParentID = &pid
	c.Linea = parent.Linea
	return nil
}

// Eliminar removes a category; for a Tipo its subcategories go first, in the
// same transaction, so a partial cascade never commits. Returns the number of
// subcategories deleted alongside the category itself.
func (s *categoriaService) Eliminar(ctx context.Context, id uuid.UUID) (int, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("%w: categoria %s", ErrNoEncontrado, id)
		}
		return 0, err
	}

	eliminadas := 0
	if c.EsTipo() {
		hijos, err := s.repo.FindChildren(ctx, c.ID)
		if err != nil {
			return 0, err
		}
		eliminadas = len(hijos)
	}

	err = runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if c.EsTipo() {
			if err := s.repo.DeleteChildrenTx(tx, c.ID); err != nil {
				return err
			}
		}
		return s.repo.DeleteTx(tx, c.ID)
	})
	if err != nil {
		return 0, err
	}
	return eliminadas, nil
}

func (s *categoriaService) NombresDeTipo(ctx context.Context, linea, nombre string) ([]string, error) {
	categorias, err := s.repo.List(ctx, linea)
	if err != nil {
		return nil, err
	}
	var tipo *model.Categoria
	for i := range categorias {
		if categorias[i].EsTipo() && categorias[i].Nombre == nombre {
			tipo = &categorias[i]
			break
		}
	}
	if tipo == nil {
		// Unknown tipo: filter matches nothing rather than everything.
		return []string{nombre}, nil
	}
	nombres := []string{tipo.Nombre}
	for i := range categorias {
		c := &categorias[i]
		if c.ParentID != nil && *c.ParentID == tipo.ID {
			nombres = append(nombres, c.Nombre)
		}
	}
	return nombres, nil
}

func categoriaToResponse(c *model.Categoria) *dto.CategoriaResponse {
	var parentID *string
	if c.ParentID != nil {
		s := c.ParentID.String()
		parentID = &s
	}
	return &dto.CategoriaResponse{
		ID:        c.ID.String(),
		Nombre:    c.Nombre,
		Linea:     c.Linea,
		Estado:    c.Estado,
		ParentID:  parentID,
		CreatedAt: c.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
