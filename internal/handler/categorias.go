package handler

import (
	"net/http"

	"github.com/Bran258/land-roys-v4/internal/apierror"
	"github.com/Bran258/land-roys-v4/internal/dto"
	"github.com/Bran258/land-roys-v4/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CategoriasHandler struct{ svc service.CategoriaService }

func NewCategoriasHandler(svc service.CategoriaService) *CategoriasHandler {
	return &CategoriasHandler{svc: svc}
}

// Crear creates a Tipo or, when parent_id is present, a subcategory.
func (h *CategoriasHandler) Crear(c *gin.Context) {
	var req dto.CrearCategoriaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CategoriasHandler) Listar(c *gin.Context) {
	var filter dto.CategoriaFilter
	if !bindQuery(c, &filter) {
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Arbol returns the assembled two-level tree, orphan subcategories included.
func (h *CategoriasHandler) Arbol(c *gin.Context) {
	resp, err := h.svc.ListarArbol(c.Request.Context(), c.Query("linea"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CategoriasHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.ActualizarCategoriaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar cascades: a Tipo takes its subcategories with it. The response
// reports how many subcategories were removed along the way.
func (h *CategoriasHandler) Eliminar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	eliminadas, err := h.svc.Eliminar(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.EliminarCategoriaResponse{
		ID:                      id.String(),
		SubcategoriasEliminadas: eliminadas,
	})
}
