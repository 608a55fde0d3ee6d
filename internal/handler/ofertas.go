package handler

import (
	"net/http"

	"github.com/Bran258/land-roys-v4/internal/apierror"
	"github.com/Bran258/land-roys-v4/internal/dto"
	"github.com/Bran258/land-roys-v4/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OfertasHandler struct{ svc service.OfertaService }

func NewOfertasHandler(svc service.OfertaService) *OfertasHandler {
	return &OfertasHandler{svc: svc}
}

func (h *OfertasHandler) Crear(c *gin.Context) {
	var req dto.CrearOfertaRequest
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

// Listar serves both surfaces: the storefront passes activas=true, the back
// office omits it to manage the full set.
func (h *OfertasHandler) Listar(c *gin.Context) {
	soloActivas := c.Query("activas") == "true"
	resp, err := h.svc.Listar(c.Request.Context(), soloActivas)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OfertasHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.ActualizarOfertaRequest
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

func (h *OfertasHandler) Eliminar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
