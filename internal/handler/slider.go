package handler

import (
	"net/http"

	"github.com/Bran258/land-roys-v4/internal/apierror"
	"github.com/Bran258/land-roys-v4/internal/dto"
	"github.com/Bran258/land-roys-v4/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SliderHandler struct{ svc service.SliderService }

func NewSliderHandler(svc service.SliderService) *SliderHandler { return &SliderHandler{svc: svc} }

// Crear rejects the sixth slide: the carousel is capped at five.
func (h *SliderHandler) Crear(c *gin.Context) {
	var req dto.CrearSlideRequest
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

func (h *SliderHandler) Listar(c *gin.Context) {
	soloActivos := c.Query("activos") == "true"
	resp, err := h.svc.Listar(c.Request.Context(), soloActivos)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SliderHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.ActualizarSlideRequest
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

// Reordenar takes the full id list in the desired order; each slide's orden
// becomes its index.
func (h *SliderHandler) Reordenar(c *gin.Context) {
	var req dto.ReordenarSlidesRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Reordenar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SliderHandler) Eliminar(c *gin.Context) {
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
