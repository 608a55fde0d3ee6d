package handler

import (
	"net/http"

	"github.com/Bran258/land-roys-v4/internal/apierror"
	"github.com/Bran258/land-roys-v4/internal/dto"
	"github.com/Bran258/land-roys-v4/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RankingHandler struct{ svc service.RankingService }

func NewRankingHandler(svc service.RankingService) *RankingHandler {
	return &RankingHandler{svc: svc}
}

// Listar is the public read: only active entries, podium order.
func (h *RankingHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context(), true)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListarAdmin includes inactive entries so the back office can stage changes.
func (h *RankingHandler) ListarAdmin(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context(), false)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Guardar upserts the whole section in one request.
func (h *RankingHandler) Guardar(c *gin.Context) {
	var req dto.GuardarRankingRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Guardar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RankingHandler) Eliminar(c *gin.Context) {
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
