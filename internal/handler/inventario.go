package handler

import (
	"net/http"

	"github.com/Bran258/land-roys-v4/internal/dto"
	"github.com/Bran258/land-roys-v4/internal/service"

	"github.com/gin-gonic/gin"
)

type InventarioHandler struct{ svc service.InventarioService }

func NewInventarioHandler(svc service.InventarioService) *InventarioHandler {
	return &InventarioHandler{svc: svc}
}

// AjustarStock sets an absolute stock value and writes the ledger entry.
func (h *InventarioHandler) AjustarStock(c *gin.Context) {
	var req dto.AjustarStockRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AjustarStock(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InventarioHandler) ListarMovimientos(c *gin.Context) {
	var filter dto.MovimientoFilter
	if !bindQuery(c, &filter) {
		return
	}
	resp, err := h.svc.ListarMovimientos(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
