package handler

import (
	"net/http"

	"github.com/Bran258/land-roys-v4/internal/apierror"
	"github.com/Bran258/land-roys-v4/internal/dto"
	"github.com/Bran258/land-roys-v4/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VentasHandler struct{ svc service.VentaService }

func NewVentasHandler(svc service.VentaService) *VentasHandler { return &VentasHandler{svc: svc} }

// ConvertirSolicitud turns a lead into a sale: one transaction covering the
// stock decrement, the venta row, the lead state and the ledger entry.
func (h *VentasHandler) ConvertirSolicitud(c *gin.Context) {
	solicitudID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.ConvertirSolicitudRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ConvertirSolicitud(c.Request.Context(), solicitudID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *VentasHandler) Obtener(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	resp, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Listar returns a paginated, filtered list of sales. There is no update or
// delete route: ventas are immutable once written.
func (h *VentasHandler) Listar(c *gin.Context) {
	var filter dto.VentaFilter
	if !bindQuery(c, &filter) {
		return
	}
	resp, err := h.svc.ListVentas(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
