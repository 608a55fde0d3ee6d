package handler

import (
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/Bran258/land-roys-v4/internal/apierror"
	"github.com/Bran258/land-roys-v4/internal/dto"
	"github.com/Bran258/land-roys-v4/internal/infra"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxUploadBytes = 10 << 20 // 10 MiB

type UploadsHandler struct {
	storage *infra.StorageClient
	cb      *infra.CircuitBreaker
}

func NewUploadsHandler(storage *infra.StorageClient, cb *infra.CircuitBreaker) *UploadsHandler {
	return &UploadsHandler{storage: storage, cb: cb}
}

// Subir receives a multipart file and forwards it to object storage through
// the circuit breaker. The object path is prefixed with the target folder
// (motos, repuestos, slider, ofertas) and a uuid so names never collide.
func (h *UploadsHandler) Subir(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("archivo requerido en el campo 'file'"))
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, apierror.New("el archivo supera los 10MB"))
		return
	}

	folder := c.DefaultPostForm("folder", "general")
	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	src, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("no se pudo leer el archivo"))
		return
	}
	defer src.Close()

	path := fmt.Sprintf("%s/%s-%d%s", folder, uuid.NewString(), time.Now().Unix(),
		filepath.Ext(fileHeader.Filename))

	var publicURL string
	cbErr := h.cb.Execute(func() error {
		u, err := h.storage.Upload(c.Request.Context(), path, contentType, src)
		if err != nil {
			return err
		}
		publicURL = u
		return nil
	})
	if cbErr != nil {
		if cbErr == infra.ErrCircuitOpen {
			c.JSON(http.StatusServiceUnavailable, apierror.New("almacenamiento temporalmente no disponible"))
			return
		}
		_ = c.Error(cbErr)
		c.JSON(http.StatusBadGateway, apierror.New("error subiendo el archivo"))
		return
	}

	c.JSON(http.StatusCreated, dto.UploadResponse{Path: path, PublicURL: publicURL})
}
