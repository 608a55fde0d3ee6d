package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Bran258/land-roys-v4/internal/dto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCategoriaService struct {
	eliminadas int
}

func (f *fakeCategoriaService) Crear(_ context.Context, req dto.CrearCategoriaRequest) (*dto.CategoriaResponse, error) {
	return &dto.CategoriaResponse{ID: uuid.NewString(), Nombre: req.Nombre, Estado: true}, nil
}

func (f *fakeCategoriaService) Listar(_ context.Context, _ dto.CategoriaFilter) ([]dto.CategoriaResponse, error) {
	return []dto.CategoriaResponse{}, nil
}

func (f *fakeCategoriaService) ListarArbol(_ context.Context, _ string) (*dto.ArbolCategoriasResponse, error) {
	return &dto.ArbolCategoriasResponse{}, nil
}

func (f *fakeCategoriaService) Actualizar(_ context.Context, id uuid.UUID, _ dto.ActualizarCategoriaRequest) (*dto.CategoriaResponse, error) {
	return &dto.CategoriaResponse{ID: id.String()}, nil
}

func (f *fakeCategoriaService) Eliminar(_ context.Context, _ uuid.UUID) (int, error) {
	return f.eliminadas, nil
}

func (f *fakeCategoriaService) NombresDeTipo(_ context.Context, _, nombre string) ([]string, error) {
	return []string{nombre}, nil
}

func newCategoriasRouter(fake *fakeCategoriaService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewCategoriasHandler(fake)
	r.POST("/v1/admin/categorias", h.Crear)
	r.DELETE("/v1/admin/categorias/:id", h.Eliminar)
	return r
}

// Whitespace is not a name: min=2 counts spaces, notblank does not.
func TestCrearCategoriaNombreEnBlanco(t *testing.T) {
	r := newCategoriasRouter(&fakeCategoriaService{})

	body := `{"nombre":"   "}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/admin/categorias", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var resp struct {
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "notblank", resp.Fields["Nombre"])
}

func TestEliminarCategoriaInformaCascada(t *testing.T) {
	r := newCategoriasRouter(&fakeCategoriaService{eliminadas: 2})

	id := uuid.NewString()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/v1/admin/categorias/"+id, nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.EliminarCategoriaResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, id, resp.ID)
	assert.Equal(t, 2, resp.SubcategoriasEliminadas)
}
