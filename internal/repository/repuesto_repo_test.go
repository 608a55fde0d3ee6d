package repository

import (
	"context"
	"testing"

	"github.com/Bran258/land-roys-v4/internal/dto"
	"github.com/Bran258/land-roys-v4/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func crearRepuesto(t *testing.T, repo RepuestoRepository, nombre, categoria string, descripcion *string) *model.Repuesto {
	t.Helper()
	rep := &model.Repuesto{
		Nombre:      nombre,
		Descripcion: descripcion,
		Categoria:   categoria,
		Precio:      decimal.NewFromInt(15000),
		Stock:       10,
		Estado:      model.EstadoDisponible,
	}
	require.NoError(t, repo.Create(context.Background(), rep))
	return rep
}

func TestRepuestoListBusquedaPorDescripcionYCategoria(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepuestoRepository(db)
	ctx := context.Background()

	desc := "Pastillas delanteras para frenos ABS"
	crearRepuesto(t, repo, "Pastillas FR-22", "Frenos", &desc)
	crearRepuesto(t, repo, "Filtro de aceite K&N", "Lubricantes", nil)

	casos := map[string]string{
		"abs":    "Pastillas FR-22",
		"FRENOS": "Pastillas FR-22",
		"lubri":  "Filtro de aceite K&N",
	}
	for termino, esperado := range casos {
		repuestos, total, err := repo.List(ctx, dto.RepuestoFilter{Busqueda: termino, Page: 1, Limit: 20}, nil)
		require.NoError(t, err, "busqueda %q", termino)
		assert.Equal(t, int64(1), total, "busqueda %q", termino)
		require.Len(t, repuestos, 1, "busqueda %q", termino)
		assert.Equal(t, esperado, repuestos[0].Nombre)
	}
}

func TestRepuestoUpdateStock(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepuestoRepository(db)
	ctx := context.Background()

	rep := crearRepuesto(t, repo, "Bujia NGK", "Encendido", nil)

	require.NoError(t, repo.UpdateStock(ctx, rep.ID, 42))

	actual, err := repo.FindByID(ctx, rep.ID)
	require.NoError(t, err)
	assert.Equal(t, 42, actual.Stock)
}
