package repository

import (
	"context"
	"testing"

	"github.com/Bran258/land-roys-v4/internal/dto"
	"github.com/Bran258/land-roys-v4/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func crearMoto(t *testing.T, repo MotoRepository, nombre, categoria string, stock int) *model.Moto {
	t.Helper()
	m := &model.Moto{
		Nombre:    nombre,
		Categoria: categoria,
		Precio:    decimal.NewFromInt(1000000),
		Stock:     stock,
		Estado:    model.EstadoDisponible,
	}
	require.NoError(t, repo.Create(context.Background(), m))
	return m
}

// The decrement is a conditional UPDATE guarded by stock > 0: RowsAffected
// tells the caller whether this transaction won the unit.
func TestDescontarStockVenta(t *testing.T) {
	db := newTestDB(t)
	repo := NewMotoRepository(db)
	ctx := context.Background()

	moto := crearMoto(t, repo, "MT-09", "Deportivas", 2)

	for esperado := 1; esperado >= 0; esperado-- {
		err := db.Transaction(func(tx *gorm.DB) error {
			restante, ok, err := repo.DescontarStockVentaTx(tx, moto.ID)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, esperado, restante, "RETURNING devuelve el stock recien escrito")
			return nil
		})
		require.NoError(t, err)

		actual, err := repo.FindByID(ctx, moto.ID)
		require.NoError(t, err)
		assert.Equal(t, esperado, actual.Stock)
	}

	// stock agotado: cero filas afectadas
	err := db.Transaction(func(tx *gorm.DB) error {
		_, ok, err := repo.DescontarStockVentaTx(tx, moto.ID)
		require.NoError(t, err)
		assert.False(t, ok)
		return nil
	})
	require.NoError(t, err)

	actual, err := repo.FindByID(ctx, moto.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, actual.Stock, "el stock nunca baja de cero")
}

func TestMotoListPorCategorias(t *testing.T) {
	db := newTestDB(t)
	repo := NewMotoRepository(db)
	ctx := context.Background()

	crearMoto(t, repo, "ZB 200 Carguera", "Carguero liviano", 5)
	crearMoto(t, repo, "Triciclo 300", "Cargueros", 2)
	crearMoto(t, repo, "MT-09", "Deportivas", 3)

	filter := dto.MotoFilter{Page: 1, Limit: 20}
	motos, total, err := repo.List(ctx, filter, []string{"Cargueros", "Carguero liviano"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, motos, 2)
}

func TestMotoListBusquedaCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	repo := NewMotoRepository(db)
	ctx := context.Background()

	crearMoto(t, repo, "ZB 200 Carguera", "Carguero liviano", 5)
	crearMoto(t, repo, "MT-09", "Deportivas", 3)

	motos, total, err := repo.List(ctx, dto.MotoFilter{Busqueda: "carguera", Page: 1, Limit: 20}, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, motos, 1)
	assert.Equal(t, "ZB 200 Carguera", motos[0].Nombre)
}

func TestMotoListBusquedaPorDescripcionYCategoria(t *testing.T) {
	db := newTestDB(t)
	repo := NewMotoRepository(db)
	ctx := context.Background()

	moto := crearMoto(t, repo, "MT-09", "Deportiva", 3)
	desc := "Nakeda urbana con frenos ABS"
	moto.Descripcion = &desc
	require.NoError(t, repo.Update(ctx, moto))
	crearMoto(t, repo, "ZB 200 Carguera", "Carguero liviano", 5)

	// el buscador del catalogo matchea descripcion y categoria, no solo nombre
	for _, termino := range []string{"abs", "deportiva"} {
		motos, total, err := repo.List(ctx, dto.MotoFilter{Busqueda: termino, Page: 1, Limit: 20}, nil)
		require.NoError(t, err, "busqueda %q", termino)
		assert.Equal(t, int64(1), total, "busqueda %q", termino)
		require.Len(t, motos, 1, "busqueda %q", termino)
		assert.Equal(t, "MT-09", motos[0].Nombre)
	}
}

func TestMotoListConStock(t *testing.T) {
	db := newTestDB(t)
	repo := NewMotoRepository(db)
	ctx := context.Background()

	crearMoto(t, repo, "MT-09", "Deportivas", 3)
	crearMoto(t, repo, "Agotada 125", "Deportivas", 0)

	motos, total, err := repo.List(ctx, dto.MotoFilter{ConStock: true, Page: 1, Limit: 20}, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, motos, 1)
	assert.Equal(t, "MT-09", motos[0].Nombre)
}

func TestMotoSpecsUpsertYDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewMotoRepository(db)
	ctx := context.Background()

	moto := crearMoto(t, repo, "MT-09", "Deportivas", 3)

	anio := 2024
	require.NoError(t, repo.UpsertSpecs(ctx, &model.MotoSpec{MotoID: moto.ID, Anio: &anio}))

	otroAnio := 2025
	require.NoError(t, repo.UpsertSpecs(ctx, &model.MotoSpec{MotoID: moto.ID, Anio: &otroAnio}))

	actual, err := repo.FindByID(ctx, moto.ID)
	require.NoError(t, err)
	require.NotNil(t, actual.Specs)
	require.NotNil(t, actual.Specs.Anio)
	assert.Equal(t, 2025, *actual.Specs.Anio)

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := repo.DeleteSpecsTx(tx, moto.ID); err != nil {
			return err
		}
		return repo.DeleteTx(tx, moto.ID)
	})
	require.NoError(t, err)

	_, err = repo.FindByID(ctx, moto.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
