package service

import (
	"context"
	"testing"

	"github.com/Bran258/land-roys-v4/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuardarRankingCreaYActualiza(t *testing.T) {
	repo := newStubRankingRepo()
	svc := NewRankingService(repo)
	ctx := context.Background()

	oro := "La mas vendida"
	items, err := svc.Guardar(ctx, dto.GuardarRankingRequest{Items: []dto.RankingItemRequest{
		{Posicion: 1, Nombre: "ZB 200", Etiqueta: &oro},
		{Posicion: 2, Nombre: "MT-09"},
		{Posicion: 3, Nombre: "Triciclo 300"},
	}})
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "ZB 200", items[0].Nombre)
	assert.Equal(t, 1, items[0].Posicion)

	// re-guardar con el mismo id pisa la entrada en vez de duplicarla
	renombrada := items[0]
	items, err = svc.Guardar(ctx, dto.GuardarRankingRequest{Items: []dto.RankingItemRequest{
		{ID: &renombrada.ID, Posicion: 1, Nombre: "ZB 200 Carguera"},
	}})
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "ZB 200 Carguera", items[0].Nombre)
	assert.Equal(t, renombrada.ID, items[0].ID)
}

func TestGuardarRankingPosicionRepetida(t *testing.T) {
	svc := NewRankingService(newStubRankingRepo())

	_, err := svc.Guardar(context.Background(), dto.GuardarRankingRequest{Items: []dto.RankingItemRequest{
		{Posicion: 1, Nombre: "ZB 200"},
		{Posicion: 1, Nombre: "MT-09"},
	}})
	assert.ErrorIs(t, err, ErrValidacion)
}

func TestGuardarRankingMasDeTresPosiciones(t *testing.T) {
	svc := NewRankingService(newStubRankingRepo())

	_, err := svc.Guardar(context.Background(), dto.GuardarRankingRequest{Items: []dto.RankingItemRequest{
		{Posicion: 1, Nombre: "A"},
		{Posicion: 2, Nombre: "B"},
		{Posicion: 3, Nombre: "C"},
		{Posicion: 4, Nombre: "D"},
	}})
	assert.ErrorIs(t, err, ErrValidacion)
}

func TestListarRankingSoloActivos(t *testing.T) {
	repo := newStubRankingRepo()
	svc := NewRankingService(repo)
	ctx := context.Background()

	oculta := false
	_, err := svc.Guardar(ctx, dto.GuardarRankingRequest{Items: []dto.RankingItemRequest{
		{Posicion: 2, Nombre: "MT-09"},
		{Posicion: 1, Nombre: "ZB 200"},
		{Posicion: 3, Nombre: "En preparacion", Activo: &oculta},
	}})
	require.NoError(t, err)

	publicos, err := svc.Listar(ctx, true)
	require.NoError(t, err)
	require.Len(t, publicos, 2)
	// podium order, not submission order
	assert.Equal(t, "ZB 200", publicos[0].Nombre)
	assert.Equal(t, "MT-09", publicos[1].Nombre)

	todos, err := svc.Listar(ctx, false)
	require.NoError(t, err)
	assert.Len(t, todos, 3)
}

func TestEliminarRankingInexistente(t *testing.T) {
	svc := NewRankingService(newStubRankingRepo())

	err := svc.Eliminar(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNoEncontrado)
}
