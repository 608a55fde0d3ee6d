package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/Bran258/land-roys-v4/internal/dto"
	"github.com/Bran258/land-roys-v4/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrearSlideRespetaElTope(t *testing.T) {
	repo := newStubSliderRepo()
	svc := NewSliderService(repo)
	ctx := context.Background()

	for i := 0; i < model.MaxSlides; i++ {
		_, err := svc.Crear(ctx, dto.CrearSlideRequest{
			Titulo:    fmt.Sprintf("Slide %d", i+1),
			ImagenURL: fmt.Sprintf("https://cdn.example.com/slide-%d.jpg", i+1),
		})
		require.NoError(t, err)
	}

	_, err := svc.Crear(ctx, dto.CrearSlideRequest{
		Titulo:    "Uno de mas",
		ImagenURL: "https://cdn.example.com/extra.jpg",
	})
	assert.ErrorIs(t, err, ErrValidacion)
}

func TestReordenarSlides(t *testing.T) {
	repo := newStubSliderRepo()
	svc := NewSliderService(repo)
	ctx := context.Background()

	var ids []string
	for i := 0; i < 3; i++ {
		resp, err := svc.Crear(ctx, dto.CrearSlideRequest{
			Titulo:    fmt.Sprintf("Slide %d", i+1),
			ImagenURL: fmt.Sprintf("https://cdn.example.com/slide-%d.jpg", i+1),
		})
		require.NoError(t, err)
		ids = append(ids, resp.ID)
	}

	invertidos := []string{ids[2], ids[1], ids[0]}
	resp, err := svc.Reordenar(ctx, dto.ReordenarSlidesRequest{IDs: invertidos})
	require.NoError(t, err)

	require.Len(t, resp, 3)
	for i, slide := range resp {
		assert.Equal(t, i, slide.Orden)
		assert.Equal(t, invertidos[i], slide.ID)
	}
}

func TestReordenarExigeElConjuntoCompleto(t *testing.T) {
	repo := newStubSliderRepo()
	svc := NewSliderService(repo)
	ctx := context.Background()

	var ids []string
	for i := 0; i < 2; i++ {
		resp, err := svc.Crear(ctx, dto.CrearSlideRequest{
			Titulo:    fmt.Sprintf("Slide %d", i+1),
			ImagenURL: fmt.Sprintf("https://cdn.example.com/slide-%d.jpg", i+1),
		})
		require.NoError(t, err)
		ids = append(ids, resp.ID)
	}

	_, err := svc.Reordenar(ctx, dto.ReordenarSlidesRequest{IDs: ids[:1]})
	assert.ErrorIs(t, err, ErrValidacion)

	_, err = svc.Reordenar(ctx, dto.ReordenarSlidesRequest{IDs: []string{ids[0], ids[0]}})
	assert.ErrorIs(t, err, ErrValidacion)

	_, err = svc.Reordenar(ctx, dto.ReordenarSlidesRequest{IDs: []string{ids[0], uuid.NewString()}})
	assert.ErrorIs(t, err, ErrNoEncontrado)
}

func TestListarSoloActivos(t *testing.T) {
	repo := newStubSliderRepo()
	svc := NewSliderService(repo)
	ctx := context.Background()

	inactivo := false
	_, err := svc.Crear(ctx, dto.CrearSlideRequest{
		Titulo:    "Visible",
		ImagenURL: "https://cdn.example.com/visible.jpg",
	})
	require.NoError(t, err)
	_, err = svc.Crear(ctx, dto.CrearSlideRequest{
		Titulo:    "Borrador",
		ImagenURL: "https://cdn.example.com/borrador.jpg",
		Activo:    &inactivo,
	})
	require.NoError(t, err)

	activos, err := svc.Listar(ctx, true)
	require.NoError(t, err)
	require.Len(t, activos, 1)
	assert.Equal(t, "Visible", activos[0].Titulo)
}
