package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/Bran258/land-roys-v4/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// A failed conversion must leave no partial writes: no venta row, the lead in
// its previous state, the stock untouched and the ledger empty.
func TestConversionRollbackSinEscriturasParciales(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	motos := NewMotoRepository(db)
	ventas := NewVentaRepository(db)
	solicitudes := NewSolicitudRepository(db)

	moto := crearMoto(t, motos, "MT-09", "Deportivas", 1)
	sol := &model.Solicitud{Nombre: "Carlos Diaz", Email: "carlos@example.com", Estado: model.SolicitudContactado}
	require.NoError(t, solicitudes.Create(ctx, sol))

	errForzado := errors.New("falla simulada al registrar el movimiento")
	err := db.Transaction(func(tx *gorm.DB) error {
		_, ok, err := motos.DescontarStockVentaTx(tx, moto.ID)
		require.NoError(t, err)
		require.True(t, ok)

		venta := &model.Venta{
			SolicitudID:   sol.ID,
			MotoID:        &moto.ID,
			ClienteNombre: sol.Nombre,
			Producto:      moto.Nombre,
			Monto:         decimal.NewFromInt(1000000),
			MetodoPago:    model.PagoEfectivo,
			Estado:        "completado",
		}
		if err := ventas.CreateTx(tx, venta); err != nil {
			return err
		}

		sol.Estado = model.SolicitudVendido
		if err := solicitudes.UpdateTx(tx, sol); err != nil {
			return err
		}
		return errForzado
	})
	require.ErrorIs(t, err, errForzado)

	actual, err := motos.FindByID(ctx, moto.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, actual.Stock, "el descuento de stock se revierte")

	_, err = ventas.FindBySolicitudID(ctx, sol.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound, "la venta no se persiste")

	var solActual model.Solicitud
	require.NoError(t, db.First(&solActual, "id = ?", sol.ID).Error)
	assert.Equal(t, model.SolicitudContactado, solActual.Estado)

	var totalMovs int64
	require.NoError(t, db.Model(&model.MovimientoStock{}).Count(&totalMovs).Error)
	assert.Zero(t, totalMovs)
}

func TestListSinMovimiento(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	motos := NewMotoRepository(db)
	ventas := NewVentaRepository(db)
	solicitudes := NewSolicitudRepository(db)
	movimientos := NewMovimientoRepository(db)

	moto := crearMoto(t, motos, "ZB 200 Carguera", "Carguero liviano", 5)
	sol := &model.Solicitud{Nombre: "Ana Lopez", Estado: model.SolicitudContactado}
	require.NoError(t, solicitudes.Create(ctx, sol))

	conLedger := &model.Venta{
		SolicitudID: sol.ID, MotoID: &moto.ID, ClienteNombre: "Ana Lopez",
		Producto: moto.Nombre, Monto: decimal.NewFromInt(4200000),
		MetodoPago: model.PagoTransferencia, Estado: "completado",
	}
	sinLedger := &model.Venta{
		SolicitudID: sol.ID, MotoID: &moto.ID, ClienteNombre: "Ana Lopez",
		Producto: moto.Nombre, Monto: decimal.NewFromInt(4200000),
		MetodoPago: model.PagoEfectivo, Estado: "completado",
	}
	productoLibre := &model.Venta{
		SolicitudID: sol.ID, ClienteNombre: "Ana Lopez",
		Producto: "Casco integral", Monto: decimal.NewFromInt(50000),
		MetodoPago: model.PagoEfectivo, Estado: "completado",
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		for _, v := range []*model.Venta{conLedger, sinLedger, productoLibre} {
			if err := ventas.CreateTx(tx, v); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, movimientos.Create(ctx, &model.MovimientoStock{
		ProductoTipo:  model.ProductoMoto,
		ProductoID:    moto.ID,
		Tipo:          model.MovimientoVenta,
		Cantidad:      -1,
		StockAnterior: 5,
		StockNuevo:    4,
		ReferenciaID:  &conLedger.ID,
	}))

	huerfanas, err := ventas.ListSinMovimiento(ctx)
	require.NoError(t, err)
	require.Len(t, huerfanas, 1)
	assert.Equal(t, sinLedger.ID, huerfanas[0].ID)
}
