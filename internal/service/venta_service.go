package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Bran258/land-roys-v4/internal/dto"
	"github.com/Bran258/land-roys-v4/internal/model"
	"github.com/Bran258/land-roys-v4/internal/repository"
	"github.com/Bran258/land-roys-v4/internal/worker"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type VentaService interface {
	ConvertirSolicitud(ctx context.Context, solicitudID uuid.UUID, req dto.ConvertirSolicitudRequest) (*dto.VentaResponse, error)
	Obtener(ctx context.Context, id uuid.UUID) (*dto.VentaResponse, error)
	ListVentas(ctx context.Context, filter dto.VentaFilter) (*dto.VentaListResponse, error)
}

type ventaService struct {
	repo          repository.VentaRepository
	solicitudRepo repository.SolicitudRepository
	motoRepo      repository.MotoRepository
	inventario    InventarioService
	dispatcher    *worker.Dispatcher
}

func NewVentaService(
	repo repository.VentaRepository,
	solicitudRepo repository.SolicitudRepository,
	motoRepo repository.MotoRepository,
	inventario InventarioService,
	dispatcher *worker.Dispatcher,
) VentaService {
	return &ventaService{
		repo:          repo,
		solicitudRepo: solicitudRepo,
		motoRepo:      motoRepo,
		inventario:    inventario,
		dispatcher:    dispatcher,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// aplicarDescuento returns the final amount and the human-readable breakdown
// appended to the sale notes. Percentage discounts must fall in [0, 100];
// fixed discounts larger than the base amount clamp the total at zero.
func aplicarDescuento(monto decimal.Decimal, tipo string, valor *decimal.Decimal) (decimal.Decimal, string, error) {
	if tipo == "" || valor == nil || valor.IsZero() {
		return monto.Round(2), "", nil
	}
	if valor.IsNegative() {
		return decimal.Zero, "", fmt.Errorf("%w: el descuento no puede ser negativo", ErrValidacion)
	}

	var aplicado decimal.Decimal
	var etiqueta string
	switch tipo {
	case "porcentaje":
		if valor.GreaterThan(decimal.NewFromInt(100)) {
			return decimal.Zero, "", fmt.Errorf("%w: el porcentaje no puede superar 100", ErrValidacion)
		}
		aplicado = monto.Mul(*valor).Div(decimal.NewFromInt(100))
		etiqueta = valor.String() + "%"
	case "fijo":
		aplicado = *valor
		if aplicado.GreaterThan(monto) {
			aplicado = monto
		}
		etiqueta = "$" + valor.String()
	default:
		return decimal.Zero, "", fmt.Errorf("%w: descuento_tipo desconocido", ErrValidacion)
	}

	final := monto.Sub(aplicado).Round(2)
	nota := fmt.Sprintf(" [Descuento: %s (-$%s). Precio Original: $%s]",
		etiqueta, aplicado.Round(2).String(), monto.Round(2).String())
	return final, nota, nil
}

// ── ConvertirSolicitud ───────────────────────────────────────────────────────
// Turns a lead into a sale in ONE transaction:
//   1. Pre-flight: lead must not be terminal, moto (if any) must exist
//   2. BEGIN TX: conditional stock decrement, create venta, mark lead
//      vendido, record movimiento de stock
//   3. COMMIT
//   4. (async) dispatch comprobante job
//
// The decrement is `UPDATE ... SET stock = stock - 1 WHERE id = ? AND
// stock > 0 RETURNING stock`; zero rows affected means another conversion won
// the last unit and the whole transaction rolls back with ErrSinStock. The
// returned stock feeds the ledger snapshots.

func (s *ventaService) ConvertirSolicitud(ctx context.Context, solicitudID uuid.UUID, req dto.ConvertirSolicitudRequest) (*dto.VentaResponse, error) {
	sol, err := s.solicitudRepo.FindByID(ctx, solicitudID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: solicitud %s", ErrNoEncontrado, solicitudID)
		}
		return nil, err
	}
	if sol.Estado == model.SolicitudVendido {
		return nil, fmt.Errorf("%w: la solicitud ya fue convertida", ErrEstadoInvalido)
	}
	if sol.Estado == model.SolicitudCerrado {
		return nil, fmt.Errorf("%w: la solicitud esta cerrada", ErrEstadoInvalido)
	}

	var moto *model.Moto
	producto := req.Producto
	var motoID *uuid.UUID
	if req.MotoID != nil {
		mid, err := uuid.Parse(*req.MotoID)
		if err != nil {
			return nil, fmt.Errorf("%w: moto_id invalido", ErrValidacion)
		}
		moto, err = s.motoRepo.FindByID(ctx, mid)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: moto %s", ErrNoEncontrado, mid)
			}
			return nil, err
		}
		producto = moto.Nombre
		motoID = &mid
	}
	if producto == "" {
		return nil, fmt.Errorf("%w: indique moto_id o producto", ErrValidacion)
	}
	if req.Monto.IsNegative() {
		return nil, fmt.Errorf("%w: el monto no puede ser negativo", ErrValidacion)
	}

	monto, notaDescuento, err := aplicarDescuento(req.Monto, req.DescuentoTipo, req.DescuentoValor)
	if err != nil {
		return nil, err
	}
	notas := req.Notas + notaDescuento

	var fechaEntrega *time.Time
	if req.FechaEntrega != nil {
		t, err := time.Parse("2006-01-02", *req.FechaEntrega)
		if err != nil {
			return nil, fmt.Errorf("%w: fecha_entrega invalida", ErrValidacion)
		}
		fechaEntrega = &t
	}

	clienteEmail := sol.Email
	if req.ClienteEmail != nil && *req.ClienteEmail != "" {
		clienteEmail = *req.ClienteEmail
	}

	venta := model.Venta{
		SolicitudID:   sol.ID,
		MotoID:        motoID,
		ClienteNombre: sol.Nombre,
		ClienteEmail:  clienteEmail,
		Producto:      producto,
		Monto:         monto,
		MetodoPago:    req.MetodoPago,
		FechaEntrega:  fechaEntrega,
		Notas:         notas,
		Estado:        "completado",
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		var stockRestante int
		if moto != nil {
			restante, ok, err := s.motoRepo.DescontarStockVentaTx(tx, moto.ID)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: %s", ErrSinStock, moto.Nombre)
			}
			stockRestante = restante
		}

		if err := s.repo.CreateTx(tx, &venta); err != nil {
			return err
		}

		sol.Estado = model.SolicitudVendido
		if err := s.solicitudRepo.UpdateTx(tx, sol); err != nil {
			return err
		}

		if moto != nil {
			ventaRef := venta.ID
			// Snapshots derive from the value the decrement just wrote, so
			// concurrent conversions each ledger their own step down.
			mov := &model.MovimientoStock{
				ProductoTipo:  model.ProductoMoto,
				ProductoID:    moto.ID,
				Tipo:          model.MovimientoVenta,
				Cantidad:      -1,
				StockAnterior: stockRestante + 1,
				StockNuevo:    stockRestante,
				Motivo:        fmt.Sprintf("Venta a %s", sol.Nombre),
				ReferenciaID:  &ventaRef,
			}
			if err := s.inventario.RegistrarMovimientoTx(tx, mov); err != nil {
				return err
			}

			if stockRestante <= 0 && tx != nil {
				if err := tx.Model(&model.Moto{}).Where("id = ? AND stock <= 0", moto.ID).
					Update("estado", model.EstadoAgotado).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	// Async comprobante job, best effort: the sale is already committed.
	if s.dispatcher != nil {
		_ = s.dispatcher.EnqueueComprobante(ctx, map[string]interface{}{
			"venta_id":      venta.ID.String(),
			"cliente_email": clienteEmail,
		})
	}

	return ventaToResponse(&venta), nil
}

func (s *ventaService) Obtener(ctx context.Context, id uuid.UUID) (*dto.VentaResponse, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: venta %s", ErrNoEncontrado, id)
		}
		return nil, err
	}
	return ventaToResponse(v), nil
}

func (s *ventaService) ListVentas(ctx context.Context, filter dto.VentaFilter) (*dto.VentaListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	ventas, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.VentaResponse, 0, len(ventas))
	for i := range ventas {
		data = append(data, *ventaToResponse(&ventas[i]))
	}
	return &dto.VentaListResponse{
		Data:  data,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func ventaToResponse(v *model.Venta) *dto.VentaResponse {
	var motoID *string
	if v.MotoID != nil {
		s := v.MotoID.String()
		motoID = &s
	}
	var fechaEntrega *string
	if v.FechaEntrega != nil {
		s := v.FechaEntrega.Format("2006-01-02")
		fechaEntrega = &s
	}
	return &dto.VentaResponse{
		ID:            v.ID.String(),
		SolicitudID:   v.SolicitudID.String(),
		MotoID:        motoID,
		ClienteNombre: v.ClienteNombre,
		ClienteEmail:  v.ClienteEmail,
		Producto:      v.Producto,
		Monto:         v.Monto,
		MetodoPago:    v.MetodoPago,
		FechaEntrega:  fechaEntrega,
		Notas:         v.Notas,
		Estado:        v.Estado,
		CreatedAt:     v.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
