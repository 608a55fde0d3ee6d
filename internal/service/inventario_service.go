package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Bran258/land-roys-v4/internal/dto"
	"github.com/Bran258/land-roys-v4/internal/model"
	"github.com/Bran258/land-roys-v4/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InventarioService interface {
	// AjustarStock sets the absolute stock of a moto or repuesto and records
	// the delta in the movement ledger. Negative targets are rejected.
	AjustarStock(ctx context.Context, req dto.AjustarStockRequest) (*dto.MovimientoResponse, error)
	ListarMovimientos(ctx context.Context, filter dto.MovimientoFilter) (*dto.MovimientoListResponse, error)

	// RegistrarMovimientoTx writes a ledger entry inside the caller's tx.
	RegistrarMovimientoTx(tx *gorm.DB, m *model.MovimientoStock) error
}

type inventarioService struct {
	motoRepo     repository.MotoRepository
	repuestoRepo repository.RepuestoRepository
	movRepo      repository.MovimientoRepository
}

func NewInventarioService(
	motoRepo repository.MotoRepository,
	repuestoRepo repository.RepuestoRepository,
	movRepo repository.MovimientoRepository,
) InventarioService {
	return &inventarioService{motoRepo: motoRepo, repuestoRepo: repuestoRepo, movRepo: movRepo}
}

func (s *inventarioService) AjustarStock(ctx context.Context, req dto.AjustarStockRequest) (*dto.MovimientoResponse, error) {
	if req.Stock < 0 {
		return nil, fmt.Errorf("%w: el stock no puede ser negativo", ErrValidacion)
	}
	id, err := uuid.Parse(req.ProductoID)
	if err != nil {
		return nil, fmt.Errorf("%w: producto_id invalido", ErrValidacion)
	}

	var stockAnterior int
	switch req.ProductoTipo {
	case model.ProductoMoto:
		m, err := s.motoRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: moto %s", ErrNoEncontrado, id)
			}
			return nil, err
		}
		stockAnterior = m.Stock
	case model.ProductoRepuesto:
		r, err := s.repuestoRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: repuesto %s", ErrNoEncontrado, id)
			}
			return nil, err
		}
		stockAnterior = r.Stock
	default:
		return nil, fmt.Errorf("%w: producto_tipo desconocido", ErrValidacion)
	}

	mov := model.MovimientoStock{
		ProductoTipo:  req.ProductoTipo,
		ProductoID:    id,
		Tipo:          model.MovimientoAjusteManual,
		Cantidad:      req.Stock - stockAnterior,
		StockAnterior: stockAnterior,
		StockNuevo:    req.Stock,
		Motivo:        req.Motivo,
	}

	txErr := runTx(ctx, s.movRepo.DB(), func(tx *gorm.DB) error {
		if tx == nil {
			// unit test mode: fall through to the plain repo methods
			if req.ProductoTipo == model.ProductoMoto {
				if err := s.motoRepo.UpdateStock(ctx, id, req.Stock); err != nil {
					return err
				}
			} else {
				if err := s.repuestoRepo.UpdateStock(ctx, id, req.Stock); err != nil {
					return err
				}
			}
			return s.movRepo.Create(ctx, &mov)
		}
		var err error
		if req.ProductoTipo == model.ProductoMoto {
			err = tx.Model(&model.Moto{}).Where("id = ?", id).Update("stock", req.Stock).Error
		} else {
			err = tx.Model(&model.Repuesto{}).Where("id = ?", id).Update("stock", req.Stock).Error
		}
		if err != nil {
			return err
		}
		return s.movRepo.CreateTx(tx, &mov)
	})
	if txErr != nil {
		return nil, txErr
	}
	return movimientoToResponse(&mov), nil
}

func (s *inventarioService) ListarMovimientos(ctx context.Context, filter dto.MovimientoFilter) (*dto.MovimientoListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	movimientos, total, err := s.movRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.MovimientoResponse, 0, len(movimientos))
	for i := range movimientos {
		data = append(data, *movimientoToResponse(&movimientos[i]))
	}
	return &dto.MovimientoListResponse{
		Data:  data,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (s *inventarioService) RegistrarMovimientoTx(tx *gorm.DB, m *model.MovimientoStock) error {
	if tx == nil {
		return s.movRepo.Create(context.Background(), m)
	}
	return s.movRepo.CreateTx(tx, m)
}

func movimientoToResponse(m *model.MovimientoStock) *dto.MovimientoResponse {
	var ref *string
	if m.ReferenciaID != nil {
		s := m.ReferenciaID.String()
		ref = &s
	}
	return &dto.MovimientoResponse{
		ID:            m.ID.String(),
		ProductoTipo:  m.ProductoTipo,
		ProductoID:    m.ProductoID.String(),
		Tipo:          m.Tipo,
		Cantidad:      m.Cantidad,
		StockAnterior: m.StockAnterior,
		StockNuevo:    m.StockNuevo,
		Motivo:        m.Motivo,
		ReferenciaID:  ref,
		CreatedAt:     m.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
