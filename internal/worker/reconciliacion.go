package worker

// reconciliacion.go
// Background goroutine that periodically looks for catalog-linked sales with
// no stock movement on the ledger. Sales written before the transactional
// conversion path (or by out-of-band tooling) show up here; the worker backfills
// the missing ledger entry so stock audits balance again.

import (
	"context"
	"fmt"
	"time"

	"github.com/Bran258/land-roys-v4/internal/model"
	"github.com/Bran258/land-roys-v4/internal/repository"

	"github.com/rs/zerolog/log"
)

const reconciliacionTickInterval = 5 * time.Minute

// ReconciliacionConfig holds all dependencies for the reconciliation goroutine.
type ReconciliacionConfig struct {
	VentaRepo      repository.VentaRepository
	MovimientoRepo repository.MovimientoRepository
	MotoRepo       repository.MotoRepository
}

// StartReconciliacion launches a background goroutine that ticks every 5m and
// backfills ledger entries for orphan sales. Respects ctx for shutdown.
func StartReconciliacion(ctx context.Context, cfg ReconciliacionConfig) {
	go func() {
		ticker := time.NewTicker(reconciliacionTickInterval)
		defer ticker.Stop()

		log.Info().Msg("reconciliacion: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("reconciliacion: shutting down")
				return
			case <-ticker.C:
				processReconciliacion(ctx, cfg)
			}
		}
	}()
}

func processReconciliacion(ctx context.Context, cfg ReconciliacionConfig) {
	ventas, err := cfg.VentaRepo.ListSinMovimiento(ctx)
	if err != nil {
		log.Error().Err(err).Msg("reconciliacion: query failed")
		return
	}
	if len(ventas) == 0 {
		return
	}

	log.Warn().Int("count", len(ventas)).Msg("reconciliacion: sales missing ledger entries")

	for i := range ventas {
		v := &ventas[i]
		moto, err := cfg.MotoRepo.FindByID(ctx, *v.MotoID)
		if err != nil {
			log.Error().Err(err).Str("venta_id", v.ID.String()).Msg("reconciliacion: moto lookup failed")
			continue
		}

		ventaRef := v.ID
		mov := &model.MovimientoStock{
			ProductoTipo: model.ProductoMoto,
			ProductoID:   moto.ID,
			Tipo:         model.MovimientoReconciliacion,
			Cantidad:     -1,
			// The decrement already happened; current stock is the best
			// after-the-fact snapshot available.
			StockAnterior: moto.Stock + 1,
			StockNuevo:    moto.Stock,
			Motivo:        fmt.Sprintf("Reconciliacion venta %s", v.ID),
			ReferenciaID:  &ventaRef,
		}
		if err := cfg.MovimientoRepo.Create(ctx, mov); err != nil {
			log.Error().Err(err).Str("venta_id", v.ID.String()).Msg("reconciliacion: backfill failed")
			continue
		}
		log.Info().Str("venta_id", v.ID.String()).Msg("reconciliacion: ledger entry backfilled")
	}
}
