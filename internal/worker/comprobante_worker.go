package worker

// comprobante_worker.go
// Processes jobs from QueueComprobantes: renders the PDF receipt for a
// committed sale and mails it to the customer. Runs after the conversion
// transaction, so a failure here never undoes the sale.

import (
	"context"
	"encoding/json"

	"github.com/Bran258/land-roys-v4/internal/infra"
	"github.com/Bran258/land-roys-v4/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ComprobantePayload is the job envelope sent to QueueComprobantes.
type ComprobantePayload struct {
	VentaID      string `json:"venta_id"`
	ClienteEmail string `json:"cliente_email"`
}

type ComprobanteWorker struct {
	ventaRepo   repository.VentaRepository
	mailer      *infra.Mailer
	storagePath string
}

func NewComprobanteWorker(ventaRepo repository.VentaRepository, mailer *infra.Mailer, storagePath string) *ComprobanteWorker {
	return &ComprobanteWorker{ventaRepo: ventaRepo, mailer: mailer, storagePath: storagePath}
}

// Process generates the receipt PDF and emails it.
func (w *ComprobanteWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload ComprobantePayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("comprobante_worker: invalid payload")
		return nil
	}

	id, err := uuid.Parse(payload.VentaID)
	if err != nil {
		log.Error().Str("venta_id", payload.VentaID).Msg("comprobante_worker: invalid venta_id")
		return nil
	}

	venta, err := w.ventaRepo.FindByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("venta_id", payload.VentaID).Msg("comprobante_worker: venta not found")
		return err
	}

	pdfPath, err := infra.GenerateReciboPDF(venta, w.storagePath)
	if err != nil {
		log.Error().Err(err).Str("venta_id", payload.VentaID).Msg("comprobante_worker: pdf generation failed")
		return err
	}

	if payload.ClienteEmail == "" {
		log.Warn().Str("venta_id", payload.VentaID).Msg("comprobante_worker: no cliente_email, pdf kept on disk")
		return nil
	}

	body := "Adjuntamos el comprobante de su compra. Gracias por elegirnos."
	if err := w.mailer.Send(payload.ClienteEmail, "Comprobante de compra", body, pdfPath); err != nil {
		log.Error().Err(err).Str("to", payload.ClienteEmail).Msg("comprobante_worker: send failed")
		return err
	}
	log.Info().Str("venta_id", payload.VentaID).Str("to", payload.ClienteEmail).Msg("comprobante_worker: receipt sent")
	return nil
}
