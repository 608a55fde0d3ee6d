package worker

// notificacion_worker.go
// Processes jobs from QueueNotificaciones: mails the dealership admin when a
// new contact form lands so leads get a fast first response.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Bran258/land-roys-v4/internal/infra"

	"github.com/rs/zerolog/log"
)

// NotificacionPayload is the job envelope sent to QueueNotificaciones.
type NotificacionPayload struct {
	SolicitudID string `json:"solicitud_id"`
	Nombre      string `json:"nombre"`
	Email       string `json:"email"`
}

type NotificacionWorker struct {
	mailer     *infra.Mailer
	adminEmail string
}

func NewNotificacionWorker(mailer *infra.Mailer, adminEmail string) *NotificacionWorker {
	return &NotificacionWorker{mailer: mailer, adminEmail: adminEmail}
}

// Process sends the new-lead alert to the admin inbox.
func (w *NotificacionWorker) Process(_ context.Context, raw json.RawMessage) error {
	var payload NotificacionPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("notificacion_worker: invalid payload")
		return nil // malformed payloads never succeed on retry
	}
	if w.adminEmail == "" {
		log.Warn().Msg("notificacion_worker: ADMIN_EMAIL not configured, skipping")
		return nil
	}

	subject := fmt.Sprintf("Nueva solicitud de %s", payload.Nombre)
	body := fmt.Sprintf(
		"Llego una nueva solicitud de contacto.\n\nNombre: %s\nEmail: %s\nID: %s\n",
		payload.Nombre, payload.Email, payload.SolicitudID)

	if err := w.mailer.Send(w.adminEmail, subject, body, ""); err != nil {
		log.Error().Err(err).Str("solicitud_id", payload.SolicitudID).Msg("notificacion_worker: send failed")
		return err
	}
	log.Info().Str("solicitud_id", payload.SolicitudID).Msg("notificacion_worker: admin notified")
	return nil
}
