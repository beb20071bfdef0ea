package worker

// receipt_worker.go
// Processes receipt jobs from QueueReceipt: renders the PDF ticket for a
// completed sale and, when the checkout captured a customer email, mails it.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/gallegosdmz/pos-front-sub000/internal/infra"
	"github.com/gallegosdmz/pos-front-sub000/internal/model"
)

// ReceiptJobPayload is the job envelope sent to QueueReceipt.
type ReceiptJobPayload struct {
	Receipt       model.Receipt `json:"receipt"`
	CustomerEmail string        `json:"customer_email,omitempty"`
}

// ReceiptWorker renders and mails receipt tickets.
type ReceiptWorker struct {
	mailer      *infra.Mailer
	storagePath string
}

func NewReceiptWorker(mailer *infra.Mailer, storagePath string) *ReceiptWorker {
	return &ReceiptWorker{mailer: mailer, storagePath: storagePath}
}

// Process renders the PDF and sends it by email when an address is present.
// A returned error requeues the job (bounded retries, then DLQ).
func (w *ReceiptWorker) Process(_ context.Context, raw json.RawMessage) error {
	var payload ReceiptJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		// Malformed payloads are not retryable — log and drop.
		log.Error().Err(err).Msg("receipt_worker: invalid payload")
		return nil
	}

	pdfPath, err := infra.GenerateReceiptPDF(&payload.Receipt, w.storagePath)
	if err != nil {
		return fmt.Errorf("receipt_worker: render pdf: %w", err)
	}
	log.Info().Int64("sale_id", payload.Receipt.SaleID).Str("path", pdfPath).Msg("receipt_worker: ticket rendered")

	if payload.CustomerEmail == "" {
		return nil
	}

	subject := fmt.Sprintf("Your receipt for sale #%d", payload.Receipt.SaleID)
	body := fmt.Sprintf("Thank you for your purchase. Your receipt for sale #%d is attached.", payload.Receipt.SaleID)
	if err := w.mailer.SendReceipt(payload.CustomerEmail, subject, body, pdfPath); err != nil {
		return fmt.Errorf("receipt_worker: send email: %w", err)
	}
	log.Info().Str("to", payload.CustomerEmail).Int64("sale_id", payload.Receipt.SaleID).Msg("receipt_worker: receipt sent")
	return nil
}
