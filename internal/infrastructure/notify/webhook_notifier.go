// Package notify implementa el puerto alerting.Notifier sobre un webhook HTTP
// genérico (Slack incoming webhook, n8n, Make, etc.).
package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/jhoicas/inventario-salud/internal/application/alerting"
)

var _ alerting.Notifier = (*WebhookNotifier)(nil)

// WebhookNotifier envía cada transición de estado como un POST JSON al webhook
// configurado.
type WebhookNotifier struct {
	client *resty.Client
}

// NewWebhookNotifier construye el notificador apuntando a webhookURL.
func NewWebhookNotifier(webhookURL string) *WebhookNotifier {
	client := resty.New().
		SetBaseURL(webhookURL).
		SetTimeout(10 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		SetHeader("Content-Type", "application/json")

	return &WebhookNotifier{client: client}
}

// Notify publica la notificación. Un status HTTP no-2xx se trata como error
// para que el escaneo deje la alerta con Notified=false.
func (w *WebhookNotifier) Notify(ctx context.Context, n alerting.Notification) error {
	resp, err := w.client.R().
		SetContext(ctx).
		SetBody(n).
		Post("")
	if err != nil {
		return fmt.Errorf("webhook: enviar notificación: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("webhook: status %d: %s", resp.StatusCode(), resp.String())
	}
	return nil
}
