//go:build unit || e2e

package builder

import "time"

// WebhookBuilder produces gateway payloads in both generations the
// ingress accepts: the session envelope and the legacy flat invoice.
type WebhookBuilder struct {
	Event     string
	Reference string
	Status    string
	PaidAt    time.Time
}

func NewWebhookBuilder() *WebhookBuilder {
	return &WebhookBuilder{
		Event:     "payment_session.completed",
		Reference: "ORD-0001",
		Status:    "COMPLETED",
		PaidAt:    time.Date(2025, 1, 2, 10, 30, 0, 0, time.UTC),
	}
}

func (b *WebhookBuilder) With(mutate func(*WebhookBuilder)) *WebhookBuilder {
	mutate(b)
	return b
}

func (b *WebhookBuilder) BuildSessionEnvelope() map[string]any {
	return map[string]any{
		"event": b.Event,
		"data": map[string]any{
			"reference_id": b.Reference,
			"status":       b.Status,
			"paid_at":      b.PaidAt.Format(time.RFC3339),
		},
	}
}

func (b *WebhookBuilder) BuildLegacyInvoice() map[string]any {
	return map[string]any{
		"id":      b.Reference,
		"status":  b.Status,
		"paid_at": b.PaidAt.Format(time.RFC3339),
	}
}

func (b *WebhookBuilder) BuildCapture(channel, issuer string) map[string]any {
	return map[string]any{
		"event": "payment.capture",
		"data": map[string]any{
			"reference_id": b.Reference,
			"channel_code": channel,
			"issuer_name":  issuer,
		},
	}
}
