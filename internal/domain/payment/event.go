package payment

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// ErrUnroutable marks payloads that match neither supported gateway
// shape or that carry no correlation reference. They must be rejected
// without touching storage.
var ErrUnroutable = errors.New("unroutable gateway event")

type Status string

const (
	StatusCompleted Status = "COMPLETED"
	StatusExpired   Status = "EXPIRED"
	StatusFailed    Status = "FAILED"
	// StatusUnknown covers lifecycle statuses the gateway may add later;
	// the fulfillment pipeline treats them as "no change".
	StatusUnknown Status = "UNKNOWN"
)

type Kind string

const (
	// KindLifecycle events drive order status transitions.
	KindLifecycle Kind = "lifecycle"
	// KindMethodUpdate events only patch payment-method metadata.
	KindMethodUpdate Kind = "method_update"
)

// Event is the normalized form of one gateway delivery. It lives only
// for the duration of a single webhook request.
type Event struct {
	Kind      Kind
	Reference string
	Status    Status
	Method    *string
	PaidAt    *time.Time
}

// Gateway event names for the session (newer) payload shape. The legacy
// invoice shape has no event name and is recognized by its flat fields.
const (
	eventSessionCompleted = "payment_session.completed"
	eventSessionExpired   = "payment_session.expired"
	eventSessionFailed    = "payment_session.failed"
	eventRequestExpiry    = "payment_request.expiry"
	eventPaymentCapture   = "payment.capture"
)

type sessionPayload struct {
	Event string `json:"event"`
	Data  struct {
		ReferenceID   string     `json:"reference_id"`
		ChannelCode   string     `json:"channel_code"`
		IssuerName    string     `json:"issuer_name"`
		PaymentMethod string     `json:"payment_method"`
		PaidAt        *time.Time `json:"paid_at"`
	} `json:"data"`
}

type legacyPayload struct {
	ID            string     `json:"id"`
	Status        string     `json:"status"`
	PaymentMethod string     `json:"payment_method"`
	PaidAt        *time.Time `json:"paid_at"`
}

// Classify resolves a raw webhook body into an Event. Both gateway
// generations are supported indefinitely: the newer shape is an
// event-named envelope with a nested data object, the legacy shape a
// flat invoice object with id/status fields.
func Classify(raw []byte) (Event, error) {
	var probe struct {
		Event string `json:"event"`
		ID    string `json:"id"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return Event{}, ErrUnroutable
	}

	switch {
	case probe.Event != "":
		return classifySession(raw)
	case probe.ID != "":
		return classifyLegacy(raw)
	default:
		return Event{}, ErrUnroutable
	}
}

func classifySession(raw []byte) (Event, error) {
	var p sessionPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return Event{}, ErrUnroutable
	}
	if p.Data.ReferenceID == "" {
		return Event{}, ErrUnroutable
	}

	if p.Event == eventPaymentCapture {
		method := formatMethod(p.Data.ChannelCode, p.Data.IssuerName)
		return Event{
			Kind:      KindMethodUpdate,
			Reference: p.Data.ReferenceID,
			Status:    StatusUnknown,
			Method:    &method,
		}, nil
	}

	evt := Event{
		Kind:      KindLifecycle,
		Reference: p.Data.ReferenceID,
		PaidAt:    p.Data.PaidAt,
	}
	if p.Data.PaymentMethod != "" {
		m := p.Data.PaymentMethod
		evt.Method = &m
	}

	switch p.Event {
	case eventSessionCompleted:
		evt.Status = StatusCompleted
	case eventSessionExpired, eventRequestExpiry:
		evt.Status = StatusExpired
	case eventSessionFailed:
		evt.Status = StatusFailed
	default:
		// Unrecognized event families are unroutable; unrecognized
		// lifecycle verbs on known families pass through as no-ops.
		if !strings.HasPrefix(p.Event, "payment_session.") &&
			!strings.HasPrefix(p.Event, "payment_request.") &&
			!strings.HasPrefix(p.Event, "payment.") {
			return Event{}, ErrUnroutable
		}
		evt.Status = StatusUnknown
	}
	return evt, nil
}

func classifyLegacy(raw []byte) (Event, error) {
	var p legacyPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return Event{}, ErrUnroutable
	}
	if p.Status == "" {
		return Event{}, ErrUnroutable
	}

	evt := Event{
		Kind:      KindLifecycle,
		Reference: p.ID,
		PaidAt:    p.PaidAt,
	}
	if p.PaymentMethod != "" {
		m := p.PaymentMethod
		evt.Method = &m
	}

	switch strings.ToUpper(p.Status) {
	case "PAID", "SETTLED":
		evt.Status = StatusCompleted
	case "EXPIRED":
		evt.Status = StatusExpired
	case "FAILED":
		evt.Status = StatusFailed
	default:
		evt.Status = StatusUnknown
	}
	return evt, nil
}

func formatMethod(channel, issuer string) string {
	if issuer == "" {
		return channel
	}
	return channel + " - " + issuer
}
