package commands

import (
	"context"
	"time"

	"meetbook/internal/domain/order"

	"github.com/google/uuid"
)

// OrderSnapshot is the minimal read of an order the fulfillment state
// machine works against. Mutation happens through conditional updates,
// never by writing the snapshot back.
type OrderSnapshot struct {
	ID            uuid.UUID
	Reference     string
	CustomerName  string
	CustomerEmail string
	Topic         *string
	StartAt       time.Time
	Tier          int
	Passcode      *string
	Flags         order.Flags
	Recurrence    *order.RecurrenceSpec
	Status        order.Status
	Provisioned   bool
}

// PaidUpdate carries everything the pending→paid transition persists in
// one write. Provisioning may be nil: a paid order without meeting
// artifacts is a valid degraded state.
type PaidUpdate struct {
	PaidAt       time.Time
	Method       *string
	Provisioning *order.Provisioning
}

type OrderRepository interface {
	FindSnapshotByReference(ctx context.Context, reference string) (*OrderSnapshot, error)
	// MarkPaid applies the paid transition only while the order is still
	// pending and reports whether a row was updated.
	MarkPaid(ctx context.Context, reference string, upd PaidUpdate) (bool, error)
	MarkExpired(ctx context.Context, reference string, at time.Time) (bool, error)
	MarkFailed(ctx context.Context, reference string, at time.Time) (bool, error)
	SetPaymentMethod(ctx context.Context, reference string, method string) (bool, error)
	// AttachProvisioning writes meeting artifacts onto an already-paid
	// order that has none (operator resync path).
	AttachProvisioning(ctx context.Context, reference string, p order.Provisioning) (bool, error)
}

// MeetingScheduler provisions a meeting for a paid order. Failures are
// reported through ErrProviderAuth / ErrProvisionFailed marks.
type MeetingScheduler interface {
	Schedule(ctx context.Context, ord OrderSnapshot, occurrences []time.Time) (*order.Provisioning, error)
}

// AccountingNotifier triggers the downstream accounting sync. The
// implementation dispatches without blocking and swallows failures.
type AccountingNotifier interface {
	NotifyPaid(reference string)
}
