package commands

import (
	"context"
	"log/slog"
	"time"

	"meetbook/internal/domain/order"
	"meetbook/internal/domain/payment"
	"meetbook/internal/infra"
	"meetbook/internal/pkg/clock"
	"meetbook/internal/pkg/errs"
)

var (
	ErrOrderNotFound           = errs.New("order not found")
	ErrProviderAuth            = errs.New("provider authentication failed")
	ErrProvisionFailed         = errs.New("meeting provisioning failed")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type Outcome string

const (
	OutcomePaid          Outcome = "paid"
	OutcomeExpired       Outcome = "expired"
	OutcomeFailed        Outcome = "failed"
	OutcomeMethodUpdated Outcome = "method_updated"
	// OutcomeNoOp covers unknown references, already-terminal orders and
	// informational statuses. The gateway still receives success.
	OutcomeNoOp Outcome = "no_op"
)

type ProcessResult struct {
	Outcome   Outcome
	Reference string
	// Degraded is set when the order was marked paid but provisioning
	// produced no meeting artifacts.
	Degraded bool
}

type FulfillmentCommands interface {
	ProcessEvent(ctx context.Context, raw []byte) (*ProcessResult, error)
}

type fulfillmentUseCaseImpl struct {
	orders    OrderRepository
	scheduler MeetingScheduler
	notifier  AccountingNotifier
	clock     clock.Clock
}

func NewFulfillmentCommands(
	orders OrderRepository,
	scheduler MeetingScheduler,
	notifier AccountingNotifier,
	clock clock.Clock,
) FulfillmentCommands {
	return &fulfillmentUseCaseImpl{
		orders:    orders,
		scheduler: scheduler,
		notifier:  notifier,
		clock:     clock,
	}
}

// ProcessEvent classifies one gateway delivery and applies the matching
// order transition. Downstream provisioning failures never bubble up:
// the gateway must not retry a payment confirmation because a secondary
// system was unavailable.
func (f *fulfillmentUseCaseImpl) ProcessEvent(ctx context.Context, raw []byte) (*ProcessResult, error) {
	evt, err := payment.Classify(raw)
	if err != nil {
		return nil, err
	}

	if evt.Kind == payment.KindMethodUpdate {
		return f.applyMethodUpdate(ctx, evt)
	}

	snap, err := f.orders.FindSnapshotByReference(ctx, evt.Reference)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Possibly an event for another environment sharing the
			// gateway account; acknowledged, not fatal.
			slog.Info("gateway event for unknown order", "reference", evt.Reference)
			return &ProcessResult{Outcome: OutcomeNoOp, Reference: evt.Reference}, nil
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	// Idempotency guard: a paid order never moves again, regardless of
	// what the retried or out-of-order delivery says.
	if snap.Status == order.StatusPaid {
		slog.Info("order already paid, ignoring delivery",
			"reference", evt.Reference, "event_status", string(evt.Status))
		return &ProcessResult{Outcome: OutcomeNoOp, Reference: evt.Reference}, nil
	}

	target, moves := order.StatusForEvent(evt.Status)
	if !moves {
		return &ProcessResult{Outcome: OutcomeNoOp, Reference: evt.Reference}, nil
	}

	switch target {
	case order.StatusPaid:
		return f.applyPaid(ctx, *snap, evt)
	case order.StatusExpired:
		return f.applyTerminal(ctx, evt.Reference, OutcomeExpired, f.orders.MarkExpired)
	case order.StatusFailed:
		return f.applyTerminal(ctx, evt.Reference, OutcomeFailed, f.orders.MarkFailed)
	default:
		return &ProcessResult{Outcome: OutcomeNoOp, Reference: evt.Reference}, nil
	}
}

func (f *fulfillmentUseCaseImpl) applyPaid(ctx context.Context, snap OrderSnapshot, evt payment.Event) (*ProcessResult, error) {
	provisioning := f.provision(ctx, snap)

	paidAt := f.clock.Now()
	if evt.PaidAt != nil {
		paidAt = *evt.PaidAt
	}

	updated, err := f.orders.MarkPaid(ctx, snap.Reference, PaidUpdate{
		PaidAt:       paidAt,
		Method:       evt.Method,
		Provisioning: provisioning,
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !updated {
		// A concurrent delivery won the compare-and-set.
		slog.Info("paid transition lost race, ignoring", "reference", snap.Reference)
		return &ProcessResult{Outcome: OutcomeNoOp, Reference: snap.Reference}, nil
	}

	f.notifier.NotifyPaid(snap.Reference)

	return &ProcessResult{
		Outcome:   OutcomePaid,
		Reference: snap.Reference,
		Degraded:  provisioning == nil,
	}, nil
}

// provision expands the recurrence (when present) and asks the meeting
// provider for a schedule. Every failure degrades to "paid, no meeting":
// the artifacts are simply absent and flagged for operator follow-up.
func (f *fulfillmentUseCaseImpl) provision(ctx context.Context, snap OrderSnapshot) *order.Provisioning {
	var occurrences []time.Time
	if snap.Recurrence != nil {
		rule, err := snap.Recurrence.Rule()
		if err != nil {
			slog.Error("stored recurrence spec is invalid, provisioning skipped",
				"reference", snap.Reference, "error", err.Error())
			return nil
		}
		occurrences, err = rule.Expand(snap.StartAt)
		if err != nil {
			slog.Error("recurrence expansion failed, provisioning skipped",
				"reference", snap.Reference, "error", err.Error())
			return nil
		}
	}

	provisioning, err := f.scheduler.Schedule(ctx, snap, occurrences)
	if err != nil {
		slog.Warn("meeting provisioning failed, order continues degraded",
			"reference", snap.Reference, "error", err.Error())
		return nil
	}
	return provisioning
}

func (f *fulfillmentUseCaseImpl) applyTerminal(
	ctx context.Context,
	reference string,
	outcome Outcome,
	apply func(ctx context.Context, reference string, at time.Time) (bool, error),
) (*ProcessResult, error) {
	updated, err := apply(ctx, reference, f.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !updated {
		return &ProcessResult{Outcome: OutcomeNoOp, Reference: reference}, nil
	}
	return &ProcessResult{Outcome: outcome, Reference: reference}, nil
}

func (f *fulfillmentUseCaseImpl) applyMethodUpdate(ctx context.Context, evt payment.Event) (*ProcessResult, error) {
	if evt.Method == nil {
		return &ProcessResult{Outcome: OutcomeNoOp, Reference: evt.Reference}, nil
	}

	updated, err := f.orders.SetPaymentMethod(ctx, evt.Reference, *evt.Method)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Capture events can race order creation; dropped silently.
			return &ProcessResult{Outcome: OutcomeNoOp, Reference: evt.Reference}, nil
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !updated {
		return &ProcessResult{Outcome: OutcomeNoOp, Reference: evt.Reference}, nil
	}
	return &ProcessResult{Outcome: OutcomeMethodUpdated, Reference: evt.Reference}, nil
}
