package repository

import (
	"context"
	"errors"
	"time"

	"meetbook/internal/domain/order"
	"meetbook/internal/infra"
	"meetbook/internal/infra/db"
	"meetbook/internal/usecase/commands"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type OrderRepository struct {
	db db.DBTX
}

func NewOrderRepository(dbtx db.DBTX) *OrderRepository {
	return &OrderRepository{db: dbtx}
}

const findOrderSnapshotSQL = `
SELECT id, reference, customer_name, customer_email, topic,
       meeting_date, meeting_time, tier, passcode,
       registration_required, qa_enabled, interpretation_enabled,
       mute_on_entry, require_unmute_permission,
       recurring, recur_pattern, recur_interval, recur_weekdays,
       recur_monthly_day, recur_monthly_week, recur_monthly_weekday,
       recur_end_date, recur_count, recur_total,
       status, meeting_uuid IS NOT NULL
FROM orders
WHERE reference = $1`

func (r *OrderRepository) FindSnapshotByReference(ctx context.Context, reference string) (*commands.OrderSnapshot, error) {
	row := r.db.QueryRow(ctx, findOrderSnapshotSQL, reference)

	var (
		snap         commands.OrderSnapshot
		meetingDate  time.Time
		meetingTime  pgtype.Time
		recurring    bool
		pattern      *string
		interval     *int
		weekdays     []int32
		monthlyDay   *int
		monthlyWeek  *int
		monthlyWkday *int
		recurEndDate *time.Time
		recurCount   *int
		recurTotal   *int
		statusStr    string
	)

	err := row.Scan(
		&snap.ID, &snap.Reference, &snap.CustomerName, &snap.CustomerEmail, &snap.Topic,
		&meetingDate, &meetingTime, &snap.Tier, &snap.Passcode,
		&snap.Flags.RegistrationRequired, &snap.Flags.QAEnabled, &snap.Flags.InterpretationEnabled,
		&snap.Flags.MuteOnEntry, &snap.Flags.RequireUnmutePermission,
		&recurring, &pattern, &interval, &weekdays,
		&monthlyDay, &monthlyWeek, &monthlyWkday,
		&recurEndDate, &recurCount, &recurTotal,
		&statusStr, &snap.Provisioned,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order by reference", err)
	}

	snap.Status = order.Status(statusStr)
	snap.StartAt = meetingDate.Add(time.Duration(meetingTime.Microseconds) * time.Microsecond)
	if recurring && pattern != nil {
		spec := &order.RecurrenceSpec{Pattern: *pattern}
		if interval != nil {
			spec.Interval = *interval
		}
		if weekdays != nil {
			spec.Weekdays = make([]int, len(weekdays))
			for i, d := range weekdays {
				spec.Weekdays[i] = int(d)
			}
		}
		if monthlyDay != nil {
			spec.MonthlyDay = *monthlyDay
		}
		if monthlyWeek != nil {
			spec.MonthlyWeek = *monthlyWeek
		}
		if monthlyWkday != nil {
			spec.MonthlyWeekday = *monthlyWkday
		}
		spec.EndDate = recurEndDate
		if recurCount != nil {
			spec.Count = *recurCount
		}
		if recurTotal != nil {
			spec.Total = *recurTotal
		}
		snap.Recurrence = spec
	}

	return &snap, nil
}

const markPaidSQL = `
UPDATE orders
SET status = 'paid',
    paid_at = $2,
    payment_method = COALESCE($3, payment_method),
    meeting_uuid = $4,
    meeting_id = $5,
    join_url = $6,
    meeting_passcode = $7,
    updated_at = now()
WHERE reference = $1 AND status = 'pending'`

// MarkPaid is the compare-and-set half of the idempotency guard: the
// WHERE clause loses against any concurrent delivery that already moved
// the order out of pending.
func (r *OrderRepository) MarkPaid(ctx context.Context, reference string, upd commands.PaidUpdate) (bool, error) {
	var meetingUUID, joinURL, passcode *string
	var meetingID *int64
	if p := upd.Provisioning; p != nil {
		meetingUUID = &p.MeetingUUID
		meetingID = &p.MeetingID
		joinURL = &p.JoinURL
		passcode = &p.Passcode
	}

	tag, err := r.db.Exec(ctx, markPaidSQL,
		reference, upd.PaidAt, upd.Method, meetingUUID, meetingID, joinURL, passcode)
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark order paid", err)
	}
	return tag.RowsAffected() > 0, nil
}

const markExpiredSQL = `
UPDATE orders
SET status = 'expired', expired_at = $2, updated_at = now()
WHERE reference = $1 AND status = 'pending'`

func (r *OrderRepository) MarkExpired(ctx context.Context, reference string, at time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, markExpiredSQL, reference, at)
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark order expired", err)
	}
	return tag.RowsAffected() > 0, nil
}

const markFailedSQL = `
UPDATE orders
SET status = 'failed', updated_at = now()
WHERE reference = $1 AND status = 'pending'`

func (r *OrderRepository) MarkFailed(ctx context.Context, reference string, _ time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, markFailedSQL, reference)
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark order failed", err)
	}
	return tag.RowsAffected() > 0, nil
}

const setPaymentMethodSQL = `
UPDATE orders
SET payment_method = $2, updated_at = now()
WHERE reference = $1`

func (r *OrderRepository) SetPaymentMethod(ctx context.Context, reference string, method string) (bool, error) {
	tag, err := r.db.Exec(ctx, setPaymentMethodSQL, reference, method)
	if err != nil {
		return false, infra.WrapRepoErr("failed to set payment method", err)
	}
	return tag.RowsAffected() > 0, nil
}

const attachProvisioningSQL = `
UPDATE orders
SET meeting_uuid = $2, meeting_id = $3, join_url = $4, meeting_passcode = $5, updated_at = now()
WHERE reference = $1 AND status = 'paid' AND meeting_uuid IS NULL`

func (r *OrderRepository) AttachProvisioning(ctx context.Context, reference string, p order.Provisioning) (bool, error) {
	tag, err := r.db.Exec(ctx, attachProvisioningSQL,
		reference, p.MeetingUUID, p.MeetingID, p.JoinURL, p.Passcode)
	if err != nil {
		return false, infra.WrapRepoErr("failed to attach provisioning", err)
	}
	return tag.RowsAffected() > 0, nil
}
