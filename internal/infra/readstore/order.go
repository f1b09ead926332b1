package readstore

import (
	"context"
	"errors"
	"time"

	"meetbook/internal/infra"
	"meetbook/internal/infra/db"
	"meetbook/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type OrderReadStore struct {
	db db.DBTX
}

func NewOrderReadStore(dbtx db.DBTX) *OrderReadStore {
	return &OrderReadStore{db: dbtx}
}

const findOrderViewSQL = `
SELECT id, reference, status, customer_name, customer_email, customer_phone,
       topic, meeting_date, meeting_time, tier, recurring,
       COALESCE(recur_total, 0),
       payment_method, paid_at, expired_at,
       join_url, meeting_id, meeting_passcode, created_at
FROM orders
WHERE reference = $1`

func (r *OrderReadStore) FindByReference(ctx context.Context, reference string) (*queries.OrderView, error) {
	var (
		view        queries.OrderView
		meetingDate time.Time
		meetingTime pgtype.Time
	)

	err := r.db.QueryRow(ctx, findOrderViewSQL, reference).Scan(
		&view.ID, &view.Reference, &view.Status, &view.CustomerName,
		&view.CustomerEmail, &view.CustomerPhone,
		&view.Topic, &meetingDate, &meetingTime, &view.Tier, &view.Recurring,
		&view.OccurrenceTotal,
		&view.PaymentMethod, &view.PaidAt, &view.ExpiredAt,
		&view.JoinURL, &view.MeetingID, &view.Passcode, &view.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order view", err)
	}

	view.StartAt = meetingDate.Add(time.Duration(meetingTime.Microseconds) * time.Microsecond)
	return &view, nil
}
