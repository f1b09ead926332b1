//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// PendingOrderParams controls the fixture row; zero values fall back to
// sensible defaults.
type PendingOrderParams struct {
	Reference     string
	CustomerName  string
	CustomerEmail string
	Tier          int
	MeetingDate   time.Time
	MeetingTime   string
	RecurPattern  string
	RecurInterval int
	RecurWeekdays []int
	RecurCount    int
}

func CreatePendingOrder(t *testing.T, db DBLike, params PendingOrderParams) uuid.UUID {
	t.Helper()

	if params.CustomerName == "" {
		params.CustomerName = "Ayu Lestari"
	}
	if params.CustomerEmail == "" {
		params.CustomerEmail = "ayu@example.com"
	}
	if params.Tier == 0 {
		params.Tier = 100
	}
	if params.MeetingDate.IsZero() {
		params.MeetingDate = time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	}
	if params.MeetingTime == "" {
		params.MeetingTime = "09:00:00"
	}

	orderID := uuid.New()
	recurring := params.RecurPattern != ""

	var (
		pattern  *string
		interval *int
		weekdays []int
		count    *int
	)
	if recurring {
		pattern = &params.RecurPattern
		if params.RecurInterval == 0 {
			params.RecurInterval = 1
		}
		interval = &params.RecurInterval
		weekdays = params.RecurWeekdays
		if params.RecurCount != 0 {
			count = &params.RecurCount
		}
	}

	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO orders (
			id, reference, customer_name, customer_email,
			meeting_date, meeting_time, tier,
			recurring, recur_pattern, recur_interval, recur_weekdays, recur_count
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		orderID, params.Reference, params.CustomerName, params.CustomerEmail,
		params.MeetingDate, params.MeetingTime, params.Tier,
		recurring, pattern, interval, weekdays, count,
	)
	require.NoError(t, err)

	return orderID
}

// ResetDB truncates mutable tables between subtests.
func ResetDB(pool *pgxpool.Pool) error {
	ctx := context.Background()
	_, err := pool.Exec(ctx, "TRUNCATE TABLE orders, provider_credentials")
	return err
}
