//go:build unit || e2e

package builder

import (
	"time"

	"meetbook/internal/domain/order"
	"meetbook/internal/usecase/commands"
	"meetbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderBuilder struct {
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

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		ID:            uuid.New(),
		Reference:     "ORD-0001",
		CustomerName:  "Ayu Lestari",
		CustomerEmail: "ayu@example.com",
		StartAt:       time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC),
		Tier:          100,
		Status:        order.StatusPending,
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

func (b *OrderBuilder) Paid() *OrderBuilder {
	b.Status = order.StatusPaid
	return b
}

func (b *OrderBuilder) WeeklyRecurring(count int, weekdays ...int) *OrderBuilder {
	b.Recurrence = &order.RecurrenceSpec{
		Pattern:  "weekly",
		Interval: 1,
		Weekdays: weekdays,
		Count:    count,
	}
	return b
}

func (b *OrderBuilder) BuildSnapshot() *commands.OrderSnapshot {
	return &commands.OrderSnapshot{
		ID:            b.ID,
		Reference:     b.Reference,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		Topic:         b.Topic,
		StartAt:       b.StartAt,
		Tier:          b.Tier,
		Passcode:      b.Passcode,
		Flags:         b.Flags,
		Recurrence:    b.Recurrence,
		Status:        b.Status,
		Provisioned:   b.Provisioned,
	}
}

func (b *OrderBuilder) BuildView() *queries.OrderView {
	return &queries.OrderView{
		ID:            b.ID,
		Reference:     b.Reference,
		Status:        string(b.Status),
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		StartAt:       b.StartAt,
		Tier:          b.Tier,
		Recurring:     b.Recurrence != nil,
		CreatedAt:     b.StartAt.Add(-48 * time.Hour),
	}
}
