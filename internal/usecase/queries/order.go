package queries

import (
	"context"
	"time"

	"meetbook/internal/infra"
	"meetbook/internal/pkg/errs"
	"meetbook/internal/pkg/mask"

	"github.com/google/uuid"
)

var ErrOrderNotFound = errs.New("order not found")

// OrderView is the read model served to the status-polling UI. Contact
// fields are masked before leaving the query layer; provisioning fields
// are only populated once the order is paid.
type OrderView struct {
	ID              uuid.UUID  `json:"id"`
	Reference       string     `json:"reference"`
	Status          string     `json:"status"`
	CustomerName    string     `json:"customer_name"`
	CustomerEmail   string     `json:"customer_email"`
	CustomerPhone   string     `json:"customer_phone"`
	Topic           *string    `json:"topic,omitempty"`
	StartAt         time.Time  `json:"start_at"`
	Tier            int        `json:"tier"`
	Recurring       bool       `json:"recurring"`
	OccurrenceTotal int        `json:"occurrence_total,omitempty"`
	PaymentMethod   *string    `json:"payment_method,omitempty"`
	PaidAt          *time.Time `json:"paid_at,omitempty"`
	ExpiredAt       *time.Time `json:"expired_at,omitempty"`
	JoinURL         *string    `json:"join_url,omitempty"`
	MeetingID       *int64     `json:"meeting_id,omitempty"`
	Passcode        *string    `json:"passcode,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

type OrderReadStore interface {
	FindByReference(ctx context.Context, reference string) (*OrderView, error)
}

type OrderQueries interface {
	GetByReference(ctx context.Context, reference string) (*OrderView, error)
}

type orderQueriesImpl struct {
	store OrderReadStore
}

func NewOrderQueries(store OrderReadStore) OrderQueries {
	return &orderQueriesImpl{store: store}
}

func (q *orderQueriesImpl) GetByReference(ctx context.Context, reference string) (*OrderView, error) {
	view, err := q.store.FindByReference(ctx, reference)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	view.CustomerEmail = mask.Email(view.CustomerEmail)
	view.CustomerPhone = mask.Phone(view.CustomerPhone)
	return view, nil
}
