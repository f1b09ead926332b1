package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"meetbook/internal/usecase/queries"
)

type OrderResponse struct {
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

func NewOrderResponse(view *queries.OrderView) (*OrderResponse, error) {
	resp := &OrderResponse{}
	if err := copier.Copy(resp, view); err != nil {
		return nil, err
	}
	return resp, nil
}
