package order

import (
	"errors"
	"time"

	"meetbook/internal/domain/payment"
	"meetbook/internal/domain/recurrence"
)

var ErrInvalidRecurrence = errors.New("invalid recurrence specification")

type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
	StatusExpired Status = "expired"
	StatusFailed  Status = "failed"
)

// Terminal statuses never change again; re-delivered events against
// them are accepted as no-ops.
func (s Status) Terminal() bool {
	return s == StatusPaid || s == StatusExpired || s == StatusFailed
}

// StatusForEvent maps a classified gateway lifecycle status onto the
// order status it targets. The second return is false when the event
// does not move the order (the gateway sent a status we treat as
// informational).
func StatusForEvent(s payment.Status) (Status, bool) {
	switch s {
	case payment.StatusCompleted:
		return StatusPaid, true
	case payment.StatusExpired:
		return StatusExpired, true
	case payment.StatusFailed:
		return StatusFailed, true
	default:
		return StatusPending, false
	}
}

// Flags are the meeting-behavior switches captured at order entry and
// forwarded verbatim to the provisioning request.
type Flags struct {
	RegistrationRequired    bool
	QAEnabled               bool
	InterpretationEnabled   bool
	MuteOnEntry             bool
	RequireUnmutePermission bool
}

// Provisioning is the artifact set returned by the meeting provider.
// It is written at most once, during the pending→paid transition or an
// operator resync, and never overwritten.
type Provisioning struct {
	MeetingUUID string
	MeetingID   int64
	JoinURL     string
	Passcode    string
}

// RecurrenceSpec is the persisted form of an order's repeat settings.
// Weekday numbers use Go's convention (0 = Sunday).
type RecurrenceSpec struct {
	Pattern        string
	Interval       int
	Weekdays       []int
	MonthlyDay     int
	MonthlyWeek    int
	MonthlyWeekday int
	EndDate        *time.Time
	Count          int
	Total          int
}

// Rule converts the stored spec into an expandable recurrence rule.
func (s RecurrenceSpec) Rule() (recurrence.Rule, error) {
	r := recurrence.Rule{
		Pattern:        recurrence.Pattern(s.Pattern),
		Interval:       s.Interval,
		MonthlyDay:     s.MonthlyDay,
		MonthlyWeek:    s.MonthlyWeek,
		MonthlyWeekday: time.Weekday(s.MonthlyWeekday),
		EndDate:        s.EndDate,
		Count:          s.Count,
	}
	if s.Weekdays != nil {
		r.Weekdays = make([]time.Weekday, len(s.Weekdays))
		for i, d := range s.Weekdays {
			if d < 0 || d > 6 {
				return recurrence.Rule{}, ErrInvalidRecurrence
			}
			r.Weekdays[i] = time.Weekday(d)
		}
	}
	return r, nil
}
