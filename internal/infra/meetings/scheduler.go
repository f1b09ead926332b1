package meetings

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
	"time"

	"meetbook/internal/domain/order"
	"meetbook/internal/domain/recurrence"
	"meetbook/internal/pkg/errs"
	"meetbook/internal/usecase/commands"
)

// planByTier maps an order's participant-capacity tier onto the
// provider plan the meeting is created under. Tiers are fixed by the
// product catalog; an unknown tier is a hard validation error caught
// before any provider call.
var planByTier = map[int]string{
	100:  "plan_basic_100",
	300:  "plan_pro_300",
	500:  "plan_business_500",
	1000: "plan_enterprise_1000",
}

type MeetingClient interface {
	CreateMeeting(ctx context.Context, token string, meeting *MeetingRequest) (*MeetingResult, error)
}

type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Scheduler implements the provisioning port of the fulfillment state
// machine on top of the provider client and the credential cache.
type Scheduler struct {
	tokens TokenSource
	client MeetingClient
}

func NewScheduler(tokens TokenSource, client MeetingClient) *Scheduler {
	return &Scheduler{tokens: tokens, client: client}
}

func (s *Scheduler) Schedule(ctx context.Context, ord commands.OrderSnapshot, occurrences []time.Time) (*order.Provisioning, error) {
	plan, ok := planByTier[ord.Tier]
	if !ok {
		return nil, errs.Mark(
			errs.New(fmt.Sprintf("no provider plan for capacity tier %d", ord.Tier)),
			commands.ErrProvisionFailed,
		)
	}

	token, err := s.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	req := &MeetingRequest{
		PlanID:    plan,
		Topic:     topicFor(ord),
		Type:      meetingTypeScheduled,
		StartTime: ord.StartAt.Format(time.RFC3339),
		Password:  passcodeFor(ord),
		Settings: MeetingSettings{
			ApprovalType:              approvalTypeFor(ord.Flags),
			QA:                        ord.Flags.QAEnabled,
			LanguageInterpretation:    ord.Flags.InterpretationEnabled,
			MuteUponEntry:             ord.Flags.MuteOnEntry,
			RequestPermissionToUnmute: ord.Flags.RequireUnmutePermission,
		},
	}
	if ord.Recurrence != nil {
		req.Type = meetingTypeRecurring
		req.Recurrence = translateRecurrence(*ord.Recurrence, occurrences)
	}

	result, err := s.client.CreateMeeting(ctx, token, req)
	if err != nil {
		return nil, errs.Mark(err, commands.ErrProvisionFailed)
	}

	return &order.Provisioning{
		MeetingUUID: result.UUID,
		MeetingID:   result.ID,
		JoinURL:     result.JoinURL,
		Passcode:    result.Password,
	}, nil
}

func topicFor(ord commands.OrderSnapshot) string {
	if ord.Topic != nil && strings.TrimSpace(*ord.Topic) != "" {
		return strings.TrimSpace(*ord.Topic)
	}
	return fmt.Sprintf("Meeting for %s", ord.CustomerName)
}

func passcodeFor(ord commands.OrderSnapshot) string {
	if ord.Passcode != nil && *ord.Passcode != "" {
		return *ord.Passcode
	}
	return generatePasscode()
}

// generatePasscode synthesizes a 6-digit numeric access code.
func generatePasscode() string {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Degenerate fallback; crypto/rand failing means far bigger problems.
		return "000000"
	}
	n := binary.BigEndian.Uint64(buf[:]) % 1000000
	return fmt.Sprintf("%06d", n)
}

func approvalTypeFor(flags order.Flags) int {
	// Provider vocabulary: 0 = registration with auto-approval,
	// 2 = no registration required.
	if flags.RegistrationRequired {
		return 0
	}
	return 2
}

// translateRecurrence converts the stored rule into the provider's
// recurrence vocabulary. Provider weekday numbers are 1-based starting
// on Sunday, so Go's 0-based weekdays shift by one.
func translateRecurrence(spec order.RecurrenceSpec, occurrences []time.Time) *MeetingRecurrence {
	rec := &MeetingRecurrence{
		RepeatInterval: spec.Interval,
	}

	switch recurrence.Pattern(spec.Pattern) {
	case recurrence.PatternDaily:
		rec.Type = recurrenceDaily
	case recurrence.PatternWeekly:
		rec.Type = recurrenceWeekly
		if len(spec.Weekdays) > 0 {
			days := make([]string, len(spec.Weekdays))
			for i, d := range spec.Weekdays {
				days[i] = strconv.Itoa(d + 1)
			}
			rec.WeeklyDays = strings.Join(days, ",")
		}
	case recurrence.PatternMonthly:
		rec.Type = recurrenceMonthly
		if spec.MonthlyDay != 0 {
			rec.MonthlyDay = spec.MonthlyDay
		} else {
			rec.MonthlyWeek = spec.MonthlyWeek
			rec.MonthlyWeekDay = spec.MonthlyWeekday + 1
		}
	}

	switch {
	case spec.Count != 0:
		rec.EndTimes = spec.Count
	case spec.EndDate != nil:
		rec.EndDateTime = spec.EndDate.Format(time.RFC3339)
	case len(occurrences) > 0:
		rec.EndTimes = len(occurrences)
	}

	return rec
}
