package meetings

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"meetbook/internal/pkg/config"
	"meetbook/internal/pkg/errs"
)

// Client talks to the meeting-provisioning API: a login endpoint that
// exchanges service credentials for a bearer token, and a meeting
// endpoint that materializes scheduled meetings.
type Client struct {
	baseURL  string
	email    string
	password string
	http     *http.Client
}

func NewClient(cfg config.ProviderConfig) *Client {
	return &Client{
		baseURL:  cfg.BaseURL,
		email:    cfg.Email,
		password: cfg.Password,
		http:     &http.Client{Timeout: cfg.Timeout},
	}
}

// Provider meeting type codes.
const (
	meetingTypeScheduled = 2
	meetingTypeRecurring = 8
)

// Provider recurrence pattern codes.
const (
	recurrenceDaily   = 1
	recurrenceWeekly  = 2
	recurrenceMonthly = 3
)

type MeetingRecurrence struct {
	Type           int    `json:"type"`
	RepeatInterval int    `json:"repeat_interval"`
	WeeklyDays     string `json:"weekly_days,omitempty"`
	MonthlyDay     int    `json:"monthly_day,omitempty"`
	MonthlyWeek    int    `json:"monthly_week,omitempty"`
	MonthlyWeekDay int    `json:"monthly_week_day,omitempty"`
	EndTimes       int    `json:"end_times,omitempty"`
	EndDateTime    string `json:"end_date_time,omitempty"`
}

type MeetingSettings struct {
	ApprovalType              int  `json:"approval_type"`
	QA                        bool `json:"question_and_answer"`
	LanguageInterpretation    bool `json:"language_interpretation"`
	MuteUponEntry             bool `json:"mute_upon_entry"`
	RequestPermissionToUnmute bool `json:"request_permission_to_unmute_participants"`
}

type MeetingRequest struct {
	PlanID     string             `json:"plan_id"`
	Topic      string             `json:"topic"`
	Type       int                `json:"type"`
	StartTime  string             `json:"start_time"`
	Password   string             `json:"password"`
	Recurrence *MeetingRecurrence `json:"recurrence,omitempty"`
	Settings   MeetingSettings    `json:"settings"`
}

type MeetingResult struct {
	UUID     string `json:"uuid"`
	ID       int64  `json:"id"`
	JoinURL  string `json:"join_url"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (c *Client) Login(ctx context.Context) (string, error) {
	body, err := json.Marshal(loginRequest{Email: c.email, Password: c.password})
	if err != nil {
		return "", errs.Wrap(err, "failed to encode login request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/login", bytes.NewReader(body))
	if err != nil {
		return "", errs.Wrap(err, "failed to build login request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", errs.Wrap(err, "login request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", errs.New(fmt.Sprintf("login rejected: status=%d body=%s", resp.StatusCode, raw))
	}

	var out loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", errs.Wrap(err, "failed to decode login response")
	}
	if out.Token == "" {
		return "", errs.New("login response missing token")
	}
	return out.Token, nil
}

func (c *Client) CreateMeeting(ctx context.Context, token string, meeting *MeetingRequest) (*MeetingResult, error) {
	body, err := json.Marshal(meeting)
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode meeting request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v2/meetings", bytes.NewReader(body))
	if err != nil {
		return nil, errs.Wrap(err, "failed to build meeting request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "meeting request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		// The raw status and body are kept for diagnostics; callers
		// translate this into a degraded, not fatal, outcome.
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, errs.New(fmt.Sprintf("meeting creation rejected: status=%d body=%s", resp.StatusCode, raw))
	}

	var out MeetingResult
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, errs.Wrap(err, "failed to decode meeting response")
	}
	if out.UUID == "" || out.JoinURL == "" {
		return nil, errs.New("meeting response missing identifier or join url")
	}
	return &out, nil
}
