package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"meetbook/internal/pkg/config"
)

// AccountingNotifier pings the accounting-sync endpoint after an order
// is marked paid. The trigger is fire-and-forget: it never blocks the
// webhook response and its failure is only logged.
type AccountingNotifier struct {
	url     string
	timeout time.Duration
	client  *http.Client
}

func NewAccountingNotifier(cfg config.NotifierConfig) *AccountingNotifier {
	return &AccountingNotifier{
		url:     cfg.AccountingURL,
		timeout: cfg.Timeout,
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

func (n *AccountingNotifier) NotifyPaid(reference string) {
	if n.url == "" {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
		defer cancel()

		body, err := json.Marshal(map[string]string{"reference": reference})
		if err != nil {
			slog.Error("accounting notify encode failed", "reference", reference, "error", err.Error())
			return
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
		if err != nil {
			slog.Error("accounting notify request build failed", "reference", reference, "error", err.Error())
			return
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := n.client.Do(req)
		if err != nil {
			slog.Warn("accounting notify failed", "reference", reference, "error", err.Error())
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 300 {
			slog.Warn("accounting notify rejected", "reference", reference, "status", resp.StatusCode)
		}
	}()
}
