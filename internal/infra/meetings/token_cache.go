package meetings

import (
	"context"
	"log/slog"
	"time"

	"meetbook/internal/infra"
	"meetbook/internal/infra/repository"
	"meetbook/internal/pkg/clock"
	"meetbook/internal/pkg/config"
	"meetbook/internal/pkg/errs"
	"meetbook/internal/usecase/commands"
)

type CredentialStore interface {
	FindCurrent(ctx context.Context, now time.Time) (*repository.Credential, error)
	Insert(ctx context.Context, token string, expiresAt time.Time) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type LoginClient interface {
	Login(ctx context.Context) (string, error)
}

// TokenCache keeps the provider bearer token in storage so horizontally
// scaled webhook handlers and restarts share one credential. Two
// concurrent misses may both log in and insert; that is wasteful but
// harmless, so no mutual exclusion is attempted.
type TokenCache struct {
	store      CredentialStore
	client     LoginClient
	ttl        time.Duration
	clock      clock.Clock
	configured bool
}

func NewTokenCache(store CredentialStore, client LoginClient, cfg config.ProviderConfig, clk clock.Clock) *TokenCache {
	return &TokenCache{
		store:      store,
		client:     client,
		ttl:        cfg.TokenTTL,
		clock:      clk,
		configured: cfg.Email != "" && cfg.Password != "",
	}
}

func (t *TokenCache) Token(ctx context.Context) (string, error) {
	now := t.clock.Now()

	cred, err := t.store.FindCurrent(ctx, now)
	if err == nil {
		return cred.Token, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		// Storage trouble reads as a cache miss; login below decides
		// whether the request can still proceed.
		slog.Warn("credential lookup failed, attempting fresh login", "error", err.Error())
	}

	if !t.configured {
		return "", errs.Mark(errs.New("provider service credentials not configured"), commands.ErrProviderAuth)
	}

	token, err := t.client.Login(ctx)
	if err != nil {
		return "", errs.Mark(err, commands.ErrProviderAuth)
	}

	if err := t.store.Insert(ctx, token, now.Add(t.ttl)); err != nil {
		// A failed cache write costs one extra login later, nothing more.
		slog.Warn("failed to cache provider credential", "error", err.Error())
	}

	go t.cleanupExpired()

	return token, nil
}

// cleanupExpired is opportunistic: it must neither block the caller nor
// fail the request.
func (t *TokenCache) cleanupExpired() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	deleted, err := t.store.DeleteExpired(ctx, t.clock.Now())
	if err != nil {
		slog.Warn("expired credential cleanup failed", "error", err.Error())
		return
	}
	if deleted > 0 {
		slog.Debug("deleted expired provider credentials", "count", deleted)
	}
}
