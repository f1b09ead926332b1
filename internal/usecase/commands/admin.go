package commands

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"time"

	"meetbook/internal/domain/order"
	"meetbook/internal/infra"
	"meetbook/internal/pkg/config"
	"meetbook/internal/pkg/errs"
	"meetbook/internal/pkg/jwt"
	"meetbook/internal/pkg/password"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrResyncNotNeeded    = errs.New("order does not need a resync")
)

type ResyncResult struct {
	Reference    string
	Provisioning order.Provisioning
}

type AdminCommands interface {
	Login(ctx context.Context, email, pass string) (string, error)
	// Resync re-attempts provisioning for an order stuck in the
	// "paid, no meeting" degraded state. Unlike the webhook path,
	// provider failures are surfaced to the operator.
	Resync(ctx context.Context, reference string) (*ResyncResult, error)
}

type adminUseCaseImpl struct {
	orders    OrderRepository
	scheduler MeetingScheduler
	jwtSvc    *jwt.Service
	admin     config.AdminConfig
}

func NewAdminCommands(
	orders OrderRepository,
	scheduler MeetingScheduler,
	jwtSvc *jwt.Service,
	cfg config.Config,
) AdminCommands {
	return &adminUseCaseImpl{
		orders:    orders,
		scheduler: scheduler,
		jwtSvc:    jwtSvc,
		admin:     cfg.Admin,
	}
}

func (a *adminUseCaseImpl) Login(_ context.Context, email, pass string) (string, error) {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(a.admin.Email)) == 1
	if err := password.ComparePassword(a.admin.PasswordHash, pass); err != nil || !emailOK {
		return "", ErrInvalidCredentials
	}

	token, err := a.jwtSvc.GenerateToken(email, jwt.RoleOperator)
	if err != nil {
		return "", errs.Wrap(err, "failed to issue operator token")
	}
	return token, nil
}

func (a *adminUseCaseImpl) Resync(ctx context.Context, reference string) (*ResyncResult, error) {
	snap, err := a.orders.FindSnapshotByReference(ctx, reference)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if snap.Status != order.StatusPaid || snap.Provisioned {
		return nil, ErrResyncNotNeeded
	}

	occurrences, err := expandOccurrences(*snap)
	if err != nil {
		return nil, err
	}

	provisioning, err := a.scheduler.Schedule(ctx, *snap, occurrences)
	if err != nil {
		return nil, err
	}

	attached, err := a.orders.AttachProvisioning(ctx, reference, *provisioning)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !attached {
		// Another resync raced this one and already wrote artifacts.
		slog.Warn("resync raced a concurrent provisioning write", "reference", reference)
		return nil, ErrResyncNotNeeded
	}

	return &ResyncResult{Reference: reference, Provisioning: *provisioning}, nil
}

func expandOccurrences(snap OrderSnapshot) ([]time.Time, error) {
	if snap.Recurrence == nil {
		return nil, nil
	}
	rule, err := snap.Recurrence.Rule()
	if err != nil {
		return nil, err
	}
	return rule.Expand(snap.StartAt)
}
