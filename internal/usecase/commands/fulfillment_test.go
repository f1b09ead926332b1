//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"meetbook/internal/domain/order"
	"meetbook/internal/domain/payment"
	"meetbook/internal/infra"
	"meetbook/internal/pkg/clock"
	"meetbook/internal/pkg/errs"
	"meetbook/internal/usecase/commands"
	"meetbook/tests/common/builder"
	commandsmock "meetbook/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fulfillmentFixture struct {
	orders    *commandsmock.MockOrderRepository
	scheduler *commandsmock.MockMeetingScheduler
	notifier  *commandsmock.MockAccountingNotifier
	clock     *clock.MockClock
	uc        commands.FulfillmentCommands
}

func newFulfillmentFixture(t *testing.T) *fulfillmentFixture {
	ctrl := gomock.NewController(t)
	f := &fulfillmentFixture{
		orders:    commandsmock.NewMockOrderRepository(ctrl),
		scheduler: commandsmock.NewMockMeetingScheduler(ctrl),
		notifier:  commandsmock.NewMockAccountingNotifier(ctrl),
		clock:     clock.NewMockClock(time.Date(2025, 1, 2, 12, 0, 0, 0, time.UTC)),
	}
	f.uc = commands.NewFulfillmentCommands(f.orders, f.scheduler, f.notifier, f.clock)
	return f
}

func marshal(t *testing.T, payload map[string]any) []byte {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	return raw
}

func TestProcessEvent_CompletedProvisionsAndMarksPaid(t *testing.T) {
	f := newFulfillmentFixture(t)
	snap := builder.NewOrderBuilder().BuildSnapshot()
	prov := &order.Provisioning{MeetingUUID: "uuid-1", MeetingID: 123, JoinURL: "https://meet.example.com/j/123", Passcode: "482913"}

	f.orders.EXPECT().FindSnapshotByReference(gomock.Any(), snap.Reference).Return(snap, nil)
	f.scheduler.EXPECT().Schedule(gomock.Any(), *snap, gomock.Nil()).Return(prov, nil)
	f.orders.EXPECT().MarkPaid(gomock.Any(), snap.Reference, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, upd commands.PaidUpdate) (bool, error) {
			assert.Equal(t, prov, upd.Provisioning)
			return true, nil
		})
	f.notifier.EXPECT().NotifyPaid(snap.Reference)

	raw := marshal(t, builder.NewWebhookBuilder().BuildSessionEnvelope())
	result, err := f.uc.ProcessEvent(context.Background(), raw)

	require.NoError(t, err)
	assert.Equal(t, commands.OutcomePaid, result.Outcome)
	assert.False(t, result.Degraded)
}

func TestProcessEvent_ProvisionFailureDegradesButStillPays(t *testing.T) {
	f := newFulfillmentFixture(t)
	snap := builder.NewOrderBuilder().BuildSnapshot()

	f.orders.EXPECT().FindSnapshotByReference(gomock.Any(), snap.Reference).Return(snap, nil)
	f.scheduler.EXPECT().Schedule(gomock.Any(), *snap, gomock.Nil()).
		Return(nil, commands.ErrProvisionFailed)
	f.orders.EXPECT().MarkPaid(gomock.Any(), snap.Reference, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, upd commands.PaidUpdate) (bool, error) {
			assert.Nil(t, upd.Provisioning)
			return true, nil
		})
	f.notifier.EXPECT().NotifyPaid(snap.Reference)

	raw := marshal(t, builder.NewWebhookBuilder().BuildSessionEnvelope())
	result, err := f.uc.ProcessEvent(context.Background(), raw)

	require.NoError(t, err)
	assert.Equal(t, commands.OutcomePaid, result.Outcome)
	assert.True(t, result.Degraded)
}

func TestProcessEvent_RedeliveryAfterPaidIsNoOp(t *testing.T) {
	f := newFulfillmentFixture(t)
	snap := builder.NewOrderBuilder().Paid().BuildSnapshot()

	f.orders.EXPECT().FindSnapshotByReference(gomock.Any(), snap.Reference).Return(snap, nil)

	raw := marshal(t, builder.NewWebhookBuilder().BuildSessionEnvelope())
	result, err := f.uc.ProcessEvent(context.Background(), raw)

	require.NoError(t, err)
	assert.Equal(t, commands.OutcomeNoOp, result.Outcome)
}

func TestProcessEvent_ExpiryAfterPaidDoesNotRegress(t *testing.T) {
	f := newFulfillmentFixture(t)
	snap := builder.NewOrderBuilder().Paid().BuildSnapshot()

	f.orders.EXPECT().FindSnapshotByReference(gomock.Any(), snap.Reference).Return(snap, nil)

	payload := builder.NewWebhookBuilder().With(func(b *builder.WebhookBuilder) {
		b.Event = "payment_session.expired"
		b.Status = "EXPIRED"
	}).BuildSessionEnvelope()
	result, err := f.uc.ProcessEvent(context.Background(), marshal(t, payload))

	require.NoError(t, err)
	assert.Equal(t, commands.OutcomeNoOp, result.Outcome)
}

func TestProcessEvent_LostCASRaceSkipsNotification(t *testing.T) {
	f := newFulfillmentFixture(t)
	snap := builder.NewOrderBuilder().BuildSnapshot()

	f.orders.EXPECT().FindSnapshotByReference(gomock.Any(), snap.Reference).Return(snap, nil)
	f.scheduler.EXPECT().Schedule(gomock.Any(), *snap, gomock.Nil()).
		Return(&order.Provisioning{MeetingUUID: "uuid-1"}, nil)
	f.orders.EXPECT().MarkPaid(gomock.Any(), snap.Reference, gomock.Any()).Return(false, nil)

	raw := marshal(t, builder.NewWebhookBuilder().BuildSessionEnvelope())
	result, err := f.uc.ProcessEvent(context.Background(), raw)

	require.NoError(t, err)
	assert.Equal(t, commands.OutcomeNoOp, result.Outcome)
}

func TestProcessEvent_ExpiredMarksOrderExpired(t *testing.T) {
	f := newFulfillmentFixture(t)
	snap := builder.NewOrderBuilder().BuildSnapshot()

	f.orders.EXPECT().FindSnapshotByReference(gomock.Any(), snap.Reference).Return(snap, nil)
	f.orders.EXPECT().MarkExpired(gomock.Any(), snap.Reference, f.clock.Now()).Return(true, nil)

	payload := builder.NewWebhookBuilder().With(func(b *builder.WebhookBuilder) {
		b.Event = "payment_request.expiry"
	}).BuildSessionEnvelope()
	result, err := f.uc.ProcessEvent(context.Background(), marshal(t, payload))

	require.NoError(t, err)
	assert.Equal(t, commands.OutcomeExpired, result.Outcome)
}

func TestProcessEvent_LegacyPaidInvoice(t *testing.T) {
	f := newFulfillmentFixture(t)
	snap := builder.NewOrderBuilder().BuildSnapshot()

	f.orders.EXPECT().FindSnapshotByReference(gomock.Any(), snap.Reference).Return(snap, nil)
	f.scheduler.EXPECT().Schedule(gomock.Any(), *snap, gomock.Nil()).
		Return(&order.Provisioning{MeetingUUID: "uuid-1"}, nil)
	f.orders.EXPECT().MarkPaid(gomock.Any(), snap.Reference, gomock.Any()).Return(true, nil)
	f.notifier.EXPECT().NotifyPaid(snap.Reference)

	payload := builder.NewWebhookBuilder().With(func(b *builder.WebhookBuilder) {
		b.Status = "PAID"
	}).BuildLegacyInvoice()
	result, err := f.uc.ProcessEvent(context.Background(), marshal(t, payload))

	require.NoError(t, err)
	assert.Equal(t, commands.OutcomePaid, result.Outcome)
}

func TestProcessEvent_CaptureUpdatesMethodOnly(t *testing.T) {
	f := newFulfillmentFixture(t)

	f.orders.EXPECT().SetPaymentMethod(gomock.Any(), "ORD-0001", "CARD - BCA").Return(true, nil)

	payload := builder.NewWebhookBuilder().BuildCapture("CARD", "BCA")
	result, err := f.uc.ProcessEvent(context.Background(), marshal(t, payload))

	require.NoError(t, err)
	assert.Equal(t, commands.OutcomeMethodUpdated, result.Outcome)
}

func TestProcessEvent_CaptureForUnknownOrderIsDropped(t *testing.T) {
	f := newFulfillmentFixture(t)

	f.orders.EXPECT().SetPaymentMethod(gomock.Any(), "ORD-0001", "CARD - BCA").
		Return(false, infra.WrapRepoErr("order not found", errors.New("no rows"), infra.KindNotFound))

	payload := builder.NewWebhookBuilder().BuildCapture("CARD", "BCA")
	result, err := f.uc.ProcessEvent(context.Background(), marshal(t, payload))

	require.NoError(t, err)
	assert.Equal(t, commands.OutcomeNoOp, result.Outcome)
}

func TestProcessEvent_UnknownReferenceIsAcknowledged(t *testing.T) {
	f := newFulfillmentFixture(t)

	f.orders.EXPECT().FindSnapshotByReference(gomock.Any(), "ORD-0001").
		Return(nil, infra.WrapRepoErr("order not found", errors.New("no rows"), infra.KindNotFound))

	raw := marshal(t, builder.NewWebhookBuilder().BuildSessionEnvelope())
	result, err := f.uc.ProcessEvent(context.Background(), raw)

	require.NoError(t, err)
	assert.Equal(t, commands.OutcomeNoOp, result.Outcome)
}

func TestProcessEvent_StorageFailureSurfaces(t *testing.T) {
	f := newFulfillmentFixture(t)

	f.orders.EXPECT().FindSnapshotByReference(gomock.Any(), "ORD-0001").
		Return(nil, infra.WrapRepoErr("query failed", errors.New("conn refused")))

	raw := marshal(t, builder.NewWebhookBuilder().BuildSessionEnvelope())
	_, err := f.uc.ProcessEvent(context.Background(), raw)

	require.Error(t, err)
	assert.True(t, errs.Is(err, commands.ErrDatabaseOperationFailed))
}

func TestProcessEvent_UnroutablePayloadRejected(t *testing.T) {
	f := newFulfillmentFixture(t)

	_, err := f.uc.ProcessEvent(context.Background(), []byte(`{"hello":"world"}`))

	assert.ErrorIs(t, err, payment.ErrUnroutable)
}

func TestProcessEvent_UnknownLifecycleVerbIsNoOp(t *testing.T) {
	f := newFulfillmentFixture(t)
	snap := builder.NewOrderBuilder().BuildSnapshot()

	f.orders.EXPECT().FindSnapshotByReference(gomock.Any(), snap.Reference).Return(snap, nil)

	payload := builder.NewWebhookBuilder().With(func(b *builder.WebhookBuilder) {
		b.Event = "payment_session.awaiting_capture"
	}).BuildSessionEnvelope()
	result, err := f.uc.ProcessEvent(context.Background(), marshal(t, payload))

	require.NoError(t, err)
	assert.Equal(t, commands.OutcomeNoOp, result.Outcome)
}

func TestProcessEvent_RecurringOrderExpandsOccurrences(t *testing.T) {
	f := newFulfillmentFixture(t)
	snap := builder.NewOrderBuilder().WeeklyRecurring(5, 1, 3).BuildSnapshot()

	f.orders.EXPECT().FindSnapshotByReference(gomock.Any(), snap.Reference).Return(snap, nil)
	f.scheduler.EXPECT().Schedule(gomock.Any(), *snap, gomock.Len(5)).
		Return(&order.Provisioning{MeetingUUID: "uuid-1"}, nil)
	f.orders.EXPECT().MarkPaid(gomock.Any(), snap.Reference, gomock.Any()).Return(true, nil)
	f.notifier.EXPECT().NotifyPaid(snap.Reference)

	raw := marshal(t, builder.NewWebhookBuilder().BuildSessionEnvelope())
	result, err := f.uc.ProcessEvent(context.Background(), raw)

	require.NoError(t, err)
	assert.Equal(t, commands.OutcomePaid, result.Outcome)
}
