package order_test

import (
	"testing"
	"time"

	"github.com/vudinhquy04/NovaTechApp/internal/core/domain/model/kernel"
	"github.com/vudinhquy04/NovaTechApp/internal/core/domain/model/order"
	"github.com/vudinhquy04/NovaTechApp/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, name string, quantity int, price int64) order.Item {
	t.Helper()
	item, err := order.NewItem(name, "", quantity, kernel.NewMoneyFromInt(price))
	require.NoError(t, err)
	return item
}

func mustReceiver(t *testing.T) order.Receiver {
	t.Helper()
	receiver, err := order.NewReceiver("Quy Vu", "0901234567", "12 Nguyen Trai, Ha Noi")
	require.NoError(t, err)
	return receiver
}

func mustPayment(t *testing.T, isPaid bool) order.PaymentInfo {
	t.Helper()
	payment, err := order.NewPaymentInfo("VISA", "**** 4242", isPaid)
	require.NoError(t, err)
	return payment
}

func newTestOrder(t *testing.T, now time.Time) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		"NT-20260829-1A2B3C4D",
		mustReceiver(t),
		[]order.Item{
			mustItem(t, "LED desk lamp", 2, 100),
			mustItem(t, "Smart bulb", 1, 50),
		},
		kernel.NewMoneyFromInt(10),
		kernel.NewMoneyFromInt(5),
		mustPayment(t, false),
		now,
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

	t.Run("should create valid order and compute settlement", func(t *testing.T) {
		// items [{price:100, quantity:2}, {price:50, quantity:1}],
		// shipping 10, discount 5 => subTotal 250, total 255
		o := newTestOrder(t, now)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.Placed, o.Status())
		assert.Equal(t, "250", o.Settlement().SubTotal().String())
		assert.Equal(t, "255", o.Settlement().Total().String())
		assert.Equal(t, 1, o.Version())
		assert.Nil(t, o.PaidAt())
		assert.Nil(t, o.Cancellation())

		history := o.History()
		require.Len(t, history, 1)
		assert.Equal(t, order.Placed, history[0].Status())
		assert.Equal(t, order.PlacedLabel, history[0].Label())
		assert.Equal(t, now, history[0].Timestamp())
	})

	t.Run("should stamp paidAt when payment is captured", func(t *testing.T) {
		o, err := order.NewOrder(
			kernel.NewUUID(),
			kernel.NewUUID(),
			"NT-20260829-AA11BB22",
			mustReceiver(t),
			[]order.Item{mustItem(t, "LED desk lamp", 1, 100)},
			kernel.ZeroMoney(),
			kernel.ZeroMoney(),
			mustPayment(t, true),
			now,
		)

		require.NoError(t, err)
		require.NotNil(t, o.PaidAt())
		assert.Equal(t, now, *o.PaidAt())
	})

	t.Run("should fail with empty items", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(),
			kernel.NewUUID(),
			"NT-20260829-AA11BB22",
			mustReceiver(t),
			nil,
			kernel.ZeroMoney(),
			kernel.ZeroMoney(),
			mustPayment(t, false),
			now,
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail when discount drives total negative", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(),
			kernel.NewUUID(),
			"NT-20260829-AA11BB22",
			mustReceiver(t),
			[]order.Item{mustItem(t, "Smart bulb", 1, 50)},
			kernel.ZeroMoney(),
			kernel.NewMoneyFromInt(60),
			mustPayment(t, false),
			now,
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail with invalid owner", func(t *testing.T) {
		var noOwner kernel.UUID

		_, err := order.NewOrder(
			kernel.NewUUID(),
			noOwner,
			"NT-20260829-AA11BB22",
			mustReceiver(t),
			[]order.Item{mustItem(t, "Smart bulb", 1, 50)},
			kernel.ZeroMoney(),
			kernel.ZeroMoney(),
			mustPayment(t, false),
			now,
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("should fail without code", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(),
			kernel.NewUUID(),
			"",
			mustReceiver(t),
			[]order.Item{mustItem(t, "Smart bulb", 1, 50)},
			kernel.ZeroMoney(),
			kernel.ZeroMoney(),
			mustPayment(t, false),
			now,
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNewItem(t *testing.T) {
	t.Run("should reject non-positive quantity", func(t *testing.T) {
		_, err := order.NewItem("Smart bulb", "", 0, kernel.NewMoneyFromInt(50))
		require.Error(t, err)

		_, err = order.NewItem("Smart bulb", "", -1, kernel.NewMoneyFromInt(50))
		require.Error(t, err)
	})

	t.Run("should reject negative price", func(t *testing.T) {
		_, err := order.NewItem("Smart bulb", "", 1, kernel.NewMoneyFromInt(-1))
		require.Error(t, err)
	})

	t.Run("should allow free items", func(t *testing.T) {
		item, err := order.NewItem("Gift card", "", 3, kernel.ZeroMoney())
		require.NoError(t, err)
		assert.Equal(t, "0", item.Subtotal().String())
	})
}

func TestOrder_Advance(t *testing.T) {
	start := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

	t.Run("sequential fulfilment appends one entry per step", func(t *testing.T) {
		o := newTestOrder(t, start)

		steps := []struct {
			target order.Status
			label  string
		}{
			{order.Preparing, "order confirmed"},
			{order.Shipping, "handed to carrier"},
			{order.Delivered, "delivered to receiver"},
		}

		for i, step := range steps {
			at := start.Add(time.Duration(i+1) * time.Hour)
			changed, err := o.Advance(step.target, step.label, "", at)

			require.NoError(t, err)
			assert.True(t, changed)
			assert.Equal(t, step.target, o.Status())
			assert.Equal(t, at, o.UpdatedAt())
		}

		history := o.History()
		require.Len(t, history, 4)
		assert.Equal(t, order.Placed, history[0].Status())
		assert.Equal(t, order.Delivered, history[3].Status())
		for i := 1; i < len(history); i++ {
			assert.False(t, history[i].Timestamp().Before(history[i-1].Timestamp()))
		}
	})

	t.Run("same-status advance is an idempotent no-op", func(t *testing.T) {
		o := newTestOrder(t, start)

		changed, err := o.Advance(order.Placed, "order placed", "", start.Add(time.Hour))

		require.NoError(t, err)
		assert.False(t, changed)
		assert.Len(t, o.History(), 1)
		assert.Equal(t, start, o.UpdatedAt())
	})

	t.Run("skipping a status fails with InvalidTransitionError", func(t *testing.T) {
		o := newTestOrder(t, start)

		changed, err := o.Advance(order.Delivered, "delivered", "", start.Add(time.Hour))

		require.Error(t, err)
		assert.False(t, changed)
		assert.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.Placed, o.Status())
		assert.Len(t, o.History(), 1)
	})

	t.Run("terminal order rejects any advance", func(t *testing.T) {
		o := newTestOrder(t, start)
		_, err := o.Advance(order.Preparing, "order confirmed", "", start.Add(time.Hour))
		require.NoError(t, err)
		require.NoError(t, o.Cancel(order.ChangedMind, nil, start.Add(2*time.Hour)))

		changed, err := o.Advance(order.Shipping, "handed to carrier", "", start.Add(3*time.Hour))

		require.Error(t, err)
		assert.False(t, changed)
		assert.ErrorIs(t, err, order.ErrOrderAlreadyTerminal)
	})

	t.Run("unconstructed order fails validation", func(t *testing.T) {
		var o order.Order

		_, err := o.Advance(order.Preparing, "order confirmed", "", start)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_Cancel(t *testing.T) {
	start := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

	t.Run("cancels a shipping order with reason and notes", func(t *testing.T) {
		o := newTestOrder(t, start)
		_, err := o.Advance(order.Preparing, "order confirmed", "", start.Add(time.Hour))
		require.NoError(t, err)
		_, err = o.Advance(order.Shipping, "handed to carrier", "", start.Add(2*time.Hour))
		require.NoError(t, err)

		notes := "carrier estimated three more weeks"
		cancelledAt := start.Add(3 * time.Hour)
		require.NoError(t, o.Cancel(order.LongDelivery, &notes, cancelledAt))

		assert.Equal(t, order.Cancelled, o.Status())
		require.NotNil(t, o.Cancellation())
		assert.Equal(t, order.LongDelivery, o.Cancellation().Reason())
		require.NotNil(t, o.Cancellation().Notes())
		assert.Equal(t, notes, *o.Cancellation().Notes())
		assert.Equal(t, cancelledAt, o.Cancellation().CancelledAt())

		history := o.History()
		require.Len(t, history, 4)
		assert.Equal(t, order.Cancelled, history[3].Status())
		assert.Equal(t, order.CancelledLabel, history[3].Label())
		assert.Equal(t, "LONG_DELIVERY", history[3].Description())
	})

	t.Run("second cancellation fails with ErrOrderAlreadyTerminal", func(t *testing.T) {
		o := newTestOrder(t, start)
		require.NoError(t, o.Cancel(order.ChangedMind, nil, start.Add(time.Hour)))

		err := o.Cancel(order.OtherReason, nil, start.Add(2*time.Hour))

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrOrderAlreadyTerminal)
		assert.Len(t, o.History(), 2)
		assert.Equal(t, order.ChangedMind, o.Cancellation().Reason())
	})

	t.Run("delivered order cannot be cancelled", func(t *testing.T) {
		o := newTestOrder(t, start)
		for i, target := range []order.Status{order.Preparing, order.Shipping, order.Delivered} {
			_, err := o.Advance(target, target.String(), "", start.Add(time.Duration(i+1)*time.Hour))
			require.NoError(t, err)
		}

		err := o.Cancel(order.ChangedMind, nil, start.Add(4*time.Hour))

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrOrderAlreadyTerminal)
		assert.Nil(t, o.Cancellation())
	})

	t.Run("reason is mandatory", func(t *testing.T) {
		o := newTestOrder(t, start)

		err := o.Cancel(order.ReasonUnknown, nil, start.Add(time.Hour))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.Placed, o.Status())
	})
}

func TestRestoreOrder(t *testing.T) {
	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

	validRestore := func(t *testing.T, mutate func(*restoreArgs)) (*order.Order, error) {
		t.Helper()

		items := []order.Item{mustItem(t, "LED desk lamp", 2, 100)}
		settlement, err := order.RestoreSettlement(
			kernel.NewMoneyFromInt(200),
			kernel.NewMoneyFromInt(10),
			kernel.NewMoneyFromInt(5),
			kernel.NewMoneyFromInt(205),
		)
		require.NoError(t, err)

		placed, err := order.NewHistoryEntry(order.Placed, order.PlacedLabel, "", now)
		require.NoError(t, err)

		args := &restoreArgs{
			id:         kernel.NewUUID(),
			ownerID:    kernel.NewUUID(),
			code:       "NT-20260829-1A2B3C4D",
			receiver:   mustReceiver(t),
			items:      items,
			settlement: settlement,
			payment:    mustPayment(t, false),
			status:     order.Placed,
			history:    []order.HistoryEntry{placed},
			createdAt:  now,
			updatedAt:  now,
			version:    1,
		}
		if mutate != nil {
			mutate(args)
		}

		return order.RestoreOrder(
			args.id, args.ownerID, args.code, args.receiver, args.items,
			args.settlement, args.payment, args.paidAt, args.status,
			args.history, args.cancellation, args.createdAt, args.updatedAt,
			args.version,
		)
	}

	t.Run("round-trips a valid snapshot", func(t *testing.T) {
		o, err := validRestore(t, nil)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Placed, o.Status())
		assert.Equal(t, 1, o.Version())
	})

	t.Run("rejects history not starting at PLACED", func(t *testing.T) {
		_, err := validRestore(t, func(a *restoreArgs) {
			entry, entryErr := order.NewHistoryEntry(order.Preparing, "order confirmed", "", now)
			require.NoError(t, entryErr)
			a.history = []order.HistoryEntry{entry}
			a.status = order.Preparing
		})

		require.Error(t, err)
	})

	t.Run("rejects status diverging from last history entry", func(t *testing.T) {
		_, err := validRestore(t, func(a *restoreArgs) {
			a.status = order.Preparing
		})

		require.Error(t, err)
	})

	t.Run("rejects decreasing history timestamps", func(t *testing.T) {
		_, err := validRestore(t, func(a *restoreArgs) {
			placed, entryErr := order.NewHistoryEntry(order.Placed, order.PlacedLabel, "", now)
			require.NoError(t, entryErr)
			earlier, entryErr := order.NewHistoryEntry(order.Preparing, "order confirmed", "", now.Add(-time.Hour))
			require.NoError(t, entryErr)
			a.history = []order.HistoryEntry{placed, earlier}
			a.status = order.Preparing
		})

		require.Error(t, err)
	})

	t.Run("rejects paid order without paidAt", func(t *testing.T) {
		_, err := validRestore(t, func(a *restoreArgs) {
			a.payment = mustPayment(t, true)
			a.paidAt = nil
		})

		require.Error(t, err)
	})

	t.Run("rejects cancellation record on a non-cancelled order", func(t *testing.T) {
		_, err := validRestore(t, func(a *restoreArgs) {
			cancellation, cErr := order.NewCancellation(order.ChangedMind, nil, now)
			require.NoError(t, cErr)
			a.cancellation = &cancellation
		})

		require.Error(t, err)
	})

	t.Run("rejects version below one", func(t *testing.T) {
		_, err := validRestore(t, func(a *restoreArgs) {
			a.version = 0
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	})
}

type restoreArgs struct {
	id           kernel.UUID
	ownerID      kernel.UUID
	code         string
	receiver     order.Receiver
	items        []order.Item
	settlement   order.Settlement
	payment      order.PaymentInfo
	paidAt       *time.Time
	status       order.Status
	history      []order.HistoryEntry
	cancellation *order.Cancellation
	createdAt    time.Time
	updatedAt    time.Time
	version      int
}

func TestRestoreSettlement(t *testing.T) {
	t.Run("rejects amounts that break the settlement equation", func(t *testing.T) {
		_, err := order.RestoreSettlement(
			kernel.NewMoneyFromInt(200),
			kernel.NewMoneyFromInt(10),
			kernel.NewMoneyFromInt(5),
			kernel.NewMoneyFromInt(999),
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
