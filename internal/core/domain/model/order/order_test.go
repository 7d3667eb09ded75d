package order_test

import (
	"testing"
	"time"

	"effdel/internal/core/domain/model/order"
	"effdel/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validItems() []order.Item {
	return []order.Item{
		{ProductID: "prod-1", Quantity: 2, UnitPrice: 4.5},
		{ProductID: "prod-2", Quantity: 1, UnitPrice: 12},
	}
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(order.NewID(), "user-1", validItems())
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create valid order with all valid parameters", func(t *testing.T) {
		id := order.NewID()

		o, err := order.NewOrder(id, "user-1", validItems())

		require.NoError(t, err)
		assert.NotNil(t, o)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, "user-1", o.UserID())
		assert.Equal(t, validItems(), o.Items())
		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.RiderID())
		assert.Empty(t, o.Refunds())
		assert.False(t, o.ModifiedAt().IsZero())
		assert.Equal(t, time.UTC, o.ModifiedAt().Location())
	})

	t.Run("should fail with zero-value ID", func(t *testing.T) {
		var invalidID order.ID

		o, err := order.NewOrder(invalidID, "user-1", validItems())

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "order ID must be created")
	})

	t.Run("should fail with empty user ID", func(t *testing.T) {
		o, err := order.NewOrder(order.NewID(), "", validItems())

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "user ID")
	})

	t.Run("should fail with no items", func(t *testing.T) {
		o, err := order.NewOrder(order.NewID(), "user-1", nil)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "order items")
	})

	t.Run("should fail with invalid item", func(t *testing.T) {
		items := []order.Item{{ProductID: "prod-1", Quantity: 0}}

		o, err := order.NewOrder(order.NewID(), "user-1", items)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "item quantity")
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore persisted state", func(t *testing.T) {
		id := order.NewID()
		riderID := "rider-7"
		refund, err := order.RestoreRefund(9.99, "late delivery", time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC))
		require.NoError(t, err)
		modified := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

		o, err := order.RestoreOrder(
			id, "user-1", validItems(), order.Delivered, &riderID, "Asha", []order.Refund{refund}, modified,
		)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Delivered, o.Status())
		require.NotNil(t, o.RiderID())
		assert.Equal(t, "rider-7", *o.RiderID())
		assert.Equal(t, "Asha", o.RiderName())
		assert.Len(t, o.Refunds(), 1)
		assert.Equal(t, modified, o.ModifiedAt())
	})

	t.Run("should reject invalid stored status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			order.NewID(), "user-1", validItems(), order.Status(42), nil, "", nil, time.Now(),
		)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero value order fails validation", func(t *testing.T) {
		var o order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("nil order fails validation", func(t *testing.T) {
		var o *order.Order

		require.Error(t, o.Validate())
	})
}

func TestOrder_UpdateStatus(t *testing.T) {
	t.Run("allows Pending to Accepted and refreshes modified timestamp", func(t *testing.T) {
		o := newTestOrder(t)
		before := o.ModifiedAt()

		time.Sleep(time.Millisecond)
		err := o.UpdateStatus(order.Accepted)

		require.NoError(t, err)
		assert.Equal(t, order.Accepted, o.Status())
		assert.True(t, o.ModifiedAt().After(before))
	})

	t.Run("allows full lifecycle to Delivered", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.UpdateStatus(order.Accepted))
		require.NoError(t, o.UpdateStatus(order.Delivered))
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("allows cancellation from Pending and Accepted", func(t *testing.T) {
		pending := newTestOrder(t)
		require.NoError(t, pending.UpdateStatus(order.Cancelled))

		accepted := newTestOrder(t)
		require.NoError(t, accepted.UpdateStatus(order.Accepted))
		require.NoError(t, accepted.UpdateStatus(order.Cancelled))
	})

	t.Run("rejects skipping acceptance", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.UpdateStatus(order.Delivered)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("rejects leaving a terminal status", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.UpdateStatus(order.Cancelled))

		err := o.UpdateStatus(order.Accepted)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, order.Cancelled, o.Status())
	})
}

func TestOrder_AssignRider(t *testing.T) {
	t.Run("attaches rider id and display name", func(t *testing.T) {
		o := newTestOrder(t)
		info, err := order.NewRiderInfo("rider-7", "Asha")
		require.NoError(t, err)

		require.NoError(t, o.AssignRider(info))

		require.NotNil(t, o.RiderID())
		assert.Equal(t, "rider-7", *o.RiderID())
		assert.Equal(t, "Asha", o.RiderName())
	})

	t.Run("assignment is unconditional on status", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.UpdateStatus(order.Cancelled))
		info, err := order.NewRiderInfo("rider-7", "Asha")
		require.NoError(t, err)

		// No state gate: even a cancelled order accepts a rider attachment.
		require.NoError(t, o.AssignRider(info))
		require.NotNil(t, o.RiderID())
	})

	t.Run("rejects unconstructed rider info", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.AssignRider(order.RiderInfo{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "RiderInfo must be created")
	})
}

func TestOrder_Pickup(t *testing.T) {
	t.Run("pending order is picked up straight to Delivered", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.Pickup("rider-7")

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, o.Status())
		require.NotNil(t, o.RiderID())
		assert.Equal(t, "rider-7", *o.RiderID())
	})

	t.Run("second pickup fails with invalid state", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Pickup("rider-7"))

		err := o.Pickup("rider-8")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, order.Delivered, o.Status())
		assert.Equal(t, "rider-7", *o.RiderID())
	})

	t.Run("accepted order cannot be picked up", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.UpdateStatus(order.Accepted))

		err := o.Pickup("rider-7")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, order.Accepted, o.Status())
		assert.Nil(t, o.RiderID())
	})

	t.Run("rejects empty rider id", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.Pickup("")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, order.Pending, o.Status())
	})
}

func TestOrder_RecordRefunds(t *testing.T) {
	t.Run("replaces the refund list wholesale", func(t *testing.T) {
		o := newTestOrder(t)
		refundA, err := order.NewRefund(5, "missing item")
		require.NoError(t, err)
		refundB, err := order.NewRefund(7.5, "late delivery")
		require.NoError(t, err)

		require.NoError(t, o.RecordRefunds([]order.Refund{refundA}))
		require.NoError(t, o.RecordRefunds([]order.Refund{refundB}))

		refunds := o.Refunds()
		require.Len(t, refunds, 1)
		assert.InEpsilon(t, 7.5, refunds[0].Amount(), 0.0001)
		assert.Equal(t, "late delivery", refunds[0].Reason())
	})

	t.Run("empty list clears refunds", func(t *testing.T) {
		o := newTestOrder(t)
		refund, err := order.NewRefund(5, "missing item")
		require.NoError(t, err)
		require.NoError(t, o.RecordRefunds([]order.Refund{refund}))

		require.NoError(t, o.RecordRefunds(nil))

		assert.Empty(t, o.Refunds())
	})

	t.Run("rejects unconstructed refund", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.RecordRefunds([]order.Refund{{}})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Refund must be created")
	})
}

func TestRefund(t *testing.T) {
	t.Run("valid refund carries UTC timestamp", func(t *testing.T) {
		refund, err := order.NewRefund(12.5, "damaged item")

		require.NoError(t, err)
		require.NoError(t, refund.Validate())
		assert.InEpsilon(t, 12.5, refund.Amount(), 0.0001)
		assert.Equal(t, "damaged item", refund.Reason())
		assert.Equal(t, time.UTC, refund.Timestamp().Location())
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		_, err := order.NewRefund(0, "damaged item")
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects empty reason", func(t *testing.T) {
		_, err := order.NewRefund(10, "")
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
