package booking_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peershare/shareit-backend/internal/booking"
)

func waitingBooking(ownerID, bookerID string) *booking.Booking {
	return &booking.Booking{
		ID:       "b-1",
		BookerID: bookerID,
		Status:   booking.StatusWaiting,
		Start:    time.Now().Add(time.Hour),
		End:      time.Now().Add(2 * time.Hour),
		Item:     booking.Item{ID: "i-1", OwnerID: ownerID},
	}
}

func TestDecide(t *testing.T) {
	const owner = "owner-1"
	const booker = "booker-1"

	t.Run("owner approves waiting booking", func(t *testing.T) {
		b := waitingBooking(owner, booker)
		next, err := booking.Decide(b, owner, true)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusApproved, next)
	})

	t.Run("owner rejects waiting booking", func(t *testing.T) {
		b := waitingBooking(owner, booker)
		next, err := booking.Decide(b, owner, false)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusRejected, next)
	})

	t.Run("non-owner cannot decide", func(t *testing.T) {
		b := waitingBooking(owner, booker)
		for _, caller := range []string{booker, "stranger"} {
			_, err := booking.Decide(b, caller, true)
			assert.ErrorIs(t, err, booking.ErrNotOwner, "caller %s", caller)
		}
	})

	t.Run("decided bookings are terminal", func(t *testing.T) {
		for _, status := range []booking.Status{
			booking.StatusApproved,
			booking.StatusRejected,
			booking.StatusCanceled,
		} {
			b := waitingBooking(owner, booker)
			b.Status = status

			// Neither direction may overturn a decision.
			_, err := booking.Decide(b, owner, true)
			assert.ErrorIs(t, err, booking.ErrAlreadyDecided, "approve from %s", status)
			_, err = booking.Decide(b, owner, false)
			assert.ErrorIs(t, err, booking.ErrAlreadyDecided, "reject from %s", status)
		}
	})

	t.Run("ownership is checked before state", func(t *testing.T) {
		b := waitingBooking(owner, booker)
		b.Status = booking.StatusApproved
		_, err := booking.Decide(b, "stranger", true)
		assert.ErrorIs(t, err, booking.ErrNotOwner)
	})
}

func TestCancel(t *testing.T) {
	const owner = "owner-1"
	const booker = "booker-1"

	t.Run("booker cancels waiting booking", func(t *testing.T) {
		b := waitingBooking(owner, booker)
		next, err := booking.Cancel(b, booker)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusCanceled, next)
	})

	t.Run("only the booker may cancel", func(t *testing.T) {
		b := waitingBooking(owner, booker)
		_, err := booking.Cancel(b, owner)
		assert.ErrorIs(t, err, booking.ErrNotFound)
	})

	t.Run("decided bookings cannot be canceled", func(t *testing.T) {
		b := waitingBooking(owner, booker)
		b.Status = booking.StatusApproved
		_, err := booking.Cancel(b, booker)
		assert.ErrorIs(t, err, booking.ErrAlreadyDecided)
	})
}
