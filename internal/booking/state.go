package booking

// Decide validates an owner's approval decision against the state machine and
// returns the status the booking transitions to.
//
// Legal transitions are waiting→approved and waiting→rejected (plus
// waiting→canceled via Cancel). A booking that has left waiting is terminal:
// a decision can never be repeated or overturned.
func Decide(b *Booking, actingUserID string, approved bool) (Status, error) {
	if b.Item.OwnerID != actingUserID {
		return "", ErrNotOwner
	}
	if b.Status != StatusWaiting {
		return "", ErrAlreadyDecided
	}
	if approved {
		return StatusApproved, nil
	}
	return StatusRejected, nil
}

// Cancel validates a booker's cancellation. Only the booker may cancel, and
// only while the booking is still waiting.
func Cancel(b *Booking, actingUserID string) (Status, error) {
	if b.BookerID != actingUserID {
		return "", ErrNotFound
	}
	if b.Status != StatusWaiting {
		return "", ErrAlreadyDecided
	}
	return StatusCanceled, nil
}
