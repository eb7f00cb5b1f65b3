package scheduling

import "errors"

// ── Booking and cancellation errors ──

var (
	// ErrUnauthenticated: acting user id missing, zero or negative.
	ErrUnauthenticated = errors.New("user not authenticated")
	// ErrInvalidInput: booking with no usable title or description.
	ErrInvalidInput = errors.New("invalid booking input")
	// ErrNotFound: cancellation target does not exist.
	ErrNotFound = errors.New("appointment not found")
	// ErrForbidden: cancellation target owned by a different user.
	ErrForbidden = errors.New("appointment owned by another user")
	// ErrAlreadyPast: cancellation attempted on an elapsed appointment.
	ErrAlreadyPast = errors.New("appointment already in the past")
	// ErrSlotTaken: the backing store rejected a duplicate (day, slot)
	// pair. This is the authoritative conflict signal; the in-memory
	// availability check is only a hint.
	ErrSlotTaken = errors.New("slot already booked")
)

// PersistenceError wraps a failure surfaced by the backing store. The
// underlying message is passed through verbatim for display.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string { return e.Err.Error() }

func (e *PersistenceError) Unwrap() error { return e.Err }
