package reservation

import "errors"

// Sentinel errors returned when the wizard rejects an input. None of them are fatal:
// a rejected input leaves the draft and the step exactly as they were.
var (
	ErrUnknownField     = errors.New("unknown reservation field")
	ErrFieldNotEditable = errors.New("field is not editable on the current step")
	ErrInvalidDate      = errors.New("invalid reservation date")
	ErrDateUnavailable  = errors.New("date is not available for reservations")
	ErrUnknownTimeSlot  = errors.New("unknown time slot")
	ErrInvalidPartySize = errors.New("invalid party size")
	ErrFinalized        = errors.New("reservation is already confirmed")
	ErrPanelDisposed    = errors.New("reservation panel has been disposed")
)
