package reservation

import (
	"fmt"
	"strconv"
	"time"
)

// TimeSlot is a seating time in 24-hour "15:04" form, e.g. "18:30".
type TimeSlot string

// PartySize is the number of guests for a reservation.
type PartySize int

const (
	MinPartySize PartySize = 1
	MaxPartySize PartySize = 8

	slotLayout  = "15:04"
	slotDisplay = "3:04 PM"
)

// timeSlots is the fixed, ordered list of seatings offered to guests.
var timeSlots = []TimeSlot{
	"17:00", "17:30",
	"18:00", "18:30",
	"19:00", "19:30",
	"20:00", "20:30",
	"21:00", "21:30",
}

// TimeSlots returns the seatings in the order they are offered.
func TimeSlots() []TimeSlot {
	out := make([]TimeSlot, len(timeSlots))
	copy(out, timeSlots)
	return out
}

// ParseTimeSlot returns the slot matching s. Only values from TimeSlots are accepted.
func ParseTimeSlot(s string) (TimeSlot, error) {
	for _, slot := range timeSlots {
		if string(slot) == s {
			return slot, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTimeSlot, s)
}

// Label renders the slot in 12-hour clock form ("18:30" -> "6:30 PM").
func (t TimeSlot) Label() string {
	parsed, err := time.Parse(slotLayout, string(t))
	if err != nil {
		return string(t)
	}
	return parsed.Format(slotDisplay)
}

// PartySizes returns every selectable party size, smallest first.
func PartySizes() []PartySize {
	out := make([]PartySize, 0, MaxPartySize-MinPartySize+1)
	for p := MinPartySize; p <= MaxPartySize; p++ {
		out = append(out, p)
	}
	return out
}

// ParsePartySize parses a party size from its decimal form.
func ParsePartySize(s string) (PartySize, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPartySize, s)
	}
	p := PartySize(n)
	if p < MinPartySize || p > MaxPartySize {
		return 0, fmt.Errorf("%w: %d", ErrInvalidPartySize, n)
	}
	return p, nil
}

// Label renders the size as shown on the picker ("1 Guest", "4 Guests").
func (p PartySize) Label() string {
	if p == 1 {
		return "1 Guest"
	}
	return fmt.Sprintf("%d Guests", int(p))
}

func (p PartySize) String() string {
	return strconv.Itoa(int(p))
}
