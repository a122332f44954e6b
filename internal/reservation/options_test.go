package reservation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeSlots(t *testing.T) {
	slots := TimeSlots()
	require.Len(t, slots, 10)
	assert.Equal(t, TimeSlot("17:00"), slots[0])
	assert.Equal(t, TimeSlot("21:30"), slots[len(slots)-1])

	// Callers must not be able to mutate the fixed list.
	slots[0] = "03:00"
	assert.Equal(t, TimeSlot("17:00"), TimeSlots()[0])
}

func TestTimeSlotLabel(t *testing.T) {
	cases := map[TimeSlot]string{
		"17:00": "5:00 PM",
		"18:30": "6:30 PM",
		"21:30": "9:30 PM",
	}
	for slot, want := range cases {
		assert.Equal(t, want, slot.Label(), "slot %s", slot)
	}
}

func TestParseTimeSlot(t *testing.T) {
	for _, slot := range TimeSlots() {
		got, err := ParseTimeSlot(string(slot))
		require.NoError(t, err)
		assert.Equal(t, slot, got)
	}

	for _, bad := range []string{"", "16:30", "17:15", "22:00", "6:30 PM"} {
		_, err := ParseTimeSlot(bad)
		assert.ErrorIs(t, err, ErrUnknownTimeSlot, "input %q", bad)
	}
}

func TestPartySizes(t *testing.T) {
	sizes := PartySizes()
	require.Len(t, sizes, 8)
	assert.Equal(t, MinPartySize, sizes[0])
	assert.Equal(t, MaxPartySize, sizes[7])
}

func TestPartySizeLabel(t *testing.T) {
	assert.Equal(t, "1 Guest", PartySize(1).Label())
	for p := PartySize(2); p <= MaxPartySize; p++ {
		assert.Equal(t, p.String()+" Guests", p.Label())
	}
}

func TestParsePartySize(t *testing.T) {
	got, err := ParsePartySize("4")
	require.NoError(t, err)
	assert.Equal(t, PartySize(4), got)

	for _, bad := range []string{"0", "9", "-1", "two", ""} {
		_, err := ParsePartySize(bad)
		assert.ErrorIs(t, err, ErrInvalidPartySize, "input %q", bad)
	}
}
