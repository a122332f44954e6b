package reservation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fillTo walks a fresh wizard up to target with a complete, valid draft.
func fillTo(t *testing.T, target Step) *Wizard {
	t.Helper()
	w := NewWizard(testCalendar())
	if target == StepDate {
		return w
	}
	require.NoError(t, w.Update(FieldDate, "2025-03-07"))
	require.True(t, w.Advance())
	if target == StepTimeAndParty {
		return w
	}
	require.NoError(t, w.Update(FieldTime, "18:30"))
	require.NoError(t, w.Update(FieldPartySize, "4"))
	require.True(t, w.Advance())
	if target == StepContact {
		return w
	}
	require.NoError(t, w.Update(FieldName, "Jane"))
	require.NoError(t, w.Update(FieldEmail, "jane@example.com"))
	require.NoError(t, w.Update(FieldPhone, "555-0100"))
	require.True(t, w.Advance())
	return w
}

func TestWizardStartsEmpty(t *testing.T) {
	w := NewWizard(testCalendar())
	assert.Equal(t, StepDate, w.Step())
	assert.Equal(t, Draft{}, w.Draft())
	assert.False(t, w.CanAdvance())
	assert.False(t, w.CanRetreat())
	assert.Equal(t, "Step 1 of 4", w.Progress())
	assert.Equal(t, "Select a date", w.DateCaption())
}

func TestWizardBlockedAdvanceKeepsStep(t *testing.T) {
	t.Run("date step without a date", func(t *testing.T) {
		w := NewWizard(testCalendar())
		assert.False(t, w.Advance())
		assert.Equal(t, StepDate, w.Step())
	})

	t.Run("time step with only a time", func(t *testing.T) {
		w := fillTo(t, StepTimeAndParty)
		require.NoError(t, w.Update(FieldTime, "19:00"))
		assert.False(t, w.Advance())
		assert.Equal(t, StepTimeAndParty, w.Step())
	})

	t.Run("time step with only a party size", func(t *testing.T) {
		w := fillTo(t, StepTimeAndParty)
		require.NoError(t, w.Update(FieldPartySize, "2"))
		assert.False(t, w.Advance())
		assert.Equal(t, StepTimeAndParty, w.Step())
	})

	t.Run("contact step missing phone", func(t *testing.T) {
		w := fillTo(t, StepContact)
		require.NoError(t, w.Update(FieldName, "Jane"))
		require.NoError(t, w.Update(FieldEmail, "jane@example.com"))
		assert.False(t, w.Advance())
		assert.Equal(t, StepContact, w.Step())
	})

	t.Run("confirmed is terminal", func(t *testing.T) {
		w := fillTo(t, StepConfirmed)
		assert.False(t, w.CanAdvance())
		assert.False(t, w.Advance())
		assert.Equal(t, StepConfirmed, w.Step())
	})
}

func TestWizardBackKeepsData(t *testing.T) {
	w := fillTo(t, StepContact)
	require.NoError(t, w.Update(FieldName, "Jane"))

	require.True(t, w.Back())
	assert.Equal(t, StepTimeAndParty, w.Step())
	require.True(t, w.Back())
	assert.Equal(t, StepDate, w.Step())
	assert.False(t, w.Back(), "no step before the first")

	d := w.Draft()
	require.NotNil(t, d.Date)
	assert.Equal(t, "2025-03-07", d.Value(FieldDate))
	assert.Equal(t, TimeSlot("18:30"), d.Time)
	assert.Equal(t, PartySize(4), d.PartySize)
	assert.Equal(t, "Jane", d.Name)

	// Everything is still in place, so the guards pass straight through.
	assert.True(t, w.Advance())
	assert.True(t, w.Advance())
	assert.Equal(t, StepContact, w.Step())
}

func TestWizardRejectsUnavailableDates(t *testing.T) {
	w := NewWizard(testCalendar())
	require.NoError(t, w.Update(FieldDate, "2025-03-07"))

	err := w.Update(FieldDate, "2025-03-04")
	assert.ErrorIs(t, err, ErrDateUnavailable)
	err = w.Update(FieldDate, "2025-03-10")
	assert.ErrorIs(t, err, ErrDateUnavailable)
	err = w.Update(FieldDate, "tomorrow")
	assert.ErrorIs(t, err, ErrInvalidDate)

	assert.Equal(t, "2025-03-07", w.Draft().Value(FieldDate), "rejected dates leave the draft unchanged")
	assert.Equal(t, "March 7, 2025", w.DateCaption())
}

func TestWizardClearsOnEmptyValue(t *testing.T) {
	w := NewWizard(testCalendar())
	require.NoError(t, w.Update(FieldDate, "2025-03-07"))
	assert.True(t, w.CanAdvance())

	require.NoError(t, w.Update(FieldDate, ""))
	assert.Nil(t, w.Draft().Date)
	assert.False(t, w.CanAdvance())
}

func TestWizardFieldOwnership(t *testing.T) {
	w := NewWizard(testCalendar())

	err := w.Update(FieldName, "Jane")
	assert.ErrorIs(t, err, ErrFieldNotEditable)
	assert.Empty(t, w.Draft().Name)

	err = w.Update(Field("notes"), "window seat")
	assert.ErrorIs(t, err, ErrUnknownField)

	err = w.Update(FieldPartySize, "12")
	assert.ErrorIs(t, err, ErrFieldNotEditable)
}

func TestWizardRejectsBadTimeAndParty(t *testing.T) {
	w := fillTo(t, StepTimeAndParty)

	assert.ErrorIs(t, w.Update(FieldTime, "23:00"), ErrUnknownTimeSlot)
	assert.ErrorIs(t, w.Update(FieldPartySize, "0"), ErrInvalidPartySize)
	assert.ErrorIs(t, w.Update(FieldPartySize, "9"), ErrInvalidPartySize)
	assert.Equal(t, Draft{Date: w.Draft().Date}, w.Draft())
}

func TestWizardConfirmation(t *testing.T) {
	w := fillTo(t, StepContact)
	_, ok := w.Confirmation()
	assert.False(t, ok, "no confirmation before the last step")

	w = fillTo(t, StepConfirmed)
	assert.Equal(t, "Step 4 of 4", w.Progress())
	assert.True(t, w.CanRetreat())

	conf, ok := w.Confirmation()
	require.True(t, ok)
	assert.Equal(t, []string{
		"Thank you for your reservation, Jane.",
		"March 7, 2025 at 6:30 PM",
		"Party of 4",
	}, conf.Lines())
	assert.Contains(t, conf.String(), "Jane")

	assert.ErrorIs(t, w.Update(FieldName, "John"), ErrFinalized)
	assert.Equal(t, "Jane", w.Draft().Name)
}

func TestWizardReset(t *testing.T) {
	w := fillTo(t, StepConfirmed)
	w.Reset()
	assert.Equal(t, StepDate, w.Step())
	assert.Equal(t, Draft{}, w.Draft())
}

func TestDraftIsCopied(t *testing.T) {
	w := fillTo(t, StepTimeAndParty)
	d := w.Draft()
	*d.Date = time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-03-07", w.Draft().Value(FieldDate))
}

func TestParseField(t *testing.T) {
	f, err := ParseField("party_size")
	require.NoError(t, err)
	assert.Equal(t, FieldPartySize, f)
	assert.Equal(t, StepTimeAndParty, f.StepOf())

	_, err = ParseField("Name")
	assert.ErrorIs(t, err, ErrUnknownField)
}
