package reservation

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type eventLog struct {
	mu     sync.Mutex
	events []Event
}

func (l *eventLog) observe(ev Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, ev)
}

func (l *eventLog) kinds() []EventKind {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]EventKind, 0, len(l.events))
	for _, ev := range l.events {
		out = append(out, ev.Kind)
	}
	return out
}

func openedPanel(t *testing.T, opts ...PanelOption) *Panel {
	t.Helper()
	p := NewPanel(testCalendar(), opts...)
	t.Cleanup(p.Dispose)
	require.NoError(t, p.Open())
	return p
}

func TestPanelResetsAfterClose(t *testing.T) {
	p := openedPanel(t, WithResetDelay(10*time.Millisecond))
	require.NoError(t, p.Update(FieldDate, "2025-03-07"))
	require.True(t, p.Advance())

	require.NoError(t, p.Close())
	assert.False(t, p.IsOpen())

	// The draft survives until the delay elapses.
	assert.Equal(t, StepTimeAndParty, p.Snapshot().Step)

	require.Eventually(t, func() bool { return !p.ResetPending() }, time.Second, 5*time.Millisecond)

	require.NoError(t, p.Open())
	v := p.Snapshot()
	assert.True(t, v.Open)
	assert.Equal(t, StepDate, v.Step)
	assert.Equal(t, Draft{}, v.Draft)
}

func TestPanelReopenBeforeDelay(t *testing.T) {
	log := &eventLog{}
	p := openedPanel(t, WithResetDelay(time.Hour), WithObserver(log.observe))
	require.NoError(t, p.Update(FieldDate, "2025-03-07"))
	require.True(t, p.Advance())

	require.NoError(t, p.Close())
	require.True(t, p.ResetPending())
	require.NoError(t, p.Open())

	assert.False(t, p.ResetPending())
	v := p.Snapshot()
	assert.Equal(t, StepDate, v.Step)
	assert.Nil(t, v.Draft.Date)
	assert.Equal(t, []EventKind{EventOpened, EventStepChanged, EventClosed, EventReset, EventOpened}, log.kinds())
}

func TestPanelDisposeCancelsReset(t *testing.T) {
	log := &eventLog{}
	p := NewPanel(testCalendar(), WithResetDelay(5*time.Millisecond), WithObserver(log.observe))
	require.NoError(t, p.Open())
	require.NoError(t, p.Update(FieldDate, "2025-03-07"))
	require.NoError(t, p.Close())
	p.Dispose()

	time.Sleep(30 * time.Millisecond)
	assert.NotContains(t, log.kinds(), EventReset)
	assert.Equal(t, "2025-03-07", p.Snapshot().Draft.Value(FieldDate))

	assert.ErrorIs(t, p.Open(), ErrPanelDisposed)
	assert.ErrorIs(t, p.Close(), ErrPanelDisposed)
	assert.ErrorIs(t, p.Update(FieldDate, ""), ErrPanelDisposed)
	assert.False(t, p.Advance())
}

func TestPanelCloseWhenClosedIsNoop(t *testing.T) {
	p := NewPanel(testCalendar())
	t.Cleanup(p.Dispose)
	require.NoError(t, p.Close())
	assert.False(t, p.ResetPending())
}

func TestPanelConfirmedEvent(t *testing.T) {
	log := &eventLog{}
	p := openedPanel(t, WithObserver(log.observe))

	require.NoError(t, p.Update(FieldDate, "2025-03-07"))
	require.True(t, p.Advance())
	require.NoError(t, p.Update(FieldTime, "19:00"))
	require.NoError(t, p.Update(FieldPartySize, "1"))
	require.True(t, p.Advance())
	require.NoError(t, p.Update(FieldName, "Jane"))
	require.NoError(t, p.Update(FieldEmail, "jane@example.com"))
	require.NoError(t, p.Update(FieldPhone, "555-0100"))
	require.True(t, p.Advance())

	v := p.Snapshot()
	require.True(t, v.Confirmed)
	assert.Equal(t, "Party of 1", v.Confirmation.Lines()[2])
	assert.Equal(t, "March 7, 2025 at 7:00 PM", v.Confirmation.Lines()[1])

	kinds := log.kinds()
	require.NotEmpty(t, kinds)
	assert.Equal(t, EventConfirmed, kinds[len(kinds)-1])

	log.mu.Lock()
	last := log.events[len(log.events)-1]
	log.mu.Unlock()
	assert.Equal(t, "Jane", last.Draft.Name)
}

func TestPanelSnapshotGuards(t *testing.T) {
	p := openedPanel(t)
	v := p.Snapshot()
	assert.False(t, v.CanAdvance)
	assert.False(t, v.CanRetreat)
	assert.Equal(t, "Step 1 of 4", v.Progress)
	assert.Equal(t, "Select a date", v.DateCaption)

	require.NoError(t, p.Update(FieldDate, "2025-03-07"))
	v = p.Snapshot()
	assert.True(t, v.CanAdvance)
	assert.Equal(t, "March 7, 2025", v.DateCaption)
}

func TestPanelConcurrentUse(t *testing.T) {
	p := openedPanel(t, WithResetDelay(time.Millisecond))
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = p.Update(FieldDate, "2025-03-07")
				p.Advance()
				p.Back()
				if (i+j)%7 == 0 {
					_ = p.Close()
					_ = p.Open()
				}
				_ = p.Snapshot()
			}
		}(i)
	}
	wg.Wait()
	assert.True(t, p.IsOpen())
}
