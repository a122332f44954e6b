package pubsub

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/nfrund/farays/internal/topicmgr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tableBooked struct {
	PanelID   string `json:"panel_id"`
	PartySize int    `json:"party_size,omitempty"`
	Internal  string `json:"-"`
}

var testBooked = NewEvent[tableBooked]("pubsubtest.table.booked", "Used by the bridge tests")

func TestWatermillBridgeRoundTrip(t *testing.T) {
	bridge := NewWatermillBridge(nil)
	t.Cleanup(func() { _ = bridge.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan Message, 1)
	require.NoError(t, bridge.Subscribe(ctx, "pubsubtest.raw", func(ctx context.Context, msg Message) error {
		received <- msg
		return nil
	}))

	require.NoError(t, bridge.Publish(ctx, Message{
		Topic:     "pubsubtest.raw",
		SessionID: "sess-1",
		Payload:   []byte(`{"hello":"world"}`),
		Metadata:  map[string]string{"request_id": "req-123"},
	}))

	select {
	case msg := <-received:
		assert.Equal(t, "pubsubtest.raw", msg.Topic)
		assert.Equal(t, "sess-1", msg.SessionID)
		assert.JSONEq(t, `{"hello":"world"}`, string(msg.Payload))
		assert.Equal(t, "req-123", msg.Metadata["request_id"])
		assert.NotContains(t, msg.Metadata, metaKeyTopic)
	case <-time.After(time.Second):
		t.Fatal("message not delivered")
	}
}

func TestTypedEvent(t *testing.T) {
	bridge := NewWatermillBridge(nil)
	t.Cleanup(func() { _ = bridge.Close() })
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	var got []tableBooked
	var sessions []string
	require.NoError(t, Subscribe(ctx, bridge, testBooked, func(ctx context.Context, sessionID string, p tableBooked) error {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, p)
		sessions = append(sessions, sessionID)
		return nil
	}))

	require.NoError(t, Publish(ctx, bridge, testBooked, "sess-9", tableBooked{PanelID: "p1", PartySize: 4}))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) == 1
	}, time.Second, 5*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, tableBooked{PanelID: "p1", PartySize: 4}, got[0])
	assert.Equal(t, "sess-9", sessions[0])
}

func TestTypedEventRegistersTopic(t *testing.T) {
	topic, ok := topicmgr.Default().Get("pubsubtest.table.booked")
	require.True(t, ok)
	assert.Equal(t, "pubsubtest", topic.Module())
	assert.Equal(t, []string{"panel_id", "party_size"}, topic.Config().PayloadFields)
	assert.Equal(t, "pubsub.tableBooked", topic.Config().PayloadType)
	assert.Equal(t, testBooked.Topic(), topic)
}

func TestSubscribeHandlerErrorIsDropped(t *testing.T) {
	bridge := NewWatermillBridge(nil)
	t.Cleanup(func() { _ = bridge.Close() })
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	calls := 0
	require.NoError(t, bridge.Subscribe(ctx, "pubsubtest.failing", func(ctx context.Context, msg Message) error {
		mu.Lock()
		defer mu.Unlock()
		calls++
		return errors.New("boom")
	}))

	require.NoError(t, bridge.Publish(ctx, Message{Topic: "pubsubtest.failing", Payload: []byte("x")}))
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return calls > 0
	}, time.Second, 5*time.Millisecond)

	time.Sleep(20 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, calls, "failed messages are not redelivered")
}
