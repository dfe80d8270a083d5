package ws

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubBroadcast(t *testing.T) {
	hub := NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
	go hub.Run()

	client := NewClient(hub, nil)
	hub.Register(client)
	require.Eventually(t, func() bool {
		return hub.ClientCount() == 1
	}, time.Second, 10*time.Millisecond)

	hub.Broadcast([]byte("hello"))
	select {
	case msg := <-client.send:
		assert.Equal(t, "hello", string(msg))
	case <-time.After(time.Second):
		t.Fatal("no broadcast received")
	}

	hub.Unregister(client)
	require.Eventually(t, func() bool {
		return hub.ClientCount() == 0
	}, time.Second, 10*time.Millisecond)

	_, open := <-client.send
	assert.False(t, open, "send channel closed on unregister")
}

func TestNotifierEventShape(t *testing.T) {
	hub := NewHub(nil)
	go hub.Run()

	client := NewClient(hub, nil)
	hub.Register(client)
	require.Eventually(t, func() bool {
		return hub.ClientCount() == 1
	}, time.Second, 10*time.Millisecond)

	at := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	NewNotifier(hub).NotifyDatasetRefreshed(731, at)

	select {
	case msg := <-client.send:
		var evt DatasetRefreshedEvent
		require.NoError(t, json.Unmarshal(msg, &evt))
		assert.Equal(t, "dataset_refreshed", evt.Type)
		assert.Equal(t, 731, evt.Jobs)
		assert.Equal(t, "2026-08-25T12:00:00Z", evt.Timestamp)
	case <-time.After(time.Second):
		t.Fatal("no event received")
	}
}
