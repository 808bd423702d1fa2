package ws

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runHub(t *testing.T) (*Hub, context.CancelFunc, chan error) {
	t.Helper()
	h := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- h.Run(ctx) }()
	return h, cancel, errCh
}

func TestHubRegisterAndUnregister(t *testing.T) {
	h, cancel, errCh := runHub(t)
	defer cancel()

	cl := &client{hub: h, send: make(chan []byte, 1), topic: TopicQuotes}
	require.True(t, h.addClient(cl))
	assert.Eventually(t, func() bool { return h.clientCount() == 1 }, time.Second, 5*time.Millisecond)

	h.dropClient(cl)
	assert.Eventually(t, func() bool { return h.clientCount() == 0 }, time.Second, 5*time.Millisecond)

	// The run loop closes the send channel on unregister.
	_, open := <-cl.send
	assert.False(t, open)

	cancel()
	assert.ErrorIs(t, <-errCh, context.Canceled)
}

func TestHubShutdownReleasesClientGoroutines(t *testing.T) {
	h, cancel, errCh := runHub(t)

	cl := &client{hub: h, send: make(chan []byte, 1), topic: TopicQuotes}
	require.True(t, h.addClient(cl))

	cancel()
	require.ErrorIs(t, <-errCh, context.Canceled)

	// The run loop is gone; register and unregister must not block.
	released := make(chan struct{})
	go func() {
		h.dropClient(cl)
		assert.False(t, h.addClient(&client{hub: h, topic: TopicQuotes}))
		close(released)
	}()

	select {
	case <-released:
	case <-time.After(time.Second):
		t.Fatal("client goroutine blocked after hub shutdown")
	}
}

func TestWatchedSymbolsUnion(t *testing.T) {
	h, cancel, errCh := runHub(t)
	defer cancel()

	a := &client{hub: h, send: make(chan []byte, 1), topic: TopicQuotes, symbols: map[string]bool{"HUNT": true}}
	b := &client{hub: h, send: make(chan []byte, 1), topic: TopicQuotes, symbols: map[string]bool{"WTEC": true, "HUNT": true}}
	require.True(t, h.addClient(a))
	require.True(t, h.addClient(b))
	require.Eventually(t, func() bool { return h.clientCount() == 2 }, time.Second, 5*time.Millisecond)

	union, ok := h.WatchedSymbols()
	require.True(t, ok)
	assert.Equal(t, map[string]bool{"HUNT": true, "WTEC": true}, union)

	// An unfiltered client watches everything.
	all := &client{hub: h, send: make(chan []byte, 1), topic: TopicQuotes}
	require.True(t, h.addClient(all))
	require.Eventually(t, func() bool { return h.clientCount() == 3 }, time.Second, 5*time.Millisecond)

	_, ok = h.WatchedSymbols()
	assert.False(t, ok)

	cancel()
	assert.ErrorIs(t, <-errCh, context.Canceled)
}
