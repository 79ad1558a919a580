//go:build !js
// +build !js

package relay

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/simukka/thermal-burst/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startClient(t *testing.T, url string) (*Client, *common.Volume, context.CancelFunc, <-chan error) {
	t.Helper()
	vol := &common.Volume{}
	c := NewClient(url, vol)
	c.MinBackoff = 10 * time.Millisecond
	c.MaxBackoff = 50 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- c.Run(ctx) }()
	t.Cleanup(cancel)
	return c, vol, cancel, errc
}

func TestClientAppliesAudioMessages(t *testing.T) {
	hub, url := newTestHub(t)
	sender := dial(t, url+"?peer=sender")
	c, vol, cancel, errc := startClient(t, url)
	waitForPeers(t, hub, 2)

	require.NoError(t, sender.WriteMessage(websocket.TextMessage, []byte(`{"type":"audio","volume":-1}`)))
	require.NoError(t, sender.WriteMessage(websocket.TextMessage, []byte(`{"type":"hello"}`)))
	require.NoError(t, sender.WriteMessage(websocket.TextMessage, []byte(`{"type":"audio","volume":0.5}`)))

	require.Eventually(t, func() bool { return vol.Load() == 0.5 }, 2*time.Second, 10*time.Millisecond)
	assert.True(t, c.Connected())
	assert.Equal(t, uint64(1), c.Received())
	assert.Equal(t, uint64(1), c.Rejected())
	assert.Equal(t, 0.5, c.Level())

	cancel()
	select {
	case err := <-errc:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.False(t, c.Connected())
}

func TestClientHoldsVolumeAcrossReconnect(t *testing.T) {
	hub, url := newTestHub(t)
	sender := dial(t, url+"?peer=sender")
	c, vol, _, _ := startClient(t, url)
	waitForPeers(t, hub, 2)

	require.NoError(t, sender.WriteMessage(websocket.TextMessage, []byte(`{"type":"audio","volume":0.2}`)))
	require.Eventually(t, func() bool { return vol.Load() == 0.2 }, 2*time.Second, 10*time.Millisecond)

	hub.mu.RLock()
	var clientPeer *Peer
	for id, p := range hub.peers {
		if !strings.HasPrefix(id, "sender-") {
			clientPeer = p
		}
	}
	hub.mu.RUnlock()
	require.NotNil(t, clientPeer)
	require.True(t, hub.RemovePeer(clientPeer))

	assert.Equal(t, 0.2, vol.Load())
	require.Eventually(t, func() bool { return hub.Len() == 2 && c.Connected() }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, 0.2, vol.Load())
}

func TestClientRetriesUntilCancelled(t *testing.T) {
	_, _, cancel, errc := startClient(t, "ws://127.0.0.1:1/ws")
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errc:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
