//go:build !js
// +build !js

package relay

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 64 * 1024
	peerBuffer     = 100
)

// Peer is one connected sender or receiver.
type Peer struct {
	ID       string
	Messages chan []byte
	LastSeen time.Time
	mu       sync.Mutex
}

// Touch records activity from the peer.
func (p *Peer) Touch() {
	p.mu.Lock()
	p.LastSeen = time.Now()
	p.mu.Unlock()
}

// Idle returns how long the peer has been silent.
func (p *Peer) Idle() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return time.Since(p.LastSeen)
}

// Hub fans every well-formed envelope out to all other connected peers.
type Hub struct {
	peers    map[string]*Peer
	mu       sync.RWMutex
	nextID   atomic.Uint64
	upgrader websocket.Upgrader

	// MaxIdle is how long a peer may go without a message or pong before
	// Cleanup drops it.
	MaxIdle time.Duration
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		peers:   make(map[string]*Peer),
		MaxIdle: 2 * pongWait,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// AddPeer registers a peer. A peer already registered under the same ID is
// disconnected first.
func (h *Hub) AddPeer(id string) *Peer {
	h.mu.Lock()
	defer h.mu.Unlock()

	if existing, ok := h.peers[id]; ok {
		close(existing.Messages)
	}

	peer := &Peer{
		ID:       id,
		Messages: make(chan []byte, peerBuffer),
		LastSeen: time.Now(),
	}
	h.peers[id] = peer

	logrus.WithFields(logrus.Fields{
		"function": "Hub.AddPeer",
		"peer":     id,
		"peers":    len(h.peers),
	}).Info("Peer joined")
	return peer
}

// RemovePeer unregisters peer and closes its outbound queue. It reports false
// if peer was already gone or replaced.
func (h *Hub) RemovePeer(peer *Peer) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.removeLocked(peer)
}

func (h *Hub) removeLocked(peer *Peer) bool {
	current, ok := h.peers[peer.ID]
	if !ok || current != peer {
		return false
	}
	close(peer.Messages)
	delete(h.peers, peer.ID)

	logrus.WithFields(logrus.Fields{
		"function": "Hub.RemovePeer",
		"peer":     peer.ID,
		"peers":    len(h.peers),
	}).Info("Peer left")
	return true
}

// Broadcast queues msg for every peer except the sender and returns how many
// peers accepted it. Peers with a full queue miss the message.
func (h *Hub) Broadcast(senderID string, msg []byte) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered := 0
	for id, peer := range h.peers {
		if id == senderID {
			continue
		}
		select {
		case peer.Messages <- msg:
			delivered++
		default:
			logrus.WithFields(logrus.Fields{
				"function": "Hub.Broadcast",
				"peer":     id,
			}).Warn("Message buffer full")
		}
	}
	return delivered
}

// PeerIDs returns the IDs of connected peers.
func (h *Hub) PeerIDs() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	ids := make([]string, 0, len(h.peers))
	for id := range h.peers {
		ids = append(ids, id)
	}
	return ids
}

// Len returns the number of connected peers.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.peers)
}

// Cleanup drops peers idle for longer than MaxIdle and returns how many.
func (h *Hub) Cleanup() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	removed := 0
	for _, peer := range h.peers {
		if peer.Idle() > h.MaxIdle && h.removeLocked(peer) {
			removed++
		}
	}
	return removed
}

// Run sweeps idle peers every interval until ctx is done, then disconnects
// everyone.
func (h *Hub) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for _, peer := range h.peers {
				h.removeLocked(peer)
			}
			h.mu.Unlock()
			return
		case <-ticker.C:
			if n := h.Cleanup(); n > 0 {
				logrus.WithFields(logrus.Fields{
					"function": "Hub.Run",
					"removed":  n,
				}).Info("Removed stale peers")
			}
		}
	}
}

// ServeHTTP upgrades the request and relays the peer's messages until it
// disconnects. An optional "peer" query parameter labels the connection.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "Hub.ServeHTTP",
			"remote":   r.RemoteAddr,
			"error":    err.Error(),
		}).Warn("Upgrade failed")
		return
	}

	label := r.URL.Query().Get("peer")
	if label == "" {
		label = "peer"
	}
	peer := h.AddPeer(label + "-" + strconv.FormatUint(h.nextID.Add(1), 10))

	go h.writePump(conn, peer)
	h.readPump(conn, peer)
}

// readPump forwards inbound envelopes until the connection fails.
func (h *Hub) readPump(conn *websocket.Conn, peer *Peer) {
	defer func() {
		h.RemovePeer(peer)
		conn.Close()
	}()

	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		peer.Touch()
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		kind, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logrus.WithFields(logrus.Fields{
					"function": "Hub.readPump",
					"peer":     peer.ID,
					"error":    err.Error(),
				}).Warn("Connection lost")
			}
			return
		}
		peer.Touch()
		conn.SetReadDeadline(time.Now().Add(pongWait))

		if kind != websocket.TextMessage {
			continue
		}
		if _, err := Decode(data); err != nil {
			logrus.WithFields(logrus.Fields{
				"function": "Hub.readPump",
				"peer":     peer.ID,
				"error":    err.Error(),
			}).Debug("Dropping malformed message")
			continue
		}
		h.Broadcast(peer.ID, data)
	}
}

// writePump drains the peer's queue onto the connection and keeps it alive
// with pings.
func (h *Hub) writePump(conn *websocket.Conn, peer *Peer) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case msg, ok := <-peer.Messages:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
