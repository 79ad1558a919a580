//go:build !js
// +build !js

package relay

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/simukka/thermal-burst/common"
	"github.com/sirupsen/logrus"
)

// Client is the native receiving end of the relay. It writes every audio
// envelope's volume into Volume and reconnects when the connection drops,
// keeping the last value meanwhile.
type Client struct {
	URL    string
	Volume *common.Volume
	Dialer *websocket.Dialer

	MinBackoff time.Duration
	MaxBackoff time.Duration

	connected atomic.Bool
	received  atomic.Uint64
	rejected  atomic.Uint64
}

// NewClient creates a client for url writing into vol.
func NewClient(url string, vol *common.Volume) *Client {
	return &Client{
		URL:        url,
		Volume:     vol,
		Dialer:     websocket.DefaultDialer,
		MinBackoff: DefaultMinBackoff,
		MaxBackoff: DefaultMaxBackoff,
	}
}

// Level returns the last received volume.
func (c *Client) Level() float64 {
	return c.Volume.Level()
}

// Connected reports whether a connection is currently open.
func (c *Client) Connected() bool {
	return c.connected.Load()
}

// Received returns the number of audio envelopes applied.
func (c *Client) Received() uint64 {
	return c.received.Load()
}

// Rejected returns the number of malformed frames ignored.
func (c *Client) Rejected() uint64 {
	return c.rejected.Load()
}

// Run connects and receives until ctx is done. It only returns ctx's error.
func (c *Client) Run(ctx context.Context) error {
	for {
		conn, err := dialWithBackoff(ctx, c.Dialer, c.URL, c.MinBackoff, c.MaxBackoff)
		if err != nil {
			return err
		}

		logrus.WithFields(logrus.Fields{
			"function": "Client.Run",
			"url":      c.URL,
		}).Info("Connected to relay")

		err = c.receive(ctx, conn)
		if ctx.Err() != nil {
			return ctx.Err()
		}

		logrus.WithFields(logrus.Fields{
			"function": "Client.Run",
			"url":      c.URL,
			"volume":   c.Volume.Load(),
			"error":    err.Error(),
		}).Warn("Relay connection lost, holding last volume")
	}
}

func (c *Client) receive(ctx context.Context, conn *websocket.Conn) error {
	c.connected.Store(true)
	defer c.connected.Store(false)
	defer conn.Close()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		c.handle(data)
	}
}

func (c *Client) handle(data []byte) {
	v, err := DecodeVolume(data)
	switch {
	case err == nil:
		c.Volume.Store(v)
		c.received.Add(1)
	case errors.Is(err, ErrNotAudio):
	default:
		c.rejected.Add(1)
		logrus.WithFields(logrus.Fields{
			"function": "Client.handle",
			"error":    err.Error(),
		}).Warn("Ignoring malformed message")
	}
}
