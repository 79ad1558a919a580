//go:build !js
// +build !js

package relay

import (
	"context"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	DefaultMinBackoff = 1 * time.Second
	DefaultMaxBackoff = 60 * time.Second
)

// dialWithBackoff dials url until it succeeds or ctx is done, doubling the
// wait after each failure up to max.
func dialWithBackoff(ctx context.Context, dialer *websocket.Dialer, url string, min, max time.Duration) (*websocket.Conn, error) {
	backoff := min
	for {
		conn, _, err := dialer.DialContext(ctx, url, nil)
		if err == nil {
			return conn, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		logrus.WithFields(logrus.Fields{
			"function": "dialWithBackoff",
			"url":      url,
			"retry_in": backoff,
			"error":    err.Error(),
		}).Warn("Dial failed")

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}

		backoff *= 2
		if backoff > max {
			backoff = max
		}
	}
}
