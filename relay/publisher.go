//go:build !js
// +build !js

package relay

import (
	"context"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// DefaultInterval is how often a Publisher sends a sample.
const DefaultInterval = 16 * time.Millisecond

// Source is anything with a current volume level.
type Source interface {
	Level() float64
}

// Publisher samples Source at a fixed interval and sends each sample to the
// relay as an audio envelope.
type Publisher struct {
	URL      string
	Source   Source
	Interval time.Duration
	Dialer   *websocket.Dialer

	MinBackoff time.Duration
	MaxBackoff time.Duration
}

// NewPublisher creates a publisher for url.
func NewPublisher(url string, source Source) *Publisher {
	return &Publisher{
		URL:        url,
		Source:     source,
		Interval:   DefaultInterval,
		Dialer:     websocket.DefaultDialer,
		MinBackoff: DefaultMinBackoff,
		MaxBackoff: DefaultMaxBackoff,
	}
}

// Run publishes until ctx is done, reconnecting after failures. It only
// returns ctx's error.
func (p *Publisher) Run(ctx context.Context) error {
	for {
		conn, err := dialWithBackoff(ctx, p.Dialer, p.URL, p.MinBackoff, p.MaxBackoff)
		if err != nil {
			return err
		}

		logrus.WithFields(logrus.Fields{
			"function": "Publisher.Run",
			"url":      p.URL,
			"interval": p.Interval,
		}).Info("Publishing to relay")

		err = p.publish(ctx, conn)
		if ctx.Err() != nil {
			return ctx.Err()
		}

		logrus.WithFields(logrus.Fields{
			"function": "Publisher.Run",
			"url":      p.URL,
			"error":    err.Error(),
		}).Warn("Relay connection lost")
	}
}

func (p *Publisher) publish(ctx context.Context, conn *websocket.Conn) error {
	defer conn.Close()

	// Reading is what answers the hub's pings; relayed frames are discarded.
	readErr := make(chan error, 1)
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				readErr <- err
				return
			}
		}
	}()

	ticker := time.NewTicker(p.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeWait))
			return ctx.Err()
		case err := <-readErr:
			return err
		case <-ticker.C:
			data, err := Encode(NewAudioMessage(p.Source.Level()))
			if err != nil {
				return err
			}
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return err
			}
		}
	}
}
