package audio

import (
	"context"
	"errors"
	"fmt"

	"github.com/simukka/thermal-burst/common"
)

// Reader fills a fixed sample buffer on every call. A PortAudio input stream
// satisfies it.
type Reader interface {
	Read() error
}

// Meter reads buffers from Reader into Samples and stores the RMS level of
// each one.
type Meter struct {
	Reader  Reader
	Samples []float32

	// Transient reports read errors that drop a single buffer instead of
	// ending the loop.
	Transient func(error) bool
	// OnError runs when the loop ends on a read error.
	OnError func(error)
}

// Run reads until ctx is done or a read fails.
func (m *Meter) Run(ctx context.Context, vol *common.Volume) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := m.Reader.Read(); err != nil {
			if m.Transient != nil && m.Transient(err) {
				continue
			}
			return fmt.Errorf("read microphone: %w", err)
		}
		vol.Store(RMS(m.Samples))
	}
}

// Start runs the meter in its own goroutine. The returned stop function
// cancels the loop and blocks until no Read is in flight, so the device can
// be closed right after it returns.
func (m *Meter) Start(ctx context.Context, vol *common.Volume) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)
		if err := m.Run(ctx, vol); err != nil && !errors.Is(err, context.Canceled) && m.OnError != nil {
			m.OnError(err)
		}
	}()

	return func() {
		cancel()
		<-done
	}
}
