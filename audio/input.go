package audio

import (
	"context"
	"sync"

	"github.com/simukka/thermal-burst/common"
)

// Device is an open native input.
type Device interface {
	Meter() *Meter
	Close() error
}

// Input meters a native device into a shared volume. A device that fails to
// open leaves the input idle: the volume stays where it was and Err reports
// the failure.
type Input struct {
	mu     sync.Mutex
	err    error
	device Device
	stop   func()
}

// OpenInput opens a device with open and starts metering it into vol.
// onError, if set, sees the open failure or a later read failure.
func OpenInput(ctx context.Context, open func() (Device, error), vol *common.Volume, onError func(error)) *Input {
	in := &Input{}

	dev, err := open()
	if err != nil {
		in.fail(err, onError)
		return in
	}

	meter := dev.Meter()
	meter.OnError = func(err error) {
		in.fail(err, onError)
	}
	in.device = dev
	in.stop = meter.Start(ctx, vol)
	return in
}

func (in *Input) fail(err error, onError func(error)) {
	in.mu.Lock()
	in.err = err
	in.mu.Unlock()
	if onError != nil {
		onError(err)
	}
}

// Err returns the open or read failure, if any.
func (in *Input) Err() error {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.err
}

// Status describes the input for the stats overlay.
func (in *Input) Status() string {
	if in.Err() != nil {
		return "mic error"
	}
	return "mic"
}

// Close stops metering, waits for the last read to finish and then closes
// the device. It is a no-op for an input that never opened.
func (in *Input) Close() error {
	if in.device == nil {
		return nil
	}
	in.stop()
	err := in.device.Close()
	in.device = nil
	return err
}
