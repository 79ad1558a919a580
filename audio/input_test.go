package audio

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/simukka/thermal-burst/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDevice meters a slowReader and records whether Close raced a Read.
type fakeDevice struct {
	reader      *slowReader
	closed      bool
	readOnClose bool
	samples     []float32
}

func (d *fakeDevice) Meter() *Meter {
	return &Meter{Reader: d.reader, Samples: d.samples}
}

func (d *fakeDevice) Close() error {
	d.closed = true
	d.readOnClose = d.reader.inRead.Load()
	return nil
}

func TestOpenInput_FailureStaysIdle(t *testing.T) {
	errNoDevice := errors.New("no default input device")
	vol := &common.Volume{}

	var reported error
	in := OpenInput(context.Background(), func() (Device, error) {
		return nil, errNoDevice
	}, vol, func(err error) { reported = err })

	assert.ErrorIs(t, reported, errNoDevice)
	assert.ErrorIs(t, in.Err(), errNoDevice)
	assert.Equal(t, "mic error", in.Status())
	assert.Equal(t, 0.0, vol.Load())
	assert.NoError(t, in.Close())
}

func TestOpenInput_MetersUntilClose(t *testing.T) {
	dev := &fakeDevice{reader: &slowReader{}, samples: []float32{0.5, -0.5}}
	vol := &common.Volume{}

	in := OpenInput(context.Background(), func() (Device, error) { return dev, nil }, vol, nil)
	require.Eventually(t, func() bool { return vol.Load() > 0 }, 2*time.Second, time.Millisecond)
	assert.NoError(t, in.Err())
	assert.Equal(t, "mic", in.Status())
	assert.InDelta(t, 0.5, vol.Load(), 1e-9)

	require.NoError(t, in.Close())
	assert.True(t, dev.closed)
	assert.False(t, dev.readOnClose, "device closed while a read was in flight")
	assert.NoError(t, in.Close())
}

func TestOpenInput_ReadFailureHoldsVolume(t *testing.T) {
	errUnplugged := errors.New("device unplugged")
	samples := []float32{0.2, 0.2}
	reader := &scriptedReader{step: func(call int) error {
		if call == 1 {
			return nil
		}
		return errUnplugged
	}}
	dev := &scriptedDevice{meter: &Meter{Reader: reader, Samples: samples}}
	vol := &common.Volume{}

	reported := make(chan error, 1)
	in := OpenInput(context.Background(), func() (Device, error) { return dev, nil }, vol, func(err error) {
		reported <- err
	})

	select {
	case err := <-reported:
		assert.ErrorIs(t, err, errUnplugged)
	case <-time.After(2 * time.Second):
		t.Fatal("read failure not reported")
	}
	assert.Equal(t, "mic error", in.Status())
	assert.InDelta(t, 0.2, vol.Load(), 1e-6)
	assert.NoError(t, in.Close())
}

type scriptedDevice struct {
	meter *Meter
}

func (d *scriptedDevice) Meter() *Meter { return d.meter }
func (d *scriptedDevice) Close() error  { return nil }
