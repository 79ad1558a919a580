package audio

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRMS_Silence(t *testing.T) {
	assert.Equal(t, 0.0, RMS(nil))
	assert.Equal(t, 0.0, RMS(make([]float32, 512)))
}

func TestRMS_FullScaleSquare(t *testing.T) {
	samples := make([]float32, 256)
	for i := range samples {
		if i%2 == 0 {
			samples[i] = 1
		} else {
			samples[i] = -1
		}
	}
	assert.InDelta(t, 1.0, RMS(samples), 1e-9)
}

func TestRMS_Sine(t *testing.T) {
	samples := make([]float32, 4096)
	for i := range samples {
		samples[i] = float32(0.5 * math.Sin(2*math.Pi*float64(i)/64))
	}
	assert.InDelta(t, 0.5/math.Sqrt2, RMS(samples), 1e-4)
}

func TestRMS_ClampsOverdrive(t *testing.T) {
	assert.Equal(t, 1.0, RMS([]float32{3, -3, 3}))
}

func TestMicrophone_IdleBeforeAcquisition(t *testing.T) {
	m := NewMicrophone()

	assert.Equal(t, 0.0, m.Level())
	assert.False(t, m.Ready())
	assert.NoError(t, m.Err())
}

func TestMicrophone_FailReportsAndStaysIdle(t *testing.T) {
	m := NewMicrophone()
	var reported error
	m.OnError = func(err error) { reported = err }

	m.fail(ErrUnsupported)

	assert.True(t, errors.Is(reported, ErrUnsupported))
	assert.True(t, errors.Is(m.Err(), ErrUnsupported))
	assert.Equal(t, 0.0, m.Level())
}
