//go:build !js
// +build !js

// Package capture reads the default input device through PortAudio and
// publishes its RMS level.
package capture

import (
	"fmt"

	"github.com/gordonklaus/portaudio"
	"github.com/simukka/thermal-burst/audio"
	"github.com/sirupsen/logrus"
)

var _ audio.Device = (*Microphone)(nil)

const (
	DefaultSampleRate      = 44100
	DefaultFramesPerBuffer = 1024
)

// Microphone is an open PortAudio input stream.
type Microphone struct {
	stream *portaudio.Stream
	buffer []float32
}

// Open initializes PortAudio and starts a mono stream on the default input.
func Open(sampleRate float64, framesPerBuffer int) (*Microphone, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("%w: initialize portaudio: %v", audio.ErrAcquire, err)
	}

	buffer := make([]float32, framesPerBuffer)
	stream, err := portaudio.OpenDefaultStream(1, 0, sampleRate, len(buffer), buffer)
	if err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("%w: open default stream: %v", audio.ErrAcquire, err)
	}

	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return nil, fmt.Errorf("%w: start stream: %v", audio.ErrAcquire, err)
	}

	logrus.WithFields(logrus.Fields{
		"function":    "capture.Open",
		"sample_rate": sampleRate,
		"frames":      framesPerBuffer,
	}).Info("Microphone stream started")

	return &Microphone{
		stream: stream,
		buffer: buffer,
	}, nil
}

// Meter returns a level meter over the open stream. Input overflows drop one
// buffer; any other read error ends the meter.
func (m *Microphone) Meter() *audio.Meter {
	return &audio.Meter{
		Reader:    m.stream,
		Samples:   m.buffer,
		Transient: Overflowed,
	}
}

// Overflowed reports whether err is a PortAudio input overflow.
func Overflowed(err error) bool {
	if err != portaudio.InputOverflowed {
		return false
	}
	logrus.WithFields(logrus.Fields{
		"function": "capture.Overflowed",
	}).Debug("Input overflowed, dropping buffer")
	return true
}

// Close stops the stream and releases PortAudio. Stop any meter reading from
// the stream first.
func (m *Microphone) Close() error {
	var err error
	if m.stream != nil {
		if stopErr := m.stream.Stop(); stopErr != nil {
			err = stopErr
		}
		if closeErr := m.stream.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}
	portaudio.Terminate()
	return err
}
