//go:build !js
// +build !js

// Command viewer is the native desktop visualizer. It reads the volume from
// the relay or from the local microphone.
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/simukka/thermal-burst/audio"
	"github.com/simukka/thermal-burst/audio/capture"
	"github.com/simukka/thermal-burst/burst"
	"github.com/simukka/thermal-burst/common"
	"github.com/simukka/thermal-burst/relay"
	"github.com/sirupsen/logrus"
)

func main() {
	source := flag.String("source", "relay", "Volume source: relay or mic")
	relayURL := flag.String("relay", relay.DefaultURL, "Relay WebSocket URL")
	sampleRate := flag.Float64("sample-rate", capture.DefaultSampleRate, "Microphone sample rate")
	frames := flag.Int("frames", capture.DefaultFramesPerBuffer, "Microphone frames per buffer")
	width := flag.Int("width", 1280, "Initial window width")
	height := flag.Int("height", 720, "Initial window height")
	fullscreen := flag.Bool("fullscreen", false, "Start fullscreen")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "main",
			"level":    *logLevel,
		}).Fatal("Invalid log level")
	}
	logrus.SetLevel(level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	vol := &common.Volume{}
	var (
		status func() string
		mic    *audio.Input
	)

	switch *source {
	case "mic":
		mic = startMic(ctx, *sampleRate, *frames, vol)
		status = mic.Status

	case "relay":
		client := relay.NewClient(*relayURL, vol)
		go client.Run(ctx)
		status = func() string {
			if client.Connected() {
				return "relay"
			}
			return "relay offline"
		}

	default:
		logrus.WithFields(logrus.Fields{
			"function": "main",
			"source":   *source,
		}).Fatal("Unknown source, want relay or mic")
	}

	rng := common.NewSeededRNG(uint32(time.Now().UnixNano()))
	viewer := &Viewer{
		Scene:  burst.NewScene(float64(*width), float64(*height), vol, rng),
		Status: status,
	}

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("Thermal Burst")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(*fullscreen)

	logrus.WithFields(logrus.Fields{
		"function": "main",
		"source":   *source,
		"seed":     rng.Seed(),
	}).Info("Viewer starting")

	err = ebiten.RunGame(viewer)
	stop()
	if mic != nil {
		mic.Close()
	}
	if err != nil && !errors.Is(err, ebiten.Termination) {
		logrus.WithFields(logrus.Fields{
			"function": "main",
			"error":    err.Error(),
		}).Fatal("Viewer failed")
	}
}

// startMic meters the default input into vol. If the device cannot be opened
// the viewer keeps rendering at volume 0.
func startMic(ctx context.Context, sampleRate float64, frames int, vol *common.Volume) *audio.Input {
	return audio.OpenInput(ctx, func() (audio.Device, error) {
		return capture.Open(sampleRate, frames)
	}, vol, func(err error) {
		logrus.WithFields(logrus.Fields{
			"function": "startMic",
			"error":    err.Error(),
		}).Error("Microphone unavailable, volume held")
	})
}
