//go:build !js
// +build !js

// Command sender measures the local microphone level and publishes it to the
// relay for remote visualizers.
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/simukka/thermal-burst/audio"
	"github.com/simukka/thermal-burst/audio/capture"
	"github.com/simukka/thermal-burst/common"
	"github.com/simukka/thermal-burst/relay"
	"github.com/sirupsen/logrus"
)

func main() {
	relayURL := flag.String("relay", relay.DefaultURL, "Relay WebSocket URL")
	interval := flag.Duration("interval", relay.DefaultInterval, "Time between published samples")
	sampleRate := flag.Float64("sample-rate", capture.DefaultSampleRate, "Microphone sample rate")
	frames := flag.Int("frames", capture.DefaultFramesPerBuffer, "Microphone frames per buffer")
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
	mic := audio.OpenInput(ctx, func() (audio.Device, error) {
		return capture.Open(*sampleRate, *frames)
	}, vol, func(err error) {
		logrus.WithFields(logrus.Fields{
			"function": "main",
			"error":    err.Error(),
		}).Error("Microphone stopped")
		stop()
	})
	if err := mic.Err(); err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "main",
			"error":    err.Error(),
		}).Fatal("Microphone unavailable")
	}
	defer mic.Close()

	target, err := relay.WithPeer(*relayURL, "sender")
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "main",
			"relay":    *relayURL,
			"error":    err.Error(),
		}).Fatal("Invalid relay URL")
	}

	publisher := relay.NewPublisher(target, vol)
	publisher.Interval = *interval

	logrus.WithFields(logrus.Fields{
		"function": "main",
		"relay":    *relayURL,
		"interval": *interval,
	}).Info("Sender starting")

	if err := publisher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logrus.WithFields(logrus.Fields{
			"function": "main",
			"error":    err.Error(),
		}).Error("Publisher stopped")
	}
}
