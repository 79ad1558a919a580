//go:build !js
// +build !js

// Command server serves the visualizer page and relays volume envelopes
// between senders and receivers.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/simukka/thermal-burst/relay"
	"github.com/sirupsen/logrus"
)

func main() {
	port := flag.Int("port", 8080, "HTTP server port")
	staticDir := flag.String("static", ".", "Directory to serve the compiled script and other static files from")
	cleanup := flag.Duration("cleanup", 30*time.Second, "Interval between stale peer sweeps")
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

	hub := relay.NewHub()
	go hub.Run(ctx, *cleanup)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", *port),
		Handler:           newMux(hub, *staticDir),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logrus.WithFields(logrus.Fields{
				"function": "main",
				"error":    err.Error(),
			}).Warn("Shutdown incomplete")
		}
	}()

	logrus.WithFields(logrus.Fields{
		"function": "main",
		"addr":     "http://localhost" + srv.Addr,
		"static":   *staticDir,
		"relay":    relay.Path,
	}).Info("Thermal burst server starting")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logrus.WithFields(logrus.Fields{
			"function": "main",
			"error":    err.Error(),
		}).Fatal("Server failed")
	}
	logrus.WithFields(logrus.Fields{
		"function": "main",
	}).Info("Server stopped")
}
