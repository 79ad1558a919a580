//go:build js
// +build js

package main

import (
	"time"

	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/thermal-burst/audio"
	"github.com/simukka/thermal-burst/burst"
	"github.com/simukka/thermal-burst/common"
	"github.com/simukka/thermal-burst/display"
	"github.com/simukka/thermal-burst/relay"
)

func main() {
	doc := js.Global.Get("document")
	canvas := doc.Call("getElementById", display.Theme.CanvasID)
	if canvas == nil || canvas == js.Undefined {
		panic("canvas element not found")
	}

	rng := common.NewSeededRNG(uint32(time.Now().UnixNano()))

	var (
		source   burst.Source
		status   func() string
		onClick  func()
		shutdown func()
	)

	params := js.Global.Get("URLSearchParams").New(js.Global.Get("location").Get("search"))
	if params.Call("get", "source").String() == "mic" {
		mic := audio.NewMicrophone()
		mic.OnError = func(err error) {
			common.DebugError("Microphone unavailable, staying idle:", err.Error())
		}
		mic.Start()

		source = mic
		status = func() string {
			switch {
			case mic.Err() != nil:
				return "mic error"
			case mic.Ready():
				return "mic"
			}
			return "mic pending"
		}
		onClick = mic.Resume
	} else {
		receiver := relay.NewReceiver(relay.PageURL(), &common.Volume{})
		receiver.Connect()

		source = receiver
		status = func() string {
			if receiver.IsConnected() {
				return "relay"
			}
			return "relay offline"
		}
		shutdown = receiver.Close
	}

	app := display.NewApp(canvas, burst.NewScene(0, 0, source, rng))
	app.Status = status
	app.OnClick = onClick
	app.Start()

	js.Global.Set("ThermalBurst", map[string]interface{}{
		"toggleStats": func() {
			app.Overlay.Toggle()
		},
		"particles": func() int {
			return app.Scene.Particles.Len()
		},
		"seed": func() uint32 {
			return rng.Seed()
		},
		"debug": func(on bool) {
			common.EnableDebug = on
		},
	})

	js.Global.Call("addEventListener", "beforeunload", func() {
		app.Stop()
		if shutdown != nil {
			shutdown()
		}
	})

	select {}
}
