package relay

import (
	"errors"

	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/thermal-burst/common"
)

// Receiver is the browser receiving end of the relay, built on the page's
// WebSocket. It does not reconnect: after a drop the volume holds its last
// value until the page is reloaded.
type Receiver struct {
	URL    string
	Volume *common.Volume

	Received int
	Rejected int

	socket    *js.Object
	connected bool
}

// NewReceiver creates a receiver for url writing into vol.
func NewReceiver(url string, vol *common.Volume) *Receiver {
	return &Receiver{URL: url, Volume: vol}
}

// PageURL derives the relay URL from the current page location.
func PageURL() string {
	if js.Global == nil || js.Global == js.Undefined {
		return DefaultURL
	}
	loc := js.Global.Get("location")
	if loc == js.Undefined {
		return DefaultURL
	}
	return URLForPage(loc.Get("protocol").String(), loc.Get("host").String())
}

// Level returns the last received volume.
func (r *Receiver) Level() float64 {
	return r.Volume.Level()
}

// Connect opens the socket and installs its handlers.
func (r *Receiver) Connect() {
	r.socket = js.Global.Get("WebSocket").New(r.URL)

	r.socket.Set("onopen", func(event *js.Object) {
		r.connected = true
		common.Debug("Connected to relay", r.URL)
	})

	r.socket.Set("onmessage", func(event *js.Object) {
		r.HandleMessage(event.Get("data").String())
	})

	r.socket.Set("onerror", func(event *js.Object) {
		common.DebugWarn("Relay connection error")
	})

	r.socket.Set("onclose", func(event *js.Object) {
		r.connected = false
		common.DebugWarn("Relay connection closed, holding volume at", r.Volume.Load())
	})
}

// HandleMessage applies one text frame.
func (r *Receiver) HandleMessage(data string) {
	v, err := DecodeVolume([]byte(data))
	switch {
	case err == nil:
		r.Volume.Store(v)
		r.Received++
	case errors.Is(err, ErrNotAudio):
	default:
		r.Rejected++
		common.DebugWarn("Ignoring relay message:", err.Error())
	}
}

// IsConnected reports whether the socket is open.
func (r *Receiver) IsConnected() bool {
	return r.connected
}

// Close closes the socket.
func (r *Receiver) Close() {
	if r.socket != nil {
		r.socket.Call("close")
		r.socket = nil
	}
	r.connected = false
}
