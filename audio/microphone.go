package audio

import (
	"fmt"

	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/thermal-burst/common"
)

// DefaultWindow is the analyser window in samples.
const DefaultWindow = 1024

// Microphone is the browser level meter: getUserMedia feeding a Web Audio
// AnalyserNode, polled once per frame. Until the stream is acquired, and
// forever if acquisition fails, Level reports 0.
type Microphone struct {
	Window  int
	OnError func(error)

	ctx      *js.Object // AudioContext
	analyser *js.Object // AnalyserNode
	buffer   *js.Object // Float32Array the analyser fills
	samples  []float32
	ready    bool
	err      error
}

// NewMicrophone creates a microphone source with the default window.
func NewMicrophone() *Microphone {
	return &Microphone{Window: DefaultWindow}
}

// Start requests microphone permission and attaches the analyser once granted.
// Failures are reported through OnError.
func (m *Microphone) Start() {
	if m.ctx != nil {
		return
	}

	audioCtx := js.Global.Get("AudioContext")
	if audioCtx == nil || audioCtx == js.Undefined {
		audioCtx = js.Global.Get("webkitAudioContext")
	}
	devices := js.Global.Get("navigator").Get("mediaDevices")
	if audioCtx == nil || audioCtx == js.Undefined || devices == nil || devices == js.Undefined {
		m.fail(ErrUnsupported)
		return
	}

	m.ctx = audioCtx.New()
	constraints := map[string]interface{}{"audio": true, "video": false}

	devices.Call("getUserMedia", constraints).Call("then", func(stream *js.Object) {
		source := m.ctx.Call("createMediaStreamSource", stream)
		m.analyser = m.ctx.Call("createAnalyser")
		m.analyser.Set("fftSize", m.Window)
		source.Call("connect", m.analyser)

		m.buffer = js.Global.Get("Float32Array").New(m.Window)
		m.samples = make([]float32, m.Window)
		m.ready = true
		common.Debug("Microphone acquired, window", m.Window)
	}).Call("catch", func(err *js.Object) {
		m.fail(fmt.Errorf("%w: %s", ErrAcquire, err.Call("toString").String()))
	})
}

// Resume restarts a suspended AudioContext. Browsers suspend contexts created
// before a user gesture, so the page calls this from a click handler.
func (m *Microphone) Resume() {
	if m.ctx == nil {
		return
	}
	if m.ctx.Get("state").String() == "suspended" {
		m.ctx.Call("resume")
	}
}

// Level returns the RMS level of the most recent analyser window.
func (m *Microphone) Level() float64 {
	if !m.ready {
		return 0
	}
	m.analyser.Call("getFloatTimeDomainData", m.buffer)
	for i := range m.samples {
		m.samples[i] = float32(m.buffer.Index(i).Float())
	}
	return RMS(m.samples)
}

// Ready reports whether the input stream is attached.
func (m *Microphone) Ready() bool {
	return m.ready
}

// Err returns the acquisition error, if any.
func (m *Microphone) Err() error {
	return m.err
}

func (m *Microphone) fail(err error) {
	m.err = err
	m.ready = false
	common.DebugError("Microphone error:", err.Error())
	if m.OnError != nil {
		m.OnError(err)
	}
}
