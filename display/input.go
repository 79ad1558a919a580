package display

import (
	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/thermal-burst/common"
)

// Key codes the page reacts to.
const (
	KeyFullscreen = 70  // F
	KeyStats      = 121 // F10
)

// SetupInputHandlers installs keyboard and click handlers.
func (a *App) SetupInputHandlers() {
	doc := js.Global.Get("document")

	doc.Call("addEventListener", "keydown", func(event *js.Object) {
		switch event.Get("keyCode").Int() {
		case KeyStats:
			a.Overlay.Toggle()
			event.Call("preventDefault")
		case KeyFullscreen:
			requestFullscreen(a.Surface.Canvas)
		}
	})

	// Browsers keep audio suspended until the user interacts with the page.
	doc.Call("addEventListener", "click", func(event *js.Object) {
		if a.OnClick != nil {
			a.OnClick()
		}
	})
}

func requestFullscreen(canvas *js.Object) {
	for _, method := range []string{"requestFullscreen", "webkitRequestFullscreen", "mozRequestFullScreen"} {
		if fn := canvas.Get(method); fn != nil && fn != js.Undefined {
			canvas.Call(method)
			return
		}
	}
	common.DebugWarn("Fullscreen not supported")
}
