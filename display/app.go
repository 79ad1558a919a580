// Package display runs a burst scene on a browser canvas.
package display

import (
	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/thermal-burst/burst"
	"github.com/simukka/thermal-burst/common"
)

// FrameDuration is the minimum time between simulation ticks in
// milliseconds. It caps high refresh rate displays near 60 ticks a second.
const FrameDuration = 15.0

// App drives a scene from requestAnimationFrame onto a full-window canvas.
type App struct {
	Scene   *burst.Scene
	Surface *CanvasSurface
	Overlay *StatsOverlay

	// Status describes the volume source in the overlay.
	Status func() string
	// OnClick runs on every click on the page.
	OnClick func()

	AnimationFrameID int
	LastFrameTime    float64
	Running          bool
}

// NewApp binds scene to canvas.
func NewApp(canvas *js.Object, scene *burst.Scene) *App {
	return &App{
		Scene:   scene,
		Surface: NewCanvasSurface(canvas),
		Overlay: NewStatsOverlay(),
	}
}

// Start fits the canvas to the window and begins the frame loop.
func (a *App) Start() {
	if a.Running {
		return
	}
	a.Running = true

	a.Resize()
	js.Global.Call("addEventListener", "resize", func() {
		a.Resize()
	})
	a.SetupInputHandlers()

	a.AnimationFrameID = js.Global.Call("requestAnimationFrame", a.loop).Int()
	common.Debug("Visualizer started", a.Scene.Width, "x", a.Scene.Height)
}

// Stop cancels the pending frame.
func (a *App) Stop() {
	if !a.Running {
		return
	}
	a.Running = false
	js.Global.Call("cancelAnimationFrame", a.AnimationFrameID)
}

// Resize matches the canvas and scene to the window.
func (a *App) Resize() {
	resize(a.Surface, a.Scene, js.Global.Get("innerWidth").Float(), js.Global.Get("innerHeight").Float())
}

// resizableSurface is a surface whose backing store can change size.
type resizableSurface interface {
	burst.Surface
	SetSize(width, height float64)
}

// resize applies new dimensions to surface and scene and clears the surface
// to black. Live particles are kept.
func resize(surface resizableSurface, scene *burst.Scene, width, height float64) {
	surface.SetSize(width, height)
	scene.Resize(width, height)
	surface.Clear()
}

func (a *App) loop(currentTime float64) {
	if !a.Running {
		return
	}
	a.AnimationFrameID = js.Global.Call("requestAnimationFrame", a.loop).Int()

	a.Overlay.UpdateFPS(currentTime)

	if currentTime-a.LastFrameTime < FrameDuration {
		return
	}
	a.LastFrameTime = currentTime

	a.Scene.Tick(a.Surface)

	if a.Overlay.Visible {
		status := ""
		if a.Status != nil {
			status = a.Status()
		}
		a.Overlay.Render(a.Surface.Ctx, StatsFor(a.Scene, a.Overlay.CurrentFPS, status))
	}
}
