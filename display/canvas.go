package display

import (
	"image/color"
	"math"
	"strconv"

	"github.com/gopherjs/gopherjs/js"
)

// CanvasSurface draws a scene onto a 2D canvas context.
type CanvasSurface struct {
	Canvas *js.Object
	Ctx    *js.Object
	Width  float64
	Height float64
}

// NewCanvasSurface wraps canvas and its 2D context.
func NewCanvasSurface(canvas *js.Object) *CanvasSurface {
	return &CanvasSurface{
		Canvas: canvas,
		Ctx:    canvas.Call("getContext", "2d"),
		Width:  canvas.Get("width").Float(),
		Height: canvas.Get("height").Float(),
	}
}

// SetSize resizes the backing canvas. The browser resets its contents.
func (c *CanvasSurface) SetSize(width, height float64) {
	c.Width = width
	c.Height = height
	c.Canvas.Set("width", int(width))
	c.Canvas.Set("height", int(height))
}

// Clear fills the canvas with the background color.
func (c *CanvasSurface) Clear() {
	c.Ctx.Set("fillStyle", Theme.BackgroundColor)
	c.Ctx.Call("fillRect", 0, 0, c.Width, c.Height)
}

// FillCircle draws a filled circle of the given diameter.
func (c *CanvasSurface) FillCircle(x, y, diameter float64, col color.NRGBA) {
	c.Ctx.Set("fillStyle", rgbaString(col))
	c.Ctx.Call("beginPath")
	c.Ctx.Call("arc", x, y, diameter/2, 0, math.Pi*2)
	c.Ctx.Call("fill")
}

// rgbaString formats a color as a CSS rgba() value.
func rgbaString(c color.NRGBA) string {
	return "rgba(" +
		strconv.Itoa(int(c.R)) + "," +
		strconv.Itoa(int(c.G)) + "," +
		strconv.Itoa(int(c.B)) + "," +
		strconv.FormatFloat(float64(c.A)/255, 'f', 3, 64) + ")"
}
