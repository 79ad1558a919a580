//go:build !js
// +build !js

package main

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/simukka/thermal-burst/burst"
	"github.com/simukka/thermal-burst/display"
)

// imageSurface draws particles onto an ebiten image.
type imageSurface struct {
	img *ebiten.Image
}

func (s imageSurface) Clear() {
	s.img.Fill(color.Black)
}

func (s imageSurface) FillCircle(x, y, diameter float64, c color.NRGBA) {
	vector.DrawFilledCircle(s.img, float32(x), float32(y), float32(diameter/2), c, true)
}

// Viewer runs a scene as an ebiten game. Update advances the simulation,
// Draw renders the live particles.
type Viewer struct {
	Scene     *burst.Scene
	Status    func() string
	ShowStats bool
}

func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF10) {
		v.ShowStats = !v.ShowStats
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	v.Scene.Tick(nil)
	return nil
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	v.Scene.Draw(imageSurface{img: screen})

	if v.ShowStats {
		status := ""
		if v.Status != nil {
			status = v.Status()
		}
		stats := display.StatsFor(v.Scene, ebiten.ActualFPS(), status)
		var b strings.Builder
		for _, line := range stats.Lines() {
			b.WriteString(line.Label)
			if !line.Heading {
				b.WriteString(": ")
				b.WriteString(line.Value)
			}
			b.WriteByte('\n')
		}
		ebitenutil.DebugPrint(screen, b.String())
	}
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := float64(outsideWidth), float64(outsideHeight)
	if w != v.Scene.Width || h != v.Scene.Height {
		v.Scene.Resize(w, h)
	}
	return outsideWidth, outsideHeight
}
