// Package burst simulates volume-driven particle bursts.
package burst

import "image/color"

// Source exposes the current raw volume.
type Source interface {
	Level() float64
}

// Surface is what a scene draws on.
type Surface interface {
	// Clear fills the whole surface with solid black.
	Clear()
	// FillCircle draws a filled circle of the given diameter centered at (x, y).
	FillCircle(x, y, diameter float64, c color.NRGBA)
}

// Scene is the per-frame pipeline: source, smoother, spawner, store, renderer.
// It is not safe for concurrent use; only Source may be written from other
// goroutines.
type Scene struct {
	Width, Height float64

	Source    Source
	Smoother  Smoother
	Spawner   *Spawner
	Particles *Store

	Raw     float64 // raw volume sampled by the last tick
	Spawned int     // particles added by the last tick
	Frame   uint64
}

// NewScene creates a scene of the given size reading volume from source.
func NewScene(width, height float64, source Source, rng Random) *Scene {
	return &Scene{
		Width:     width,
		Height:    height,
		Source:    source,
		Spawner:   NewSpawner(rng),
		Particles: NewStore(Tuning.MaxParticles),
	}
}

// Center returns the burst origin.
func (s *Scene) Center() (x, y float64) {
	return s.Width / 2, s.Height / 2
}

// Resize changes the scene dimensions. Live particles are kept where they are.
func (s *Scene) Resize(width, height float64) {
	s.Width = width
	s.Height = height
}

// Smoothed returns the current smoothed volume.
func (s *Scene) Smoothed() float64 {
	return s.Smoother.Value
}

// Energy returns the spawn energy of the current smoothed volume.
func (s *Scene) Energy() float64 {
	return Energy(s.Smoother.Value)
}

// Tick runs one frame: sample, smooth, spawn, then update, prune and draw in
// a single reverse pass. A nil surface advances the simulation without drawing.
func (s *Scene) Tick(surface Surface) {
	s.Frame++

	s.Raw = 0
	if s.Source != nil {
		s.Raw = s.Source.Level()
	}
	smoothed := s.Smoother.Update(s.Raw)

	cx, cy := s.Center()
	s.Spawned = s.Spawner.Spawn(s.Particles, smoothed, cx, cy)

	if surface != nil {
		surface.Clear()
	}
	s.Particles.ForEachReverse(func(p *Particle, idx int) {
		p.Update()
		if p.Dead() {
			s.Particles.Release(idx)
			return
		}
		if surface != nil {
			surface.FillCircle(p.X, p.Y, p.Size, p.NRGBA())
		}
	})
}

// Draw clears surface and draws every live particle without advancing.
func (s *Scene) Draw(surface Surface) {
	surface.Clear()
	s.Particles.ForEachReverse(func(p *Particle, _ int) {
		surface.FillCircle(p.X, p.Y, p.Size, p.NRGBA())
	})
}
