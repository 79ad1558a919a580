package burst

import (
	"image/color"
	"testing"

	"github.com/simukka/thermal-burst/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type circle struct {
	X, Y, Diameter float64
	Color          color.NRGBA
}

// recordingSurface remembers what was drawn since the last Clear.
type recordingSurface struct {
	clears  int
	circles []circle
}

func (r *recordingSurface) Clear() {
	r.clears++
	r.circles = r.circles[:0]
}

func (r *recordingSurface) FillCircle(x, y, diameter float64, c color.NRGBA) {
	r.circles = append(r.circles, circle{x, y, diameter, c})
}

// scriptedSource replays levels, then reports 0.
type scriptedSource struct {
	levels []float64
	frame  int
}

func (s *scriptedSource) Level() float64 {
	if s.frame >= len(s.levels) {
		s.frame++
		return 0
	}
	v := s.levels[s.frame]
	s.frame++
	return v
}

func TestScene_IdleStaysEmpty(t *testing.T) {
	var vol common.Volume
	scene := NewScene(800, 600, &vol, common.NewSeededRNG(1))
	surface := &recordingSurface{}

	for i := 0; i < 120; i++ {
		scene.Tick(surface)
	}

	assert.Equal(t, 0.0, scene.Smoothed())
	assert.Equal(t, 0, scene.Particles.Len())
	assert.Equal(t, 120, surface.clears)
	assert.Empty(t, surface.circles)
}

func TestScene_NilSourceIsIdle(t *testing.T) {
	scene := NewScene(800, 600, nil, common.NewSeededRNG(1))
	scene.Tick(nil)

	assert.Equal(t, 0, scene.Particles.Len())
	assert.Equal(t, uint64(1), scene.Frame)
}

func TestScene_SmallPulseDoesNotSpawn(t *testing.T) {
	// 0.02 for one frame only reaches a smoothed 0.003, energy 3.
	scene := NewScene(800, 600, &scriptedSource{levels: []float64{0.02}}, common.NewSeededRNG(2))

	for i := 0; i < 30; i++ {
		scene.Tick(nil)
		assert.LessOrEqual(t, scene.Energy(), 5.0)
	}
	assert.Equal(t, 0, scene.Particles.Len())
}

func TestScene_PulseBurstsThenDrains(t *testing.T) {
	// 0.04 for one frame: energy 6 on frame 1, 5.1 on frame 2, 4.3 on frame 3.
	scene := NewScene(800, 600, &scriptedSource{levels: []float64{0.04}}, common.NewSeededRNG(3))
	surface := &recordingSurface{}

	scene.Tick(surface)
	require.Greater(t, scene.Spawned, 0)
	assert.Equal(t, 3, scene.Particles.Counts()[Main])

	scene.Tick(surface)
	require.Greater(t, scene.Spawned, 0, "energy 5.1 still exceeds the threshold")
	assert.Equal(t, 6, scene.Particles.Counts()[Main])

	scene.Tick(surface)
	assert.Equal(t, 0, scene.Spawned)

	// The last burst was updated once on frame 2; Main particles need 22 updates.
	for scene.Frame < 22 {
		scene.Tick(surface)
	}
	counts := scene.Particles.Counts()
	assert.Equal(t, 3, counts[Main])
	assert.Equal(t, 0, counts[Shard])
	assert.Equal(t, 0, counts[Mini])

	scene.Tick(surface)
	assert.Equal(t, uint64(23), scene.Frame)
	assert.Equal(t, 0, scene.Particles.Len())
	assert.Empty(t, surface.circles)
}

func TestScene_NeverDrawsDeadParticles(t *testing.T) {
	levels := make([]float64, 40)
	for i := range levels {
		levels[i] = 0.03
	}
	scene := NewScene(1024, 768, &scriptedSource{levels: levels}, common.NewSeededRNG(4))
	surface := &recordingSurface{}

	for i := 0; i < 80; i++ {
		scene.Tick(surface)
		assert.Len(t, surface.circles, scene.Particles.Len())
		for _, c := range surface.circles {
			assert.Greater(t, c.Color.A, uint8(0))
		}
	}
}

func TestScene_BurstsAtCenter(t *testing.T) {
	var vol common.Volume
	vol.Store(0.05)
	scene := NewScene(1000, 500, &vol, common.NewSeededRNG(5))

	for scene.Spawned == 0 {
		scene.Tick(nil)
	}

	scene.Particles.ForEachReverse(func(p *Particle, _ int) {
		if p.Variant == Main {
			// one update applied after spawning
			assert.InDelta(t, 500.0, p.X-p.VX/Variants[Main].Damping, 1e-9)
			assert.InDelta(t, 250.0, p.Y-p.VY/Variants[Main].Damping, 1e-9)
		}
	})
}

func TestScene_ResizePreservesParticles(t *testing.T) {
	var vol common.Volume
	vol.Store(0.05)
	scene := NewScene(800, 600, &vol, common.NewSeededRNG(6))
	for i := 0; i < 10; i++ {
		scene.Tick(nil)
	}
	before := scene.Particles.Len()
	require.Greater(t, before, 0)

	scene.Resize(1920, 1080)

	assert.Equal(t, before, scene.Particles.Len())
	x, y := scene.Center()
	assert.Equal(t, 960.0, x)
	assert.Equal(t, 540.0, y)
}

func TestScene_DrawDoesNotAdvance(t *testing.T) {
	var vol common.Volume
	vol.Store(0.05)
	scene := NewScene(800, 600, &vol, common.NewSeededRNG(7))
	for i := 0; i < 5; i++ {
		scene.Tick(nil)
	}
	frame, live := scene.Frame, scene.Particles.Len()
	surface := &recordingSurface{}

	scene.Draw(surface)
	scene.Draw(surface)

	assert.Equal(t, frame, scene.Frame)
	assert.Equal(t, live, scene.Particles.Len())
	assert.Equal(t, 2, surface.clears)
	assert.Len(t, surface.circles, live)
}

func TestScene_SustainedLoudnessStaysUnderCap(t *testing.T) {
	var vol common.Volume
	vol.Store(1)
	scene := NewScene(800, 600, &vol, common.NewSeededRNG(8))

	for i := 0; i < 300; i++ {
		scene.Tick(nil)
	}

	assert.LessOrEqual(t, scene.Particles.Len(), 3220)
	assert.Equal(t, 0, scene.Particles.Dropped)
}
