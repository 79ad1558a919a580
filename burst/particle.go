package burst

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Random is the randomness a burst needs. common.SeededRNG satisfies it.
type Random interface {
	RandomInt(min, max int) int
	RandomFloat(min, max float64) float64
	RandomDirection() (x, y float64)
}

// Variant selects the spawn ranges and decay constants of a particle.
type Variant uint8

const (
	Main Variant = iota
	Shard
	Mini
)

func (v Variant) String() string {
	switch v {
	case Main:
		return "main"
	case Shard:
		return "shard"
	case Mini:
		return "mini"
	}
	return "unknown"
}

// VariantSpec is the per-variant constant record.
type VariantSpec struct {
	Spread      float64 // position jitter, fraction of the parent Main size
	SpeedMin    float64
	SpeedMax    float64
	SizeMin     float64
	SizeMax     float64
	VolumeBoost float64 // extra size per unit of smoothed volume
	Alpha       int     // initial alpha
	Decay       int     // alpha lost per update
	Damping     float64 // velocity multiplier per update
}

// Lifetime returns the number of updates after which a particle of this
// variant is dead.
func (s VariantSpec) Lifetime() int {
	return (s.Alpha + s.Decay - 1) / s.Decay
}

// Variants is indexed by Variant.
var Variants = [...]VariantSpec{
	Main: {
		SpeedMin: 1, SpeedMax: 4,
		SizeMin: 40, SizeMax: 90, VolumeBoost: 800,
		Alpha: 255, Decay: 12, Damping: 0.90,
	},
	Shard: {
		Spread:   0.2,
		SpeedMin: 2, SpeedMax: 6,
		SizeMin: 4, SizeMax: 12,
		Alpha: 200, Decay: 18, Damping: 0.88,
	},
	Mini: {
		Spread:   0.3,
		SpeedMin: 0.5, SpeedMax: 2,
		SizeMin: 1, SizeMax: 3,
		Alpha: 180, Decay: 15, Damping: 0.92,
	},
}

// Spec returns the constant record for v.
func (v Variant) Spec() VariantSpec {
	return Variants[v]
}

// Particle is one decaying dot. Size and Color are fixed at spawn; only the
// position, velocity and alpha change afterwards.
type Particle struct {
	X, Y      float64 // Position
	VX, VY    float64 // Velocity
	Size      float64 // Diameter
	Alpha     int
	Color     colorful.Color
	Variant   Variant
	PoolIndex int // Index in store for swap-and-pop
}

// Spawn (re)initializes p as a new particle of variant v around (x, y).
// parentSize is the size of the Main particle a Shard or Mini belongs to.
func (p *Particle) Spawn(v Variant, x, y, parentSize, smoothed float64, rng Random) {
	spec := &Variants[v]

	p.Variant = v
	p.X, p.Y = x, y
	if spec.Spread > 0 {
		r := parentSize * spec.Spread
		p.X += rng.RandomFloat(-r, r)
		p.Y += rng.RandomFloat(-r, r)
	}

	dx, dy := rng.RandomDirection()
	speed := rng.RandomFloat(spec.SpeedMin, spec.SpeedMax)
	p.VX, p.VY = dx*speed, dy*speed

	p.Size = rng.RandomFloat(spec.SizeMin, spec.SizeMax) + smoothed*spec.VolumeBoost
	p.Alpha = spec.Alpha
	p.Color = ThermalColor(Intensity(smoothed))
}

// Update advances the particle by one frame.
func (p *Particle) Update() {
	spec := &Variants[p.Variant]
	p.X += p.VX
	p.Y += p.VY
	p.VX *= spec.Damping
	p.VY *= spec.Damping
	p.Alpha -= spec.Decay
}

// Dead reports whether the particle has faded out.
func (p *Particle) Dead() bool {
	return p.Alpha <= 0
}

// NRGBA returns the fixed color at the current alpha.
func (p *Particle) NRGBA() color.NRGBA {
	return NRGBA(p.Color, p.Alpha)
}
