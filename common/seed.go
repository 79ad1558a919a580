package common

import "math"

// SeededRNG is a Mulberry32 generator. Two generators with the same seed
// yield the same bursts for the same volume history.
type SeededRNG struct {
	seed  uint32
	state uint32
}

// NewSeededRNG returns a generator starting at seed.
func NewSeededRNG(seed uint32) *SeededRNG {
	return &SeededRNG{seed: seed, state: seed}
}

// Seed returns the starting seed.
func (r *SeededRNG) Seed() uint32 {
	return r.seed
}

// Reset rewinds to the start of the sequence.
func (r *SeededRNG) Reset() {
	r.state = r.seed
}

func (r *SeededRNG) next() uint32 {
	r.state += 0x6D2B79F5
	z := r.state
	z = (z ^ z>>15) * (z | 1)
	z ^= z + (z^z>>7)*(z|61)
	return z ^ z>>14
}

// Random returns a value in [0, 1).
func (r *SeededRNG) Random() float64 {
	return float64(r.next()) / (1 << 32)
}

// RandomInt returns an int in [min, max).
func (r *SeededRNG) RandomInt(min, max int) int {
	return min + int(r.Random()*float64(max-min))
}

// RandomFloat returns a float in [min, max).
func (r *SeededRNG) RandomFloat(min, max float64) float64 {
	return min + r.Random()*(max-min)
}

// RandomDirection returns a unit vector at a uniformly random angle.
func (r *SeededRNG) RandomDirection() (x, y float64) {
	return math.Sincos(r.Random() * 2 * math.Pi)
}
