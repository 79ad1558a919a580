package burst

// Smoother blends the raw volume into a display-stable value once per frame.
type Smoother struct {
	Value float64
}

// Update moves the smoothed value toward raw by Tuning.Smoothing and returns it.
func (s *Smoother) Update(raw float64) float64 {
	s.Value = Lerp(s.Value, raw, Tuning.Smoothing)
	return s.Value
}

// Lerp interpolates linearly from a to b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
