// Package audio turns microphone input into a single loudness level.
package audio

import "math"

// RMS returns the root mean square of samples normalized to [-1, 1], clamped
// to [0, 1]. An empty buffer is silence.
func RMS(samples []float32) float64 {
	if len(samples) == 0 {
		return 0
	}
	var sum float64
	for _, s := range samples {
		v := float64(s)
		sum += v * v
	}
	level := math.Sqrt(sum / float64(len(samples)))
	if level > 1 {
		return 1
	}
	return level
}
