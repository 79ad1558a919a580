package burst

// Config holds the simulation constants. None of them are user-tunable.
type Config struct {
	// Smoothing is the per-frame blend factor from smoothed toward raw volume.
	Smoothing float64

	// EnergyScale converts smoothed volume into spawn energy.
	EnergyScale float64
	// SpawnThreshold is the energy a frame must exceed to spawn anything.
	SpawnThreshold float64
	// BurstScale converts energy into a Main particle count before clamping.
	BurstScale float64
	MinBurst   int
	MaxBurst   int

	// Shards per Main particle are drawn from [ShardMin, ShardMax).
	ShardMin  int
	ShardMax  int
	MiniCount int

	// ColorScale converts smoothed volume into thermal intensity.
	ColorScale float64

	// MaxParticles caps the store. The spawn rules peak near 3220 live
	// particles, so the cap only matters if the constants above change.
	MaxParticles int
}

// Tuning is the active simulation configuration.
var Tuning = Config{
	Smoothing: 0.15,

	EnergyScale:    1000,
	SpawnThreshold: 5,
	BurstScale:     0.5,
	MinBurst:       3,
	MaxBurst:       10,

	ShardMin:  8,
	ShardMax:  14,
	MiniCount: 12,

	ColorScale: 15,

	MaxParticles: 4096,
}
