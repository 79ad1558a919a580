package burst

import "math"

// Energy converts a smoothed volume into spawn energy.
func Energy(smoothed float64) float64 {
	return smoothed * Tuning.EnergyScale
}

// BurstCount returns how many Main particles a frame with the given energy
// spawns. The result is always within [Tuning.MinBurst, Tuning.MaxBurst].
func BurstCount(energy float64) int {
	n := int(math.Round(energy * Tuning.BurstScale))
	if n < Tuning.MinBurst {
		return Tuning.MinBurst
	}
	if n > Tuning.MaxBurst {
		return Tuning.MaxBurst
	}
	return n
}

// Spawner turns smoothed volume into bursts of particles.
type Spawner struct {
	RNG Random
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng Random) *Spawner {
	return &Spawner{RNG: rng}
}

// Spawn adds a burst at (x, y) to store if the smoothed volume carries enough
// energy. It returns the number of particles added.
func (sp *Spawner) Spawn(store *Store, smoothed, x, y float64) int {
	energy := Energy(smoothed)
	if energy <= Tuning.SpawnThreshold {
		return 0
	}

	added := 0
	count := BurstCount(energy)
	for i := 0; i < count; i++ {
		main := store.Acquire()
		if main == nil {
			continue
		}
		main.Spawn(Main, x, y, 0, smoothed, sp.RNG)
		added++

		// Shards gather around the burst origin, not wherever main ends up.
		added += sp.spawnShards(store, x, y, main.Size, smoothed)
	}
	return added
}

// spawnShards adds the dependent Shard and Mini particles of one Main particle.
func (sp *Spawner) spawnShards(store *Store, x, y, parentSize, smoothed float64) int {
	added := 0

	shards := sp.RNG.RandomInt(Tuning.ShardMin, Tuning.ShardMax)
	for i := 0; i < shards; i++ {
		if p := store.Acquire(); p != nil {
			p.Spawn(Shard, x, y, parentSize, smoothed, sp.RNG)
			added++
		}
	}

	for i := 0; i < Tuning.MiniCount; i++ {
		if p := store.Acquire(); p != nil {
			p.Spawn(Mini, x, y, parentSize, smoothed, sp.RNG)
			added++
		}
	}
	return added
}
