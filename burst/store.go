package burst

// Store is a fixed-capacity particle arena. Pool[:ActiveCount] are the live
// particles in no particular order; the rest are spares waiting for reuse.
type Store struct {
	Pool        []*Particle
	ActiveCount int
	MaxSize     int
	Dropped     int // spawns refused at capacity
}

// NewStore allocates every particle up front so spawning never allocates.
func NewStore(maxSize int) *Store {
	pool := make([]*Particle, maxSize)
	for i := range pool {
		pool[i] = &Particle{PoolIndex: i}
	}
	return &Store{Pool: pool, MaxSize: maxSize}
}

// Acquire hands out the next spare particle. At capacity it returns nil and
// counts the refusal in Dropped; live particles are never evicted.
func (s *Store) Acquire() *Particle {
	if s.ActiveCount == s.MaxSize {
		s.Dropped++
		return nil
	}
	p := s.Pool[s.ActiveCount]
	p.PoolIndex = s.ActiveCount
	s.ActiveCount++
	return p
}

// Release retires the live particle at index by moving the last live
// particle into its slot. Out-of-range indexes are ignored.
func (s *Store) Release(index int) {
	if index < 0 || index >= s.ActiveCount {
		return
	}
	last := s.ActiveCount - 1
	s.Pool[index], s.Pool[last] = s.Pool[last], s.Pool[index]
	s.Pool[index].PoolIndex = index
	s.ActiveCount = last
}

// Clear retires every particle.
func (s *Store) Clear() {
	s.ActiveCount = 0
}

// Len returns the number of live particles.
func (s *Store) Len() int {
	return s.ActiveCount
}

// ForEachReverse visits live particles from the back. Releasing the visited
// index only moves an already visited particle, so fn may prune as it goes.
func (s *Store) ForEachReverse(fn func(*Particle, int)) {
	for i := s.ActiveCount - 1; i >= 0; i-- {
		fn(s.Pool[i], i)
	}
}

// Counts tallies live particles by variant.
func (s *Store) Counts() [len(Variants)]int {
	var counts [len(Variants)]int
	for _, p := range s.Pool[:s.ActiveCount] {
		counts[p.Variant]++
	}
	return counts
}
