package buffer

// stats caches the extrema of all samples in a buffer.
type stats struct {
	min, max float64
	valid    bool
	rescans  int
}

// Invalidate marks the cached statistics as stale.
// Call this after modifying samples directly via Data or Row.
func (b *Buffer) Invalidate() {
	b.stats.valid = false
}

// StatsValid reports whether the cached extrema reflect the current samples.
func (b *Buffer) StatsValid() bool {
	return b.stats.valid
}

// Rescans returns how many times the extrema have been recomputed.
func (b *Buffer) Rescans() int {
	return b.stats.rescans
}

// MinMax returns the smallest and largest sample over all channels.
// The result is cached until the next mutation.
func (b *Buffer) MinMax() (lo, hi float64) {
	if !b.stats.valid {
		b.Rescan()
	}
	return b.stats.min, b.stats.max
}

// Rescan recomputes the extrema unconditionally.
func (b *Buffer) Rescan() {
	lo, hi := b.data[0], b.data[0]
	for _, v := range b.data[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	b.stats.min, b.stats.max = lo, hi
	b.stats.valid = true
	b.stats.rescans++
}
