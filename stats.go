package imageaccess

import (
	"fmt"
	"log/slog"
	"math"
)

// GetMin returns the smallest sample of the image over all channels.
// The value is cached and only recomputed after a write.
func (img *ImageAccess) GetMin() float64 {
	lo, _ := img.minMax()
	return lo
}

// GetMax returns the largest sample of the image over all channels.
// The value is cached and only recomputed after a write.
func (img *ImageAccess) GetMax() float64 {
	_, hi := img.minMax()
	return hi
}

func (img *ImageAccess) minMax() (lo, hi float64) {
	if !img.buf.StatsValid() {
		Logger().Debug("imageaccess: rescanning statistics",
			slog.Int("nx", img.buf.Width()),
			slog.Int("ny", img.buf.Height()),
			slog.Int("rescans", img.buf.Rescans()))
	}
	return img.buf.MinMax()
}

// Recompute rescans the image for its extrema even if the cache is valid.
func (img *ImageAccess) Recompute() {
	img.buf.Rescan()
}

// StatsRecomputes returns how many times the extrema of the current buffer
// have been computed.
func (img *ImageAccess) StatsRecomputes() int {
	return img.buf.Rescans()
}

// Normalize returns a new image of the same shape and format with every
// sample mapped to [0, 1] by (v - min) / (max - min).
//
// A constant image has no range to map and fails with ErrDegenerateRange.
func (img *ImageAccess) Normalize() (*ImageAccess, error) {
	lo, hi := img.minMax()
	if hi == lo {
		return nil, fmt.Errorf("%w: Normalize: every sample equals %v", ErrDegenerateRange, lo)
	}
	return img.remap(func(v float64) float64 {
		return (v - lo) / (hi - lo)
	}), nil
}

// ToUint8 returns a new image of the same shape and format with every
// sample mapped linearly onto the integer levels 0..255 (truncated).
//
// A constant image fails with ErrDegenerateRange.
func (img *ImageAccess) ToUint8() (*ImageAccess, error) {
	lo, hi := img.minMax()
	if hi == lo {
		return nil, fmt.Errorf("%w: ToUint8: every sample equals %v", ErrDegenerateRange, lo)
	}
	return img.remap(func(v float64) float64 {
		return math.Trunc((v - lo) / (hi - lo) * 255)
	}), nil
}

func (img *ImageAccess) remap(f func(float64) float64) *ImageAccess {
	out := img.buf.Clone()
	data := out.Data()
	for i, v := range data {
		data[i] = f(v)
	}
	out.Invalidate()
	return img.derive(out)
}
