// Package buffer implements the sample storage behind imageaccess images.
//
// A Buffer is a row-major slice of float64 samples tagged with a Format.
// The format is fixed for the buffer's lifetime, so callers never need to
// inspect individual cells to learn whether they hold a gray level or an
// RGB triple. Every mutating method invalidates the buffer's cached
// statistics.
//
// Buffers are not safe for concurrent use.
package buffer

import (
	"errors"
	"fmt"
)

// Common errors for buffer operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("buffer: invalid dimensions")

	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = errors.New("buffer: invalid format")

	// ErrOutOfBounds is returned when cell coordinates are outside the buffer.
	ErrOutOfBounds = errors.New("buffer: coordinates out of bounds")
)

// Buffer is a rectangular grid of gray or RGB cells.
type Buffer struct {
	data   []float64
	width  int
	height int
	format Format

	stats stats
}

// New creates a zero-filled buffer.
func New(width, height int, format Format) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	return &Buffer{
		data:   make([]float64, width*height*format.Channels()),
		width:  width,
		height: height,
		format: format,
	}, nil
}

// NewFilled creates a buffer with every sample set to v.
func NewFilled(width, height int, format Format, v float64) (*Buffer, error) {
	b, err := New(width, height, format)
	if err != nil {
		return nil, err
	}
	if v != 0 {
		for i := range b.data {
			b.data[i] = v
		}
	}
	return b, nil
}

// Clone creates a deep copy of the buffer, including valid statistics.
func (b *Buffer) Clone() *Buffer {
	data := make([]float64, len(b.data))
	copy(data, b.data)
	st := b.stats
	st.rescans = 0
	return &Buffer{
		data:   data,
		width:  b.width,
		height: b.height,
		format: b.format,
		stats:  st,
	}
}

// Width returns the number of columns.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Buffer) Height() int {
	return b.height
}

// Format returns the cell format.
func (b *Buffer) Format() Format {
	return b.format
}

// Channels returns the number of samples per cell.
func (b *Buffer) Channels() int {
	return b.format.Channels()
}

// Len returns the total number of samples.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Data returns the raw sample slice.
// Modifying it affects the buffer; call Invalidate afterwards.
func (b *Buffer) Data() []float64 {
	return b.data
}

// Offset returns the index of the first sample of cell (x, y) in Data,
// or -1 if the cell is outside the buffer.
func (b *Buffer) Offset(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return (y*b.width + x) * b.format.Channels()
}

// At returns the samples of cell (x, y). Only the first Channels entries
// are meaningful. Returns zeros for cells outside the buffer.
func (b *Buffer) At(x, y int) [3]float64 {
	var c [3]float64
	off := b.Offset(x, y)
	if off < 0 {
		return c
	}
	copy(c[:b.format.Channels()], b.data[off:])
	return c
}

// Set stores the first Channels entries of c into cell (x, y).
func (b *Buffer) Set(x, y int, c [3]float64) error {
	off := b.Offset(x, y)
	if off < 0 {
		return fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, b.width, b.height)
	}
	copy(b.data[off:off+b.format.Channels()], c[:])
	b.Invalidate()
	return nil
}

// Row returns the samples of row y as a slice into Data, or nil if y is
// out of bounds.
func (b *Buffer) Row(y int) []float64 {
	if y < 0 || y >= b.height {
		return nil
	}
	n := b.width * b.format.Channels()
	return b.data[y*n : (y+1)*n]
}

// Fill sets every sample to v.
func (b *Buffer) Fill(v float64) {
	for i := range b.data {
		b.data[i] = v
	}
	b.Invalidate()
}

// Transpose swaps rows and columns in place. Samples inside a cell keep
// their order. Statistics stay valid since the set of samples is unchanged.
func (b *Buffer) Transpose() {
	ch := b.format.Channels()
	out := make([]float64, len(b.data))
	for y := range b.height {
		for x := range b.width {
			src := (y*b.width + x) * ch
			dst := (x*b.height + y) * ch
			copy(out[dst:dst+ch], b.data[src:src+ch])
		}
	}
	b.data = out
	b.width, b.height = b.height, b.width
}
