package imageaccess

import (
	"fmt"
	"math"

	"github.com/iplab/imageaccess/internal/buffer"
)

// Number is the set of types accepted for sizes and array samples.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 |
		~float32 | ~float64
}

// ImageAccess is a grayscale or RGB image with boundary-aware accessors.
//
// The buffer is owned exclusively by the ImageAccess; every accessor that
// returns image data returns an independent copy. Neighborhoods obtained
// with GetNbh are the only views and they observe later writes.
//
// ImageAccess is not safe for concurrent use.
type ImageAccess struct {
	buf  *buffer.Buffer
	diag DiagnosticHandler
}

// New creates a height x width image.
//
// Sizes may be given as any numeric type but must hold positive integer
// values: New(3.5, 4) fails with ErrInvalidArgument.
func New[T Number](height, width T, opts ...Option) (*ImageAccess, error) {
	ny, err := toSize(height, "height")
	if err != nil {
		return nil, err
	}
	nx, err := toSize(width, "width")
	if err != nil {
		return nil, err
	}
	return newSized(ny, nx, applyOptions(opts))
}

// FromShape creates an image from a shape of the form [ny, nx] or
// [ny, nx, 3]. A trailing 3 or WithRGB selects a color image.
//
// Example:
//
//	// Same size as img, zero filled.
//	s := img.Shape()
//	blank, _ := imageaccess.FromShape(s[:])
func FromShape[T Number](shape []T, opts ...Option) (*ImageAccess, error) {
	if len(shape) != 2 && len(shape) != 3 {
		return nil, fmt.Errorf("%w: shape must have 2 or 3 elements, got %d", ErrInvalidArgument, len(shape))
	}
	ny, err := toSize(shape[0], "height")
	if err != nil {
		return nil, err
	}
	nx, err := toSize(shape[1], "width")
	if err != nil {
		return nil, err
	}
	o := applyOptions(opts)
	if len(shape) == 3 {
		if float64(shape[2]) != 3 {
			return nil, fmt.Errorf("%w: trailing dimension must be 3, got %v", ErrInvalidArgument, shape[2])
		}
		o.rgb = true
	}
	return newSized(ny, nx, o)
}

// FromArray creates an image holding a deep copy of arr.
//
// Supported rank-2 (grayscale) inputs are [][]T for T in float64, float32,
// int, uint8 and bool (true is 1). Supported rank-3 (color) inputs are
// [][][3]T and [][][]T for T in float64, float32, int and uint8; for the
// latter every cell must have exactly three samples.
func FromArray(arr any, opts ...Option) (*ImageAccess, error) {
	buf, err := bufferFromArray(arr)
	if err != nil {
		return nil, err
	}
	o := applyOptions(opts)
	img := wrap(buf, o.diagnostics)
	buf.Rescan()
	return img, nil
}

// FromArray replaces the image contents with a deep copy of arr, which
// may have a different shape and format. See the package-level FromArray
// for accepted inputs.
func (img *ImageAccess) FromArray(arr any) error {
	buf, err := bufferFromArray(arr)
	if err != nil {
		return err
	}
	img.buf = buf
	return nil
}

// wrap builds an image around buf without copying. It is the only way to
// obtain an ImageAccess other than the exported constructors.
func wrap(buf *buffer.Buffer, diag DiagnosticHandler) *ImageAccess {
	return &ImageAccess{buf: buf, diag: diag}
}

func newSized(ny, nx int, o options) (*ImageAccess, error) {
	format := buffer.FormatGray
	if o.rgb {
		format = buffer.FormatRGB
	}
	buf, err := buffer.NewFilled(nx, ny, format, o.initValue)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	buf.Rescan()
	return wrap(buf, o.diagnostics), nil
}

// derive builds an image that shares img's diagnostic handler.
func (img *ImageAccess) derive(buf *buffer.Buffer) *ImageAccess {
	return wrap(buf, img.diag)
}

func toSize[T Number](v T, what string) (int, error) {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, fmt.Errorf("%w: non-integer %s %v", ErrInvalidArgument, what, f)
	}
	if f <= 0 || f > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidArgument, what, f)
	}
	return int(f), nil
}

// Width returns nx, the number of columns.
func (img *ImageAccess) Width() int {
	return img.buf.Width()
}

// Height returns ny, the number of rows.
func (img *ImageAccess) Height() int {
	return img.buf.Height()
}

// Shape returns (ny, nx).
func (img *ImageAccess) Shape() [2]int {
	return [2]int{img.buf.Height(), img.buf.Width()}
}

// NDims returns 2 for grayscale images and 3 for color images.
func (img *ImageAccess) NDims() int {
	return img.buf.Format().Rank()
}

// IsRGB reports whether img is a color image.
func (img *ImageAccess) IsRGB() bool {
	return img.buf.Format() == buffer.FormatRGB
}

// Copy returns a deep copy of img.
func (img *ImageAccess) Copy() *ImageAccess {
	return img.derive(img.buf.Clone())
}

// ToArray returns an independent copy of the samples: [][]float64 for a
// grayscale image, [][][3]float64 for a color image.
func (img *ImageAccess) ToArray() any {
	if img.IsRGB() {
		arr, _ := img.RGBArray()
		return arr
	}
	arr, _ := img.GrayArray()
	return arr
}

// GrayArray returns a copy of a grayscale image as rows of samples.
func (img *ImageAccess) GrayArray() ([][]float64, error) {
	if img.IsRGB() {
		return nil, fmt.Errorf("%w: GrayArray on rgb image", ErrDimensionMismatch)
	}
	out := make([][]float64, img.Height())
	for y := range out {
		out[y] = append([]float64(nil), img.buf.Row(y)...)
	}
	return out, nil
}

// RGBArray returns a copy of a color image as rows of RGB triples.
func (img *ImageAccess) RGBArray() ([][][3]float64, error) {
	if !img.IsRGB() {
		return nil, fmt.Errorf("%w: RGBArray on grayscale image", ErrDimensionMismatch)
	}
	out := make([][][3]float64, img.Height())
	for y := range out {
		row := make([][3]float64, img.Width())
		for x := range row {
			row[x] = img.buf.At(x, y)
		}
		out[y] = row
	}
	return out, nil
}

func bufferFromArray(arr any) (*buffer.Buffer, error) {
	switch a := arr.(type) {
	case [][]float64:
		return fromRows(a)
	case [][]float32:
		return fromRows(a)
	case [][]int:
		return fromRows(a)
	case [][]uint8:
		return fromRows(a)
	case [][]bool:
		return fromBools(a)
	case [][][3]float64:
		return fromTriples(a)
	case [][][3]float32:
		return fromTriples(a)
	case [][][3]int:
		return fromTriples(a)
	case [][][3]uint8:
		return fromTriples(a)
	case [][][]float64:
		return fromCells(a)
	case [][][]float32:
		return fromCells(a)
	case [][][]int:
		return fromCells(a)
	case [][][]uint8:
		return fromCells(a)
	default:
		return nil, fmt.Errorf("%w: unsupported array type %T", ErrInvalidArgument, arr)
	}
}

// arrayWidth validates that rows is a non-empty rectangle and returns
// its width.
func arrayWidth[E any](rows [][]E) (int, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return 0, fmt.Errorf("%w: empty array", ErrInvalidArgument)
	}
	nx := len(rows[0])
	for y, row := range rows {
		if len(row) != nx {
			return 0, fmt.Errorf("%w: row %d has length %d, want %d", ErrDimensionMismatch, y, len(row), nx)
		}
	}
	return nx, nil
}

func fromRows[T Number](rows [][]T) (*buffer.Buffer, error) {
	nx, err := arrayWidth(rows)
	if err != nil {
		return nil, err
	}
	buf, err := buffer.New(nx, len(rows), buffer.FormatGray)
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		dst := buf.Row(y)
		for x, v := range row {
			dst[x] = float64(v)
		}
	}
	return buf, nil
}

func fromBools(rows [][]bool) (*buffer.Buffer, error) {
	nx, err := arrayWidth(rows)
	if err != nil {
		return nil, err
	}
	buf, err := buffer.New(nx, len(rows), buffer.FormatGray)
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		dst := buf.Row(y)
		for x, v := range row {
			if v {
				dst[x] = 1
			}
		}
	}
	return buf, nil
}

func fromTriples[T Number](rows [][][3]T) (*buffer.Buffer, error) {
	nx, err := arrayWidth(rows)
	if err != nil {
		return nil, err
	}
	buf, err := buffer.New(nx, len(rows), buffer.FormatRGB)
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		dst := buf.Row(y)
		for x, c := range row {
			dst[3*x] = float64(c[0])
			dst[3*x+1] = float64(c[1])
			dst[3*x+2] = float64(c[2])
		}
	}
	return buf, nil
}

func fromCells[T Number](rows [][][]T) (*buffer.Buffer, error) {
	nx, err := arrayWidth(rows)
	if err != nil {
		return nil, err
	}
	buf, err := buffer.New(nx, len(rows), buffer.FormatRGB)
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		dst := buf.Row(y)
		for x, c := range row {
			if len(c) != 3 {
				return nil, fmt.Errorf("%w: cell (%d,%d) has %d channels, want 3", ErrDimensionMismatch, x, y, len(c))
			}
			dst[3*x] = float64(c[0])
			dst[3*x+1] = float64(c[1])
			dst[3*x+2] = float64(c[2])
		}
	}
	return buf, nil
}
