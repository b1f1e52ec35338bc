package imageaccess

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/iplab/imageaccess/internal/buffer"
)

// FromMatrix creates a grayscale image from m. Matrix row i becomes image
// row y = i, so an r x c matrix yields an image of shape (r, c).
func FromMatrix(m mat.Matrix, opts ...Option) (*ImageAccess, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: FromMatrix: nil matrix", ErrInvalidArgument)
	}
	ny, nx := m.Dims()
	buf, err := buffer.New(nx, ny, buffer.FormatGray)
	if err != nil {
		return nil, fmt.Errorf("%w: FromMatrix: %w", ErrInvalidArgument, err)
	}
	for y := range ny {
		dst := buf.Row(y)
		for x := range nx {
			dst[x] = m.At(y, x)
		}
	}
	o := applyOptions(opts)
	buf.Rescan()
	return wrap(buf, o.diagnostics), nil
}

// Matrix returns a copy of a grayscale image as an ny x nx dense matrix.
func (img *ImageAccess) Matrix() (*mat.Dense, error) {
	if img.IsRGB() {
		return nil, fmt.Errorf("%w: Matrix on rgb image, use ChannelMatrix", ErrDimensionMismatch)
	}
	data := append([]float64(nil), img.buf.Data()...)
	return mat.NewDense(img.Height(), img.Width(), data), nil
}

// ChannelMatrix returns a copy of channel c of the image as an ny x nx
// dense matrix. A grayscale image has the single channel 0.
func (img *ImageAccess) ChannelMatrix(c int) (*mat.Dense, error) {
	ch := img.buf.Channels()
	if c < 0 || c >= ch {
		return nil, fmt.Errorf("%w: channel %d of a %d-channel image", ErrOutOfBounds, c, ch)
	}
	d := mat.NewDense(img.Height(), img.Width(), nil)
	for y := range img.Height() {
		for x := range img.Width() {
			d.Set(y, x, img.buf.At(x, y)[c])
		}
	}
	return d, nil
}
