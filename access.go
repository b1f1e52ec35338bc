package imageaccess

import (
	"fmt"

	"github.com/iplab/imageaccess/internal/buffer"
)

// GetPixel returns the pixel at (x, y), resolving out-of-range
// coordinates with p. With Zero padding, a coordinate outside the image
// yields the zero pixel of the image's format.
func (img *ImageAccess) GetPixel(x, y int, p Padding) (Pixel, error) {
	if !p.IsValid() {
		return Pixel{}, fmt.Errorf("%w: GetPixel: unknown padding %d", ErrInvalidArgument, uint8(p))
	}
	return img.get(x, y, p), nil
}

// At returns the pixel at (x, y) with Mirror padding. Mirror resolves
// every coordinate, so At cannot fail.
func (img *ImageAccess) At(x, y int) Pixel {
	return img.get(x, y, Mirror)
}

// get is GetPixel for a padding already known to be valid.
func (img *ImageAccess) get(x, y int, p Padding) Pixel {
	rx := resolve(x, img.buf.Width(), p)
	ry := resolve(y, img.buf.Height(), p)
	if rx == OutOfRange || ry == OutOfRange {
		return zeroPixel(img.buf.Format())
	}
	return pixelOf(img.buf.At(rx, ry), img.buf.Format())
}

// SetPixel writes v at (x, y), resolving out-of-range coordinates with p.
//
// Only Mirror and Repeat are accepted; Zero padding fails with
// ErrInvalidArgument. A color value written to a grayscale image is stored
// as its mean level, a gray value written to a color image is replicated;
// both emit an ArityMismatch diagnostic.
func (img *ImageAccess) SetPixel(x, y int, v Pixel, p Padding) error {
	if !p.Writable() {
		return fmt.Errorf("%w: SetPixel does not support %s padding, use mirror or repeat", ErrInvalidArgument, p)
	}
	img.checkArity("SetPixel", x, y, v.IsRGB())
	rx := resolve(x, img.buf.Width(), p)
	ry := resolve(y, img.buf.Height(), p)
	return img.buf.Set(rx, ry, v.cells(img.buf.Format()))
}

// GetRow returns a copy of row y as a 1 x nx image. With Zero padding and
// y outside the image the row is all zeros.
func (img *ImageAccess) GetRow(y int, p Padding) (*ImageAccess, error) {
	if !p.IsValid() {
		return nil, fmt.Errorf("%w: GetRow: unknown padding %d", ErrInvalidArgument, uint8(p))
	}
	nx := img.buf.Width()
	row, err := buffer.New(nx, 1, img.buf.Format())
	if err != nil {
		return nil, err
	}
	if ry := resolve(y, img.buf.Height(), p); ry != OutOfRange {
		copy(row.Row(0), img.buf.Row(ry))
	}
	return img.derive(row), nil
}

// GetColumn returns a copy of column x as an ny x 1 image. With Zero
// padding and x outside the image the column is all zeros.
func (img *ImageAccess) GetColumn(x int, p Padding) (*ImageAccess, error) {
	if !p.IsValid() {
		return nil, fmt.Errorf("%w: GetColumn: unknown padding %d", ErrInvalidArgument, uint8(p))
	}
	ny := img.buf.Height()
	col, err := buffer.New(1, ny, img.buf.Format())
	if err != nil {
		return nil, err
	}
	if rx := resolve(x, img.buf.Width(), p); rx != OutOfRange {
		for y := range ny {
			_ = col.Set(0, y, img.buf.At(rx, y))
		}
	}
	return img.derive(col), nil
}

// PutRow overwrites row y with row, which must be a 1 x nx or nx x 1
// image. y is resolved with p; Zero padding is rejected.
func (img *ImageAccess) PutRow(y int, row *ImageAccess, p Padding) error {
	if !p.Writable() {
		return fmt.Errorf("%w: PutRow does not support %s padding, use mirror or repeat", ErrInvalidArgument, p)
	}
	n, err := lineLength("PutRow", row)
	if err != nil {
		return err
	}
	if n != img.buf.Width() {
		return fmt.Errorf("%w: PutRow: row has length %d but the image has width %d", ErrDimensionMismatch, n, img.buf.Width())
	}
	img.checkArity("PutRow", -1, y, row.IsRGB())
	ry := resolve(y, img.buf.Height(), p)
	f := img.buf.Format()
	for x := range n {
		if err := img.buf.Set(x, ry, row.lineAt(x).cells(f)); err != nil {
			return err
		}
	}
	return nil
}

// PutColumn overwrites column x with col, which must be a 1 x ny or
// ny x 1 image. x is resolved with p; Zero padding is rejected.
func (img *ImageAccess) PutColumn(x int, col *ImageAccess, p Padding) error {
	if !p.Writable() {
		return fmt.Errorf("%w: PutColumn does not support %s padding, use mirror or repeat", ErrInvalidArgument, p)
	}
	n, err := lineLength("PutColumn", col)
	if err != nil {
		return err
	}
	if n != img.buf.Height() {
		return fmt.Errorf("%w: PutColumn: column has length %d but the image has height %d", ErrDimensionMismatch, n, img.buf.Height())
	}
	img.checkArity("PutColumn", x, -1, col.IsRGB())
	rx := resolve(x, img.buf.Width(), p)
	f := img.buf.Format()
	for y := range n {
		if err := img.buf.Set(rx, y, col.lineAt(y).cells(f)); err != nil {
			return err
		}
	}
	return nil
}

// lineLength returns the length of a single-row or single-column image.
func lineLength(op string, line *ImageAccess) (int, error) {
	if line == nil {
		return 0, fmt.Errorf("%w: %s: nil image", ErrInvalidArgument, op)
	}
	nx, ny := line.buf.Width(), line.buf.Height()
	switch {
	case ny == 1:
		return nx, nil
	case nx == 1:
		return ny, nil
	default:
		return 0, fmt.Errorf("%w: %s: need a single row or column, got %dx%d", ErrDimensionMismatch, op, ny, nx)
	}
}

// lineAt returns element i of a single-row or single-column image.
func (img *ImageAccess) lineAt(i int) Pixel {
	if img.buf.Height() == 1 {
		return pixelOf(img.buf.At(i, 0), img.buf.Format())
	}
	return pixelOf(img.buf.At(0, i), img.buf.Format())
}

// GetSubImage returns a copy of the nx x ny rectangle whose top-left
// corner is (x, y). The rectangle must lie inside the image; no padding
// is applied.
func (img *ImageAccess) GetSubImage(x, y, nx, ny int) (*ImageAccess, error) {
	if nx <= 0 || ny <= 0 {
		return nil, fmt.Errorf("%w: GetSubImage: size %dx%d", ErrInvalidArgument, ny, nx)
	}
	if err := img.checkRect(x, y, nx, ny); err != nil {
		return nil, err
	}
	sub, err := buffer.New(nx, ny, img.buf.Format())
	if err != nil {
		return nil, err
	}
	ch := img.buf.Channels()
	for j := range ny {
		src := img.buf.Row(y + j)
		copy(sub.Row(j), src[x*ch:(x+nx)*ch])
	}
	return img.derive(sub), nil
}

// PutSubImage copies sub into img with its top-left corner at (x, y).
// The rectangle must lie inside the image; no padding is applied.
func (img *ImageAccess) PutSubImage(x, y int, sub *ImageAccess) error {
	if sub == nil {
		return fmt.Errorf("%w: PutSubImage: nil image", ErrInvalidArgument)
	}
	nx, ny := sub.buf.Width(), sub.buf.Height()
	if err := img.checkRect(x, y, nx, ny); err != nil {
		return err
	}
	img.checkArity("PutSubImage", x, y, sub.IsRGB())
	f := img.buf.Format()
	for j := range ny {
		for i := range nx {
			v := pixelOf(sub.buf.At(i, j), sub.buf.Format())
			if err := img.buf.Set(x+i, y+j, v.cells(f)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (img *ImageAccess) checkRect(x, y, nx, ny int) error {
	if x < 0 || y < 0 || x+nx > img.buf.Width() || y+ny > img.buf.Height() {
		return fmt.Errorf("%w: sub-image %dx%d at (%d,%d) does not fit in %dx%d image",
			ErrOutOfBounds, ny, nx, x, y, img.buf.Height(), img.buf.Width())
	}
	return nil
}

// TransposeImage swaps rows and columns in place. Channels within a color
// cell keep their order.
func (img *ImageAccess) TransposeImage() {
	img.buf.Transpose()
}
