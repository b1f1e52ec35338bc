package imageaccess

import (
	"fmt"

	"github.com/iplab/imageaccess/internal/buffer"
)

// Neighborhood is a read-only nx x ny window onto an image, centered on a
// pixel. It holds no pixel data: every read goes to the target image, so
// writes to the target are visible immediately.
//
// Local (0, 0) is the global pixel (xc - nx/2, yc - ny/2). Global
// coordinates outside the target are resolved with the padding given to
// GetNbh; local coordinates outside the window are an error.
//
// A Neighborhood must not be used after its target is discarded or
// replaced with FromArray.
type Neighborhood struct {
	target  *ImageAccess
	xOffset int
	yOffset int
	nx, ny  int
	padding Padding
}

// GetNbh returns the nx x ny neighborhood centered on (x, y).
func (img *ImageAccess) GetNbh(x, y, nx, ny int, p Padding) (*Neighborhood, error) {
	if nx <= 0 || ny <= 0 {
		return nil, fmt.Errorf("%w: GetNbh: size %dx%d", ErrInvalidArgument, ny, nx)
	}
	if !p.IsValid() {
		return nil, fmt.Errorf("%w: GetNbh: unknown padding %d", ErrInvalidArgument, uint8(p))
	}
	return &Neighborhood{
		target:  img,
		xOffset: x - nx/2,
		yOffset: y - ny/2,
		nx:      nx,
		ny:      ny,
		padding: p,
	}, nil
}

// NbhArray returns a copy of the nx x ny neighborhood centered on (x, y)
// as an independent image.
func (img *ImageAccess) NbhArray(x, y, nx, ny int, p Padding) (*ImageAccess, error) {
	nbh, err := img.GetNbh(x, y, nx, ny, p)
	if err != nil {
		return nil, err
	}
	return nbh.Snapshot(), nil
}

// Width returns the window width.
func (n *Neighborhood) Width() int { return n.nx }

// Height returns the window height.
func (n *Neighborhood) Height() int { return n.ny }

// Shape returns (ny, nx) of the window.
func (n *Neighborhood) Shape() [2]int { return [2]int{n.ny, n.nx} }

// Padding returns the padding used for global coordinates.
func (n *Neighborhood) Padding() Padding { return n.padding }

// Origin returns the global coordinates of local (0, 0).
func (n *Neighborhood) Origin() (x, y int) { return n.xOffset, n.yOffset }

// GetPixel returns the pixel at local (x, y).
func (n *Neighborhood) GetPixel(x, y int) (Pixel, error) {
	if x < 0 || x >= n.nx || y < 0 || y >= n.ny {
		return Pixel{}, fmt.Errorf("%w: pixel (x=%d,y=%d) is outside the neighborhood of size nx=%d, ny=%d",
			ErrOutOfBounds, x, y, n.nx, n.ny)
	}
	return n.at(x, y), nil
}

// at reads local (x, y) without the window check.
func (n *Neighborhood) at(x, y int) Pixel {
	return n.target.get(x+n.xOffset, y+n.yOffset, n.padding)
}

// GetRow returns a copy of local row y as a 1 x nx image.
func (n *Neighborhood) GetRow(y int) (*ImageAccess, error) {
	if y < 0 || y >= n.ny {
		return nil, fmt.Errorf("%w: row y=%d is outside the neighborhood of size nx=%d, ny=%d",
			ErrOutOfBounds, y, n.nx, n.ny)
	}
	return n.copyRect(0, y, n.nx, 1), nil
}

// GetColumn returns a copy of local column x as an ny x 1 image.
func (n *Neighborhood) GetColumn(x int) (*ImageAccess, error) {
	if x < 0 || x >= n.nx {
		return nil, fmt.Errorf("%w: column x=%d is outside the neighborhood of size nx=%d, ny=%d",
			ErrOutOfBounds, x, n.nx, n.ny)
	}
	return n.copyRect(x, 0, 1, n.ny), nil
}

// Snapshot returns a copy of the whole window as an nx x ny image.
func (n *Neighborhood) Snapshot() *ImageAccess {
	return n.copyRect(0, 0, n.nx, n.ny)
}

func (n *Neighborhood) copyRect(x0, y0, w, h int) *ImageAccess {
	f := n.target.buf.Format()
	// w and h are positive, New cannot fail.
	buf, _ := buffer.New(w, h, f)
	for y := range h {
		for x := range w {
			_ = buf.Set(x, y, n.at(x0+x, y0+y).cells(f))
		}
	}
	return n.target.derive(buf)
}

// Values returns the gray levels of the window in row-major order.
// Color pixels contribute their channel mean.
func (n *Neighborhood) Values() []float64 {
	out := make([]float64, 0, n.nx*n.ny)
	for y := range n.ny {
		for x := range n.nx {
			out = append(out, n.at(x, y).Value())
		}
	}
	return out
}

// Sort is ImageAccess.Sort over the window. mask must be nx x ny.
func (n *Neighborhood) Sort(mask *ImageAccess) ([][]float64, error) {
	return sortMasked(n.nx, n.ny, n.target.IsRGB(), n.at, mask)
}

// Visualize is ImageAccess.Visualize over the window.
func (n *Neighborhood) Visualize(decimals int) (string, error) {
	if n.target.IsRGB() {
		return "", fmt.Errorf("%w: Visualize of rgb images is not supported", ErrInvalidArgument)
	}
	return visualize(n.nx, n.ny, func(x, y int) float64 { return n.at(x, y).Value() }, decimals), nil
}
