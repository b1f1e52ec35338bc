package imageaccess

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"

	"github.com/iplab/imageaccess/internal/buffer"
)

// gridLevel is the gray level of the separator lines drawn by ToImage.
const gridLevel = 127

// FromImage creates an image from any image.Image.
//
// By default the result is grayscale, each pixel the truncated mean of its
// 8-bit non-premultiplied R, G and B. With WithRGB the three channels are
// kept. Alpha is discarded.
func FromImage(src image.Image, opts ...Option) (*ImageAccess, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: FromImage: nil image", ErrInvalidArgument)
	}
	bounds := src.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("%w: FromImage: empty bounds %v", ErrInvalidArgument, bounds)
	}
	o := applyOptions(opts)

	nrgba := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(nrgba, nrgba.Bounds(), src, bounds.Min, draw.Src)

	format := buffer.FormatGray
	if o.rgb {
		format = buffer.FormatRGB
	}
	buf, err := buffer.New(bounds.Dx(), bounds.Dy(), format)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	for y := range bounds.Dy() {
		dst := buf.Row(y)
		pix := nrgba.Pix[y*nrgba.Stride:]
		for x := range bounds.Dx() {
			r, g, b := int(pix[4*x]), int(pix[4*x+1]), int(pix[4*x+2])
			if o.rgb {
				dst[3*x], dst[3*x+1], dst[3*x+2] = float64(r), float64(g), float64(b)
			} else {
				dst[x] = float64((r + g + b) / 3)
			}
		}
	}
	buf.Rescan()
	return wrap(buf, o.diagnostics), nil
}

// ToImage renders the image as opaque 8-bit RGBA for display.
//
// Samples are rounded and clamped to [0, 255]. The output is
// int(nx*scale) x int(ny*scale), upscaled or downscaled with
// nearest-neighbor sampling. With showPixels and scale > 1, a gray
// line is drawn at the first output row and column of every source pixel
// except the first, outlining individual pixels.
func (img *ImageAccess) ToImage(scale float64, showPixels bool) (*image.RGBA, error) {
	if !(scale > 0) || math.IsInf(scale, 0) {
		return nil, fmt.Errorf("%w: ToImage: scale %v", ErrInvalidArgument, scale)
	}
	nx, ny := img.Width(), img.Height()
	w, h := int(float64(nx)*scale), int(float64(ny)*scale)
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: ToImage: scale %v leaves an empty image", ErrInvalidArgument, scale)
	}

	base := image.NewRGBA(image.Rect(0, 0, nx, ny))
	for y := range ny {
		for x := range nx {
			c := img.buf.At(x, y)
			if !img.IsRGB() {
				c[1], c[2] = c[0], c[0]
			}
			base.SetRGBA(x, y, color.RGBA{R: clampLevel(c[0]), G: clampLevel(c[1]), B: clampLevel(c[2]), A: 255})
		}
	}
	if w == nx && h == ny {
		return base, nil
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), base, base.Bounds(), draw.Src, nil)

	if showPixels && scale > 1 {
		grid := color.RGBA{R: gridLevel, G: gridLevel, B: gridLevel, A: 255}
		for x := 1; x < w; x++ {
			if startsSourcePixel(x, scale) {
				draw.Draw(dst, image.Rect(x, 0, x+1, h), image.NewUniform(grid), image.Point{}, draw.Src)
			}
		}
		for y := 1; y < h; y++ {
			if startsSourcePixel(y, scale) {
				draw.Draw(dst, image.Rect(0, y, w, y+1), image.NewUniform(grid), image.Point{}, draw.Src)
			}
		}
	}
	return dst, nil
}

// startsSourcePixel reports whether output index i is the first one
// mapped to its source pixel.
func startsSourcePixel(i int, scale float64) bool {
	return int(float64(i)/scale) != int(float64(i-1)/scale)
}

func clampLevel(v float64) uint8 {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(math.Round(v))
	}
}
