package imageaccess

import (
	"fmt"
	"slices"
)

// Sort collects every pixel whose mask value is > 0 and returns the
// samples in ascending order: one slice for a grayscale image, three
// (R, G, B) for a color image.
//
// mask must have the image's shape; its gray level decides selection.
// A nil mask selects every pixel.
func (img *ImageAccess) Sort(mask *ImageAccess) ([][]float64, error) {
	return sortMasked(img.buf.Width(), img.buf.Height(), img.IsRGB(), img.At, mask)
}

// sortMasked gathers the pixels of an nx x ny grid read through at,
// columns outer and rows inner, and sorts each channel.
func sortMasked(nx, ny int, rgb bool, at func(x, y int) Pixel, mask *ImageAccess) ([][]float64, error) {
	if mask != nil && (mask.Width() != nx || mask.Height() != ny) {
		return nil, fmt.Errorf("%w: Sort: mask is %dx%d, want %dx%d",
			ErrDimensionMismatch, mask.Height(), mask.Width(), ny, nx)
	}

	channels := 1
	if rgb {
		channels = 3
	}
	out := make([][]float64, channels)
	for c := range out {
		out[c] = make([]float64, 0, nx*ny)
	}

	for x := range nx {
		for y := range ny {
			if mask != nil && mask.At(x, y).Value() <= 0 {
				continue
			}
			v := at(x, y)
			if !rgb {
				out[0] = append(out[0], v.Value())
				continue
			}
			c := v.Channels()
			for i := range out {
				out[i] = append(out[i], c[i])
			}
		}
	}

	for _, s := range out {
		slices.Sort(s)
	}
	return out, nil
}
