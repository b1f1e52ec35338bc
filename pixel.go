package imageaccess

import (
	"math"
	"strconv"

	"github.com/iplab/imageaccess/internal/buffer"
)

// Pixel is the value of one image cell: a gray level or an RGB triple.
//
// The zero Pixel is the gray level 0. Pixels are comparable with ==.
type Pixel struct {
	c   [3]float64
	rgb bool
}

// Gray returns a grayscale pixel.
func Gray(v float64) Pixel {
	return Pixel{c: [3]float64{v}}
}

// RGB returns a color pixel.
func RGB(r, g, b float64) Pixel {
	return Pixel{c: [3]float64{r, g, b}, rgb: true}
}

// IsRGB reports whether p is a color pixel.
func (p Pixel) IsRGB() bool {
	return p.rgb
}

// Value returns the gray level of p. For a color pixel it is the mean of
// the three channels.
func (p Pixel) Value() float64 {
	if p.rgb {
		return (p.c[0] + p.c[1] + p.c[2]) / 3
	}
	return p.c[0]
}

// Channels returns the R, G, B samples of p. A gray pixel has its level
// replicated on all three channels.
func (p Pixel) Channels() [3]float64 {
	if p.rgb {
		return p.c
	}
	return [3]float64{p.c[0], p.c[0], p.c[0]}
}

// String formats p as "v" or "[r g b]".
func (p Pixel) String() string {
	if !p.rgb {
		return formatSample(p.c[0])
	}
	return "[" + formatSample(p.c[0]) + " " + formatSample(p.c[1]) + " " + formatSample(p.c[2]) + "]"
}

// MinPixel returns the per-channel minimum of a and b. If exactly one of
// them is a color pixel the other is promoted to color first.
func MinPixel(a, b Pixel) Pixel {
	return combine(a, b, math.Min)
}

// MaxPixel returns the per-channel maximum of a and b, promoting like
// MinPixel.
func MaxPixel(a, b Pixel) Pixel {
	return combine(a, b, math.Max)
}

func combine(a, b Pixel, f func(x, y float64) float64) Pixel {
	if !a.rgb && !b.rgb {
		return Gray(f(a.c[0], b.c[0]))
	}
	ac, bc := a.Channels(), b.Channels()
	return RGB(f(ac[0], bc[0]), f(ac[1], bc[1]), f(ac[2], bc[2]))
}

// cells returns p's samples laid out for a buffer of format f.
func (p Pixel) cells(f buffer.Format) [3]float64 {
	if f == buffer.FormatRGB {
		return p.Channels()
	}
	return [3]float64{p.Value()}
}

// pixelOf builds a Pixel from buffer samples of format f.
func pixelOf(c [3]float64, f buffer.Format) Pixel {
	if f == buffer.FormatRGB {
		return Pixel{c: c, rgb: true}
	}
	return Gray(c[0])
}

// zeroPixel returns the zero value of format f.
func zeroPixel(f buffer.Format) Pixel {
	return Pixel{rgb: f == buffer.FormatRGB}
}

func formatSample(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
