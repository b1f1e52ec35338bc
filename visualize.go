package imageaccess

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultDecimals is the number of decimals Visualize callers usually ask
// for.
const DefaultDecimals = 3

// Visualize renders a grayscale image as a bracketed matrix, one row per
// line:
//
//	[[ 1 2 ]
//	 [ 3 4 ]]
//
// Integer images print integers right-aligned. Otherwise values print
// with min(decimals, longest fraction in the image) decimals. Color
// images fail with ErrInvalidArgument.
func (img *ImageAccess) Visualize(decimals int) (string, error) {
	if img.IsRGB() {
		return "", fmt.Errorf("%w: Visualize of rgb images is not supported", ErrInvalidArgument)
	}
	return visualize(img.Width(), img.Height(), func(x, y int) float64 { return img.At(x, y).Value() }, decimals), nil
}

// String returns Visualize(DefaultDecimals) for grayscale images and a
// shape summary for color images.
func (img *ImageAccess) String() string {
	s, err := img.Visualize(DefaultDecimals)
	if err != nil {
		return fmt.Sprintf("ImageAccess(rgb %dx%d)", img.Height(), img.Width())
	}
	return s
}

func visualize(nx, ny int, at func(x, y int) float64, decimals int) string {
	integers := true
	intWidth, fracWidth := 0, 0
	for y := range ny {
		for x := range nx {
			v := at(x, y)
			if v != math.Trunc(v) {
				integers = false
			}
			whole, frac, _ := strings.Cut(strconv.FormatFloat(v, 'f', -1, 64), ".")
			intWidth = max(intWidth, len(whole))
			fracWidth = max(fracWidth, len(frac))
		}
	}
	decimals = max(0, min(decimals, fracWidth))

	var b strings.Builder
	b.WriteString("[[ ")
	for y := range ny {
		if y != 0 {
			b.WriteString("\n [ ")
		}
		for x := range nx {
			v := at(x, y)
			switch {
			case integers:
				fmt.Fprintf(&b, "%*s ", intWidth, strconv.FormatFloat(v, 'f', -1, 64))
			case decimals == 0:
				fmt.Fprintf(&b, "%*s ", intWidth, strconv.FormatFloat(v, 'f', 0, 64))
			default:
				fmt.Fprintf(&b, "%*s ", intWidth+decimals+1, strconv.FormatFloat(v, 'f', decimals, 64))
			}
		}
		b.WriteString("]")
	}
	b.WriteString("]\n")
	return b.String()
}
