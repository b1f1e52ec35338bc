package imageaccess

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/iplab/imageaccess/internal/buffer"
)

const (
	// DefaultTolerance is the absolute tolerance used by ImageCompare
	// callers that have no better estimate.
	DefaultTolerance = 1e-5

	// normalizationTolerance bounds the spread of the sample ratios
	// accepted as a single scale factor.
	normalizationTolerance = 1e-3
)

// CompareResult describes the outcome of comparing two buffers.
type CompareResult struct {
	// Equal is true when the shapes agree and every sample pair matches.
	Equal bool

	// ShapeMismatch is set when the buffers differ in shape or format; no
	// samples are compared in that case.
	ShapeMismatch bool

	// Count is the number of sample pairs compared.
	Count int

	// Mismatched is the number of sample pairs that differ by more than
	// the tolerance or contain NaN.
	Mismatched int

	// MaxError is the signed difference a-b with the largest magnitude
	// among mismatched pairs.
	MaxError float64

	// Normalization is set when every nonzero sample of a is the matching
	// sample of b times Factor, and zeros coincide.
	Normalization bool

	// Factor is the a/b scale factor; meaningful only if Normalization.
	Factor float64

	shapeA, shapeB string
}

// Message returns a human readable report, or "" if the buffers are equal.
func (r CompareResult) Message() string {
	if r.Equal {
		return ""
	}
	if r.ShapeMismatch {
		return "Shape mismatch: " + r.shapeA + " vs " + r.shapeB
	}
	var b strings.Builder
	pct := 0.0
	if r.Count > 0 {
		pct = math.Round(float64(r.Mismatched) / float64(r.Count) * 100)
	}
	fmt.Fprintf(&b, "Number of mismatched elements: %d (%s%%)\nMax error: %s",
		r.Mismatched, strconv.FormatFloat(pct, 'f', -1, 64), formatSample(r.MaxError))
	if r.Normalization {
		b.WriteString("\nNormalization error: The image should be normalized by a factor of ")
		b.WriteString(formatSample(r.Factor))
	}
	return b.String()
}

// ArrayCompare compares two arrays sample by sample. Two samples match if
// |a-b| <= tol and neither is NaN. Arrays are accepted in any form
// FromArray accepts; malformed arrays fail with the FromArray error.
//
// On mismatch the result also reports whether a is b scaled by a single
// factor, which usually means a result was normalized incorrectly.
func ArrayCompare(a, b any, tol float64) (CompareResult, error) {
	ba, err := bufferFromArray(a)
	if err != nil {
		return CompareResult{}, err
	}
	bb, err := bufferFromArray(b)
	if err != nil {
		return CompareResult{}, err
	}
	return compareBuffers(ba, bb, tol), nil
}

// ImageCompare compares other against img with tolerance tol, in the
// same way as ArrayCompare(other, img). A reported Factor is other/img.
func (img *ImageAccess) ImageCompare(other *ImageAccess, tol float64) CompareResult {
	return compareBuffers(other.buf, img.buf, tol)
}

// IsNormalizationError reports whether a equals b multiplied by a single
// factor (zeros must coincide), and returns that factor a/b.
func IsNormalizationError(a, b *ImageAccess) (factor float64, ok bool) {
	if !sameShape(a.buf, b.buf) {
		return 0, false
	}
	return normalizationFactor(a.buf.Data(), b.buf.Data(), normalizationTolerance)
}

// IsNormalizationError reports whether img is other times a single
// factor and returns img/other.
func (img *ImageAccess) IsNormalizationError(other *ImageAccess) (float64, bool) {
	return IsNormalizationError(img, other)
}

func sameShape(a, b *buffer.Buffer) bool {
	return a.Width() == b.Width() && a.Height() == b.Height() && a.Format() == b.Format()
}

func shapeString(b *buffer.Buffer) string {
	if b.Format() == buffer.FormatRGB {
		return fmt.Sprintf("[%d %d 3]", b.Height(), b.Width())
	}
	return fmt.Sprintf("[%d %d]", b.Height(), b.Width())
}

func compareBuffers(a, b *buffer.Buffer, tol float64) CompareResult {
	if !sameShape(a, b) {
		return CompareResult{ShapeMismatch: true, shapeA: shapeString(a), shapeB: shapeString(b)}
	}

	var r CompareResult
	da, db := a.Data(), b.Data()
	for i := range da {
		r.Count++
		d := da[i] - db[i]
		if math.Abs(d) <= tol && !math.IsNaN(da[i]) && !math.IsNaN(db[i]) {
			continue
		}
		r.Mismatched++
		if math.Abs(d) > math.Abs(r.MaxError) {
			r.MaxError = d
		}
	}
	if r.Mismatched == 0 {
		r.Equal = true
		return r
	}
	r.Factor, r.Normalization = normalizationFactor(da, db, normalizationTolerance)
	return r
}

// normalizationFactor checks that a[i] = c*b[i] for one c, within tol on
// the ratio. Pairs of zeros are ignored; a zero paired with a nonzero
// rules out any factor.
func normalizationFactor(a, b []float64, tol float64) (float64, bool) {
	c := math.NaN()
	for i := range a {
		if math.IsNaN(a[i]) || math.IsNaN(b[i]) {
			return 0, false
		}
		if (a[i] == 0) != (b[i] == 0) {
			return 0, false
		}
		if b[i] == 0 {
			continue
		}
		ratio := a[i] / b[i]
		if math.IsNaN(c) {
			c = ratio
			continue
		}
		if math.Abs(ratio-c) > tol {
			return 0, false
		}
	}
	if math.IsNaN(c) {
		return 0, false
	}
	return c, true
}
