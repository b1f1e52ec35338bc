package imageaccess

import "fmt"

// Padding selects how coordinates outside the image are resolved.
type Padding uint8

const (
	// Mirror reflects about the edge without repeating the edge pixel.
	Mirror Padding = iota

	// Repeat wraps coordinates around the image periodically.
	Repeat

	// Zero treats every cell outside the image as the zero pixel.
	Zero

	paddingCount
)

// OutOfRange is returned by Resolve for coordinates that zero padding
// leaves without a backing cell.
const OutOfRange = -1

var paddingNames = [paddingCount]string{
	Mirror: "mirror",
	Repeat: "repeat",
	Zero:   "zero",
}

// ParsePadding returns the Padding named s ("mirror", "repeat" or "zero").
func ParsePadding(s string) (Padding, error) {
	for p, name := range paddingNames {
		if name == s {
			return Padding(p), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown padding %q", ErrInvalidArgument, s)
}

// String returns the padding name.
func (p Padding) String() string {
	if !p.IsValid() {
		return fmt.Sprintf("Padding(%d)", uint8(p))
	}
	return paddingNames[p]
}

// IsValid reports whether p is a known padding mode.
func (p Padding) IsValid() bool {
	return p < paddingCount
}

// Writable reports whether writes may resolve coordinates with p.
// Zero padding has no backing cell to write to.
func (p Padding) Writable() bool {
	return p == Mirror || p == Repeat
}

// MarshalText implements encoding.TextMarshaler.
func (p Padding) MarshalText() ([]byte, error) {
	if !p.IsValid() {
		return nil, fmt.Errorf("%w: unknown padding %d", ErrInvalidArgument, uint8(p))
	}
	return []byte(paddingNames[p]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Padding) UnmarshalText(text []byte) error {
	v, err := ParsePadding(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Resolve maps coord onto an axis of the given length.
//
// In-range coordinates are returned unchanged. Out-of-range coordinates
// are folded back with p, or mapped to OutOfRange for Zero. The low-side
// rule is applied first and the high-side rule to its result:
//
//	Repeat: c < 0  -> length - (|c| mod length); c >= length -> c mod length
//	Mirror: c < 0  -> -c - 1;                    c >= length -> length - 1 - (c mod length)
//
// The result is always in [0, length) or OutOfRange.
func Resolve(coord, length int, p Padding) (int, error) {
	if !p.IsValid() {
		return 0, fmt.Errorf("%w: unknown padding %d", ErrInvalidArgument, uint8(p))
	}
	if length <= 0 {
		return 0, fmt.Errorf("%w: axis length %d", ErrInvalidArgument, length)
	}
	return resolve(coord, length, p), nil
}

// resolve is Resolve without argument validation.
func resolve(c, n int, p Padding) int {
	if c < 0 {
		switch p {
		case Zero:
			return OutOfRange
		case Repeat:
			c = n - (-c % n)
		default:
			c = -c - 1
		}
	}
	if c >= n {
		switch p {
		case Zero:
			return OutOfRange
		case Repeat:
			c %= n
		default:
			c = n - 1 - (c % n)
		}
	}
	return c
}
