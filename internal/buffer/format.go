package buffer

// Format is the sample layout of a buffer cell.
type Format uint8

const (
	// FormatGray stores one sample per cell.
	FormatGray Format = iota

	// FormatRGB stores three samples per cell, in R, G, B order.
	FormatRGB

	// formatCount is the number of formats (for internal use).
	formatCount
)

// FormatInfo contains metadata about a sample format.
type FormatInfo struct {
	// Channels is the number of samples per cell.
	Channels int

	// Rank is the number of array dimensions the format corresponds to:
	// 2 for [row][col], 3 for [row][col][channel].
	Rank int

	// Name is a short human readable name.
	Name string
}

var formatInfoTable = [formatCount]FormatInfo{
	FormatGray: {Channels: 1, Rank: 2, Name: "gray"},
	FormatRGB:  {Channels: 3, Rank: 3, Name: "rgb"},
}

// Info returns the FormatInfo for this format.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// Channels returns the number of samples per cell.
func (f Format) Channels() int {
	return f.Info().Channels
}

// Rank returns 2 for gray and 3 for RGB.
func (f Format) Rank() int {
	return f.Info().Rank
}

// IsValid reports whether f is a known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// String returns the format name.
func (f Format) String() string {
	if !f.IsValid() {
		return "unknown"
	}
	return f.Info().Name
}
