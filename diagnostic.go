package imageaccess

import "log/slog"

// DiagnosticKind classifies an advisory diagnostic.
type DiagnosticKind uint8

const (
	// ArityMismatch reports a color value written to a grayscale image,
	// or a gray value written to a color image.
	ArityMismatch DiagnosticKind = iota
)

// String returns the kind name.
func (k DiagnosticKind) String() string {
	switch k {
	case ArityMismatch:
		return "arity-mismatch"
	default:
		return "unknown"
	}
}

// Diagnostic is an advisory event. It never changes the outcome of the
// operation that produced it.
type Diagnostic struct {
	Kind DiagnosticKind

	// Op is the name of the operation, e.g. "SetPixel".
	Op string

	// X and Y are the coordinates passed to Op, or -1 when Op does not
	// address a single cell along that axis.
	X, Y int

	Message string
}

// DiagnosticHandler receives diagnostics emitted by an image.
type DiagnosticHandler func(Diagnostic)

// emit delivers d to the image's handler, or logs it.
func (img *ImageAccess) emit(d Diagnostic) {
	if img.diag != nil {
		img.diag(d)
		return
	}
	Logger().Warn("imageaccess: "+d.Message,
		slog.String("kind", d.Kind.String()),
		slog.String("op", d.Op),
		slog.Int("x", d.X),
		slog.Int("y", d.Y))
}

// checkArity emits an ArityMismatch diagnostic when a value of the given
// arity is written into img.
func (img *ImageAccess) checkArity(op string, x, y int, rgb bool) {
	if rgb == img.IsRGB() {
		return
	}
	msg := "rgb value written to a grayscale image is stored as its mean gray level"
	if !rgb {
		msg = "grayscale value written to an rgb image is replicated to all channels"
	}
	img.emit(Diagnostic{Kind: ArityMismatch, Op: op, X: x, Y: y, Message: msg})
}
