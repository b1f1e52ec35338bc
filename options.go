package imageaccess

// Option configures an ImageAccess during construction.
//
// Example:
//
//	// 480x640 color image, every sample 255
//	img, err := imageaccess.New(480, 640, imageaccess.WithRGB(), imageaccess.WithInitValue(255))
type Option func(*options)

// options holds optional configuration for ImageAccess creation.
type options struct {
	rgb         bool
	initValue   float64
	diagnostics DiagnosticHandler
}

// defaultOptions returns the default construction options.
func defaultOptions() options {
	return options{
		rgb:         false,
		initValue:   0,
		diagnostics: nil, // falls back to Logger()
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithRGB selects a 3-channel color image. It is ignored when the image
// is built from an existing array, whose rank decides the format.
func WithRGB() Option {
	return func(o *options) {
		o.rgb = true
	}
}

// WithInitValue sets the value of every sample of a newly sized image.
// It is ignored when the image is built from an existing array.
func WithInitValue(v float64) Option {
	return func(o *options) {
		o.initValue = v
	}
}

// WithDiagnostics routes advisory diagnostics of the image, and of every
// image derived from it, to h instead of the package logger.
//
// Example:
//
//	var got []imageaccess.Diagnostic
//	img, _ := imageaccess.New(2, 2, imageaccess.WithDiagnostics(func(d imageaccess.Diagnostic) {
//	    got = append(got, d)
//	}))
func WithDiagnostics(h DiagnosticHandler) Option {
	return func(o *options) {
		o.diagnostics = h
	}
}
