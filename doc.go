// Package imageaccess provides boundary-aware pixel access for 2D grayscale
// and RGB images.
//
// # Overview
//
// imageaccess is the substrate of an image-processing teaching library.
// Filters, morphology and resampling code read and write pixels, rows,
// columns and neighborhoods through a single type, [ImageAccess], with
// well-defined behavior when a coordinate falls outside the image.
//
// # Quick Start
//
//	img, err := imageaccess.New(64, 64, imageaccess.WithInitValue(128))
//	if err != nil {
//	    return err
//	}
//
//	// Write a pixel and read it back through mirror padding.
//	_ = img.SetPixel(0, 0, imageaccess.Gray(255), imageaccess.Mirror)
//	p, _ := img.GetPixel(-1, 0, imageaccess.Mirror) // same cell as (0, 0)
//
//	// 3x3 median around (10, 10).
//	nbh, _ := img.GetNbh(10, 10, 3, 3, imageaccess.Mirror)
//	sorted, _ := nbh.Sort(nil)
//	median := sorted[0][4]
//
// # Boundary Conditions
//
// Every coordinate-based read resolves out-of-range coordinates with a
// [Padding] mode:
//   - [Mirror] (default): reflect about the edge without repeating the
//     edge pixel: -1 maps to 0, nx maps to nx-1.
//   - [Repeat]: wrap around: -1 maps to nx-1, nx maps to 0.
//   - [Zero]: out-of-range reads return the zero pixel. Writes reject it.
//
// Sub-image operations never pad; they fail with [ErrOutOfBounds].
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - x indexes columns (0..nx-1), y indexes rows (0..ny-1)
//   - Shape is reported as (ny, nx)
//
// # Interop
//
// [FromImage] and [ImageAccess.ToImage] convert to and from the standard
// image types. [FromMatrix] and [ImageAccess.Matrix] exchange samples with
// gonum dense matrices, matrix row i being image row y = i.
//
// # Statistics
//
// Minimum and maximum are cached and recomputed lazily after a write, so
// repeated GetMin/GetMax calls between writes cost O(1).
//
// # Diagnostics
//
// Writing an RGB value into a grayscale image (or the reverse) is not an
// error. The value is converted to the image's format and a [Diagnostic]
// is delivered to the handler set with [WithDiagnostics], or logged at
// warn level through [Logger] when no handler is set.
//
// # Concurrency
//
// An ImageAccess is not safe for concurrent mutation. Only [SetLogger] and
// [Logger] may be called from any goroutine.
package imageaccess
