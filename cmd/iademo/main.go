// Command iademo runs a median filter over a noisy test pattern using
// imageaccess neighborhoods and writes the result as a PNG.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/iplab/imageaccess"
)

func main() {
	var (
		size    = flag.Int("size", 32, "image width and height")
		window  = flag.Int("window", 3, "median window size")
		noise   = flag.Float64("noise", 0.05, "fraction of pixels replaced by impulse noise")
		scale   = flag.Float64("scale", 8, "output upscaling factor")
		output  = flag.String("output", "median.png", "output file")
		show    = flag.Bool("print", false, "print the filtered image")
		verbose = flag.Bool("v", false, "debug logging")
		padding = imageaccess.Mirror
	)
	flag.TextVar(&padding, "padding", imageaccess.Mirror, "boundary condition: mirror, repeat or zero")
	flag.Parse()

	if *verbose {
		imageaccess.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	clean, err := gradient(*size)
	if err != nil {
		log.Fatalf("Failed to build pattern: %v", err)
	}
	noisy := clean.Copy()
	if err := addImpulseNoise(noisy, *noise); err != nil {
		log.Fatalf("Failed to add noise: %v", err)
	}

	filtered, err := median(noisy, *window, padding)
	if err != nil {
		log.Fatalf("Median filter failed: %v", err)
	}

	log.Printf("noisy:    min %g, max %g", noisy.GetMin(), noisy.GetMax())
	log.Printf("filtered: min %g, max %g", filtered.GetMin(), filtered.GetMax())
	if r := clean.ImageCompare(filtered, 1); r.Equal {
		log.Printf("filtered image matches the clean pattern")
	} else {
		log.Printf("filtered vs clean:\n%s", r.Message())
	}

	if *show {
		s, err := filtered.Visualize(imageaccess.DefaultDecimals)
		if err != nil {
			log.Fatalf("Visualize failed: %v", err)
		}
		fmt.Print(s)
	}

	if err := save(filtered, *scale, *output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Result saved to %s (%dx%d, %s padding)\n", *output, *size, *size, padding)
}

// gradient returns a diagonal ramp from 0 to 255.
func gradient(n int) (*imageaccess.ImageAccess, error) {
	img, err := imageaccess.New(n, n)
	if err != nil {
		return nil, err
	}
	span := float64(max(2*(n-1), 1))
	for y := range n {
		for x := range n {
			v := imageaccess.Gray(float64(int(255 * float64(x+y) / span)))
			if err := img.SetPixel(x, y, v, imageaccess.Mirror); err != nil {
				return nil, err
			}
		}
	}
	return img, nil
}

// addImpulseNoise sets a fraction of the pixels to 0 or 255.
func addImpulseNoise(img *imageaccess.ImageAccess, fraction float64) error {
	rng := rand.New(rand.NewPCG(1, 2))
	count := int(fraction * float64(img.Width()*img.Height()))
	for range count {
		x, y := rng.IntN(img.Width()), rng.IntN(img.Height())
		v := 0.0
		if rng.IntN(2) == 1 {
			v = 255
		}
		if err := img.SetPixel(x, y, imageaccess.Gray(v), imageaccess.Mirror); err != nil {
			return err
		}
	}
	return nil
}

// median replaces every pixel by the median of its k x k neighborhood.
func median(src *imageaccess.ImageAccess, k int, p imageaccess.Padding) (*imageaccess.ImageAccess, error) {
	s := src.Shape()
	out, err := imageaccess.FromShape(s[:])
	if err != nil {
		return nil, err
	}
	for y := range src.Height() {
		for x := range src.Width() {
			nbh, err := src.GetNbh(x, y, k, k, p)
			if err != nil {
				return nil, err
			}
			sorted, err := nbh.Sort(nil)
			if err != nil {
				return nil, err
			}
			v := sorted[0][len(sorted[0])/2]
			if err := out.SetPixel(x, y, imageaccess.Gray(v), imageaccess.Mirror); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

func save(img *imageaccess.ImageAccess, scale float64, path string) error {
	rgba, err := img.ToImage(scale, scale >= 4)
	if err != nil {
		return err
	}
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return png.Encode(f, rgba)
}
