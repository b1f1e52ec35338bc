package imageaccess

import (
	"errors"
	"testing"
)

// ramp returns a gray image whose pixel (x, y) is 10*y + x.
func ramp(t *testing.T, ny, nx int) *ImageAccess {
	t.Helper()
	rows := make([][]float64, ny)
	for y := range rows {
		rows[y] = make([]float64, nx)
		for x := range rows[y] {
			rows[y][x] = float64(10*y + x)
		}
	}
	img, err := FromArray(rows)
	if err != nil {
		t.Fatal(err)
	}
	return img
}

func mustPixel(t *testing.T, img *ImageAccess, x, y int, p Padding) Pixel {
	t.Helper()
	v, err := img.GetPixel(x, y, p)
	if err != nil {
		t.Fatalf("GetPixel(%d,%d,%v) error = %v", x, y, p, err)
	}
	return v
}

func TestSetGetRoundTrip(t *testing.T) {
	img, _ := New(4, 5)
	for y := range 4 {
		for x := range 5 {
			v := Gray(float64(x*7 - y*3))
			if err := img.SetPixel(x, y, v, Mirror); err != nil {
				t.Fatal(err)
			}
			if got := mustPixel(t, img, x, y, Mirror); got != v {
				t.Fatalf("GetPixel(%d,%d) = %v, want %v", x, y, got, v)
			}
		}
	}
}

func TestGetPixelPadding(t *testing.T) {
	img := ramp(t, 3, 4)
	nx := img.Width()
	for y := range img.Height() {
		if got, want := mustPixel(t, img, -1, y, Mirror), mustPixel(t, img, 0, y, Mirror); got != want {
			t.Errorf("mirror (-1,%d) = %v, want %v", y, got, want)
		}
		if got, want := mustPixel(t, img, nx, y, Mirror), mustPixel(t, img, nx-1, y, Mirror); got != want {
			t.Errorf("mirror (%d,%d) = %v, want %v", nx, y, got, want)
		}
		if got, want := mustPixel(t, img, -1, y, Repeat), mustPixel(t, img, nx-1, y, Repeat); got != want {
			t.Errorf("repeat (-1,%d) = %v, want %v", y, got, want)
		}
		if got, want := mustPixel(t, img, nx, y, Repeat), mustPixel(t, img, 0, y, Repeat); got != want {
			t.Errorf("repeat (%d,%d) = %v, want %v", nx, y, got, want)
		}
		if got := mustPixel(t, img, nx, y, Zero); got != Gray(0) {
			t.Errorf("zero (%d,%d) = %v, want 0", nx, y, got)
		}
	}
	// y axis resolves independently.
	if got := mustPixel(t, img, 1, -1, Mirror); got != Gray(1) {
		t.Errorf("mirror (1,-1) = %v, want 1", got)
	}
	if got := mustPixel(t, img, 1, 3, Repeat); got != Gray(1) {
		t.Errorf("repeat (1,3) = %v, want 1", got)
	}
	if got := mustPixel(t, img, 1, -1, Zero); got != Gray(0) {
		t.Errorf("zero (1,-1) = %v, want 0", got)
	}
}

func TestGetPixelZeroRGB(t *testing.T) {
	img, _ := New(2, 2, WithRGB(), WithInitValue(5))
	if got := mustPixel(t, img, -1, 0, Zero); got != RGB(0, 0, 0) {
		t.Errorf("zero padding = %v, want [0 0 0]", got)
	}
}

func TestGetPixelInvalidPadding(t *testing.T) {
	img, _ := New(2, 2)
	if _, err := img.GetPixel(0, 0, Padding(42)); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("error = %v, want ErrInvalidArgument", err)
	}
}

func TestSetPixelPadding(t *testing.T) {
	img, _ := New(3, 3)
	if err := img.SetPixel(-1, 0, Gray(5), Mirror); err != nil {
		t.Fatal(err)
	}
	if got := img.At(0, 0); got != Gray(5) {
		t.Errorf("mirror write (-1,0) landed elsewhere: At(0,0) = %v", got)
	}
	if err := img.SetPixel(-1, 0, Gray(6), Repeat); err != nil {
		t.Fatal(err)
	}
	if got := img.At(2, 0); got != Gray(6) {
		t.Errorf("repeat write (-1,0): At(2,0) = %v, want 6", got)
	}
	if err := img.SetPixel(0, 0, Gray(1), Zero); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("zero padding write error = %v, want ErrInvalidArgument", err)
	}
}

func TestSetPixelArityMismatch(t *testing.T) {
	var got []Diagnostic
	capture := WithDiagnostics(func(d Diagnostic) { got = append(got, d) })

	gray, _ := New(2, 2, capture)
	if err := gray.SetPixel(1, 0, RGB(3, 6, 9), Mirror); err != nil {
		t.Fatalf("rgb into gray should not fail: %v", err)
	}
	if v := gray.At(1, 0); v != Gray(6) {
		t.Errorf("At(1,0) = %v, want mean 6", v)
	}

	color, _ := New(2, 2, WithRGB(), capture)
	if err := color.SetPixel(0, 1, Gray(4), Mirror); err != nil {
		t.Fatalf("gray into rgb should not fail: %v", err)
	}
	if v := color.At(0, 1); v != RGB(4, 4, 4) {
		t.Errorf("At(0,1) = %v, want [4 4 4]", v)
	}

	if len(got) != 2 {
		t.Fatalf("got %d diagnostics, want 2", len(got))
	}
	if got[0].Kind != ArityMismatch || got[0].Op != "SetPixel" || got[0].X != 1 || got[0].Y != 0 {
		t.Errorf("diagnostic = %+v", got[0])
	}

	_ = gray.SetPixel(0, 0, Gray(1), Mirror)
	if len(got) != 2 {
		t.Error("matching arity emitted a diagnostic")
	}
}

func TestGetRowColumn(t *testing.T) {
	img := ramp(t, 3, 4)

	row, err := img.GetRow(1, Mirror)
	if err != nil {
		t.Fatal(err)
	}
	if row.Shape() != [2]int{1, 4} {
		t.Fatalf("row Shape() = %v, want [1 4]", row.Shape())
	}
	for x := range 4 {
		if got := row.At(x, 0); got != Gray(float64(10+x)) {
			t.Errorf("row[%d] = %v", x, got)
		}
	}

	col, err := img.GetColumn(2, Mirror)
	if err != nil {
		t.Fatal(err)
	}
	if col.Shape() != [2]int{3, 1} {
		t.Fatalf("column Shape() = %v, want [3 1]", col.Shape())
	}
	for y := range 3 {
		if got := col.At(0, y); got != Gray(float64(10*y+2)) {
			t.Errorf("col[%d] = %v", y, got)
		}
	}

	// Snapshots are independent.
	_ = row.SetPixel(0, 0, Gray(-1), Mirror)
	if img.At(0, 1) != Gray(10) {
		t.Error("writing to GetRow result changed the image")
	}
}

func TestGetRowPadding(t *testing.T) {
	img := ramp(t, 3, 2)
	tests := []struct {
		name    string
		y       int
		padding Padding
		want    float64
	}{
		{"mirror -1", -1, Mirror, 0},
		{"mirror 3", 3, Mirror, 20},
		{"repeat -1", -1, Repeat, 20},
		{"repeat 3", 3, Repeat, 0},
		{"zero 3", 3, Zero, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, err := img.GetRow(tt.y, tt.padding)
			if err != nil {
				t.Fatal(err)
			}
			if got := row.At(0, 0); got != Gray(tt.want) {
				t.Errorf("row[0] = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetColumnZeroRGB(t *testing.T) {
	img, _ := New(3, 2, WithRGB(), WithInitValue(9))
	col, err := img.GetColumn(5, Zero)
	if err != nil {
		t.Fatal(err)
	}
	if col.Shape() != [2]int{3, 1} || !col.IsRGB() {
		t.Fatalf("column Shape() = %v, IsRGB() = %v", col.Shape(), col.IsRGB())
	}
	if col.GetMax() != 0 {
		t.Errorf("zero column max = %v, want 0", col.GetMax())
	}
}

func TestPutRowColumn(t *testing.T) {
	img, _ := New(3, 4)

	row, _ := FromArray([][]float64{{1, 2, 3, 4}})
	if err := img.PutRow(0, row, Mirror); err != nil {
		t.Fatal(err)
	}
	// A column-shaped line is accepted too.
	colShaped, _ := FromArray([][]float64{{5}, {6}, {7}, {8}})
	if err := img.PutRow(-1, colShaped, Repeat); err != nil {
		t.Fatal(err)
	}
	if got := img.At(3, 0); got != Gray(4) {
		t.Errorf("At(3,0) = %v, want 4", got)
	}
	if got := img.At(3, 2); got != Gray(8) {
		t.Errorf("At(3,2) = %v, want 8 (row -1 repeats to 2)", got)
	}

	col, _ := FromArray([][]float64{{9}, {9}, {9}})
	if err := img.PutColumn(1, col, Mirror); err != nil {
		t.Fatal(err)
	}
	for y := range 3 {
		if got := img.At(1, y); got != Gray(9) {
			t.Errorf("At(1,%d) = %v, want 9", y, got)
		}
	}
	if img.GetMax() != 9 {
		t.Errorf("GetMax() = %v, want 9", img.GetMax())
	}
}

func TestPutRowErrors(t *testing.T) {
	img, _ := New(3, 4)
	short, _ := New(1, 3)
	square, _ := New(2, 2)
	row, _ := New(1, 4)

	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{"short row", img.PutRow(0, short, Mirror), ErrDimensionMismatch},
		{"not a line", img.PutRow(0, square, Mirror), ErrDimensionMismatch},
		{"zero padding", img.PutRow(0, row, Zero), ErrInvalidArgument},
		{"nil row", img.PutRow(0, nil, Mirror), ErrInvalidArgument},
		{"short column", img.PutColumn(0, row, Mirror), ErrDimensionMismatch},
		{"column zero padding", img.PutColumn(0, short, Zero), ErrInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.wantErr) {
				t.Errorf("error = %v, want %v", tt.err, tt.wantErr)
			}
		})
	}
}

func TestPutRowArityMismatch(t *testing.T) {
	var n int
	img, _ := New(1, 2, WithDiagnostics(func(Diagnostic) { n++ }))
	row, _ := FromArray([][][3]float64{{{0, 3, 6}, {3, 3, 3}}})
	if err := img.PutRow(0, row, Mirror); err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("got %d diagnostics, want 1 per call", n)
	}
	if img.At(0, 0) != Gray(3) || img.At(1, 0) != Gray(3) {
		t.Errorf("row = %v %v, want 3 3", img.At(0, 0), img.At(1, 0))
	}
}

func TestSubImageRoundTrip(t *testing.T) {
	img := ramp(t, 5, 6)
	orig := img.Copy()

	sub, err := img.GetSubImage(1, 2, 3, 2)
	if err != nil {
		t.Fatal(err)
	}
	if sub.Shape() != [2]int{2, 3} {
		t.Fatalf("sub Shape() = %v, want [2 3]", sub.Shape())
	}
	if got := sub.At(0, 0); got != Gray(21) {
		t.Errorf("sub(0,0) = %v, want 21", got)
	}
	if err := img.PutSubImage(1, 2, sub); err != nil {
		t.Fatal(err)
	}
	if r := img.ImageCompare(orig, 0); !r.Equal {
		t.Errorf("round trip changed image: %s", r.Message())
	}
}

func TestPutSubImage(t *testing.T) {
	img, _ := New(3, 3)
	sub, _ := FromArray([][]float64{{1, 2}, {3, 4}})
	if err := img.PutSubImage(1, 1, sub); err != nil {
		t.Fatal(err)
	}
	want := [][]float64{{0, 0, 0}, {0, 1, 2}, {0, 3, 4}}
	if r, _ := ArrayCompare(img.ToArray(), want, 0); !r.Equal {
		t.Errorf("PutSubImage result mismatch: %s", r.Message())
	}
	if img.GetMax() != 4 {
		t.Errorf("GetMax() = %v, want 4", img.GetMax())
	}
}

func TestSubImageBounds(t *testing.T) {
	img, _ := New(4, 4)
	sub, _ := New(2, 2)
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{"get negative x", get(img.GetSubImage(-1, 0, 2, 2)), ErrOutOfBounds},
		{"get too wide", get(img.GetSubImage(3, 0, 2, 2)), ErrOutOfBounds},
		{"get too tall", get(img.GetSubImage(0, 3, 1, 2)), ErrOutOfBounds},
		{"get empty", get(img.GetSubImage(0, 0, 0, 2)), ErrInvalidArgument},
		{"get exact fit", get(img.GetSubImage(0, 0, 4, 4)), nil},
		{"put negative y", img.PutSubImage(0, -1, sub), ErrOutOfBounds},
		{"put overflowing", img.PutSubImage(3, 3, sub), ErrOutOfBounds},
		{"put corner", img.PutSubImage(2, 2, sub), nil},
		{"put nil", img.PutSubImage(0, 0, nil), ErrInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.wantErr) {
				t.Errorf("error = %v, want %v", tt.err, tt.wantErr)
			}
		})
	}
}

func get(_ *ImageAccess, err error) error { return err }

func TestTransposeImage(t *testing.T) {
	img := ramp(t, 2, 3)
	orig := img.Copy()

	img.TransposeImage()
	if img.Shape() != [2]int{3, 2} {
		t.Fatalf("Shape() = %v, want [3 2]", img.Shape())
	}
	for y := range 2 {
		for x := range 3 {
			if img.At(y, x) != orig.At(x, y) {
				t.Errorf("transposed (%d,%d) = %v, want %v", y, x, img.At(y, x), orig.At(x, y))
			}
		}
	}

	img.TransposeImage()
	if r := img.ImageCompare(orig, 0); !r.Equal {
		t.Errorf("double transpose differs: %s", r.Message())
	}
}

func TestTransposeImageRGB(t *testing.T) {
	img, _ := FromArray([][][3]float64{{{1, 2, 3}, {4, 5, 6}}})
	img.TransposeImage()
	if img.Shape() != [2]int{2, 1} {
		t.Fatalf("Shape() = %v, want [2 1]", img.Shape())
	}
	if got := img.At(0, 1); got != RGB(4, 5, 6) {
		t.Errorf("At(0,1) = %v, want [4 5 6]", got)
	}
}
