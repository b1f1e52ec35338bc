package buffer

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		height  int
		format  Format
		wantErr error
	}{
		{"gray", 4, 3, FormatGray, nil},
		{"rgb", 2, 2, FormatRGB, nil},
		{"1x1 minimum", 1, 1, FormatGray, nil},
		{"zero width", 0, 3, FormatGray, ErrInvalidDimensions},
		{"negative height", 3, -1, FormatRGB, ErrInvalidDimensions},
		{"invalid format", 3, 3, Format(9), ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := New(tt.width, tt.height, tt.format)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("New() error = %v, want %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if b.Width() != tt.width || b.Height() != tt.height {
				t.Errorf("size = %dx%d, want %dx%d", b.Width(), b.Height(), tt.width, tt.height)
			}
			want := tt.width * tt.height * tt.format.Channels()
			if b.Len() != want {
				t.Errorf("Len() = %d, want %d", b.Len(), want)
			}
		})
	}
}

func TestSetAt(t *testing.T) {
	b, err := New(3, 2, FormatRGB)
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Set(2, 1, [3]float64{1, 2, 3}); err != nil {
		t.Fatal(err)
	}
	if got := b.At(2, 1); got != [3]float64{1, 2, 3} {
		t.Errorf("At(2,1) = %v", got)
	}
	if got := b.At(0, 0); got != [3]float64{} {
		t.Errorf("At(0,0) = %v, want zeros", got)
	}
	if err := b.Set(3, 0, [3]float64{}); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Set(3,0) error = %v, want ErrOutOfBounds", err)
	}
	if got := b.At(-1, 0); got != [3]float64{} {
		t.Errorf("At(-1,0) = %v, want zeros", got)
	}
}

func TestGraySetIgnoresExtraChannels(t *testing.T) {
	b, _ := New(2, 1, FormatGray)
	_ = b.Set(0, 0, [3]float64{7, 8, 9})
	if got := b.Data(); got[0] != 7 || got[1] != 0 {
		t.Errorf("Data() = %v, want [7 0]", got)
	}
}

func TestTranspose(t *testing.T) {
	b, _ := New(3, 2, FormatGray)
	for i := range b.Data() {
		b.Data()[i] = float64(i)
	}
	b.Transpose()
	if b.Width() != 2 || b.Height() != 3 {
		t.Fatalf("size = %dx%d, want 2x3", b.Width(), b.Height())
	}
	// [[0 1 2] [3 4 5]] -> [[0 3] [1 4] [2 5]]
	want := []float64{0, 3, 1, 4, 2, 5}
	for i, v := range want {
		if b.Data()[i] != v {
			t.Fatalf("Data() = %v, want %v", b.Data(), want)
		}
	}
}

func TestTransposeRGBKeepsChannels(t *testing.T) {
	b, _ := New(2, 1, FormatRGB)
	_ = b.Set(1, 0, [3]float64{1, 2, 3})
	b.Transpose()
	if got := b.At(0, 1); got != [3]float64{1, 2, 3} {
		t.Errorf("At(0,1) = %v, want [1 2 3]", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b, _ := NewFilled(2, 2, FormatGray, 5)
	c := b.Clone()
	_ = c.Set(0, 0, [3]float64{1})
	if b.At(0, 0)[0] != 5 {
		t.Error("modifying clone changed original")
	}
}

func TestRow(t *testing.T) {
	b, _ := New(2, 2, FormatRGB)
	_ = b.Set(1, 1, [3]float64{4, 5, 6})
	row := b.Row(1)
	if len(row) != 6 || row[3] != 4 || row[5] != 6 {
		t.Errorf("Row(1) = %v", row)
	}
	if b.Row(2) != nil {
		t.Error("Row(2) should be nil")
	}
}
