package imageio

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// newTestImage creates a 2x2 image with white, red, green and blue pixels
func newTestImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	img.Set(1, 0, color.RGBA{R: 255, G: 0, B: 0, A: 255})
	img.Set(0, 1, color.RGBA{R: 0, G: 255, B: 0, A: 255})
	img.Set(1, 1, color.RGBA{R: 0, G: 0, B: 255, A: 255})
	return img
}

func TestWritePPM_Format(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePPM(&buf, newTestImage()); err != nil {
		t.Fatalf("WritePPM failed: %v", err)
	}

	expected := "P3\n2 2\n255\n255 255 255\n255 0 0\n0 255 0\n0 0 255\n"
	if buf.String() != expected {
		t.Errorf("Unexpected PPM output:\n%q\nexpected:\n%q", buf.String(), expected)
	}
}

func TestReadPPM_RoundTrip(t *testing.T) {
	original := newTestImage()

	var buf bytes.Buffer
	if err := WritePPM(&buf, original); err != nil {
		t.Fatalf("WritePPM failed: %v", err)
	}
	decoded, err := ReadPPM(&buf)
	if err != nil {
		t.Fatalf("ReadPPM failed: %v", err)
	}

	if decoded.Bounds() != original.Bounds() {
		t.Fatalf("Expected bounds %v, got %v", original.Bounds(), decoded.Bounds())
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if decoded.RGBAAt(x, y) != original.RGBAAt(x, y) {
				t.Errorf("Pixel (%d, %d): expected %v, got %v", x, y, original.RGBAAt(x, y), decoded.RGBAAt(x, y))
			}
		}
	}
}

func TestReadPPM_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"binary magic", "P6\n1 1\n255\n"},
		{"bad size", "P3\n0 1\n255\n"},
		{"bad max value", "P3\n1 1\n65535\n0 0 0\n"},
		{"truncated pixels", "P3\n2 1\n255\n1 2 3\n"},
		{"out of range", "P3\n1 1\n255\n256 0 0\n"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadPPM(strings.NewReader(tt.input)); err == nil {
				t.Errorf("Expected error for %q", tt.input)
			}
		})
	}
}

func TestEncoderFor(t *testing.T) {
	for _, name := range []string{"out.ppm", "OUT.PPM", "render.png"} {
		if _, err := EncoderFor(name); err != nil {
			t.Errorf("EncoderFor(%q): unexpected error %v", name, err)
		}
	}
	for _, name := range []string{"out.jpg", "out"} {
		if _, err := EncoderFor(name); err == nil {
			t.Errorf("EncoderFor(%q): expected error", name)
		}
	}
}

// loadImage decodes a written output by extension
func loadImage(t *testing.T, path string) image.Image {
	t.Helper()
	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open %s: %v", path, err)
	}
	defer file.Close()

	var img image.Image
	if filepath.Ext(path) == ".ppm" {
		img, err = ReadPPM(file)
	} else {
		img, err = png.Decode(file)
	}
	if err != nil {
		t.Fatalf("Failed to decode %s: %v", path, err)
	}
	return img
}

func TestOutput_WriteRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	original := newTestImage()

	for _, name := range []string{"test.ppm", "test.png"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(tmpDir, name)
			out, err := Create(path)
			if err != nil {
				t.Fatalf("Create failed: %v", err)
			}
			if out.Path() != path {
				t.Errorf("Expected path %s, got %s", path, out.Path())
			}
			if err := out.Write(original); err != nil {
				t.Fatalf("Write failed: %v", err)
			}

			loaded := loadImage(t, path)
			if loaded.Bounds() != original.Bounds() {
				t.Fatalf("Expected bounds %v, got %v", original.Bounds(), loaded.Bounds())
			}
			for y := 0; y < 2; y++ {
				for x := 0; x < 2; x++ {
					got := color.RGBAModel.Convert(loaded.At(x, y)).(color.RGBA)
					if got != original.RGBAAt(x, y) {
						t.Errorf("Pixel (%d, %d): expected %v, got %v", x, y, original.RGBAAt(x, y), got)
					}
				}
			}
		})
	}
}

func TestCreate_Errors(t *testing.T) {
	tmpDir := t.TempDir()

	if _, err := Create(filepath.Join(tmpDir, "missing", "out.ppm")); err == nil {
		t.Error("Expected error when the output directory does not exist")
	}

	path := filepath.Join(tmpDir, "out.bmp")
	if _, err := Create(path); err == nil {
		t.Error("Expected error for unsupported format")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("No file should be created for an unsupported format")
	}
}

func TestOutput_FailedWriteRemovesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	out, err := Create(path)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// PNG cannot encode an empty image
	if err := out.Write(image.NewRGBA(image.Rect(0, 0, 0, 0))); err == nil {
		t.Fatal("Expected encode error for an empty image")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Failed write should not leave a partial file")
	}
}

func TestOutput_Discard(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.ppm")
	out, err := Create(path)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := out.Discard(); err != nil {
		t.Fatalf("Discard failed: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Discarded output should be removed")
	}
}
