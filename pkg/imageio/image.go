package imageio

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Encoder writes an image to w in a specific format
type Encoder func(w io.Writer, img image.Image) error

// WritePNG encodes img as PNG
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// EncoderFor picks an encoder from the file extension (.ppm or .png)
func EncoderFor(filename string) (Encoder, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".ppm":
		return WritePPM, nil
	case ".png":
		return WritePNG, nil
	default:
		return nil, fmt.Errorf("unsupported output format %q (use .ppm or .png)", filepath.Ext(filename))
	}
}

// Output is an image file created ahead of the image it will hold, so an
// unwritable target is reported before any rendering work is done
type Output struct {
	path   string
	file   *os.File
	encode Encoder
}

// Create picks the encoder for filename's extension and creates the file
func Create(filename string) (*Output, error) {
	encode, err := EncoderFor(filename)
	if err != nil {
		return nil, err
	}

	file, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create image file: %w", err)
	}
	return &Output{path: filename, file: file, encode: encode}, nil
}

// Path returns the file name the output was created with
func (o *Output) Path() string {
	return o.path
}

// Write encodes img into the file and closes it. On failure the partial
// file is removed.
func (o *Output) Write(img image.Image) error {
	if err := o.encode(o.file, img); err != nil {
		o.Discard()
		return fmt.Errorf("failed to write %s: %w", o.path, err)
	}
	if err := o.file.Close(); err != nil {
		os.Remove(o.path)
		return fmt.Errorf("failed to write %s: %w", o.path, err)
	}
	return nil
}

// Discard closes and removes the file without writing an image
func (o *Output) Discard() error {
	o.file.Close()
	if err := os.Remove(o.path); err != nil {
		return fmt.Errorf("failed to remove %s: %w", o.path, err)
	}
	return nil
}
