package imageio

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
)

// WritePPM encodes img as a plain-text (P3) PPM: a header declaring width,
// height and max value 255, then one "r g b" line per pixel from the top row
// down, left to right
func WritePPM(w io.Writer, img image.Image) error {
	bounds := img.Bounds()
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", bounds.Dx(), bounds.Dy()); err != nil {
		return fmt.Errorf("failed to write PPM header: %w", err)
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", c.R, c.G, c.B); err != nil {
				return fmt.Errorf("failed to write PPM pixel (%d, %d): %w", x, y, err)
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush PPM: %w", err)
	}
	return nil
}

// ReadPPM decodes a plain-text (P3) PPM with max value 255
func ReadPPM(r io.Reader) (*image.RGBA, error) {
	br := bufio.NewReader(r)

	var magic string
	var width, height, maxValue int
	if _, err := fmt.Fscan(br, &magic, &width, &height, &maxValue); err != nil {
		return nil, fmt.Errorf("failed to read PPM header: %w", err)
	}
	if magic != "P3" {
		return nil, fmt.Errorf("unsupported PPM format %q", magic)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid PPM size %dx%d", width, height)
	}
	if maxValue != 255 {
		return nil, fmt.Errorf("unsupported PPM max value %d", maxValue)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var red, green, blue int
			if _, err := fmt.Fscan(br, &red, &green, &blue); err != nil {
				return nil, fmt.Errorf("failed to read PPM pixel (%d, %d): %w", x, y, err)
			}
			if red < 0 || red > maxValue || green < 0 || green > maxValue || blue < 0 || blue > maxValue {
				return nil, fmt.Errorf("PPM pixel (%d, %d) out of range", x, y)
			}
			img.SetRGBA(x, y, color.RGBA{R: uint8(red), G: uint8(green), B: uint8(blue), A: 255})
		}
	}

	return img, nil
}
