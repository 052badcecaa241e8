// Package texture decodes image files into RGBA pixel data ready for upload.
package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"path"
	"strings"

	// Image decoders
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Magenta is the transparency key used by paletted sprite sheets.
var Magenta = color.RGBA{R: 255, G: 0, B: 255, A: 255}

// Decode decodes an image file. TGA is chosen by the file extension since it
// has no magic number; every other format is sniffed from the data.
func Decode(name string, data []byte) (*image.RGBA, error) {
	if strings.EqualFold(path.Ext(name), ".tga") {
		img, err := DecodeTGA(data)
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", name, err)
		}
		return img, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}
	return ToRGBA(img), nil
}

// ToRGBA converts img to *image.RGBA with its origin at (0, 0).
// An image that already qualifies is returned as is.
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

// ApplyColorKey makes every pixel within tolerance of key fully transparent.
// Keyed pixels are also zeroed so linear filtering does not bleed the key color.
// Returns the number of pixels keyed.
func ApplyColorKey(img *image.RGBA, key color.RGBA, tolerance uint8) int {
	keyed := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := img.PixOffset(x, y)
			if near(img.Pix[i], key.R, tolerance) && near(img.Pix[i+1], key.G, tolerance) && near(img.Pix[i+2], key.B, tolerance) {
				img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = 0, 0, 0, 0
				keyed++
			}
		}
	}
	return keyed
}

func near(a, b, tolerance uint8) bool {
	if a > b {
		return a-b <= tolerance
	}
	return b-a <= tolerance
}
