package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// TGA image types.
const (
	TGATypeUncompressed = 2  // Uncompressed true-color
	TGATypeRLE          = 10 // RLE compressed true-color
)

const tgaHeaderSize = 18

var (
	ErrTGATruncated   = errors.New("tga: data truncated")
	ErrTGAUnsupported = errors.New("tga: unsupported format")
)

// DecodeTGA decodes uncompressed or RLE true-color TGA data with 24 or 32 bits
// per pixel.
func DecodeTGA(data []byte) (*image.RGBA, error) {
	if len(data) < tgaHeaderSize {
		return nil, ErrTGATruncated
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := data[2]
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	topToBottom := data[17]&0x20 != 0

	if colorMapType != 0 {
		return nil, fmt.Errorf("%w: color-mapped", ErrTGAUnsupported)
	}
	if imageType != TGATypeUncompressed && imageType != TGATypeRLE {
		return nil, fmt.Errorf("%w: type %d", ErrTGAUnsupported, imageType)
	}
	if bpp != 24 && bpp != 32 {
		return nil, fmt.Errorf("%w: %d bits per pixel", ErrTGAUnsupported, bpp)
	}

	offset := tgaHeaderSize + idLength
	if offset > len(data) {
		return nil, ErrTGATruncated
	}

	d := tgaDecoder{
		img:         image.NewRGBA(image.Rect(0, 0, width, height)),
		src:         data[offset:],
		bytesPP:     bpp / 8,
		width:       width,
		height:      height,
		topToBottom: topToBottom,
	}
	if imageType == TGATypeUncompressed {
		if len(d.src) < width*height*d.bytesPP {
			return nil, ErrTGATruncated
		}
		for d.n < width*height {
			d.put(d.pixel())
		}
	} else {
		d.rle()
	}
	return d.img, nil
}

type tgaDecoder struct {
	img         *image.RGBA
	src         []byte
	pos         int // Read offset into src
	n           int // Pixels written
	bytesPP     int
	width       int
	height      int
	topToBottom bool
}

// pixel reads one BGR(A) pixel.
func (d *tgaDecoder) pixel() color.RGBA {
	p := d.src[d.pos : d.pos+d.bytesPP]
	d.pos += d.bytesPP
	c := color.RGBA{R: p[2], G: p[1], B: p[0], A: 255}
	if d.bytesPP == 4 {
		c.A = p[3]
	}
	return c
}

func (d *tgaDecoder) fits() bool {
	return d.pos+d.bytesPP <= len(d.src)
}

// put writes the next pixel in file order. TGA rows are bottom-up unless the
// descriptor says otherwise.
func (d *tgaDecoder) put(c color.RGBA) {
	x, y := d.n%d.width, d.n/d.width
	if !d.topToBottom {
		y = d.height - 1 - y
	}
	d.img.SetRGBA(x, y, c)
	d.n++
}

// rle decodes run-length packets. A truncated stream leaves the remaining
// pixels transparent.
func (d *tgaDecoder) rle() {
	total := d.width * d.height
	for d.n < total && d.pos < len(d.src) {
		packet := d.src[d.pos]
		d.pos++
		count := int(packet&0x7F) + 1

		if packet&0x80 != 0 {
			if !d.fits() {
				return
			}
			c := d.pixel()
			for i := 0; i < count && d.n < total; i++ {
				d.put(c)
			}
			continue
		}
		for i := 0; i < count && d.n < total; i++ {
			if !d.fits() {
				return
			}
			d.put(d.pixel())
		}
	}
}
