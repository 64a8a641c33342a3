// Package image1bit provides a 1-bit image format matching the SSD1306 display RAM.
//
// Pixels are packed in vertical bytes grouped in pages of 8 rows. Bit 0 of each byte
// is the top pixel of its page. This package provides the Bit color type and the
// VerticalLSB image implementation.
package image1bit

import (
	"image"
	"image/color"
)

// Bit represents a monochrome pixel. On is a lit pixel, Off a dark one.
type Bit bool

const (
	Off = Bit(false)
	On  = Bit(true)
)

// RGBA converts the Bit to standard RGBA. On is opaque white, Off is opaque black.
func (b Bit) RGBA() (r, g, bl, a uint32) {
	if b {
		return 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF
	}
	return 0, 0, 0, 0xFFFF
}

func (b Bit) String() string {
	if b {
		return "On"
	}
	return "Off"
}

// toBit converts any color.Color to Bit.
func toBit(c color.Color) color.Color {
	if b, ok := c.(Bit); ok {
		return b
	}
	r, g, b, _ := c.RGBA()
	// Rec. 601 luma: 0.299R + 0.587G + 0.114B
	y := (299*r + 587*g + 114*b + 500) / 1000
	return Bit(y >= 0x8000)
}

// BitModel converts colors to Bit.
var BitModel = color.ModelFunc(toBit)

// VerticalLSB is a 1-bit image laid out in pages of 8 rows.
// Each byte holds 8 vertical pixels: bit 0 = top row of the page.
type VerticalLSB struct {
	Pix    []byte          // Pixel data (8 vertical pixels per byte)
	Stride int             // Bytes per page, equal to the image width
	Rect   image.Rectangle // Image bounds
}

// NewVerticalLSB creates a new VerticalLSB image with the specified bounds.
// The height is rounded up to a whole number of pages.
func NewVerticalLSB(r image.Rectangle) *VerticalLSB {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		return &VerticalLSB{Rect: r}
	}
	pages := (h + 7) / 8
	return &VerticalLSB{
		Pix:    make([]byte, w*pages),
		Stride: w,
		Rect:   r,
	}
}

// ColorModel returns the color model of the image.
func (p *VerticalLSB) ColorModel() color.Model {
	return BitModel
}

// Bounds returns the image bounds.
func (p *VerticalLSB) Bounds() image.Rectangle {
	return p.Rect
}

// At returns the color of the pixel at (x, y).
// It implements the image.Image interface.
func (p *VerticalLSB) At(x, y int) color.Color {
	return p.BitAt(x, y)
}

// BitAt returns the Bit of the pixel at (x, y).
func (p *VerticalLSB) BitAt(x, y int) Bit {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return Off
	}
	offset, mask := p.pixOffset(x, y)
	return Bit(p.Pix[offset]&mask != 0)
}

// Set sets the color of the pixel at (x, y).
func (p *VerticalLSB) Set(x, y int, c color.Color) {
	p.SetBit(x, y, BitModel.Convert(c).(Bit))
}

// SetBit sets the Bit of the pixel at (x, y).
// This is faster than Set() as it doesn't require color conversion.
func (p *VerticalLSB) SetBit(x, y int, b Bit) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	offset, mask := p.pixOffset(x, y)
	if b {
		p.Pix[offset] |= mask
	} else {
		p.Pix[offset] &^= mask
	}
}

// Fill sets every pixel to b in a single pass over the bytes.
func (p *VerticalLSB) Fill(b Bit) {
	v := byte(0x00)
	if b {
		v = 0xFF
	}
	for i := range p.Pix {
		p.Pix[i] = v
	}
}

// Invert complements every byte of the image.
func (p *VerticalLSB) Invert() {
	for i := range p.Pix {
		p.Pix[i] = ^p.Pix[i]
	}
}

// Page returns the bytes of page n (rows n*8 to n*8+7).
// It returns nil when n is out of range. The slice aliases Pix.
func (p *VerticalLSB) Page(n int) []byte {
	if n < 0 || (n+1)*p.Stride > len(p.Pix) {
		return nil
	}
	return p.Pix[n*p.Stride : (n+1)*p.Stride]
}

// pixOffset returns the byte offset and bit mask for the pixel at (x, y).
// Memory layout: byte x + (y/8)*Stride, bit y%8.
func (p *VerticalLSB) pixOffset(x, y int) (offset int, mask byte) {
	pX := x - p.Rect.Min.X
	pY := y - p.Rect.Min.Y
	offset = pX + (pY/8)*p.Stride
	mask = 1 << uint(pY&7)
	return
}
