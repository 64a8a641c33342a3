package ssd1306

import "github.com/flavioheleno/ssd1306/image1bit"

// SetPixel sets the pixel at (x, y) in the framebuffer. Out of bounds
// coordinates are ignored.
//
// While the framebuffer is inverted (see ToggleInvert) the stored value is the
// complement of c, so drawing keeps its meaning on an inverted screen.
func (d *Dev) SetPixel(x, y int, c Color) {
	if x < 0 || y < 0 || x >= d.rect.Dx() || y >= d.rect.Dy() {
		return
	}
	if d.inverted {
		c = !c
	}
	d.fb.SetBit(x, y, c)
}

// Pixel returns the color last drawn at (x, y), undoing the inversion applied
// by SetPixel. Out of bounds coordinates read as Black.
func (d *Dev) Pixel(x, y int) Color {
	if x < 0 || y < 0 || x >= d.rect.Dx() || y >= d.rect.Dy() {
		return Black
	}
	c := d.fb.BitAt(x, y)
	if d.inverted {
		c = !c
	}
	return c
}

// Fill sets every framebuffer byte to c. The inversion flag is not applied.
func (d *Dev) Fill(c Color) {
	d.fb.Fill(c)
}

// ToggleInvert complements the whole framebuffer and flips the inversion flag.
func (d *Dev) ToggleInvert() {
	d.inverted = !d.inverted
	d.fb.Invert()
}

// Inverted reports whether the framebuffer is currently inverted.
func (d *Dev) Inverted() bool {
	return d.inverted
}

// Image returns the framebuffer. It aliases the device memory: drawing on the
// device is visible through it and writes to it are sent by the next Flush.
func (d *Dev) Image() *image1bit.VerticalLSB {
	return d.fb
}

// Buffer returns the raw framebuffer bytes in page order.
func (d *Dev) Buffer() []byte {
	return d.fb.Pix
}
