package ssd1306

import (
	"errors"
	"image/color"

	"github.com/flavioheleno/ssd1306/image1bit"
	"tinygo.org/x/drivers"
)

// Displayer adapts a Dev to the TinyGo drivers.Displayer interface so that
// tinyfont, tinydraw and tinyterm can render on it.
//
// Colors are reduced to a Bit with image1bit.BitModel.
type Displayer struct {
	dev *Dev
}

// NewDisplayer wraps d.
func NewDisplayer(d *Dev) *Displayer {
	return &Displayer{dev: d}
}

// Size returns the display size in pixels.
func (p *Displayer) Size() (x, y int16) {
	return int16(p.dev.rect.Dx()), int16(p.dev.rect.Dy())
}

// SetPixel draws one pixel in the framebuffer.
func (p *Displayer) SetPixel(x, y int16, c color.RGBA) {
	p.dev.SetPixel(int(x), int(y), toColor(c))
}

// Display flushes the framebuffer.
func (p *Displayer) Display() error {
	return p.dev.Flush()
}

// FillRectangle fills the width x height rectangle at (x, y).
func (p *Displayer) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if width <= 0 || height <= 0 {
		return errors.New("ssd1306: invalid rectangle size")
	}
	bit := toColor(c)
	for j := int(y); j < int(y)+int(height); j++ {
		for i := int(x); i < int(x)+int(width); i++ {
			p.dev.SetPixel(i, j, bit)
		}
	}
	return nil
}

// SetScroll moves the hardware start line. Errors are dropped, the interface
// has no way to report them.
func (p *Displayer) SetScroll(line int16) {
	_ = p.dev.SetStartLine(byte(line))
}

// SetRotation only accepts drivers.Rotation0.
func (p *Displayer) SetRotation(rotation drivers.Rotation) error {
	if rotation != drivers.Rotation0 {
		return errors.New("ssd1306: rotation not supported")
	}
	return nil
}

func toColor(c color.RGBA) Color {
	return image1bit.BitModel.Convert(c).(image1bit.Bit)
}

var _ drivers.Displayer = &Displayer{}
