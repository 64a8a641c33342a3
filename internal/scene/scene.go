// Package scene draws the demo frames shared by the example programs.
//
// A scene only draws into the framebuffer; the caller decides when to flush.
package scene

import (
	"errors"
	"fmt"

	"github.com/flavioheleno/ssd1306"
	"github.com/flavioheleno/ssd1306/font"
)

// Scene is a named demo frame.
type Scene struct {
	Name string
	Draw func(d *ssd1306.Dev, f font.Font) error
}

// All returns every scene in presentation order.
func All() []Scene {
	return []Scene{
		{"shapes", func(d *ssd1306.Dev, _ font.Font) error { Shapes(d); return nil }},
		{"filled", func(d *ssd1306.Dev, _ font.Font) error { Filled(d); return nil }},
		{"text", Text},
		{"pattern", func(d *ssd1306.Dev, _ font.Font) error { Checker(d, 4); return nil }},
		{"logo", func(d *ssd1306.Dev, _ font.Font) error { return Logo(d) }},
	}
}

// ByName returns the scene called name.
func ByName(name string) (Scene, bool) {
	for _, s := range All() {
		if s.Name == name {
			return s, true
		}
	}
	return Scene{}, false
}

// Names returns the scene names.
func Names() []string {
	var names []string
	for _, s := range All() {
		names = append(names, s.Name)
	}
	return names
}

// Shapes draws outlined primitives.
func Shapes(d *ssd1306.Dev) {
	w, h := d.Bounds().Dx(), d.Bounds().Dy()
	d.Fill(ssd1306.Black)
	d.DrawRect(0, 0, w-1, h-1, ssd1306.White)
	d.DrawLine(0, 0, w-1, h-1, ssd1306.White)
	d.DrawLine(0, h-1, w-1, 0, ssd1306.White)
	d.DrawCircle(w/2, h/2, h/3, ssd1306.White)
	d.DrawTriangle(4, h-5, w/4, 4, w/2-4, h-5, ssd1306.White)
}

// Filled draws filled primitives, some overlapping in Black.
func Filled(d *ssd1306.Dev) {
	w, h := d.Bounds().Dx(), d.Bounds().Dy()
	d.Fill(ssd1306.Black)
	d.DrawFilledRect(2, 2, w/3, h/2, ssd1306.White)
	d.DrawFilledCircle(w/2, h/2, h/4, ssd1306.White)
	d.DrawFilledCircle(w/2, h/2, h/8, ssd1306.Black)
	d.DrawFilledTriangle(w-2, h-2, w-w/3, h-2, w-2, h/3, ssd1306.White)
}

// Text draws a few lines of text, the last one in reverse video.
func Text(d *ssd1306.Dev, f font.Font) error {
	d.Fill(ssd1306.Black)
	lines := []string{"SSD1306", fmt.Sprintf("%dx%d", d.Bounds().Dx(), d.Bounds().Dy()), "Hello, OLED!"}
	y := 0
	for i, s := range lines {
		if y+f.Height() > d.Bounds().Dy() {
			break
		}
		d.MoveCursor(0, y)
		c := ssd1306.White
		if i == len(lines)-1 {
			c = ssd1306.Black
		}
		// Long lines are cut at the right edge
		if _, err := d.DrawString(s, f, c); err != nil && !errors.Is(err, ssd1306.ErrNoSpace) {
			return err
		}
		y += f.Height() + 1
	}
	return nil
}

// Checker draws a checkerboard of size x size squares.
func Checker(d *ssd1306.Dev, size int) {
	if size <= 0 {
		size = 1
	}
	b := d.Bounds()
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			d.SetPixel(x, y, ssd1306.Color((x/size+y/size)%2 == 0))
		}
	}
}

// logo is a 16x16 smiley, 1 = ink.
var logo = []byte{
	0x07, 0xE0,
	0x18, 0x18,
	0x20, 0x04,
	0x40, 0x02,
	0x48, 0x12,
	0x88, 0x11,
	0x80, 0x01,
	0x80, 0x01,
	0x80, 0x01,
	0x90, 0x09,
	0x88, 0x11,
	0x47, 0xE2,
	0x40, 0x02,
	0x20, 0x04,
	0x18, 0x18,
	0x07, 0xE0,
}

// Logo draws the smiley bitmap tiled across the display.
func Logo(d *ssd1306.Dev) error {
	b := d.Bounds()
	d.Fill(ssd1306.Black)
	for y := 0; y+16 <= b.Dy(); y += 16 {
		for x := 0; x+16 <= b.Dx(); x += 24 {
			// Set bits are drawn in the complement of the color
			if err := d.DrawBitmap(x, y, logo, 16, 16, ssd1306.Black); err != nil {
				return err
			}
		}
	}
	return nil
}
