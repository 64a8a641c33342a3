package font

import (
	"fmt"
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// FromFonter rasterizes the glyphs first..last of a tinyfont font into a
// fixed-cell Table.
//
// The cell is as wide as the largest XAdvance and as high as the font's
// YAdvance. Glyphs are placed on a common baseline, the largest ascent in the
// range, so that every glyph keeps its vertical position. Pixels falling
// outside the cell are dropped.
func FromFonter(f tinyfont.Fonter, first, last byte) (*Table, error) {
	if last < first {
		return nil, fmt.Errorf("font: empty range %d..%d", first, last)
	}

	w, ascent := 0, 0
	for ch := int(first); ch <= int(last); ch++ {
		info := f.GetGlyph(rune(ch)).Info()
		if int(info.XAdvance) > w {
			w = int(info.XAdvance)
		}
		if -int(info.YOffset) > ascent {
			ascent = -int(info.YOffset)
		}
	}
	h := int(f.GetYAdvance())
	if h < ascent {
		h = ascent
	}

	t := &Table{W: w, H: h, First: first}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("font: cannot use tinyfont font with %dx%d cells: %w", w, h, err)
	}

	n := int(last) - int(first) + 1
	t.Data = make([]uint16, n*h)
	cell := &capture{w: int16(w), h: int16(h)}
	for i := 0; i < n; i++ {
		cell.rows = t.Data[i*h : (i+1)*h]
		g := f.GetGlyph(rune(int(first) + i))
		g.Draw(cell, 0, int16(ascent), color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
	}
	return t, nil
}

// capture is a drivers.Displayer that records lit pixels into row words.
type capture struct {
	w, h int16
	rows []uint16
}

func (c *capture) Size() (x, y int16) {
	return c.w, c.h
}

func (c *capture) SetPixel(x, y int16, _ color.RGBA) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.rows[y] |= 0x8000 >> uint(x)
}

func (c *capture) Display() error {
	return nil
}

var _ drivers.Displayer = &capture{}
