package ssd1306

import (
	"fmt"

	"github.com/flavioheleno/ssd1306/font"
)

// CharError reports the character DrawString stopped at.
type CharError struct {
	Char  byte  // Failing character
	Index int   // Byte offset of Char in the string
	Err   error // ErrNoSpace or ErrNoGlyph
}

func (e *CharError) Error() string {
	return fmt.Sprintf("ssd1306: character %q at %d: %v", e.Char, e.Index, e.Err)
}

func (e *CharError) Unwrap() error {
	return e.Err
}

// MoveCursor sets the text cursor. The position is not validated until the next
// glyph is drawn.
func (d *Dev) MoveCursor(x, y int) {
	d.curX, d.curY = x, y
}

// Cursor returns the text cursor position.
func (d *Dev) Cursor() (x, y int) {
	return d.curX, d.curY
}

// DrawChar draws ch at the cursor and advances the cursor by the glyph width.
//
// The whole cell is painted: set glyph bits with c and the background with its
// complement. When the cell does not fit on the display ErrNoSpace is returned
// and nothing is drawn. The cursor never wraps.
func (d *Dev) DrawChar(ch byte, f font.Font, c Color) error {
	fw, fh := f.Width(), f.Height()
	if d.curX < 0 || d.curY < 0 || d.curX+fw > d.rect.Dx() || d.curY+fh > d.rect.Dy() {
		return ErrNoSpace
	}
	rows, ok := f.Glyph(ch)
	if !ok || len(rows) < fh {
		return ErrNoGlyph
	}

	for i := 0; i < fh; i++ {
		b := rows[i]
		for j := 0; j < fw; j++ {
			if (b<<uint(j))&0x8000 != 0 {
				d.SetPixel(d.curX+j, d.curY+i, c)
			} else {
				d.SetPixel(d.curX+j, d.curY+i, !c)
			}
		}
	}

	d.curX += fw
	return nil
}

// DrawString draws s one byte at a time with DrawChar.
//
// It stops at the first character that cannot be drawn and returns the number of
// characters written along with a *CharError. Characters after the failing one
// are not drawn.
func (d *Dev) DrawString(s string, f font.Font, c Color) (int, error) {
	for i := 0; i < len(s); i++ {
		if err := d.DrawChar(s[i], f, c); err != nil {
			return i, &CharError{Char: s[i], Index: i, Err: err}
		}
	}
	return len(s), nil
}
