// Package font provides bitmap fonts for the SSD1306 text renderer.
//
// A glyph is a fixed Width x Height cell. Each of its rows is packed into a 16-bit
// word whose most significant bit is the leftmost column, so fonts up to 16 pixels
// wide are supported.
package font

import "errors"

// MaxWidth is the widest glyph a row word can hold.
const MaxWidth = 16

// Font looks up glyphs by character code.
type Font interface {
	// Width returns the glyph width in pixels.
	Width() int
	// Height returns the glyph height in pixels.
	Height() int
	// Glyph returns the Height() row words for ch, or false if ch is not defined.
	Glyph(ch byte) ([]uint16, bool)
}

// Table is a font stored as one contiguous row array, the layout used by most
// embedded font assets: the rows of ch start at (ch-First)*H.
type Table struct {
	W     int      // Glyph width in pixels (at most MaxWidth)
	H     int      // Glyph height in pixels
	First byte     // First character code in Data, commonly ' ' (32)
	Data  []uint16 // Row words
}

var (
	errWidth  = errors.New("font: width must be between 1 and 16")
	errHeight = errors.New("font: height must be positive")
)

// Validate checks the table geometry.
func (t *Table) Validate() error {
	if t.W <= 0 || t.W > MaxWidth {
		return errWidth
	}
	if t.H <= 0 {
		return errHeight
	}
	return nil
}

// Width implements Font.
func (t *Table) Width() int {
	return t.W
}

// Height implements Font.
func (t *Table) Height() int {
	return t.H
}

// Glyph implements Font.
func (t *Table) Glyph(ch byte) ([]uint16, bool) {
	if ch < t.First || t.H <= 0 {
		return nil, false
	}
	start := int(ch-t.First) * t.H
	if start+t.H > len(t.Data) {
		return nil, false
	}
	return t.Data[start : start+t.H], true
}

// Len returns the number of glyphs in the table.
func (t *Table) Len() int {
	if t.H <= 0 {
		return 0
	}
	return len(t.Data) / t.H
}

// StringSize returns the width and height in pixels of s rendered with f on a
// single line.
func StringSize(s string, f Font) (w, h int) {
	return len(s) * f.Width(), f.Height()
}

var _ Font = &Table{}
