package font

import (
	"fmt"
	"io"

	"github.com/32bitkid/bitreader"
)

// ReadPacked decodes count glyphs from a dense bit strip: every row is w bits,
// most significant bit first, with no padding between rows or glyphs. This is the
// compact form font assets are usually stored in on flash.
//
// The rows are expanded into a Table whose first glyph is first.
func ReadPacked(r io.Reader, w, h int, first byte, count int) (*Table, error) {
	t := &Table{W: w, H: h, First: first}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if count < 0 || int(first)+count > 256 {
		return nil, fmt.Errorf("font: invalid glyph count %d from %d", count, first)
	}

	br := bitreader.NewReader(r)
	t.Data = make([]uint16, count*h)
	for i := range t.Data {
		v, err := br.Read32(uint(w))
		if err != nil {
			return nil, fmt.Errorf("font: glyph %d row %d: %w", i/h, i%h, err)
		}
		t.Data[i] = uint16(v << uint(MaxWidth-w))
	}
	return t, nil
}
