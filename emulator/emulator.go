// Package emulator is a software model of the SSD1306 controller.
//
// An Emulator decodes the command and data bytes a driver sends, keeps the
// 128x64 display RAM (GDDRAM) and the controller registers, and renders what the
// panel would show. It implements the ssd1306.Transport interface so a Dev can
// drive it directly, which makes it usable in tests and in the desktop
// simulator.
package emulator

import (
	"errors"
	"image"
	"image/color"

	"github.com/flavioheleno/ssd1306/image1bit"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// GDDRAM geometry.
const (
	RAMWidth  = 128
	RAMHeight = 64
	RAMPages  = RAMHeight / 8
)

// Addressing modes set by command 0x20.
const (
	Horizontal = 0x00
	Vertical   = 0x01
	Page       = 0x02
)

// ErrInit is returned by Init when FailInit is set.
var ErrInit = errors.New("emulator: device not responding")

// paramCount is the number of parameter bytes following each multi-byte
// command.
var paramCount = map[byte]int{
	0x20: 1, // Memory addressing mode
	0x21: 2, // Column address range
	0x22: 2, // Page address range
	0x26: 6, // Right horizontal scroll setup
	0x27: 6, // Left horizontal scroll setup
	0x29: 5, // Vertical and right scroll setup
	0x2A: 5, // Vertical and left scroll setup
	0x81: 1, // Contrast
	0x8D: 1, // Charge pump
	0xA3: 2, // Vertical scroll area
	0xA8: 1, // Multiplex ratio
	0xD3: 1, // Display offset
	0xD5: 1, // Clock divide ratio
	0xD9: 1, // Pre-charge period
	0xDA: 1, // COM pins configuration
	0xDB: 1, // VCOMH deselect level
}

// Scroll is the last scroll setup received.
type Scroll struct {
	Cmd      byte // 0x26, 0x27, 0x29 or 0x2A
	Start    byte // First page
	End      byte // Last page
	Interval byte // Frame interval code
	Vertical byte // Vertical offset per step, diagonal scrolls only
}

// Emulator models a SSD1306 controller. It is not safe for concurrent use.
type Emulator struct {
	// FailInit makes Init fail with ErrInit.
	FailInit bool

	w, h int
	ram  [RAMWidth * RAMPages]byte

	// Address pointers
	mode           byte
	page, col      int
	colLo, colHi   int
	pageLo, pageHi int

	// Registers
	on         bool
	inverted   bool
	entireOn   bool
	chargePump bool
	contrast   byte
	startLine  int
	multiplex  int
	offset     int
	segRemap   bool
	comScanDec bool

	scroll    Scroll
	scrolling bool
	areaTop   int
	areaRows  int

	// Command being decoded
	cmd     byte
	params  []byte
	pending int

	initialized bool
	commands    int
	data        int
}

// New returns an emulator for a w x h panel in its power-on reset state.
func New(w, h int) *Emulator {
	if w <= 0 || w > RAMWidth {
		w = RAMWidth
	}
	if h <= 0 || h > RAMHeight {
		h = RAMHeight
	}
	e := &Emulator{w: w, h: h}
	e.Reset()
	return e
}

// Reset restores the power-on register values. The RAM content is kept, as on
// the real controller.
func (e *Emulator) Reset() {
	e.mode = Page
	e.page, e.col = 0, 0
	e.colLo, e.colHi = 0, RAMWidth-1
	e.pageLo, e.pageHi = 0, RAMPages-1
	e.on = false
	e.inverted = false
	e.entireOn = false
	e.chargePump = false
	e.contrast = 0x7F
	e.startLine = 0
	e.multiplex = RAMHeight - 1
	e.offset = 0
	e.segRemap = false
	e.comScanDec = false
	e.scroll = Scroll{}
	e.scrolling = false
	e.areaTop, e.areaRows = 0, RAMHeight
	e.pending = 0
	e.params = nil
}

// Init implements ssd1306.Transport.
func (e *Emulator) Init() error {
	if e.FailInit {
		return ErrInit
	}
	e.initialized = true
	return nil
}

// WriteCommand implements ssd1306.Transport.
func (e *Emulator) WriteCommand(c byte) error {
	if !e.initialized {
		return errors.New("emulator: write before init")
	}
	e.commands++
	e.command(c)
	return nil
}

// WriteData implements ssd1306.Transport.
func (e *Emulator) WriteData(b byte) error {
	if !e.initialized {
		return errors.New("emulator: write before init")
	}
	e.data++
	e.write(b)
	return nil
}

// WriteDataBurst implements ssd1306.Transport.
func (e *Emulator) WriteDataBurst(p []byte) error {
	if !e.initialized {
		return errors.New("emulator: write before init")
	}
	e.data += len(p)
	for _, b := range p {
		e.write(b)
	}
	return nil
}

// command feeds one byte to the command decoder.
func (e *Emulator) command(c byte) {
	if e.pending > 0 {
		e.params = append(e.params, c)
		e.pending--
		if e.pending == 0 {
			e.execute(e.cmd, e.params)
			e.params = nil
		}
		return
	}
	if n, ok := paramCount[c]; ok {
		e.cmd, e.pending = c, n
		e.params = e.params[:0]
		return
	}
	e.execute(c, nil)
}

func (e *Emulator) execute(c byte, p []byte) {
	switch {
	case c <= 0x0F: // Lower column nibble, page mode
		e.col = e.col&0xF0 | int(c&0x0F)
	case c >= 0x10 && c <= 0x1F: // Upper column nibble, page mode
		e.col = int(c&0x07)<<4 | e.col&0x0F
	case c >= 0x40 && c <= 0x7F:
		e.startLine = int(c & 0x3F)
	case c >= 0xB0 && c <= 0xB7:
		e.page = int(c & 0x07)
	}

	switch c {
	case 0x20:
		e.mode = p[0] & 0x03
	case 0x21:
		e.colLo, e.colHi = int(p[0]&0x7F), int(p[1]&0x7F)
		e.col = e.colLo
	case 0x22:
		e.pageLo, e.pageHi = int(p[0]&0x07), int(p[1]&0x07)
		e.page = e.pageLo
	case 0x26, 0x27:
		e.scrolling = false
		e.scroll = Scroll{Cmd: c, Start: p[1] & 0x07, Interval: p[2] & 0x07, End: p[3] & 0x07}
	case 0x29, 0x2A:
		e.scrolling = false
		e.scroll = Scroll{Cmd: c, Start: p[1] & 0x07, Interval: p[2] & 0x07, End: p[3] & 0x07, Vertical: p[4] & 0x3F}
	case 0x2E:
		e.scrolling = false
	case 0x2F:
		e.scrolling = e.scroll.Cmd != 0
	case 0x81:
		e.contrast = p[0]
	case 0x8D:
		e.chargePump = p[0]&0x04 != 0
	case 0xA0, 0xA1:
		e.segRemap = c == 0xA1
	case 0xA3:
		e.areaTop, e.areaRows = int(p[0]&0x3F), int(p[1]&0x7F)
	case 0xA4, 0xA5:
		e.entireOn = c == 0xA5
	case 0xA6, 0xA7:
		e.inverted = c == 0xA7
	case 0xA8:
		e.multiplex = int(p[0] & 0x3F)
	case 0xAE, 0xAF:
		e.on = c == 0xAF
	case 0xC0, 0xC8:
		e.comScanDec = c == 0xC8
	case 0xD3:
		e.offset = int(p[0] & 0x3F)
	}
}

// write stores a data byte at the address pointer and advances it.
func (e *Emulator) write(b byte) {
	e.ram[e.page*RAMWidth+e.col] = b

	switch e.mode {
	case Horizontal:
		e.col++
		if e.col > e.colHi {
			e.col = e.colLo
			e.page++
			if e.page > e.pageHi {
				e.page = e.pageLo
			}
		}
	case Vertical:
		e.page++
		if e.page > e.pageHi {
			e.page = e.pageLo
			e.col++
			if e.col > e.colHi {
				e.col = e.colLo
			}
		}
	default:
		e.col = (e.col + 1) % RAMWidth
	}
}

// State accessors.

func (e *Emulator) On() bool         { return e.on }
func (e *Emulator) Inverted() bool   { return e.inverted }
func (e *Emulator) EntireOn() bool   { return e.entireOn }
func (e *Emulator) ChargePump() bool { return e.chargePump }
func (e *Emulator) Contrast() byte   { return e.contrast }
func (e *Emulator) StartLine() int   { return e.startLine }
func (e *Emulator) Multiplex() int   { return e.multiplex }
func (e *Emulator) Offset() int      { return e.offset }
func (e *Emulator) Mode() byte       { return e.mode }
func (e *Emulator) Scrolling() bool  { return e.scrolling }
func (e *Emulator) Scroll() Scroll   { return e.scroll }

// Pointer returns the current page and column of the address pointer.
func (e *Emulator) Pointer() (page, col int) {
	return e.page, e.col
}

// ScrollArea returns the vertical scroll area set by 0xA3.
func (e *Emulator) ScrollArea() (top, rows int) {
	return e.areaTop, e.areaRows
}

// Remapped reports the segment remap and COM scan direction settings.
func (e *Emulator) Remapped() (seg, com bool) {
	return e.segRemap, e.comScanDec
}

// Counts returns the number of command and data bytes received.
func (e *Emulator) Counts() (commands, data int) {
	return e.commands, e.data
}

// RAM returns a copy of the display RAM in page order, 128 bytes per page.
func (e *Emulator) RAM() []byte {
	out := make([]byte, len(e.ram))
	copy(out, e.ram[:])
	return out
}

// ramBit returns the RAM bit at column x, row y.
func (e *Emulator) ramBit(x, y int) bool {
	return e.ram[(y/8)*RAMWidth+x]&(1<<uint(y&7)) != 0
}

// Image renders the panel as it would look. Rows are read starting at the
// start line, a display that is off is dark, 0xA5 lights every pixel and
// inversion complements the output.
//
// Scrolling is a running animation and is not applied.
func (e *Emulator) Image() *image1bit.VerticalLSB {
	img := image1bit.NewVerticalLSB(image.Rect(0, 0, e.w, e.h))
	if !e.on {
		return img
	}
	for y := 0; y < e.h; y++ {
		row := (y + e.startLine + e.offset) % RAMHeight
		for x := 0; x < e.w; x++ {
			lit := e.entireOn || e.ramBit(x, row)
			if e.inverted {
				lit = !lit
			}
			img.SetBit(x, y, image1bit.Bit(lit))
		}
	}
	return img
}

// RGBA renders the panel in color. Lit pixels are drawn with lit dimmed towards
// dark according to the contrast register; dark pixels are drawn with dark.
func (e *Emulator) RGBA(lit, dark color.Color) *image.RGBA {
	on, _ := colorful.MakeColor(lit)
	off, _ := colorful.MakeColor(dark)
	// Contrast 0 is still visible on a real panel
	t := 0.25 + 0.75*float64(e.contrast)/255
	litRGBA := color.RGBAModel.Convert(off.BlendRgb(on, t).Clamped()).(color.RGBA)
	darkRGBA := color.RGBAModel.Convert(off).(color.RGBA)

	panel := e.Image()
	out := image.NewRGBA(panel.Bounds())
	for y := 0; y < e.h; y++ {
		for x := 0; x < e.w; x++ {
			if panel.BitAt(x, y) {
				out.SetRGBA(x, y, litRGBA)
			} else {
				out.SetRGBA(x, y, darkRGBA)
			}
		}
	}
	return out
}
