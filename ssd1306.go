package ssd1306

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/flavioheleno/ssd1306/image1bit"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
)

// Transport is the byte-oriented bus the controller is attached to.
//
// WriteCommand and WriteData send a single byte on the control and data channels.
// WriteDataBurst sends a whole page of data at once.
type Transport interface {
	// Init prepares the bus and checks the device responds.
	Init() error
	WriteCommand(c byte) error
	WriteData(b byte) error
	WriteDataBurst(p []byte) error
}

// Color is a pixel state. White lights the pixel, Black clears it.
type Color = image1bit.Bit

const (
	Black = image1bit.Off
	White = image1bit.On
)

// Controller commands.
const (
	cmdSetLowColumn    = 0x00
	cmdSetHighColumn   = 0x10
	cmdMemoryMode      = 0x20
	cmdStartLine       = 0x40
	cmdContrast        = 0x81
	cmdChargePump      = 0x8D
	cmdSegmentRemap    = 0xA1
	cmdResumeRAM       = 0xA4
	cmdNormalDisplay   = 0xA6
	cmdInvertDisplay   = 0xA7
	cmdMultiplex       = 0xA8
	cmdDisplayOff      = 0xAE
	cmdDisplayOn       = 0xAF
	cmdPageStart       = 0xB0
	cmdCOMScanDec      = 0xC8
	cmdDisplayOffset   = 0xD3
	cmdClockDiv        = 0xD5
	cmdPrecharge       = 0xD9
	cmdCOMPins         = 0xDA
	cmdVCOMDetect      = 0xDB
	cmdStopScroll      = 0x2E
	cmdActivateScroll  = 0x2F
	cmdVerticalArea    = 0xA3
)

var (
	// ErrNotInitialized is returned by operations that need the transport
	// before Init succeeded.
	ErrNotInitialized = errors.New("ssd1306: not initialized")
	// ErrNoSpace is returned when a glyph does not fit at the cursor.
	ErrNoSpace = errors.New("ssd1306: glyph does not fit")
	// ErrNoGlyph is returned when the font has no glyph for a character.
	ErrNoGlyph = errors.New("ssd1306: glyph not defined")
	// ErrBitmapSize is returned when a bitmap is shorter than its dimensions.
	ErrBitmapSize = errors.New("ssd1306: bitmap too short")
)

// DefaultOpts is the 128x64 panel the init sequence is tuned for.
var DefaultOpts = Opts{W: 128, H: 64}

// Opts is the configuration for the SSD1306 display.
type Opts struct {
	// Display dimensions in pixels
	W int // Width (default: 128, multiple of 8, ≤128)
	H int // Height (default: 64, multiple of 8, ≤64)
}

// Dev is the device handle for the SSD1306 display.
//
// Dev is not safe for concurrent use.
type Dev struct {
	t Transport

	// Display geometry
	rect image.Rectangle

	// Framebuffer, one byte per column per page
	fb *image1bit.VerticalLSB

	// Render state
	curX, curY  int
	inverted    bool
	initialized bool
}

// New creates a SSD1306 device on top of t.
//
// The device starts uninitialized: drawing works on the framebuffer but nothing
// reaches the display until Init succeeds.
//
// opts can be nil to use DefaultOpts.
func New(t Transport, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	if opts.W < 8 || opts.W > 128 || opts.W%8 != 0 {
		return nil, fmt.Errorf("ssd1306: invalid width %d", opts.W)
	}
	if opts.H < 8 || opts.H > 64 || opts.H%8 != 0 {
		return nil, fmt.Errorf("ssd1306: invalid height %d", opts.H)
	}
	if t == nil {
		return nil, errors.New("ssd1306: nil transport")
	}

	rect := image.Rect(0, 0, opts.W, opts.H)
	return &Dev{
		t:    t,
		rect: rect,
		fb:   image1bit.NewVerticalLSB(rect),
	}, nil
}

// initSequence returns the controller configuration sent by Init.
func (d *Dev) initSequence() []byte {
	return []byte{
		cmdDisplayOff,
		cmdMemoryMode, 0x10,                 // Page addressing mode
		cmdPageStart,                        // Page 0
		cmdCOMScanDec,                       // COM output scan direction remapped
		cmdSetLowColumn, cmdSetHighColumn,   // Column 0
		cmdStartLine,                        // Start line 0
		cmdContrast, 0xFF,                   // Max contrast
		cmdSegmentRemap,                     // Column 127 mapped to SEG0
		cmdNormalDisplay,
		cmdMultiplex, byte(d.rect.Dy() - 1), // Multiplex ratio, 0x3F for 64 rows
		cmdResumeRAM,                        // Output follows RAM content
		cmdDisplayOffset, 0x00,
		cmdClockDiv, 0xF0,                   // Divide ratio and oscillator frequency
		cmdPrecharge, 0x22,
		cmdCOMPins, 0x12,                    // Alternative COM pin configuration
		cmdVCOMDetect, 0x20,                 // 0.77 x Vcc
		cmdChargePump, 0x14,                 // Enable DC-DC
		cmdDisplayOn,
		cmdStopScroll,                       // A scroll left running survives a soft reset
	}
}

// Init performs the handshake with the transport and configures the display.
//
// On success the screen is cleared, the cursor moved to the origin and the device
// becomes ready. On failure the device stays uninitialized and Init may be called
// again; nothing is retried internally.
func (d *Dev) Init() error {
	d.initialized = false
	if err := d.t.Init(); err != nil {
		return fmt.Errorf("ssd1306: device not ready: %w", err)
	}
	for _, c := range d.initSequence() {
		if err := d.t.WriteCommand(c); err != nil {
			return fmt.Errorf("ssd1306: init sequence: %w", err)
		}
	}

	d.fb.Fill(Black)
	if err := d.flush(); err != nil {
		return err
	}

	d.curX, d.curY = 0, 0
	d.initialized = true
	return nil
}

// Initialized reports whether Init succeeded.
func (d *Dev) Initialized() bool {
	return d.initialized
}

// sendCommand sends command bytes one at a time.
func (d *Dev) sendCommand(cmds ...byte) error {
	if !d.initialized {
		return ErrNotInitialized
	}
	for _, c := range cmds {
		if err := d.t.WriteCommand(c); err != nil {
			return err
		}
	}
	return nil
}

// Flush sends the whole framebuffer to the display, one page at a time.
//
// The first transport error aborts the flush and is returned; the flush is not
// retried.
func (d *Dev) Flush() error {
	if !d.initialized {
		return ErrNotInitialized
	}
	return d.flush()
}

func (d *Dev) flush() error {
	pages := d.rect.Dy() / 8
	for m := 0; m < pages; m++ {
		for _, c := range []byte{cmdPageStart + byte(m), cmdSetLowColumn, cmdSetHighColumn} {
			if err := d.t.WriteCommand(c); err != nil {
				return fmt.Errorf("ssd1306: page %d: %w", m, err)
			}
		}
		if err := d.t.WriteDataBurst(d.fb.Page(m)); err != nil {
			return fmt.Errorf("ssd1306: page %d: %w", m, err)
		}
	}
	return nil
}

// Clear blanks the framebuffer and flushes it.
func (d *Dev) Clear() error {
	d.Fill(Black)
	return d.Flush()
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds returns the image bounds of the display. Min is always {0, 0}.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Write replaces the framebuffer with raw pixel data in VerticalLSB format and
// flushes it. The data must be exactly W*H/8 bytes.
func (d *Dev) Write(pixels []byte) (int, error) {
	if !d.initialized {
		return 0, ErrNotInitialized
	}
	if len(pixels) != len(d.fb.Pix) {
		return 0, errors.New("ssd1306: invalid buffer size")
	}
	copy(d.fb.Pix, pixels)
	if err := d.flush(); err != nil {
		return 0, err
	}
	return len(pixels), nil
}

// Draw draws an image onto the framebuffer and flushes it.
// The dst rectangle specifies the destination region on the display.
// The src image is positioned at src point sp within the destination.
//
// Pixels go through SetPixel, so the inversion flag applies.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if !d.initialized {
		return ErrNotInitialized
	}

	// Clip to display bounds
	clipped := dst.Intersect(d.rect)
	if clipped.Empty() {
		return nil
	}
	sp = sp.Add(clipped.Min.Sub(dst.Min))

	for y := clipped.Min.Y; y < clipped.Max.Y; y++ {
		for x := clipped.Min.X; x < clipped.Max.X; x++ {
			c := src.At(sp.X+x-clipped.Min.X, sp.Y+y-clipped.Min.Y)
			d.SetPixel(x, y, image1bit.BitModel.Convert(c).(image1bit.Bit))
		}
	}
	return d.flush()
}

// Invert switches the controller between normal and inverted output.
// The framebuffer is left untouched; see ToggleInvert for the RAM inversion.
func (d *Dev) Invert(invert bool) error {
	mode := byte(cmdNormalDisplay)
	if invert {
		mode = cmdInvertDisplay
	}
	return d.sendCommand(mode)
}

// SetContrast sets the display contrast (0-255).
func (d *Dev) SetContrast(contrast byte) error {
	return d.sendCommand(cmdContrast, contrast)
}

// SetStartLine sets the RAM row shown at the top of the panel (0-63), which
// scrolls the picture vertically without touching the framebuffer.
func (d *Dev) SetStartLine(line byte) error {
	return d.sendCommand(cmdStartLine | (line & 0x3F))
}

// On enables the charge pump and turns the display on.
func (d *Dev) On() error {
	return d.sendCommand(cmdChargePump, 0x14, cmdDisplayOn)
}

// Off turns the display off and disables the charge pump.
func (d *Dev) Off() error {
	return d.sendCommand(cmdChargePump, 0x10, cmdDisplayOff)
}

// Halt powers off the display. Call On to turn it back on.
func (d *Dev) Halt() error {
	return d.Off()
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("ssd1306.Dev{%dx%d}", d.rect.Dx(), d.rect.Dy())
}

var (
	_ conn.Resource  = &Dev{}
	_ display.Drawer = &Dev{}
)
