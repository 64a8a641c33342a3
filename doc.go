// Package ssd1306 controls a SSD1306 monochrome OLED display over I²C or SPI.
//
// The SSD1306 is a 1-bit OLED controller supporting up to 128×64 pixels. Drawing
// happens in a framebuffer kept in host memory which is sent to the display with
// Flush. The driver implements the display.Drawer interface from periph.io and,
// through Displayer, the TinyGo drivers.Displayer interface.
//
// # Display Characteristics
//
// - 1 bit per pixel, lit or dark
// - Resolutions from 8×8 to 128×64 in steps of 8 (typically 128×64 or 128×32)
// - Hardware scrolling support (horizontal and diagonal)
// - Adjustable contrast (0-255)
// - Display inversion, in hardware or in the framebuffer
//
// # Hardware Connection
//
// Most modules are wired to I²C and answer at address 0x3C:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	SCL         → I²C Clock (SCL)
//	SDA         → I²C Data (SDA)
//
// SPI modules also need a Data/Command GPIO and optionally a reset GPIO, see the
// transport package.
//
// # Basic Usage
//
// Example of creating and using the display:
//
//	package main
//
//	import (
//		"log"
//
//		"github.com/flavioheleno/ssd1306"
//		"github.com/flavioheleno/ssd1306/font"
//		"github.com/flavioheleno/ssd1306/transport"
//		"periph.io/x/conn/v3/i2c/i2creg"
//		"periph.io/x/host/v3"
//		"tinygo.org/x/tinyfont/proggy"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		// Open I²C bus
//		bus, _ := i2creg.Open("")
//		defer bus.Close()
//
//		// Create device
//		t, _ := transport.NewI2C(bus, nil)
//		dev, _ := ssd1306.New(t, nil)
//		if err := dev.Init(); err != nil {
//			log.Fatal(err)
//		}
//		defer dev.Halt()
//
//		// Rasterize a tinyfont font into a glyph table
//		f, err := font.FromFonter(&proggy.TinySZ8pt7b, ' ', '~')
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		// Draw and send the frame
//		dev.DrawRect(0, 0, 127, 63, ssd1306.White)
//		dev.MoveCursor(4, 4)
//		dev.DrawString("Hello", f, ssd1306.White)
//		dev.Flush()
//	}
//
// # Framebuffer
//
// Pixels are packed 8 per byte in vertical strips called pages: the pixel (x, y)
// is bit y%8 of byte x+(y/8)*W. Drawing never touches the bus, so a frame can be
// composed with any number of calls and sent with a single Flush.
//
// Shapes are clipped or clamped to the display. Text is not: DrawChar rejects a
// glyph that does not fit at the cursor and DrawString stops at the first
// rejected character.
//
// # Inversion
//
// ToggleInvert complements the framebuffer and makes later drawing complement its
// color too, so the picture stays consistent. Invert asks the controller to
// invert its output and leaves the framebuffer alone.
//
// # Hardware Scrolling
//
// The display scrolls a range of pages on its own until stopped:
//
//	// Start scrolling pages 0 to 7 to the right
//	dev.ScrollRight(0, 7)
//	time.Sleep(5 * time.Second)
//
//	// Stop scrolling and redraw, the RAM is left shifted
//	dev.StopScroll()
//	dev.Flush()
//
// # Performance
//
// A full 128×64 frame is 1024 bytes plus 24 command bytes:
// - 100kHz I²C: ~100ms
// - 400kHz I²C: ~25ms
// - 8MHz SPI: ~1ms
package ssd1306
