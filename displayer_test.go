package ssd1306

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/flavioheleno/ssd1306/transport/transporttest"
	"tinygo.org/x/drivers"
)

var (
	white = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	black = color.RGBA{A: 0xFF}
)

func TestDisplayerSize(t *testing.T) {
	dev, _ := New(&transporttest.Record{}, &Opts{W: 128, H: 32})
	x, y := NewDisplayer(dev).Size()
	if x != 128 || y != 32 {
		t.Errorf("Size() = (%d, %d), want (128, 32)", x, y)
	}
}

func TestDisplayerSetPixel(t *testing.T) {
	dev := newBufferDev(t)
	p := NewDisplayer(dev)

	p.SetPixel(3, 4, white)
	p.SetPixel(5, 6, color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xFF})
	p.SetPixel(-1, 4, white)
	if !dev.Pixel(3, 4) {
		t.Error("white pixel should be lit")
	}
	if dev.Pixel(5, 6) {
		t.Error("dark gray should round to Black")
	}
	p.SetPixel(3, 4, black)
	if dev.Pixel(3, 4) {
		t.Error("black pixel should be dark")
	}
}

func TestDisplayerFillRectangle(t *testing.T) {
	dev := newBufferDev(t)
	p := NewDisplayer(dev)

	if err := p.FillRectangle(10, 10, 4, 3, white); err != nil {
		t.Fatalf("FillRectangle() error = %v", err)
	}
	px := lit(dev)
	if len(px) != 12 {
		t.Errorf("%d pixels lit, want 12", len(px))
	}
	if err := p.FillRectangle(0, 0, 0, 3, white); err == nil {
		t.Error("FillRectangle() with zero width should fail")
	}
}

func TestDisplayerDisplay(t *testing.T) {
	dev, rec := newTestDev(t)
	p := NewDisplayer(dev)
	p.SetPixel(0, 0, white)
	if err := p.Display(); err != nil {
		t.Fatalf("Display() error = %v", err)
	}
	want := make([]byte, 1024)
	want[0] = 0x01
	if !bytes.Equal(rec.Data(), want) {
		t.Error("Display should flush the framebuffer")
	}
}

func TestDisplayerScrollRotation(t *testing.T) {
	dev, rec := newTestDev(t)
	p := NewDisplayer(dev)

	p.SetScroll(10)
	if got := rec.Commands(); !bytes.Equal(got, []byte{0x4A}) {
		t.Errorf("SetScroll(10) sent % X, want 4A", got)
	}

	if err := p.SetRotation(drivers.Rotation0); err != nil {
		t.Errorf("SetRotation(Rotation0) error = %v", err)
	}
	if err := p.SetRotation(drivers.Rotation90); err == nil {
		t.Error("SetRotation(Rotation90) should fail")
	}
}
