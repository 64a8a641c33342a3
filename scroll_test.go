package ssd1306

import (
	"bytes"
	"testing"

	"github.com/flavioheleno/ssd1306/emulator"
)

func TestScrollCommands(t *testing.T) {
	tests := []struct {
		name string
		op   func(d *Dev) error
		want []byte
	}{
		{
			"right",
			func(d *Dev) error { return d.ScrollRight(0, 7) },
			[]byte{0x26, 0x00, 0x00, 0x00, 0x07, 0x00, 0xFF, 0x2F},
		},
		{
			"left",
			func(d *Dev) error { return d.ScrollLeft(2, 5) },
			[]byte{0x27, 0x00, 0x02, 0x00, 0x05, 0x00, 0xFF, 0x2F},
		},
		{
			"diagonal right",
			func(d *Dev) error { return d.ScrollDiagRight(0, 3) },
			[]byte{0xA3, 0x00, 0x40, 0x29, 0x00, 0x00, 0x00, 0x03, 0x01, 0x2F},
		},
		{
			"diagonal left",
			func(d *Dev) error { return d.ScrollDiagLeft(1, 1) },
			[]byte{0xA3, 0x00, 0x40, 0x2A, 0x00, 0x01, 0x00, 0x01, 0x01, 0x2F},
		},
		{
			"interval",
			func(d *Dev) error { return d.Scroll(Right, 0, 7, Frames2) },
			[]byte{0x26, 0x00, 0x00, 0x07, 0x07, 0x00, 0xFF, 0x2F},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev, rec := newTestDev(t)
			if err := tt.op(dev); err != nil {
				t.Fatalf("error = %v", err)
			}
			if got := rec.Commands(); !bytes.Equal(got, tt.want) {
				t.Errorf("Commands() = % X, want % X", got, tt.want)
			}
		})
	}
}

func TestScrollValidation(t *testing.T) {
	tests := []struct {
		name       string
		dir        Direction
		start, end byte
		interval   FrameInterval
	}{
		{"start past last page", Right, 8, 8, Frames5},
		{"end past last page", Left, 0, 8, Frames5},
		{"start after end", Right, 5, 2, Frames5},
		{"bad interval", Right, 0, 7, FrameInterval(0x08)},
		{"bad direction", Direction(0x30), 0, 7, Frames5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev, rec := newTestDev(t)
			if err := dev.Scroll(tt.dir, tt.start, tt.end, tt.interval); err == nil {
				t.Error("Scroll() should fail")
			}
			if len(rec.Ops) != 0 {
				t.Errorf("%d writes for an invalid scroll, want 0", len(rec.Ops))
			}
		})
	}

	// A 32 row panel only has 4 pages
	dev, _ := newTestDev(t)
	dev.rect.Max.Y = 32
	if err := dev.ScrollRight(0, 4); err == nil {
		t.Error("ScrollRight(0, 4) on 4 pages should fail")
	}
}

func TestDirectionString(t *testing.T) {
	tests := []struct {
		dir  Direction
		want string
	}{
		{Right, "Right"},
		{Left, "Left"},
		{DiagRight, "DiagRight"},
		{DiagLeft, "DiagLeft"},
		{Direction(0x30), "Direction(0x30)"},
	}
	for _, tt := range tests {
		if got := tt.dir.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestScrollEmulator(t *testing.T) {
	emu := emulator.New(128, 64)
	dev, _ := New(emu, nil)
	if err := dev.Init(); err != nil {
		t.Fatal(err)
	}
	if emu.Scrolling() {
		t.Fatal("Init should leave scrolling stopped")
	}

	if err := dev.Scroll(DiagLeft, 2, 6, Frames25); err != nil {
		t.Fatal(err)
	}
	if !emu.Scrolling() {
		t.Error("emulator should be scrolling")
	}
	want := emulator.Scroll{Cmd: 0x2A, Start: 2, End: 6, Interval: 0x06, Vertical: 1}
	if got := emu.Scroll(); got != want {
		t.Errorf("Scroll() = %+v, want %+v", got, want)
	}
	if top, rows := emu.ScrollArea(); top != 0 || rows != 64 {
		t.Errorf("ScrollArea() = (%d, %d), want (0, 64)", top, rows)
	}

	if err := dev.StopScroll(); err != nil {
		t.Fatal(err)
	}
	if emu.Scrolling() {
		t.Error("emulator should have stopped scrolling")
	}
}
