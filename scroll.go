package ssd1306

import "fmt"

// Direction selects the scroll command.
type Direction byte

const (
	Right     Direction = 0x26 // Horizontal, to the right
	Left      Direction = 0x27 // Horizontal, to the left
	DiagRight Direction = 0x29 // Vertical and to the right
	DiagLeft  Direction = 0x2A // Vertical and to the left
)

func (dir Direction) String() string {
	switch dir {
	case Right:
		return "Right"
	case Left:
		return "Left"
	case DiagRight:
		return "DiagRight"
	case DiagLeft:
		return "DiagLeft"
	}
	return fmt.Sprintf("Direction(0x%02X)", byte(dir))
}

// FrameInterval is the time between scroll steps, in frames.
type FrameInterval byte

const (
	// Scroll step intervals, the encoding is not monotonic
	Frames5   FrameInterval = 0x00
	Frames64  FrameInterval = 0x01
	Frames128 FrameInterval = 0x02
	Frames256 FrameInterval = 0x03
	Frames3   FrameInterval = 0x04
	Frames4   FrameInterval = 0x05
	Frames25  FrameInterval = 0x06
	Frames2   FrameInterval = 0x07
)

// Scroll starts the controller's continuous scroll of pages start to end.
//
// The scroll runs in hardware until StopScroll; the framebuffer is not changed.
// The diagonal directions also scroll vertically by one row per step across the
// whole panel.
func (d *Dev) Scroll(dir Direction, start, end byte, interval FrameInterval) error {
	if !d.initialized {
		return ErrNotInitialized
	}
	pages := d.rect.Dy() / 8
	if int(start) >= pages || int(end) >= pages || start > end {
		return fmt.Errorf("ssd1306: invalid scroll pages %d..%d", start, end)
	}
	if interval > Frames2 {
		return fmt.Errorf("ssd1306: invalid scroll interval 0x%02X", byte(interval))
	}

	switch dir {
	case Right, Left:
		return d.sendCommand(
			byte(dir),
			0x00, // Dummy
			start,
			byte(interval),
			end,
			0x00, 0xFF, // Dummy
			cmdActivateScroll,
		)
	case DiagRight, DiagLeft:
		return d.sendCommand(
			cmdVerticalArea, 0x00, byte(d.rect.Dy()), // Whole panel scrolls vertically
			byte(dir),
			0x00, // Dummy
			start,
			byte(interval),
			end,
			0x01, // Vertical offset, one row per step
			cmdActivateScroll,
		)
	}
	return fmt.Errorf("ssd1306: invalid scroll direction %v", dir)
}

// ScrollRight scrolls pages start to end to the right.
func (d *Dev) ScrollRight(start, end byte) error {
	return d.Scroll(Right, start, end, Frames5)
}

// ScrollLeft scrolls pages start to end to the left.
func (d *Dev) ScrollLeft(start, end byte) error {
	return d.Scroll(Left, start, end, Frames5)
}

// ScrollDiagRight scrolls pages start to end to the right while the whole panel
// scrolls up.
func (d *Dev) ScrollDiagRight(start, end byte) error {
	return d.Scroll(DiagRight, start, end, Frames5)
}

// ScrollDiagLeft scrolls pages start to end to the left while the whole panel
// scrolls up.
func (d *Dev) ScrollDiagLeft(start, end byte) error {
	return d.Scroll(DiagLeft, start, end, Frames5)
}

// StopScroll stops any running scroll. The RAM content must be rewritten after
// stopping, the controller leaves it shifted.
func (d *Dev) StopScroll() error {
	return d.sendCommand(cmdStopScroll)
}
