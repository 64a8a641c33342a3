package transport

import (
	"fmt"

	"tinygo.org/x/drivers"
)

// TinyGoI2C is the I²C transport for TinyGo machine buses.
type TinyGoI2C struct {
	bus  drivers.I2C
	addr uint16
	buf  []byte
}

// NewTinyGoI2C returns a transport talking to addr on bus. An addr of 0 uses
// DefaultI2COpts.Addr.
func NewTinyGoI2C(bus drivers.I2C, addr uint16) *TinyGoI2C {
	if addr == 0 {
		addr = DefaultI2COpts.Addr
	}
	return &TinyGoI2C{bus: bus, addr: addr}
}

// Init checks the device acknowledges its address with a no-op command. The
// bus must already be configured.
func (t *TinyGoI2C) Init() error {
	if err := t.bus.Tx(t.addr, []byte{i2cCmd, cmdNOP}, nil); err != nil {
		return fmt.Errorf("transport: no device at 0x%02X: %w", t.addr, err)
	}
	return nil
}

// WriteCommand implements ssd1306.Transport.
func (t *TinyGoI2C) WriteCommand(c byte) error {
	return t.bus.Tx(t.addr, []byte{i2cCmd, c}, nil)
}

// WriteData implements ssd1306.Transport.
func (t *TinyGoI2C) WriteData(b byte) error {
	return t.bus.Tx(t.addr, []byte{i2cData, b}, nil)
}

// WriteDataBurst implements ssd1306.Transport.
func (t *TinyGoI2C) WriteDataBurst(p []byte) error {
	t.buf = append(append(t.buf[:0], i2cData), p...)
	return t.bus.Tx(t.addr, t.buf, nil)
}
