// Package transport connects a SSD1306 to a real bus.
//
// The SSD1306 is a write-only device. It can be driven on either I²C or SPI
// with 4 wires. Changing between protocols is usually done by soldering
// resistors on boards that support both.
//
// Every transport implements ssd1306.Transport:
//
//	bus, _ := i2creg.Open("")
//	t, _ := transport.NewI2C(bus, nil)
//	dev, _ := ssd1306.New(t, nil)
package transport

import (
	"fmt"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

const (
	i2cCmd  = 0x00 // I²C transaction has stream of command bytes
	i2cData = 0x40 // I²C transaction has stream of data bytes

	cmdNOP = 0xE3
)

// I2COpts is the configuration for the I²C transport.
type I2COpts struct {
	Addr  uint16           // 7-bit device address (default: 0x3C, 0x3D on some boards)
	Speed physic.Frequency // Bus speed set by Init (default: leave the bus as is; max 400kHz)
}

// DefaultI2COpts is the usual address of SSD1306 modules.
var DefaultI2COpts = I2COpts{Addr: 0x3C}

// I2C sends commands and data as I²C transactions prefixed with a control byte.
type I2C struct {
	b     i2c.Bus
	d     *i2c.Dev
	speed physic.Frequency
	buf   []byte
}

// NewI2C returns a transport on bus b.
//
// opts can be nil to use DefaultI2COpts.
func NewI2C(b i2c.Bus, opts *I2COpts) (*I2C, error) {
	if opts == nil {
		opts = &DefaultI2COpts
	}
	if opts.Addr == 0 || opts.Addr > 0x7F {
		return nil, fmt.Errorf("transport: invalid I²C address 0x%02X", opts.Addr)
	}
	if opts.Speed > 400*physic.KiloHertz {
		return nil, fmt.Errorf("transport: I²C speed %s above 400kHz", opts.Speed)
	}
	return &I2C{
		b:     b,
		d:     &i2c.Dev{Bus: b, Addr: opts.Addr},
		speed: opts.Speed,
	}, nil
}

// Init sets the bus speed and checks the device acknowledges its address with
// a no-op command.
func (t *I2C) Init() error {
	if t.speed != 0 {
		if err := t.b.SetSpeed(t.speed); err != nil {
			return fmt.Errorf("transport: set I²C speed: %w", err)
		}
	}
	if err := t.d.Tx([]byte{i2cCmd, cmdNOP}, nil); err != nil {
		return fmt.Errorf("transport: no device at 0x%02X: %w", t.d.Addr, err)
	}
	return nil
}

// WriteCommand implements ssd1306.Transport.
func (t *I2C) WriteCommand(c byte) error {
	return t.d.Tx([]byte{i2cCmd, c}, nil)
}

// WriteData implements ssd1306.Transport.
func (t *I2C) WriteData(b byte) error {
	return t.d.Tx([]byte{i2cData, b}, nil)
}

// WriteDataBurst sends p in a single transaction.
func (t *I2C) WriteDataBurst(p []byte) error {
	t.buf = append(append(t.buf[:0], i2cData), p...)
	return t.d.Tx(t.buf, nil)
}

// String returns the device address.
func (t *I2C) String() string {
	return t.d.String()
}
