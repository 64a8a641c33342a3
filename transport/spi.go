package transport

import (
	"errors"
	"fmt"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// SPIOpts is the configuration for the 4-wire SPI transport.
type SPIOpts struct {
	Speed physic.Frequency // Clock (default: 8MHz, max 10MHz)

	// Optional hardware reset pin
	RST gpio.PinOut // Reset pin (optional, nil if not used)
}

// DefaultSPIOpts is a conservative clock for long wires.
var DefaultSPIOpts = SPIOpts{Speed: 8 * physic.MegaHertz}

// resetDelay is how long RST is held low, then high, by Init.
var resetDelay = 10 * time.Millisecond

// SPI sends bytes over 4-wire SPI, the dc pin selecting between command (low)
// and data (high).
type SPI struct {
	c   conn.Conn
	dc  gpio.PinOut
	rst gpio.PinOut
}

// NewSPI connects to port p in Mode0 with 8-bit words.
//
// The dc (Data/Command) GPIO pin must be provided. opts can be nil to use
// DefaultSPIOpts.
func NewSPI(p spi.Port, dc gpio.PinOut, opts *SPIOpts) (*SPI, error) {
	if dc == nil || dc == gpio.INVALID {
		return nil, errors.New("transport: SPI needs a D/C pin, 3-wire mode is not supported")
	}
	if opts == nil {
		opts = &DefaultSPIOpts
	}
	speed := opts.Speed
	if speed == 0 {
		speed = DefaultSPIOpts.Speed
	}
	if speed > 10*physic.MegaHertz {
		return nil, fmt.Errorf("transport: SPI speed %s above 10MHz", speed)
	}

	c, err := p.Connect(speed, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("transport: connect SPI: %w", err)
	}
	return &SPI{c: c, dc: dc, rst: opts.RST}, nil
}

// Init pulses the reset pin, when there is one. SPI has no acknowledge, so
// the device cannot be probed.
func (t *SPI) Init() error {
	if t.rst == nil {
		return nil
	}
	if err := t.rst.Out(gpio.Low); err != nil {
		return fmt.Errorf("transport: failed to pull RST low: %w", err)
	}
	time.Sleep(resetDelay)

	if err := t.rst.Out(gpio.High); err != nil {
		return fmt.Errorf("transport: failed to pull RST high: %w", err)
	}
	time.Sleep(resetDelay)
	return nil
}

// WriteCommand implements ssd1306.Transport.
func (t *SPI) WriteCommand(c byte) error {
	if err := t.dc.Out(gpio.Low); err != nil {
		return err
	}
	return t.c.Tx([]byte{c}, nil)
}

// WriteData implements ssd1306.Transport.
func (t *SPI) WriteData(b byte) error {
	return t.WriteDataBurst([]byte{b})
}

// WriteDataBurst implements ssd1306.Transport.
func (t *SPI) WriteDataBurst(p []byte) error {
	if err := t.dc.Out(gpio.High); err != nil {
		return err
	}
	return t.c.Tx(p, nil)
}

// String returns the underlying connection.
func (t *SPI) String() string {
	return t.c.String()
}
