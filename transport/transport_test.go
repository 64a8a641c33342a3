package transport

import (
	"bytes"
	"errors"
	"testing"

	"github.com/flavioheleno/ssd1306"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
	"periph.io/x/conn/v3/i2c/i2ctest"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi/spitest"
)

var errNack = errors.New("nack")

// nackBus is an I²C bus with nothing on it.
type nackBus struct {
	speed physic.Frequency
}

func (b *nackBus) String() string                    { return "nack" }
func (b *nackBus) Tx(addr uint16, w, r []byte) error { return errNack }
func (b *nackBus) SetSpeed(f physic.Frequency) error { b.speed = f; return nil }

func TestNewI2COpts(t *testing.T) {
	tests := []struct {
		name    string
		opts    *I2COpts
		wantErr bool
	}{
		{"nil options (uses defaults)", nil, false},
		{"alternate address", &I2COpts{Addr: 0x3D}, false},
		{"fast mode", &I2COpts{Addr: 0x3C, Speed: 400 * physic.KiloHertz}, false},
		{"address zero", &I2COpts{Addr: 0}, true},
		{"10-bit address", &I2COpts{Addr: 0x3C0}, true},
		{"too fast", &I2COpts{Addr: 0x3C, Speed: physic.MegaHertz}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewI2C(&i2ctest.Record{}, tt.opts)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewI2C() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestI2CFraming(t *testing.T) {
	bus := &i2ctest.Record{}
	tr, err := NewI2C(bus, nil)
	if err != nil {
		t.Fatal(err)
	}

	if err := tr.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if err := tr.WriteCommand(0xAF); err != nil {
		t.Fatal(err)
	}
	if err := tr.WriteData(0x55); err != nil {
		t.Fatal(err)
	}
	if err := tr.WriteDataBurst([]byte{1, 2, 3}); err != nil {
		t.Fatal(err)
	}

	want := [][]byte{
		{0x00, 0xE3}, // Probe
		{0x00, 0xAF},
		{0x40, 0x55},
		{0x40, 1, 2, 3},
	}
	if len(bus.Ops) != len(want) {
		t.Fatalf("len(Ops) = %d, want %d", len(bus.Ops), len(want))
	}
	for i, op := range bus.Ops {
		if op.Addr != 0x3C {
			t.Errorf("Ops[%d].Addr = 0x%02X, want 0x3C", i, op.Addr)
		}
		if !bytes.Equal(op.W, want[i]) {
			t.Errorf("Ops[%d].W = % X, want % X", i, op.W, want[i])
		}
	}
}

func TestI2CInitNoDevice(t *testing.T) {
	bus := &nackBus{}
	tr, _ := NewI2C(bus, &I2COpts{Addr: 0x3C, Speed: 400 * physic.KiloHertz})
	if err := tr.Init(); !errors.Is(err, errNack) {
		t.Errorf("Init() error = %v, want %v", err, errNack)
	}
	if bus.speed != 400*physic.KiloHertz {
		t.Errorf("bus speed = %s, want 400kHz", bus.speed)
	}
}

func TestI2CWithDev(t *testing.T) {
	bus := &i2ctest.Record{}
	tr, _ := NewI2C(bus, nil)
	dev, err := ssd1306.New(tr, &ssd1306.Opts{W: 128, H: 32})
	if err != nil {
		t.Fatal(err)
	}
	if err := dev.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	// Probe, 29 init commands, then 4 pages of 3 commands and a burst
	if n := len(bus.Ops); n != 1+29+4*4 {
		t.Errorf("len(Ops) = %d, want %d", n, 1+29+4*4)
	}
	last := bus.Ops[len(bus.Ops)-1].W
	if last[0] != 0x40 || len(last) != 129 {
		t.Errorf("last transaction = %d bytes starting with 0x%02X, want a 128 byte data burst", len(last), last[0])
	}
}

func TestNewSPI(t *testing.T) {
	if _, err := NewSPI(&spitest.Record{}, nil, nil); err == nil {
		t.Error("NewSPI() without D/C pin should fail")
	}
	if _, err := NewSPI(&spitest.Record{}, gpio.INVALID, nil); err == nil {
		t.Error("NewSPI() with gpio.INVALID should fail")
	}
	if _, err := NewSPI(&spitest.Record{}, &gpiotest.Pin{N: "DC"}, &SPIOpts{Speed: 20 * physic.MegaHertz}); err == nil {
		t.Error("NewSPI() above 10MHz should fail")
	}
	if _, err := NewSPI(&spitest.Record{}, &gpiotest.Pin{N: "DC"}, &SPIOpts{}); err != nil {
		t.Errorf("NewSPI() with zero speed error = %v", err)
	}
}

func TestSPIFraming(t *testing.T) {
	port := &spitest.Record{}
	dc := &gpiotest.Pin{N: "DC"}
	tr, err := NewSPI(port, dc, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := tr.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	if err := tr.WriteCommand(0xAE); err != nil {
		t.Fatal(err)
	}
	if dc.L != gpio.Low {
		t.Error("D/C should be low for commands")
	}
	if err := tr.WriteDataBurst([]byte{0xDE, 0xAD}); err != nil {
		t.Fatal(err)
	}
	if dc.L != gpio.High {
		t.Error("D/C should be high for data")
	}
	if err := tr.WriteData(0x01); err != nil {
		t.Fatal(err)
	}

	want := [][]byte{{0xAE}, {0xDE, 0xAD}, {0x01}}
	if len(port.Ops) != len(want) {
		t.Fatalf("len(Ops) = %d, want %d", len(port.Ops), len(want))
	}
	for i, op := range port.Ops {
		if !bytes.Equal(op.W, want[i]) {
			t.Errorf("Ops[%d].W = % X, want % X", i, op.W, want[i])
		}
	}
}

func TestSPIReset(t *testing.T) {
	old := resetDelay
	resetDelay = 0
	defer func() { resetDelay = old }()

	rst := &gpiotest.Pin{N: "RST", L: gpio.Low}
	tr, err := NewSPI(&spitest.Record{}, &gpiotest.Pin{N: "DC"}, &SPIOpts{RST: rst})
	if err != nil {
		t.Fatal(err)
	}
	if err := tr.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if rst.L != gpio.High {
		t.Error("RST should be released after Init")
	}
}

// tinyBus records TinyGo I²C transactions.
type tinyBus struct {
	addrs []uint16
	ws    [][]byte
	err   error
}

func (b *tinyBus) Tx(addr uint16, w, r []byte) error {
	if b.err != nil {
		return b.err
	}
	b.addrs = append(b.addrs, addr)
	b.ws = append(b.ws, append([]byte(nil), w...))
	return nil
}

func (b *tinyBus) ReadRegister(addr uint8, r uint8, buf []byte) error {
	return b.Tx(uint16(addr), []byte{r}, buf)
}

func (b *tinyBus) WriteRegister(addr uint8, r uint8, buf []byte) error {
	return b.Tx(uint16(addr), append([]byte{r}, buf...), nil)
}

func TestTinyGoI2C(t *testing.T) {
	bus := &tinyBus{}
	tr := NewTinyGoI2C(bus, 0)
	if err := tr.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	_ = tr.WriteCommand(0x8D)
	_ = tr.WriteData(0x0F)
	_ = tr.WriteDataBurst([]byte{0xAA, 0xBB})

	want := [][]byte{{0x00, 0xE3}, {0x00, 0x8D}, {0x40, 0x0F}, {0x40, 0xAA, 0xBB}}
	if len(bus.ws) != len(want) {
		t.Fatalf("%d transactions, want %d", len(bus.ws), len(want))
	}
	for i := range want {
		if bus.addrs[i] != 0x3C {
			t.Errorf("transaction %d addr = 0x%02X, want 0x3C", i, bus.addrs[i])
		}
		if !bytes.Equal(bus.ws[i], want[i]) {
			t.Errorf("transaction %d = % X, want % X", i, bus.ws[i], want[i])
		}
	}

	bus.err = errNack
	if err := NewTinyGoI2C(bus, 0x3D).Init(); !errors.Is(err, errNack) {
		t.Errorf("Init() error = %v, want %v", err, errNack)
	}
}
