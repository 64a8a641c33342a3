// Package transporttest provides a recording SSD1306 transport for tests.
package transporttest

// IO is one recorded write.
type IO struct {
	Command bool   // Sent on the command channel
	W       []byte // Bytes written
}

// Record is a transport that records every write.
//
// It has no hardware behind it: commands are not interpreted. Use the emulator
// package to check what the bytes do.
type Record struct {
	// InitErr, if set, is returned by Init.
	InitErr error
	// Err, if set, is returned by every write once After writes have succeeded.
	Err   error
	After int

	Inits int  // Calls to Init
	Ops   []IO // Successful writes, in order

	writes int
}

// Init implements ssd1306.Transport.
func (r *Record) Init() error {
	r.Inits++
	return r.InitErr
}

// WriteCommand implements ssd1306.Transport.
func (r *Record) WriteCommand(c byte) error {
	return r.record(true, []byte{c})
}

// WriteData implements ssd1306.Transport.
func (r *Record) WriteData(b byte) error {
	return r.record(false, []byte{b})
}

// WriteDataBurst implements ssd1306.Transport.
func (r *Record) WriteDataBurst(p []byte) error {
	return r.record(false, append([]byte(nil), p...))
}

func (r *Record) record(cmd bool, w []byte) error {
	if r.Err != nil && r.writes >= r.After {
		return r.Err
	}
	r.writes++
	r.Ops = append(r.Ops, IO{Command: cmd, W: w})
	return nil
}

// Commands returns every command byte written, in order.
func (r *Record) Commands() []byte {
	var out []byte
	for _, op := range r.Ops {
		if op.Command {
			out = append(out, op.W...)
		}
	}
	return out
}

// Data returns every data byte written, in order.
func (r *Record) Data() []byte {
	var out []byte
	for _, op := range r.Ops {
		if !op.Command {
			out = append(out, op.W...)
		}
	}
	return out
}

// Reset forgets the recorded writes.
func (r *Record) Reset() {
	r.Ops = nil
	r.writes = 0
}
