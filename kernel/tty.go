// Copyright 2025 The GoUnix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import "bytes"

// TTY is a terminal line discipline. The system has one, the console;
// /dev/console and /dev/tty are both minors of it. Input arrives a byte
// at a time through WriteByte, accumulates in Raw, and moves to Canon a
// complete line at a time once a delimiter (newline or EOT) arrives.
type TTY struct {
	Print func(b []byte, echo bool) (int, Errno)
	Raw   bytes.Buffer // input bytes right off the device
	Canon bytes.Buffer // input bytes after erase and kill processing
	EOF   bool
	Sys   *System
	Delct int // number of delimiters in Raw

	flags uint16
	erase byte
	kill  byte
}

/* default special characters */
const (
	CERASE = '\b'
	CEOT   = 0o004
	CKILL  = 'U' - '@'
	CINTR  = 0o003
	CQUIT  = 0o034
)

/* modes */
const (
	ECHO  = 0o10
	CRMOD = 0o20
	RAW   = 0o40
)

// WriteByte accepts one byte of outside input, typically from the
// launcher's stdin goroutine.
func (t *TTY) WriteByte(c byte) {
	if c == 0x7F {
		c = t.erase
	}
	if c == '\r' && t.flags&CRMOD != 0 {
		c = '\n'
	}
	if t.flags&RAW == 0 && (c == CQUIT || c == CINTR) {
		sig := SIGINT
		if c == CQUIT {
			sig = SIGQIT
		}
		t.Sys.signal(t, sig)
		t.Raw.Truncate(0)
		t.Canon.Truncate(0)
		t.Delct = 0
		return
	}
	t.Raw.WriteByte(c)
	if t.flags&RAW != 0 || c == '\n' || c == CEOT {
		t.Raw.WriteByte(0o377)
		t.Delct++
		t.Sys.wakeup(&t.Delct)
	}
	if t.flags&ECHO != 0 && t.Print != nil {
		var buf [1]byte
		buf[0] = c
		t.Print(buf[:], true)
	}
}

// canon moves one complete input line from Raw to Canon, applying
// erase and kill editing.
func (t *TTY) canon() {
Loop:
	var canon []byte
	for {
		c, err := t.Raw.ReadByte()
		if err != nil {
			panic("ttycanon") // cannot happen, Delct is set
		}
		if c == 0o377 {
			t.Delct--
			break
		}
		if t.flags&RAW == 0 {
			if c == t.erase {
				if len(canon) > 0 {
					canon = canon[:len(canon)-1]
				}
				continue
			}
			if c == t.kill {
				goto Loop
			}
			if c == CEOT {
				continue
			}
		}
		canon = append(canon, c)
		if len(canon) >= CANBSIZ {
			break
		}
	}
	t.Canon.Write(canon)
}

type ttydev struct{}

func (ttydev) open(p *Proc, minor uint8, rw int) {
	if minor > 0 {
		p.Error = ENXIO
		return
	}
	if p.TTY == nil {
		p.TTY = &p.Sys.Console
	}
}

func (ttydev) read(p *Proc, minor uint8, b []byte, off int) int {
	if minor > 0 {
		p.Error = ENXIO
		return 0
	}
	if len(b) == 0 {
		return 0
	}
	tty := &p.Sys.Console
	for {
		n, _ := tty.Canon.Read(b)
		if n > 0 {
			return n
		}
		if tty.Delct > 0 {
			tty.canon()
			n, _ = tty.Canon.Read(b)
			return n
		}
		if tty.EOF {
			return 0
		}
		p.ttysleep(tty)
	}
}

// ttysleep parks the process until console input arrives, keeping the
// blocked-reader count right even when the sleep is interrupted by a
// signal.
func (p *Proc) ttysleep(tty *TTY) {
	p.Sys.consoleRead++
	defer func() {
		p.Sys.consoleRead--
	}()
	p.sleep(&tty.Delct, 0, _PSLEP)
}

func (ttydev) write(p *Proc, minor uint8, b []byte, off int) int {
	if minor > 0 {
		p.Error = EIO
		return 0
	}
	tty := &p.Sys.Console
	if tty.Print == nil {
		p.Error = EIO
		return 0
	}
	n, errno := tty.Print(b, false)
	if errno != 0 {
		p.Error = errno
	}
	return n
}

func (ttydev) close(p *Proc, minor uint8) {
}
