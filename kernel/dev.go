// Copyright 2025 The GoUnix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

// The device switch. A character special inode selects its driver by
// major number; out-of-range majors fall back to devErr.
type device interface {
	open(*Proc, uint8, int)
	read(*Proc, uint8, []byte, int) int
	write(*Proc, uint8, []byte, int) int
	close(*Proc, uint8)
}

const (
	devErr  = 0
	devNull = 1
	devZero = 2
	devKlog = 3
	devTTY  = 4
)

var devtab = []device{
	errdev{},
	nulldev{},
	zerodev{},
	klogdev{},
	ttydev{},
}

func (p *Proc) dev(major uint8) device {
	if int(major) >= len(devtab) || devtab[major] == nil {
		major = devErr
	}
	return devtab[major]
}

type errdev struct{}

func (errdev) open(p *Proc, minor uint8, rw int) {
	p.Error = ENXIO
}

func (errdev) read(p *Proc, minor uint8, b []byte, off int) int {
	p.Error = ENXIO
	return 0
}

func (errdev) write(p *Proc, minor uint8, b []byte, off int) int {
	p.Error = ENXIO
	return 0
}

func (errdev) close(p *Proc, minor uint8) {
	p.Error = ENXIO
}

type nulldev struct{}

func (nulldev) open(p *Proc, minor uint8, rw int) {
}

func (nulldev) read(p *Proc, minor uint8, b []byte, off int) int {
	return 0
}

func (nulldev) write(p *Proc, minor uint8, b []byte, off int) int {
	return len(b)
}

func (nulldev) close(p *Proc, minor uint8) {
}

type zerodev struct{}

func (zerodev) open(p *Proc, minor uint8, rw int) {
}

func (zerodev) read(p *Proc, minor uint8, b []byte, off int) int {
	clear(b)
	return len(b)
}

func (zerodev) write(p *Proc, minor uint8, b []byte, off int) int {
	return len(b)
}

func (zerodev) close(p *Proc, minor uint8) {
}

// klogdev exposes the kernel log ring as /dev/kmsg. Reads see a
// snapshot of the ring; a read at or past the current end returns 0.
type klogdev struct{}

func (klogdev) open(p *Proc, minor uint8, rw int) {
}

func (klogdev) read(p *Proc, minor uint8, b []byte, off int) int {
	data := p.Sys.Klog()
	if off < 0 || off >= len(data) {
		return 0
	}
	return copy(b, data[off:])
}

func (klogdev) write(p *Proc, minor uint8, b []byte, off int) int {
	p.Sys.klog.Write(b)
	return len(b)
}

func (klogdev) close(p *Proc, minor uint8) {
}
