// Copyright 2025 The GoUnix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

// A pipe is a bounded byte queue between two file descriptors.
// Blocked readers and writers sleep on the pipe pointer itself and are
// woken by whichever side changes the queue.
type pipe struct {
	n   int
	buf [4096]byte
}

func syspipe(p *Proc) {
	ip := p.ialloc()
	if ip == nil {
		return
	}
	rf := p.falloc()
	if rf == nil {
		p.iput(ip)
		return
	}
	r := p.R0
	wf := p.falloc()
	if wf == nil {
		p.Files[r] = nil
		p.iput(ip)
		return
	}
	p.R1 = p.R0
	p.R0 = r

	pip := new(pipe)

	wf.flag = _FWRITE | _FPIPE
	wf.inode = ip
	wf.pipe = pip

	rf.flag = _FREAD | _FPIPE
	rf.inode = ip
	rf.pipe = pip

	ip.count = 2
	ip.Atime = now()
	ip.Mtime = ip.Atime
	ip.Mode = IALLOC
}

func (p *Proc) readp(f *File, b []byte) int {
	pip := f.pipe
	for pip.n == 0 {
		if f.inode.count < 2 {
			return 0
		}
		p.sleep(pip, 0, _PPIPE)
	}
	n := copy(b, pip.buf[:pip.n])
	copy(pip.buf[:], pip.buf[n:pip.n])
	pip.n -= n
	f.offset += n
	p.Sys.wakeup(pip)
	return n
}

func (p *Proc) writep(f *File, b []byte) int {
	pip := f.pipe
	total := 0
	for len(b) > 0 {
		for pip.n == len(pip.buf) && f.inode.count >= 2 {
			p.sleep(pip, 0, _PPIPE)
		}
		if f.inode.count < 2 {
			p.Error = EPIPE
			p.Sys.psignal(p, SIGPIPE)
			return 0
		}
		n := copy(pip.buf[pip.n:], b)
		pip.n += n
		total += n
		b = b[n:]
		f.offset += n
		p.Sys.wakeup(pip)
	}
	return total
}

func (p *Proc) closep(f *File) {
	p.Sys.wakeup(f.pipe)
}
