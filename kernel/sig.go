// Copyright 2025 The GoUnix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

/*
 * Send the specified signal to all processes controlled
 * by the given tty. Called for console interrupts and quits.
 * PID 1 is exempt; killing init takes the whole system down.
 */
func (sys *System) signal(t *TTY, sig int) {
	for _, p := range sys.Procs {
		if p.TTY == t && p.Pid != 1 {
			sys.psignal(p, sig)
		}
	}
}

/*
 * Send the specified signal to the specified process.
 */
func (sys *System) psignal(p *Proc, sig int) {
	if sig <= 0 || sig >= NSIG {
		return
	}
	if p.sig != SIGKIL {
		p.sig = int8(sig)
	}
	if p.status == _SWAIT {
		sys.setrun(p)
	}
}

/*
 * Returns true if the current process has a signal to process.
 * This is asked at least once each time a process enters the system.
 */
func (p *Proc) issig() bool {
	if n := p.sig; n != 0 {
		if p.Signals[n]&1 == 0 {
			return true
		}
	}
	return false
}

// psig performs the action for the pending signal. There are no
// user-space signal handlers: a program either ignores a signal
// through the sig system call or dies by it. Does not return.
func (p *Proc) psig() {
	sig := p.sig
	p.sig = 0
	p.Args[0] = int(sig)
	p.exit()
}

/*
 * the kill system call.
 */
func syskill(p *Proc) {
	p.kill(int16(p.Args[0]), p.Args[1])
}

func (p *Proc) kill(pid int16, sig int) {
	found := 0
	for _, p1 := range p.Sys.Procs {
		if p1 == p {
			continue
		}
		if pid != 0 && p1.Pid != pid {
			continue
		}
		if pid == 0 && (p1.TTY != p.TTY || p1.Pid == 1) {
			continue
		}
		if p.Uid != 0 && p1.Uid != p.Uid {
			continue
		}
		found++
		p.Sys.psignal(p1, sig)
	}
	if found == 0 {
		p.Error = ESRCH
	}
}

/*
 * the sig system call. Action 1 means ignore;
 * 0 restores the default (the process dies).
 */
func syssig(p *Proc) {
	a := p.Args[0]
	if a <= 0 || a >= NSIG || a == SIGKIL {
		p.Error = EINVAL
		return
	}
	p.R0 = int(p.Signals[a])
	p.Signals[a] = uint16(p.Args[1])
	if p.sig == int8(a) && p.Args[1] == 1 {
		p.sig = 0
	}
}
