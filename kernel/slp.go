// Copyright 2025 The GoUnix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import "runtime"

/*
 * Give up the processor till a wakeup occurs on wkey.
 * When pri < 0 a signal cannot disturb the sleep;
 * if pri >= 0 a pending signal interrupts it.
 * Callers of this routine must be prepared for
 * premature return, and check that the reason for
 * sleeping has gone away.
 */
func (p *Proc) sleep(wkey any, wchan int16, pri int8) {
	if pri >= 0 && p.issig() {
		panic("sleep interrupted")
	}

	p.wkey = wkey
	p.wchan = wchan
	p.status = _SWAIT
	p.swtch()
	if pri >= 0 && p.issig() {
		panic("sleep interrupted")
	}
}

/*
 * Wake up all processes sleeping on wkey.
 */
func (sys *System) wakeup(wkey any) {
	for _, p := range sys.Procs {
		if p.wkey == wkey {
			sys.setrun(p)
		}
	}
}

/*
 * Set the process running.
 */
func (sys *System) setrun(p *Proc) {
	if p.status == _SZOMB {
		panic("zombie")
	}
	p.wkey = nil
	p.wchan = 0
	p.status = _SRUN
}

// swtch hands the processor to the next runnable process, or to the
// launcher's idle loop when there is none. The calling process resumes
// only after another switch selects it again.
func (p *Proc) swtch() {
	for {
		var next *Proc
		i := p.Sys.swtchpos
		for j := range p.Sys.Procs {
			i := (i + j) % len(p.Sys.Procs)
			p1 := p.Sys.Procs[i]
			if p1.status == _SRUN && next == nil {
				next = p1
				p.Sys.swtchpos = (i + 1) % len(p.Sys.Procs)
			}
		}

		if next != nil {
			if next.sched == nil {
				panic("swtch")
			}
			next.sched <- true
		} else {
			p.Sys.idle <- true
		}
		if p.status == _SZOMB {
			runtime.Goexit()
		}
		<-p.sched
		if p.status == _SRUN {
			break
		}
	}
}
