// Copyright 2025 The GoUnix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import (
	"fmt"
	"os"
)

// Syscall dispatches system call num to its handler through the system
// call table: a direct indexed lookup, never a search. Numeric
// arguments ride in p.Args; string arguments, buffers, and out
// parameters are staged on p by the stubs in usys.go. The result is
// returned in R0; on error R0 is -1 and p.Error holds the errno.
//
// A number outside the table, or one whose slot has no assigned call,
// gets the universal "not implemented" handling: ENOSYS, no side
// effects, never a crash. This is not specific to any one entry.
func (p *Proc) Syscall(num int, args ...int) int {
	if num < 0 || num >= len(sysent) {
		p.Error = ENOSYS
		p.R0 = -1
		return p.R0
	}
	sys := &sysent[num]

	if p.issig() {
		p.psig() // default action; does not return
	}

	clear(p.Args[:])
	copy(p.Args[:], args)
	p.Error = 0
	p.R0 = 0
	p.R1 = 0

	interrupted := false
	func() {
		defer func() {
			if e := recover(); e != nil {
				if e == "sleep interrupted" {
					interrupted = true
					return
				}
				panic(e)
			}
		}()
		sys.impl(p)
	}()
	if interrupted {
		p.Error = EINTR
	}
	if p.Error != 0 {
		p.R0 = -1
	}

	if p.Sys.Trace {
		fmt.Fprintf(os.Stderr, "[pid %d] %s%v = %d", p.Pid, sys.name, p.Args[:sys.args], p.R0)
		if p.Error != 0 {
			fmt.Fprintf(os.Stderr, " (%v)", p.Error)
		}
		fmt.Fprintln(os.Stderr)
	}

	// Per-call pointer arguments do not survive the call.
	p.Buf = nil
	p.Ptr = nil
	p.SArg[0], p.SArg[1] = "", ""
	p.AArg = nil

	return p.R0
}

func sysnull(p *Proc) {
}

// sysnone fills table slots with no assigned system call.
func sysnone(p *Proc) {
	p.Error = ENOSYS
}
