// Copyright 2025 The GoUnix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import "time"

func systime(p *Proc) {
	p.R0 = int(now())
}

/*
 * sleep system call
 * not to be confused with the sleep internal routine.
 */
func syssleep(p *Proc) {
	end := time.Now().Add(time.Duration(p.Args[0]) * time.Second)
	for time.Now().Before(end) {
		if p.Sys.Timer.IsZero() || p.Sys.Timer.After(end) {
			p.Sys.Timer = end
		}
		p.sleep(&p.Sys.Timer, 't', _PSLEP)
	}
}

// The file system is all in memory; sync has nothing to flush.
func syssync(p *Proc) {
}
