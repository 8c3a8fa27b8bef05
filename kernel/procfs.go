// Copyright 2025 The GoUnix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import (
	"fmt"
	"strconv"
	"time"
)

// procfs presents the process table: one file per pid, holding
// "pid ppid state name", plus the mount table and the uptime.
type procfs struct{}

func (*procfs) fsname() string { return "proc" }

func (*procfs) refresh(p *Proc, dir *inode) {
	sys := p.Sys
	p.clearDir(dir)
	for _, p1 := range sys.Procs {
		line := fmt.Sprintf("%d %d %s %s\n", p1.Pid, p1.Ppid, procStateName(p1.status), p1.Name)
		p.mkfile(dir, strconv.Itoa(int(p1.Pid)), 0o444, []byte(line))
	}

	var mounts []byte
	for _, m := range sys.mounts {
		mounts = fmt.Appendf(mounts, "%s %s %s rw\n", m.fs.fsname(), m.path, m.fs.fsname())
	}
	p.mkfile(dir, "mounts", 0o444, mounts)

	uptime := fmt.Sprintf("%.2f\n", time.Since(sys.boot).Seconds())
	p.mkfile(dir, "uptime", 0o444, []byte(uptime))
}
