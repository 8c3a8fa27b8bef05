// Copyright 2025 The GoUnix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package userland

import "github.com/PriyanshuKSharma/linux-kernel/kernel"

func init() {
	kernel.RegisterProgram("/etc/init", initMain)
}

// initMain is PID 1. It mounts the pseudo-filesystems in a fixed
// order, opens the console as descriptors 0, 1, and 2, prints the
// message of the day, and replaces itself with an interactive shell.
// Exec never returns on success; reaching the final Exit means the
// shell could not be started, and the kernel logs the death of init.
func initMain(p *kernel.Proc) {
	// Mount failures are ignored: a system without /proc is degraded
	// but still boots to a shell.
	p.Mount("proc", "/proc")
	p.Mount("sysfs", "/sys")
	p.Mount("devtmpfs", "/dev")

	if fd, err := p.Open("/dev/console", 2); err == 0 {
		p.Dup(fd)
		p.Dup(fd)
	}

	if motd, err := readAll(p, "/etc/motd"); err == 0 {
		p.Write(1, motd)
	}

	p.Exec("/bin/sh")
	p.Exit(1)
}
