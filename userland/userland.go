// Copyright 2025 The GoUnix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package userland holds the user programs for the simulated system.
// Each program is a Go function registered against its path in the
// root file system; importing this package (usually for side effects
// from a launcher) makes the programs available to exec and spawn.
package userland

import (
	"fmt"

	"github.com/PriyanshuKSharma/linux-kernel/kernel"
)

func fprintf(p *kernel.Proc, fd int, format string, args ...any) {
	p.Write(fd, []byte(fmt.Sprintf(format, args...)))
}

// readAll reads the whole of the named file through the open and read
// system calls.
func readAll(p *kernel.Proc, name string) ([]byte, kernel.Errno) {
	fd, err := p.Open(name, 0)
	if err != 0 {
		return nil, err
	}
	defer p.Close(fd)
	var data []byte
	buf := make([]byte, 512)
	for {
		n, err := p.Read(fd, buf)
		if err != 0 {
			return data, err
		}
		if n == 0 {
			return data, 0
		}
		data = append(data, buf[:n]...)
	}
}
