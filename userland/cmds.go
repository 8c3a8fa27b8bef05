// Copyright 2025 The GoUnix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package userland

import (
	"sort"
	"strings"

	"github.com/PriyanshuKSharma/linux-kernel/kernel"
)

func init() {
	kernel.RegisterProgram("/bin/echo", echoMain)
	kernel.RegisterProgram("/bin/cat", catMain)
	kernel.RegisterProgram("/bin/ls", lsMain)
}

func echoMain(p *kernel.Proc) {
	fprintf(p, 1, "%s\n", strings.Join(p.Argv[1:], " "))
	p.Exit(0)
}

func catMain(p *kernel.Proc) {
	if len(p.Argv) == 1 {
		catFd(p, 0)
		p.Exit(0)
	}
	code := 0
	for _, name := range p.Argv[1:] {
		fd, err := p.Open(name, 0)
		if err != 0 {
			fprintf(p, 2, "cat: %s: %v\n", name, err)
			code = 1
			continue
		}
		catFd(p, fd)
		p.Close(fd)
	}
	p.Exit(code)
}

func catFd(p *kernel.Proc, fd int) {
	buf := make([]byte, 512)
	for {
		n, err := p.Read(fd, buf)
		if n == 0 || err != 0 {
			return
		}
		p.Write(1, buf[:n])
	}
}

func lsMain(p *kernel.Proc) {
	args := p.Argv[1:]
	if len(args) == 0 {
		args = []string{"."}
	}
	code := 0
	for _, name := range args {
		var st kernel.Stat
		if err := p.Stat(name, &st); err != 0 {
			fprintf(p, 2, "ls: %s: %v\n", name, err)
			code = 1
			continue
		}
		if st.Mode&kernel.IFMT != kernel.IFDIR {
			fprintf(p, 1, "%s\n", name)
			continue
		}
		data, err := readAll(p, name)
		if err != 0 {
			fprintf(p, 2, "ls: %s: %v\n", name, err)
			code = 1
			continue
		}
		var names []string
		for _, de := range kernel.ParseDir(data) {
			if de.Name != "." && de.Name != ".." {
				names = append(names, de.Name)
			}
		}
		sort.Strings(names)
		for _, n := range names {
			fprintf(p, 1, "%s\n", n)
		}
	}
	p.Exit(code)
}
