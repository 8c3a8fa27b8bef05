// Copyright 2025 The GoUnix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package userland

import (
	"sort"
	"strconv"
	"strings"

	"github.com/PriyanshuKSharma/linux-kernel/kernel"
)

func init() {
	kernel.RegisterProgram("/bin/ps", psMain)
	kernel.RegisterProgram("/bin/dmesg", dmesgMain)
	kernel.RegisterProgram("/bin/mount", mountMain)
	kernel.RegisterProgram("/bin/umount", umountMain)
	kernel.RegisterProgram("/bin/uname", unameMain)
	kernel.RegisterProgram("/bin/hello", helloMain)
	kernel.RegisterProgram("/bin/syscall", syscallMain)
}

func psMain(p *kernel.Proc) {
	dir, err := readAll(p, "/proc")
	if err != 0 {
		fprintf(p, 2, "ps: /proc: %v\n", err)
		p.Exit(1)
	}
	var pids []int
	for _, de := range kernel.ParseDir(dir) {
		if pid, err := strconv.Atoi(de.Name); err == nil {
			pids = append(pids, pid)
		}
	}
	sort.Ints(pids)
	fprintf(p, 1, "  PID  PPID S CMD\n")
	for _, pid := range pids {
		data, err := readAll(p, "/proc/"+strconv.Itoa(pid))
		if err != 0 {
			continue
		}
		f := strings.Fields(string(data))
		if len(f) < 3 {
			continue
		}
		name := ""
		if len(f) > 3 {
			name = f[3]
		}
		fprintf(p, 1, "%5s %5s %s %s\n", f[0], f[1], f[2], name)
	}
	p.Exit(0)
}

func dmesgMain(p *kernel.Proc) {
	data, err := readAll(p, "/dev/kmsg")
	if err != 0 {
		fprintf(p, 2, "dmesg: %v\n", err)
		p.Exit(1)
	}
	p.Write(1, data)
	p.Exit(0)
}

func mountMain(p *kernel.Proc) {
	if len(p.Argv) == 1 {
		data, err := readAll(p, "/proc/mounts")
		if err != 0 {
			fprintf(p, 2, "mount: /proc/mounts: %v\n", err)
			p.Exit(1)
		}
		p.Write(1, data)
		p.Exit(0)
	}
	if len(p.Argv) != 3 {
		fprintf(p, 2, "usage: mount [fstype dir]\n")
		p.Exit(1)
	}
	if err := p.Mount(p.Argv[1], p.Argv[2]); err != 0 {
		fprintf(p, 2, "mount: %s on %s: %v\n", p.Argv[1], p.Argv[2], err)
		p.Exit(1)
	}
	p.Exit(0)
}

func umountMain(p *kernel.Proc) {
	if len(p.Argv) != 2 {
		fprintf(p, 2, "usage: umount dir\n")
		p.Exit(1)
	}
	if err := p.Umount(p.Argv[1]); err != 0 {
		fprintf(p, 2, "umount: %s: %v\n", p.Argv[1], err)
		p.Exit(1)
	}
	p.Exit(0)
}

func unameMain(p *kernel.Proc) {
	read := func(name string) string {
		data, err := readAll(p, "/sys/kernel/"+name)
		if err != 0 {
			return "unknown"
		}
		return strings.TrimSpace(string(data))
	}
	if len(p.Argv) > 1 && p.Argv[1] == "-a" {
		fprintf(p, 1, "%s %s %s %s\n", read("ostype"), read("hostname"), read("osrelease"), read("version"))
	} else {
		fprintf(p, 1, "%s\n", read("ostype"))
	}
	p.Exit(0)
}

func helloMain(p *kernel.Proc) {
	r, err := p.Hello()
	if err != 0 {
		fprintf(p, 2, "hello: %v\n", err)
		p.Exit(1)
	}
	fprintf(p, 1, "hello: syscall %d returned %d\n", kernel.SYS_HELLO, r)
	p.Exit(0)
}

// syscallMain invokes system calls by raw number, mainly to poke at
// unassigned slots from the shell.
func syscallMain(p *kernel.Proc) {
	if len(p.Argv) < 2 {
		fprintf(p, 2, "usage: syscall number...\n")
		p.Exit(1)
	}
	code := 0
	for _, arg := range p.Argv[1:] {
		num, err := strconv.Atoi(arg)
		if err != nil {
			fprintf(p, 2, "syscall: %s: bad number\n", arg)
			code = 1
			continue
		}
		r := p.Syscall(num)
		if p.Error != 0 {
			fprintf(p, 2, "syscall %d: %v\n", num, p.Error)
			code = 1
		} else {
			fprintf(p, 1, "syscall %d = %d\n", num, r)
		}
	}
	p.Exit(code)
}
