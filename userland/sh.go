// Copyright 2025 The GoUnix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package userland

import (
	"strings"

	"github.com/PriyanshuKSharma/linux-kernel/kernel"
)

func init() {
	kernel.RegisterProgram("/bin/sh", shMain)
}

// shMain is a minimal interactive shell: a prompt, blank-separated
// arguments, pipelines, and the cd and exit builtins. Commands without
// a slash are looked up in /bin.
func shMain(p *kernel.Proc) {
	// The console delivers interrupt and quit to every process on the
	// tty except PID 1, so only a nested shell needs to shield itself.
	if p.Getpid() != 1 {
		p.Signal(kernel.SIGINT, 1)
		p.Signal(kernel.SIGQIT, 1)
	}

	buf := make([]byte, 256)
	for {
		fprintf(p, 1, "# ")
		n, err := p.Read(0, buf)
		if n == 0 || err != 0 {
			p.Exit(0)
		}
		runLine(p, strings.TrimRight(string(buf[:n]), "\n"))
	}
}

func runLine(p *kernel.Proc, line string) {
	if strings.TrimSpace(line) == "" {
		return
	}
	var stages [][]string
	for _, part := range strings.Split(line, "|") {
		argv := strings.Fields(part)
		if len(argv) == 0 {
			fprintf(p, 2, "sh: syntax error\n")
			return
		}
		stages = append(stages, argv)
	}

	if len(stages) == 1 {
		argv := stages[0]
		switch argv[0] {
		case "cd":
			dir := "/"
			if len(argv) > 1 {
				dir = argv[1]
			}
			if err := p.Chdir(dir); err != 0 {
				fprintf(p, 2, "sh: cd: %s: %v\n", dir, err)
			}
			return
		case "exit":
			p.Exit(0)
		}
	}
	runPipeline(p, stages)
}

func lookPath(name string) string {
	if strings.Contains(name, "/") {
		return name
	}
	return "/bin/" + name
}

// runPipeline spawns one process per stage, wiring adjacent stages
// with pipes, and waits for all of them. The shell's own copies of
// each pipe descriptor are closed as soon as the stage using them has
// been spawned; a reader only sees end of file once every write end,
// the shell's included, is gone.
func runPipeline(p *kernel.Proc, stages [][]string) {
	save0, _ := p.Dup(0)
	save1, _ := p.Dup(1)

	var pids []int
	prevR := -1
	for i, argv := range stages {
		last := i == len(stages)-1
		var r, w int
		if !last {
			var err kernel.Errno
			r, w, err = p.Pipe()
			if err != 0 {
				fprintf(p, 2, "sh: pipe: %v\n", err)
				break
			}
		}

		// Descriptor juggling: dup picks the lowest free slot, so
		// closing 0 or 1 first lands the pipe end exactly there.
		if prevR >= 0 {
			p.Close(0)
			p.Dup(prevR)
			p.Close(prevR)
			prevR = -1
		}
		if !last {
			p.Close(1)
			p.Dup(w)
			p.Close(w)
		}

		pid, err := p.Spawn(lookPath(argv[0]), argv...)

		p.Close(0)
		p.Dup(save0)
		p.Close(1)
		p.Dup(save1)

		if err != 0 {
			fprintf(p, 2, "sh: %s: %v\n", argv[0], err)
		} else {
			pids = append(pids, pid)
		}
		if !last {
			prevR = r
		}
	}
	if prevR >= 0 {
		p.Close(prevR)
	}
	p.Close(save0)
	p.Close(save1)

	for len(pids) > 0 {
		pid, _, err := p.Wait()
		if err != 0 {
			break
		}
		for j, q := range pids {
			if q == pid {
				pids = append(pids[:j], pids[j+1:]...)
				break
			}
		}
	}
}
