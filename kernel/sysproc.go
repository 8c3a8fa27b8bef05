// Copyright 2025 The GoUnix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import "slices"

/*
 * exec system call. Replaces the current program image with the named
 * one; control never returns to the caller on success.
 */
func sysexec(p *Proc) {
	p.exec1(p.SArg[0], slices.Clone(p.AArg))
	if p.Error != 0 {
		return
	}
	panic(execJump{})
}

// exec1 installs the program registered for the named file as the
// process's image. Errors leave the old image untouched.
func (p *Proc) exec1(name string, argv []string) {
	prog, ip := p.lookupProg(name)
	if prog == nil {
		return
	}
	if ip.Mode&ISUID != 0 && p.Uid != 0 {
		p.Uid = ip.Uid
	}
	if ip.Mode&ISGID != 0 {
		p.Gid = ip.Gid
	}
	p.iput(ip)

	if len(argv) == 0 {
		argv = []string{name}
	}
	p.prog = prog
	p.Argv = argv
	p.Name = name

	// clear sigs, except ignored ones
	for i := range p.Signals {
		if p.Signals[i] != 1 {
			p.Signals[i] = 0
		}
	}
}

// lookupProg resolves name to an executable file and the program bound
// to its inode. The caller owns the returned inode reference.
func (p *Proc) lookupProg(name string) (Program, *inode) {
	ip, _, _ := p.namei(name, nameFind)
	if ip == nil {
		return nil, nil
	}
	if !p.access(ip, IEXEC) {
		p.iput(ip)
		return nil, nil
	}
	if ip.Mode&IFMT != 0 {
		p.Error = ENOEXEC
		p.iput(ip)
		return nil, nil
	}
	prog := p.Sys.progs[ip.Ino]
	if prog == nil {
		p.Error = ENOEXEC
		p.iput(ip)
		return nil, nil
	}
	return prog, ip
}

/*
 * spawn system call: create a child process running the named program.
 * The child shares the parent's open files, directory, and tty; the
 * parent gets the child's pid in R0.
 */
func sysspawn(p *Proc) {
	prog, ip := p.lookupProg(p.SArg[0])
	if prog == nil {
		return
	}

	child, errno := p.Sys.spawn(p)
	if errno != 0 {
		p.iput(ip)
		p.Error = errno
		return
	}
	if ip.Mode&ISUID != 0 && child.Uid != 0 {
		child.Uid = ip.Uid
	}
	if ip.Mode&ISGID != 0 {
		child.Gid = ip.Gid
	}
	p.iput(ip)

	argv := slices.Clone(p.AArg)
	if len(argv) == 0 {
		argv = []string{p.SArg[0]}
	}
	child.prog = prog
	child.Argv = argv
	child.Name = p.SArg[0]

	p.Sys.setrun(child)
	p.R0 = int(child.Pid)
}

func sysexit(p *Proc) {
	p.Args[0] = (p.Args[0] & 0o377) << 8
	p.exit()
}

/*
 * Release resources.
 * Save wait status for parent to look at.
 * Enter zombie state.
 * Wake up parent and init processes,
 * and dispose of children.
 */
func (p *Proc) exit() {
	for i := range p.Signals {
		p.Signals[i] = 1
	}
	for i, f := range p.Files {
		if f != nil {
			p.Files[i] = nil
			p.closef(f)
		}
	}
	p.iput(p.Dir)
	p.status = _SZOMB

	if p.Pid == 1 {
		p.Sys.Klogf("kernel panic: attempted to kill init")
	}

	parent := p.Sys.lookpid(p.Ppid)
	if parent == nil && p.Pid != 1 {
		p.Ppid = 1
		parent = p.Sys.lookpid(1)
	}
	if parent != nil {
		p.Sys.wakeup(parent)
	}
	for _, q := range p.Sys.Procs {
		if q.Ppid == p.Pid {
			q.Ppid = 1
		}
	}
	p.swtch()
}

func syswait(p *Proc) {
	for {
		found := 0
		for i, p1 := range p.Sys.Procs {
			if p1.Ppid == p.Pid {
				found++
				if p1.status == _SZOMB {
					p.Sys.Procs = slices.Delete(p.Sys.Procs, i, i+1)
					p.R0 = int(p1.Pid)
					p.R1 = p1.Args[0] // wait status
					return
				}
			}
		}
		if found == 0 {
			p.Error = ECHILD
			return
		}
		p.sleep(p, 'w', _PWAIT)
	}
}

func sysgetpid(p *Proc) {
	p.R0 = int(p.Pid)
}
