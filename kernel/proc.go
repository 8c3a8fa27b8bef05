// Copyright 2025 The GoUnix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kernel simulates a small Unix-like kernel: a fixed system call
// table dispatching to in-kernel handlers, a process table driven by a
// cooperative scheduler, an in-memory file system loaded from a txtar
// archive, a device switch, and mountable pseudo-filesystems.
//
// User programs are Go functions registered against paths in the root
// file system. They request kernel services only through the numbered
// system call interface on *Proc.
package kernel

import (
	_ "embed"
	"fmt"
	"io"
	"runtime"
	"time"
)

//go:embed fs.txtar
var FS []byte

// Program is the entry point of a user program. It runs on its own
// goroutine but under the kernel's cooperative scheduler: exactly one
// process executes at a time, and control changes hands only inside
// system calls.
type Program func(p *Proc)

var progtab = map[string]Program{}

// RegisterProgram associates a user program with a path in the root
// file system. Registration must happen before NewSystem (typically
// from an init function); the path is resolved to its inode at boot,
// and exec refuses files that resolve to no registered program.
func RegisterProgram(path string, prog Program) {
	progtab[path] = prog
}

type Proc struct {
	Sys     *System
	Args    [4]int    // numeric syscall arguments
	SArg    [2]string // string syscall arguments
	AArg    []string  // argument vector, for spawn and exec
	Buf     []byte    // caller buffer for read/write-style calls
	Ptr     any       // out parameter for stat-style calls
	R0, R1  int       // syscall return registers
	Error   Errno     // syscall error
	Argv    []string  // program arguments, set by exec
	Name    string    // program path, shown in /proc
	Pid     int16     // unique process id
	Ppid    int16     // process id of parent
	Uid     int8      // effective user id
	Gid     int8      // effective group id
	RUid    int8      // real user id
	RGid    int8      // real group id
	Dir     *inode    // current directory
	Files   [NOFILE]*File
	Signals [NSIG]uint16 // 1 means ignore; there are no user handlers
	TTY     *TTY

	prog   Program
	status int8
	sig    int8
	wkey   any
	wchan  int16
	sched  chan bool
}

type File struct {
	flag   int
	count  int
	offset int
	inode  *inode
	pipe   *pipe
}

type System struct {
	Disk    *Disk
	Procs   []*Proc
	NextPid int16
	Console TTY
	Timer   time.Time
	Trace   bool

	mounts      []*mountpoint
	progs       map[uint16]Program
	klog        klogBuf
	boot        time.Time
	consoleRead int
	swtchpos    int
	idle        chan bool
}

func (sys *System) lookpid(pid int16) *Proc {
	for _, p := range sys.Procs {
		if p.Pid == pid {
			return p
		}
	}
	return nil
}

func procStateName(status int8) string {
	switch status {
	case _SWAIT:
		return "S"
	case _SRUN:
		return "R"
	case _SIDL:
		return "I"
	case _SZOMB:
		return "Z"
	}
	return "?"
}

func NewSystem(archive []byte) (*System, error) {
	sys := new(System)
	d, err := newDisk(archive)
	if err != nil {
		return nil, err
	}
	sys.Disk = d
	sys.boot = time.Now()
	sys.idle = make(chan bool)
	sys.Console.Sys = sys
	sys.Console.flags = ECHO | CRMOD
	sys.Console.erase = CERASE
	sys.Console.kill = CKILL

	// Bind registered programs to the inodes their paths name now.
	// A registered path missing from the archive is not an error here;
	// exec of that path fails with ENOENT like any other missing file.
	sys.progs = make(map[uint16]Program)
	p := &Proc{Sys: sys}
	p.Dir = p.iget(ROOTINO)
	for path, prog := range progtab {
		p.Error = 0
		ip, _, _ := p.namei(path, nameFind)
		if ip == nil {
			continue
		}
		sys.progs[ip.Ino] = prog
		p.iput(ip)
	}
	p.iput(p.Dir)

	sys.Klogf("%s %s %s booting", OSType, OSRelease, OSVersion)
	sys.Klogf("syscall table: %d slots, %d assigned", len(sysent), NSYSCALL)
	return sys, nil
}

// ReadFile returns the contents of the named file, resolved with
// super-user credentials. It is a host-side convenience for the
// launcher and for tests; running programs use open and read.
func (sys *System) ReadFile(name string) ([]byte, error) {
	p := &Proc{Sys: sys}
	p.Pid = 1
	p.Dir = p.iget(ROOTINO)
	defer p.iput(p.Dir)

	ip, _, _ := p.namei(name, nameFind)
	if ip == nil {
		return nil, p.Error
	}
	defer p.iput(ip)
	return ip.data, nil
}

// Start creates the first process, PID 1, running the named program
// with console output directed to stdout. The kernel treats PID 1 as
// the root of the process tree; a missing or non-executable program is
// the boot-time fatal condition surfaced here as an error.
func (sys *System) Start(name string, argv []string, stdout io.Writer) (*Proc, error) {
	p := sys.newProc()
	p.Pid = 1
	p.Ppid = 0
	p.Dir = p.iget(ROOTINO)
	sys.Console.Print = func(b []byte, echo bool) (int, Errno) {
		n, err := stdout.Write(b)
		if err != nil {
			return 0, EIO
		}
		return n, 0
	}

	p.exec1(name, argv)
	if p.Error != 0 {
		return nil, fmt.Errorf("exec %s: %v", name, p.Error)
	}

	sys.Procs = append(sys.Procs, p)
	sys.setrun(p)
	return p, nil
}

func (sys *System) newProc() *Proc {
	p := new(Proc)
	p.Sys = sys
	p.status = _SIDL

Retry:
	pid := sys.NextPid
	if sys.NextPid <= 0 {
		sys.NextPid = 1
		goto Retry
	}
	sys.NextPid++
	for _, op := range sys.Procs {
		if op.Pid == pid {
			goto Retry
		}
	}

	p.Pid = pid
	p.sched = make(chan bool)
	go sys.run(p)
	return p
}

// spawn creates a child of parent sharing its open files, directory,
// signal dispositions, and controlling tty. The caller installs the
// child's program image and sets it running.
func (sys *System) spawn(parent *Proc) (*Proc, Errno) {
	if len(sys.Procs) >= NPROC {
		return nil, EAGAIN
	}

	p := sys.newProc()
	p.Ppid = parent.Pid
	p.Uid = parent.Uid
	p.RUid = parent.RUid
	p.Gid = parent.Gid
	p.RGid = parent.RGid
	p.Dir = parent.Dir
	p.Dir.count++
	p.Files = parent.Files
	p.Signals = parent.Signals
	p.TTY = parent.TTY
	for _, f := range p.Files {
		if f != nil {
			f.count++
		}
	}
	sys.Procs = append(sys.Procs, p)

	return p, 0
}

// Wait runs the system until every process is parked again: blocked in
// a system call, exited, or waiting for console input or a timer. The
// launcher calls it once per batch of outside events (console bytes,
// timer expiry).
func (sys *System) Wait() {
	if !sys.Timer.IsZero() && !time.Now().Before(sys.Timer) {
		sys.Timer = time.Time{}
		sys.wakeup(&sys.Timer)
	}
	// Any parked proc can run the scheduler loop; it will find the
	// right next process to run itself. Zombies have no goroutine
	// left to receive the kick.
	for _, p := range sys.Procs {
		if p.status != _SZOMB {
			p.sched <- true
			<-sys.idle
			return
		}
	}
}

// ConsoleRead reports whether some process is blocked reading the
// console, that is, whether feeding input can make progress.
func (sys *System) ConsoleRead() bool {
	return sys.consoleRead > 0
}

// ConsoleEOF marks end of console input and wakes any blocked readers.
func (sys *System) ConsoleEOF() {
	sys.Console.EOF = true
	sys.wakeup(&sys.Console.Delct)
}

// execJump unwinds a successful exec back to the process run loop.
type execJump struct{}

func (sys *System) run(p *Proc) {
	<-p.sched
	if p.status == _SZOMB {
		runtime.Goexit()
	}
	for p.runProg() {
	}
	p.Args[0] = 0
	p.exit()
}

// runProg runs the current program image and reports whether the
// process exec'd a new image in its place.
func (p *Proc) runProg() (execed bool) {
	defer func() {
		if e := recover(); e != nil {
			if _, ok := e.(execJump); ok {
				execed = true
				return
			}
			panic(e)
		}
	}()
	p.prog(p)
	return false
}
