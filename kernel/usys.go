// Copyright 2025 The GoUnix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

// Typed system call stubs for user programs. Each stub stages its
// arguments on the process and funnels through Syscall, so every
// request crosses the numbered table exactly like a raw Syscall would.

// Exit terminates the process with the given status. It does not
// return; the exit handler switches away for the last time.
func (p *Proc) Exit(status int) {
	p.Syscall(SYS_EXIT, status)
	panic("exit returned")
}

// Spawn creates a child process running the named program and returns
// its pid.
func (p *Proc) Spawn(name string, argv ...string) (int, Errno) {
	p.SArg[0] = name
	p.AArg = argv
	pid := p.Syscall(SYS_SPAWN)
	return pid, p.Error
}

func (p *Proc) Read(fd int, b []byte) (int, Errno) {
	p.Buf = b
	n := p.Syscall(SYS_READ, fd)
	return n, p.Error
}

func (p *Proc) Write(fd int, b []byte) (int, Errno) {
	p.Buf = b
	n := p.Syscall(SYS_WRITE, fd)
	return n, p.Error
}

// Open opens the named file. Mode 0 is read only, 1 write only,
// 2 read and write.
func (p *Proc) Open(name string, mode int) (int, Errno) {
	p.SArg[0] = name
	fd := p.Syscall(SYS_OPEN, mode)
	return fd, p.Error
}

func (p *Proc) Close(fd int) Errno {
	p.Syscall(SYS_CLOSE, fd)
	return p.Error
}

// Wait waits for a child to exit and returns its pid and wait status.
func (p *Proc) Wait() (pid, status int, err Errno) {
	pid = p.Syscall(SYS_WAIT)
	return pid, p.R1, p.Error
}

func (p *Proc) Creat(name string, mode int) (int, Errno) {
	p.SArg[0] = name
	fd := p.Syscall(SYS_CREAT, mode)
	return fd, p.Error
}

func (p *Proc) Link(old, new string) Errno {
	p.SArg[0] = old
	p.SArg[1] = new
	p.Syscall(SYS_LINK)
	return p.Error
}

func (p *Proc) Unlink(name string) Errno {
	p.SArg[0] = name
	p.Syscall(SYS_UNLINK)
	return p.Error
}

// Exec replaces the current program image with the named program.
// On success it does not return.
func (p *Proc) Exec(name string, argv ...string) Errno {
	p.SArg[0] = name
	p.AArg = argv
	p.Syscall(SYS_EXEC)
	return p.Error
}

func (p *Proc) Chdir(dir string) Errno {
	p.SArg[0] = dir
	p.Syscall(SYS_CHDIR)
	return p.Error
}

// Time returns the current time in seconds.
func (p *Proc) Time() int {
	return p.Syscall(SYS_TIME)
}

// Mknod creates a special file. The dev argument packs major<<8|minor.
func (p *Proc) Mknod(name string, mode, dev int) Errno {
	p.SArg[0] = name
	p.Syscall(SYS_MKNOD, mode, dev)
	return p.Error
}

func (p *Proc) Chmod(name string, mode int) Errno {
	p.SArg[0] = name
	p.Syscall(SYS_CHMOD, mode)
	return p.Error
}

func (p *Proc) Stat(name string, st *Stat) Errno {
	p.SArg[0] = name
	p.Ptr = st
	p.Syscall(SYS_STAT)
	return p.Error
}

func (p *Proc) Fstat(fd int, st *Stat) Errno {
	p.Ptr = st
	p.Syscall(SYS_FSTAT, fd)
	return p.Error
}

// Seek repositions fd and returns the new offset. Whence 0 is from the
// start, 1 from the current offset, 2 from the end.
func (p *Proc) Seek(fd, off, whence int) (int, Errno) {
	n := p.Syscall(SYS_SEEK, fd, off, whence)
	return n, p.Error
}

func (p *Proc) Getpid() int {
	return p.Syscall(SYS_GETPID)
}

// Mount attaches the named pseudo-filesystem type to dir.
func (p *Proc) Mount(fstype, dir string) Errno {
	p.SArg[0] = fstype
	p.SArg[1] = dir
	p.Syscall(SYS_MOUNT)
	return p.Error
}

func (p *Proc) Umount(dir string) Errno {
	p.SArg[0] = dir
	p.Syscall(SYS_UMOUNT)
	return p.Error
}

func (p *Proc) Dup(fd int) (int, Errno) {
	nfd := p.Syscall(SYS_DUP, fd)
	return nfd, p.Error
}

// Pipe returns the read and write descriptors of a new pipe.
func (p *Proc) Pipe() (r, w int, err Errno) {
	r = p.Syscall(SYS_PIPE)
	return r, p.R1, p.Error
}

func (p *Proc) Sleep(secs int) Errno {
	p.Syscall(SYS_SLEEP, secs)
	return p.Error
}

func (p *Proc) Sync() {
	p.Syscall(SYS_SYNC)
}

func (p *Proc) Kill(pid, sig int) Errno {
	p.Syscall(SYS_KILL, pid, sig)
	return p.Error
}

// Signal sets the disposition of sig: 1 ignores it, 0 restores the
// default. It returns the previous disposition.
func (p *Proc) Signal(sig, action int) (int, Errno) {
	old := p.Syscall(SYS_SIG, sig, action)
	return old, p.Error
}

// Hello invokes the hello system call.
func (p *Proc) Hello() (int, Errno) {
	r := p.Syscall(SYS_HELLO)
	return r, p.Error
}
