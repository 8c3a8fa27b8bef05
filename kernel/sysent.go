// Copyright 2025 The GoUnix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

// System call numbers. The table is append-only: a number, once
// assigned and shipped, is never reused or renumbered, because user
// programs address system calls by number alone. New calls take the
// lowest unassigned slot.
const (
	SYS_NULL   = 0
	SYS_EXIT   = 1
	SYS_SPAWN  = 2
	SYS_READ   = 3
	SYS_WRITE  = 4
	SYS_OPEN   = 5
	SYS_CLOSE  = 6
	SYS_WAIT   = 7
	SYS_CREAT  = 8
	SYS_LINK   = 9
	SYS_UNLINK = 10
	SYS_EXEC   = 11
	SYS_CHDIR  = 12
	SYS_TIME   = 13
	SYS_MKNOD  = 14
	SYS_CHMOD  = 15
	SYS_STAT   = 16
	SYS_FSTAT  = 17
	SYS_SEEK   = 18
	SYS_GETPID = 19
	SYS_MOUNT  = 20
	SYS_UMOUNT = 21
	SYS_DUP    = 22
	SYS_PIPE   = 23
	SYS_SLEEP  = 24
	SYS_SYNC   = 25
	SYS_KILL   = 26
	SYS_SIG    = 27
	SYS_HELLO  = 28

	// NSYSCALL is the number of assigned system calls; slots from here
	// to the end of the table are unassigned.
	NSYSCALL = SYS_HELLO + 1
)

var sysent [32]sysentry

type sysentry struct {
	args uint16
	name string
	impl func(*Proc)
}

func init() {
	sysent = [32]sysentry{
		{0, "null", sysnull},     /*  0 = null */
		{1, "exit", sysexit},     /*  1 = exit */
		{0, "spawn", sysspawn},   /*  2 = spawn */
		{2, "read", sysread},     /*  3 = read */
		{2, "write", syswrite},   /*  4 = write */
		{1, "open", sysopen},     /*  5 = open */
		{1, "close", sysclose},   /*  6 = close */
		{0, "wait", syswait},     /*  7 = wait */
		{1, "creat", syscreat},   /*  8 = creat */
		{0, "link", syslink},     /*  9 = link */
		{0, "unlink", sysunlink}, /* 10 = unlink */
		{0, "exec", sysexec},     /* 11 = exec */
		{0, "chdir", syschdir},   /* 12 = chdir */
		{0, "time", systime},     /* 13 = time */
		{3, "mknod", sysmknod},   /* 14 = mknod */
		{1, "chmod", syschmod},   /* 15 = chmod */
		{0, "stat", sysstat},     /* 16 = stat */
		{1, "fstat", sysfstat},   /* 17 = fstat */
		{3, "seek", sysseek},     /* 18 = seek */
		{0, "getpid", sysgetpid}, /* 19 = getpid */
		{0, "mount", sysmount},   /* 20 = mount */
		{0, "umount", sysumount}, /* 21 = umount */
		{1, "dup", sysdup},       /* 22 = dup */
		{0, "pipe", syspipe},     /* 23 = pipe */
		{1, "sleep", syssleep},   /* 24 = sleep */
		{0, "sync", syssync},     /* 25 = sync */
		{2, "kill", syskill},     /* 26 = kill */
		{2, "sig", syssig},       /* 27 = sig */
		{0, "hello", syshello},   /* 28 = hello */
		{0, "29", sysnone},       /* 29 = unassigned */
		{0, "30", sysnone},       /* 30 = unassigned */
		{0, "31", sysnone},       /* 31 = unassigned */
	}
}
