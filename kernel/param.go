// Copyright 2025 The GoUnix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

/*
 * tunable variables
 */
const (
	NPROC   = 50      /* max number of processes */
	NOFILE  = 15      /* max open files per process */
	NMOUNT  = 5       /* max number of mounted file systems */
	CANBSIZ = 256     /* max size of console input line */
	KLOGSIZ = 1 << 14 /* size of the kernel log ring buffer; power of 2 */
)

/*
 * identification, exported through /sys/kernel
 */
const (
	OSType    = "gounix"
	OSRelease = "1.0.0"
	OSVersion = "#1"
)

/*
 * signals
 */
const (
	NSIG    = 20
	SIGHUP  = 1  /* hangup */
	SIGINT  = 2  /* interrupt */
	SIGQIT  = 3  /* quit */
	SIGKIL  = 9  /* kill */
	SIGSYS  = 12 /* bad system call */
	SIGPIPE = 13 /* write on a pipe with no reader */
)

/*
 * fundamental constants
 */
const (
	ROOTINO = 1  /* i number of the root directory */
	DIRSIZ  = 14 /* max characters per directory entry name */
)

const (
	/* status codes */
	_SWAIT int8 = 2 /* sleeping */
	_SRUN  int8 = 3 /* running */
	_SIDL  int8 = 4 /* intermediate state in process creation */
	_SZOMB int8 = 5 /* intermediate state in process termination */

	/* priorities */
	_PPIPE int8 = 1
	_PWAIT int8 = 40
	_PSLEP int8 = 90
)
