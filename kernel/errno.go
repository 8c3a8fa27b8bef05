// Copyright 2025 The GoUnix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import "fmt"

const (
	EPERM Errno = 1 + iota
	ENOENT
	ESRCH
	EINTR
	EIO
	ENXIO
	E2BIG
	ENOEXEC
	EBADF
	ECHILD
	EAGAIN
	ENOMEM
	EACCES
	EBUSY
	EEXIST
	ENODEV
	ENOTDIR
	EISDIR
	EINVAL
	EMFILE
	ENOTTY
	ENOSPC
	ESPIPE
	EMLINK
	EPIPE
	ENOSYS /* the universal status for an unassigned system call number */
	EFAULT Errno = 106
)

type Errno int8

func (e Errno) Error() string {
	if e == EFAULT {
		return "EFAULT"
	}
	if 0 <= e && int(e) < len(enames) && enames[e] != "" {
		return enames[e]
	}
	return fmt.Sprintf("Errno(%d)", int(e))
}

var enames = []string{
	"",
	"EPERM",
	"ENOENT",
	"ESRCH",
	"EINTR",
	"EIO",
	"ENXIO",
	"E2BIG",
	"ENOEXEC",
	"EBADF",
	"ECHILD",
	"EAGAIN",
	"ENOMEM",
	"EACCES",
	"EBUSY",
	"EEXIST",
	"ENODEV",
	"ENOTDIR",
	"EISDIR",
	"EINVAL",
	"EMFILE",
	"ENOTTY",
	"ENOSPC",
	"ESPIPE",
	"EMLINK",
	"EPIPE",
	"ENOSYS",
}
