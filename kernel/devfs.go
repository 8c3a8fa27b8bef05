// Copyright 2025 The GoUnix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

// devfs populates the device directory with the character special
// files backed by the device switch.
type devfs struct{}

func (*devfs) fsname() string { return "devtmpfs" }

func (*devfs) refresh(p *Proc, dir *inode) {
	p.clearDir(dir)
	p.mknodAt(dir, "console", devTTY, 0)
	p.mknodAt(dir, "tty", devTTY, 0)
	p.mknodAt(dir, "null", devNull, 0)
	p.mknodAt(dir, "zero", devZero, 0)
	p.mknodAt(dir, "kmsg", devKlog, 0)
}
