// Copyright 2025 The GoUnix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

// sysfs presents kernel identification under kernel/.
type sysfs struct{}

func (*sysfs) fsname() string { return "sysfs" }

func (*sysfs) refresh(p *Proc, dir *inode) {
	p.clearDir(dir)
	kd := p.mkdir(dir, "kernel")
	if kd == nil {
		return
	}
	p.mkfile(kd, "ostype", 0o444, []byte(OSType+"\n"))
	p.mkfile(kd, "osrelease", 0o444, []byte(OSRelease+"\n"))
	p.mkfile(kd, "version", 0o444, []byte(OSVersion+"\n"))
	p.mkfile(kd, "hostname", 0o444, []byte(OSType+"\n"))
}
