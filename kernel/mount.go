// Copyright 2025 The GoUnix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

// A filesys is a mountable pseudo-filesystem. It owns no storage of
// its own: refresh regenerates the contents of the directory it is
// mounted on, so every lookup sees current kernel state.
type filesys interface {
	fsname() string
	refresh(p *Proc, dir *inode)
}

// fstab names the filesystem types the mount system call accepts.
var fstab = map[string]func() filesys{
	"proc":     func() filesys { return &procfs{} },
	"sysfs":    func() filesys { return &sysfs{} },
	"devtmpfs": func() filesys { return &devfs{} },
}

type mountpoint struct {
	fs   filesys
	ip   *inode // mount point directory, held while mounted
	path string // mount point path as given to mount
}

// refresh regenerates dir if a pseudo-filesystem is mounted on it.
// Called from namei on every directory it walks through, so it must
// not disturb the in-progress resolution.
func (sys *System) refresh(p *Proc, dir *inode) {
	if dir == nil || dir.Mode&IFMT != IFDIR {
		return
	}
	for _, m := range sys.mounts {
		if m.ip == dir {
			e := p.Error
			m.fs.refresh(p, dir)
			p.Error = e
			return
		}
	}
}

/*
 * the mount system call.
 * mount(fstype, dir) attaches a pseudo-filesystem to a directory.
 */
func sysmount(p *Proc) {
	if !p.suser() {
		return
	}
	mkfs, ok := fstab[p.SArg[0]]
	if !ok {
		p.Error = EINVAL
		return
	}
	if len(p.Sys.mounts) >= NMOUNT {
		p.Error = EBUSY
		return
	}
	ip, _, _ := p.namei(p.SArg[1], nameFind)
	if ip == nil {
		return
	}
	if ip.Mode&IFMT != IFDIR {
		p.Error = ENOTDIR
		p.iput(ip)
		return
	}
	for _, m := range p.Sys.mounts {
		if m.ip == ip {
			p.Error = EBUSY
			p.iput(ip)
			return
		}
	}

	m := &mountpoint{fs: mkfs(), ip: ip, path: p.SArg[1]}
	p.Sys.mounts = append(p.Sys.mounts, m)
	m.fs.refresh(p, ip)
	p.Sys.Klogf("mount: %s mounted on %s", m.fs.fsname(), m.path)
}

/*
 * the umount system call.
 */
func sysumount(p *Proc) {
	if !p.suser() {
		return
	}
	ip, _, _ := p.namei(p.SArg[0], nameFind)
	if ip == nil {
		return
	}
	defer p.iput(ip)
	for i, m := range p.Sys.mounts {
		if m.ip == ip {
			p.Sys.mounts = append(p.Sys.mounts[:i], p.Sys.mounts[i+1:]...)
			p.clearDir(ip)
			p.iput(m.ip)
			p.Sys.Klogf("umount: %s unmounted from %s", m.fs.fsname(), m.path)
			return
		}
	}
	p.Error = EINVAL
}

// clearDir frees everything a directory names except . and .. so a
// refresh can rebuild it. Inodes still held open elsewhere survive
// until their last close.
func (p *Proc) clearDir(dp *inode) {
	for _, de := range ParseDir(dp.data[2*direntSize:]) {
		ip := p.iget(de.Ino)
		if ip == nil {
			p.Error = 0
			continue
		}
		if ip.Mode&IFMT == IFDIR {
			p.clearDir(ip)
		}
		ip.Nlink--
		p.iput(ip)
	}
	dp.data = dp.data[:2*direntSize]
	dp.writeSize()
}

// mkfile creates a root-owned file in dp holding data.
func (p *Proc) mkfile(dp *inode, name string, mode uint16, data []byte) *inode {
	_, off := dsearch(dp.data, name)
	ip := p.maknode(name, mode, dp, off)
	if ip == nil {
		return nil
	}
	ip.Uid = 0
	ip.Gid = 0
	ip.data = data
	ip.writeSize()
	p.iput(ip)
	return ip
}

// mkdir creates a root-owned subdirectory in dp.
func (p *Proc) mkdir(dp *inode, name string) *inode {
	_, off := dsearch(dp.data, name)
	ip := p.maknode(name, IFDIR|0o555, dp, off)
	if ip == nil {
		return nil
	}
	ip.Uid = 0
	ip.Gid = 0
	p.wdir(ip, ".", ip, 0)
	p.wdir(dp, "..", ip, int(direntSize))
	p.iput(ip)
	return ip
}

// mknodAt creates a root-owned character special file in dp.
func (p *Proc) mknodAt(dp *inode, name string, major, minor uint8) *inode {
	ip := p.mkfile(dp, name, IFCHR|0o666, nil)
	if ip == nil {
		return nil
	}
	ip.Major = major
	ip.Minor = minor
	return ip
}
