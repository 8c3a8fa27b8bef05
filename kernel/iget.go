// Copyright 2025 The GoUnix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import "time"

func now() int64 {
	return time.Now().Unix()
}

func (p *Proc) iget(inum uint16) *inode {
	d := p.Sys.Disk
	if int(inum) >= len(d.inodes) || d.inodes[inum] == nil {
		p.Error = EIO
		return nil
	}
	ip := d.inodes[inum]
	ip.count++
	return ip
}

func (p *Proc) iput(ip *inode) {
	if ip == nil {
		return
	}
	d := p.Sys.Disk
	ip.count--
	if ip.count == 0 {
		if ip.Nlink <= 0 {
			d.inodes[ip.Ino] = nil
			return
		}
	}
}

func (p *Proc) itrunc(ip *inode) {
	if ip.Mode&IFCHR != 0 {
		return
	}
	ip.data = nil
	ip.writeSize()
	ip.Mtime = now()
}

func (p *Proc) maknode(name string, mode uint16, dp *inode, off int) *inode {
	ip := p.ialloc()
	if ip == nil {
		return nil
	}
	ip.Atime = now()
	ip.Mtime = ip.Atime
	ip.Mode = mode | IALLOC
	ip.Nlink = 1
	ip.Uid = p.Uid
	ip.Gid = p.Gid
	p.wdir(ip, name, dp, off)
	return ip
}

func (p *Proc) wdir(ip *inode, name string, dp *inode, off int) {
	var de dirent
	de.inum = ip.Ino
	copy(de.nam[:], name)
	if off == len(dp.data) {
		dp.data = append(dp.data, de.bytes()...)
		dp.writeSize()
	} else {
		copy(dp.data[off:], de.bytes())
	}
}
