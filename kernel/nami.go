// Copyright 2025 The GoUnix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import (
	"unsafe"
)

const (
	nameFind   = 0
	nameCreate = 1
	nameDelete = 2
)

// namei resolves a path name. For nameFind it returns the inode; for
// nameCreate on a missing final element it returns the parent directory
// and the slot offset for the new entry; for nameDelete it returns both
// the inode and its parent. Directories under a mount point are
// regenerated by the owning pseudo-filesystem before each lookup, so
// their contents are always current.
func (p *Proc) namei(name string, op int) (ip, dp *inode, off int) {
	d := p.Sys.Disk
	if name != "" && name[0] == '/' {
		dp = d.inodes[ROOTINO]
	} else {
		dp = p.Dir
	}
	dp.count++

	if elem, _ := nextElem(name); elem == "" {
		p.Sys.refresh(p, dp)
		return dp, nil, 0
	}

	for {
		p.Sys.refresh(p, dp)
		if !p.access(dp, IEXEC) {
			p.iput(dp)
			return nil, nil, 0
		}
		elem, rest := nextElem(name)
		if elem == "" {
			panic("namei")
		}

		inum, off := dsearch(dp.data, elem)
		if inum == 0 {
			if rest == "" && op == nameCreate && p.access(dp, IWRITE) {
				dp.Mtime = now()
				return nil, dp, off
			}
			if p.Error == 0 {
				p.Error = ENOENT
			}
			p.iput(dp)
			return nil, nil, 0
		}
		ip := p.iget(inum)
		if rest == "" && op == nameDelete {
			if !p.access(dp, IWRITE) {
				p.iput(ip)
				p.iput(dp)
				return nil, nil, 0
			}
			return ip, dp, off
		}
		p.iput(dp)
		if ip == nil {
			return nil, nil, 0
		}
		if rest == "" {
			p.Sys.refresh(p, ip)
			return ip, nil, 0
		}
		name = rest
		dp = ip
	}
}

func dsearch(data []byte, elem string) (inum uint16, off int) {
	slot := len(data)
	for i := 0; i < len(data); i += int(direntSize) {
		dir := (*dirent)(unsafe.Pointer(&data[i]))
		if dir.inum != 0 && dir.name() == elem {
			return dir.inum, i
		}
		if slot == len(data) && dir.inum == 0 {
			slot = i
		}
	}
	return 0, slot
}

func nextElem(path string) (elem, rest string) {
	i := 0
	for i < len(path) && path[i] == '/' {
		i++
	}
	path = path[i:]
	if path == "" {
		return "", ""
	}
	i = 0
	for i < len(path) && path[i] != '/' {
		i++
	}
	elem = path[:i]
	for i < len(path) && path[i] == '/' {
		i++
	}
	rest = path[i:]
	if len(elem) > DIRSIZ {
		elem = elem[:DIRSIZ]
	}
	return elem, rest
}
