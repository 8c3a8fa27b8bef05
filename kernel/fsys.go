// Copyright 2025 The GoUnix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import (
	"encoding/base64"
	"fmt"
	"path"
	"strconv"
	"strings"

	"golang.org/x/tools/txtar"
)

const maxInodes = 1 << 15

// Disk is the in-memory file system: a flat inode table with the root
// directory at ROOTINO. There is no on-disk form; the initial contents
// come from a txtar archive.
type Disk struct {
	inodes []*inode
}

func (p *Proc) ialloc() *inode {
	d := p.Sys.Disk
	for {
		for i, ip := range d.inodes {
			if i > 0 && ip == nil {
				ip := new(inode)
				ip.Ino = uint16(i)
				ip.count = 1
				p.Sys.Disk.inodes[i] = ip
				return ip
			}
		}
		if len(d.inodes) >= maxInodes {
			p.Error = ENOSPC
			return nil
		}
		d.inodes = append(d.inodes, nil)
	}
}

// newDisk builds the file system from a txtar archive. Each file name
// is a path optionally followed by key=value attributes (mode, uid,
// gid, major, minor, atime, mtime, link). Directories must appear
// before their contents; an entry with a directory mode and no data
// creates the directory.
func newDisk(archive []byte) (*Disk, error) {
	d := new(Disk)
	d.inodes = []*inode{nil, {Stat: Stat{Ino: 1, Nlink: 1, Mode: IALLOC | IFDIR | 0o555}}}

	var p Proc // super-user identity during construction
	p.Sys = &System{Disk: d}
	root := d.inodes[1]
	p.Dir = root
	p.wdir(root, ".", root, 0)
	p.wdir(root, "..", root, int(direntSize))

	ar := txtar.Parse(archive)
	for _, file := range ar.Files {
		f := strings.Fields(file.Name)
		var st Stat
		name := f[0]
		link := ""
		b64 := false
		for _, arg := range f[1:] {
			k, v, ok := strings.Cut(arg, "=")
			if !ok {
				return nil, fmt.Errorf("invalid txtar k=v: %s", arg)
			}
			if k == "link" {
				link = v
				continue
			}
			i, err := strconv.ParseInt(v, 0, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid txtar k=v: %s", arg)
			}
			switch k {
			default:
				return nil, fmt.Errorf("invalid txtar k=v: %s", arg)
			case "mode":
				st.Mode = uint16(i)
			case "uid":
				st.Uid = int8(i)
			case "gid":
				st.Gid = int8(i)
			case "major":
				st.Major = uint8(i)
			case "minor":
				st.Minor = uint8(i)
			case "atime":
				st.Atime = i
			case "mtime":
				st.Mtime = i
			case "base64":
				b64 = i != 0
			}
		}

		ip, dp, off := p.namei(name, nameCreate)
		if ip == nil && dp == nil {
			return nil, fmt.Errorf("%v: %v", name, p.Error)
		}
		if link != "" {
			lp, _, _ := p.namei(link, nameFind)
			if lp == nil {
				p.iput(ip)
				p.iput(dp)
				return nil, fmt.Errorf("%v: %v", link, p.Error)
			}
			p.wdir(lp, path.Base(name), dp, off)
			lp.Nlink++
			p.iput(lp)
		} else {
			if ip == nil {
				ip = p.maknode(path.Base(name), st.Mode, dp, off)
				if ip == nil {
					p.iput(dp)
					return nil, fmt.Errorf("%v: %v", name, p.Error)
				}
				if ip.Mode&IFMT == IFDIR {
					ip.data = make([]byte, 2*direntSize)
					p.wdir(ip, ".", ip, 0)
					p.wdir(dp, "..", ip, int(direntSize))
				}
			}
			st.Dev = ip.Dev
			st.Ino = ip.Ino
			st.Nlink = ip.Nlink
			ip.Stat = st
			ip.Mode |= IALLOC
			if ip.Mode&IFMT == 0 {
				if b64 {
					dec, err := base64.StdEncoding.DecodeString(string(file.Data))
					if err != nil {
						return nil, fmt.Errorf("%s: decoding: %v", name, err)
					}
					ip.data = dec
				} else {
					ip.data = file.Data
				}
			}
			ip.writeSize()
		}
		p.iput(ip)
		p.iput(dp)

		if p.Error != 0 {
			return nil, fmt.Errorf("%v: %v", name, p.Error)
		}
	}

	return d, nil
}
