// Copyright 2025 The GoUnix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import "path"

/*
 * read system call
 */
func sysread(p *Proc) {
	p.rdwr(_FREAD)
}

/*
 * write system call
 */
func syswrite(p *Proc) {
	p.rdwr(_FWRITE)
}

/*
 * common code for read and write calls:
 * check permissions, set base, count, and offset,
 * and switch out to readi, writei, or pipe code.
 */
func (p *Proc) rdwr(mode int) {
	f := p.getf(p.Args[0])
	if f == nil {
		return
	}
	if f.flag&mode == 0 {
		p.Error = EBADF
		return
	}
	b := p.Buf
	var n int
	if f.flag&_FPIPE != 0 {
		if mode == _FREAD {
			n = p.readp(f, b)
		} else {
			n = p.writep(f, b)
		}
	} else {
		off := f.offset
		if mode == _FREAD {
			n = p.readi(f.inode, b, off)
		} else {
			n = p.writei(f.inode, b, off)
		}
		f.offset += n
	}
	p.R0 = n
}

/*
 * open system call
 */
func sysopen(p *Proc) {
	p.open(p.SArg[0], p.Args[0])
}

func (p *Proc) open(name string, omode int) {
	ip, _, _ := p.namei(name, nameFind)
	if ip == nil {
		return
	}
	p.open1(ip, omode+1, 0)
}

/*
 * create system call
 */
func syscreat(p *Proc) {
	name := p.SArg[0]
	ip, dp, off := p.namei(name, nameCreate)
	defer p.iput(dp)
	if ip != nil {
		p.open1(ip, _FWRITE, 1)
		return
	}
	if p.Error != 0 {
		return
	}
	ip = p.maknode(path.Base(name), uint16(p.Args[0]&0o7777)&^ISVTX, dp, off)
	if ip == nil {
		return
	}
	p.open1(ip, _FWRITE, 2)
}

/*
 * common code for open and creat.
 * Check permissions, allocate an open file structure,
 * and call the device open routine if any.
 */
func (p *Proc) open1(ip *inode, mode, trf int) {
	if trf != 2 {
		if mode&_FREAD != 0 {
			p.access(ip, IREAD)
		}
		if mode&_FWRITE != 0 {
			p.access(ip, IWRITE)
			if ip.Mode&IFMT == IFDIR {
				p.Error = EISDIR
			}
		}
	}
	if p.Error != 0 {
		p.iput(ip)
		return
	}
	if trf != 0 {
		p.itrunc(ip)
	}

	f := p.falloc()
	if f == nil {
		p.iput(ip)
		return
	}
	f.flag = mode & (_FREAD | _FWRITE)
	f.inode = ip
	fd := p.R0
	p.openi(ip, mode&_FWRITE)
	if p.Error == 0 {
		return
	}
	p.Files[fd] = nil
	p.iput(ip)
}

/*
 * close system call
 */
func sysclose(p *Proc) {
	f := p.getf(p.Args[0])
	if f == nil {
		return
	}
	p.Files[p.Args[0]] = nil
	p.closef(f)
}

/*
 * seek system call.
 * Whence 0 seeks from the start of the file,
 * 1 from the current offset, 2 from the end.
 * The new offset comes back in R0.
 */
func sysseek(p *Proc) {
	f := p.getf(p.Args[0])
	if f == nil {
		return
	}
	if f.flag&_FPIPE != 0 {
		p.Error = ESPIPE
		return
	}
	off := p.Args[1]
	switch p.Args[2] {
	case 0:
		// nothing
	case 1:
		off += f.offset
	case 2:
		off += f.inode.Size
	default:
		p.Error = EINVAL
		return
	}
	f.offset = off
	p.R0 = off
}

/*
 * link system call
 */
func syslink(p *Proc) {
	ip, _, _ := p.namei(p.SArg[0], nameFind)
	if ip == nil {
		return
	}
	defer p.iput(ip)

	if ip.Nlink >= 127 {
		p.Error = EMLINK
		return
	}
	if ip.Mode&IFMT == IFDIR && !p.suser() {
		return
	}

	name := p.SArg[1]
	xp, dp, off := p.namei(name, nameCreate)
	defer p.iput(dp)
	if xp != nil {
		p.Error = EEXIST
		p.iput(xp)
		return
	}
	if p.Error != 0 {
		return
	}
	p.wdir(ip, path.Base(name), dp, off)
	ip.Nlink++
	ip.Mtime = now()
}

/*
 * Unlink system call.
 */
func sysunlink(p *Proc) {
	p.unlink(p.SArg[0])
}

func (p *Proc) unlink(name string) {
	ip, dp, off := p.namei(name, nameDelete)
	if ip == nil {
		return
	}
	defer p.iput(ip)
	defer p.iput(dp)

	if ip.Mode&IFMT == IFDIR && !p.suser() {
		return
	}

	clear(dp.data[off : off+int(direntSize)])
	ip.Nlink--
	ip.Mtime = now()
}

func syschdir(p *Proc) {
	ip, _, _ := p.namei(p.SArg[0], nameFind)
	if ip == nil {
		return
	}
	if ip.Mode&IFMT != IFDIR {
		p.Error = ENOTDIR
		p.iput(ip)
		return
	}
	if !p.access(ip, IEXEC) {
		p.iput(ip)
		return
	}
	p.iput(p.Dir)
	p.Dir = ip
}

func syschmod(p *Proc) {
	ip := p.owner(p.SArg[0])
	if ip == nil {
		return
	}
	ip.Mode &^= 0o7777
	if p.Uid != 0 {
		p.Args[0] &= ^int(ISVTX)
	}
	ip.Mode |= uint16(p.Args[0]) & 0o7777
	ip.Mtime = now()
	p.iput(ip)
}

/*
 * mknod system call.
 * The device argument packs major<<8 | minor.
 */
func sysmknod(p *Proc) {
	if !p.suser() {
		return
	}

	name := p.SArg[0]
	ip, dp, off := p.namei(name, nameCreate)
	defer p.iput(dp)
	if ip != nil {
		p.Error = EEXIST
		p.iput(ip)
		return
	}
	if p.Error != 0 {
		return
	}

	ip = p.maknode(path.Base(name), uint16(p.Args[0]), dp, off)
	if ip == nil {
		return
	}
	ip.Major = uint8(p.Args[1] >> 8)
	ip.Minor = uint8(p.Args[1])
	p.iput(ip)
}

/*
 * the stat system call.
 */
func sysstat(p *Proc) {
	st, ok := p.Ptr.(*Stat)
	if !ok {
		p.Error = EFAULT
		return
	}
	ip, _, _ := p.namei(p.SArg[0], nameFind)
	if ip == nil {
		return
	}
	*st = ip.Stat
	p.iput(ip)
}

/*
 * the fstat system call.
 */
func sysfstat(p *Proc) {
	st, ok := p.Ptr.(*Stat)
	if !ok {
		p.Error = EFAULT
		return
	}
	f := p.getf(p.Args[0])
	if f == nil {
		return
	}
	*st = f.inode.Stat
}

/*
 * the dup system call.
 */
func sysdup(p *Proc) {
	f := p.getf(p.Args[0])
	if f == nil {
		return
	}
	i := p.ufalloc()
	if i < 0 {
		return
	}
	p.Files[i] = f
	f.count++
}
