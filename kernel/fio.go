// Copyright 2025 The GoUnix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

/*
 * Convert a user supplied
 * file descriptor into a pointer
 * to a file structure.
 * Only task is to check range
 * of the descriptor.
 */
func (p *Proc) getf(fd int) *File {
	if fd < 0 || fd >= len(p.Files) || p.Files[fd] == nil {
		p.Error = EBADF
		return nil
	}
	return p.Files[fd]
}

/*
 * Internal form of close.
 * Decrement reference count on
 * file structure and call closei
 * on last closef.
 */
func (p *Proc) closef(f *File) {
	if f.flag&_FPIPE != 0 {
		p.closep(f)
	}
	if f.count <= 1 {
		p.closei(f.inode, f.flag&_FWRITE)
	}
	f.count--
}

/*
 * Decrement reference count on an
 * inode due to the removal of a
 * referencing file structure.
 * On the last closei, switchout
 * to the close entry point of special
 * device handler.
 * Note that the handler gets called
 * on every open and only on the last
 * close.
 */
func (p *Proc) closei(ip *inode, rw int) {
	if ip == nil {
		return
	}
	if ip.count <= 1 {
		if ip.Major != 0 {
			p.dev(ip.Major).close(p, ip.Minor)
		}
	}
	p.iput(ip)
}

/*
 * openi called to allow handler
 * of special files to initialize and
 * validate before actual IO.
 * Called on all sorts of opens
 * and also on mount.
 */
func (p *Proc) openi(ip *inode, rw int) {
	if ip.Major != 0 {
		p.dev(ip.Major).open(p, ip.Minor, rw)
	}
}

/*
 * Check mode permission on inode pointer.
 * Mode is READ, WRITE or EXEC.
 * The mode is shifted to select
 * the owner/group/other fields.
 * The super user is granted all
 * permissions except for EXEC where
 * at least one of the EXEC bits must
 * be on.
 */
func (p *Proc) access(ip *inode, mode uint16) bool {
	if p.Uid == 0 {
		if mode == IEXEC && ip.Mode&0o111 == 0 {
			p.Error = EACCES
			return false
		}
		return true
	}
	if p.Uid != ip.Uid {
		mode >>= 3
		if p.Gid != ip.Gid {
			mode >>= 3
		}
	}
	if ip.Mode&mode == 0 {
		p.Error = EACCES
		return false
	}
	return true
}

/*
 * Look up a pathname and test if
 * the resultant inode is owned by the
 * current user.
 * If not, try for super-user.
 * If permission is granted,
 * return inode pointer.
 */
func (p *Proc) owner(name string) *inode {
	ip, _, _ := p.namei(name, nameFind)
	if ip == nil {
		return nil
	}
	if p.Uid != ip.Uid && !p.suser() {
		p.iput(ip)
		return nil
	}
	return ip
}

/*
 * Test if the current user is the
 * super user.
 */
func (p *Proc) suser() bool {
	if p.Uid == 0 {
		return true
	}
	p.Error = EPERM
	return false
}

/*
 * Allocate a user file descriptor.
 */
func (p *Proc) ufalloc() int {
	for i, f := range p.Files {
		if f == nil {
			p.R0 = i
			return i
		}
	}
	p.Error = EMFILE
	return -1
}

/*
 * Allocate a user file descriptor
 * and a file structure.
 * Initialize the descriptor
 * to point at the file structure.
 */
func (p *Proc) falloc() *File {
	i := p.ufalloc()
	if i < 0 {
		return nil
	}
	f := new(File)
	f.count = 1
	p.Files[i] = f
	return f
}
