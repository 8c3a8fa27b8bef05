// Copyright 2025 The GoUnix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

func (p *Proc) readi(ip *inode, b []byte, off int) int {
	ip.Atime = now()
	if ip.Major != 0 {
		return p.dev(ip.Major).read(p, ip.Minor, b, off)
	}
	if off < 0 || off >= len(ip.data) {
		return 0
	}
	return copy(b, ip.data[off:])
}

func (p *Proc) writei(ip *inode, b []byte, off int) int {
	const maxFileSize = 1<<24 - 1

	ip.Atime = now()
	ip.Mtime = ip.Atime
	if ip.Major != 0 {
		return p.dev(ip.Major).write(p, ip.Minor, b, off)
	}
	if off < 0 || off+len(b) > maxFileSize {
		p.Error = EIO
		return 0
	}
	if len(b) == 0 {
		return 0
	}
	if off+len(b) > len(ip.data) {
		old := len(ip.data)
		new := off + len(b)
		for cap(ip.data) < new {
			ip.data = append(ip.data[:cap(ip.data)], 0)
		}
		clear(ip.data[old:off])
		ip.data = ip.data[:new]
		ip.writeSize()
	}
	ip.Mtime = now()
	return copy(ip.data[off:], b)
}
