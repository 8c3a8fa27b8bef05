// Copyright 2025 The GoUnix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import "unsafe"

type inode struct {
	count int
	Stat
	data []byte
}

// Stat is the file metadata returned by the stat and fstat system calls.
type Stat struct {
	Dev   uint16
	Ino   uint16
	Mode  uint16
	Nlink int8
	Uid   int8
	Gid   int8
	Size  int
	Minor uint8
	Major uint8
	Atime int64
	Mtime int64
}

func (ip *inode) writeSize() {
	ip.Size = len(ip.data)
}

type dirent struct {
	inum uint16
	nam  [DIRSIZ]byte
}

const direntSize = unsafe.Sizeof(dirent{})

func (d *dirent) bytes() []byte {
	return (*[direntSize]byte)(unsafe.Pointer(d))[:]
}

func (d *dirent) name() string {
	b := d.nam[:]
	for i := 0; i < len(b); i++ {
		if b[i] == 0 {
			b = b[:i]
		}
	}
	return string(b)
}

// Dirent is the decoded form of one allocated directory slot.
type Dirent struct {
	Ino  uint16
	Name string
}

// ParseDir decodes raw directory data, as read from a directory file,
// into its allocated entries.
func ParseDir(data []byte) []Dirent {
	var list []Dirent
	for i := 0; i+int(direntSize) <= len(data); i += int(direntSize) {
		d := (*dirent)(unsafe.Pointer(&data[i]))
		if d.inum != 0 {
			list = append(list, Dirent{d.inum, d.name()})
		}
	}
	return list
}

/* modes */
const (
	IALLOC uint16 = 0100000 /* file is used */
	IFMT   uint16 = 060000  /* type of file */
	IFDIR  uint16 = 040000  /* directory */
	IFCHR  uint16 = 020000  /* character special */
	ISUID  uint16 = 04000   /* set user id on execution */
	ISGID  uint16 = 02000   /* set group id on execution */
	ISVTX  uint16 = 01000   /* save swapped text even after use */
	IREAD  uint16 = 0400    /* read, write, execute permissions */
	IWRITE uint16 = 0200
	IEXEC  uint16 = 0100
)

const (
	_FREAD int = 1 << iota
	_FWRITE
	_FPIPE
)
