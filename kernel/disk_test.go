// Copyright 2025 The GoUnix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import (
	"strings"
	"testing"
)

var disktab = []struct {
	ino  uint16
	mode uint16
	name string
}{
	{1, IFDIR | 0o555, "/"},
	{1, IFDIR | 0o555, "/."},
	{1, IFDIR | 0o555, "/.."},
	{2, IFDIR | 0o755, "/bin"},
	{2, IFDIR | 0o755, "/bin/."},
	{1, IFDIR | 0o555, "/bin/.."},
	{3, IFDIR | 0o755, "/dev"},
	{4, IFDIR | 0o755, "/etc"},
	{5, IFDIR | 0o555, "/proc"},
	{6, IFDIR | 0o555, "/sys"},
	{7, IFDIR | 0o777, "/tmp"},
	{8, IFDIR | 0o755, "/usr"},
	{9, 0o755, "/bin/cat"},
	{11, 0o755, "/bin/echo"},
	{16, 0o755, "/bin/sh"},
	{20, 0o755, "/etc/init"},
	{21, 0o644, "/etc/motd"},
}

func testProc(t *testing.T, sys *System) *Proc {
	t.Helper()
	p := &Proc{Sys: sys}
	p.Pid = 1
	p.Dir = p.iget(ROOTINO)
	if p.Dir == nil {
		t.Fatal("no root inode")
	}
	return p
}

func TestNewDisk(t *testing.T) {
	d, err := newDisk(FS)
	if err != nil {
		t.Fatal(err)
	}
	sys := &System{Disk: d}
	p := testProc(t, sys)

	for _, tab := range disktab {
		var st Stat
		if err := p.Stat(tab.name, &st); err != 0 {
			t.Errorf("stat %s: %v", tab.name, err)
			continue
		}
		if st.Ino != tab.ino || st.Mode != IALLOC|tab.mode {
			t.Errorf("stat %s: have #%d %06o, want #%d %06o", tab.name, st.Ino, st.Mode, tab.ino, tab.mode|IALLOC)
		}
	}

	// After the lookups, only the test proc's root reference remains.
	for _, tab := range disktab {
		if strings.HasSuffix(tab.name, ".") || int(tab.ino) >= len(d.inodes) {
			continue
		}
		want := 0
		if tab.ino == ROOTINO {
			want = 1
		}
		if ip := d.inodes[tab.ino]; ip.count != want {
			t.Errorf("inode #%d %s count = %d, want %d", tab.ino, tab.name, ip.count, want)
		}
	}
}

func TestReadFile(t *testing.T) {
	sys, err := NewSystem(FS)
	if err != nil {
		t.Fatal(err)
	}
	data, err := sys.ReadFile("/etc/motd")
	if err != nil {
		t.Fatal(err)
	}
	if want := "Welcome to gounix.\n\n"; string(data) != want {
		t.Errorf("ReadFile /etc/motd = %q, want %q", data, want)
	}
	if _, err := sys.ReadFile("/etc/nonesuch"); err == nil {
		t.Errorf("ReadFile /etc/nonesuch succeeded")
	}
}

func TestUnlink(t *testing.T) {
	d, err := newDisk(FS)
	if err != nil {
		t.Fatal(err)
	}
	sys := &System{Disk: d}
	p := testProc(t, sys)

	if err := p.Unlink("/etc/motd"); err != 0 {
		t.Fatalf("unlink: %v", err)
	}
	var st Stat
	if err := p.Stat("/etc/motd", &st); err == 0 {
		t.Fatalf("stat /etc/motd succeeded after unlink")
	}
}

func TestCreatWriteRead(t *testing.T) {
	sys, err := NewSystem(FS)
	if err != nil {
		t.Fatal(err)
	}
	p := testProc(t, sys)

	fd, errno := p.Creat("/tmp/note", 0o644)
	if errno != 0 {
		t.Fatalf("creat: %v", errno)
	}
	if n, errno := p.Write(fd, []byte("first\n")); n != 6 || errno != 0 {
		t.Fatalf("write: n=%d %v", n, errno)
	}
	if errno := p.Close(fd); errno != 0 {
		t.Fatalf("close: %v", errno)
	}

	fd, errno = p.Open("/tmp/note", 0)
	if errno != 0 {
		t.Fatalf("open: %v", errno)
	}
	buf := make([]byte, 100)
	n, errno := p.Read(fd, buf)
	if errno != 0 || string(buf[:n]) != "first\n" {
		t.Fatalf("read: %q %v", buf[:n], errno)
	}

	// seek back and reread the tail
	if off, errno := p.Seek(fd, 2, 0); off != 2 || errno != 0 {
		t.Fatalf("seek: %d %v", off, errno)
	}
	n, errno = p.Read(fd, buf)
	if errno != 0 || string(buf[:n]) != "rst\n" {
		t.Fatalf("read after seek: %q %v", buf[:n], errno)
	}
	p.Close(fd)
}

func TestChdir(t *testing.T) {
	sys, err := NewSystem(FS)
	if err != nil {
		t.Fatal(err)
	}
	p := testProc(t, sys)

	if err := p.Chdir("/etc"); err != 0 {
		t.Fatalf("chdir /etc: %v", err)
	}
	var st Stat
	if err := p.Stat("motd", &st); err != 0 {
		t.Fatalf("stat motd after chdir: %v", err)
	}
	if err := p.Chdir("/etc/motd"); err != ENOTDIR {
		t.Fatalf("chdir /etc/motd = %v, want ENOTDIR", err)
	}
}
