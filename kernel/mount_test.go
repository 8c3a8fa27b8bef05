// Copyright 2025 The GoUnix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import (
	"bytes"
	"strings"
	"testing"
)

// readTestFile pulls a whole file through the open and read calls, so
// device files and pseudo-files work too.
func readTestFile(t *testing.T, p *Proc, name string) string {
	t.Helper()
	fd, errno := p.Open(name, 0)
	if errno != 0 {
		t.Fatalf("open %s: %v", name, errno)
	}
	defer p.Close(fd)
	var data []byte
	buf := make([]byte, 512)
	for {
		n, errno := p.Read(fd, buf)
		if errno != 0 {
			t.Fatalf("read %s: %v", name, errno)
		}
		if n == 0 {
			return string(data)
		}
		data = append(data, buf[:n]...)
	}
}

func TestMountProc(t *testing.T) {
	sys, err := NewSystem(FS)
	if err != nil {
		t.Fatal(err)
	}
	p := testProc(t, sys)
	p.Name = "/bin/test"
	p.status = _SRUN
	sys.Procs = append(sys.Procs, p)

	if errno := p.Mount("proc", "/proc"); errno != 0 {
		t.Fatalf("mount proc: %v", errno)
	}
	if !bytes.Contains(sys.Klog(), []byte("mount: proc mounted on /proc")) {
		t.Errorf("kernel log missing mount line:\n%s", sys.Klog())
	}

	if got := readTestFile(t, p, "/proc/1"); got != "1 0 R /bin/test\n" {
		t.Errorf("/proc/1 = %q, want %q", got, "1 0 R /bin/test\n")
	}
	if got := readTestFile(t, p, "/proc/mounts"); !strings.Contains(got, "proc /proc proc rw") {
		t.Errorf("/proc/mounts = %q", got)
	}
	if got := readTestFile(t, p, "/proc/uptime"); !strings.Contains(got, ".") {
		t.Errorf("/proc/uptime = %q", got)
	}
}

func TestMountSysfs(t *testing.T) {
	sys, err := NewSystem(FS)
	if err != nil {
		t.Fatal(err)
	}
	p := testProc(t, sys)

	if errno := p.Mount("sysfs", "/sys"); errno != 0 {
		t.Fatalf("mount sysfs: %v", errno)
	}
	for name, want := range map[string]string{
		"ostype":    OSType + "\n",
		"osrelease": OSRelease + "\n",
		"version":   OSVersion + "\n",
	} {
		if got := readTestFile(t, p, "/sys/kernel/"+name); got != want {
			t.Errorf("/sys/kernel/%s = %q, want %q", name, got, want)
		}
	}
}

func TestMountDevfs(t *testing.T) {
	sys, err := NewSystem(FS)
	if err != nil {
		t.Fatal(err)
	}
	p := testProc(t, sys)

	if errno := p.Mount("devtmpfs", "/dev"); errno != 0 {
		t.Fatalf("mount devtmpfs: %v", errno)
	}

	var st Stat
	if errno := p.Stat("/dev/null", &st); errno != 0 {
		t.Fatalf("stat /dev/null: %v", errno)
	}
	if st.Mode&IFMT != IFCHR || st.Major != devNull {
		t.Errorf("/dev/null: mode %06o major %d", st.Mode, st.Major)
	}

	fd, errno := p.Open("/dev/null", 1)
	if errno != 0 {
		t.Fatalf("open /dev/null: %v", errno)
	}
	if n, errno := p.Write(fd, []byte("discard")); n != 7 || errno != 0 {
		t.Errorf("write /dev/null: n=%d %v", n, errno)
	}
	p.Close(fd)

	fd, errno = p.Open("/dev/zero", 0)
	if errno != 0 {
		t.Fatalf("open /dev/zero: %v", errno)
	}
	buf := []byte{1, 2, 3, 4}
	if n, errno := p.Read(fd, buf); n != 4 || errno != 0 || !bytes.Equal(buf, []byte{0, 0, 0, 0}) {
		t.Errorf("read /dev/zero: n=%d %v buf=%v", n, errno, buf)
	}
	p.Close(fd)

	if got := readTestFile(t, p, "/dev/kmsg"); !strings.Contains(got, "booting") {
		t.Errorf("/dev/kmsg missing boot banner: %q", got)
	}
}

func TestMountErrors(t *testing.T) {
	sys, err := NewSystem(FS)
	if err != nil {
		t.Fatal(err)
	}
	p := testProc(t, sys)

	if errno := p.Mount("nfs", "/proc"); errno != EINVAL {
		t.Errorf("mount nfs = %v, want EINVAL", errno)
	}
	if errno := p.Mount("proc", "/etc/motd"); errno != ENOTDIR {
		t.Errorf("mount on file = %v, want ENOTDIR", errno)
	}
	if errno := p.Mount("proc", "/nosuch"); errno != ENOENT {
		t.Errorf("mount on missing dir = %v, want ENOENT", errno)
	}
	if errno := p.Mount("proc", "/proc"); errno != 0 {
		t.Fatalf("mount proc: %v", errno)
	}
	if errno := p.Mount("sysfs", "/proc"); errno != EBUSY {
		t.Errorf("second mount on /proc = %v, want EBUSY", errno)
	}
	if errno := p.Umount("/sys"); errno != EINVAL {
		t.Errorf("umount of unmounted dir = %v, want EINVAL", errno)
	}

	p.Uid = 1
	if errno := p.Mount("sysfs", "/sys"); errno != EPERM {
		t.Errorf("mount as non-root = %v, want EPERM", errno)
	}
}

func TestUmount(t *testing.T) {
	sys, err := NewSystem(FS)
	if err != nil {
		t.Fatal(err)
	}
	p := testProc(t, sys)

	if errno := p.Mount("sysfs", "/sys"); errno != 0 {
		t.Fatalf("mount: %v", errno)
	}
	var st Stat
	if errno := p.Stat("/sys/kernel/ostype", &st); errno != 0 {
		t.Fatalf("stat before umount: %v", errno)
	}
	if errno := p.Umount("/sys"); errno != 0 {
		t.Fatalf("umount: %v", errno)
	}
	if errno := p.Stat("/sys/kernel", &st); errno != ENOENT {
		t.Errorf("stat /sys/kernel after umount = %v, want ENOENT", errno)
	}
	if !bytes.Contains(sys.Klog(), []byte("umount: sysfs unmounted from /sys")) {
		t.Errorf("kernel log missing umount line")
	}
}

func TestMountOrderIndependence(t *testing.T) {
	// A failed earlier mount must not block later ones; the boot
	// harness mounts best effort.
	sys, err := NewSystem(FS)
	if err != nil {
		t.Fatal(err)
	}
	p := testProc(t, sys)

	if errno := p.Mount("proc", "/nosuch"); errno == 0 {
		t.Fatal("mount on missing dir succeeded")
	}
	if errno := p.Mount("sysfs", "/sys"); errno != 0 {
		t.Errorf("mount sysfs after failed mount: %v", errno)
	}
}
