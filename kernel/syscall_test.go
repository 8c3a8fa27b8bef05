// Copyright 2025 The GoUnix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import (
	"bytes"
	"testing"
)

func TestTableLayout(t *testing.T) {
	if len(sysent) != 32 {
		t.Fatalf("len(sysent) = %d, want 32", len(sysent))
	}
	if SYS_HELLO != 28 || NSYSCALL != 29 {
		t.Fatalf("SYS_HELLO = %d, NSYSCALL = %d, want 28, 29", SYS_HELLO, NSYSCALL)
	}
	names := make(map[string]int)
	for i := 0; i < NSYSCALL; i++ {
		e := &sysent[i]
		if e.impl == nil {
			t.Errorf("sysent[%d] (%s) has no handler", i, e.name)
		}
		if e.name == "" {
			t.Errorf("sysent[%d] has no name", i)
		}
		if j, ok := names[e.name]; ok {
			t.Errorf("sysent[%d] and sysent[%d] share name %q", j, i, e.name)
		}
		names[e.name] = i
	}
	if sysent[SYS_HELLO].name != "hello" {
		t.Errorf("sysent[%d].name = %q, want %q", SYS_HELLO, sysent[SYS_HELLO].name, "hello")
	}
}

func TestHello(t *testing.T) {
	sys, err := NewSystem(FS)
	if err != nil {
		t.Fatal(err)
	}
	p := testProc(t, sys)

	msg := []byte(HelloMsg)
	before := bytes.Count(sys.Klog(), msg)
	if before != 0 {
		t.Fatalf("kernel log already contains %q at boot", HelloMsg)
	}

	for i := 1; i <= 3; i++ {
		r, errno := p.Hello()
		if r != 0 || errno != 0 {
			t.Fatalf("hello call %d: r=%d errno=%v, want 0, 0", i, r, errno)
		}
		if n := bytes.Count(sys.Klog(), msg); n != i {
			t.Fatalf("after %d calls, log has %d hello lines", i, n)
		}
	}
}

func TestHelloRawNumber(t *testing.T) {
	sys, err := NewSystem(FS)
	if err != nil {
		t.Fatal(err)
	}
	p := testProc(t, sys)

	if r := p.Syscall(28); r != 0 || p.Error != 0 {
		t.Fatalf("Syscall(28) = %d, %v, want 0, 0", r, p.Error)
	}
	if !bytes.Contains(sys.Klog(), []byte(HelloMsg)) {
		t.Fatalf("kernel log missing %q", HelloMsg)
	}
}

func TestUnassignedNumbers(t *testing.T) {
	sys, err := NewSystem(FS)
	if err != nil {
		t.Fatal(err)
	}
	p := testProc(t, sys)

	before := sys.Klog()
	for _, num := range []int{NSYSCALL, 30, 31, 32, 63, 1000, -1} {
		r := p.Syscall(num)
		if r != -1 || p.Error != ENOSYS {
			t.Errorf("Syscall(%d) = %d, %v, want -1, ENOSYS", num, r, p.Error)
		}
	}
	if !bytes.Equal(sys.Klog(), before) {
		t.Errorf("unassigned system calls changed the kernel log")
	}
}

func TestGetpid(t *testing.T) {
	sys, err := NewSystem(FS)
	if err != nil {
		t.Fatal(err)
	}
	p := testProc(t, sys)
	if pid := p.Getpid(); pid != 1 {
		t.Errorf("Getpid = %d, want 1", pid)
	}
}
