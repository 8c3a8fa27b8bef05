// Copyright 2025 The GoUnix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package userland

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PriyanshuKSharma/linux-kernel/kernel"
)

// boot creates a system, types input on the console ahead of the boot
// (so it is not echoed into stdout), starts init, and runs until every
// process is parked.
func boot(t *testing.T, input string) (*kernel.System, *bytes.Buffer) {
	t.Helper()
	sys, err := kernel.NewSystem(kernel.FS)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range []byte(input) {
		sys.Console.WriteByte(c)
	}
	var stdout bytes.Buffer
	if _, err := sys.Start("/etc/init", []string{"/etc/init"}, &stdout); err != nil {
		t.Fatal(err)
	}
	sys.Wait()
	return sys, &stdout
}

// feed types another batch of console input into a running system and
// returns what the batch produced. Typed characters are echoed, so
// they appear in the output too.
func feed(sys *kernel.System, stdout *bytes.Buffer, input string) string {
	stdout.Reset()
	for _, c := range []byte(input) {
		sys.Console.WriteByte(c)
	}
	sys.Wait()
	return stdout.String()
}

func TestBootToShell(t *testing.T) {
	sys, stdout := boot(t, "")

	out := stdout.String()
	if !strings.Contains(out, "Welcome to gounix.") {
		t.Errorf("boot output missing motd:\n%q", out)
	}
	if !strings.HasSuffix(out, "# ") {
		t.Errorf("boot output does not end at a shell prompt:\n%q", out)
	}
	if !sys.ConsoleRead() {
		t.Errorf("no process is reading the console after boot")
	}

	log := string(sys.Klog())
	i1 := strings.Index(log, "mount: proc mounted on /proc")
	i2 := strings.Index(log, "mount: sysfs mounted on /sys")
	i3 := strings.Index(log, "mount: devtmpfs mounted on /dev")
	if i1 < 0 || i2 < 0 || i3 < 0 {
		t.Fatalf("kernel log missing mount lines:\n%s", log)
	}
	if !(i1 < i2 && i2 < i3) {
		t.Errorf("mounts out of order in kernel log:\n%s", log)
	}
}

func TestHelloCommand(t *testing.T) {
	sys, stdout := boot(t, "hello\n")

	out := stdout.String()
	if !strings.Contains(out, "hello: syscall 28 returned 0\n") {
		t.Errorf("hello output missing:\n%q", out)
	}
	if n := bytes.Count(sys.Klog(), []byte(kernel.HelloMsg)); n != 1 {
		t.Errorf("kernel log has %d hello lines, want 1", n)
	}

	// every invocation appends one more line
	feed(sys, stdout, "hello\n")
	feed(sys, stdout, "hello\n")
	if n := bytes.Count(sys.Klog(), []byte(kernel.HelloMsg)); n != 3 {
		t.Errorf("kernel log has %d hello lines, want 3", n)
	}
}

func TestUnassignedSyscall(t *testing.T) {
	sys, stdout := boot(t, "syscall 29 31\n")

	out := stdout.String()
	if !strings.Contains(out, "syscall 29: ENOSYS") || !strings.Contains(out, "syscall 31: ENOSYS") {
		t.Errorf("unassigned syscalls did not report ENOSYS:\n%q", out)
	}
	if bytes.Contains(sys.Klog(), []byte(kernel.HelloMsg)) {
		t.Errorf("unassigned syscall wrote to the kernel log")
	}
}

func TestPipeline(t *testing.T) {
	_, stdout := boot(t, "echo hello world | cat\n")
	if !strings.Contains(stdout.String(), "hello world\n") {
		t.Errorf("pipeline output:\n%q", stdout.String())
	}
}

func TestPs(t *testing.T) {
	_, stdout := boot(t, "ps\n")
	out := stdout.String()
	if !strings.Contains(out, "PID") || !strings.Contains(out, "S /bin/sh") {
		t.Errorf("ps output:\n%q", out)
	}
	if !strings.Contains(out, "R /bin/ps") {
		t.Errorf("ps does not show itself running:\n%q", out)
	}
}

func TestUname(t *testing.T) {
	_, stdout := boot(t, "uname -a\n")
	want := "gounix gounix 1.0.0 #1\n"
	if !strings.Contains(stdout.String(), want) {
		t.Errorf("uname -a output %q missing %q", stdout.String(), want)
	}
}

func TestLsProc(t *testing.T) {
	_, stdout := boot(t, "ls /proc\n")
	out := stdout.String()
	for _, want := range []string{"1\n", "mounts\n", "uptime\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("ls /proc output missing %q:\n%q", want, out)
		}
	}
}

func TestDmesg(t *testing.T) {
	_, stdout := boot(t, "dmesg\n")
	out := stdout.String()
	if !strings.Contains(out, "booting") {
		t.Errorf("dmesg missing boot banner:\n%q", out)
	}
	if !strings.Contains(out, "mount: proc mounted on /proc") {
		t.Errorf("dmesg missing mount line:\n%q", out)
	}
}

func TestCatMotd(t *testing.T) {
	_, stdout := boot(t, "cat /etc/motd\n")
	if !strings.Contains(stdout.String(), "Welcome to gounix.") {
		t.Errorf("cat /etc/motd output:\n%q", stdout.String())
	}
}

func TestMountCommand(t *testing.T) {
	_, stdout := boot(t, "mount\n")
	out := stdout.String()
	for _, want := range []string{"proc /proc", "sysfs /sys", "devtmpfs /dev"} {
		if !strings.Contains(out, want) {
			t.Errorf("mount output missing %q:\n%q", want, out)
		}
	}
}

func TestShellExit(t *testing.T) {
	sys, _ := boot(t, "exit\n")
	if !bytes.Contains(sys.Klog(), []byte("kernel panic: attempted to kill init")) {
		t.Errorf("kernel log missing init death line:\n%s", sys.Klog())
	}
}

func TestConsoleEOF(t *testing.T) {
	sys, _ := boot(t, "")
	sys.ConsoleEOF()
	sys.Wait()
	if !bytes.Contains(sys.Klog(), []byte("kernel panic: attempted to kill init")) {
		t.Errorf("shell did not exit on console EOF:\n%s", sys.Klog())
	}
}

func TestUnknownCommand(t *testing.T) {
	_, stdout := boot(t, "bogus\n")
	if !strings.Contains(stdout.String(), "sh: bogus:") {
		t.Errorf("unknown command output:\n%q", stdout.String())
	}
}

func TestCdBuiltin(t *testing.T) {
	_, stdout := boot(t, "cd /etc\ncat motd\n")
	if !strings.Contains(stdout.String(), "Welcome to gounix.") {
		t.Errorf("cd+cat output:\n%q", stdout.String())
	}
}
