// Copyright 2025 The GoUnix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import (
	"bytes"
	"regexp"
	"strings"
	"testing"
)

func TestKlogRing(t *testing.T) {
	var k klogBuf
	line := []byte("0123456789abcdef")
	for i := 0; i < 3*KLOGSIZ/len(line); i++ {
		k.Write(line)
	}
	b := k.bytes()
	if len(b) >= KLOGSIZ {
		t.Fatalf("ring holds %d bytes, cap %d", len(b), KLOGSIZ)
	}
	if !bytes.HasSuffix(b, line) {
		t.Fatalf("ring lost the most recent write: ...%q", b[len(b)-32:])
	}
}

var klogLine = regexp.MustCompile(`^\[ *\d+\.\d{6}\] `)

func TestKlogf(t *testing.T) {
	sys, err := NewSystem(FS)
	if err != nil {
		t.Fatal(err)
	}
	sys.Klogf("test %d %s", 7, "ok")

	log := string(sys.Klog())
	if !strings.Contains(log, OSType+" "+OSRelease+" "+OSVersion+" booting") {
		t.Errorf("log missing boot banner:\n%s", log)
	}
	lines := strings.Split(strings.TrimRight(log, "\n"), "\n")
	for _, line := range lines {
		if !klogLine.MatchString(line) {
			t.Errorf("line missing timestamp: %q", line)
		}
	}
	if want := "test 7 ok"; !strings.Contains(log, want) {
		t.Errorf("log missing %q:\n%s", want, log)
	}
}
