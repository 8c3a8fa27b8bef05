// Copyright 2025 The GoUnix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import (
	"fmt"
	"time"
)

// The kernel log is a fixed-size ring buffer of diagnostic lines,
// stamped with seconds since boot. New lines overwrite the oldest
// bytes once the buffer fills. The log is readable from user space
// through /dev/kmsg and from the host through (*System).Klog.

type klogBuf struct {
	buf    [KLOGSIZ]byte
	rIndex int
	wIndex int
}

func (k *klogBuf) Write(p []byte) (int, error) {
	for _, c := range p {
		k.buf[k.wIndex] = c
		k.wIndex = (k.wIndex + 1) & (KLOGSIZ - 1)
		if k.rIndex == k.wIndex {
			k.rIndex = (k.rIndex + 1) & (KLOGSIZ - 1)
		}
	}
	return len(p), nil
}

func (k *klogBuf) bytes() []byte {
	if k.rIndex <= k.wIndex {
		return append([]byte(nil), k.buf[k.rIndex:k.wIndex]...)
	}
	b := append([]byte(nil), k.buf[k.rIndex:]...)
	return append(b, k.buf[:k.wIndex]...)
}

// Klogf appends one formatted diagnostic line to the kernel log.
func (sys *System) Klogf(format string, args ...any) {
	fmt.Fprintf(&sys.klog, "[%11.6f] ", time.Since(sys.boot).Seconds())
	fmt.Fprintf(&sys.klog, format, args...)
	sys.klog.Write([]byte{'\n'})
}

// Klog returns a copy of the current kernel log contents.
func (sys *System) Klog() []byte {
	return sys.klog.bytes()
}
