// Copyright 2025 The GoUnix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

// HelloMsg is the diagnostic line the hello system call writes to the
// kernel log on every invocation. The exact text is part of the call's
// observable contract: operators confirm the call ran by finding this
// line in dmesg output.
const HelloMsg = "hello: hello, world!"

/*
 * the hello system call, number 28: the first slot that was
 * unassigned when it shipped. Takes no arguments, logs one fixed
 * line, and returns 0. It touches no other state, so it is safe to
 * invoke any number of times from any number of processes.
 */
func syshello(p *Proc) {
	p.Sys.Klogf("%s", HelloMsg)
	p.R0 = 0
}
