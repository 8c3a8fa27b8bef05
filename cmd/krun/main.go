// Copyright 2025 The GoUnix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Krun boots the simulated system and connects its console to the
// current terminal. Type control-\ to exit.
package main

import (
	"flag"
	"io"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"golang.org/x/term"

	"github.com/PriyanshuKSharma/linux-kernel/kernel"
	_ "github.com/PriyanshuKSharma/linux-kernel/userland"
)

var (
	trace      = flag.Bool("trace", false, "trace every system call")
	cpuprofile = flag.String("cpuprofile", "", "write cpuprofile to `file`")
)

func main() {
	log.SetPrefix("krun: ")
	log.SetFlags(0)
	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal(err)
		}
		defer pprof.StopCPUProfile()
	}

	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		log.Fatal(err)
	}
	fixup := func() { term.Restore(int(os.Stdin.Fd()), oldState) }
	defer fixup()

	sys, err := kernel.NewSystem(kernel.FS)
	if err != nil {
		log.Fatal(err)
	}
	sys.Trace = *trace

	_, err = sys.Start("/etc/init", []string{"/etc/init"}, os.Stdout)
	if err != nil {
		log.Fatal(err)
	}

	input := make(chan byte, 1000)
	go func() {
		buf := make([]byte, 100)
		defer close(input)
		for {
			n, err := os.Stdin.Read(buf)
			for _, c := range buf[:n] {
				if c == 0x1c {
					pprof.StopCPUProfile()
					fixup()
					os.Exit(0)
				}
				input <- c
			}
			if err == io.EOF {
				input <- 0
				return
			} else if err != nil {
				log.Fatalf("reading stdin: %v", err)
			}
		}
	}()

	for {
		sys.Wait()
		var c1 chan byte
		if sys.ConsoleRead() {
			c1 = input
		}
		var c2 <-chan time.Time
		if !sys.Timer.IsZero() {
			c2 = time.After(time.Until(sys.Timer))
		}
		if c1 == nil && c2 == nil {
			break
		}

		select {
		case b := <-c1:
			if b == 0 {
				sys.ConsoleEOF()
			} else {
				sys.Console.WriteByte(b)
			}
		Loop:
			for {
				select {
				default:
					break Loop
				case b := <-c1:
					if b == 0 {
						sys.ConsoleEOF()
					} else {
						sys.Console.WriteByte(b)
					}
				}
			}
		case <-c2:
			// timer went off; sys.Wait will notice
		}
	}
}
