// Copyright 2025 The GoUnix Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Mkfs converts between a host directory tree and the txtar root file
// system format used by the kernel package.
//
// Usage:
//
//	mkfs [-o out.txtar] [-x] dir
//
// The -o flag specifies the name of the output file to write (default standard output).
//
// The -x flag inverts the operation: dir is now a txtar file, and -o is
// the name of a directory to write the files into (default _fs).
package main

import (
	"bytes"
	"encoding/base64"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/tools/txtar"
)

var (
	outfile = flag.String("o", "", "write output txtar to `file` (default standard output)")
	xflag   = flag.Bool("x", false, "extract txtar file system")
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: mkfs [-o out.txtar] [-x] dir\n")
	os.Exit(2)
}

func main() {
	log.SetPrefix("mkfs: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()
	args := flag.Args()
	if len(args) != 1 {
		usage()
	}

	if *xflag {
		extract(args[0])
		return
	}
	pack(args[0])
}

func pack(root string) {
	w := os.Stdout
	if *outfile != "" {
		f, err := os.Create(*outfile)
		if err != nil {
			log.Fatal(err)
		}
		w = f
	}

	err := filepath.WalkDir(root, func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, name)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)
		info, err := d.Info()
		if err != nil {
			return err
		}
		mode := uint32(info.Mode().Perm())
		if d.IsDir() {
			fmt.Fprintf(w, "-- %s mode=%#o --\n", rel, 0o40000|mode)
			return nil
		}
		data, err := os.ReadFile(name)
		if err != nil {
			return err
		}
		b64 := ""
		if !utf8.Valid(data) || bytes.HasPrefix(data, []byte("-- ")) ||
			bytes.Contains(data, []byte("\n-- ")) ||
			(len(data) > 0 && !bytes.HasSuffix(data, []byte("\n"))) {
			b64 = " base64=1"
			data = []byte(wrap(base64.StdEncoding.EncodeToString(data)))
		}
		fmt.Fprintf(w, "-- %s mode=%#o%s --\n%s", rel, mode, b64, data)
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}
}

func extract(name string) {
	if *outfile == "" {
		*outfile = "_fs"
	}
	data, err := os.ReadFile(name)
	if err != nil {
		log.Fatal(err)
	}
	ar := txtar.Parse(data)
	for _, f := range ar.Files {
		fname, _, _ := strings.Cut(f.Name, " ")
		targ := path.Join(*outfile, fname)
		if strings.Contains(f.Name, "mode=040") || strings.Contains(f.Name, "mode=0o40") {
			if err := os.MkdirAll(targ, 0o777); err != nil {
				log.Fatal(err)
			}
			continue
		}
		fdata := f.Data
		if strings.Contains(f.Name, "base64=1") {
			dec, err := base64.StdEncoding.DecodeString(string(fdata))
			if err != nil {
				log.Fatalf("decoding %s: %v", fname, err)
			}
			fdata = dec
		}
		if err := os.MkdirAll(path.Dir(targ), 0o777); err != nil {
			log.Fatal(err)
		}
		if err := os.WriteFile(targ, fdata, 0o666); err != nil {
			log.Fatal(err)
		}
	}
}

func wrap(text string) string {
	if len(text) < 70 {
		return text + "\n"
	}
	return text[:70] + "\n" + wrap(text[70:])
}
