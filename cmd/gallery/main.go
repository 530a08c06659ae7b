// Copyright (C) 2019 rameshvk. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Command gallery renders a static HTML preview of the widgets.
//
// Usage:
//
//	gallery [-config gallery.yaml] [-out preview.html]
//
// The widgets are built with the in-memory html driver, so the
// preview shows the markup and inline styles the widgets produce but
// none of the interaction.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("gallery: ")

	config := flag.String("config", "gallery.yaml", "path to the optional config file")
	out := flag.String("out", "", "output file (default stdout)")
	flag.Parse()

	if err := run(*config, *out, os.Stdout, time.Now()); err != nil {
		log.Fatal(err)
	}
}

func run(configPath, outPath string, stdout io.Writer, now time.Time) error {
	cfg, err := LoadOptional(configPath)
	if err != nil {
		return err
	}

	resolved, err := Resolve(cfg, now)
	if err != nil {
		return err
	}

	page := Render(resolved)
	if outPath == "" {
		_, err = fmt.Fprintln(stdout, page)
		return err
	}

	if err := os.WriteFile(outPath, []byte(page+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	log.Printf("wrote %s", outPath)
	return nil
}
