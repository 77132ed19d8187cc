// Copyright 2026 The Shape Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// shapegen is a CLI utility that generates mesh files from YAML job
// descriptions.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go3dkit/shape/internal/job"
	"github.com/go3dkit/shape/internal/logger"
	"github.com/go3dkit/shape/obj"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "generate", "gen":
		cmdGenerate(args)
	case "info":
		cmdInfo(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`shapegen - parametric mesh generator

Usage:
  shapegen <command> [options]

Commands:
  generate <jobs.yaml> [-o dir]  Generate OBJ files for every shape in the job file
  info <jobs.yaml>               Show vertex and triangle counts without writing files

Examples:
  shapegen generate examples/gallery.yaml -o ./out
  shapegen info examples/gallery.yaml`)
}

func cmdGenerate(args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	outDir := fs.String("o", "", "Output directory (overrides the job file)")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: shapegen generate <jobs.yaml> [-o dir]")
		os.Exit(1)
	}

	jf, err := job.Load(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(jf.Logging.Level, jf.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Log.Sync()

	dir := jf.OutputDir
	if *outDir != "" {
		dir = *outDir
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		logger.Sugar.Fatalw("creating output directory", "dir", dir, "err", err)
	}

	failed := 0
	for _, sp := range jf.Shapes {
		if err := generateOne(&sp, dir); err != nil {
			logger.Sugar.Errorw("generate failed", "shape", sp.Name, "err", err)
			failed++
		}
	}
	if failed > 0 {
		logger.Sugar.Errorw("some shapes failed", "failed", failed, "total", len(jf.Shapes))
		os.Exit(1)
	}
	logger.Sugar.Infow("done", "shapes", len(jf.Shapes), "dir", dir)
}

func generateOne(sp *job.Spec, dir string) error {
	sh, err := sp.Build()
	if err != nil {
		return err
	}
	md, err := sh.Mesh()
	if err != nil {
		return err
	}
	path := filepath.Join(dir, sp.Name+".obj")
	if err := obj.Save(path, sp.Name, md); err != nil {
		return err
	}
	logger.Sugar.Infow("generated", "shape", sp.Name, "kind", sp.Kind,
		"vertices", md.NumVertex(), "triangles", md.NumTris(), "file", path)
	return nil
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: shapegen info <jobs.yaml>")
		os.Exit(1)
	}

	jf, err := job.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Job file: %s\n", args[0])
	fmt.Printf("Shapes:   %d\n\n", len(jf.Shapes))
	fmt.Printf("  %-20s %-10s %10s %10s\n", "NAME", "KIND", "VERTICES", "TRIANGLES")

	exitCode := 0
	for _, sp := range jf.Shapes {
		sh, err := sp.Build()
		if err != nil {
			fmt.Printf("  %-20s %-10s  error: %v\n", sp.Name, sp.Kind, err)
			exitCode = 1
			continue
		}
		md, err := sh.Mesh()
		if err != nil {
			fmt.Printf("  %-20s %-10s  error: %v\n", sp.Name, sp.Kind, err)
			exitCode = 1
			continue
		}
		fmt.Printf("  %-20s %-10s %10d %10d\n", sp.Name, sp.Kind, md.NumVertex(), md.NumTris())
	}
	os.Exit(exitCode)
}
