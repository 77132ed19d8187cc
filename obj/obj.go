// Copyright 2026 The Shape Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package obj writes meshes in the Wavefront OBJ text format, with
// positions, normals, and texture coordinates per vertex.
package obj

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/go3dkit/shape"
)

// Write writes the mesh to w as a Wavefront OBJ object with the given
// object name. Faces index positions, texture coordinates, and normals
// together, 1-based per the format.
func Write(w io.Writer, name string, md *shape.MeshData) error {
	if err := md.Validate(); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	if name != "" {
		fmt.Fprintf(bw, "o %s\n", name)
	}
	nv := md.NumVertex()
	for i := 0; i < nv; i++ {
		p := md.Pos(i)
		fmt.Fprintf(bw, "v %g %g %g\n", p.X, p.Y, p.Z)
	}
	for i := 0; i < nv; i++ {
		t := md.Tex(i)
		fmt.Fprintf(bw, "vt %g %g\n", t.X, t.Y)
	}
	for i := 0; i < nv; i++ {
		n := md.Norm(i)
		fmt.Fprintf(bw, "vn %g %g %g\n", n.X, n.Y, n.Z)
	}
	idx := md.Index
	for t := 0; t+2 < len(idx); t += 3 {
		a, b, c := idx[t]+1, idx[t+1]+1, idx[t+2]+1
		fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, b, b, b, c, c, c)
	}
	return bw.Flush()
}

// Save writes the mesh to the named file, creating or truncating it.
// The object name in the file is derived from name.
func Save(filename, name string, md *shape.MeshData) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := Write(f, name, md); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
