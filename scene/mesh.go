// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "cogentcore.org/stage/math32"

// Mesh holds indexed triangle geometry with per-vertex normals.
// Triangles are wound counter-clockwise when seen from the front.
type Mesh struct {

	// Name is the name of the mesh.
	Name string

	// Vertices are the vertex positions in local coordinates.
	Vertices []math32.Vector3

	// Normals are the per-vertex normals, parallel to Vertices.
	Normals []math32.Vector3

	// Indices holds three vertex indices per triangle.
	Indices []uint32
}

// NumTriangles returns the number of triangles in the mesh.
func (ms *Mesh) NumTriangles() int {
	return len(ms.Indices) / 3
}

// Triangle returns the vertex indices of triangle i.
func (ms *Mesh) Triangle(i int) (a, b, c uint32) {
	return ms.Indices[i*3], ms.Indices[i*3+1], ms.Indices[i*3+2]
}

// addQuad adds a quad with corners in counter-clockwise order and the given normal.
func (ms *Mesh) addQuad(p0, p1, p2, p3, norm math32.Vector3) {
	base := uint32(len(ms.Vertices))
	ms.Vertices = append(ms.Vertices, p0, p1, p2, p3)
	ms.Normals = append(ms.Normals, norm, norm, norm, norm)
	ms.Indices = append(ms.Indices, base, base+1, base+2, base, base+2, base+3)
}

// NewPlane returns a width x height plane in the XY plane centered at
// the origin, facing +Z.
func NewPlane(name string, width, height float32) *Mesh {
	ms := &Mesh{Name: name}
	hw, hh := width/2, height/2
	ms.addQuad(
		math32.Vec3(-hw, -hh, 0), math32.Vec3(hw, -hh, 0),
		math32.Vec3(hw, hh, 0), math32.Vec3(-hw, hh, 0),
		math32.Vec3(0, 0, 1))
	return ms
}

// NewBox returns a box of the given size centered at the origin.
func NewBox(name string, width, height, depth float32) *Mesh {
	ms := &Mesh{Name: name}
	x, y, z := width/2, height/2, depth/2
	v := func(a, b, c float32) math32.Vector3 { return math32.Vec3(a, b, c) }
	ms.addQuad(v(-x, -y, z), v(x, -y, z), v(x, y, z), v(-x, y, z), v(0, 0, 1))     // front
	ms.addQuad(v(x, -y, -z), v(-x, -y, -z), v(-x, y, -z), v(x, y, -z), v(0, 0, -1)) // back
	ms.addQuad(v(x, -y, z), v(x, -y, -z), v(x, y, -z), v(x, y, z), v(1, 0, 0))      // right
	ms.addQuad(v(-x, -y, -z), v(-x, -y, z), v(-x, y, z), v(-x, y, -z), v(-1, 0, 0)) // left
	ms.addQuad(v(-x, y, z), v(x, y, z), v(x, y, -z), v(-x, y, -z), v(0, 1, 0))      // top
	ms.addQuad(v(-x, -y, -z), v(x, -y, -z), v(x, -y, z), v(-x, -y, z), v(0, -1, 0)) // bottom
	return ms
}
