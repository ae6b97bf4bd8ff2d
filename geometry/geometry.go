// Package geometry holds the fixed meshes the demo can draw and the camera
// that looks at them.
package geometry

import (
	"fmt"
	"sort"
)

// ComponentsPerVertex is the number of floats per position (x, y, z).
const ComponentsPerVertex = 3

// Mesh is a static set of positions with optional triangle indices.
type Mesh struct {
	Name     string
	Vertices []float32
	Indices  []uint32
}

// Indexed reports whether the mesh is drawn with an element buffer.
func (m Mesh) Indexed() bool {
	return len(m.Indices) > 0
}

// VertexCount is the number of positions in Vertices.
func (m Mesh) VertexCount() int {
	return len(m.Vertices) / ComponentsPerVertex
}

// ElementCount is the number of vertices a draw call has to process.
func (m Mesh) ElementCount() int {
	if m.Indexed() {
		return len(m.Indices)
	}
	return m.VertexCount()
}

// Cube is a unit cube centred on the origin, 8 corners and 12 triangles.
func Cube() Mesh {
	return Mesh{
		Name: "cube",
		Vertices: []float32{
			// front face
			-0.5, 0.5, -0.5, // 0
			-0.5, -0.5, -0.5, // 1
			0.5, -0.5, -0.5, // 2
			0.5, 0.5, -0.5, // 3

			// back face
			-0.5, 0.5, 0.5, // 4
			-0.5, -0.5, 0.5, // 5
			0.5, -0.5, 0.5, // 6
			0.5, 0.5, 0.5, // 7
		},
		Indices: []uint32{
			// front
			0, 1, 2,
			2, 3, 0,
			// right
			3, 2, 6,
			6, 7, 3,
			// left
			4, 5, 1,
			1, 0, 4,
			// back
			7, 6, 5,
			5, 4, 7,
			// top
			4, 0, 3,
			3, 7, 4,
			// bottom
			1, 5, 6,
			6, 2, 1,
		},
	}
}

// Triangle is a single non-indexed triangle in the z = -0.5 plane.
func Triangle() Mesh {
	return Mesh{
		Name: "triangle",
		Vertices: []float32{
			-0.5, -0.5, -0.5,
			0.5, -0.5, -0.5,
			0.0, 0.5, -0.5,
		},
	}
}

var meshes = map[string]func() Mesh{
	"cube":     Cube,
	"triangle": Triangle,
}

// Names lists the meshes ByName accepts, sorted.
func Names() []string {
	names := make([]string, 0, len(meshes))
	for name := range meshes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByName returns a fresh copy of the named mesh.
func ByName(name string) (Mesh, error) {
	fn, ok := meshes[name]
	if !ok {
		return Mesh{}, fmt.Errorf("unknown mesh %q (want one of %v)", name, Names())
	}
	return fn(), nil
}
