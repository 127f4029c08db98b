// Package scene holds the hard-coded meshes drawn by the flycam demo.
package scene

import (
	"errors"
	"fmt"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
)

// FloatsPerVertex is the interleaved layout: position (3), color (3), normal (3)
const FloatsPerVertex = 9

// Attribute offsets within a vertex, in floats
const (
	PositionOffset = 0
	ColorOffset    = 3
	NormalOffset   = 6
)

// ErrUnknownScene is returned by ByName for names with no mesh
var ErrUnknownScene = errors.New("unknown scene")

// Mesh is an indexed triangle list in the interleaved vertex layout
type Mesh struct {
	Name     string
	Vertices []float32
	Indices  []uint32
	// Lit meshes are shaded with the scene light
	Lit bool
}

// VertexCount returns the number of vertices in the mesh
func (m Mesh) VertexCount() int {
	return len(m.Vertices) / FloatsPerVertex
}

// Position returns the position of vertex i
func (m Mesh) Position(i int) mgl32.Vec3 {
	return m.attr(i, PositionOffset)
}

// Color returns the color of vertex i
func (m Mesh) Color(i int) mgl32.Vec3 {
	return m.attr(i, ColorOffset)
}

// Normal returns the normal of vertex i
func (m Mesh) Normal(i int) mgl32.Vec3 {
	return m.attr(i, NormalOffset)
}

// Center returns the midpoint of the mesh's axis-aligned bounds
func (m Mesh) Center() mgl32.Vec3 {
	if m.VertexCount() == 0 {
		return mgl32.Vec3{}
	}

	lo, hi := m.Position(0), m.Position(0)
	for i := 1; i < m.VertexCount(); i++ {
		p := m.Position(i)
		for axis := range p {
			lo[axis] = min(lo[axis], p[axis])
			hi[axis] = max(hi[axis], p[axis])
		}
	}
	return lo.Add(hi).Mul(0.5)
}

func (m Mesh) attr(i, offset int) mgl32.Vec3 {
	base := i*FloatsPerVertex + offset
	return mgl32.Vec3{m.Vertices[base], m.Vertices[base+1], m.Vertices[base+2]}
}

var builders = map[string]func() Mesh{
	"triangle": Triangle,
	"quad":     Quad,
	"pyramid":  Pyramid,
}

// Names returns the available scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByName builds the mesh for a scene name
func ByName(name string) (Mesh, error) {
	build, ok := builders[name]
	if !ok {
		return Mesh{}, fmt.Errorf("%w: %q (have %v)", ErrUnknownScene, name, Names())
	}
	return build(), nil
}

// Triangle returns a single orange triangle facing +Z
func Triangle() Mesh {
	orange := mgl32.Vec3{1.0, 0.5, 0.2}
	b := &builder{}
	b.triangle(
		mgl32.Vec3{-0.5, -0.5, 0},
		mgl32.Vec3{0.5, -0.5, 0},
		mgl32.Vec3{0, 0.5, 0},
		orange,
	)
	return b.mesh("triangle", false)
}

// Quad returns a unit quad facing +Z with a different color per corner
func Quad() Mesh {
	b := &builder{}
	b.quad(
		[4]mgl32.Vec3{
			{-0.5, -0.5, 0}, // Bottom-left
			{0.5, -0.5, 0},  // Bottom-right
			{0.5, 0.5, 0},   // Top-right
			{-0.5, 0.5, 0},  // Top-left
		},
		[4]mgl32.Vec3{
			{1.0, 0.0, 0.0},
			{0.0, 1.0, 0.0},
			{0.0, 0.0, 1.0},
			{1.0, 1.0, 1.0},
		},
	)
	return b.mesh("quad", false)
}

// Pyramid returns a flat-shaded square pyramid standing on y = 0.
// Every face has its own vertices so normals stay per face.
func Pyramid() Mesh {
	const (
		half   = 0.5
		height = 0.8
	)
	base := [4]mgl32.Vec3{
		{-half, 0, half},  // Front-left
		{half, 0, half},   // Front-right
		{half, 0, -half},  // Back-right
		{-half, 0, -half}, // Back-left
	}
	apex := mgl32.Vec3{0, height, 0}

	sand := mgl32.Vec3{0.83, 0.70, 0.44}
	stone := mgl32.Vec3{0.92, 0.86, 0.70}

	b := &builder{}

	// Base faces down, so walk the corners clockwise seen from above
	b.quad(
		[4]mgl32.Vec3{base[0], base[3], base[2], base[1]},
		[4]mgl32.Vec3{sand, sand, sand, sand},
	)

	// Front, right, back, left
	for i := range base {
		b.triangle(base[i], base[(i+1)%len(base)], apex, stone)
	}

	return b.mesh("pyramid", true)
}

// builder accumulates interleaved vertices with counter-clockwise winding
type builder struct {
	vertices []float32
	indices  []uint32
}

func (b *builder) vertex(pos, color, normal mgl32.Vec3) uint32 {
	idx := uint32(len(b.vertices) / FloatsPerVertex)
	b.vertices = append(b.vertices,
		pos[0], pos[1], pos[2],
		color[0], color[1], color[2],
		normal[0], normal[1], normal[2],
	)
	return idx
}

func (b *builder) triangle(p0, p1, p2, color mgl32.Vec3) {
	n := faceNormal(p0, p1, p2)
	b.indices = append(b.indices,
		b.vertex(p0, color, n),
		b.vertex(p1, color, n),
		b.vertex(p2, color, n),
	)
}

// quad adds a planar quad given counter-clockwise corners
func (b *builder) quad(corners, colors [4]mgl32.Vec3) {
	n := faceNormal(corners[0], corners[1], corners[2])
	var idx [4]uint32
	for i := range corners {
		idx[i] = b.vertex(corners[i], colors[i], n)
	}
	b.indices = append(b.indices, idx[0], idx[1], idx[2], idx[2], idx[3], idx[0])
}

func (b *builder) mesh(name string, lit bool) Mesh {
	return Mesh{
		Name:     name,
		Vertices: b.vertices,
		Indices:  b.indices,
		Lit:      lit,
	}
}

func faceNormal(p0, p1, p2 mgl32.Vec3) mgl32.Vec3 {
	return p1.Sub(p0).Cross(p2.Sub(p0)).Normalize()
}
