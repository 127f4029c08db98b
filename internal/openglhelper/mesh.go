package openglhelper

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// VertexLayout describes an interleaved float32 vertex: one attribute
// location per entry, sized in floats, packed in order.
type VertexLayout []int32

// Stride returns the size of one vertex in bytes
func (l VertexLayout) Stride() int32 {
	var floats int32
	for _, size := range l {
		floats += size
	}
	return floats * 4
}

// Mesh owns the GPU buffers for an indexed triangle list
type Mesh struct {
	vao        *VertexArrayObject
	vbo        *BufferObject
	ebo        *BufferObject
	indexCount int32
}

// NewMesh uploads interleaved vertices and indices. Attribute i of the
// layout is bound to shader location i.
func NewMesh(vertices []float32, indices []uint32, layout VertexLayout) *Mesh {
	vao := NewVAO()
	vao.Bind()

	vbo := NewVBO(vertices, StaticDraw)
	ebo := NewEBO(indices, StaticDraw)

	stride := layout.Stride()
	offset := 0
	for i, size := range layout {
		vao.SetVertexAttribPointer(uint32(i), size, gl.FLOAT, false, stride, offset)
		offset += int(size) * 4
	}

	// Unbinding the VAO first keeps the element buffer attached to it
	vao.Unbind()
	vbo.Unbind()

	return &Mesh{
		vao:        vao,
		vbo:        vbo,
		ebo:        ebo,
		indexCount: int32(len(indices)),
	}
}

// Draw renders the mesh with whatever shader program is in use
func (m *Mesh) Draw() {
	m.vao.Bind()
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	m.vao.Unbind()
}

// Delete releases all resources
func (m *Mesh) Delete() {
	m.vao.Delete()
	m.vbo.Delete()
	m.ebo.Delete()
}
