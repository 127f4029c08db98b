package scene

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestMeshesAreWellFormed(t *testing.T) {
	tests := []struct {
		mesh      Mesh
		vertices  int
		triangles int
		lit       bool
	}{
		{Triangle(), 3, 1, false},
		{Quad(), 4, 2, false},
		{Pyramid(), 16, 6, true},
	}

	for _, tt := range tests {
		t.Run(tt.mesh.Name, func(t *testing.T) {
			m := tt.mesh
			if len(m.Vertices)%FloatsPerVertex != 0 {
				t.Fatalf("len(vertices)=%d is not a multiple of %d", len(m.Vertices), FloatsPerVertex)
			}
			if m.VertexCount() != tt.vertices {
				t.Fatalf("vertex count = %d, want %d", m.VertexCount(), tt.vertices)
			}
			if len(m.Indices) != tt.triangles*3 {
				t.Fatalf("index count = %d, want %d", len(m.Indices), tt.triangles*3)
			}
			if m.Lit != tt.lit {
				t.Fatalf("lit = %v, want %v", m.Lit, tt.lit)
			}

			for i, idx := range m.Indices {
				if int(idx) >= m.VertexCount() {
					t.Fatalf("index[%d]=%d out of range", i, idx)
				}
			}
			for i := 0; i < m.VertexCount(); i++ {
				if d := math.Abs(float64(m.Normal(i).Len()) - 1); d > 1e-5 {
					t.Fatalf("vertex %d normal %v is not unit length", i, m.Normal(i))
				}
			}
		})
	}
}

// Stored normals agree with the counter-clockwise winding of each triangle
func TestWindingMatchesNormals(t *testing.T) {
	for _, m := range []Mesh{Triangle(), Quad(), Pyramid()} {
		for tri := 0; tri < len(m.Indices); tri += 3 {
			a, b, c := int(m.Indices[tri]), int(m.Indices[tri+1]), int(m.Indices[tri+2])
			n := faceNormal(m.Position(a), m.Position(b), m.Position(c))
			for _, v := range []int{a, b, c} {
				if !m.Normal(v).ApproxEqualThreshold(n, 1e-5) {
					t.Fatalf("%s triangle %d: vertex %d normal %v, winding gives %v", m.Name, tri/3, v, m.Normal(v), n)
				}
			}
		}
	}
}

func TestPyramidNormalsPointOutward(t *testing.T) {
	m := Pyramid()
	center := mgl32.Vec3{0, 0.2, 0}

	for tri := 0; tri < len(m.Indices); tri += 3 {
		a, b, c := int(m.Indices[tri]), int(m.Indices[tri+1]), int(m.Indices[tri+2])
		centroid := m.Position(a).Add(m.Position(b)).Add(m.Position(c)).Mul(1.0 / 3)
		if m.Normal(a).Dot(centroid.Sub(center)) <= 0 {
			t.Fatalf("triangle %d normal %v points inward", tri/3, m.Normal(a))
		}
	}
}

func TestFlatMeshesFaceCamera(t *testing.T) {
	for _, m := range []Mesh{Triangle(), Quad()} {
		for i := 0; i < m.VertexCount(); i++ {
			if m.Normal(i) != (mgl32.Vec3{0, 0, 1}) {
				t.Fatalf("%s vertex %d normal = %v, want +Z", m.Name, i, m.Normal(i))
			}
		}
	}
	if c := Triangle().Color(0); c != (mgl32.Vec3{1.0, 0.5, 0.2}) {
		t.Fatalf("triangle color = %v", c)
	}
}

func TestByName(t *testing.T) {
	if got, want := Names(), []string{"pyramid", "quad", "triangle"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}

	for _, name := range Names() {
		m, err := ByName(name)
		if err != nil {
			t.Fatalf("ByName(%q): %v", name, err)
		}
		if m.Name != name {
			t.Fatalf("ByName(%q).Name = %q", name, m.Name)
		}
	}

	_, err := ByName("cube")
	if !errors.Is(err, ErrUnknownScene) {
		t.Fatalf("ByName(cube) err = %v, want ErrUnknownScene", err)
	}
}

func TestCenter(t *testing.T) {
	tests := []struct {
		mesh Mesh
		want mgl32.Vec3
	}{
		{Triangle(), mgl32.Vec3{0, 0, 0}},
		{Quad(), mgl32.Vec3{0, 0, 0}},
		{Pyramid(), mgl32.Vec3{0, 0.4, 0}},
		{Mesh{}, mgl32.Vec3{}},
	}

	for _, tt := range tests {
		if got := tt.mesh.Center(); !got.ApproxEqualThreshold(tt.want, 1e-6) {
			t.Fatalf("%q center = %v, want %v", tt.mesh.Name, got, tt.want)
		}
	}
}
