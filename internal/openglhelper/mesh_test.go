package openglhelper

import "testing"

func TestVertexLayoutStride(t *testing.T) {
	tests := []struct {
		layout VertexLayout
		want   int32
	}{
		{VertexLayout{3}, 12},
		{VertexLayout{3, 3, 3}, 36},
		{VertexLayout{3, 3, 2}, 32},
		{nil, 0},
	}

	for _, tt := range tests {
		if got := tt.layout.Stride(); got != tt.want {
			t.Fatalf("%v.Stride() = %d, want %d", tt.layout, got, tt.want)
		}
	}
}
