// Package primitives generates small indexed meshes with texture
// coordinates for drawing with the vector shader.
package primitives

import (
	"github.com/chewxy/math32"

	"github.com/go-theft-auto/shaders"
)

// MeshData is counterclockwise indexed triangle geometry in the [-1, 1]
// square, with texture coordinates spanning [0, 1].
type MeshData struct {
	Positions          []shaders.Vec2
	TextureCoordinates []shaders.Vec2
	Indices            []uint16
}

// Range is a run of indices inside a concatenated mesh.
type Range struct {
	First, Count int
}

// SquareSolid returns a square made of two triangles.
func SquareSolid() MeshData {
	return MeshData{
		Positions: []shaders.Vec2{
			{X: -1, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 1},
		},
		TextureCoordinates: []shaders.Vec2{
			{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
		},
		Indices: []uint16{0, 1, 2, 0, 2, 3},
	}
}

// Circle2DSolid returns a unit circle approximated by a fan of segments
// triangles around its center. Three segments make a triangle.
func Circle2DSolid(segments int) MeshData {
	segments = max(segments, 3)
	m := MeshData{
		Positions:          make([]shaders.Vec2, 0, segments+1),
		TextureCoordinates: make([]shaders.Vec2, 0, segments+1),
		Indices:            make([]uint16, 0, segments*3),
	}
	m.add(shaders.Vec2{})
	step := 2 * math32.Pi / float32(segments)
	for i := range segments {
		angle := float32(i) * step
		m.add(shaders.Vec2{X: math32.Cos(angle), Y: math32.Sin(angle)})
	}
	for i := range segments {
		next := (i+1)%segments + 1
		m.Indices = append(m.Indices, 0, uint16(i+1), uint16(next))
	}
	return m
}

// add appends a vertex with texture coordinates derived from its position.
func (m *MeshData) add(p shaders.Vec2) {
	m.Positions = append(m.Positions, p)
	m.TextureCoordinates = append(m.TextureCoordinates, shaders.Vec2{X: (p.X + 1) / 2, Y: (p.Y + 1) / 2})
}

// VertexCount returns the number of vertices.
func (m MeshData) VertexCount() int { return len(m.Positions) }

// Concatenate joins meshes into one, rebasing their indices, and returns the
// index range each input occupies.
func Concatenate(meshes ...MeshData) (MeshData, []Range) {
	var out MeshData
	ranges := make([]Range, 0, len(meshes))
	for _, m := range meshes {
		base := uint16(len(out.Positions))
		ranges = append(ranges, Range{First: len(out.Indices), Count: len(m.Indices)})
		out.Positions = append(out.Positions, m.Positions...)
		out.TextureCoordinates = append(out.TextureCoordinates, m.TextureCoordinates...)
		for _, i := range m.Indices {
			out.Indices = append(out.Indices, base+i)
		}
	}
	return out, ranges
}

// Interleave returns the vertex data as position followed by texture
// coordinates. With three dimensions the position gets a zero Z.
func (m MeshData) Interleave(dimensions int) []float32 {
	stride := dimensions + 2
	out := make([]float32, 0, stride*len(m.Positions))
	for i, p := range m.Positions {
		out = append(out, p.X, p.Y)
		if dimensions == 3 {
			out = append(out, 0)
		}
		t := m.TextureCoordinates[i]
		out = append(out, t.X, t.Y)
	}
	return out
}

// Views returns a mesh view of mesh for every range.
func Views(mesh shaders.Mesh, ranges []Range) []shaders.Mesh {
	views := make([]shaders.Mesh, len(ranges))
	for i, r := range ranges {
		views[i] = mesh.View(r.First, r.Count)
	}
	return views
}
