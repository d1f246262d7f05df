package shaders

// Primitive is the topology of a mesh.
type Primitive uint8

const (
	Triangles Primitive = iota
	TriangleStrip
	TriangleFan
	Lines
	Points
)

// IndexType is the element type of a mesh index buffer.
type IndexType uint8

const (
	// IndexNone marks a non-indexed mesh.
	IndexNone IndexType = iota
	IndexUnsignedByte
	IndexUnsignedShort
	IndexUnsignedInt
)

// Size returns the size of one index in bytes.
func (t IndexType) Size() int {
	switch t {
	case IndexUnsignedByte:
		return 1
	case IndexUnsignedShort:
		return 2
	case IndexUnsignedInt:
		return 4
	default:
		return 0
	}
}

// Mesh describes geometry ready for drawing. The vertex array and its
// buffers are owned by the caller; a Mesh is a plain value and a view of it
// (see View) refers to the same vertex array.
//
// The vertex array is expected to feed the position at attribute location 0
// and the texture coordinates at location 1.
type Mesh struct {
	// VAO is the vertex array object name.
	VAO uint32

	Primitive Primitive

	// Count is the number of indices, or vertices for a non-indexed mesh.
	Count int32

	IndexType IndexType

	// First is the first index, or first vertex for a non-indexed mesh.
	First int

	// BaseVertex is added to each index.
	BaseVertex int32
}

// View returns a view of count elements starting at first, relative to the
// start of the original mesh.
func (m Mesh) View(first, count int) Mesh {
	v := m
	v.First = m.First + first
	v.Count = int32(count)
	return v
}

// Indexed reports whether the mesh has an index buffer.
func (m Mesh) Indexed() bool {
	return m.IndexType != IndexNone
}

// sameSource reports whether m and other are views of the same original
// mesh, which is what a single multi-draw call needs.
func (m Mesh) sameSource(other Mesh) bool {
	return m.VAO == other.VAO && m.Primitive == other.Primitive && m.IndexType == other.IndexType
}
