package shaders

import "encoding/binary"

// The types below mirror the std140 uniform blocks of the vector shader.
// Fill arrays of them, lay them out with PackUniforms and upload the bytes
// into buffers bound with the Bind*Buffer operations.

// TransformationProjectionUniform2D is one slot of the transformation and
// projection buffer of a 2D shader. A std140 mat3 is three vec4 columns.
type TransformationProjectionUniform2D struct {
	Columns [3][4]float32
}

// NewTransformationProjectionUniform2D converts m to the padded layout.
func NewTransformationProjectionUniform2D(m Mat3) TransformationProjectionUniform2D {
	var u TransformationProjectionUniform2D
	for col := 0; col < 3; col++ {
		copy(u.Columns[col][:3], m[col*3:col*3+3])
	}
	return u
}

// Matrix returns the matrix stored in u.
func (u TransformationProjectionUniform2D) Matrix() Mat3 {
	var m Mat3
	for col := 0; col < 3; col++ {
		copy(m[col*3:col*3+3], u.Columns[col][:3])
	}
	return m
}

// TransformationProjectionUniform3D is one slot of the transformation and
// projection buffer of a 3D shader.
type TransformationProjectionUniform3D struct {
	Matrix Mat4
}

// NewTransformationProjectionUniform3D wraps m.
func NewTransformationProjectionUniform3D(m Mat4) TransformationProjectionUniform3D {
	return TransformationProjectionUniform3D{Matrix: m}
}

// TextureTransformationUniform is one slot of the texture transformation
// buffer: the upper-left 2x2 part of the texture matrix, its translation
// and a texture layer that the vector shader ignores.
type TextureTransformationUniform struct {
	RotationScaling [4]float32
	Offset          [2]float32
	Layer           uint32
	_               uint32
}

// DefaultTextureTransformationUniform is the identity transformation.
func DefaultTextureTransformationUniform() TextureTransformationUniform {
	return TextureTransformationUniform{RotationScaling: [4]float32{1, 0, 0, 1}}
}

// NewTextureTransformationUniform takes the affine part of m.
func NewTextureTransformationUniform(m Mat3) TextureTransformationUniform {
	return TextureTransformationUniform{
		RotationScaling: [4]float32{m[0], m[1], m[3], m[4]},
		Offset:          [2]float32{m[6], m[7]},
	}
}

// VectorDrawUniform is one slot of the draw buffer. The shader reads the
// low 16 bits of the first word as the material index.
type VectorDrawUniform struct {
	MaterialID uint16
	_          uint16
	_          [3]uint32
}

// VectorMaterialUniform is one slot of the material buffer.
type VectorMaterialUniform struct {
	BackgroundColor Color4
	Color           Color4
	_               [4]float32
}

// DefaultVectorMaterialUniform has a white foreground on a transparent
// background, the same as the immediate-mode defaults.
func DefaultVectorMaterialUniform() VectorMaterialUniform {
	return VectorMaterialUniform{
		Color: Color4{R: 1, G: 1, B: 1, A: 1},
	}
}

// Uniform is any of the uniform slot types.
type Uniform interface {
	TransformationProjectionUniform2D | TransformationProjectionUniform3D |
		TextureTransformationUniform | VectorDrawUniform | VectorMaterialUniform
}

// UniformSize returns the std140 size of one slot of type T.
func UniformSize[T Uniform]() int {
	var zero T
	return binary.Size(zero)
}

// PackUniforms encodes items back to back, each starting stride bytes after
// the previous one. A stride smaller than the slot size is raised to it.
// Use Capabilities.AlignUniformOffset(UniformSize[T]()) as the stride when
// slots are bound individually with a Bind*BufferRange operation.
func PackUniforms[T Uniform](items []T, stride int) []byte {
	size := UniformSize[T]()
	stride = max(stride, size)
	out := make([]byte, 0, stride*len(items))
	for _, item := range items {
		start := len(out)
		var err error
		out, err = binary.Append(out, binary.LittleEndian, item)
		if err != nil {
			// only fixed-size types satisfy Uniform
			panic(err)
		}
		out = append(out, make([]byte, stride-(len(out)-start))...)
	}
	return out
}
