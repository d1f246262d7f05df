package shaders

// Stage identifies a shader stage.
type Stage int

const (
	StageVertex Stage = iota
	StageFragment
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// InvalidIndex is returned by Device.UniformBlockIndex for an unknown block.
const InvalidIndex = ^uint32(0)

// DeviceInfo is the raw description of the current context, as reported by
// the driver. Probe turns it into Capabilities.
type DeviceInfo struct {
	// Version is the GL_VERSION string, for example
	// "4.6 (Core Profile) Mesa 24.0.5" or "OpenGL ES 3.2 NVIDIA 535.0".
	Version string

	// Extensions lists the supported extension names.
	Extensions []string

	// UniformBufferOffsetAlignment is GL_UNIFORM_BUFFER_OFFSET_ALIGNMENT,
	// zero when uniform buffers are unavailable.
	UniformBufferOffsetAlignment int
}

// Buffer is a GPU buffer object owned by the caller.
type Buffer interface {
	ID() uint32
}

// Texture is a 2D texture owned by the caller.
type Texture interface {
	ID() uint32
}

// Device is the GPU resource API the shader layer drives. Every call goes to
// the context that is current on the calling thread; implementations are not
// safe for concurrent use.
//
// The backend/opengl package provides the OpenGL implementation.
type Device interface {
	// Info describes the current context. Implementations may cache it.
	Info() DeviceInfo

	// CompileShader compiles one stage from the concatenated sources.
	CompileShader(stage Stage, sources []string) (uint32, error)
	DeleteShader(shader uint32)

	// CreateProgram creates a program with the given shaders attached.
	CreateProgram(shaders ...uint32) uint32
	BindAttribLocation(program, location uint32, name string)
	BindFragDataLocation(program, color uint32, name string)
	LinkProgram(program uint32) error
	ValidateProgram(program uint32) (bool, string)
	DeleteProgram(program uint32)

	// UniformLocation returns -1 for an unknown or inactive uniform.
	UniformLocation(program uint32, name string) int32
	// UniformBlockIndex returns InvalidIndex for an unknown block.
	UniformBlockIndex(program uint32, name string) uint32
	UniformBlockBinding(program, block, binding uint32)

	Uniform1i(program uint32, location int32, v int32)
	Uniform1ui(program uint32, location int32, v uint32)
	Uniform4f(program uint32, location int32, v Color4)
	UniformMatrix3(program uint32, location int32, m Mat3)
	UniformMatrix4(program uint32, location int32, m Mat4)

	BindUniformBuffer(binding, buffer uint32)
	BindUniformBufferRange(binding, buffer uint32, offset, size int)
	BindTexture(unit, texture uint32)

	// Draw issues one draw of mesh with program.
	Draw(program uint32, mesh Mesh)
	// MultiDraw issues a single multi-draw call over mesh views sharing
	// one vertex array. The shader sees the position in the slice as its
	// draw index.
	MultiDraw(program uint32, meshes []Mesh)
}
