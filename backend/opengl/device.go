// Package opengl implements shaders.Device on OpenGL through go-gl, plus the
// buffer, texture, mesh and framebuffer objects needed to drive it and a
// GLFW window to host the context.
package opengl

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/shaders"
)

// Device issues GL calls on the context current on the calling thread.
// gl.Init must have succeeded before any method is called.
type Device struct {
	info *shaders.DeviceInfo
}

var _ shaders.Device = (*Device)(nil)

// NewDevice creates a device for the current context.
func NewDevice() *Device {
	return &Device{}
}

// Info queries the context once and caches the result.
func (d *Device) Info() shaders.DeviceInfo {
	if d.info != nil {
		return *d.info
	}
	info := shaders.DeviceInfo{
		Version: gl.GoStr(gl.GetString(gl.VERSION)),
	}
	var n int32
	gl.GetIntegerv(gl.NUM_EXTENSIONS, &n)
	info.Extensions = make([]string, 0, n)
	for i := range uint32(n) {
		info.Extensions = append(info.Extensions, gl.GoStr(gl.GetStringi(gl.EXTENSIONS, i)))
	}
	var align int32
	gl.GetIntegerv(gl.UNIFORM_BUFFER_OFFSET_ALIGNMENT, &align)
	info.UniformBufferOffsetAlignment = int(align)

	shaders.Logger().Debug("opengl context",
		"version", info.Version,
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)),
		"extensions", len(info.Extensions),
		"uniformBufferOffsetAlignment", info.UniformBufferOffsetAlignment,
	)
	d.info = &info
	return info
}

var stages = map[shaders.Stage]uint32{
	shaders.StageVertex:   gl.VERTEX_SHADER,
	shaders.StageFragment: gl.FRAGMENT_SHADER,
}

// CompileShader compiles the concatenated sources. On failure the shader is
// deleted and the info log returned as the error.
func (d *Device) CompileShader(stage shaders.Stage, sources []string) (uint32, error) {
	shader := gl.CreateShader(stages[stage])

	terminated := make([]string, len(sources))
	for i, s := range sources {
		terminated[i] = s + "\x00"
	}
	csources, free := gl.Strs(terminated...)
	gl.ShaderSource(shader, int32(len(terminated)), csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := infoLog(logLength, func(buf *uint8) { gl.GetShaderInfoLog(shader, logLength, nil, buf) })
		gl.DeleteShader(shader)
		return 0, errors.New(log)
	}
	return shader, nil
}

func (d *Device) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (d *Device) CreateProgram(ids ...uint32) uint32 {
	program := gl.CreateProgram()
	for _, s := range ids {
		gl.AttachShader(program, s)
	}
	return program
}

func (d *Device) BindAttribLocation(program, location uint32, name string) {
	gl.BindAttribLocation(program, location, gl.Str(name+"\x00"))
}

func (d *Device) BindFragDataLocation(program, color uint32, name string) {
	gl.BindFragDataLocation(program, color, gl.Str(name+"\x00"))
}

// LinkProgram links the program and returns the info log as the error on
// failure.
func (d *Device) LinkProgram(program uint32) error {
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		return errors.New(programLog(program))
	}
	return nil
}

func (d *Device) ValidateProgram(program uint32) (bool, string) {
	gl.ValidateProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.VALIDATE_STATUS, &status)
	return status == gl.TRUE, programLog(program)
}

func (d *Device) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (d *Device) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (d *Device) UniformBlockIndex(program uint32, name string) uint32 {
	index := gl.GetUniformBlockIndex(program, gl.Str(name+"\x00"))
	if index == gl.INVALID_INDEX {
		return shaders.InvalidIndex
	}
	return index
}

func (d *Device) UniformBlockBinding(program, block, binding uint32) {
	gl.UniformBlockBinding(program, block, binding)
}

func (d *Device) Uniform1i(program uint32, location int32, v int32) {
	gl.UseProgram(program)
	gl.Uniform1i(location, v)
}

func (d *Device) Uniform1ui(program uint32, location int32, v uint32) {
	gl.UseProgram(program)
	gl.Uniform1ui(location, v)
}

func (d *Device) Uniform4f(program uint32, location int32, v shaders.Color4) {
	gl.UseProgram(program)
	gl.Uniform4f(location, v.R, v.G, v.B, v.A)
}

func (d *Device) UniformMatrix3(program uint32, location int32, m shaders.Mat3) {
	gl.UseProgram(program)
	gl.UniformMatrix3fv(location, 1, false, &m[0])
}

func (d *Device) UniformMatrix4(program uint32, location int32, m shaders.Mat4) {
	gl.UseProgram(program)
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

func (d *Device) BindUniformBuffer(binding, buffer uint32) {
	gl.BindBufferBase(gl.UNIFORM_BUFFER, binding, buffer)
}

func (d *Device) BindUniformBufferRange(binding, buffer uint32, offset, size int) {
	gl.BindBufferRange(gl.UNIFORM_BUFFER, binding, buffer, offset, size)
}

func (d *Device) BindTexture(unit, texture uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, texture)
}

var primitives = map[shaders.Primitive]uint32{
	shaders.Triangles:     gl.TRIANGLES,
	shaders.TriangleStrip: gl.TRIANGLE_STRIP,
	shaders.TriangleFan:   gl.TRIANGLE_FAN,
	shaders.Lines:         gl.LINES,
	shaders.Points:        gl.POINTS,
}

var indexTypes = map[shaders.IndexType]uint32{
	shaders.IndexUnsignedByte:  gl.UNSIGNED_BYTE,
	shaders.IndexUnsignedShort: gl.UNSIGNED_SHORT,
	shaders.IndexUnsignedInt:   gl.UNSIGNED_INT,
}

func (d *Device) Draw(program uint32, mesh shaders.Mesh) {
	gl.UseProgram(program)
	gl.BindVertexArray(mesh.VAO)
	mode := primitives[mesh.Primitive]

	switch {
	case !mesh.Indexed():
		gl.DrawArrays(mode, int32(mesh.First), mesh.Count)
	case mesh.BaseVertex != 0:
		gl.DrawElementsBaseVertexWithOffset(mode, mesh.Count, indexTypes[mesh.IndexType],
			uintptr(mesh.First*mesh.IndexType.Size()), mesh.BaseVertex)
	default:
		gl.DrawElementsWithOffset(mode, mesh.Count, indexTypes[mesh.IndexType],
			uintptr(mesh.First*mesh.IndexType.Size()))
	}
	gl.BindVertexArray(0)
}

// MultiDraw submits all views with one glMultiDraw* call. The shader reads
// the view position through gl_DrawID.
func (d *Device) MultiDraw(program uint32, meshes []shaders.Mesh) {
	if len(meshes) == 0 {
		return
	}
	gl.UseProgram(program)
	gl.BindVertexArray(meshes[0].VAO)
	mode := primitives[meshes[0].Primitive]
	n := int32(len(meshes))

	counts := make([]int32, len(meshes))
	for i, m := range meshes {
		counts[i] = m.Count
	}

	if !meshes[0].Indexed() {
		firsts := make([]int32, len(meshes))
		for i, m := range meshes {
			firsts[i] = int32(m.First)
		}
		gl.MultiDrawArrays(mode, &firsts[0], &counts[0], n)
		gl.BindVertexArray(0)
		return
	}

	indexType := meshes[0].IndexType
	offsets := make([]unsafe.Pointer, len(meshes))
	baseVertices := make([]int32, len(meshes))
	var based bool
	for i, m := range meshes {
		offsets[i] = gl.PtrOffset(m.First * indexType.Size())
		baseVertices[i] = m.BaseVertex
		based = based || m.BaseVertex != 0
	}
	if based {
		gl.MultiDrawElementsBaseVertex(mode, &counts[0], indexTypes[indexType], &offsets[0], n, &baseVertices[0])
	} else {
		gl.MultiDrawElements(mode, &counts[0], indexTypes[indexType], &offsets[0], n)
	}
	gl.BindVertexArray(0)
}

// CheckError returns the pending GL errors, if any.
func CheckError() error {
	var codes []string
	for code := gl.GetError(); code != gl.NO_ERROR; code = gl.GetError() {
		codes = append(codes, fmt.Sprintf("%#x", code))
		if len(codes) == 16 {
			break
		}
	}
	if len(codes) == 0 {
		return nil
	}
	return fmt.Errorf("gl error %s", strings.Join(codes, ", "))
}

func programLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	return infoLog(logLength, func(buf *uint8) { gl.GetProgramInfoLog(program, logLength, nil, buf) })
}

func infoLog(length int32, get func(*uint8)) string {
	if length <= 0 {
		return ""
	}
	log := make([]byte, length+1)
	get(&log[0])
	return strings.TrimRight(string(log), "\x00\n")
}
