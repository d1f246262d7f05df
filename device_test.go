package shaders_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-theft-auto/shaders"
)

// Context descriptions used across the tests.
var (
	gl46 = shaders.DeviceInfo{Version: "4.6.0 NVIDIA 535.54.03", UniformBufferOffsetAlignment: 256}
	gl33 = shaders.DeviceInfo{Version: "3.3 (Core Profile) Mesa 24.0.5", UniformBufferOffsetAlignment: 64}
	gl32 = shaders.DeviceInfo{Version: "3.2.0 NVIDIA 340.108", UniformBufferOffsetAlignment: 256}
	gl30 = shaders.DeviceInfo{Version: "3.0 Mesa 24.0.5"}
	es30 = shaders.DeviceInfo{Version: "OpenGL ES 3.0 (WebGL 2.0)", UniformBufferOffsetAlignment: 16}
)

// fakeDevice records every call as a formatted line. It never touches a GPU.
type fakeDevice struct {
	info  shaders.DeviceInfo
	calls []string

	sources    map[shaders.Stage][]string
	compileErr map[shaders.Stage]error
	linkErr    error
	locations  map[string]int32
	blocks     map[string]uint32

	nextShader  uint32
	nextProgram uint32
}

func newFakeDevice(info shaders.DeviceInfo) *fakeDevice {
	return &fakeDevice{
		info:        info,
		sources:     make(map[shaders.Stage][]string),
		compileErr:  make(map[shaders.Stage]error),
		locations:   make(map[string]int32),
		blocks:      make(map[string]uint32),
		nextShader:  100,
		nextProgram: 1,
	}
}

func (d *fakeDevice) record(format string, args ...any) {
	d.calls = append(d.calls, fmt.Sprintf(format, args...))
}

// reset forgets the calls recorded so far.
func (d *fakeDevice) reset() { d.calls = nil }

// names returns the recorded calls without their arguments.
func (d *fakeDevice) names() []string {
	out := make([]string, len(d.calls))
	for i, c := range d.calls {
		name, _, _ := strings.Cut(c, "(")
		out[i] = name
	}
	return out
}

func (d *fakeDevice) Info() shaders.DeviceInfo {
	d.record("Info()")
	return d.info
}

func (d *fakeDevice) CompileShader(stage shaders.Stage, sources []string) (uint32, error) {
	d.record("CompileShader(%s)", stage)
	d.sources[stage] = sources
	if err := d.compileErr[stage]; err != nil {
		return 0, err
	}
	d.nextShader++
	return d.nextShader, nil
}

func (d *fakeDevice) DeleteShader(shader uint32) { d.record("DeleteShader(%d)", shader) }

func (d *fakeDevice) CreateProgram(ids ...uint32) uint32 {
	id := d.nextProgram
	d.nextProgram++
	d.record("CreateProgram(%v) = %d", ids, id)
	return id
}

func (d *fakeDevice) BindAttribLocation(program, location uint32, name string) {
	d.record("BindAttribLocation(%d, %d, %s)", program, location, name)
}

func (d *fakeDevice) BindFragDataLocation(program, color uint32, name string) {
	d.record("BindFragDataLocation(%d, %d, %s)", program, color, name)
}

func (d *fakeDevice) LinkProgram(program uint32) error {
	d.record("LinkProgram(%d)", program)
	return d.linkErr
}

func (d *fakeDevice) ValidateProgram(program uint32) (bool, string) {
	d.record("ValidateProgram(%d)", program)
	return true, "validated"
}

func (d *fakeDevice) DeleteProgram(program uint32) { d.record("DeleteProgram(%d)", program) }

func (d *fakeDevice) UniformLocation(program uint32, name string) int32 {
	loc, ok := d.locations[name]
	if !ok {
		loc = -1
	}
	d.record("UniformLocation(%d, %s) = %d", program, name, loc)
	return loc
}

func (d *fakeDevice) UniformBlockIndex(program uint32, name string) uint32 {
	index, ok := d.blocks[name]
	if !ok {
		index = shaders.InvalidIndex
	}
	d.record("UniformBlockIndex(%d, %s)", program, name)
	return index
}

func (d *fakeDevice) UniformBlockBinding(program, block, binding uint32) {
	d.record("UniformBlockBinding(%d, %d, %d)", program, block, binding)
}

func (d *fakeDevice) Uniform1i(program uint32, location int32, v int32) {
	d.record("Uniform1i(%d, %d, %d)", program, location, v)
}

func (d *fakeDevice) Uniform1ui(program uint32, location int32, v uint32) {
	d.record("Uniform1ui(%d, %d, %d)", program, location, v)
}

func (d *fakeDevice) Uniform4f(program uint32, location int32, v shaders.Color4) {
	d.record("Uniform4f(%d, %d, %v)", program, location, v)
}

func (d *fakeDevice) UniformMatrix3(program uint32, location int32, m shaders.Mat3) {
	d.record("UniformMatrix3(%d, %d, %v)", program, location, m)
}

func (d *fakeDevice) UniformMatrix4(program uint32, location int32, m shaders.Mat4) {
	d.record("UniformMatrix4(%d, %d, %v)", program, location, m)
}

func (d *fakeDevice) BindUniformBuffer(binding, buffer uint32) {
	d.record("BindUniformBuffer(%d, %d)", binding, buffer)
}

func (d *fakeDevice) BindUniformBufferRange(binding, buffer uint32, offset, size int) {
	d.record("BindUniformBufferRange(%d, %d, %d, %d)", binding, buffer, offset, size)
}

func (d *fakeDevice) BindTexture(unit, texture uint32) {
	d.record("BindTexture(%d, %d)", unit, texture)
}

func (d *fakeDevice) Draw(program uint32, mesh shaders.Mesh) {
	d.record("Draw(%d, vao=%d first=%d count=%d)", program, mesh.VAO, mesh.First, mesh.Count)
}

func (d *fakeDevice) MultiDraw(program uint32, meshes []shaders.Mesh) {
	d.record("MultiDraw(%d, %d)", program, len(meshes))
}

// object is a buffer or texture name.
type object uint32

func (o object) ID() uint32 { return uint32(o) }

var errInfoLog = errors.New("0:12(3): error: syntax error, unexpected IDENTIFIER")
