package shaders

import "fmt"

// Matrix is the transformation type of a Vector: Mat3 in 2D, Mat4 in 3D.
type Matrix interface {
	Mat3 | Mat4
}

// Vector renders geometry textured with a single-channel coverage texture,
// mixing the background color where the coverage is zero with the
// foreground color where it is one.
//
// Without UniformBuffers the uniforms are set per call with the Set*
// methods. With UniformBuffers every draw reads its slot of the bound
// buffers, selected by SetDrawOffset and, with MultiDraw, the position of
// the mesh in a DrawMulti call. Calling an operation that does not apply to
// the configuration writes one line to the diagnostics writer and does
// nothing else.
//
// A Vector is bound to the context it was created on and is not safe for
// concurrent use.
type Vector[M Matrix] struct {
	dev   Device
	id    uint32
	flags Flags

	materialCount uint32
	drawCount     uint32
	drawOffset    uint32

	locations *uniformLocations
	alignment int
	bound     bufferSlot

	diag diagnostics
}

// Vector2D draws 2D meshes with a Mat3 transformation.
type Vector2D = Vector[Mat3]

// Vector3D draws 3D meshes with a Mat4 transformation.
type Vector3D = Vector[Mat4]

// NewVector2D compiles a 2D vector shader for the context behind dev.
func NewVector2D(dev Device, flags Flags, opts ...Option) (*Vector2D, error) {
	return newVector[Mat3](dev, flags, opts)
}

// NewVector3D compiles a 3D vector shader for the context behind dev.
func NewVector3D(dev Device, flags Flags, opts ...Option) (*Vector3D, error) {
	return newVector[Mat4](dev, flags, opts)
}

func newVector[M Matrix](dev Device, flags Flags, opts []Option) (*Vector[M], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	diag := diagnostics{w: cfg.diagnostics}

	if flags.Has(UniformBuffers) {
		if cfg.materialCount == 0 {
			diag.reportConstruction("material count can't be zero")
			return nil, fmt.Errorf("%w: material count can't be zero", ErrInvalidConfig)
		}
		if cfg.drawCount == 0 {
			diag.reportConstruction("draw count can't be zero")
			return nil, fmt.Errorf("%w: draw count can't be zero", ErrInvalidConfig)
		}
	}

	s := &Vector[M]{
		dev:           dev,
		flags:         flags,
		materialCount: cfg.materialCount,
		drawCount:     cfg.drawCount,
		diag:          diag,
	}
	v := variant{
		dimensions:    s.Dimensions(),
		flags:         flags,
		materialCount: cfg.materialCount,
		drawCount:     cfg.drawCount,
	}

	log := Logger()
	caps := Probe(dev.Info())
	log.Debug("probed capabilities",
		"version", caps.Version,
		"glsl", caps.GLSLVersion,
		"explicitAttribLocation", caps.ExplicitAttribLocation,
		"explicitUniformLocation", caps.ExplicitUniformLocation,
		"explicitBinding", caps.ExplicitBinding,
		"uniformBuffers", caps.UniformBuffers,
		"multiDraw", caps.MultiDraw,
	)
	if err := caps.supports(v); err != nil {
		return nil, err
	}

	p, err := buildProgram(dev, caps, v)
	if err != nil {
		return nil, err
	}
	s.id = p.id
	s.locations = p.locations
	s.alignment = caps.UniformOffsetAlignment

	// GLSL ES has no uniform initializers and runtime-resolved locations
	// may not match the declared defaults, so push them once.
	if !flags.Has(UniformBuffers) && (caps.Version.ES || p.locations != nil) {
		s.pushDefaults()
	}

	log.Debug("vector shader created", "program", s.id, "variant", v)
	return s, nil
}

// supports checks that the context can run the variant.
func (c Capabilities) supports(v variant) error {
	switch {
	case c.GLSLVersion == 0:
		return fmt.Errorf("%w: %v has no usable shading language version", ErrUnsupported, c.Version)
	case v.flags.Has(UniformBuffers) && !c.UniformBuffers:
		return fmt.Errorf("%w: uniform buffers on %v", ErrUnsupported, c.Version)
	case v.flags.Has(MultiDraw) && !c.MultiDraw:
		return fmt.Errorf("%w: multidraw on %v", ErrUnsupported, c.Version)
	}
	return nil
}

func (s *Vector[M]) pushDefaults() {
	var identity M
	switch m := any(&identity).(type) {
	case *Mat3:
		*m = Identity3()
	case *Mat4:
		*m = Identity4()
	}
	s.uploadMatrix(s.locations.lookup(uniformTransformationProjectionMatrix), identity)
	if s.flags.Has(TextureTransformation) {
		s.dev.UniformMatrix3(s.id, s.locations.lookup(uniformTextureMatrix), Identity3())
	}
	s.dev.Uniform4f(s.id, s.locations.lookup(uniformBackgroundColor), Color4{})
	s.dev.Uniform4f(s.id, s.locations.lookup(uniformColor), Color4{R: 1, G: 1, B: 1, A: 1})
}

func (s *Vector[M]) uploadMatrix(location int32, m M) {
	switch m := any(m).(type) {
	case Mat3:
		s.dev.UniformMatrix3(s.id, location, m)
	case Mat4:
		s.dev.UniformMatrix4(s.id, location, m)
	}
}

// ID returns the program name, zero after Move or Delete.
func (s *Vector[M]) ID() uint32 { return s.id }

// Flags returns the flags the shader was created with.
func (s *Vector[M]) Flags() Flags { return s.flags }

// MaterialCount returns the size of the material uniform array.
func (s *Vector[M]) MaterialCount() uint32 { return s.materialCount }

// DrawCount returns the size of the per-draw uniform arrays.
func (s *Vector[M]) DrawCount() uint32 { return s.drawCount }

// DrawOffset returns the slot the next Draw reads.
func (s *Vector[M]) DrawOffset() uint32 { return s.drawOffset }

// Dimensions returns 2 for Vector2D and 3 for Vector3D.
func (s *Vector[M]) Dimensions() int {
	var m M
	if _, ok := any(m).(Mat3); ok {
		return 2
	}
	return 3
}

// Validate asks the driver whether the program can run in the current
// state and returns its log. An instance without a program is not valid.
func (s *Vector[M]) Validate() (bool, string) {
	if s.id == 0 {
		return false, ""
	}
	return s.dev.ValidateProgram(s.id)
}

// Move transfers the program to a new instance. The receiver keeps its
// configuration but has no program afterwards.
func (s *Vector[M]) Move() *Vector[M] {
	moved := *s
	s.release()
	return &moved
}

// MoveFrom deletes the program of s and takes over the one of src, leaving
// src without a program.
func (s *Vector[M]) MoveFrom(src *Vector[M]) *Vector[M] {
	if s == src {
		return s
	}
	s.Delete()
	*s = *src
	src.release()
	return s
}

// Delete deletes the program. Deleting an instance without a program does
// nothing.
func (s *Vector[M]) Delete() {
	if s.id != 0 {
		s.dev.DeleteProgram(s.id)
	}
	s.release()
}

func (s *Vector[M]) release() {
	s.id = 0
	s.locations = nil
	s.bound = 0
	s.drawOffset = 0
}

// hasProgram reports an instance that was moved from or deleted.
func (s *Vector[M]) hasProgram(op string) bool {
	if s.id == 0 {
		s.diag.report(op, "the shader has no program")
		return false
	}
	return true
}

// immediate reports a per-call uniform setter used on a buffer shader.
func (s *Vector[M]) immediate(op string) bool {
	if !s.hasProgram(op) {
		return false
	}
	if s.flags.Has(UniformBuffers) {
		s.diag.report(op, "the shader was created with uniform buffers enabled")
		return false
	}
	return true
}

// buffered reports a buffer operation used on an immediate shader.
func (s *Vector[M]) buffered(op string) bool {
	if !s.hasProgram(op) {
		return false
	}
	if !s.flags.Has(UniformBuffers) {
		s.diag.report(op, "the shader was not created with uniform buffers enabled")
		return false
	}
	return true
}

func (s *Vector[M]) textureTransformation(op string) bool {
	if !s.flags.Has(TextureTransformation) {
		s.diag.report(op, "the shader was not created with texture transformation enabled")
		return false
	}
	return true
}

// SetTransformationProjectionMatrix sets the transformation and projection
// of an immediate shader. Identity by default.
func (s *Vector[M]) SetTransformationProjectionMatrix(m M) *Vector[M] {
	if !s.immediate("setTransformationProjectionMatrix") {
		return s
	}
	s.uploadMatrix(s.locations.lookup(uniformTransformationProjectionMatrix), m)
	return s
}

// SetTextureMatrix sets the texture coordinate transformation of an
// immediate shader created with TextureTransformation. Identity by default.
func (s *Vector[M]) SetTextureMatrix(m Mat3) *Vector[M] {
	const op = "setTextureMatrix"
	if !s.immediate(op) || !s.textureTransformation(op) {
		return s
	}
	s.dev.UniformMatrix3(s.id, s.locations.lookup(uniformTextureMatrix), m)
	return s
}

// SetBackgroundColor sets the color where the coverage is zero. Transparent
// by default.
func (s *Vector[M]) SetBackgroundColor(c Color4) *Vector[M] {
	if !s.immediate("setBackgroundColor") {
		return s
	}
	s.dev.Uniform4f(s.id, s.locations.lookup(uniformBackgroundColor), c)
	return s
}

// SetColor sets the color where the coverage is one. White by default.
func (s *Vector[M]) SetColor(c Color4) *Vector[M] {
	if !s.immediate("setColor") {
		return s
	}
	s.dev.Uniform4f(s.id, s.locations.lookup(uniformColor), c)
	return s
}

// SetDrawOffset selects the slot of the per-draw buffers the next Draw
// reads, or the first slot of a DrawMulti. It must be less than DrawCount.
func (s *Vector[M]) SetDrawOffset(offset uint32) *Vector[M] {
	const op = "setDrawOffset"
	if !s.buffered(op) {
		return s
	}
	if offset >= s.drawCount {
		s.diag.report(op, "draw offset %d is out of bounds for %d draws", offset, s.drawCount)
		return s
	}
	s.drawOffset = offset
	s.dev.Uniform1ui(s.id, s.locations.lookup(uniformDrawOffset), offset)
	return s
}

// BindVectorTexture binds the coverage texture. Only its first channel is
// read.
func (s *Vector[M]) BindVectorTexture(t Texture) *Vector[M] {
	if !s.hasProgram("bindVectorTexture") {
		return s
	}
	s.dev.BindTexture(VectorTextureUnit, t.ID())
	return s
}
