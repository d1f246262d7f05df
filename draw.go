package shaders

// bufferSlot is a set of uniform buffer binding points bound on a shader.
type bufferSlot uint8

const (
	slotTransformationProjection bufferSlot = 1 << iota
	slotDraw
	slotTextureTransformation
	slotMaterial
)

var slotInfo = []struct {
	slot    bufferSlot
	binding uint32
	name    string
}{
	{slotTransformationProjection, TransformationProjectionBufferBinding, "transformation and projection"},
	{slotDraw, DrawBufferBinding, "draw"},
	{slotTextureTransformation, TextureTransformationBufferBinding, "texture transformation"},
	{slotMaterial, MaterialBufferBinding, "material"},
}

func (b bufferSlot) binding() uint32 {
	for _, info := range slotInfo {
		if info.slot == b {
			return info.binding
		}
	}
	return 0
}

// required returns the slots a draw of the shader reads.
func (s *Vector[M]) required() bufferSlot {
	r := slotTransformationProjection | slotDraw | slotMaterial
	if s.flags.Has(TextureTransformation) {
		r |= slotTextureTransformation
	}
	return r
}

func (s *Vector[M]) bindBuffer(op string, slot bufferSlot, b Buffer) *Vector[M] {
	if !s.buffered(op) {
		return s
	}
	if slot == slotTextureTransformation && !s.textureTransformation(op) {
		return s
	}
	s.dev.BindUniformBuffer(slot.binding(), b.ID())
	s.bound |= slot
	return s
}

func (s *Vector[M]) bindBufferRange(op string, slot bufferSlot, b Buffer, offset, size int) *Vector[M] {
	if !s.buffered(op) {
		return s
	}
	if slot == slotTextureTransformation && !s.textureTransformation(op) {
		return s
	}
	if offset < 0 || size <= 0 {
		s.diag.report(op, "invalid range of %d bytes at offset %d", size, offset)
		return s
	}
	if a := max(s.alignment, 1); offset%a != 0 {
		s.diag.report(op, "offset %d is not aligned to %d bytes", offset, a)
		return s
	}
	s.dev.BindUniformBufferRange(slot.binding(), b.ID(), offset, size)
	s.bound |= slot
	return s
}

// BindTransformationProjectionBuffer binds a buffer of DrawCount
// TransformationProjectionUniform2D or TransformationProjectionUniform3D
// slots.
func (s *Vector[M]) BindTransformationProjectionBuffer(b Buffer) *Vector[M] {
	return s.bindBuffer("bindTransformationProjectionBuffer", slotTransformationProjection, b)
}

// BindTransformationProjectionBufferRange binds size bytes of b at offset.
func (s *Vector[M]) BindTransformationProjectionBufferRange(b Buffer, offset, size int) *Vector[M] {
	return s.bindBufferRange("bindTransformationProjectionBuffer", slotTransformationProjection, b, offset, size)
}

// BindDrawBuffer binds a buffer of DrawCount VectorDrawUniform slots.
func (s *Vector[M]) BindDrawBuffer(b Buffer) *Vector[M] {
	return s.bindBuffer("bindDrawBuffer", slotDraw, b)
}

// BindDrawBufferRange binds size bytes of b at offset.
func (s *Vector[M]) BindDrawBufferRange(b Buffer, offset, size int) *Vector[M] {
	return s.bindBufferRange("bindDrawBuffer", slotDraw, b, offset, size)
}

// BindTextureTransformationBuffer binds a buffer of DrawCount
// TextureTransformationUniform slots. Needs TextureTransformation.
func (s *Vector[M]) BindTextureTransformationBuffer(b Buffer) *Vector[M] {
	return s.bindBuffer("bindTextureTransformationBuffer", slotTextureTransformation, b)
}

// BindTextureTransformationBufferRange binds size bytes of b at offset.
func (s *Vector[M]) BindTextureTransformationBufferRange(b Buffer, offset, size int) *Vector[M] {
	return s.bindBufferRange("bindTextureTransformationBuffer", slotTextureTransformation, b, offset, size)
}

// BindMaterialBuffer binds a buffer of MaterialCount VectorMaterialUniform
// slots.
func (s *Vector[M]) BindMaterialBuffer(b Buffer) *Vector[M] {
	return s.bindBuffer("bindMaterialBuffer", slotMaterial, b)
}

// BindMaterialBufferRange binds size bytes of b at offset.
func (s *Vector[M]) BindMaterialBufferRange(b Buffer, offset, size int) *Vector[M] {
	return s.bindBufferRange("bindMaterialBuffer", slotMaterial, b, offset, size)
}

// drawable checks the buffer slots a draw needs.
func (s *Vector[M]) drawable(op string) bool {
	if !s.hasProgram(op) {
		return false
	}
	if !s.flags.Has(UniformBuffers) {
		return true
	}
	missing := s.required() &^ s.bound
	for _, info := range slotInfo {
		if missing&info.slot != 0 {
			s.diag.report(op, "the %s buffer is not bound", info.name)
			return false
		}
	}
	return true
}

// Draw draws mesh. With UniformBuffers it reads the slot selected by
// SetDrawOffset.
func (s *Vector[M]) Draw(mesh Mesh) *Vector[M] {
	if !s.drawable("draw") {
		return s
	}
	s.dev.Draw(s.id, mesh)
	return s
}

// DrawMulti draws views of a single mesh in one submission. The view at
// index i reads the per-draw slot DrawOffset()+i. Needs MultiDraw.
func (s *Vector[M]) DrawMulti(meshes []Mesh) *Vector[M] {
	const op = "draw"
	if !s.hasProgram(op) {
		return s
	}
	if !s.flags.Has(MultiDraw) {
		s.diag.report(op, "the shader was not created with multidraw enabled")
		return s
	}
	if len(meshes) == 0 {
		return s
	}
	for _, m := range meshes[1:] {
		if !m.sameSource(meshes[0]) {
			s.diag.report(op, "all meshes must be views of the same original mesh")
			return s
		}
	}
	if end := uint64(s.drawOffset) + uint64(len(meshes)); end > uint64(s.drawCount) {
		s.diag.report(op, "draw offset %d and %d draws are out of bounds for %d draws", s.drawOffset, len(meshes), s.drawCount)
		return s
	}
	if !s.drawable(op) {
		return s
	}
	s.dev.MultiDraw(s.id, meshes)
	return s
}
