package shaders

import "fmt"

// uniform names a non-block uniform of the vector shader.
type uniform int

const (
	uniformTransformationProjectionMatrix uniform = iota
	uniformTextureMatrix
	uniformBackgroundColor
	uniformColor
	uniformDrawOffset
	uniformCount
)

var uniformNames = [uniformCount]string{
	uniformTransformationProjectionMatrix: "transformationProjectionMatrix",
	uniformTextureMatrix:                  "textureMatrix",
	uniformBackgroundColor:                "backgroundColor",
	uniformColor:                          "color",
	uniformDrawOffset:                     "drawOffset",
}

var explicitLocations = [uniformCount]int32{
	uniformTransformationProjectionMatrix: transformationProjectionMatrixLocation,
	uniformTextureMatrix:                  textureMatrixLocation,
	uniformBackgroundColor:                backgroundColorLocation,
	uniformColor:                          colorLocation,
	uniformDrawOffset:                     drawOffsetLocation,
}

// uniformLocations holds locations queried after linking. A nil table means
// the shader declares explicit locations.
type uniformLocations [uniformCount]int32

// lookup is the only way locations are read.
func (l *uniformLocations) lookup(u uniform) int32 {
	if l == nil {
		return explicitLocations[u]
	}
	return l[u]
}

// uniform block names and their binding points
var uniformBlocks = []struct {
	name    string
	binding uint32
	flag    Flag
}{
	{"TransformationProjection", TransformationProjectionBufferBinding, UniformBuffers},
	{"Draw", DrawBufferBinding, UniformBuffers},
	{"TextureTransformation", TextureTransformationBufferBinding, UniformBuffers | TextureTransformation},
	{"Material", MaterialBufferBinding, UniformBuffers},
}

// program is a linked vector shader program.
type program struct {
	id        uint32
	locations *uniformLocations
}

// buildProgram compiles both stages of the variant, links them and performs
// whatever location and binding setup the context could not express in the
// source. On error nothing is left allocated.
func buildProgram(dev Device, caps Capabilities, v variant) (program, error) {
	log := Logger()

	vert, err := compileStage(dev, caps, v, StageVertex)
	if err != nil {
		return program{}, err
	}
	defer dev.DeleteShader(vert)

	frag, err := compileStage(dev, caps, v, StageFragment)
	if err != nil {
		return program{}, err
	}
	defer dev.DeleteShader(frag)

	id := dev.CreateProgram(vert, frag)

	if !caps.ExplicitAttribLocation {
		dev.BindAttribLocation(id, PositionAttribute, "position")
		dev.BindAttribLocation(id, TextureCoordinatesAttribute, "textureCoordinates")
		dev.BindFragDataLocation(id, ColorOutput, "fragmentColor")
	}

	if err := dev.LinkProgram(id); err != nil {
		dev.DeleteProgram(id)
		return program{}, fmt.Errorf("vector shader %v: %w: %w", v, ErrLink, err)
	}

	p := program{id: id}
	if !caps.ExplicitUniformLocation {
		p.locations = resolveLocations(dev, id, v.flags)
		log.Debug("resolved uniform locations", "program", id, "locations", p.locations[:])
	}
	if !caps.ExplicitBinding {
		bindBlocks(dev, id, v.flags)
	}
	return p, nil
}

func compileStage(dev Device, caps Capabilities, v variant, stage Stage) (uint32, error) {
	id, err := dev.CompileShader(stage, v.sources(caps, stage))
	if err != nil {
		return 0, fmt.Errorf("vector shader %v: %s stage: %w: %w", v, stage, ErrCompile, err)
	}
	return id, nil
}

// resolveLocations queries the locations of the uniforms the variant
// declares. Undeclared ones stay -1, which uploads ignore.
func resolveLocations(dev Device, id uint32, flags Flags) *uniformLocations {
	l := new(uniformLocations)
	for i := range l {
		l[i] = -1
	}
	query := func(u uniform) {
		l[u] = dev.UniformLocation(id, uniformNames[u])
	}
	if flags.Has(UniformBuffers) {
		query(uniformDrawOffset)
		return l
	}
	query(uniformTransformationProjectionMatrix)
	if flags.Has(TextureTransformation) {
		query(uniformTextureMatrix)
	}
	query(uniformBackgroundColor)
	query(uniformColor)
	return l
}

// bindBlocks assigns the binding points of uniform blocks and the texture
// unit of the sampler at runtime.
func bindBlocks(dev Device, id uint32, flags Flags) {
	for _, b := range uniformBlocks {
		if !flags.Has(b.flag) {
			continue
		}
		index := dev.UniformBlockIndex(id, b.name)
		if index == InvalidIndex {
			Logger().Warn("uniform block not active", "program", id, "block", b.name)
			continue
		}
		dev.UniformBlockBinding(id, index, b.binding)
	}
	dev.Uniform1i(id, dev.UniformLocation(id, "vectorTexture"), VectorTextureUnit)
}
