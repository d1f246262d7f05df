package shaders

import (
	_ "embed"
	"fmt"
	"strings"
)

//go:embed glsl/generic.glsl
var genericSource string

//go:embed glsl/vector.vert
var vertexSource string

//go:embed glsl/vector.frag
var fragmentSource string

// Attribute and output locations, buffer binding points and the texture
// unit shared with glsl/generic.glsl.
const (
	PositionAttribute           = 0
	TextureCoordinatesAttribute = 1
	ColorOutput                 = 0

	TransformationProjectionBufferBinding = 1
	DrawBufferBinding                     = 2
	TextureTransformationBufferBinding    = 3
	MaterialBufferBinding                 = 4

	VectorTextureUnit = 6
)

// Explicit uniform locations. In uniform buffer mode drawOffset takes
// location 0 instead of the transformation matrix.
const (
	transformationProjectionMatrixLocation = 0
	textureMatrixLocation                  = 1
	backgroundColorLocation                = 2
	colorLocation                          = 3
	drawOffsetLocation                     = 0
)

// variant is the compile-time shape of a shader: everything that changes
// the generated source.
type variant struct {
	dimensions    int
	flags         Flags
	materialCount uint32
	drawCount     uint32
}

func (v variant) String() string {
	if v.flags.Has(UniformBuffers) {
		return fmt.Sprintf("%dD %v materials=%d draws=%d", v.dimensions, v.flags, v.materialCount, v.drawCount)
	}
	return fmt.Sprintf("%dD %v", v.dimensions, v.flags)
}

// sources returns the source fragments of one stage in the order they are
// concatenated: context header, variant defines, shared definitions, body.
func (v variant) sources(caps Capabilities, stage Stage) []string {
	body := vertexSource
	if stage == StageFragment {
		body = fragmentSource
	}
	return []string{caps.header(v.drawID(stage)), v.defines(stage), genericSource, body}
}

// drawID reports whether the stage reads the draw index builtin.
func (v variant) drawID(stage Stage) bool {
	return stage == StageVertex && v.flags.Has(MultiDraw)
}

// header returns the #version line, the required #extension directives and
// the defines describing what the context supports. The draw index
// directive and builtin are included only when drawID is set.
func (c Capabilities) header(drawID bool) string {
	var b strings.Builder
	b.WriteString(c.versionDirective())
	for _, ext := range c.extensions {
		fmt.Fprintf(&b, "#extension %s : require\n", ext)
	}
	drawID = drawID && c.MultiDraw
	if drawID && c.drawIDExtension != "" {
		fmt.Fprintf(&b, "#extension %s : require\n", c.drawIDExtension)
	}
	if c.ExplicitAttribLocation {
		b.WriteString("#define EXPLICIT_ATTRIB_LOCATION\n")
	}
	if c.ExplicitUniformLocation {
		b.WriteString("#define EXPLICIT_UNIFORM_LOCATION\n")
	}
	if c.ExplicitBinding {
		b.WriteString("#define EXPLICIT_BINDING\n")
	}
	// GLSL ES has no uniform initializers.
	if !c.Version.ES {
		b.WriteString("#define UNIFORM_INITIALIZERS\n")
	}
	if drawID {
		fmt.Fprintf(&b, "#define DRAW_ID_BUILTIN %s\n", c.drawIDBuiltin)
	}
	return b.String()
}

// defines returns the variant macros in their fixed order: texture
// transformation, dimensions (vertex stage only), uniform buffers.
func (v variant) defines(stage Stage) string {
	var b strings.Builder
	if v.flags.Has(TextureTransformation) {
		b.WriteString("#define TEXTURE_TRANSFORMATION\n")
	}
	if stage == StageVertex {
		if v.dimensions == 2 {
			b.WriteString("#define TWO_DIMENSIONS\n")
		} else {
			b.WriteString("#define THREE_DIMENSIONS\n")
		}
	}
	if v.flags.Has(UniformBuffers) {
		fmt.Fprintf(&b, "#define UNIFORM_BUFFERS\n#define DRAW_COUNT %d\n#define MATERIAL_COUNT %d\n", v.drawCount, v.materialCount)
		if v.flags.Has(MultiDraw) {
			b.WriteString("#define MULTI_DRAW\n")
		}
	}
	return b.String()
}
