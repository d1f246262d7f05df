/*
Package shaders provides the vector shader: a GPU program that draws meshes
textured with a single-channel coverage texture, such as a rasterized glyph
or icon, in a foreground color over a background color.

# Overview

One API covers two ways of feeding the program. In immediate mode each
uniform is uploaded per call. In uniform buffer mode the caller fills
buffers with per-draw slots, binds them once and selects the slot with a
draw offset, or lets a multi-draw submission index them.

The package drives the GPU through the Device interface. backend/opengl
implements it on OpenGL 4.1 through go-gl.

# Quick Start

Immediate mode:

	dev := opengl.NewDevice()
	shader, err := shaders.NewVector2D(dev, 0)
	if err != nil {
	    return err
	}
	defer shader.Delete()

	shader.
	    SetTransformationProjectionMatrix(shaders.Projection3(shaders.Vec2{X: 800, Y: 600})).
	    SetBackgroundColor(shaders.RGB(0x111111)).
	    SetColor(shaders.RGB(0xffff99)).
	    BindVectorTexture(texture).
	    Draw(mesh)

Uniform buffer mode with three draws sharing two materials:

	shader, err := shaders.NewVector2D(dev, shaders.UniformBuffers,
	    shaders.WithMaterialCount(2), shaders.WithDrawCount(3))

	shader.
	    BindTransformationProjectionBuffer(transforms).
	    BindDrawBuffer(draws).
	    BindMaterialBuffer(materials).
	    BindVectorTexture(texture)
	for i, view := range views {
	    shader.SetDrawOffset(uint32(i)).Draw(view)
	}

With MultiDraw the loop becomes a single shader.DrawMulti(views).

# Capabilities

The program source is generated for the current context. Probe reads the
version and extension list from Device.Info and decides which GLSL
version to target and whether attribute locations, uniform locations and
buffer bindings can be declared in the source. Anything that cannot is set
up at runtime after linking. Only UniformBuffers and MultiDraw need
context support; without it the constructors return ErrUnsupported.

# Buffer layout

The buffers follow std140. TransformationProjectionUniform2D,
TransformationProjectionUniform3D, TextureTransformationUniform,
VectorDrawUniform and VectorMaterialUniform describe one slot each, and
PackUniforms lays out an array of them. Ranges bound with the
Bind*BufferRange operations must start at a multiple of
Capabilities.UniformOffsetAlignment.

# Diagnostics

Operations that do not apply to the configuration, such as SetColor on a
uniform buffer shader or SetDrawOffset past DrawCount, do nothing but
write a single line to the diagnostics writer (os.Stderr unless replaced
with WithDiagnostics):

	Shaders::VectorGL::setDrawOffset(): draw offset 5 is out of bounds for 5 draws

Debug logging goes through log/slog; see SetVerbose and SetLogger.
*/
package shaders
