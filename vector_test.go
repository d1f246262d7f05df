package shaders_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/shaders"
)

func newShader(t *testing.T, info shaders.DeviceInfo, flags shaders.Flags, opts ...shaders.Option) (*shaders.Vector2D, *fakeDevice, *bytes.Buffer) {
	t.Helper()
	dev := newFakeDevice(info)
	var diag bytes.Buffer
	s, err := shaders.NewVector2D(dev, flags, append(opts, shaders.WithDiagnostics(&diag))...)
	require.NoError(t, err)
	require.NotNil(t, s)
	return s, dev, &diag
}

var quad = shaders.Mesh{VAO: 7, Primitive: shaders.Triangles, Count: 6, IndexType: shaders.IndexUnsignedShort}

func TestNewVectorConfiguration(t *testing.T) {
	tests := []struct {
		name          string
		flags         shaders.Flags
		materialCount uint32
		drawCount     uint32
	}{
		{"default", 0, 1, 1},
		{"texture transformation", shaders.TextureTransformation, 1, 1},
		{"uniform buffers", shaders.UniformBuffers, 1, 1},
		{"uniform buffers with texture transformation", shaders.UniformBuffers | shaders.TextureTransformation, 1, 1},
		{"multiple materials", shaders.UniformBuffers, 15, 1},
		{"multiple draws", shaders.UniformBuffers, 1, 42},
		{"multidraw", shaders.MultiDraw, 15, 42},
		{"multidraw with texture transformation", shaders.MultiDraw | shaders.TextureTransformation, 2, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name+"/2D", func(t *testing.T) {
			s, _, diag := newShader(t, gl46, tt.flags,
				shaders.WithMaterialCount(tt.materialCount), shaders.WithDrawCount(tt.drawCount))

			assert.NotZero(t, s.ID())
			assert.Equal(t, tt.flags, s.Flags())
			assert.Equal(t, tt.materialCount, s.MaterialCount())
			assert.Equal(t, tt.drawCount, s.DrawCount())
			assert.Equal(t, 2, s.Dimensions())
			assert.Empty(t, diag.String())

			ok, _ := s.Validate()
			assert.True(t, ok)
		})
		t.Run(tt.name+"/3D", func(t *testing.T) {
			dev := newFakeDevice(gl46)
			s, err := shaders.NewVector3D(dev, tt.flags,
				shaders.WithMaterialCount(tt.materialCount), shaders.WithDrawCount(tt.drawCount))
			require.NoError(t, err)

			assert.NotZero(t, s.ID())
			assert.Equal(t, tt.flags, s.Flags())
			assert.Equal(t, tt.materialCount, s.MaterialCount())
			assert.Equal(t, tt.drawCount, s.DrawCount())
			assert.Equal(t, 3, s.Dimensions())
		})
	}
}

func TestNewVectorZeroCount(t *testing.T) {
	tests := []struct {
		name string
		opts []shaders.Option
		want string
	}{
		{"draw", []shaders.Option{shaders.WithDrawCount(0)}, "Shaders::VectorGL: draw count can't be zero\n"},
		{"material", []shaders.Option{shaders.WithMaterialCount(0)}, "Shaders::VectorGL: material count can't be zero\n"},
		{"both", []shaders.Option{shaders.WithMaterialCount(0), shaders.WithDrawCount(0)}, "Shaders::VectorGL: material count can't be zero\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev := newFakeDevice(gl46)
			var diag bytes.Buffer
			s, err := shaders.NewVector2D(dev, shaders.UniformBuffers, append(tt.opts, shaders.WithDiagnostics(&diag))...)

			require.ErrorIs(t, err, shaders.ErrInvalidConfig)
			assert.Nil(t, s)
			assert.Equal(t, tt.want, diag.String())
			assert.Empty(t, dev.calls, "nothing may reach the device")
		})
	}
}

func TestNewVectorZeroCountWithoutUniformBuffers(t *testing.T) {
	s, _, diag := newShader(t, gl46, 0, shaders.WithDrawCount(0), shaders.WithMaterialCount(0))
	assert.Zero(t, s.DrawCount())
	assert.Zero(t, s.MaterialCount())
	assert.Empty(t, diag.String())
}

func TestNewVectorUnsupported(t *testing.T) {
	tests := []struct {
		name  string
		info  shaders.DeviceInfo
		flags shaders.Flags
	}{
		{"uniform buffers on 3.0", gl30, shaders.UniformBuffers},
		{"multidraw on 3.3", gl33, shaders.MultiDraw},
		{"multidraw on ES 3.0", es30, shaders.MultiDraw},
		{"legacy context", shaders.DeviceInfo{Version: "2.1 Mesa 24.0.5"}, 0},
		{"ES 2.0", shaders.DeviceInfo{Version: "OpenGL ES 2.0 (WebGL 1.0)"}, 0},
		{"unknown version", shaders.DeviceInfo{Version: "garbage"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev := newFakeDevice(tt.info)
			s, err := shaders.NewVector2D(dev, tt.flags)

			require.ErrorIs(t, err, shaders.ErrUnsupported)
			assert.Nil(t, s)
			assert.Equal(t, []string{"Info()"}, dev.calls)
		})
	}
}

func TestNewVectorOnOlderContexts(t *testing.T) {
	_, _, diag := newShader(t, gl30, shaders.TextureTransformation)
	assert.Empty(t, diag.String())

	_, _, diag = newShader(t, gl33, shaders.UniformBuffers|shaders.TextureTransformation)
	assert.Empty(t, diag.String())

	_, _, diag = newShader(t, shaders.DeviceInfo{
		Version:    "3.3 (Core Profile) Mesa 24.0.5",
		Extensions: []string{"GL_ARB_shader_draw_parameters"},
	}, shaders.MultiDraw)
	assert.Empty(t, diag.String())

	_, _, diag = newShader(t, shaders.DeviceInfo{
		Version:    "OpenGL ES 3.0 (WebGL 2.0)",
		Extensions: []string{"GL_WEBGL_multi_draw"},
	}, shaders.MultiDraw)
	assert.Empty(t, diag.String())
}

func TestNewVectorWebGLImmediateHasNoDrawIDExtension(t *testing.T) {
	webgl := shaders.DeviceInfo{
		Version:    "OpenGL ES 3.0 (WebGL 2.0)",
		Extensions: []string{"GL_WEBGL_multi_draw"},
	}
	const directive = "#extension GL_ANGLE_multi_draw : require"

	_, dev, _ := newShader(t, webgl, 0)
	assert.NotContains(t, dev.sources[shaders.StageVertex][0], directive)
	assert.NotContains(t, dev.sources[shaders.StageFragment][0], directive)

	_, dev, _ = newShader(t, webgl, shaders.MultiDraw)
	assert.Contains(t, dev.sources[shaders.StageVertex][0], directive)
	assert.NotContains(t, dev.sources[shaders.StageFragment][0], directive)
}

func TestNewVectorCompileError(t *testing.T) {
	dev := newFakeDevice(gl46)
	dev.compileErr[shaders.StageFragment] = errInfoLog

	s, err := shaders.NewVector2D(dev, 0)

	assert.Nil(t, s)
	require.ErrorIs(t, err, shaders.ErrCompile)
	assert.ErrorIs(t, err, errInfoLog)
	assert.Contains(t, err.Error(), "fragment stage")
	assert.Equal(t, []string{
		"Info()",
		"CompileShader(vertex)",
		"CompileShader(fragment)",
		"DeleteShader(101)",
	}, dev.calls)
}

func TestNewVectorLinkError(t *testing.T) {
	dev := newFakeDevice(gl46)
	dev.linkErr = errInfoLog

	s, err := shaders.NewVector2D(dev, shaders.UniformBuffers)

	assert.Nil(t, s)
	require.ErrorIs(t, err, shaders.ErrLink)
	assert.ErrorIs(t, err, errInfoLog)
	assert.Equal(t, []string{
		"Info()",
		"CompileShader(vertex)",
		"CompileShader(fragment)",
		"CreateProgram([101 102]) = 1",
		"LinkProgram(1)",
		"DeleteProgram(1)",
		"DeleteShader(102)",
		"DeleteShader(101)",
	}, dev.calls)
}

func TestNewVectorExplicitLocations(t *testing.T) {
	_, dev, _ := newShader(t, gl46, shaders.TextureTransformation)

	// Everything is declared in the source, nothing is set up at runtime.
	assert.Equal(t, []string{
		"Info()",
		"CompileShader(vertex)",
		"CompileShader(fragment)",
		"CreateProgram([101 102]) = 1",
		"LinkProgram(1)",
		"DeleteShader(102)",
		"DeleteShader(101)",
	}, dev.calls)
}

func TestNewVectorRuntimeLocations(t *testing.T) {
	dev := newFakeDevice(gl32)
	dev.locations = map[string]int32{
		"transformationProjectionMatrix": 5,
		"textureMatrix":                  6,
		"backgroundColor":                7,
		"color":                          8,
		"vectorTexture":                  9,
	}

	s, err := shaders.NewVector2D(dev, shaders.TextureTransformation)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Info()",
		"CompileShader(vertex)",
		"CompileShader(fragment)",
		"CreateProgram([101 102]) = 1",
		"BindAttribLocation(1, 0, position)",
		"BindAttribLocation(1, 1, textureCoordinates)",
		"BindFragDataLocation(1, 0, fragmentColor)",
		"LinkProgram(1)",
		"UniformLocation(1, transformationProjectionMatrix) = 5",
		"UniformLocation(1, textureMatrix) = 6",
		"UniformLocation(1, backgroundColor) = 7",
		"UniformLocation(1, color) = 8",
		"UniformLocation(1, vectorTexture) = 9",
		"Uniform1i(1, 9, 6)",
		"DeleteShader(102)",
		"DeleteShader(101)",
		"UniformMatrix3(1, 5, [1 0 0 0 1 0 0 0 1])",
		"UniformMatrix3(1, 6, [1 0 0 0 1 0 0 0 1])",
		"Uniform4f(1, 7, {0 0 0 0})",
		"Uniform4f(1, 8, {1 1 1 1})",
	}, dev.calls)

	dev.reset()
	s.SetColor(shaders.Color4{R: 1, G: 0.5, B: 0.25, A: 1}).
		SetBackgroundColor(shaders.Color4{A: 0.5}).
		SetTextureMatrix(shaders.Scaling3(shaders.Vec2{X: 2, Y: 2})).
		SetTransformationProjectionMatrix(shaders.Translation3(shaders.Vec2{X: 3, Y: 4}))

	assert.Equal(t, []string{
		"Uniform4f(1, 8, {1 0.5 0.25 1})",
		"Uniform4f(1, 7, {0 0 0 0.5})",
		"UniformMatrix3(1, 6, [2 0 0 0 2 0 0 0 1])",
		"UniformMatrix3(1, 5, [1 0 0 0 1 0 3 4 1])",
	}, dev.calls)
}

func TestNewVectorRuntimeBindings(t *testing.T) {
	dev := newFakeDevice(gl32)
	dev.locations = map[string]int32{"drawOffset": 4, "vectorTexture": 9}
	dev.blocks = map[string]uint32{
		"TransformationProjection": 0,
		"Draw":                     1,
		"TextureTransformation":    2,
		"Material":                 3,
	}

	s, err := shaders.NewVector2D(dev, shaders.UniformBuffers|shaders.TextureTransformation,
		shaders.WithMaterialCount(2), shaders.WithDrawCount(3))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Info()",
		"CompileShader(vertex)",
		"CompileShader(fragment)",
		"CreateProgram([101 102]) = 1",
		"BindAttribLocation(1, 0, position)",
		"BindAttribLocation(1, 1, textureCoordinates)",
		"BindFragDataLocation(1, 0, fragmentColor)",
		"LinkProgram(1)",
		"UniformLocation(1, drawOffset) = 4",
		"UniformBlockIndex(1, TransformationProjection)",
		"UniformBlockBinding(1, 0, 1)",
		"UniformBlockIndex(1, Draw)",
		"UniformBlockBinding(1, 1, 2)",
		"UniformBlockIndex(1, TextureTransformation)",
		"UniformBlockBinding(1, 2, 3)",
		"UniformBlockIndex(1, Material)",
		"UniformBlockBinding(1, 3, 4)",
		"UniformLocation(1, vectorTexture) = 9",
		"Uniform1i(1, 9, 6)",
		"DeleteShader(102)",
		"DeleteShader(101)",
	}, dev.calls)

	dev.reset()
	s.SetDrawOffset(2)
	assert.Equal(t, []string{"Uniform1ui(1, 4, 2)"}, dev.calls)
	assert.Equal(t, uint32(2), s.DrawOffset())
}

func TestNewVectorESDefaults(t *testing.T) {
	dev := newFakeDevice(es30)
	dev.locations = map[string]int32{
		"transformationProjectionMatrix": 0,
		"backgroundColor":                1,
		"color":                          2,
	}

	_, err := shaders.NewVector3D(dev, 0)
	require.NoError(t, err)

	// No uniform initializers in GLSL ES, so the defaults are uploaded.
	n := len(dev.calls)
	require.GreaterOrEqual(t, n, 3)
	assert.Equal(t, []string{
		"UniformMatrix4(1, 0, [1 0 0 0 0 1 0 0 0 0 1 0 0 0 0 1])",
		"Uniform4f(1, 1, {0 0 0 0})",
		"Uniform4f(1, 2, {1 1 1 1})",
	}, dev.calls[n-3:])
	assert.NotContains(t, dev.names(), "BindAttribLocation")
}

func TestVectorExplicitUniforms(t *testing.T) {
	s, dev, diag := newShader(t, gl46, shaders.TextureTransformation)
	dev.reset()

	s.SetTransformationProjectionMatrix(shaders.Identity3()).
		SetTextureMatrix(shaders.Identity3()).
		SetBackgroundColor(shaders.RGB(0x000000)).
		SetColor(shaders.RGB(0xffffff)).
		BindVectorTexture(object(20)).
		Draw(quad)

	assert.Equal(t, []string{
		"UniformMatrix3(1, 0, [1 0 0 0 1 0 0 0 1])",
		"UniformMatrix3(1, 1, [1 0 0 0 1 0 0 0 1])",
		"Uniform4f(1, 2, {0 0 0 1})",
		"Uniform4f(1, 3, {1 1 1 1})",
		"BindTexture(6, 20)",
		"Draw(1, vao=7 first=0 count=6)",
	}, dev.calls)
	assert.Empty(t, diag.String())
}

func TestVectorDiagnostics(t *testing.T) {
	const (
		immediate = shaders.Flags(0)
		buffers   = shaders.UniformBuffers
	)
	tests := []struct {
		name  string
		flags shaders.Flags
		call  func(s *shaders.Vector2D)
		want  string
	}{
		{
			name:  "transformation projection matrix on buffers",
			flags: buffers,
			call:  func(s *shaders.Vector2D) { s.SetTransformationProjectionMatrix(shaders.Identity3()) },
			want:  "Shaders::VectorGL::setTransformationProjectionMatrix(): the shader was created with uniform buffers enabled",
		},
		{
			name:  "texture matrix on buffers",
			flags: buffers | shaders.TextureTransformation,
			call:  func(s *shaders.Vector2D) { s.SetTextureMatrix(shaders.Identity3()) },
			want:  "Shaders::VectorGL::setTextureMatrix(): the shader was created with uniform buffers enabled",
		},
		{
			name:  "texture matrix on buffers without texture transformation",
			flags: buffers,
			call:  func(s *shaders.Vector2D) { s.SetTextureMatrix(shaders.Identity3()) },
			want:  "Shaders::VectorGL::setTextureMatrix(): the shader was created with uniform buffers enabled",
		},
		{
			name:  "texture matrix without texture transformation",
			flags: immediate,
			call:  func(s *shaders.Vector2D) { s.SetTextureMatrix(shaders.Identity3()) },
			want:  "Shaders::VectorGL::setTextureMatrix(): the shader was not created with texture transformation enabled",
		},
		{
			name:  "background color on buffers",
			flags: buffers,
			call:  func(s *shaders.Vector2D) { s.SetBackgroundColor(shaders.Color4{}) },
			want:  "Shaders::VectorGL::setBackgroundColor(): the shader was created with uniform buffers enabled",
		},
		{
			name:  "color on buffers",
			flags: buffers,
			call:  func(s *shaders.Vector2D) { s.SetColor(shaders.Color4{}) },
			want:  "Shaders::VectorGL::setColor(): the shader was created with uniform buffers enabled",
		},
		{
			name:  "transformation projection buffer on immediate",
			flags: immediate,
			call:  func(s *shaders.Vector2D) { s.BindTransformationProjectionBuffer(object(1)) },
			want:  "Shaders::VectorGL::bindTransformationProjectionBuffer(): the shader was not created with uniform buffers enabled",
		},
		{
			name:  "transformation projection buffer range on immediate",
			flags: immediate,
			call:  func(s *shaders.Vector2D) { s.BindTransformationProjectionBufferRange(object(1), 0, 16) },
			want:  "Shaders::VectorGL::bindTransformationProjectionBuffer(): the shader was not created with uniform buffers enabled",
		},
		{
			name:  "draw buffer on immediate",
			flags: immediate,
			call:  func(s *shaders.Vector2D) { s.BindDrawBuffer(object(1)) },
			want:  "Shaders::VectorGL::bindDrawBuffer(): the shader was not created with uniform buffers enabled",
		},
		{
			name:  "draw buffer range on immediate",
			flags: immediate,
			call:  func(s *shaders.Vector2D) { s.BindDrawBufferRange(object(1), 0, 16) },
			want:  "Shaders::VectorGL::bindDrawBuffer(): the shader was not created with uniform buffers enabled",
		},
		{
			name:  "texture transformation buffer on immediate",
			flags: immediate | shaders.TextureTransformation,
			call:  func(s *shaders.Vector2D) { s.BindTextureTransformationBuffer(object(1)) },
			want:  "Shaders::VectorGL::bindTextureTransformationBuffer(): the shader was not created with uniform buffers enabled",
		},
		{
			name:  "texture transformation buffer range on immediate",
			flags: immediate | shaders.TextureTransformation,
			call:  func(s *shaders.Vector2D) { s.BindTextureTransformationBufferRange(object(1), 0, 16) },
			want:  "Shaders::VectorGL::bindTextureTransformationBuffer(): the shader was not created with uniform buffers enabled",
		},
		{
			name:  "texture transformation buffer without texture transformation",
			flags: buffers,
			call:  func(s *shaders.Vector2D) { s.BindTextureTransformationBuffer(object(1)) },
			want:  "Shaders::VectorGL::bindTextureTransformationBuffer(): the shader was not created with texture transformation enabled",
		},
		{
			name:  "texture transformation buffer range without texture transformation",
			flags: buffers,
			call:  func(s *shaders.Vector2D) { s.BindTextureTransformationBufferRange(object(1), 0, 16) },
			want:  "Shaders::VectorGL::bindTextureTransformationBuffer(): the shader was not created with texture transformation enabled",
		},
		{
			name:  "material buffer on immediate",
			flags: immediate,
			call:  func(s *shaders.Vector2D) { s.BindMaterialBuffer(object(1)) },
			want:  "Shaders::VectorGL::bindMaterialBuffer(): the shader was not created with uniform buffers enabled",
		},
		{
			name:  "material buffer range on immediate",
			flags: immediate,
			call:  func(s *shaders.Vector2D) { s.BindMaterialBufferRange(object(1), 0, 16) },
			want:  "Shaders::VectorGL::bindMaterialBuffer(): the shader was not created with uniform buffers enabled",
		},
		{
			name:  "draw offset on immediate",
			flags: immediate,
			call:  func(s *shaders.Vector2D) { s.SetDrawOffset(0) },
			want:  "Shaders::VectorGL::setDrawOffset(): the shader was not created with uniform buffers enabled",
		},
		{
			name:  "draw offset out of bounds",
			flags: buffers,
			call:  func(s *shaders.Vector2D) { s.SetDrawOffset(5) },
			want:  "Shaders::VectorGL::setDrawOffset(): draw offset 5 is out of bounds for 5 draws",
		},
		{
			name:  "unaligned range",
			flags: buffers,
			call:  func(s *shaders.Vector2D) { s.BindMaterialBufferRange(object(1), 48, 48) },
			want:  "Shaders::VectorGL::bindMaterialBuffer(): offset 48 is not aligned to 256 bytes",
		},
		{
			name:  "empty range",
			flags: buffers,
			call:  func(s *shaders.Vector2D) { s.BindDrawBufferRange(object(1), 0, 0) },
			want:  "Shaders::VectorGL::bindDrawBuffer(): invalid range of 0 bytes at offset 0",
		},
		{
			name:  "draw without buffers",
			flags: buffers,
			call:  func(s *shaders.Vector2D) { s.Draw(quad) },
			want:  "Shaders::VectorGL::draw(): the transformation and projection buffer is not bound",
		},
		{
			name:  "multidraw without multidraw",
			flags: buffers,
			call:  func(s *shaders.Vector2D) { s.DrawMulti([]shaders.Mesh{quad}) },
			want:  "Shaders::VectorGL::draw(): the shader was not created with multidraw enabled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, dev, diag := newShader(t, gl46, tt.flags, shaders.WithDrawCount(5))
			dev.reset()

			tt.call(s)

			assert.Equal(t, tt.want+"\n", diag.String())
			assert.Empty(t, dev.calls, "a rejected call must not reach the device")
		})
	}
}

func TestVectorDrawRequiresBoundBuffers(t *testing.T) {
	s, dev, diag := newShader(t, gl46, shaders.UniformBuffers|shaders.TextureTransformation)

	s.BindTransformationProjectionBuffer(object(11)).
		BindDrawBuffer(object(12)).
		BindMaterialBuffer(object(13))
	dev.reset()

	s.Draw(quad)
	assert.Equal(t, "Shaders::VectorGL::draw(): the texture transformation buffer is not bound\n", diag.String())
	assert.Empty(t, dev.calls)

	diag.Reset()
	s.BindTextureTransformationBufferRange(object(14), 256, 32).Draw(quad)
	assert.Empty(t, diag.String())
	assert.Equal(t, []string{
		"BindUniformBufferRange(3, 14, 256, 32)",
		"Draw(1, vao=7 first=0 count=6)",
	}, dev.calls)
}

func TestVectorUniformBufferDraw(t *testing.T) {
	s, dev, diag := newShader(t, gl46, shaders.UniformBuffers,
		shaders.WithMaterialCount(2), shaders.WithDrawCount(3))
	dev.reset()

	s.BindTransformationProjectionBuffer(object(11)).
		BindDrawBuffer(object(12)).
		BindMaterialBufferRange(object(13), 256, 96).
		BindVectorTexture(object(20))
	for i := range uint32(3) {
		s.SetDrawOffset(i).Draw(quad.View(int(i)*2, 2))
	}

	assert.Empty(t, diag.String())
	assert.Equal(t, []string{
		"BindUniformBuffer(1, 11)",
		"BindUniformBuffer(2, 12)",
		"BindUniformBufferRange(4, 13, 256, 96)",
		"BindTexture(6, 20)",
		"Uniform1ui(1, 0, 0)",
		"Draw(1, vao=7 first=0 count=2)",
		"Uniform1ui(1, 0, 1)",
		"Draw(1, vao=7 first=2 count=2)",
		"Uniform1ui(1, 0, 2)",
		"Draw(1, vao=7 first=4 count=2)",
	}, dev.calls)
}

func TestVectorDrawOffsetUnchangedOnError(t *testing.T) {
	s, _, diag := newShader(t, gl46, shaders.UniformBuffers, shaders.WithDrawCount(5))

	s.SetDrawOffset(3).SetDrawOffset(5)

	assert.Equal(t, uint32(3), s.DrawOffset())
	assert.Equal(t, "Shaders::VectorGL::setDrawOffset(): draw offset 5 is out of bounds for 5 draws\n", diag.String())
}

func TestVectorDrawMulti(t *testing.T) {
	bind := func(s *shaders.Vector2D) {
		s.BindTransformationProjectionBuffer(object(11)).
			BindDrawBuffer(object(12)).
			BindMaterialBuffer(object(13))
	}
	views := []shaders.Mesh{quad.View(0, 2), quad.View(2, 2), quad.View(4, 2)}

	t.Run("submits once", func(t *testing.T) {
		s, dev, diag := newShader(t, gl46, shaders.MultiDraw,
			shaders.WithMaterialCount(2), shaders.WithDrawCount(3))
		bind(s)
		dev.reset()

		s.DrawMulti(views)

		assert.Empty(t, diag.String())
		assert.Equal(t, []string{"MultiDraw(1, 3)"}, dev.calls)
	})

	t.Run("empty", func(t *testing.T) {
		s, dev, diag := newShader(t, gl46, shaders.MultiDraw)
		dev.reset()

		s.DrawMulti(nil)

		assert.Empty(t, diag.String())
		assert.Empty(t, dev.calls)
	})

	t.Run("past draw count", func(t *testing.T) {
		s, dev, diag := newShader(t, gl46, shaders.MultiDraw, shaders.WithDrawCount(3))
		bind(s)
		s.SetDrawOffset(1)
		dev.reset()

		s.DrawMulti(views)

		assert.Equal(t, "Shaders::VectorGL::draw(): draw offset 1 and 3 draws are out of bounds for 3 draws\n", diag.String())
		assert.Empty(t, dev.calls)
	})

	t.Run("different meshes", func(t *testing.T) {
		s, dev, diag := newShader(t, gl46, shaders.MultiDraw, shaders.WithDrawCount(3))
		bind(s)
		dev.reset()

		other := quad
		other.VAO = 8
		s.DrawMulti([]shaders.Mesh{quad, other})

		assert.Equal(t, "Shaders::VectorGL::draw(): all meshes must be views of the same original mesh\n", diag.String())
		assert.Empty(t, dev.calls)
	})

	t.Run("unbound", func(t *testing.T) {
		s, dev, diag := newShader(t, gl46, shaders.MultiDraw, shaders.WithDrawCount(3))
		s.BindTransformationProjectionBuffer(object(11)).BindMaterialBuffer(object(13))
		dev.reset()

		s.DrawMulti(views)

		assert.Equal(t, "Shaders::VectorGL::draw(): the draw buffer is not bound\n", diag.String())
		assert.Empty(t, dev.calls)
	})
}

func TestVectorMove(t *testing.T) {
	s, dev, diag := newShader(t, gl46, shaders.UniformBuffers,
		shaders.WithMaterialCount(2), shaders.WithDrawCount(3))
	id := s.ID()

	moved := s.Move()

	assert.Equal(t, id, moved.ID())
	assert.Zero(t, s.ID())
	assert.Equal(t, shaders.UniformBuffers, moved.Flags())
	assert.Equal(t, uint32(2), moved.MaterialCount())
	assert.Equal(t, uint32(3), moved.DrawCount())

	ok, _ := s.Validate()
	assert.False(t, ok)

	dev.reset()
	s.SetDrawOffset(1)
	s.Delete()
	assert.Equal(t, "Shaders::VectorGL::setDrawOffset(): the shader has no program\n", diag.String())
	assert.Empty(t, dev.calls)

	// Move assignment deletes the destination's own program first.
	other, err := shaders.NewVector2D(dev, 0)
	require.NoError(t, err)
	otherID := other.ID()
	dev.reset()

	other.MoveFrom(moved)

	assert.Equal(t, []string{fmt.Sprintf("DeleteProgram(%d)", otherID)}, dev.calls)
	assert.Equal(t, id, other.ID())
	assert.Zero(t, moved.ID())
	assert.Equal(t, shaders.UniformBuffers, other.Flags())
	assert.Equal(t, uint32(3), other.DrawCount())

	dev.reset()
	other.Delete()
	other.Delete()
	assert.Equal(t, []string{fmt.Sprintf("DeleteProgram(%d)", id)}, dev.calls)
}

func TestVectorValidate(t *testing.T) {
	s, dev, _ := newShader(t, gl46, 0)
	dev.reset()

	ok, log := s.Validate()

	assert.True(t, ok)
	assert.Equal(t, "validated", log)
	assert.Equal(t, []string{"ValidateProgram(1)"}, dev.calls)
}
