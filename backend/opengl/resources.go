package opengl

import (
	"fmt"
	"image"
	"image/draw"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/shaders"
)

// Buffer is a GL buffer object holding uniform data.
type Buffer struct {
	id   uint32
	size int
}

// NewUniformBuffer creates a buffer filled with data, typically the output
// of shaders.PackUniforms.
func NewUniformBuffer(data []byte) *Buffer {
	b := &Buffer{}
	gl.GenBuffers(1, &b.id)
	b.SetData(data)
	return b
}

// SetData replaces the contents of the buffer.
func (b *Buffer) SetData(data []byte) {
	gl.BindBuffer(gl.UNIFORM_BUFFER, b.id)
	gl.BufferData(gl.UNIFORM_BUFFER, len(data), bytesPtr(data), gl.STATIC_DRAW)
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)
	b.size = len(data)
}

func (b *Buffer) ID() uint32 { return b.id }

// Size returns the size of the buffer in bytes.
func (b *Buffer) Size() int { return b.size }

// Delete releases the buffer.
func (b *Buffer) Delete() {
	if b.id != 0 {
		gl.DeleteBuffers(1, &b.id)
		b.id = 0
	}
}

// Texture is a single-channel 2D texture sampled by the vector shader.
type Texture struct {
	id   uint32
	size image.Point
}

// NewCoverageTexture uploads img into the red channel of an R8 texture with
// linear filtering. The top row of the image ends up at texture coordinate
// y = 1, so a mesh with texture coordinates matching its positions shows
// the image upright.
func NewCoverageTexture(img *image.Alpha) *Texture {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	// GL rows go bottom to top.
	data := make([]byte, w*h)
	for y := 0; y < h; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, b.Min.Y+y):]
		copy(data[(h-1-y)*w:(h-y)*w], row[:w])
	}

	t := &Texture{size: image.Pt(w, h)}
	gl.GenTextures(1, &t.id)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R8, int32(w), int32(h), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(data))
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return t
}

func (t *Texture) ID() uint32 { return t.id }

// Size returns the texture size in pixels.
func (t *Texture) Size() image.Point { return t.size }

// Delete releases the texture.
func (t *Texture) Delete() {
	if t.id != 0 {
		gl.DeleteTextures(1, &t.id)
		t.id = 0
	}
}

// MeshBuffer owns the vertex array and buffers of an indexed mesh whose
// vertices are a position followed by two texture coordinates.
type MeshBuffer struct {
	vao, vbo, ebo uint32
	count         int32
}

// NewMeshBuffer uploads interleaved vertices with positionSize position
// components each, and 16-bit indices. The position feeds attribute
// shaders.PositionAttribute, the texture coordinates
// shaders.TextureCoordinatesAttribute.
func NewMeshBuffer(positionSize int, vertices []float32, indices []uint16) *MeshBuffer {
	m := &MeshBuffer{count: int32(len(indices))}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*2, gl.Ptr(indices), gl.STATIC_DRAW)

	stride := int32((positionSize + 2) * 4)
	gl.VertexAttribPointerWithOffset(shaders.PositionAttribute, int32(positionSize), gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(shaders.PositionAttribute)
	gl.VertexAttribPointerWithOffset(shaders.TextureCoordinatesAttribute, 2, gl.FLOAT, false, stride, uintptr(positionSize*4))
	gl.EnableVertexAttribArray(shaders.TextureCoordinatesAttribute)

	gl.BindVertexArray(0)
	return m
}

// Mesh describes the whole index buffer. Use View on it for parts.
func (m *MeshBuffer) Mesh() shaders.Mesh {
	return shaders.Mesh{
		VAO:       m.vao,
		Primitive: shaders.Triangles,
		Count:     m.count,
		IndexType: shaders.IndexUnsignedShort,
	}
}

// Delete releases the vertex array and its buffers.
func (m *MeshBuffer) Delete() {
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	*m = MeshBuffer{}
}

// Framebuffer is an offscreen RGBA8 render target.
type Framebuffer struct {
	fbo, color uint32
	width      int
	height     int
}

// NewFramebuffer creates a framebuffer with a single color attachment.
func NewFramebuffer(width, height int) (*Framebuffer, error) {
	f := &Framebuffer{width: width, height: height}

	gl.GenRenderbuffers(1, &f.color)
	gl.BindRenderbuffer(gl.RENDERBUFFER, f.color)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.RGBA8, int32(width), int32(height))
	gl.BindRenderbuffer(gl.RENDERBUFFER, 0)

	gl.GenFramebuffers(1, &f.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, f.fbo)
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.RENDERBUFFER, f.color)
	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)

	if status != gl.FRAMEBUFFER_COMPLETE {
		f.Delete()
		return nil, fmt.Errorf("framebuffer incomplete: %#x", status)
	}
	return f, nil
}

// Bind makes the framebuffer the draw target and sets the viewport to it.
func (f *Framebuffer) Bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, f.fbo)
	gl.Viewport(0, 0, int32(f.width), int32(f.height))
}

// Clear fills the color attachment with c.
func (f *Framebuffer) Clear(c shaders.Color4) {
	f.Bind()
	gl.ClearColor(c.R, c.G, c.B, c.A)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// Read returns the color attachment with the first row at the top.
func (f *Framebuffer) Read() *image.RGBA {
	f.Bind()
	raw := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(f.width), int32(f.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(raw.Pix))
	gl.PixelStorei(gl.PACK_ALIGNMENT, 4)

	img := image.NewRGBA(raw.Bounds())
	for y := 0; y < f.height; y++ {
		src := raw.SubImage(image.Rect(0, f.height-1-y, f.width, f.height-y))
		draw.Draw(img, image.Rect(0, y, f.width, y+1), src, src.Bounds().Min, draw.Src)
	}
	return img
}

// Delete releases the framebuffer and its attachment.
func (f *Framebuffer) Delete() {
	if f.fbo != 0 {
		gl.DeleteFramebuffers(1, &f.fbo)
	}
	if f.color != 0 {
		gl.DeleteRenderbuffers(1, &f.color)
	}
	f.fbo, f.color = 0, 0
}

// bytesPtr returns a pointer to the data, or nil for an empty slice.
func bytesPtr(data []byte) unsafe.Pointer {
	if len(data) == 0 {
		return nil
	}
	return gl.Ptr(data)
}
