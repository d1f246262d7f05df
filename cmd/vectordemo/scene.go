package main

import (
	"github.com/go-theft-auto/shaders"
	"github.com/go-theft-auto/shaders/backend/opengl"
	"github.com/go-theft-auto/shaders/internal/coverage"
	"github.com/go-theft-auto/shaders/internal/primitives"
)

const glyphSize = 256

var offsets = []shaders.Vec2{
	{X: -1.25, Y: -1.25},
	{X: 1.25, Y: -1.25},
	{X: 0, Y: 1.25},
}

var materials = []shaders.VectorMaterialUniform{
	{BackgroundColor: shaders.RGB(0x2f3542), Color: shaders.RGB(0xffff99)},
	{BackgroundColor: shaders.RGB(0x9999ff), Color: shaders.RGB(0x1e272e)},
}

// materialIDs assigns a material to every shape.
var materialIDs = []uint16{1, 0, 1}

// scene holds the geometry and texture shared by every mode.
type scene struct {
	dev     *opengl.Device
	mesh    *opengl.MeshBuffer
	views   []shaders.Mesh
	texture *opengl.Texture
}

func newScene(dev *opengl.Device) (*scene, error) {
	data, ranges := primitives.Concatenate(
		primitives.Circle2DSolid(48),
		primitives.SquareSolid(),
		primitives.Circle2DSolid(3),
	)
	mesh := opengl.NewMeshBuffer(2, data.Interleave(2), data.Indices)
	s := &scene{
		dev:     dev,
		mesh:    mesh,
		views:   primitives.Views(mesh.Mesh(), ranges),
		texture: opengl.NewCoverageTexture(coverage.Glyph(glyphSize)),
	}
	return s, opengl.CheckError()
}

func (s *scene) Delete() {
	s.mesh.Delete()
	s.texture.Delete()
}

// transforms places the shapes and spins them by angle.
func transforms(angle float32) []shaders.Mat3 {
	base := shaders.Projection3(shaders.Vec2{X: 2.1, Y: 2.1}).
		Mul(shaders.Scaling3(shaders.Vec2{X: 0.4, Y: 0.4}))
	out := make([]shaders.Mat3, len(offsets))
	for i, o := range offsets {
		out[i] = base.Mul(shaders.Translation3(o)).Mul(shaders.Rotation3(angle * float32(i+1) / 2))
	}
	return out
}

// renderer draws the scene in one mode.
type renderer interface {
	Render(time float32)
	Delete()
}

func (s *scene) renderer(m mode) (renderer, error) {
	if m == modeImmediate {
		r, err := s.newImmediate()
		if err != nil {
			return nil, err
		}
		return r, nil
	}
	flags := shaders.UniformBuffers
	if m == modeMultiDraw {
		flags = shaders.MultiDraw
	}
	r, err := s.newBuffered(flags)
	if err != nil {
		return nil, err
	}
	return r, nil
}

type immediateRenderer struct {
	scene  *scene
	shader *shaders.Vector2D
}

func (s *scene) newImmediate() (*immediateRenderer, error) {
	shader, err := shaders.NewVector2D(s.dev, 0)
	if err != nil {
		return nil, err
	}
	return &immediateRenderer{scene: s, shader: shader}, nil
}

func (r *immediateRenderer) Render(time float32) {
	r.shader.BindVectorTexture(r.scene.texture)
	for i, m := range transforms(time) {
		material := materials[materialIDs[i]]
		r.shader.
			SetTransformationProjectionMatrix(m).
			SetBackgroundColor(material.BackgroundColor).
			SetColor(material.Color).
			Draw(r.scene.views[i])
	}
}

func (r *immediateRenderer) Delete() { r.shader.Delete() }

type bufferedRenderer struct {
	scene      *scene
	shader     *shaders.Vector2D
	transforms *opengl.Buffer
	draws      *opengl.Buffer
	materials  *opengl.Buffer
}

func (s *scene) newBuffered(flags shaders.Flags) (*bufferedRenderer, error) {
	shader, err := shaders.NewVector2D(s.dev, flags,
		shaders.WithMaterialCount(uint32(len(materials))),
		shaders.WithDrawCount(uint32(len(offsets))))
	if err != nil {
		return nil, err
	}

	draws := make([]shaders.VectorDrawUniform, len(materialIDs))
	for i, id := range materialIDs {
		draws[i].MaterialID = id
	}
	r := &bufferedRenderer{
		scene:      s,
		shader:     shader,
		transforms: opengl.NewUniformBuffer(packTransforms(0)),
		draws:      opengl.NewUniformBuffer(shaders.PackUniforms(draws, 0)),
		materials:  opengl.NewUniformBuffer(shaders.PackUniforms(materials, 0)),
	}
	shader.
		BindTransformationProjectionBuffer(r.transforms).
		BindDrawBuffer(r.draws).
		BindMaterialBuffer(r.materials).
		BindVectorTexture(s.texture)
	return r, nil
}

func packTransforms(angle float32) []byte {
	var out []shaders.TransformationProjectionUniform2D
	for _, m := range transforms(angle) {
		out = append(out, shaders.NewTransformationProjectionUniform2D(m))
	}
	return shaders.PackUniforms(out, 0)
}

func (r *bufferedRenderer) Render(time float32) {
	r.transforms.SetData(packTransforms(time))

	if r.shader.Flags().Has(shaders.MultiDraw) {
		r.shader.SetDrawOffset(0).DrawMulti(r.scene.views)
		return
	}
	for i, view := range r.scene.views {
		r.shader.SetDrawOffset(uint32(i)).Draw(view)
	}
}

func (r *bufferedRenderer) Delete() {
	r.shader.Delete()
	r.transforms.Delete()
	r.draws.Delete()
	r.materials.Delete()
}
