// Command gen renders the vector shader in each configuration offscreen,
// captures framebuffer pixels and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/shaders"
	"github.com/go-theft-auto/shaders/backend/opengl"
	"github.com/go-theft-auto/shaders/internal/coverage"
	"github.com/go-theft-auto/shaders/internal/primitives"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

const shotSize = 256

// screenshot defines a single capture.
type screenshot struct {
	name string                         // filename without extension
	draw func(dev *opengl.Device) error // issues the draws into the bound framebuffer
}

func run() error {
	ctx, err := opengl.NewContext(opengl.WithTitle("screenshot-gen"))
	if err != nil {
		return err
	}
	defer ctx.Destroy()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()
	for _, s := range shots {
		if err := capture(ctx.Device(), s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, shotSize, shotSize)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(dev *opengl.Device, s screenshot, outDir string) error {
	fb, err := opengl.NewFramebuffer(shotSize, shotSize)
	if err != nil {
		return err
	}
	defer fb.Delete()

	gl.Enable(gl.CULL_FACE)
	fb.Clear(shaders.RGB(0x111111))
	if err := s.draw(dev); err != nil {
		return err
	}
	if err := opengl.CheckError(); err != nil {
		return err
	}
	img := fb.Read()

	f, err := os.Create(filepath.Join(outDir, s.name+".jpg"))
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// drawSquare draws the glyph over the whole framebuffer.
func drawSquare(shader *shaders.Vector2D) {
	data := primitives.SquareSolid()
	mesh := opengl.NewMeshBuffer(2, data.Interleave(2), data.Indices)
	defer mesh.Delete()
	texture := opengl.NewCoverageTexture(coverage.Glyph(shotSize))
	defer texture.Delete()

	shader.BindVectorTexture(texture).Draw(mesh.Mesh())
}

func buildScreenshots() []screenshot {
	return []screenshot{
		{
			name: "defaults",
			draw: func(dev *opengl.Device) error {
				shader, err := shaders.NewVector2D(dev, 0)
				if err != nil {
					return err
				}
				defer shader.Delete()
				drawSquare(shader)
				return nil
			},
		},
		{
			name: "colored",
			draw: func(dev *opengl.Device) error {
				shader, err := shaders.NewVector2D(dev, 0)
				if err != nil {
					return err
				}
				defer shader.Delete()
				shader.
					SetBackgroundColor(shaders.RGB(0x9999ff)).
					SetColor(shaders.RGB(0xffff99))
				drawSquare(shader)
				return nil
			},
		},
		{
			name: "texture_transformation",
			draw: func(dev *opengl.Device) error {
				shader, err := shaders.NewVector2D(dev, shaders.TextureTransformation)
				if err != nil {
					return err
				}
				defer shader.Delete()
				shader.
					SetTextureMatrix(shaders.Translation3(shaders.Vec2{X: 1, Y: 1}).
						Mul(shaders.Scaling3(shaders.Vec2{X: -1, Y: -1}))).
					SetBackgroundColor(shaders.RGB(0x9999ff)).
					SetColor(shaders.RGB(0xffff99))
				drawSquare(shader)
				return nil
			},
		},
		{
			name: "draw_offset",
			draw: drawMaterials,
		},
	}
}

// drawMaterials draws three shapes from one uniform buffer shader, two of
// them sharing a material.
func drawMaterials(dev *opengl.Device) error {
	shader, err := shaders.NewVector2D(dev, shaders.UniformBuffers,
		shaders.WithMaterialCount(2), shaders.WithDrawCount(3))
	if err != nil {
		return err
	}
	defer shader.Delete()

	data, ranges := primitives.Concatenate(
		primitives.Circle2DSolid(48),
		primitives.SquareSolid(),
		primitives.Circle2DSolid(3),
	)
	mesh := opengl.NewMeshBuffer(2, data.Interleave(2), data.Indices)
	defer mesh.Delete()
	texture := opengl.NewCoverageTexture(coverage.Glyph(shotSize))
	defer texture.Delete()

	base := shaders.Projection3(shaders.Vec2{X: 2.1, Y: 2.1}).
		Mul(shaders.Scaling3(shaders.Vec2{X: 0.4, Y: 0.4}))
	var transforms []shaders.TransformationProjectionUniform2D
	for _, o := range []shaders.Vec2{{X: -1.25, Y: -1.25}, {X: 1.25, Y: -1.25}, {X: 0, Y: 1.25}} {
		transforms = append(transforms, shaders.NewTransformationProjectionUniform2D(base.Mul(shaders.Translation3(o))))
	}
	tp := opengl.NewUniformBuffer(shaders.PackUniforms(transforms, 0))
	defer tp.Delete()
	draws := opengl.NewUniformBuffer(shaders.PackUniforms([]shaders.VectorDrawUniform{
		{MaterialID: 1}, {MaterialID: 0}, {MaterialID: 1},
	}, 0))
	defer draws.Delete()
	materials := opengl.NewUniformBuffer(shaders.PackUniforms([]shaders.VectorMaterialUniform{
		{BackgroundColor: shaders.RGB(0x2f3542), Color: shaders.RGB(0xffff99)},
		{BackgroundColor: shaders.RGB(0x9999ff), Color: shaders.RGB(0x1e272e)},
	}, 0))
	defer materials.Delete()

	shader.
		BindTransformationProjectionBuffer(tp).
		BindDrawBuffer(draws).
		BindMaterialBuffer(materials).
		BindVectorTexture(texture)
	for i, view := range primitives.Views(mesh.Mesh(), ranges) {
		shader.SetDrawOffset(uint32(i)).Draw(view)
	}
	return nil
}
