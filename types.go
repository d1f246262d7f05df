package shaders

import (
	"image/color"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Vec2 represents a 2D vector for positions and texture coordinates.
type Vec2 struct {
	X, Y float32
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Vec3 represents a 3D vector.
type Vec3 struct {
	X, Y, Z float32
}

// Add returns the sum of two vectors.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

// Mul returns the vector scaled by a scalar.
func (v Vec3) Mul(s float32) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Deg converts degrees to radians.
func Deg(degrees float32) float32 {
	return mgl32.DegToRad(degrees)
}

// Mat3 is a column-major 3x3 matrix, used for 2D transformations and
// texture coordinate transformations.
type Mat3 mgl32.Mat3

// Identity3 returns the 3x3 identity matrix.
func Identity3() Mat3 {
	return Mat3(mgl32.Ident3())
}

// Translation3 returns a 2D translation matrix.
func Translation3(v Vec2) Mat3 {
	return Mat3(mgl32.Translate2D(v.X, v.Y))
}

// Scaling3 returns a 2D scaling matrix.
func Scaling3(v Vec2) Mat3 {
	return Mat3(mgl32.Scale2D(v.X, v.Y))
}

// Rotation3 returns a counterclockwise 2D rotation matrix.
func Rotation3(radians float32) Mat3 {
	return Mat3(mgl32.HomogRotate2D(radians))
}

// Projection3 returns a 2D projection matrix mapping a rectangle of the
// given size centered at the origin to normalized device coordinates.
func Projection3(size Vec2) Mat3 {
	return Scaling3(Vec2{X: 2 / size.X, Y: 2 / size.Y})
}

// Mul returns m*n.
func (m Mat3) Mul(n Mat3) Mat3 {
	return Mat3(mgl32.Mat3(m).Mul3(mgl32.Mat3(n)))
}

// TransformPoint applies m to a 2D point.
func (m Mat3) TransformPoint(p Vec2) Vec2 {
	v := mgl32.Mat3(m).Mul3x1(mgl32.Vec3{p.X, p.Y, 1})
	return Vec2{X: v.X(), Y: v.Y()}
}

// Mat4 is a column-major 4x4 matrix, used for 3D transformations.
type Mat4 mgl32.Mat4

// Identity4 returns the 4x4 identity matrix.
func Identity4() Mat4 {
	return Mat4(mgl32.Ident4())
}

// Translation4 returns a 3D translation matrix.
func Translation4(v Vec3) Mat4 {
	return Mat4(mgl32.Translate3D(v.X, v.Y, v.Z))
}

// Scaling4 returns a 3D scaling matrix.
func Scaling4(v Vec3) Mat4 {
	return Mat4(mgl32.Scale3D(v.X, v.Y, v.Z))
}

// RotationX4 returns a rotation around the X axis.
func RotationX4(radians float32) Mat4 {
	return Mat4(mgl32.HomogRotate3DX(radians))
}

// RotationY4 returns a rotation around the Y axis.
func RotationY4(radians float32) Mat4 {
	return Mat4(mgl32.HomogRotate3DY(radians))
}

// RotationZ4 returns a rotation around the Z axis.
func RotationZ4(radians float32) Mat4 {
	return Mat4(mgl32.HomogRotate3DZ(radians))
}

// Perspective4 returns a perspective projection with the given vertical
// field of view, aspect ratio and clip planes.
func Perspective4(fovY, aspect, near, far float32) Mat4 {
	return Mat4(mgl32.Perspective(fovY, aspect, near, far))
}

// Mul returns m*n.
func (m Mat4) Mul(n Mat4) Mat4 {
	return Mat4(mgl32.Mat4(m).Mul4(mgl32.Mat4(n)))
}

// TransformPoint applies m to a 3D point, including the perspective divide.
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	v := mgl32.Mat4(m).Mul4x1(mgl32.Vec4{p.X, p.Y, p.Z, 1})
	if v.W() == 0 {
		return Vec3{X: v.X(), Y: v.Y(), Z: v.Z()}
	}
	v = v.Mul(1 / v.W())
	return Vec3{X: v.X(), Y: v.Y(), Z: v.Z()}
}

// Color4 is a linear RGBA color with float components in 0..1.
type Color4 struct {
	R, G, B, A float32
}

// RGB creates an opaque color from a 0xRRGGBB literal.
func RGB(hex uint32) Color4 {
	return Color4{
		R: float32(hex>>16&0xff) / 255,
		G: float32(hex>>8&0xff) / 255,
		B: float32(hex&0xff) / 255,
		A: 1,
	}
}

// RGBA creates a color from a 0xRRGGBBAA literal.
func RGBA(hex uint32) Color4 {
	return Color4{
		R: float32(hex>>24&0xff) / 255,
		G: float32(hex>>16&0xff) / 255,
		B: float32(hex>>8&0xff) / 255,
		A: float32(hex&0xff) / 255,
	}
}

// Lerp linearly interpolates between c and other, the same way the fragment
// shader mixes the background and foreground color.
func (c Color4) Lerp(other Color4, t float32) Color4 {
	return Color4{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// NRGBA converts the color to 8-bit components, rounding to nearest.
func (c Color4) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: unorm8(c.R),
		G: unorm8(c.G),
		B: unorm8(c.B),
		A: unorm8(c.A),
	}
}

func unorm8(v float32) uint8 {
	return uint8(math32.Floor(clampf(v, 0, 1)*255 + 0.5))
}

// clampf clamps a float32 value to a range.
func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
