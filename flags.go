package shaders

import (
	"fmt"
	"strings"
)

// Flag selects an optional feature of a vector shader. Flags are fixed at
// construction and change both the generated shader source and which
// setters and binders the instance accepts.
type Flag uint8

// Flags is a set of Flag values.
type Flags = Flag

const (
	// TextureTransformation enables a texture coordinate transformation,
	// set with SetTextureMatrix or BindTextureTransformationBuffer.
	TextureTransformation Flag = 1 << 0

	// UniformBuffers switches the shader from per-call uniform uploads to
	// uniform buffer objects bound with the Bind*Buffer operations.
	UniformBuffers Flag = 1 << 1

	// MultiDraw enables DrawMulti, where each mesh view of a single
	// submission reads its own per-draw slot. It implies UniformBuffers.
	MultiDraw Flag = UniformBuffers | 1<<2
)

// Has reports whether all bits of flag are set.
func (f Flag) Has(flag Flag) bool {
	return f&flag == flag
}

var flagNames = []struct {
	flag Flag
	name string
}{
	// MultiDraw is a superset of UniformBuffers, so it is matched first.
	{TextureTransformation, "TextureTransformation"},
	{MultiDraw, "MultiDraw"},
	{UniformBuffers, "UniformBuffers"},
}

// String returns the flag names joined with "|", for example
// "TextureTransformation|MultiDraw". An empty set prints as "Flags{}".
func (f Flag) String() string {
	if f == 0 {
		return "Flags{}"
	}
	var parts []string
	rest := f
	for _, n := range flagNames {
		if rest.Has(n.flag) {
			parts = append(parts, n.name)
			rest &^= n.flag
		}
	}
	if rest != 0 {
		parts = append(parts, fmt.Sprintf("Flag(%#x)", uint8(rest)))
	}
	return strings.Join(parts, "|")
}
