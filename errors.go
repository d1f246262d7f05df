package shaders

import "errors"

var (
	// ErrInvalidConfig is returned when construction parameters are invalid,
	// for example a zero draw count with uniform buffers enabled. Nothing is
	// allocated on the GPU in that case.
	ErrInvalidConfig = errors.New("invalid shader configuration")

	// ErrUnsupported is returned when the current context lacks a feature
	// the requested configuration needs. This is an environment limitation,
	// not a usage error; probe Capabilities first to avoid it.
	ErrUnsupported = errors.New("not supported by the current context")

	// ErrCompile is returned when a shader stage fails to compile.
	ErrCompile = errors.New("shader compilation failed")

	// ErrLink is returned when the shader program fails to link.
	ErrLink = errors.New("shader program linking failed")
)
