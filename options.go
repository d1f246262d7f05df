package shaders

import (
	"fmt"
	"io"
	"os"
)

// Option configures a vector shader at construction.
type Option func(*config)

type config struct {
	materialCount uint32
	drawCount     uint32
	diagnostics   io.Writer
}

func defaultConfig() config {
	return config{
		materialCount: 1,
		drawCount:     1,
		diagnostics:   os.Stderr,
	}
}

// WithMaterialCount sets the size of the material uniform array. Only
// meaningful with UniformBuffers; must not be zero.
func WithMaterialCount(n uint32) Option {
	return func(c *config) { c.materialCount = n }
}

// WithDrawCount sets the size of the per-draw uniform arrays. Only
// meaningful with UniformBuffers; must not be zero.
func WithDrawCount(n uint32) Option {
	return func(c *config) { c.drawCount = n }
}

// WithDiagnostics redirects usage-error messages, os.Stderr by default.
// A nil writer discards them.
func WithDiagnostics(w io.Writer) Option {
	return func(c *config) {
		if w == nil {
			w = io.Discard
		}
		c.diagnostics = w
	}
}

// diagnosticPrefix starts every usage-error message.
const diagnosticPrefix = "Shaders::VectorGL"

// diagnostics writes one line per misuse of a shader instance.
type diagnostics struct {
	w io.Writer
}

// report writes "Shaders::VectorGL::op(): msg".
func (d diagnostics) report(op, format string, args ...any) {
	fmt.Fprintf(d.w, "%s::%s(): %s\n", diagnosticPrefix, op, fmt.Sprintf(format, args...))
}

// reportConstruction writes "Shaders::VectorGL: msg".
func (d diagnostics) reportConstruction(msg string) {
	fmt.Fprintf(d.w, "%s: %s\n", diagnosticPrefix, msg)
}
