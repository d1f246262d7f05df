package shaders

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a parsed GL or GL ES context version.
type Version struct {
	Major, Minor int
	ES           bool
}

// AtLeast reports whether v is major.minor or newer.
func (v Version) AtLeast(major, minor int) bool {
	return v.Major > major || (v.Major == major && v.Minor >= minor)
}

func (v Version) String() string {
	if v.ES {
		return fmt.Sprintf("OpenGL ES %d.%d", v.Major, v.Minor)
	}
	return fmt.Sprintf("OpenGL %d.%d", v.Major, v.Minor)
}

// ParseVersion parses a GL_VERSION string. Desktop strings start with the
// version ("4.6 (Core Profile) Mesa 24.0.5", "3.3.0 NVIDIA 535.54"), ES
// strings with "OpenGL ES" ("OpenGL ES 3.0 (WebGL 2.0)"). An unparseable
// string yields the zero Version.
func ParseVersion(s string) Version {
	var v Version
	s = strings.TrimSpace(s)
	if rest, ok := strings.CutPrefix(s, "OpenGL ES"); ok {
		v.ES = true
		// "OpenGL ES-CM 1.1" and friends
		if i := strings.IndexByte(rest, ' '); i >= 0 {
			rest = rest[i+1:]
		}
		s = rest
	}
	if i := strings.IndexByte(s, ' '); i >= 0 {
		s = s[:i]
	}
	parts := strings.SplitN(s, ".", 3)
	if len(parts) < 2 {
		return Version{}
	}
	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return Version{}
	}
	minor, err := strconv.Atoi(parts[1])
	if err != nil {
		return Version{}
	}
	v.Major, v.Minor = major, minor
	return v
}

// Capabilities are the features of the current context that decide how a
// shader variant is built. Missing features degrade to runtime location
// resolution; only UniformBuffers and MultiDraw gate construction.
type Capabilities struct {
	Version Version

	// GLSLVersion is the shading language version used in the #version
	// directive, for example 330 or 300 (ES). Zero if the context is too
	// old for this shader.
	GLSLVersion int

	// ExplicitAttribLocation allows layout(location) on vertex inputs and
	// fragment outputs.
	ExplicitAttribLocation bool

	// ExplicitUniformLocation allows layout(location) on uniforms.
	ExplicitUniformLocation bool

	// ExplicitBinding allows layout(binding) on uniform blocks and samplers.
	ExplicitBinding bool

	// UniformBuffers reports uniform buffer object support.
	UniformBuffers bool

	// MultiDraw reports that the shader can read the draw index of a
	// multi-draw call.
	MultiDraw bool

	// UniformOffsetAlignment is the required alignment of offsets passed to
	// the Bind*BufferRange operations.
	UniformOffsetAlignment int

	// extensions are the #extension directives needed for features that
	// come from an extension rather than the core version.
	extensions []string

	// drawIDBuiltin is the GLSL name of the draw index builtin and
	// drawIDExtension the directive enabling it, if any. Only the vertex
	// stage of multidraw variants uses them.
	drawIDBuiltin   string
	drawIDExtension string
}

// Probe derives Capabilities from the context description. It has no side
// effects and never fails; an unknown version disables every feature.
func Probe(info DeviceInfo) Capabilities {
	v := ParseVersion(info.Version)
	c := Capabilities{Version: v, GLSLVersion: glslVersion(v)}

	has := func(name string) bool {
		for _, e := range info.Extensions {
			if e == name {
				return true
			}
		}
		return false
	}
	// feature enables a capability either through the core version or
	// through an extension, remembering the directive the source needs.
	feature := func(core bool, ext string) bool {
		if core {
			return true
		}
		if ext != "" && has(ext) {
			c.extensions = append(c.extensions, ext)
			return true
		}
		return false
	}

	if c.GLSLVersion == 0 {
		return c
	}

	if v.ES {
		c.ExplicitAttribLocation = true
		c.UniformBuffers = true
		c.ExplicitUniformLocation = v.AtLeast(3, 1)
		c.ExplicitBinding = v.AtLeast(3, 1)
		// WebGL exposes the builtin through the ANGLE directive.
		if has("GL_ANGLE_multi_draw") || has("GL_WEBGL_multi_draw") {
			c.MultiDraw = true
			c.drawIDBuiltin = "gl_DrawID"
			c.drawIDExtension = "GL_ANGLE_multi_draw"
		}
	} else {
		c.ExplicitAttribLocation = feature(v.AtLeast(3, 3), "GL_ARB_explicit_attrib_location")
		c.UniformBuffers = feature(v.AtLeast(3, 1), "GL_ARB_uniform_buffer_object")
		c.ExplicitBinding = feature(v.AtLeast(4, 2), "GL_ARB_shading_language_420pack")
		c.ExplicitUniformLocation = feature(v.AtLeast(4, 3), "GL_ARB_explicit_uniform_location")
		switch {
		case v.AtLeast(4, 6):
			c.MultiDraw = true
			c.drawIDBuiltin = "gl_DrawID"
		case has("GL_ARB_shader_draw_parameters"):
			c.MultiDraw = true
			c.drawIDBuiltin = "gl_DrawIDARB"
			c.drawIDExtension = "GL_ARB_shader_draw_parameters"
		}
	}

	if c.UniformBuffers {
		c.UniformOffsetAlignment = max(info.UniformBufferOffsetAlignment, 1)
	}
	return c
}

// glslVersion maps a context version to the matching #version number.
func glslVersion(v Version) int {
	if v.ES {
		if v.Major == 3 {
			return 300 + v.Minor*10
		}
		if v.Major > 3 {
			return 320
		}
		return 0
	}
	switch {
	case v.AtLeast(3, 3):
		return v.Major*100 + v.Minor*10
	case v.AtLeast(3, 2):
		return 150
	case v.AtLeast(3, 1):
		return 140
	case v.AtLeast(3, 0):
		return 130
	default:
		return 0
	}
}

// versionDirective returns the #version line for the probed context.
func (c Capabilities) versionDirective() string {
	switch {
	case c.Version.ES:
		return fmt.Sprintf("#version %d es\n", c.GLSLVersion)
	case c.GLSLVersion >= 150:
		return fmt.Sprintf("#version %d core\n", c.GLSLVersion)
	default:
		return fmt.Sprintf("#version %d\n", c.GLSLVersion)
	}
}

// AlignUniformOffset rounds n up to the uniform buffer offset alignment. Use
// it as the stride of per-draw arrays that are bound with an offset.
func (c Capabilities) AlignUniformOffset(n int) int {
	a := max(c.UniformOffsetAlignment, 1)
	return (n + a - 1) / a * a
}
