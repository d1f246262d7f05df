package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/shaders"
)

// Context is a GLFW window with a current OpenGL 4.1 core context.
// GLFW must be used from the main thread; call runtime.LockOSThread in the
// init function of the main package.
type Context struct {
	window *glfw.Window
	device *Device
	onKey  func(key glfw.Key, pressed bool)
}

type contextConfig struct {
	width, height int
	title         string
	visible       bool
	vsync         bool
}

// ContextOption configures NewContext.
type ContextOption func(*contextConfig)

// WithSize sets the window size in screen coordinates.
func WithSize(width, height int) ContextOption {
	return func(c *contextConfig) {
		c.width, c.height = width, height
	}
}

// WithTitle sets the window title.
func WithTitle(title string) ContextOption {
	return func(c *contextConfig) {
		c.title = title
	}
}

// WithVisible shows the window. Contexts are hidden by default, which is
// what offscreen rendering wants.
func WithVisible(visible bool) ContextOption {
	return func(c *contextConfig) {
		c.visible = visible
	}
}

// WithVSync enables swap synchronization for visible windows.
func WithVSync(vsync bool) ContextOption {
	return func(c *contextConfig) {
		c.vsync = vsync
	}
}

// NewContext initializes GLFW, opens the window, makes its context current
// and loads the GL entry points.
func NewContext(opts ...ContextOption) (*Context, error) {
	cfg := contextConfig{width: 80, height: 80, title: "shaders"}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if cfg.visible {
		glfw.WindowHint(glfw.Visible, glfw.True)
	} else {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	window, err := glfw.CreateWindow(cfg.width, cfg.height, cfg.title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	if cfg.vsync {
		glfw.SwapInterval(1)
	}

	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	c := &Context{window: window, device: NewDevice()}
	window.SetKeyCallback(c.keyCallback)

	shaders.Logger().Debug("opengl context created",
		"width", cfg.width,
		"height", cfg.height,
		"visible", cfg.visible,
	)
	return c, nil
}

// Device returns the shaders.Device bound to this context.
func (c *Context) Device() *Device { return c.device }

// Window returns the underlying GLFW window.
func (c *Context) Window() *glfw.Window { return c.window }

// OnKey registers fn to be called on key presses and releases. Repeats are
// reported as presses.
func (c *Context) OnKey(fn func(key glfw.Key, pressed bool)) {
	c.onKey = fn
}

func (c *Context) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if c.onKey == nil {
		return
	}
	switch action {
	case glfw.Press, glfw.Repeat:
		c.onKey(key, true)
	case glfw.Release:
		c.onKey(key, false)
	}
}

// ShouldClose reports whether the user asked to close the window.
func (c *Context) ShouldClose() bool { return c.window.ShouldClose() }

// Close asks the frame loop to stop.
func (c *Context) Close() { c.window.SetShouldClose(true) }

// FramebufferSize returns the window framebuffer size in pixels.
func (c *Context) FramebufferSize() (int, int) { return c.window.GetFramebufferSize() }

// Frame presents the back buffer and processes pending events.
func (c *Context) Frame() {
	c.window.SwapBuffers()
	glfw.PollEvents()
}

// Destroy closes the window and terminates GLFW.
func (c *Context) Destroy() {
	if c.window != nil {
		c.window.Destroy()
		c.window = nil
	}
	glfw.Terminate()
}
