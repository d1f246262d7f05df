// Vectordemo draws three shapes textured with a glyph using the vector
// shader, in one of its three uniform modes.
//
//	go run ./cmd/vectordemo -mode multidraw
//
// Keys 1, 2 and 3 switch between immediate, draw offset and multidraw
// mode. Escape quits.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/shaders"
	"github.com/go-theft-auto/shaders/backend/opengl"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type mode int

const (
	modeImmediate mode = iota
	modeDrawOffset
	modeMultiDraw
)

var modeNames = map[string]mode{
	"immediate": modeImmediate,
	"offset":    modeDrawOffset,
	"multidraw": modeMultiDraw,
}

func (m mode) String() string {
	for name, v := range modeNames {
		if v == m {
			return name
		}
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

func run() error {
	width := flag.Int("width", 800, "window width")
	height := flag.Int("height", 800, "window height")
	modeName := flag.String("mode", "immediate", "uniform mode: immediate, offset or multidraw")
	verbose := flag.Bool("verbose", false, "log shader construction")
	flag.Parse()

	current, ok := modeNames[*modeName]
	if !ok {
		return fmt.Errorf("unknown mode %q", *modeName)
	}
	shaders.SetVerbose(*verbose)

	ctx, err := opengl.NewContext(
		opengl.WithSize(*width, *height),
		opengl.WithTitle("vector shader"),
		opengl.WithVisible(true),
		opengl.WithVSync(true),
	)
	if err != nil {
		return err
	}
	defer ctx.Destroy()

	s, err := newScene(ctx.Device())
	if err != nil {
		return err
	}
	defer s.Delete()

	r, err := s.renderer(current)
	if err != nil {
		return err
	}
	defer func() { r.Delete() }()

	next := current
	ctx.OnKey(func(key glfw.Key, pressed bool) {
		if !pressed {
			return
		}
		switch key {
		case glfw.KeyEscape:
			ctx.Close()
		case glfw.Key1:
			next = modeImmediate
		case glfw.Key2:
			next = modeDrawOffset
		case glfw.Key3:
			next = modeMultiDraw
		}
	})

	gl.Enable(gl.CULL_FACE)
	for !ctx.ShouldClose() {
		if next != current {
			switched, err := s.renderer(next)
			switch {
			case errors.Is(err, shaders.ErrUnsupported):
				fmt.Fprintf(os.Stderr, "%v mode: %v\n", next, err)
				next = current
			case err != nil:
				return err
			default:
				r.Delete()
				r, current = switched, next
				ctx.Window().SetTitle("vector shader: " + current.String())
			}
		}

		w, h := ctx.FramebufferSize()
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		gl.Viewport(0, 0, int32(w), int32(h))
		clear := shaders.RGB(0x111111)
		gl.ClearColor(clear.R, clear.G, clear.B, clear.A)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		r.Render(float32(glfw.GetTime()))
		if err := opengl.CheckError(); err != nil {
			return err
		}
		ctx.Frame()
	}
	return nil
}
