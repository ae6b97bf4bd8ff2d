//go:build glintegration

package renderer

import (
	"os"
	"runtime"
	"testing"

	"github.com/go-gl/gl/v4.1-core/gl"
	geometry "github.com/richinsley/glcube/geometry"
	glfwcontext "github.com/richinsley/glcube/glfwcontext"
	options "github.com/richinsley/glcube/options"
	shader "github.com/richinsley/glcube/shader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests need a display and an OpenGL 4.1 driver:
//
//	go test -tags glintegration ./renderer/

func TestMain(m *testing.M) {
	runtime.LockOSThread()
	if err := glfwcontext.InitGraphics(); err != nil {
		panic(err)
	}
	code := m.Run()
	glfwcontext.TerminateGraphics()
	os.Exit(code)
}

func hiddenWindow(t *testing.T) *glfwcontext.Context {
	t.Helper()
	opts, err := options.Parse("glcube-test", []string{"-width", "64", "-height", "64"}, nil)
	require.NoError(t, err)
	ctx, err := glfwcontext.New(opts, false)
	require.NoError(t, err)
	t.Cleanup(ctx.Shutdown)
	return ctx
}

func centrePixel(ctx *glfwcontext.Context) [4]uint8 {
	width, height := ctx.GetFramebufferSize()
	var px [4]uint8
	gl.ReadPixels(int32(width/2), int32(height/2), 1, 1, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(&px[0]))
	return px
}

func TestDrawMeshes(t *testing.T) {
	for _, mesh := range []geometry.Mesh{geometry.Cube(), geometry.Triangle()} {
		t.Run(mesh.Name, func(t *testing.T) {
			ctx := hiddenWindow(t)
			r, err := NewRenderer(ctx, mesh, true)
			require.NoError(t, err)
			defer r.Shutdown()

			program, err := NewProgram(shader.Default(false), nil)
			require.NoError(t, err)
			r.SetProgram(program)
			assert.GreaterOrEqual(t, program.UniformLocation(MVPUniform), int32(0))
			assert.Equal(t, int32(-1), program.UniformLocation("u_missing"))

			gl.ClearColor(0, 0, 0, 1)
			r.Draw()
			require.Equal(t, uint32(gl.NO_ERROR), gl.GetError())

			px := centrePixel(ctx)
			assert.NotEqual(t, [3]uint8{0, 0, 0}, [3]uint8{px[0], px[1], px[2]}, "mesh not drawn at centre")
		})
	}
}

func TestNewProgramReportsStages(t *testing.T) {
	r, err := NewRenderer(hiddenWindow(t), geometry.Triangle(), false)
	require.NoError(t, err)
	defer r.Shutdown()

	program, err := NewProgram(shader.Source{Vertex: "not glsl\n", Fragment: "#version 410 core\nout vec4 c; void main() { c = vec4(1.0); }\n"}, nil)
	require.Error(t, err)
	defer program.Delete()

	stages := FailedStages(err)
	assert.Contains(t, stages, StageVertex)
	assert.NotContains(t, stages, StageFragment)
	assert.Contains(t, stages, StageLink)
}
