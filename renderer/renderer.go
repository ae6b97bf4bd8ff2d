package renderer

import (
	"fmt"
	"log"
	"sync"

	"github.com/go-gl/gl/v4.1-core/gl"
	geometry "github.com/richinsley/glcube/geometry"
	graphics "github.com/richinsley/glcube/graphics"
)

// MVPUniform is the matrix uniform the bundled shaders read.
const MVPUniform = "u_mvp"

// Add a package-level variable to ensure gl.Init() is called only once.
var glInitOnce sync.Once

// Renderer draws one static mesh with one program into the current context.
type Renderer struct {
	context   graphics.Context
	mesh      geometry.Mesh
	program   *Program
	vao       uint32
	vbo       uint32
	ibo       uint32
	depthTest bool
	width     int
	height    int
}

// NewRenderer loads the GL entry points for ctx and uploads mesh to the GPU.
func NewRenderer(ctx graphics.Context, mesh geometry.Mesh, depthTest bool) (*Renderer, error) {
	r := &Renderer{
		context:   ctx,
		mesh:      mesh,
		depthTest: depthTest,
	}

	// Make the context current BEFORE initializing OpenGL.
	r.context.MakeCurrent()

	var initErr error
	glInitOnce.Do(func() {
		initErr = gl.Init()
	})
	if initErr != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", initErr)
	}
	log.Printf("OpenGL version %s", gl.GoStr(gl.GetString(gl.VERSION)))

	if len(mesh.Vertices) == 0 {
		return nil, fmt.Errorf("mesh %q has no vertices", mesh.Name)
	}
	r.upload()

	if depthTest {
		gl.Enable(gl.DEPTH_TEST)
	}
	return r, nil
}

func (r *Renderer) upload() {
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.mesh.Vertices)*4, gl.Ptr(r.mesh.Vertices), gl.STATIC_DRAW)
	gl.VertexAttribPointer(0, geometry.ComponentsPerVertex, gl.FLOAT, false, geometry.ComponentsPerVertex*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)

	if r.mesh.Indexed() {
		// The element buffer binding is VAO state, so it stays bound with the VAO.
		gl.GenBuffers(1, &r.ibo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ibo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(r.mesh.Indices)*4, gl.Ptr(r.mesh.Indices), gl.STATIC_DRAW)
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// SetProgram makes p the program used by Draw and binds it.
func (r *Renderer) SetProgram(p *Program) {
	r.program = p
	p.Use()
	r.width, r.height = 0, 0
}

// Draw clears the framebuffer and draws the mesh. The MVP uniform is
// recomputed whenever the framebuffer size changes.
func (r *Renderer) Draw() {
	width, height := r.context.GetFramebufferSize()
	gl.Viewport(0, 0, int32(width), int32(height))

	if r.program != nil {
		r.program.Use()
		if width != r.width || height != r.height {
			r.program.SetUniformMat4(MVPUniform, geometry.MVP(width, height))
			r.width, r.height = width, height
		}
	}

	mask := uint32(gl.COLOR_BUFFER_BIT)
	if r.depthTest {
		mask |= gl.DEPTH_BUFFER_BIT
	}
	gl.Clear(mask)

	gl.BindVertexArray(r.vao)
	count := int32(r.mesh.ElementCount())
	if r.mesh.Indexed() {
		gl.DrawElements(gl.TRIANGLES, count, gl.UNSIGNED_INT, gl.PtrOffset(0))
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, count)
	}
	gl.BindVertexArray(0)
}

// Shutdown frees the GPU objects. The window belongs to the caller.
func (r *Renderer) Shutdown() {
	if r.program != nil {
		r.program.Delete()
	}
	if r.ibo != 0 {
		gl.DeleteBuffers(1, &r.ibo)
	}
	gl.DeleteBuffers(1, &r.vbo)
	gl.DeleteVertexArrays(1, &r.vao)
}
