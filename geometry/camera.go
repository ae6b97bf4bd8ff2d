package geometry

import "github.com/go-gl/mathgl/mgl32"

const (
	fieldOfView = 60.0
	nearPlane   = 0.1
	farPlane    = 100.0
)

// Projection is a 60 degree perspective for a width x height framebuffer.
func Projection(width, height int) mgl32.Mat4 {
	if height <= 0 {
		height = 1
	}
	if width <= 0 {
		width = 1
	}
	aspect := float32(width) / float32(height)
	return mgl32.Perspective(mgl32.DegToRad(fieldOfView), aspect, nearPlane, farPlane)
}

// View looks from the origin down -Z with +Y up.
func View() mgl32.Mat4 {
	return mgl32.LookAtV(
		mgl32.Vec3{0, 0, 0},
		mgl32.Vec3{0, 0, -1},
		mgl32.Vec3{0, 1, 0},
	)
}

// Model places the mesh at (-3, 0, -3) in its own frame, then turns it 45
// degrees about Y so it lands in front of the camera.
func Model() mgl32.Mat4 {
	model := mgl32.Ident4()
	model = model.Mul4(mgl32.Scale3D(1, 1, 1))
	model = model.Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(-45)))
	model = model.Mul4(mgl32.Translate3D(-3, 0, -3))
	return model
}

// MVP is projection * view * model, ready for the u_mvp uniform.
func MVP(width, height int) mgl32.Mat4 {
	return Projection(width, height).Mul4(View()).Mul4(Model())
}
