// Package res bundles the shader files shipped with the demo.
package res

import _ "embed"

// BasicShader is res/shaders/basic.shader, used when no shader path is given.
//
//go:embed shaders/basic.shader
var BasicShader string

// BasicShaderES is the GLSL ES 3.00 flavour of BasicShader.
//
//go:embed shaders/basic_es.shader
var BasicShaderES string
