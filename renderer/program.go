package renderer

import (
	"errors"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	shader "github.com/richinsley/glcube/shader"
	translator "github.com/richinsley/glcube/translator"
)

// Stage names the step of program creation that failed.
type Stage string

const (
	StageVertex   Stage = "vertex"
	StageFragment Stage = "fragment"
	StageLink     Stage = "link"
)

func (s Stage) tag() string {
	switch s {
	case StageVertex:
		return "[VERTEX SHADER]"
	case StageFragment:
		return "[FRAGMENT SHADER]"
	case StageLink:
		return "[SHADER PROGRAM LINKER]"
	default:
		return "[" + strings.ToUpper(string(s)) + "]"
	}
}

// StageError carries the driver's info log for a failed compile or link.
type StageError struct {
	Stage Stage
	Log   string
}

func (e *StageError) Error() string {
	msg := strings.TrimSpace(strings.TrimRight(e.Log, "\x00"))
	if msg == "" {
		msg = "no info log"
	}
	return e.Stage.tag() + " " + msg
}

// ProgramError collects every stage that failed while building one program.
type ProgramError struct {
	Stages []*StageError
}

func (e *ProgramError) Error() string {
	msgs := make([]string, len(e.Stages))
	for i, se := range e.Stages {
		msgs[i] = se.Error()
	}
	return strings.Join(msgs, "\n")
}

// Unwrap exposes the individual stage errors to errors.Is and errors.As.
func (e *ProgramError) Unwrap() []error {
	errs := make([]error, len(e.Stages))
	for i, se := range e.Stages {
		errs[i] = se
	}
	return errs
}

// FailedStages lists the stages recorded in err, in the order they failed.
func FailedStages(err error) []Stage {
	var pe *ProgramError
	if errors.As(err, &pe) {
		stages := make([]Stage, len(pe.Stages))
		for i, se := range pe.Stages {
			stages[i] = se.Stage
		}
		return stages
	}
	var se *StageError
	if errors.As(err, &se) {
		return []Stage{se.Stage}
	}
	return nil
}

// Program is a linked vertex/fragment pair.
type Program struct {
	handle    uint32
	names     translator.Names
	locations map[string]int32
}

// NewProgram compiles both stages and links them. Every failing stage is
// reported in the returned *ProgramError, but the program is returned regardless so
// the caller can decide whether to keep going with it.
func NewProgram(src shader.Source, names translator.Names) (*Program, error) {
	var failed []*StageError

	vertexShader, err := compileShader(src.Vertex, gl.VERTEX_SHADER)
	if err != nil {
		failed = append(failed, err)
	}
	fragmentShader, err := compileShader(src.Fragment, gl.FRAGMENT_SHADER)
	if err != nil {
		failed = append(failed, err)
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		failed = append(failed, &StageError{Stage: StageLink, Log: log})
	}

	// Attached shaders live until the program is deleted.
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	p := &Program{
		handle:    program,
		names:     names,
		locations: make(map[string]int32),
	}
	if len(failed) > 0 {
		return p, &ProgramError{Stages: failed}
	}
	return p, nil
}

func compileShader(source string, shaderType uint32) (uint32, *StageError) {
	handle := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(handle, 1, csources, nil)
	free()
	gl.CompileShader(handle)

	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(handle, logLength, nil, gl.Str(logText))
		stage := StageVertex
		if shaderType == gl.FRAGMENT_SHADER {
			stage = StageFragment
		}
		return handle, &StageError{Stage: stage, Log: logText}
	}
	return handle, nil
}

// Use binds the program for subsequent draw calls.
func (p *Program) Use() {
	gl.UseProgram(p.handle)
}

// UniformLocation resolves name, following any rename the translator made.
// Unknown uniforms resolve to -1.
func (p *Program) UniformLocation(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.handle, gl.Str(p.names.Lookup(name)+"\x00"))
	p.locations[name] = loc
	return loc
}

// SetUniformMat4 uploads m to the named mat4 uniform. The program must be in
// use. An unknown name is a no-op.
func (p *Program) SetUniformMat4(name string, m mgl32.Mat4) {
	loc := p.UniformLocation(name)
	if loc < 0 {
		return
	}
	gl.UniformMatrix4fv(loc, 1, false, &m[0])
}

// Delete frees the program object.
func (p *Program) Delete() {
	if p.handle != 0 {
		gl.DeleteProgram(p.handle)
		p.handle = 0
	}
}
