package options

import (
	"flag"
	"fmt"
	"io"

	"github.com/richinsley/glcube/geometry"
)

const (
	DefaultWidth      = 1920
	DefaultHeight     = 1080
	DefaultTitle      = "Test"
	DefaultShaderPath = "res/shaders/basic.shader"
	DefaultMesh       = "cube"
)

type ShaderOptions struct {
	Width      *int
	Height     *int
	Title      *string
	ShaderPath *string // empty uses the shader built into the binary
	ES         *bool   // pick the GLSL ES flavour of the built-in shader
	Mesh       *string
	Strict     *bool // abort on shader load, compile or link failure instead of logging
	DepthTest  *bool
	Help       *bool
}

// NewFlagSet registers every option on a fresh FlagSet.
func NewFlagSet(name string) (*flag.FlagSet, *ShaderOptions) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	opts := &ShaderOptions{
		Width:      fs.Int("width", DefaultWidth, "Width of the window"),
		Height:     fs.Int("height", DefaultHeight, "Height of the window"),
		Title:      fs.String("title", DefaultTitle, "Window title"),
		ShaderPath: fs.String("shader", DefaultShaderPath, "Combined vertex/fragment shader file (empty for the built-in shader)"),
		ES:         fs.Bool("es", false, "Use the GLSL ES 3.00 built-in shader (translated at startup) instead of -shader"),
		Mesh:       fs.String("mesh", DefaultMesh, fmt.Sprintf("Mesh to draw %v", geometry.Names())),
		Strict:     fs.Bool("strict", false, "Exit when the shader fails to load, compile or link"),
		DepthTest:  fs.Bool("depth", true, "Enable depth testing"),
		Help:       fs.Bool("help", false, "Show help message"),
	}
	return fs, opts
}

// Parse reads args (without the program name) into a validated ShaderOptions.
func Parse(name string, args []string, output io.Writer) (*ShaderOptions, error) {
	fs, opts := NewFlagSet(name)
	if output != nil {
		fs.SetOutput(output)
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if *opts.ES {
		shaderSet := false
		fs.Visit(func(f *flag.Flag) {
			if f.Name == "shader" {
				shaderSet = true
			}
		})
		if shaderSet && *opts.ShaderPath != "" {
			return nil, fmt.Errorf("-es selects the built-in shader and cannot be combined with -shader %q", *opts.ShaderPath)
		}
		// The default path names the desktop shader file; -es replaces it.
		*opts.ShaderPath = ""
	}
	if *opts.Help {
		fs.PrintDefaults()
		return opts, nil
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

func (o *ShaderOptions) Validate() error {
	if *o.Width <= 0 || *o.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", *o.Width, *o.Height)
	}
	if _, err := geometry.ByName(*o.Mesh); err != nil {
		return err
	}
	return nil
}
