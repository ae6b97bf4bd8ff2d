package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"runtime"

	geometry "github.com/richinsley/glcube/geometry"
	glfwcontext "github.com/richinsley/glcube/glfwcontext"
	graphics "github.com/richinsley/glcube/graphics"
	options "github.com/richinsley/glcube/options"
	renderer "github.com/richinsley/glcube/renderer"
	shader "github.com/richinsley/glcube/shader"
	translator "github.com/richinsley/glcube/translator"
)

var _ graphics.Context = (*glfwcontext.Context)(nil)

func init() {
	runtime.LockOSThread()
}

// loadShader reads, splits and, for GLSL ES files, translates the shader.
// In strict mode any failure is returned; otherwise it is logged and whatever
// source was recovered is used.
func loadShader(opts *options.ShaderOptions) (shader.Source, translator.Names, error) {
	var src shader.Source
	if *opts.ShaderPath == "" {
		src = shader.Default(*opts.ES)
	} else {
		var err error
		src, err = shader.Load(*opts.ShaderPath)
		if err != nil {
			if *opts.Strict {
				return src, nil, err
			}
			log.Printf("Warning: %v", err)
		}
	}
	if err := shader.Validate(src); err != nil {
		if *opts.Strict {
			return src, nil, err
		}
		log.Printf("Warning: %v", err)
	}

	translated, names, err := translator.Translate(context.Background(), src)
	if err != nil {
		if *opts.Strict {
			return src, nil, err
		}
		log.Printf("Warning: %v", err)
		return src, nil, nil
	}
	return translated, names, nil
}

func run(opts *options.ShaderOptions) error {
	mesh, err := geometry.ByName(*opts.Mesh)
	if err != nil {
		return err
	}

	if err := glfwcontext.InitGraphics(); err != nil {
		return err
	}
	defer glfwcontext.TerminateGraphics()

	window, err := glfwcontext.New(opts, true)
	if err != nil {
		return err
	}
	defer window.Shutdown()

	r, err := renderer.NewRenderer(window, mesh, *opts.DepthTest)
	if err != nil {
		return err
	}
	defer r.Shutdown()

	src, names, err := loadShader(opts)
	if err != nil {
		return err
	}

	program, err := renderer.NewProgram(src, names)
	if err != nil {
		for _, stage := range renderer.FailedStages(err) {
			log.Printf("Shader %s stage failed", stage)
		}
		log.Println(err)
		if *opts.Strict {
			program.Delete()
			return err
		}
	}
	r.SetProgram(program)

	log.Printf("Rendering %s...", mesh.Name)
	frames := graphics.Run(window, r.Draw)
	log.Printf("Window closed after %d frames", frames)
	return nil
}

func main() {
	opts, err := options.Parse(os.Args[0], os.Args[1:], nil)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("Invalid options: %v", err)
	}
	if *opts.Help {
		return
	}

	if err := run(opts); err != nil {
		log.Fatalf("%v", err)
	}
}
