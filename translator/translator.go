// Package translator turns GLSL ES 3.00 shader files into desktop GLSL so they
// can run on the core profile context the window creates.
package translator

import (
	"context"
	"fmt"
	"sync"

	shader "github.com/richinsley/glcube/shader"
	gst "github.com/richinsley/goshadertranslator"
)

var (
	translator     *gst.ShaderTranslator
	translatorErr  error
	translatorOnce sync.Once
)

// GetTranslator returns the process-wide translator, creating it on first use.
func GetTranslator(ctx context.Context) (*gst.ShaderTranslator, error) {
	translatorOnce.Do(func() {
		translator, translatorErr = gst.NewShaderTranslator(ctx)
	})
	return translator, translatorErr
}

// Names maps a variable name as written in the shader file to the name the
// translator gave it in the generated code.
type Names map[string]string

// Lookup returns the generated name for name, or name itself when it was not
// renamed.
func (n Names) Lookup(name string) string {
	if mapped, ok := n[name]; ok && mapped != "" {
		return mapped
	}
	return name
}

// Translate converts every GLSL ES 3.00 stage of src to GLSL 4.10. Stages
// already written for desktop GL pass through untouched, so a file may mix the
// two. A source with no ES stage is returned as is with no renames.
func Translate(ctx context.Context, src shader.Source) (shader.Source, Names, error) {
	if !src.IsES() {
		return src, nil, nil
	}

	t, err := GetTranslator(ctx)
	if err != nil {
		return src, nil, fmt.Errorf("failed to create shader translator: %w", err)
	}

	names := make(Names)
	out := src
	if shader.DeclaresES(src.Vertex) {
		out.Vertex, err = translateStage(t, src.Vertex, "vertex", names)
		if err != nil {
			return src, nil, err
		}
	}
	if shader.DeclaresES(src.Fragment) {
		out.Fragment, err = translateStage(t, src.Fragment, "fragment", names)
		if err != nil {
			return src, nil, err
		}
	}
	return out, names, nil
}

func translateStage(t *gst.ShaderTranslator, code, stage string, names Names) (string, error) {
	translated, err := t.TranslateShader(code, stage, gst.ShaderSpecWebGL2, gst.OutputFormatGLSL410)
	if err != nil {
		return "", fmt.Errorf("%s shader translation failed: %w", stage, err)
	}
	for name, v := range translated.Variables {
		names[name] = v.MappedName
	}
	return translated.Code, nil
}
