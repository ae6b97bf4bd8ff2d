package shader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	res "github.com/richinsley/glcube/res"
)

// ─────────────────────────────── Section markers ───────────────────────────────

const (
	sectionMarker = "#Shader"
	vertexToken   = "Vertex"
	esVersion     = "#version 300 es"
)

type section int

const (
	sectionNone section = iota - 1
	sectionVertex
	sectionFragment
)

// Source holds the two stages read from a combined shader file.
type Source struct {
	Vertex   string
	Fragment string
}

// Empty reports whether both stages are empty, which is what an unreadable or
// marker-less file produces.
func (s Source) Empty() bool {
	return s.Vertex == "" && s.Fragment == ""
}

// IsES reports whether either stage is written against GLSL ES 3.00 and needs
// translating before a desktop core context will accept it.
func (s Source) IsES() bool {
	return DeclaresES(s.Vertex) || DeclaresES(s.Fragment)
}

// DeclaresES reports whether the first non-blank line of one stage is a
// "#version 300 es" directive.
func DeclaresES(code string) bool {
	for _, line := range strings.Split(code, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		return strings.HasPrefix(line, esVersion)
	}
	return false
}

// ────────────────────────────────── Public API ─────────────────────────────────

// Parse splits a combined shader file into its vertex and fragment stages.
//
// A line containing "#Shader" starts a new section: vertex when the line also
// contains "Vertex", fragment otherwise. Marker lines are dropped, as is
// everything before the first marker. Every other line is kept verbatim with a
// trailing newline.
func Parse(r io.Reader) Source {
	var buf [2]strings.Builder
	current := sectionNone

	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			if strings.Contains(line, sectionMarker) {
				if strings.Contains(line, vertexToken) {
					current = sectionVertex
				} else {
					current = sectionFragment
				}
			} else if current != sectionNone {
				buf[current].WriteString(line)
				buf[current].WriteByte('\n')
			}
		}
		if err != nil {
			break
		}
	}

	return Source{
		Vertex:   buf[sectionVertex].String(),
		Fragment: buf[sectionFragment].String(),
	}
}

// Load reads and splits the shader file at path. If the file cannot be opened
// the returned Source is empty and the error says why.
func Load(path string) (Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return Source{}, fmt.Errorf("failed to open shader file: %w", err)
	}
	defer f.Close()
	return Parse(f), nil
}

// ErrEmptySource is returned by Validate when neither stage has any code.
var ErrEmptySource = errors.New("shader source is empty")

// Validate checks that both stages carry code. It does not look at the GLSL
// itself; that is left to the driver.
func Validate(s Source) error {
	switch {
	case s.Empty():
		return ErrEmptySource
	case s.Vertex == "":
		return fmt.Errorf("%w: no vertex section", ErrEmptySource)
	case s.Fragment == "":
		return fmt.Errorf("%w: no fragment section", ErrEmptySource)
	}
	return nil
}

// Default returns the shader bundled with the binary.
func Default(isES bool) Source {
	if isES {
		return Parse(strings.NewReader(res.BasicShaderES))
	}
	return Parse(strings.NewReader(res.BasicShader))
}
