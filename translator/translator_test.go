package translator

import (
	"context"
	"strings"
	"testing"

	shader "github.com/richinsley/glcube/shader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamesLookup(t *testing.T) {
	names := Names{"u_mvp": "_uu_mvp", "blank": ""}
	assert.Equal(t, "_uu_mvp", names.Lookup("u_mvp"))
	assert.Equal(t, "blank", names.Lookup("blank"))
	assert.Equal(t, "u_other", names.Lookup("u_other"))

	var none Names
	assert.Equal(t, "u_mvp", none.Lookup("u_mvp"))
}

func TestTranslateDesktopSourceUntouched(t *testing.T) {
	src := shader.Default(false)
	out, names, err := Translate(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, src, out)
	assert.Nil(t, names)
}

func TestTranslateES(t *testing.T) {
	src := shader.Default(true)
	require.True(t, src.IsES())

	out, names, err := Translate(context.Background(), src)
	require.NoError(t, err)

	for stage, code := range map[string]string{"vertex": out.Vertex, "fragment": out.Fragment} {
		assert.True(t, strings.HasPrefix(strings.TrimSpace(code), "#version 410"), "%s stage: %q", stage, code)
		assert.NotContains(t, code, "#version 300 es", "%s stage", stage)
	}
	assert.False(t, out.IsES())

	mapped := names.Lookup("u_mvp")
	assert.NotEqual(t, "u_mvp", mapped)
	assert.Contains(t, out.Vertex, mapped)
}

func TestTranslateMixedStages(t *testing.T) {
	es := shader.Default(true)
	desktop := shader.Default(false)
	src := shader.Source{Vertex: es.Vertex, Fragment: desktop.Fragment}

	out, names, err := Translate(context.Background(), src)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(strings.TrimSpace(out.Vertex), "#version 410"))
	assert.Equal(t, desktop.Fragment, out.Fragment)
	assert.NotEqual(t, "u_mvp", names.Lookup("u_mvp"))
}
