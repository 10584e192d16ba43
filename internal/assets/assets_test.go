package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedShaders(t *testing.T) {
	l := NewLoader("")
	assert.True(t, l.Embedded())
	assert.Empty(t, l.ShaderDir())

	names := []string{
		"hello_triangle.vert", "hello_triangle.frag",
		"shaders_ex1.vert", "shaders.frag",
		"shaders_ex3.vert", "shaders_ex3.frag",
		"textures.vert", "textures.frag",
		"textures_multi.vert", "textures_multi.frag", "textures_ex1.frag",
		"transformations.vert", "coordinate_systems.vert",
		"overlay.vert", "overlay.frag",
	}
	for _, name := range names {
		src, err := l.ReadSource(name)
		require.NoError(t, err, name)
		assert.Contains(t, src, "#version 410 core", name)
		assert.Contains(t, src, "void main()", name)
	}
}

func TestReadTemplate(t *testing.T) {
	l := NewLoader("")
	src, err := l.ReadTemplate("hello_triangle_ex3.frag.tmpl", map[string]string{"color": "1.0, 0.6, 0.2, 1.0"})
	require.NoError(t, err)
	assert.Contains(t, src, "vec4(1.0, 0.6, 0.2, 1.0)")
	assert.NotContains(t, src, "{color}")
}

func TestEmbeddedImages(t *testing.T) {
	l := NewLoader("")
	for _, name := range []string{"container.png", "awesomeface.png"} {
		img, err := l.Image(name, false)
		require.NoError(t, err, name)
		assert.Equal(t, 256, img.Rect.Dx())
		assert.Equal(t, 256, img.Rect.Dy())
	}

	// the face has a transparent background; flipping swaps its rows
	up, err := l.Image("awesomeface.png", false)
	require.NoError(t, err)
	down, err := l.Image("awesomeface.png", true)
	require.NoError(t, err)
	assert.Equal(t, up.RGBAAt(128, 40), down.RGBAAt(128, 255-40))
	assert.Zero(t, up.RGBAAt(0, 0).A)
}

func TestMissingFiles(t *testing.T) {
	l := NewLoader("")
	_, err := l.ReadSource("nope.vert")
	assert.Error(t, err)
	_, err = l.Image("nope.png", false)
	assert.Error(t, err)
}

func TestDiskLoader(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ShadersDir), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ShadersDir, "a.frag"), []byte("void main() {}"), 0644))

	l := NewLoader(dir)
	assert.False(t, l.Embedded())
	assert.Equal(t, filepath.Join(dir, ShadersDir), l.ShaderDir())

	src, err := l.ReadSource("a.frag")
	require.NoError(t, err)
	assert.Equal(t, "void main() {}", src)

	_, err = l.ReadSource("hello_triangle.vert")
	assert.Error(t, err)
}
