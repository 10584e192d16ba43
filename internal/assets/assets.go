// Package assets serves the demos' shader sources and texture images.
//
// By default everything comes from the files embedded at build time. A
// Loader with a Dir reads the same names from disk instead, which is what
// shader hot reload watches.
package assets

import (
	"embed"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"learngl/internal/graphics"
)

const (
	ShadersDir  = "shaders"
	TexturesDir = "textures"
)

//go:embed shaders/* textures/*
var embedded embed.FS

// Loader reads assets by name. Shader names are file names inside the
// shaders directory ("hello_triangle.vert"); image names are file names
// inside the textures directory ("container.png").
type Loader struct {
	dir    string
	fsys   fs.FS
	onDisk bool
}

// NewLoader returns a loader over the embedded assets, or over dir when dir
// is not empty. dir must contain shaders/ and textures/ subdirectories.
func NewLoader(dir string) *Loader {
	if dir == "" {
		return &Loader{fsys: embedded}
	}
	return &Loader{dir: dir, fsys: os.DirFS(dir), onDisk: true}
}

// Embedded reports whether the loader serves the built-in files.
func (l *Loader) Embedded() bool {
	return !l.onDisk
}

// ShaderDir is the on-disk shader directory, or "" for embedded assets.
func (l *Loader) ShaderDir() string {
	if !l.onDisk {
		return ""
	}
	return filepath.Join(l.dir, ShadersDir)
}

// ReadSource returns the text of a shader file.
func (l *Loader) ReadSource(name string) (string, error) {
	data, err := fs.ReadFile(l.fsys, path.Join(ShadersDir, name))
	if err != nil {
		return "", fmt.Errorf("could not read shader file: %w", err)
	}
	return string(data), nil
}

// ReadTemplate reads a shader file and replaces each {key} with its value.
func (l *Loader) ReadTemplate(name string, values map[string]string) (string, error) {
	src, err := l.ReadSource(name)
	if err != nil {
		return "", err
	}
	pairs := make([]string, 0, 2*len(values))
	for k, v := range values {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(src), nil
}

// Image decodes a texture file to RGBA8, flipped vertically when flipV is
// set.
func (l *Loader) Image(name string, flipV bool) (*image.RGBA, error) {
	f, err := l.fsys.Open(path.Join(TexturesDir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to open texture file: %w", err)
	}
	defer f.Close()

	img, err := graphics.DecodeRGBA(f, flipV)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return img, nil
}
