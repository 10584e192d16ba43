package main

import (
	"testing"

	"learngl/internal/app"
	"learngl/internal/assets"
	"learngl/internal/glapi/glapitest"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCubesLifecycle(t *testing.T) {
	f := glapitest.New()
	ctx := &app.Context{GL: f, Assets: assets.NewLoader(""), Width: 800, Height: 600, Elapsed: 1}
	c := &coordinateSystems{}
	require.NoError(t, c.Initialize(ctx))

	c.Render(ctx)
	require.Len(t, f.Draws, len(cubePositions))
	for _, d := range f.Draws {
		assert.True(t, d.Indexed)
		assert.EqualValues(t, 36, d.Count)
		assert.Equal(t, c.container.ID, d.Textures[gl.TEXTURE0])
		assert.Equal(t, c.face.ID, d.Textures[gl.TEXTURE1])
	}
	assert.Len(t, f.Uniform(c.program.Program.ID, "projection"), 16)
	assert.False(t, f.Enabled[gl.DEPTH_TEST])

	before := c.camera.ProjectionMatrix()
	c.OnResize(1600, 600)
	assert.NotEqual(t, before, c.camera.ProjectionMatrix())

	c.Cleanup()
	c.Cleanup()
	for _, k := range []glapitest.Kind{glapitest.KindShader, glapitest.KindProgram, glapitest.KindVertexArray, glapitest.KindBuffer, glapitest.KindTexture} {
		assert.Zero(t, f.Live(k), k)
	}
	assert.Empty(t, f.Errors)
}
