package main

import (
	"testing"

	"learngl/internal/app"
	"learngl/internal/assets"
	"learngl/internal/glapi/glapitest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSharedVertexStage(t *testing.T) {
	f := glapitest.New()
	ctx := &app.Context{GL: f, Assets: assets.NewLoader("")}
	a := &twoPrograms{}
	require.NoError(t, a.Initialize(ctx))

	// both programs link the one vertex stage, which is then released
	assert.Equal(t, f.Programs[a.orange.ID].Attached[0], f.Programs[a.pink.ID].Attached[0])
	assert.Zero(t, f.Live(glapitest.KindShader))
	assert.Contains(t, f.Shaders[f.Programs[a.orange.ID].Attached[1]].Source, "vec4(1.0, 0.6, 0.2, 1.0)")
	assert.Contains(t, f.Shaders[f.Programs[a.pink.ID].Attached[1]].Source, "vec4(1.0, 0.75, 0.8, 1.0)")

	a.Render(ctx)
	require.Len(t, f.Draws, 2)
	assert.Equal(t, a.orange.ID, f.Draws[0].Program)
	assert.Equal(t, a.pink.ID, f.Draws[1].Program)

	a.Cleanup()
	assert.Zero(t, f.Live(glapitest.KindProgram))
	assert.Zero(t, f.Live(glapitest.KindVertexArray))
	assert.Zero(t, f.Live(glapitest.KindBuffer))
	assert.Empty(t, f.Errors)
}
