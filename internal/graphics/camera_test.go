package graphics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestCameraDefaults(t *testing.T) {
	c := NewCamera(800, 600)
	assert.InDelta(t, 800.0/600.0, c.AspectRatio, 1e-6)

	// looking down -z from z=3 is a plain translation
	assert.True(t, c.ViewMatrix().ApproxEqualThreshold(mgl32.Translate3D(0, 0, -3), 1e-5))

	c.SetViewport(1600, 0)
	assert.InDelta(t, 800.0/600.0, c.AspectRatio, 1e-6)
	c.SetViewport(1600, 800)
	assert.InDelta(t, 2.0, c.AspectRatio, 1e-6)

	want := mgl32.Perspective(mgl32.DegToRad(60), 2, 0.1, 100)
	assert.Equal(t, want, c.ProjectionMatrix())
}

func TestCameraZeroHeight(t *testing.T) {
	c := NewCamera(0, 0)
	assert.Equal(t, float32(1), c.AspectRatio)
}
