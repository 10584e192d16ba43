package window

import (
	"log"

	"learngl/internal/app"
	"learngl/internal/config"
	"learngl/internal/graphics"
)

// Main runs a with the settings from learngl.toml in the working directory
// and exits the process on error. Call it from main with the OS thread
// locked.
func Main(a app.Application) {
	cfg, err := config.Load(config.FileName)
	if err != nil {
		log.Printf("%v; using defaults", err)
	}
	config.Apply(cfg)
	graphics.SetReleaseLogging(cfg.Log.Resources)

	if err := NewRunner(cfg).Run(a); err != nil {
		log.Fatalf("%s: %v", a.Title(), err)
	}
}
