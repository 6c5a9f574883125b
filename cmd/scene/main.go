package main

import (
	"os"
	"path/filepath"

	"scene-engine/internal/engineconfig"
	"scene-engine/internal/graphics"
	"scene-engine/internal/logger"
	"scene-engine/internal/material"
	"scene-engine/internal/meshes"
	"scene-engine/internal/scene"
	"scene-engine/internal/shader"
	"scene-engine/internal/stats"
	"scene-engine/internal/texture"
)

func main() {
	log := logger.New()

	if err := engineconfig.LoadEnv(".env"); err != nil {
		log.Warnf("reading .env: %v", err)
	}
	prefs, err := engineconfig.Load()
	if err != nil {
		log.Warnf("loading prefs: %v", err)
	}

	if err := run(prefs, log); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(prefs engineconfig.Prefs, log *logger.Logger) error {
	return graphics.Run(prefs, func(w *graphics.Window) (func(), func(), error) {
		program, err := shader.Default()
		if err != nil {
			return nil, nil, err
		}
		program.Use()

		mgr := meshes.NewManager(meshes.GLMesher{}, log)
		s := scene.New(
			program,
			texture.NewRegistry(texture.GLBackend{}, log),
			material.NewRegistry(log),
			mgr,
			log,
		)
		s.Camera = scene.DefaultCamera(w.Aspect())
		s.SetTextures(scene.DefaultTextures(prefs.AssetDir))

		if prefs.SceneFile != "" {
			if placements, err := scene.LoadPlacements(prefs.SceneFile); err != nil {
				log.Warnf("using built-in scene: %v", err)
			} else {
				s.SetPlacements(placements)
				log.Infof("loaded %d placements from %s", len(placements), filepath.Base(prefs.SceneFile))
			}
		}

		if err := s.Prepare(); err != nil {
			return nil, nil, err
		}

		frameStats := stats.New(log)
		frameStats.SetLogging(prefs.LogFrameStats)

		frame := func() {
			s.Render()
			frameStats.EndFrame(s.DrawCount())
		}
		cleanup := func() {
			s.Teardown()
			mgr.Teardown()
			program.Delete()
		}
		return frame, cleanup, nil
	})
}
