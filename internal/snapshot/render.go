package snapshot

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/iburimskiy/antenna-logo/internal/logo"
)

// Render draws frames successive frames starting at state and writes every
// every-th one to dir as a PNG. It returns the written paths and the state
// after the last frame.
func Render(scene logo.Scene, state logo.AnimationState, frames, every int, dir string) ([]string, logo.AnimationState, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, state, fmt.Errorf("create %s: %w", dir, err)
	}
	if every < 1 {
		every = 1
	}

	s := NewSurface(scene.Size)
	var paths []string
	for i := 0; i < frames; i++ {
		angle := state.AngleDegrees
		state = logo.RenderFrame(s, scene, state)
		if i%every != 0 {
			continue
		}
		path := filepath.Join(dir, fmt.Sprintf("frame-%04d.png", i))
		if err := s.Context().SavePNG(path); err != nil {
			return paths, state, fmt.Errorf("write %s: %w", path, err)
		}
		log.Debug().Str("path", path).Float64("angle", angle).Msg("frame written")
		paths = append(paths, path)
	}
	return paths, state, nil
}
