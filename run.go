package gridscene

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// game adapts a Scene to ebiten.Game.
type game struct {
	scene  *Scene
	width  int
	height int
}

func (g *game) Update() error {
	g.scene.Update()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Run opens a window and drives scene until the window is closed. The
// scene gets a console logger at cfg.LogLevel unless SetLogger was called.
func Run(scene *Scene, cfg RunConfig) error {
	cfg = cfg.withDefaults()

	if !scene.logSet {
		log, err := NewLogger(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("build logger: %w", err)
		}
		scene.SetLogger(log)
		defer func() { _ = log.Sync() }()
	}
	scene.SetDebugMode(cfg.Debug)

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)

	g := &game{scene: scene, width: cfg.Width, height: cfg.Height}
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
