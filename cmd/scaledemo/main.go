// scaledemo opens a window sized from the frozen startup resolution
// and draws a tile grid derived from the baseline scale factor. It
// demonstrates the required startup ordering: the resolver runs and
// freezes its value before ebiten initializes anything, and the window
// is created with explicit dimensions rather than library defaults.
package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font/basicfont"

	"github.com/greyfell/monres"
	"github.com/greyfell/monres/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}

	opts := append(cfg.ResolverOptions(), monres.WithTitle("monres scale demo"))
	result := monres.NewResolver(opts...).Resolve(cfg.ScalingBaseline())
	wcfg := result.Config

	// Explicit dimensions from the frozen config; never ebiten's
	// built-in 640x480 placeholder.
	ebiten.SetWindowTitle(wcfg.Title)
	ebiten.SetWindowSize(wcfg.Width, wcfg.Height)
	ebiten.SetFullscreen(wcfg.Fullscreen)

	g := &game{cfg: wcfg, status: result.Status}
	if err := ebiten.RunGame(g); err != nil {
		logrus.Fatal(err)
	}
}

type game struct {
	cfg    monres.WindowConfig
	status monres.Status
}

func (g *game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	tile := g.cfg.TileSize
	margin := g.cfg.Margin
	step := tile + margin

	fill := color.NRGBA{70, 110, 70, 255}
	for y := margin; y+tile <= float64(g.cfg.Height); y += step {
		for x := margin; x+tile <= float64(g.cfg.Width); x += step {
			ebitenutil.DrawRect(screen, x, y, tile, tile, fill)
		}
	}

	label := fmt.Sprintf("%dx%d %s scale=%.4f tile=%.2f",
		g.cfg.Width, g.cfg.Height, g.status, g.cfg.ScaleFactor, tile)
	text.Draw(screen, label, basicfont.Face7x13, 8, 16, color.White)
}

// Layout returns the frozen dimensions: later compositor resizes must
// not change the logical surface the resolver configured.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
