package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := loadConfig("fracplot.yaml")

	app := newViewerApp(cfg, nil)
	defer app.Close()

	ebiten.SetWindowTitle("Fractional differintegration")
	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
