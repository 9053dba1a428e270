// Command spinners-web runs both plots with ebiten. Built with
// GOOS=js GOARCH=wasm it renders into the page canvas.
package main

import (
	"os"

	"github.com/san-kum/spinners/internal/app"
	"github.com/san-kum/spinners/internal/config"
	"github.com/san-kum/spinners/internal/logging"
	"github.com/san-kum/spinners/internal/web"
)

func main() {
	// the browser console is the only log sink on wasm
	logger, err := logging.New(os.Stderr, "debug")
	if err != nil {
		os.Exit(1)
	}

	cfg := config.DefaultConfig()
	shell := app.New(app.FromConfig(cfg))
	if err := web.Run(shell, cfg.Window, logger); err != nil {
		logger.Error("ebiten failed", "err", err)
		os.Exit(1)
	}
}
