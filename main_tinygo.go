//go:build tinygo

package main

import (
	"vkpad/app"
	"vkpad/hal"
	"vkpad/internal/config"
)

func main() {
	cfg := config.Default()
	app.Run(hal.New(cfg.HALOptions()), cfg)
}
