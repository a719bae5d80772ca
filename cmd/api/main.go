package main

import (
	"log"

	"resume-styler/internal/bootstrap"
	"resume-styler/internal/shared/config"
	"resume-styler/internal/shared/server"
	"resume-styler/internal/shared/telemetry"
)

func main() {
	cfg := config.Load()
	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Fatalf("bootstrap error: %v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			telemetry.Warn("server.close", map[string]any{"error": err.Error()})
		}
	}()

	addr := server.Addr(cfg.Port)
	telemetry.Info("server.start", map[string]any{"addr": addr, "env": cfg.Env})

	if err := app.Router.Run(addr); err != nil {
		telemetry.Error("server.stop", map[string]any{"error": err.Error()})
	}
}
