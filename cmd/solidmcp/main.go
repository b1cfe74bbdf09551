package main

import (
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/solidmcp/solidmcp/pkg/config"
	"github.com/solidmcp/solidmcp/pkg/scene"
	"github.com/solidmcp/solidmcp/pkg/server"
	"github.com/solidmcp/solidmcp/pkg/tools"
)

func main() {
	configPath := flag.String("config", "", "Path to JSON config file")
	host := flag.String("host", "", "Listen host (overrides config)")
	port := flag.Int("port", 0, "Listen port (overrides config)")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("config error", "error", err)
		os.Exit(1)
	}
	if *host != "" {
		cfg.Host = *host
	}
	if *port != 0 {
		cfg.Port = *port
	}
	if *debug {
		cfg.Log.Level = "debug"
	}

	log, err := cfg.CreateLogger()
	if err != nil {
		slog.Error("logger error", "error", err)
		os.Exit(1)
	}

	sc := scene.NewScene()
	srv := &server.Server{
		Addr:         cfg.Addr(),
		PollInterval: cfg.PollInterval(),
		Dispatcher: &server.Dispatcher{
			Registry: tools.DefaultRegistry(sc, cfg.ExportDir),
			Scene:    sc,
		},
		Log: log,
	}
	if err := srv.Start(); err != nil {
		slog.Error("start error", "error", err)
		os.Exit(1)
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	srv.Stop()
}
