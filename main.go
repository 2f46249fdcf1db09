package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/stagetools/staging-console/internal/app"
	"github.com/stagetools/staging-console/internal/config"
	"github.com/stagetools/staging-console/internal/logging"
	"github.com/stagetools/staging-console/internal/logging/events"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	events.App.Start(startupTracePayload(runtimeCfg))

	if err := app.Run(runtimeCfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	payload := map[string]interface{}{
		"argv":  cfg.Args,
		"flags": cfg.Flags,
		"tty":   probeTerminals(),
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	}
	return payload
}

type terminalProbe struct {
	IsTerminal bool `json:"is_terminal"`
	Width      int  `json:"width,omitempty"`
	Height     int  `json:"height,omitempty"`
}

// probeTerminals reports terminal support and size for the standard
// descriptors.
func probeTerminals() map[string]terminalProbe {
	fds := map[string]uintptr{
		"stdin":  os.Stdin.Fd(),
		"stdout": os.Stdout.Fd(),
		"stderr": os.Stderr.Fd(),
	}
	probes := make(map[string]terminalProbe, len(fds))
	for name, fd := range fds {
		probe := terminalProbe{}
		if term.IsTerminal(int(fd)) {
			probe.IsTerminal = true
			if width, height, err := term.GetSize(int(fd)); err == nil {
				probe.Width = width
				probe.Height = height
			}
		}
		probes[name] = probe
	}
	return probes
}
