package main

import (
	"flag"

	"github.com/fabiovitalba/piston/internal/config"
)

// loadConfig parses args into fs. Flags given explicitly override the config
// file, which overrides the defaults.
func loadConfig(fs *flag.FlagSet, args []string) (config.Config, error) {
	def := config.Default()
	path := fs.String("config", "", "TOML or YAML config file")
	backend := fs.String("backend", def.Backend, "input backend: terminal, ebitengine or remote")
	output := fs.String("output", def.Output, "jsonl file, or directory for json and yaml")
	format := fs.String("format", def.Format, "recording format: jsonl, json or yaml")
	listen := fs.String("listen", def.Listen, "websocket listen address")
	buffer := fs.Int("buffer", def.Buffer, "input queue length")
	exitCtrlC := fs.Bool("exit-on-ctrl-c", def.ExitOnCtrlC, "stop the terminal backend on Ctrl-C")
	if err := fs.Parse(args); err != nil {
		return config.Config{}, err
	}

	cfg := def
	if *path != "" {
		var err error
		if cfg, err = config.Load(*path); err != nil {
			return config.Config{}, err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "backend":
			cfg.Backend = *backend
		case "output":
			cfg.Output = *output
		case "format":
			cfg.Format = *format
		case "listen":
			cfg.Listen = *listen
		case "buffer":
			cfg.Buffer = *buffer
		case "exit-on-ctrl-c":
			cfg.ExitOnCtrlC = *exitCtrlC
		}
	})
	return cfg, cfg.Validate()
}
