package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"cube-mapping/internal/app"
	"cube-mapping/internal/config"

	"github.com/spf13/pflag"
	"github.com/xlab/closer"
)

func init() {
	// glfw and GL calls must come from the main OS thread.
	runtime.LockOSThread()
}

type options struct {
	configPath string
	video      bool
	watch      bool
	shaderDir  string
	verbose    int
	quiet      bool
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := pflag.NewFlagSet("cube-mapping", pflag.ContinueOnError)
	fs.StringVarP(&o.configPath, "config", "c", "", "TOML config file")
	fs.BoolVar(&o.video, "video", false, "texture the cube with video faces")
	fs.BoolVar(&o.watch, "watch", false, "reload static faces when their files change")
	fs.StringVar(&o.shaderDir, "shaders", "", "load cube.vert and cube.frag from this directory")
	fs.CountVarP(&o.verbose, "verbose", "v", "more logging (repeat for debug)")
	fs.BoolVarP(&o.quiet, "quiet", "q", false, "log errors only")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	return o, nil
}

func levelFromFlags(o options) slog.Level {
	switch {
	case o.verbose >= 2:
		return slog.LevelDebug
	case o.verbose == 1:
		return slog.LevelInfo
	case o.quiet:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func loadConfig(o options) (config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return cfg, err
		}
	}
	if o.video {
		cfg.Textures.Video = true
	}
	if o.watch {
		cfg.Textures.Watch = true
	}
	if o.shaderDir != "" {
		cfg.Cube.ShaderDir = o.shaderDir
	}
	return cfg, cfg.Validate()
}

func main() {
	o, err := parseFlags(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: levelFromFlags(o)}))
	slog.SetDefault(logger)

	cfg, err := loadConfig(o)
	if err != nil {
		logger.Error("load config", "err", err)
		os.Exit(1)
	}

	a, err := app.New(cfg, logger)
	if err != nil {
		logger.Error("start", "err", err)
		os.Exit(1)
	}
	closer.Bind(func() {
		if err := a.Close(); err != nil {
			logger.Warn("close", "err", err)
		}
	})
	defer closer.Close()

	if err := a.Play(); err != nil {
		logger.Error("play", "err", err)
		a.Terminate()
		closer.Exit(1)
	}
	a.Terminate()
}
