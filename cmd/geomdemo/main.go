// Command geomdemo builds a small scene of points and line segments, logs
// their geometric relationships, and optionally draws the scene as SVG.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
)

type config struct {
	logFormat string
	logLevel  slog.Level
	svg       string
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("geomdemo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.logFormat, "log-format", "text", "log format, text or json")
	fs.TextVar(&cfg.logLevel, "log-level", slog.LevelInfo, "minimum log level")
	fs.StringVar(&cfg.svg, "svg", "", "write an SVG drawing of the scene to `file` (- for stdout)")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	switch cfg.logFormat {
	case "text", "json":
	default:
		return config{}, fmt.Errorf("unknown log format %q", cfg.logFormat)
	}
	return cfg, nil
}

func newLogger(w io.Writer, cfg config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.logLevel}
	if cfg.logFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "geomdemo:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	logger := newLogger(stderr, cfg)

	sc, err := newScene()
	if err != nil {
		return err
	}
	sc.report(logger)

	switch cfg.svg {
	case "":
		return nil
	case "-":
		return sc.writeSVG(stdout)
	default:
		f, err := os.Create(cfg.svg)
		if err != nil {
			return err
		}
		if err := sc.writeSVG(f); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		logger.Info("wrote svg", "file", cfg.svg)
		return nil
	}
}
