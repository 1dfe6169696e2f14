// Package main is the entry point for the keyscope terminal demo.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/keyscope"
	"github.com/dshills/keyscope/config"
	"github.com/dshills/keyscope/diag"
	"github.com/dshills/keyscope/domtree"
	"github.com/dshills/keyscope/stroke"
	"github.com/dshills/keyscope/termhost"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

type options struct {
	configPath string
	logLevel   string
	showVer    bool
}

func run() int {
	opts := parseFlags()

	if opts.showVer {
		fmt.Printf("keyscope %s (%s)\n", version, commit)
		return 0
	}

	sink := diag.New(diag.Config{
		Level:  levelFromString(opts.logLevel),
		Output: os.Stderr,
		Prefix: "keyscope",
	})

	host, err := termhost.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := host.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize terminal: %v\n", err)
		return 1
	}
	defer host.Shutdown()

	engine := keyscope.New(
		keyscope.WithCanonicalizer(stroke.Canonicalizer{}),
		keyscope.WithSelectorEngine(domtree.Engine{}),
		keyscope.WithDiagnosticSink(sink),
		keyscope.WithDeliver(host.Deliver),
		keyscope.WithMetrics(),
	)

	reloader := config.NewReloader(opts.configPath, engine, sink)
	defer reloader.Close()

	if err := reloader.Load(); err != nil {
		sink.Error("initial config load failed: %v", err)
	}
	host.AddHelpSource(builtinHelp(engine))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := reloader.Watch(ctx); err != nil {
		sink.Warn("config hot-reload disabled: %v", err)
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		cancel()
	}()

	if err := host.Run(ctx, engine); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// builtinHelp registers the handful of bindings the demo host itself
// offers (pane switching, quit), returned so main can hand the same
// Handle to the help overlay.
func builtinHelp(engine *keyscope.Engine) keyscope.Handle {
	return engine.Register([]keyscope.Binding{
		{
			Sequence:    []string{"Tab"},
			Handler:     func(any) bool { return false },
			Description: "switch focused pane (handled by the host loop)",
		},
		{
			Sequence:    []string{"<C-c>"},
			Handler:     func(any) bool { return false },
			Description: "quit",
		},
	})
}

func parseFlags() options {
	var opts options
	var showHelp bool

	flag.StringVar(&opts.configPath, "config", "keyscope.toml", "Path to configuration file")
	flag.StringVar(&opts.configPath, "c", "keyscope.toml", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	flag.BoolVar(&opts.showVer, "version", false, "Show version information")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "keyscope - scriptable keyboard-shortcut dispatcher demo\n\n")
		fmt.Fprintf(os.Stderr, "Usage: keyscope [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	switch opts.logLevel {
	case "debug", "info", "warn", "error":
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.logLevel)
		os.Exit(1)
	}

	return opts
}

func levelFromString(s string) diag.Level {
	switch s {
	case "debug":
		return diag.LevelDebug
	case "info":
		return diag.LevelInfo
	case "error":
		return diag.LevelError
	default:
		return diag.LevelWarn
	}
}
