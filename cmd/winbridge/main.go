package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/1broseidon/winbridge/internal/config"
	"github.com/1broseidon/winbridge/internal/inspect"
	"github.com/1broseidon/winbridge/internal/platform"
)

func main() {
	if len(os.Args) < 2 {
		printMainUsage(os.Stdout)
		os.Exit(0)
	}

	switch os.Args[1] {
	case "inspect":
		os.Exit(runInspect(os.Args[2:]))
	case "list":
		os.Exit(runList(os.Args[2:]))
	case "mcp":
		os.Exit(runMCP(os.Args[2:]))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: winbridge <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  inspect             Show the raw handle of the active window (or --window ID)")
	fmt.Fprintln(w, "  list                List top-level windows")
	fmt.Fprintln(w, "  mcp serve           Start the MCP server (stdio transport)")
	fmt.Fprintln(w, "  help                Show this help")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'winbridge <command> --help' for command-specific options.")
}

func newLogger(cfg *config.Config) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
}

// resolveOutput picks the effective output mode: flag beats config, and auto
// means yaml when stdout is piped, text on a terminal.
func resolveOutput(flagValue string, cfg *config.Config) (config.OutputMode, error) {
	mode := cfg.Output
	if flagValue != "" {
		mode = config.OutputMode(flagValue)
	}
	switch mode {
	case config.OutputYAML, config.OutputText:
		return mode, nil
	case config.OutputAuto:
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return config.OutputText, nil
		}
		return config.OutputYAML, nil
	default:
		return "", fmt.Errorf("invalid output mode %q (valid: auto, yaml, text)", mode)
	}
}

func runInspect(args []string) int {
	fs := flag.NewFlagSet("inspect", flag.ExitOnError)
	windowID := fs.Uint64("window", 0, "window ID to inspect (default: active window)")
	output := fs.String("output", "", "output mode: auto, yaml or text (default: from config)")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: winbridge inspect [--window ID] [--output MODE]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}
	logger := newLogger(cfg)

	mode, err := resolveOutput(*output, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	backend, err := platform.New()
	if err != nil {
		logger.Error("window system unavailable", "error", err)
		return 1
	}
	defer backend.Close()

	var report inspect.Report
	if *windowID != 0 {
		owner, err := backend.Window(*windowID)
		if err != nil {
			logger.Error("window lookup failed", "error", err)
			return 1
		}
		report = inspect.NewReport(platform.WindowInfo{ID: *windowID}, owner)
	} else {
		owner, info, err := backend.ActiveWindow()
		if err != nil {
			logger.Error("active window query failed", "error", err)
			return 1
		}
		report = inspect.NewReport(info, owner)
	}

	if mode == config.OutputYAML {
		return emitYAML(report)
	}
	printReport(os.Stdout, report)
	return 0
}

func runList(args []string) int {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	output := fs.String("output", "", "output mode: auto, yaml or text (default: from config)")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: winbridge list [--output MODE]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}
	logger := newLogger(cfg)

	mode, err := resolveOutput(*output, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	backend, err := platform.New()
	if err != nil {
		logger.Error("window system unavailable", "error", err)
		return 1
	}
	defer backend.Close()

	windows, err := backend.ListWindows()
	if err != nil {
		logger.Error("window list failed", "error", err)
		return 1
	}

	if mode == config.OutputYAML {
		return emitYAML(map[string][]platform.WindowInfo{"windows": windows})
	}
	for _, w := range windows {
		fmt.Printf("0x%08x  %7d  %-18s %s\n", w.ID, w.PID, w.AppID, w.Title)
	}
	return 0
}

func emitYAML(v any) int {
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to encode output: %v\n", err)
		return 1
	}
	if err := enc.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to flush output: %v\n", err)
		return 1
	}
	return 0
}

func printReport(w io.Writer, report inspect.Report) {
	fmt.Fprintf(w, "Window:  0x%08x", report.Window.ID)
	if report.Window.AppID != "" {
		fmt.Fprintf(w, "  (%s)", report.Window.AppID)
	}
	fmt.Fprintln(w)
	if report.Window.Title != "" {
		fmt.Fprintf(w, "Title:   %s\n", report.Window.Title)
	}
	if report.Window.PID != 0 {
		fmt.Fprintf(w, "PID:     %d\n", report.Window.PID)
	}
	fmt.Fprintf(w, "Family:  %s\n", report.Handle.Family)
	for name, value := range report.Handle.Fields {
		fmt.Fprintf(w, "  %-12s %s\n", name, value)
	}
}
