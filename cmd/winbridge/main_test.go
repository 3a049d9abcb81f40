package main

import (
	"strings"
	"testing"

	"github.com/1broseidon/winbridge/internal/config"
	"github.com/1broseidon/winbridge/internal/inspect"
	"github.com/1broseidon/winbridge/internal/platform"
)

func TestResolveOutput_FlagBeatsConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Output = config.OutputYAML

	mode, err := resolveOutput("text", cfg)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if mode != config.OutputText {
		t.Fatalf("expected flag to win, got %q", mode)
	}
}

func TestResolveOutput_ExplicitModes(t *testing.T) {
	cfg := config.DefaultConfig()
	for _, want := range []config.OutputMode{config.OutputYAML, config.OutputText} {
		mode, err := resolveOutput(string(want), cfg)
		if err != nil {
			t.Fatalf("resolve %q: %v", want, err)
		}
		if mode != want {
			t.Fatalf("expected %q, got %q", want, mode)
		}
	}
}

func TestResolveOutput_RejectsUnknownMode(t *testing.T) {
	if _, err := resolveOutput("pretty", config.DefaultConfig()); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}

func TestPrintReport(t *testing.T) {
	report := inspect.Report{
		Window: platform.WindowInfo{ID: 0x1c00003, AppID: "Alacritty", Title: "editor", PID: 4321},
		Handle: inspect.HandleInfo{
			Family: "xcb",
			Fields: map[string]string{"window": "0x1c00003"},
		},
	}

	var sb strings.Builder
	printReport(&sb, report)
	out := sb.String()

	for _, want := range []string{"0x01c00003", "Alacritty", "editor", "4321", "xcb", "window", "0x1c00003"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}
