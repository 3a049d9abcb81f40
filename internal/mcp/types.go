package mcp

import "github.com/1broseidon/winbridge/internal/inspect"

// ActiveWindowInput is the input for the active_window tool.
type ActiveWindowInput struct{}

// ActiveWindowOutput is the output for the active_window tool.
type ActiveWindowOutput struct {
	Window WindowSummary      `json:"window"`
	Handle inspect.HandleInfo `json:"handle"`
}

// WindowSummary describes one top-level window.
type WindowSummary struct {
	ID    uint64 `json:"id"`
	PID   int    `json:"pid,omitempty"`
	AppID string `json:"app_id,omitempty"`
	Title string `json:"title,omitempty"`
}

// ListWindowsInput is the input for the list_windows tool.
type ListWindowsInput struct{}

// ListWindowsOutput is the output for the list_windows tool.
type ListWindowsOutput struct {
	Windows []WindowSummary `json:"windows"`
}

// WindowHandleInput is the input for the window_handle tool.
type WindowHandleInput struct {
	WindowID uint64 `json:"window_id" jsonschema:"required,Window ID as returned by list_windows or active_window"`
}

// WindowHandleOutput is the output for the window_handle tool.
type WindowHandleOutput struct {
	Handle inspect.HandleInfo `json:"handle"`
}
