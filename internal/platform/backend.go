package platform

import (
	"fmt"
	"runtime"

	"github.com/1broseidon/winbridge"
)

// WindowInfo contains metadata for a top-level window.
type WindowInfo struct {
	ID    uint64 `json:"id" yaml:"id"`
	PID   int    `json:"pid,omitempty" yaml:"pid,omitempty"`
	AppID string `json:"app_id,omitempty" yaml:"app_id,omitempty"`
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
}

// Backend resolves live windows of the current window system into handle
// producers. It is the window-creation side of the winbridge contract for
// windows this process did not create itself.
type Backend interface {
	// ActiveWindow returns a producer and metadata for the focused window.
	ActiveWindow() (winbridge.Owner, WindowInfo, error)

	// ListWindows returns metadata for all normal top-level windows.
	ListWindows() ([]WindowInfo, error)

	// Window returns a producer for the window with the given ID. The ID
	// must name a currently-live window; resolution fails otherwise.
	Window(id uint64) (winbridge.Owner, error)

	// Close releases the backend's connection to the window system.
	Close()
}

// ErrUnsupported is returned by New on platforms without a backend.
var ErrUnsupported = fmt.Errorf("no window system backend for %s/%s; supported: linux (X11)", runtime.GOOS, runtime.GOARCH)

// ErrNoXDisplay is returned on linux when no X display is reachable.
var ErrNoXDisplay = fmt.Errorf("DISPLAY is not set; an X11 (or XWayland) display is required")
