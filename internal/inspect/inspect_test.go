//go:build (linux && !android) || freebsd || netbsd || openbsd || dragonfly || solaris

package inspect

import (
	"testing"

	"github.com/1broseidon/winbridge"
	"github.com/1broseidon/winbridge/internal/platform"
)

func TestDescribeHandle_Xcb(t *testing.T) {
	info := DescribeHandle(winbridge.XcbHandle{Window: 0x1c00003})

	if info.Family != "xcb" {
		t.Fatalf("expected family xcb, got %q", info.Family)
	}
	if got := info.Fields["window"]; got != "0x1c00003" {
		t.Fatalf("expected window 0x1c00003, got %q", got)
	}
	if _, ok := info.Fields["connection"]; ok {
		t.Fatalf("expected zero connection field to be omitted")
	}
}

func TestDescribeHandle_XlibAndWayland(t *testing.T) {
	xlib := DescribeHandle(winbridge.XlibHandle{Window: 0x3a, Display: 0x7f00})
	if xlib.Family != "xlib" || xlib.Fields["display"] != "0x7f00" {
		t.Fatalf("unexpected xlib description: %+v", xlib)
	}

	wl := DescribeHandle(winbridge.WaylandHandle{Surface: 0x55aa})
	if wl.Family != "wayland" || wl.Fields["surface"] != "0x55aa" {
		t.Fatalf("unexpected wayland description: %+v", wl)
	}
}

func TestDescribeHandle_AllSentinelsOmitsFields(t *testing.T) {
	info := DescribeHandle(winbridge.EmptyXcbHandle())
	if info.Fields != nil {
		t.Fatalf("expected nil fields for all-sentinel payload, got %v", info.Fields)
	}
}

func TestNewReport_ThroughTrustedOwner(t *testing.T) {
	owner := winbridge.AssertTrusted(winbridge.XcbHandle{Window: 0x42})
	meta := platform.WindowInfo{ID: 0x42, Title: "scratch", AppID: "Alacritty", PID: 1234}

	rep := NewReport(meta, owner)

	if rep.Window != meta {
		t.Fatalf("expected window metadata to pass through, got %+v", rep.Window)
	}
	if rep.Handle.Family != "xcb" || rep.Handle.Fields["window"] != "0x42" {
		t.Fatalf("unexpected handle description: %+v", rep.Handle)
	}
}
