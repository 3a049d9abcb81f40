//go:build (linux && !android) || freebsd || netbsd || openbsd || dragonfly || solaris

package inspect

import "github.com/1broseidon/winbridge"

// DescribeHandle renders a handle union value for display. The default arm
// is mandatory: the union is non-exhaustive and this consumer must survive
// variants added after it was written.
func DescribeHandle(h winbridge.Handle) HandleInfo {
	switch h := h.(type) {
	case winbridge.XlibHandle:
		return HandleInfo{
			Family: "xlib",
			Fields: fields(
				field{"window", uint64(h.Window)},
				field{"display", uint64(h.Display)},
			),
		}
	case winbridge.XcbHandle:
		return HandleInfo{
			Family: "xcb",
			Fields: fields(
				field{"window", uint64(h.Window)},
				field{"connection", uint64(h.Connection)},
			),
		}
	case winbridge.WaylandHandle:
		return HandleInfo{
			Family: "wayland",
			Fields: fields(
				field{"surface", uint64(h.Surface)},
				field{"display", uint64(h.Display)},
			),
		}
	default:
		return HandleInfo{Family: "unknown"}
	}
}
