//go:build linux || freebsd || netbsd || openbsd || dragonfly || solaris

package winbridge

import "fmt"

// XlibHandle identifies a window owned through an Xlib connection.
type XlibHandle struct {
	// Window is the Xlib window ID.
	Window uint64
	// Display is the Display* of the connection that owns Window.
	Display uintptr
}

// EmptyXlibHandle returns an XlibHandle with every field zero. Producers set
// only the fields they can supply.
func EmptyXlibHandle() XlibHandle { return XlibHandle{} }

func (XlibHandle) rawWindowHandle() {}

func (h XlibHandle) String() string {
	return fmt.Sprintf("xlib(window=0x%x, display=0x%x)", h.Window, h.Display)
}

// XcbHandle identifies a window owned through an XCB connection.
//
// Xlib and XCB are distinct payloads even though both speak the X protocol:
// their connection objects are not interchangeable, and a consumer built
// against one cannot use the other's fields.
type XcbHandle struct {
	// Window is the X window ID.
	Window uint32
	// Connection is the xcb_connection_t* that owns Window.
	Connection uintptr
}

// EmptyXcbHandle returns an XcbHandle with every field zero.
func EmptyXcbHandle() XcbHandle { return XcbHandle{} }

func (XcbHandle) rawWindowHandle() {}

func (h XcbHandle) String() string {
	return fmt.Sprintf("xcb(window=0x%x, connection=0x%x)", h.Window, h.Connection)
}

// WaylandHandle identifies a surface on a Wayland compositor.
type WaylandHandle struct {
	// Surface is the wl_surface* for the window.
	Surface uintptr
	// Display is the wl_display* the surface belongs to.
	Display uintptr
}

// EmptyWaylandHandle returns a WaylandHandle with every field zero.
func EmptyWaylandHandle() WaylandHandle { return WaylandHandle{} }

func (WaylandHandle) rawWindowHandle() {}

func (h WaylandHandle) String() string {
	return fmt.Sprintf("wayland(surface=0x%x, display=0x%x)", h.Surface, h.Display)
}
