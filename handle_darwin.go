//go:build darwin && !ios

package winbridge

import "fmt"

// AppKitHandle identifies an AppKit window on macOS.
type AppKitHandle struct {
	// NSWindow is a pointer to the NSWindow object.
	NSWindow uintptr
	// NSView is a pointer to the window's content NSView.
	NSView uintptr
}

// EmptyAppKitHandle returns an AppKitHandle with every field zero. Producers
// set only the fields they can supply.
func EmptyAppKitHandle() AppKitHandle { return AppKitHandle{} }

func (AppKitHandle) rawWindowHandle() {}

func (h AppKitHandle) String() string {
	return fmt.Sprintf("appkit(ns_window=0x%x, ns_view=0x%x)", h.NSWindow, h.NSView)
}
