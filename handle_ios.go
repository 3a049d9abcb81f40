//go:build ios

package winbridge

import "fmt"

// UIKitHandle identifies a UIKit window on iOS.
type UIKitHandle struct {
	// UIWindow is a pointer to the UIWindow object.
	UIWindow uintptr
	// UIView is a pointer to the window's root UIView.
	UIView uintptr
	// UIViewController is a pointer to the root UIViewController, when the
	// producer has one.
	UIViewController uintptr
}

// EmptyUIKitHandle returns a UIKitHandle with every field zero. Producers
// set only the fields they can supply.
func EmptyUIKitHandle() UIKitHandle { return UIKitHandle{} }

func (UIKitHandle) rawWindowHandle() {}

func (h UIKitHandle) String() string {
	return fmt.Sprintf("uikit(ui_window=0x%x, ui_view=0x%x, ui_view_controller=0x%x)",
		h.UIWindow, h.UIView, h.UIViewController)
}
