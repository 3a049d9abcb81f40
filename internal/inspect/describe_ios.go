//go:build ios

package inspect

import "github.com/1broseidon/winbridge"

// DescribeHandle renders a handle union value for display. The default arm
// is mandatory: the union is non-exhaustive and this consumer must survive
// variants added after it was written.
func DescribeHandle(h winbridge.Handle) HandleInfo {
	switch h := h.(type) {
	case winbridge.UIKitHandle:
		return HandleInfo{
			Family: "uikit",
			Fields: fields(
				field{"ui_window", uint64(h.UIWindow)},
				field{"ui_view", uint64(h.UIView)},
				field{"ui_view_controller", uint64(h.UIViewController)},
			),
		}
	default:
		return HandleInfo{Family: "unknown"}
	}
}
