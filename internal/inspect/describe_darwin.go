//go:build darwin && !ios

package inspect

import "github.com/1broseidon/winbridge"

// DescribeHandle renders a handle union value for display. The default arm
// is mandatory: the union is non-exhaustive and this consumer must survive
// variants added after it was written.
func DescribeHandle(h winbridge.Handle) HandleInfo {
	switch h := h.(type) {
	case winbridge.AppKitHandle:
		return HandleInfo{
			Family: "appkit",
			Fields: fields(
				field{"ns_window", uint64(h.NSWindow)},
				field{"ns_view", uint64(h.NSView)},
			),
		}
	default:
		return HandleInfo{Family: "unknown"}
	}
}
