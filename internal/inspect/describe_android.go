//go:build android

package inspect

import "github.com/1broseidon/winbridge"

// DescribeHandle renders a handle union value for display. The default arm
// is mandatory: the union is non-exhaustive and this consumer must survive
// variants added after it was written.
func DescribeHandle(h winbridge.Handle) HandleInfo {
	switch h := h.(type) {
	case winbridge.AndroidHandle:
		return HandleInfo{
			Family: "android",
			Fields: fields(
				field{"native_window", uint64(h.NativeWindow)},
			),
		}
	default:
		return HandleInfo{Family: "unknown"}
	}
}
