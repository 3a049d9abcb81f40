//go:build windows

package inspect

import "github.com/1broseidon/winbridge"

// DescribeHandle renders a handle union value for display. The default arm
// is mandatory: the union is non-exhaustive and this consumer must survive
// variants added after it was written.
func DescribeHandle(h winbridge.Handle) HandleInfo {
	switch h := h.(type) {
	case winbridge.Win32Handle:
		return HandleInfo{
			Family: "win32",
			Fields: fields(
				field{"hwnd", uint64(h.Hwnd)},
				field{"hinstance", uint64(h.Hinstance)},
			),
		}
	case winbridge.WinRTHandle:
		return HandleInfo{
			Family: "winrt",
			Fields: fields(
				field{"core_window", uint64(h.CoreWindow)},
			),
		}
	default:
		return HandleInfo{Family: "unknown"}
	}
}
