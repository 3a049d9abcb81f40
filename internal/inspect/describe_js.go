//go:build js && wasm

package inspect

import (
	"fmt"

	"github.com/1broseidon/winbridge"
)

// DescribeHandle renders a handle union value for display. The default arm
// is mandatory: the union is non-exhaustive and this consumer must survive
// variants added after it was written.
func DescribeHandle(h winbridge.Handle) HandleInfo {
	switch h := h.(type) {
	case winbridge.WebHandle:
		info := HandleInfo{Family: "web"}
		if h.CanvasID != 0 {
			// Canvas IDs are ordinals, not addresses; decimal reads better.
			info.Fields = map[string]string{"canvas_id": fmt.Sprintf("%d", h.CanvasID)}
		}
		return info
	default:
		return HandleInfo{Family: "unknown"}
	}
}
