//go:build js && wasm

package winbridge

import "fmt"

// WebHandle identifies a canvas element in a browser page.
type WebHandle struct {
	// CanvasID matches the data-raw-handle attribute on the canvas
	// element the surface is created from. Zero is the unset sentinel;
	// producers number canvases from 1.
	CanvasID uint32
}

// EmptyWebHandle returns a WebHandle with every field zero.
func EmptyWebHandle() WebHandle { return WebHandle{} }

func (WebHandle) rawWindowHandle() {}

func (h WebHandle) String() string {
	return fmt.Sprintf("web(canvas_id=%d)", h.CanvasID)
}
