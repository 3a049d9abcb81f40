//go:build js && wasm

package winbridge

import "testing"

func TestEmptyConstructors_AllFieldsZero(t *testing.T) {
	if h := EmptyWebHandle(); h.CanvasID != 0 {
		t.Fatalf("expected zero WebHandle, got %v", h)
	}
}

func TestAssertTrusted_RoundTripIdentity(t *testing.T) {
	h := WebHandle{CanvasID: 3}
	if got := AssertTrusted(h).RawWindowHandle(); got != Handle(h) {
		t.Fatalf("round trip changed handle: put %v, got %v", h, got)
	}
}
