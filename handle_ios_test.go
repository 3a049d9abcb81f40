//go:build ios

package winbridge

import "testing"

func TestEmptyConstructors_AllFieldsZero(t *testing.T) {
	if h := EmptyUIKitHandle(); h.UIWindow != 0 || h.UIView != 0 || h.UIViewController != 0 {
		t.Fatalf("expected zero UIKitHandle, got %v", h)
	}
}

func TestAssertTrusted_RoundTripIdentity(t *testing.T) {
	h := UIKitHandle{UIWindow: 0x6000, UIView: 0x6010, UIViewController: 0x6020}
	if got := AssertTrusted(h).RawWindowHandle(); got != Handle(h) {
		t.Fatalf("round trip changed handle: put %v, got %v", h, got)
	}
}
