//go:build ios

package inspect

import (
	"testing"

	"github.com/1broseidon/winbridge"
)

func TestDescribeHandle_UIKit(t *testing.T) {
	info := DescribeHandle(winbridge.UIKitHandle{UIWindow: 0x6000, UIView: 0x6010})

	if info.Family != "uikit" {
		t.Fatalf("expected family uikit, got %q", info.Family)
	}
	if got := info.Fields["ui_window"]; got != "0x6000" {
		t.Fatalf("expected ui_window 0x6000, got %q", got)
	}
	if _, ok := info.Fields["ui_view_controller"]; ok {
		t.Fatalf("expected zero ui_view_controller field to be omitted")
	}
}
