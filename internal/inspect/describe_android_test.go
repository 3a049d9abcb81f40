//go:build android

package inspect

import (
	"testing"

	"github.com/1broseidon/winbridge"
)

func TestDescribeHandle_Android(t *testing.T) {
	info := DescribeHandle(winbridge.AndroidHandle{NativeWindow: 0x7f00})

	if info.Family != "android" {
		t.Fatalf("expected family android, got %q", info.Family)
	}
	if got := info.Fields["native_window"]; got != "0x7f00" {
		t.Fatalf("expected native_window 0x7f00, got %q", got)
	}
}

func TestDescribeHandle_UnixPayloadIsUnknownHere(t *testing.T) {
	// The X payloads still compile on android (the android constraint
	// implies linux), but this consumer does not describe them.
	info := DescribeHandle(winbridge.XcbHandle{Window: 0x2a})
	if info.Family != "unknown" {
		t.Fatalf("expected unknown, got %q", info.Family)
	}
}
