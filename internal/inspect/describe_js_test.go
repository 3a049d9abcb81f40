//go:build js && wasm

package inspect

import (
	"testing"

	"github.com/1broseidon/winbridge"
)

func TestDescribeHandle_Web(t *testing.T) {
	info := DescribeHandle(winbridge.WebHandle{CanvasID: 3})

	if info.Family != "web" {
		t.Fatalf("expected family web, got %q", info.Family)
	}
	if got := info.Fields["canvas_id"]; got != "3" {
		t.Fatalf("expected canvas_id 3, got %q", got)
	}
}

func TestDescribeHandle_AllSentinelsOmitsFields(t *testing.T) {
	info := DescribeHandle(winbridge.EmptyWebHandle())
	if info.Fields != nil {
		t.Fatalf("expected nil fields for all-sentinel payload, got %v", info.Fields)
	}
}
