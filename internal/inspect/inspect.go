// Package inspect renders winbridge handles and window metadata into
// serializable reports shared by the CLI and the MCP server.
package inspect

import (
	"fmt"

	"github.com/1broseidon/winbridge"
	"github.com/1broseidon/winbridge/internal/platform"
)

// Report couples window metadata with a view of its raw handle.
type Report struct {
	Window platform.WindowInfo `json:"window" yaml:"window"`
	Handle HandleInfo          `json:"handle" yaml:"handle"`
}

// HandleInfo is a serializable view of a winbridge.Handle. Field names match
// the payload struct fields; values are rendered as hex strings since they
// are opaque identifiers, not quantities. Zero (sentinel) fields are
// omitted, mirroring the contract that consumers must tolerate their absence.
type HandleInfo struct {
	Family string            `json:"family" yaml:"family"`
	Fields map[string]string `json:"fields,omitempty" yaml:"fields,omitempty"`
}

// NewReport queries the owner for its current handle and pairs it with the
// window's metadata.
func NewReport(info platform.WindowInfo, owner winbridge.Owner) Report {
	return Report{
		Window: info,
		Handle: DescribeHandle(owner.RawWindowHandle()),
	}
}

type field struct {
	name  string
	value uint64
}

// fields drops zero sentinels and hex-formats the rest.
func fields(fs ...field) map[string]string {
	out := make(map[string]string, len(fs))
	for _, f := range fs {
		if f.value == 0 {
			continue
		}
		out[f.name] = fmt.Sprintf("0x%x", f.value)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
