//go:build !linux && !freebsd && !netbsd && !openbsd && !dragonfly && !solaris && !windows && !darwin && !js

package inspect

import "github.com/1broseidon/winbridge"

// DescribeHandle renders a handle union value for display. No payload
// families are described on this platform yet, so every value lands where
// the union contract sends unrecognized variants anyway.
func DescribeHandle(winbridge.Handle) HandleInfo {
	return HandleInfo{Family: "unknown"}
}
