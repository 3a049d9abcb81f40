// Package winbridge provides standard types for passing a window's raw,
// platform-native handle from a window-creation library to a rendering or
// graphics library without either side importing the other.
//
// The package does not create windows, open connections, or validate handles.
// It only defines the shape of the handle data and the trust contract around
// it: who may claim a handle is valid, and what that claim obligates them to.
//
// Which payload types exist depends on the build target. Each payload struct
// is a plain bag of OS-native scalars with an Empty constructor, so producers
// can fill in only the fields they have and later versions can add fields
// without breaking callers.
package winbridge

// Handle is the platform-tagged union of raw window handle payloads. Exactly
// the payload types compiled for the current target implement it.
//
// The set of payload types grows over time, so consumers matching on a Handle
// must always carry a default arm:
//
//	switch h := handle.(type) {
//	case winbridge.XcbHandle:
//		// use h.Window
//	default:
//		// variant from a newer version, or a platform family
//		// this consumer does not support
//	}
//
// Handle values are plain data: comparable, usable as map keys, and equal
// exactly when both the payload type and every payload field are equal. A
// Handle never owns the native resource it names; the window's lifetime is
// managed entirely by its owner.
type Handle interface {
	// rawWindowHandle restricts the union to payload types declared in
	// this package.
	rawWindowHandle()
}
