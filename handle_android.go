//go:build android

package winbridge

import "fmt"

// AndroidHandle identifies a native Android window.
type AndroidHandle struct {
	// NativeWindow is the ANativeWindow* backing the surface.
	NativeWindow uintptr
}

// EmptyAndroidHandle returns an AndroidHandle with every field zero.
func EmptyAndroidHandle() AndroidHandle { return AndroidHandle{} }

func (AndroidHandle) rawWindowHandle() {}

func (h AndroidHandle) String() string {
	return fmt.Sprintf("android(native_window=0x%x)", h.NativeWindow)
}
