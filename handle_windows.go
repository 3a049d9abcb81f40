//go:build windows

package winbridge

import "fmt"

// Win32Handle identifies a classic Win32 window.
type Win32Handle struct {
	// Hwnd is the HWND of the window.
	Hwnd uintptr
	// Hinstance is the HINSTANCE of the module that created the window.
	Hinstance uintptr
}

// EmptyWin32Handle returns a Win32Handle with every field zero. Producers
// set only the fields they can supply.
func EmptyWin32Handle() Win32Handle { return Win32Handle{} }

func (Win32Handle) rawWindowHandle() {}

func (h Win32Handle) String() string {
	return fmt.Sprintf("win32(hwnd=0x%x, hinstance=0x%x)", h.Hwnd, h.Hinstance)
}

// WinRTHandle identifies a WinRT CoreWindow. It is a separate payload from
// Win32Handle because a CoreWindow is not an HWND.
type WinRTHandle struct {
	// CoreWindow is a pointer to the ICoreWindow COM object.
	CoreWindow uintptr
}

// EmptyWinRTHandle returns a WinRTHandle with every field zero.
func EmptyWinRTHandle() WinRTHandle { return WinRTHandle{} }

func (WinRTHandle) rawWindowHandle() {}

func (h WinRTHandle) String() string {
	return fmt.Sprintf("winrt(core_window=0x%x)", h.CoreWindow)
}
