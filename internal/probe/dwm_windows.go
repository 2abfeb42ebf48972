//go:build windows

package probe

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	dwmapi                      = windows.NewLazySystemDLL("dwmapi.dll")
	procDwmGetColorizationColor = dwmapi.NewProc("DwmGetColorizationColor")
)

func dwmColorization() (uint32, error) {
	if err := procDwmGetColorizationColor.Find(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var colorization uint32
	var opaqueBlend int32
	hr, _, _ := procDwmGetColorizationColor.Call(
		uintptr(unsafe.Pointer(&colorization)),
		uintptr(unsafe.Pointer(&opaqueBlend)),
	)
	if int32(hr) < 0 {
		return 0, fmt.Errorf("DwmGetColorizationColor: HRESULT 0x%08X", uint32(hr))
	}
	return colorization, nil
}
