//go:build !windows

package probe

import "fmt"

func dwmColorization() (uint32, error) {
	return 0, fmt.Errorf("%w: dwmapi.dll requires windows", ErrUnavailable)
}
