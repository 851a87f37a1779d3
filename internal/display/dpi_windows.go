//go:build windows

package display

import "github.com/lxn/win"

// logicalDPI reads LOGPIXELSX from the screen device context
func logicalDPI() float64 {
	hdc := win.GetDC(0)
	if hdc == 0 {
		return 0
	}
	defer win.ReleaseDC(0, hdc)

	return float64(win.GetDeviceCaps(hdc, win.LOGPIXELSX))
}
