//go:build !windows

package display

// logicalDPI is not queried outside Windows; the overlay is sized at the reference density
func logicalDPI() float64 {
	return ReferenceDPI
}
