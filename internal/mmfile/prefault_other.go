//go:build !linux

package mmfile

// PreFault is a no-op on platforms without madvise-based pre-faulting.
// Access faults on these platforms surface as normal errors or, at worst,
// process termination rather than a recoverable signal.
func PreFault(data []byte) error {
	return nil
}
