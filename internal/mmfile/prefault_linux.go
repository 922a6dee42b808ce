//go:build linux

package mmfile

import (
	"fmt"
	"runtime/debug"

	"golang.org/x/sys/unix"
)

// madvisePopulateRead pre-faults pages and surfaces EFAULT as an error
// instead of letting a later access raise SIGBUS. Available since Linux
// 5.14; older kernels fall back to a manual touch-every-page pass.
const madvisePopulateRead = 22

// PreFault forces every page backing data to be faulted in, so a truncated
// or otherwise inaccessible mapping is caught here rather than as a SIGBUS
// during an unrelated query later on.
func PreFault(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	if err := unix.Madvise(data, madvisePopulateRead); err == nil {
		return nil
	}
	return manualPreFault(data)
}

func manualPreFault(data []byte) (retErr error) {
	old := debug.SetPanicOnFault(true)
	defer debug.SetPanicOnFault(old)
	defer func() {
		if r := recover(); r != nil {
			retErr = fmt.Errorf("mmfile: inaccessible page in mapped region: %v", r)
		}
	}()

	const pageSize = 4096
	var sink byte
	for i := 0; i < len(data); i += pageSize {
		sink ^= data[i]
	}
	sink ^= data[len(data)-1]
	_ = sink
	return nil
}
