package smallbox

import "unsafe"

// moveOut reads the owned value out of its location and releases the
// backing heap block, if any, without running the payload's Drop. Shared by
// the erased and typed extraction paths.
func moveOut[T any](e *Erased) T {
	v := *Borrow[T](e)
	if !ShouldInline[T]() {
		// The value has been moved out by the read above; dropping the
		// only root lets the collector reclaim the block without Drop.
		e.heap = nil
		debugf("heap release: %d bytes", unsafe.Sizeof(v))
	}
	e.words = [NumWords]uintptr{}
	return v
}
