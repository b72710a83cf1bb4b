package memory

import (
	"unsafe"

	"github.com/spaghettifunk/bedrock/engine/core"
)

/**
 * @brief Allocates n values of T from s, aligned for T. The values are not
 * zeroed.
 *
 * T must not contain pointers: the garbage collector does not look inside
 * the arena, so anything referenced only from there may be collected.
 */
func AllocateSlice[T any](s *StackAllocator, n int) ([]T, error) {
	var zero T
	size, alignment := int(unsafe.Sizeof(zero)), int(unsafe.Alignof(zero))
	if !core.Assert(size > 0, "unsafe.Sizeof(T) > 0", "cannot allocate zero sized values") {
		return nil, core.ErrZeroSize
	}
	if !core.Assert(n > 0, "n > 0", "cannot allocate %d values", n) {
		return nil, core.ErrZeroSize
	}
	if !core.Assert(n <= MaxSize/size, "n*size <= MaxSize", "%d values of %d bytes exceed any allocator", n, size) {
		return nil, core.ErrOutOfMemory
	}

	block, err := s.Allocate(n*size, alignment)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(block))), n), nil
}
