package memory

import (
	"cmp"
	"iter"
	m "math"
	"slices"
	"unsafe"

	"github.com/google/uuid"
	"github.com/spaghettifunk/bedrock/engine/core"
)

const (
	// MaxAlignment is the largest alignment Allocate accepts.
	MaxAlignment = core.MaxAllocatorAlignment
	// DefaultAlignment is the alignment AllocateDefault starts with.
	DefaultAlignment = 8
	// MaxSize is the largest arena a StackAllocator can manage, so that header
	// back offsets fit in 32 bits.
	MaxSize = m.MaxUint32
)

// Stats counts what happened to an allocator since it was created.
type Stats struct {
	Allocations int
	Rollbacks   int
	// HighWater is the largest number of bytes that were in use at once,
	// headers and padding included.
	HighWater int
}

/**
 * @brief A bump allocator over one contiguous block of memory.
 *
 * Blocks are never freed one by one: GetMark records the current top and
 * RollbackToMark drops everything allocated after it in O(1). Nothing is run
 * on the dropped blocks, so anything living there must be finished with first.
 *
 * Every payload is preceded by a BlockHeader and aligned on the real address
 * of the memory, which never moves.
 *
 * A StackAllocator is not safe for concurrent use. Keep one per goroutine or
 * guard it with a mutex.
 */
type StackAllocator struct {
	id               uuid.UUID
	memory           []byte
	ownsMemory       bool
	defaultAlignment int
	top              int
	lastHeader       int
	stats            Stats

	// epoch counts the rollbacks. floors holds the lowest top reached after
	// a given epoch: tops increase with epochs, so the first entry past the
	// epoch of a mark is the lowest top seen since the mark was taken.
	epoch  uint64
	floors []floor
}

type floor struct {
	epoch uint64
	top   int
}

// Mark is an opaque position of a StackAllocator, see GetMark. The zero Mark
// belongs to no allocator and is always rejected.
type Mark struct {
	owner      uuid.UUID
	epoch      uint64
	top        int
	lastHeader int
}

// Offset returns the top of the allocator at the time the mark was taken.
func (mk Mark) Offset() int {
	return mk.top
}

/**
 * @brief Creates an allocator that owns a new block of size bytes.
 */
func NewStackAllocator(size int) *StackAllocator {
	if !core.Assert(size > 0 && size <= MaxSize, "0 < size <= MaxSize", "invalid allocator size %d", size) {
		size = 0
	}
	s := newStackAllocator(make([]byte, size), true)
	core.LogDebug("stack allocator %s created with %d bytes", s.id, size)
	return s
}

/**
 * @brief Creates an allocator working inside buffer. The caller keeps the
 * ownership of buffer: it is never released nor cleared by the allocator.
 */
func NewStackAllocatorFromBuffer(buffer []byte) *StackAllocator {
	if !core.Assert(len(buffer) > 0 && len(buffer) <= MaxSize, "0 < len(buffer) <= MaxSize", "invalid buffer of %d bytes", len(buffer)) {
		buffer = nil
	}
	s := newStackAllocator(buffer, false)
	core.LogDebug("stack allocator %s created over a caller buffer of %d bytes", s.id, len(buffer))
	return s
}

func newStackAllocator(memory []byte, owns bool) *StackAllocator {
	return &StackAllocator{
		id:               uuid.New(),
		memory:           memory,
		ownsMemory:       owns,
		defaultAlignment: DefaultAlignment,
		lastHeader:       -1,
	}
}

func (s *StackAllocator) ID() uuid.UUID {
	return s.id
}

// Size returns the total size of the managed block.
func (s *StackAllocator) Size() int {
	return len(s.memory)
}

// Allocated returns the bytes in use, headers and padding included.
func (s *StackAllocator) Allocated() int {
	return s.top
}

// Available returns the bytes left above the top. Headers and padding of
// future allocations come out of it as well.
func (s *StackAllocator) Available() int {
	return len(s.memory) - s.top
}

func (s *StackAllocator) OwnsMemory() bool {
	return s.ownsMemory
}

func (s *StackAllocator) Stats() Stats {
	return s.stats
}

func (s *StackAllocator) DefaultAlignment() int {
	return s.defaultAlignment
}

// SetDefaultAlignment changes the alignment used by AllocateDefault. Live
// blocks are not affected.
func (s *StackAllocator) SetDefaultAlignment(alignment int) error {
	if !core.Assert(isValidAlignment(alignment), "alignment is a power of two <= MaxAlignment", "invalid default alignment %d", alignment) {
		return core.ErrInvalidAlignment
	}
	s.defaultAlignment = alignment
	return nil
}

// AllocateDefault reserves size bytes aligned to the default alignment.
func (s *StackAllocator) AllocateDefault(size int) ([]byte, error) {
	return s.Allocate(size, s.defaultAlignment)
}

/**
 * @brief Reserves size bytes aligned to alignment.
 *
 * @param size The payload size, greater than zero.
 * @param alignment A power of two, at most MaxAlignment.
 * @return The payload. Its capacity is capped to size so appending never
 * spills over the next block. Its content is whatever was there before.
 */
func (s *StackAllocator) Allocate(size, alignment int) ([]byte, error) {
	if !core.Assert(s.memory != nil, "s.memory != nil", "allocator %s has no memory", s.id) {
		return nil, core.ErrReleased
	}
	if !core.Assert(size > 0, "size > 0", "cannot allocate an empty block") {
		return nil, core.ErrZeroSize
	}
	if !core.Assert(isValidAlignment(alignment), "alignment is a power of two <= MaxAlignment", "invalid alignment %d", alignment) {
		return nil, core.ErrInvalidAlignment
	}

	base := uintptr(unsafe.Pointer(unsafe.SliceData(s.memory)))
	payloadAddress := alignUp(base+uintptr(s.top+HeaderSize), uintptr(alignment))
	payload := int(payloadAddress - base)

	if !core.Assert(payload <= len(s.memory) && size <= len(s.memory)-payload, "payload + size <= Size()",
		"allocator %s cannot fit %d bytes aligned to %d, %d bytes available", s.id, size, alignment, s.Available()) {
		return nil, core.ErrOutOfMemory
	}

	header := payload - HeaderSize
	backOffset := 0
	if s.lastHeader >= 0 {
		backOffset = header - s.lastHeader
	}
	NewBlockHeader(uint64(size), uint32(header-s.top), uint32(backOffset)).encode(s.memory[header:payload])

	end := payload + size
	s.top = end
	s.lastHeader = header
	s.stats.Allocations++
	s.stats.HighWater = max(s.stats.HighWater, s.top)

	return s.memory[payload:end:end], nil
}

// GetMark captures the current top. It costs nothing and allocates nothing.
func (s *StackAllocator) GetMark() Mark {
	return Mark{owner: s.id, epoch: s.epoch, top: s.top, lastHeader: s.lastHeader}
}

/**
 * @brief Frees every block allocated after mark was taken.
 *
 * The mark must come from this allocator, and no rollback or Clear since it
 * was taken may have gone below it: the blocks it saw would be gone, even if
 * newer blocks grew the top past it again.
 */
func (s *StackAllocator) RollbackToMark(mark Mark) error {
	if !core.Assert(mark.owner != uuid.Nil, "mark.owner != uuid.Nil", "the mark was not taken from any allocator") {
		return core.ErrInvalidMark
	}
	if !core.Assert(mark.owner == s.id, "mark.owner == s.id", "the mark belongs to allocator %s, not %s", mark.owner, s.id) {
		return core.ErrInvalidMark
	}
	if !core.Assert(mark.top <= s.top, "mark.top <= s.top", "the mark offset %d is above the top %d", mark.top, s.top) {
		return core.ErrInvalidMark
	}
	if low := s.lowestTopSince(mark.epoch); !core.Assert(mark.top <= low, "mark.top <= lowest top since the mark",
		"the mark offset %d was rolled back past, down to %d", mark.top, low) {
		return core.ErrInvalidMark
	}

	core.LogDebug("stack allocator %s rolled back from %d to %d", s.id, s.top, mark.top)
	s.lowerTo(mark.top, mark.lastHeader)
	s.stats.Rollbacks++
	return nil
}

// Clear rolls the allocator back to its empty state. Every mark taken before
// is rejected afterwards, except the ones taken on an empty allocator.
func (s *StackAllocator) Clear() {
	s.lowerTo(0, -1)
}

func (s *StackAllocator) lowerTo(top, lastHeader int) {
	s.epoch++
	i := len(s.floors)
	for i > 0 && s.floors[i-1].top >= top {
		i--
	}
	s.floors = append(s.floors[:i], floor{epoch: s.epoch, top: top})
	s.top = top
	s.lastHeader = lastHeader
}

func (s *StackAllocator) lowestTopSince(epoch uint64) int {
	i, _ := slices.BinarySearchFunc(s.floors, epoch+1, func(f floor, e uint64) int {
		return cmp.Compare(f.epoch, e)
	})
	if i == len(s.floors) {
		return s.top
	}
	return s.floors[i].top
}

/**
 * @brief Lets go of the memory. An owned block becomes garbage, a caller
 * buffer is simply forgotten. The allocator cannot be used afterwards.
 */
func (s *StackAllocator) Release() error {
	if !core.Assert(s.memory != nil, "s.memory != nil", "allocator %s already released", s.id) {
		return core.ErrReleased
	}
	core.LogDebug("stack allocator %s released (%d allocations, high water %d bytes)", s.id, s.stats.Allocations, s.stats.HighWater)
	s.memory = nil
	s.Clear()
	return nil
}

// LastHeader returns the header of the most recent live block, if any.
func (s *StackAllocator) LastHeader() (BlockHeader, bool) {
	if s.lastHeader < 0 || s.memory == nil {
		return BlockHeader{}, false
	}
	return decodeBlockHeader(s.memory[s.lastHeader:]), true
}

// Headers walks the live blocks from the most recent to the oldest.
func (s *StackAllocator) Headers() iter.Seq[BlockHeader] {
	return func(yield func(BlockHeader) bool) {
		if s.memory == nil {
			return
		}
		for offset := s.lastHeader; offset >= 0; {
			h := decodeBlockHeader(s.memory[offset:])
			if !yield(h) {
				return
			}
			if h.previousHeaderBackOffset == 0 {
				return
			}
			offset -= int(h.previousHeaderBackOffset)
		}
	}
}

func isValidAlignment(alignment int) bool {
	return alignment > 0 && alignment <= MaxAlignment && alignment&(alignment-1) == 0
}

func alignUp(address, alignment uintptr) uintptr {
	return (address + alignment - 1) &^ (alignment - 1)
}
