package memory

import (
	"encoding/binary"

	"github.com/spaghettifunk/bedrock/engine/core"
)

// HeaderSize is the number of bytes a BlockHeader takes inside the arena.
const HeaderSize = 16

/**
 * @brief Bookkeeping written right before every payload of a StackAllocator.
 *
 * The headers form a backward list: PreviousHeaderBackOffset is the distance
 * in bytes from this header to the one allocated just before it (0 for the
 * first block). Offsets are relative so the arena can be moved freely.
 */
type BlockHeader struct {
	allocatedBlockSize       uint64
	alignmentOffset          uint32
	previousHeaderBackOffset uint32
}

/**
 * @brief Creates a header.
 *
 * @param size The payload size in bytes. Must be greater than zero.
 * @param alignmentOffset The padding bytes placed before the header.
 * @param previousHeaderBackOffset The distance back to the previous header.
 */
func NewBlockHeader(size uint64, alignmentOffset, previousHeaderBackOffset uint32) BlockHeader {
	core.Assert(size > 0, "size > 0", "a memory block cannot be empty")
	return BlockHeader{
		allocatedBlockSize:       size,
		alignmentOffset:          alignmentOffset,
		previousHeaderBackOffset: previousHeaderBackOffset,
	}
}

func (h BlockHeader) GetAllocatedBlockSize() uint64 {
	return h.allocatedBlockSize
}

func (h BlockHeader) GetAlignmentOffset() uint32 {
	return h.alignmentOffset
}

func (h BlockHeader) GetPreviousHeaderBackOffset() uint32 {
	return h.previousHeaderBackOffset
}

func (h BlockHeader) encode(dst []byte) {
	binary.LittleEndian.PutUint64(dst[0:8], h.allocatedBlockSize)
	binary.LittleEndian.PutUint32(dst[8:12], h.alignmentOffset)
	binary.LittleEndian.PutUint32(dst[12:16], h.previousHeaderBackOffset)
}

func decodeBlockHeader(src []byte) BlockHeader {
	return BlockHeader{
		allocatedBlockSize:       binary.LittleEndian.Uint64(src[0:8]),
		alignmentOffset:          binary.LittleEndian.Uint32(src[8:12]),
		previousHeaderBackOffset: binary.LittleEndian.Uint32(src[12:16]),
	}
}
