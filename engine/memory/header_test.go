package memory

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewBlockHeader(t *testing.T) {
	h := NewBlockHeader(1024, 8, 64)
	if h.GetAllocatedBlockSize() != 1024 || h.GetAlignmentOffset() != 8 || h.GetPreviousHeaderBackOffset() != 64 {
		t.Errorf("unexpected header %+v", h)
	}
}

func TestNewBlockHeaderEmpty(t *testing.T) {
	for _, offsets := range [][2]uint32{{0, 0}, {4, 0}, {0, 32}, {7, 48}} {
		expectAssertion(t, func() { NewBlockHeader(0, offsets[0], offsets[1]) })
	}
}

func TestBlockHeaderLayout(t *testing.T) {
	buf := make([]byte, HeaderSize)
	NewBlockHeader(0x0102030405060708, 0x0a0b0c0d, 0x11121314).encode(buf)

	want := []byte{
		0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01,
		0x0d, 0x0c, 0x0b, 0x0a,
		0x14, 0x13, 0x12, 0x11,
	}
	if d := cmp.Diff(want, buf); d != "" {
		t.Error(d)
	}
	if got := decodeBlockHeader(buf); got != NewBlockHeader(0x0102030405060708, 0x0a0b0c0d, 0x11121314) {
		t.Errorf("decoded %+v", got)
	}
}
