package core

import (
	"errors"
)

var (
	ErrAssertion        = errors.New("assertion failed")
	ErrZeroSize         = errors.New("allocation size must be greater than zero")
	ErrOutOfMemory      = errors.New("not enough memory left in the allocator")
	ErrInvalidAlignment = errors.New("alignment must be a power of two")
	ErrInvalidMark      = errors.New("mark does not belong to this allocator state")
	ErrReleased         = errors.New("allocator memory already released")
	ErrUnknown          = errors.New("unknown")
)
