package engine

import "github.com/spaghettifunk/bedrock/engine/memory"

// Game is the application driven by the Engine. Every hook is optional.
type Game struct {
	ApplicationConfig *ApplicationConfig
	State             interface{}
	FnInitialize      Initialize
	FnUpdate          Update
	FnShutdown        Shutdown
}

type Initialize func() error

// Update runs once per frame. Everything taken from frame is handed back when
// the frame ends, so nothing allocated there may be kept across frames.
type Update func(deltaTime float64, frame *memory.StackAllocator) error

type Shutdown func() error
