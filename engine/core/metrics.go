package core

import (
	"time"

	"github.com/spaghettifunk/bedrock/engine/containers"
)

const AVG_COUNT = 30

// FrameMetrics keeps a rolling average of frame times and a frames-per-second count.
type FrameMetrics struct {
	msTimes            *containers.RingQueue[float64]
	msSum              float64
	frames             int32
	accumulatedFrameMS float64
	fps                float64
}

func NewFrameMetrics() *FrameMetrics {
	return &FrameMetrics{
		msTimes: containers.NewRingQueue[float64](AVG_COUNT),
	}
}

func (fm *FrameMetrics) Update(frameElapsed time.Duration) {
	frameMS := float64(frameElapsed) / float64(time.Millisecond)
	if dropped, ok := fm.msTimes.Push(frameMS); ok {
		fm.msSum -= dropped
	}
	fm.msSum += frameMS

	fm.frames++
	fm.accumulatedFrameMS += frameMS
	if fm.accumulatedFrameMS >= 1000 {
		fm.fps = float64(fm.frames)
		fm.accumulatedFrameMS -= 1000
		fm.frames = 0
	}
}

// FPS is the number of frames of the last full second.
func (fm *FrameMetrics) FPS() float64 {
	return fm.fps
}

// FrameTime is the average frame time in milliseconds over the last AVG_COUNT frames.
func (fm *FrameMetrics) FrameTime() float64 {
	if fm.msTimes.IsEmpty() {
		return 0
	}
	return fm.msSum / float64(fm.msTimes.Len())
}
