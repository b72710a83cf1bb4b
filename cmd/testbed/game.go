package main

import (
	"fmt"
	"sync"
	"time"

	"golang.org/x/exp/rand"

	"github.com/spaghettifunk/bedrock/engine"
	"github.com/spaghettifunk/bedrock/engine/core"
	"github.com/spaghettifunk/bedrock/engine/math"
	"github.com/spaghettifunk/bedrock/engine/memory"
	"github.com/spaghettifunk/bedrock/engine/systems"
)

const (
	// Radians per second.
	angularSpeed math.Float = 0.5
	jobsPerFrame            = 4
	pointsPerJob            = 64
	workers                 = 2
)

type TestGame struct {
	*engine.Game
}

type gameState struct {
	rng *rand.Rand

	// Three planes meeting at corner, moved every frame by spin.
	spin   *math.Transform
	planes [3]math.Plane
	corner math.Vec3

	// moon circles around pivot and crosses orbit on the way.
	orbit math.Circle
	moon  math.Circle
	pivot math.Vec2

	jobs *systems.JobSystem

	intersections map[math.Intersections]int
	mutex         sync.Mutex
	maxError      math.Float
}

func NewTestGame(config *engine.ApplicationConfig) *TestGame {
	tg := &TestGame{
		Game: &engine.Game{
			ApplicationConfig: config,
			State: &gameState{
				intersections: map[math.Intersections]int{},
			},
		},
	}

	tg.FnInitialize = tg.Initialize
	tg.FnUpdate = tg.Update
	tg.FnShutdown = tg.Shutdown

	return tg
}

func (g *TestGame) Initialize() error {
	core.LogDebug("TestGame Initialize fn....")

	state := g.State.(*gameState)
	state.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))

	state.corner = math.NewVec3(2, -4, 3)
	state.planes = [3]math.Plane{
		math.NewPlane(1, 1, 1, -1),
		math.NewPlane(1, 2, 3, -3),
		math.NewPlane(1, 2, 5, -9),
	}
	for _, p := range state.planes {
		if !p.Contains(state.corner) {
			return fmt.Errorf("plane %s does not go through %s", p, state.corner)
		}
	}

	state.spin = math.NewTransformFromPosition(math.NewVec3(0, 1, 0))
	state.spin.SetParent(math.NewTransformFromPositionRotationScale(
		math.NewVec3(-1, 0, 2), math.NewQuatIdentity(), math.NewVec3(1, 2, 1)))

	state.orbit = math.NewCircle(math.NewVec2Zero(), 2)
	state.pivot = math.NewVec2(3, 0)
	state.moon = math.NewCircle(math.NewVec2(6, 0), 1.5)

	jobs, err := systems.NewJobSystem(workers, jobsPerFrame, 16*1024)
	if err != nil {
		return err
	}
	state.jobs = jobs

	return nil
}

// angle converts radians to the unit the math package was built with.
func angle(radians math.Float) math.Float {
	if math.AngleUnitDegrees {
		return math.RadToDeg(radians)
	}
	return radians
}

func (g *TestGame) Update(deltaTime float64, frame *memory.StackAllocator) error {
	state := g.State.(*gameState)
	step := angle(angularSpeed * math.Float(deltaTime))

	state.spin.Rotate(math.NewQuatFromAxisAngle(math.NewVec3(0, 1, 1), step, true))
	world := state.spin.GetWorld()

	planes, err := memory.AllocateSlice[math.Plane](frame, len(state.planes))
	if err != nil {
		return err
	}
	for i, p := range state.planes {
		planes[i] = p.TransformBy(state.spin)
	}

	point, result := planes[0].IntersectionPoint(planes[1], planes[2])
	if result != math.IntersectionsOne {
		return fmt.Errorf("moved planes should meet at one point, got %s", result)
	}
	state.recordError(point.Distance(state.corner.Transform(world)))

	var wg sync.WaitGroup
	for i := 0; i < jobsPerFrame; i++ {
		wg.Add(1)
		if err := state.jobs.Submit(state.projectionJob(planes[0], state.rng.Uint64(), wg.Done)); err != nil {
			wg.Done()
			return err
		}
	}
	wg.Wait()

	state.moon = state.moon.RotateWithPivot(step, state.pivot)
	_, _, crossing := state.orbit.IntersectionPoint(state.moon)
	state.intersections[crossing]++

	// Built in frame memory, so debug logging costs no garbage.
	line, err := frame.AllocateDefault(96)
	if err != nil {
		return err
	}
	line = fmt.Appendf(line[:0], "moon %s crosses the orbit: %s", state.moon, crossing)
	core.LogDebug("%s", line)

	return nil
}

// projectionJob projects random points on plane and records how far they end
// up from it.
func (state *gameState) projectionJob(plane math.Plane, seed uint64, done func()) systems.JobTask {
	return systems.JobTask{
		OnStart: func(scratch *memory.StackAllocator) error {
			rng := rand.New(rand.NewSource(seed))
			points, err := memory.AllocateSlice[math.Vec3](scratch, pointsPerJob)
			if err != nil {
				return err
			}
			var worst math.Float
			for i := range points {
				points[i] = plane.PointProjection(math.NewVec3(
					math.Float(rng.Float64()*20-10),
					math.Float(rng.Float64()*20-10),
					math.Float(rng.Float64()*20-10)))
				worst = max(worst, plane.PointDistance(points[i]))
			}
			state.recordError(worst)
			return nil
		},
		OnCompletionCallback: done,
	}
}

func (state *gameState) recordError(err math.Float) {
	state.mutex.Lock()
	defer state.mutex.Unlock()
	state.maxError = max(state.maxError, err)
}

func (g *TestGame) Shutdown() error {
	state := g.State.(*gameState)
	if state.jobs != nil {
		if err := state.jobs.Shutdown(); err != nil {
			return err
		}
	}
	core.LogInfo("largest geometric error: %g", state.maxError)
	for _, kind := range []math.Intersections{math.IntersectionsNone, math.IntersectionsOne, math.IntersectionsTwo, math.IntersectionsInfinite} {
		core.LogInfo("circle intersections %s: %d frames", kind, state.intersections[kind])
	}
	return nil
}
