package systems

import (
	"errors"
	"fmt"
	"sync"

	"github.com/spaghettifunk/bedrock/engine/core"
	"github.com/spaghettifunk/bedrock/engine/memory"
)

// JobTask describes one unit of work. OnStart is the only required hook.
type JobTask struct {
	// OnStart runs on a worker. scratch is private to that worker and is
	// rolled back once the job returns.
	OnStart func(scratch *memory.StackAllocator) error
	// OnComplete runs after OnStart succeeded.
	OnComplete func()
	// OnFailure runs with the error OnStart returned.
	OnFailure func(err error)
	// OnCompletionCallback always runs last.
	OnCompletionCallback func()
}

/**
 * @brief A fixed pool of workers consuming submitted jobs.
 *
 * Each worker owns a StackAllocator of scratchSize bytes, since an allocator
 * must never be shared between goroutines.
 */
type JobSystem struct {
	numWorkers int
	jobQueue   chan JobTask
	wg         sync.WaitGroup

	// done unblocks the submitters waiting on a full queue. The queue is only
	// closed once every submitter that got past isClosed has returned.
	done       chan struct{}
	submitters sync.WaitGroup
	mutex      sync.Mutex
	isClosed   bool
}

var ErrNoWorkers = fmt.Errorf("attempting to create worker pool with less than 1 worker")
var ErrNegativeChannelSize = fmt.Errorf("attempting to create worker pool with a negative channel size")
var ErrJobSystemClosed = errors.New("job system already shut down")

func NewJobSystem(numWorkers int, channelSize int, scratchSize int) (*JobSystem, error) {
	if numWorkers <= 0 {
		return nil, ErrNoWorkers
	}
	if channelSize < 0 {
		return nil, ErrNegativeChannelSize
	}
	if scratchSize <= 0 {
		return nil, fmt.Errorf("invalid worker scratch size %d: %w", scratchSize, core.ErrZeroSize)
	}

	js := &JobSystem{
		numWorkers: numWorkers,
		jobQueue:   make(chan JobTask, channelSize),
		done:       make(chan struct{}),
	}

	js.start(scratchSize)

	return js, nil
}

func (js *JobSystem) start(scratchSize int) {
	for i := 0; i < js.numWorkers; i++ {
		scratch := memory.NewStackAllocator(scratchSize)
		js.wg.Add(1)
		go func() {
			defer js.wg.Done()
			defer func() { _ = scratch.Release() }()
			for job := range js.jobQueue {
				js.run(job, scratch)
			}
		}()
	}
}

func (js *JobSystem) run(job JobTask, scratch *memory.StackAllocator) {
	mark := scratch.GetMark()
	err := job.OnStart(scratch)
	if rollbackErr := scratch.RollbackToMark(mark); rollbackErr != nil {
		err = errors.Join(err, rollbackErr)
	}

	if err != nil {
		core.LogError("job failed: %s", err)
		if job.OnFailure != nil {
			job.OnFailure(err)
		}
	} else if job.OnComplete != nil {
		job.OnComplete()
	}

	if job.OnCompletionCallback != nil {
		job.OnCompletionCallback()
	}
}

/**
 * @brief Shuts the job system down, waiting for the queued jobs to finish.
 * Submitters still waiting for room in the queue get ErrJobSystemClosed.
 */
func (js *JobSystem) Shutdown() error {
	js.mutex.Lock()
	if js.isClosed {
		js.mutex.Unlock()
		return ErrJobSystemClosed
	}
	js.isClosed = true
	close(js.done)
	js.mutex.Unlock()

	js.submitters.Wait()
	close(js.jobQueue)
	js.wg.Wait()
	return nil
}

/**
 * @brief Submits the provided job to be queued for execution. Blocks while
 * the queue is full, until a worker takes a job or the system shuts down.
 *
 * Jobs may submit other jobs, but a worker waiting for room in the queue does
 * not run anything meanwhile.
 */
func (js *JobSystem) Submit(jt JobTask) error {
	if jt.OnStart == nil {
		return errors.New("job has no OnStart function")
	}
	js.mutex.Lock()
	if js.isClosed {
		js.mutex.Unlock()
		return ErrJobSystemClosed
	}
	js.submitters.Add(1)
	js.mutex.Unlock()
	defer js.submitters.Done()

	select {
	case js.jobQueue <- jt:
		return nil
	case <-js.done:
		return ErrJobSystemClosed
	}
}
