package renderer

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/raytracer101/go-raytracer/pkg/core"
)

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	Tile       *Tile
	Seed       int64          // Seed for this tile's private random stream
	TaskID     int            // For deterministic ordering
	PixelStats [][]PixelStats // Shared pixel stats array to write to
}

// TileResult contains the result from rendering a tile
type TileResult struct {
	TaskID int
	Stats  RenderStats
}

// WorkerPool manages parallel tile rendering
type WorkerPool struct {
	taskQueue   chan TileTask
	resultQueue chan TileResult
	renderer    *TileRenderer
	numWorkers  int
	group       *errgroup.Group
}

// Worker handles individual tile rendering tasks
type Worker struct {
	ID          int
	renderer    *TileRenderer
	taskQueue   <-chan TileTask
	resultQueue chan<- TileResult
}

// NewWorkerPool creates a worker pool able to hold maxTasks queued tiles.
// A non-positive numWorkers uses one worker per CPU.
func NewWorkerPool(renderer *TileRenderer, maxTasks, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &WorkerPool{
		taskQueue:   make(chan TileTask, maxTasks),   // Buffer for all tiles
		resultQueue: make(chan TileResult, maxTasks), // Buffer for all results
		renderer:    renderer,
		numWorkers:  numWorkers,
	}
}

// Start launches the workers. Cancelling ctx stops them at the next tile.
func (wp *WorkerPool) Start(ctx context.Context) {
	group, ctx := errgroup.WithContext(ctx)
	wp.group = group

	for i := 0; i < wp.numWorkers; i++ {
		worker := &Worker{
			ID:          i,
			renderer:    wp.renderer,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		}
		group.Go(func() error {
			return worker.run(ctx)
		})
	}
}

// Stop closes the task queue, waits for the workers and closes the result queue.
// It returns the first worker error, typically the context's.
func (wp *WorkerPool) Stop() error {
	close(wp.taskQueue) // No more tasks
	err := wp.group.Wait()
	close(wp.resultQueue)
	return err
}

// SubmitTask submits a tile task to the worker pool
func (wp *WorkerPool) SubmitTask(task TileTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed tile result
func (wp *WorkerPool) GetResult() (TileResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(ctx context.Context) error {
	for task := range w.taskQueue {
		if err := ctx.Err(); err != nil {
			return err
		}

		// Each tile writes only inside its own bounds, so the shared array needs no lock
		sampler := core.NewSeededSampler(task.Seed)
		stats := w.renderer.RenderTileBounds(task.Tile.Bounds, task.PixelStats, sampler)

		w.resultQueue <- TileResult{
			TaskID: task.TaskID,
			Stats:  stats,
		}
	}
	return nil
}
