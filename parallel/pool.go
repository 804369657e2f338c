package parallel

import (
	"runtime"
	"sync"
)

type (
	// WorkerFunc schedules a job. It may block while all workers are busy.
	WorkerFunc func(func())

	// WaitFunc blocks until queued jobs are finished. Passing true also
	// closes the queue, after which the pool takes no more jobs.
	WaitFunc func(done bool)

	CancelFunc func()
)

// Pool runs jobs on a fixed set of goroutines. A pool of one worker runs
// every job inline on the caller's goroutine.
type Pool struct {
	wg      sync.WaitGroup
	workers int
	Do      WorkerFunc
	Wait    WaitFunc
	Cancel  CancelFunc
}

func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	pool := &Pool{
		workers: numWorkers,
		Do: func(f func()) {
			f()
		},
		Wait:   func(bool) {},
		Cancel: func() {},
	}
	if numWorkers == 1 {
		return pool
	}

	jobs := make(chan func(), numWorkers)
	for range numWorkers {
		pool.wg.Go(func() {
			for f := range jobs {
				f()
			}
		})
	}

	pool.Do = func(f func()) {
		jobs <- f
	}
	pool.Cancel = sync.OnceFunc(func() { close(jobs) })
	pool.Wait = func(done bool) {
		if done {
			pool.Cancel()
		}
		pool.wg.Wait()
	}

	return pool
}

func (p *Pool) Workers() int {
	return p.workers
}

// Map runs fn over every element of in on the worker and returns the
// results in input order. It waits only for its own jobs, so the pool stays
// open for further work.
func Map[T, R any](worker WorkerFunc, in []T, fn func(int, T) R) []R {
	res := make([]R, len(in))

	var wg sync.WaitGroup
	wg.Add(len(in))
	for i, v := range in {
		worker(func() {
			defer wg.Done()
			res[i] = fn(i, v)
		})
	}
	wg.Wait()

	return res
}
