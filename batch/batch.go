// Package batch hashes many independent messages on a worker pool.
package batch

import (
	"context"
	"runtime"
	"strconv"
	"sync"

	"github.com/google/uuid"
	cmap "github.com/orcaman/concurrent-map"
	"github.com/panjf2000/ants"
	"massnet.org/macsum/bitseq"
	"massnet.org/macsum/logging"
	"massnet.org/macsum/sha256"
)

// DigestFunc computes the digest or MAC of one message.
type DigestFunc func(msg bitseq.Seq) sha256.Digest

// Job is one message to digest. Load is called on a worker goroutine.
type Job struct {
	Name string
	Load func() (bitseq.Seq, error)
}

// Result is the outcome of one Job.
type Result struct {
	Index  int
	Name   string
	Digest sha256.Digest
	Bits   uint64
	Err    error
}

// Runner digests jobs concurrently.
type Runner struct {
	workers int
	digest  DigestFunc
}

// NewRunner returns a Runner with the given number of workers. A
// non-positive count selects one worker per CPU.
func NewRunner(workers int, fn DigestFunc) *Runner {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Runner{workers: workers, digest: fn}
}

// Workers returns the pool size.
func (r *Runner) Workers() int {
	return r.workers
}

// Run digests all jobs and returns their results in job order. When ctx is
// cancelled, jobs not yet started are skipped and ctx.Err() is returned
// together with the results gathered so far.
func (r *Runner) Run(ctx context.Context, jobs []Job) ([]Result, error) {
	pool, err := ants.NewPool(r.workers)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	runID := uuid.New()
	logging.VPrint(logging.DEBUG, "batch run started", logging.LogFormat{
		"run":     runID.String(),
		"jobs":    len(jobs),
		"workers": r.workers,
	})

	results := cmap.New()
	var wg sync.WaitGroup
	for i := range jobs {
		if ctx.Err() != nil {
			break
		}
		index, job := i, jobs[i]
		wg.Add(1)
		task := func() {
			defer wg.Done()
			if ctx.Err() != nil {
				return
			}
			results.Set(strconv.Itoa(index), r.runJob(index, job))
		}
		if err := pool.Submit(task); err != nil {
			wg.Done()
			wg.Wait()
			return collect(results, len(jobs)), err
		}
	}
	wg.Wait()

	out := collect(results, len(jobs))
	logging.VPrint(logging.DEBUG, "batch run finished", logging.LogFormat{
		"run":       runID.String(),
		"completed": len(out),
	})
	return out, ctx.Err()
}

func (r *Runner) runJob(index int, job Job) Result {
	res := Result{Index: index, Name: job.Name}
	msg, err := job.Load()
	if err != nil {
		res.Err = err
		return res
	}
	res.Bits = msg.Len()
	res.Digest = r.digest(msg)
	return res
}

func collect(results cmap.ConcurrentMap, n int) []Result {
	out := make([]Result, 0, results.Count())
	for i := 0; i < n; i++ {
		if v, ok := results.Get(strconv.Itoa(i)); ok {
			out = append(out, v.(Result))
		}
	}
	return out
}
