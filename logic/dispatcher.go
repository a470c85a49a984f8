package logic

import (
	"social_sync/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_dispatcher.go -package mocks social_sync/logic IDispatcher

const maxParallelJobs = 5
const jobQueueCapacity = 64

type namedJob struct {
	name string
	fn   func()
}

// IDispatcher runs background jobs in-process on a bounded worker pool.
// Submit never blocks the caller; when the queue is full the job is
// dropped with an error log and Submit returns false. Callers whose work
// is retried from persistent state on the next tick may ignore the
// result; one-shot callers must check it.
type IDispatcher interface {
	Submit(name string, job func()) bool
}

type dispatcher struct {
	logger  shared.ILogger
	metrics IMetrics
	jobs    chan namedJob
}

func NewDispatcher(logger shared.ILogger, metrics IMetrics) IDispatcher {
	d := dispatcher{
		logger:  logger,
		metrics: metrics,
		jobs:    make(chan namedJob, jobQueueCapacity),
	}
	for i := 0; i < maxParallelJobs; i++ {
		go d.workerLoop()
	}
	return &d
}

func (d *dispatcher) Submit(name string, job func()) bool {
	select {
	case d.jobs <- namedJob{name: name, fn: job}:
		d.metrics.JobSubmitted(name)
		return true
	default:
		d.logger.Errorf("Job queue full; dropping job: %s", name)
		return false
	}
}

func (d *dispatcher) workerLoop() {
	for job := range d.jobs {
		d.runJob(job)
	}
}

func (d *dispatcher) runJob(job namedJob) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Errorf("Job %s panicked: %v", job.name, r)
		}
	}()
	d.logger.Debugf("Running job: %s", job.name)
	job.fn()
}
