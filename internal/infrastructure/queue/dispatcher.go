package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/emon00007/easysubstech/internal/api/metrics"
	"github.com/emon00007/easysubstech/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 64
)

// MailDispatcher delivers queued email on a fixed set of workers, sharded by
// recipient so mail to the same address is sent in enqueue order. Delivery
// is best-effort: failures are logged and dropped, never retried.
type MailDispatcher struct {
	workers []chan ports.MailJob
	mailer  ports.Mailer
	log     zerolog.Logger
}

// NewMailDispatcher creates a dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewMailDispatcher(numWorkers int, mailer ports.Mailer, log zerolog.Logger) *MailDispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &MailDispatcher{
		workers: make([]chan ports.MailJob, numWorkers),
		mailer:  mailer,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.MailJob, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *MailDispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands a job to the worker responsible for its recipient. When that
// worker's buffer is full the job is dropped rather than blocking the
// request path.
func (d *MailDispatcher) Enqueue(job ports.MailJob) {
	idx := d.shardIndex(job.To)
	select {
	case d.workers[idx] <- job:
		metrics.MailQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	default:
		metrics.MailDispatchTotal.WithLabelValues("dropped").Inc()
		d.log.Warn().Str("to", job.To).Msg("mail queue full, job dropped")
	}
}

// shardIndex maps a recipient deterministically to a worker index.
func (d *MailDispatcher) shardIndex(to string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(to))
	return int(h.Sum32()) % len(d.workers)
}

func (d *MailDispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.MailJob) {
	worker := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-ch:
			if !ok {
				return
			}
			metrics.MailQueueDepth.WithLabelValues(worker).Set(float64(len(ch)))
			if err := d.mailer.Send(job.To, job.Subject, job.Body); err != nil {
				metrics.MailDispatchTotal.WithLabelValues("error").Inc()
				d.log.Error().Err(err).
					Str("to", job.To).
					Int("worker_id", id).
					Msg("queued mail delivery failed")
				continue
			}
			metrics.MailDispatchTotal.WithLabelValues("ok").Inc()
		}
	}
}
