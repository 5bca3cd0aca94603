package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"
)

const (
	defaultWorkers = 8
	channelBuffer  = 64
)

type job struct {
	ctx  context.Context
	fn   func() error
	done chan error
}

// Serializer executes submitted work on a fixed set of workers using
// consistent hashing on the key, guaranteeing that two calls sharing a
// key never run concurrently. Login uses it keyed by account email so
// the read-then-write counter update cannot race with itself.
type Serializer struct {
	workers []chan job
	log     zerolog.Logger
}

// NewSerializer creates a Serializer with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewSerializer(numWorkers int, log zerolog.Logger) *Serializer {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	s := &Serializer{
		workers: make([]chan job, numWorkers),
		log:     log,
	}
	for i := range s.workers {
		s.workers[i] = make(chan job, channelBuffer)
	}
	return s
}

// Start launches all worker goroutines. Workers stop when ctx is
// cancelled; jobs still queued at that point fail with the context
// error.
func (s *Serializer) Start(ctx context.Context) {
	for i, ch := range s.workers {
		go s.runWorker(ctx, i, ch)
	}
}

// Do runs fn on the worker responsible for key and blocks for its
// result. If ctx expires while the job is queued, Do returns the
// context error and fn never runs.
func (s *Serializer) Do(ctx context.Context, key string, fn func() error) error {
	j := job{ctx: ctx, fn: fn, done: make(chan error, 1)}

	select {
	case s.workers[s.shardIndex(key)] <- j:
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-j.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// shardIndex maps a key deterministically to a worker index.
func (s *Serializer) shardIndex(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32()) % len(s.workers)
}

func (s *Serializer) runWorker(ctx context.Context, id int, ch <-chan job) {
	for {
		select {
		case <-ctx.Done():
			s.drain(ch, ctx.Err())
			return
		case j := <-ch:
			if err := j.ctx.Err(); err != nil {
				// Caller gave up while the job was queued.
				j.done <- err
				continue
			}
			j.done <- j.fn()
		}
	}
}

func (s *Serializer) drain(ch <-chan job, err error) {
	for {
		select {
		case j := <-ch:
			s.log.Warn().Err(err).Msg("serializer stopped with queued work")
			j.done <- err
		default:
			return
		}
	}
}
