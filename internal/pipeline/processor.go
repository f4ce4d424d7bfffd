package pipeline

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/AnyUserName/gifscii-cli/internal/cache"
	"github.com/AnyUserName/gifscii-cli/internal/gifseq"
	"github.com/AnyUserName/gifscii-cli/internal/hasher"
)

// DefaultCacheSize bounds the processed-frame cache. Identical frames
// are common (static GIF segments), unbounded growth is not worth it.
const DefaultCacheSize = 64

// Processor maps composited frames to processed frames concurrently.
type Processor struct {
	settings Settings
	setHash  string
	workers  int
	cache    *cache.Cache
}

// New creates a processor. workers <= 0 means NumCPU.
func New(s Settings, workers int) *Processor {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Processor{
		settings: s,
		setHash:  s.Hash(),
		workers:  workers,
		cache:    cache.New(DefaultCacheSize),
	}
}

// Run processes every frame and returns results in input order. Frames
// share no mutable state, so they run on a bounded worker pool; the
// results slice is index-addressed to preserve ordering regardless of
// completion order. Cancellation is honored between frames: once ctx is
// done, no further frames are dispatched and ctx.Err() is returned.
func (p *Processor) Run(ctx context.Context, frames []gifseq.Frame) ([]ProcessedFrame, error) {
	if err := p.settings.Validate(); err != nil {
		return nil, err
	}
	if len(frames) == 0 {
		return nil, gifseq.ErrEmptySequence
	}

	results := make([]ProcessedFrame, len(frames))
	errs := make([]error, len(frames))
	var wg sync.WaitGroup
	sem := make(chan struct{}, p.workers)

	cancelled := false
	for i, fr := range frames {
		if ctx.Err() != nil {
			cancelled = true
			break
		}
		wg.Add(1)
		go func(idx int, frame gifseq.Frame) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			results[idx], errs[idx] = p.processOne(idx, frame)
		}(i, fr)
	}
	wg.Wait()

	if cancelled {
		return nil, ctx.Err()
	}
	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
	}
	return results, nil
}

// processOne runs a single frame, consulting the dedup cache first.
func (p *Processor) processOne(idx int, frame gifseq.Frame) (ProcessedFrame, error) {
	key := hasher.ContentHash(frame.Image.Pix, 16) + ":" + p.setHash

	if v, ok := p.cache.Get(key); ok {
		cached := v.(ProcessedFrame)
		cached.Index = idx
		cached.DelayMS = frame.DelayMS
		return cached, nil
	}

	out, err := Process(frame, p.settings)
	if err != nil {
		return ProcessedFrame{}, err
	}
	out.Index = idx
	// Lines/Colors are immutable after Process; sharing them between
	// cache hits is safe.
	p.cache.Put(key, out)
	return out, nil
}
