package imagesrc

import (
	"context"
	"image"
	"sync"

	"github.com/sirupsen/logrus"
)

// Result carries the outcome of one load request back to the UI loop.
type Result struct {
	Generation uint64
	URI        string
	Image      *image.RGBA
	Err        error
}

// Fetcher resolves and decodes one reference.
type Fetcher func(ctx context.Context, ref string, size image.Point) (*image.RGBA, error)

// Loader resolves background images off the UI loop. Each Request supersedes
// the previous one: its context is cancelled and its result, if it still
// arrives, carries an older generation that consumers must discard.
type Loader struct {
	size    image.Point
	fetch   Fetcher
	log     logrus.FieldLogger
	results chan Result

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
	closed bool
	wg     sync.WaitGroup
}

// NewLoader returns a loader normalizing images to size using Fetch.
func NewLoader(size image.Point, log logrus.FieldLogger) *Loader {
	return NewLoaderWithFetcher(size, Fetch, log)
}

// NewLoaderWithFetcher returns a loader using a custom fetch function.
func NewLoaderWithFetcher(size image.Point, fetch Fetcher, log logrus.FieldLogger) *Loader {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if fetch == nil {
		fetch = Fetch
	}
	return &Loader{
		size:    size,
		fetch:   fetch,
		log:     log,
		results: make(chan Result, 1),
	}
}

// Request starts resolving uri and returns the generation its result will
// carry. An empty uri only cancels the in-flight load.
func (l *Loader) Request(uri string) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.gen++
	gen := l.gen
	if l.closed || uri == "" {
		return gen
	}
	ctx, cancel := context.WithCancel(context.Background())
	l.cancel = cancel
	l.wg.Add(1)
	go l.run(ctx, gen, uri)
	return gen
}

// Results delivers completed loads. Only the most recent generation matters.
func (l *Loader) Results() <-chan Result { return l.results }

// Close cancels any in-flight load and waits for its goroutine to exit.
func (l *Loader) Close() {
	l.mu.Lock()
	l.closed = true
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.mu.Unlock()
	l.wg.Wait()
}

func (l *Loader) run(ctx context.Context, gen uint64, uri string) {
	defer l.wg.Done()
	img, err := l.fetch(ctx, uri, l.size)
	if ctx.Err() != nil {
		l.log.WithFields(logrus.Fields{"uri": uri, "generation": gen}).Debug("image load superseded")
		return
	}
	select {
	case l.results <- Result{Generation: gen, URI: uri, Image: img, Err: err}:
	case <-ctx.Done():
	}
}
