package boundary

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrLoad wraps every level 1/2 load failure.
var ErrLoad = errors.New("boundary dataset load failed")

// Status is the loader lifecycle.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusReady
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	}
	return "idle"
}

// LevelFile is the document name of an administrative level.
func LevelFile(level int) string {
	return fmt.Sprintf("level_%d.json", level)
}

// Loader fetches the three boundary levels once per session.
type Loader struct {
	src    Source
	logger *zap.Logger

	loadMu sync.Mutex // serializes Load/Reload

	mu     sync.Mutex
	status Status
	ds     *Dataset
	err    error
}

func NewLoader(src Source, logger *zap.Logger) *Loader {
	return &Loader{src: src, logger: logger}
}

// Status reports idle, loading, ready or failed.
func (l *Loader) Status() Status {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.status
}

// Load returns the cached dataset (or cached failure), loading it on first use.
func (l *Loader) Load(ctx context.Context) (*Dataset, error) {
	l.loadMu.Lock()
	defer l.loadMu.Unlock()

	l.mu.Lock()
	st, ds, err := l.status, l.ds, l.err
	l.mu.Unlock()
	if st == StatusReady || st == StatusFailed {
		return ds, err
	}
	return l.load(ctx)
}

// Reload discards the cached result and fetches again.
func (l *Loader) Reload(ctx context.Context) (*Dataset, error) {
	l.loadMu.Lock()
	defer l.loadMu.Unlock()
	return l.load(ctx)
}

func (l *Loader) load(ctx context.Context) (*Dataset, error) {
	l.setResult(StatusLoading, nil, nil)

	var ds Dataset
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		ds.Level1, err = l.fetchLevel(gctx, 1)
		return err
	})
	g.Go(func() (err error) {
		ds.Level2, err = l.fetchLevel(gctx, 2)
		return err
	})
	g.Go(func() error {
		c, err := l.fetchLevel(gctx, 3)
		if err != nil {
			// not every deployment ships a third level
			l.logger.Debug("level 3 unavailable", zap.Error(err))
			return nil
		}
		ds.Level3 = c
		return nil
	})
	if err := g.Wait(); err != nil {
		err = fmt.Errorf("%w: %w", ErrLoad, err)
		l.logger.Error("failed to load boundaries", zap.Error(err))
		l.setResult(StatusFailed, nil, err)
		return nil, err
	}

	l.logger.Info("boundaries loaded",
		zap.Int("level1", ds.Level1.Len()),
		zap.Int("level2", ds.Level2.Len()),
		zap.Int("level3", ds.Level3.Len()),
		zap.Bool("level3_present", ds.Level3 != nil))
	l.setResult(StatusReady, &ds, nil)
	return &ds, nil
}

func (l *Loader) fetchLevel(ctx context.Context, level int) (*Collection, error) {
	data, err := l.src.Fetch(ctx, LevelFile(level))
	if err != nil {
		return nil, fmt.Errorf("level %d: %w", level, err)
	}
	return ParseCollection(level, data)
}

func (l *Loader) setResult(st Status, ds *Dataset, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.status, l.ds, l.err = st, ds, err
}
