package solving

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/andrescamacho/craftsolver-go/internal/application/common"
	"github.com/andrescamacho/craftsolver-go/internal/domain/crafting"
	"github.com/andrescamacho/craftsolver-go/internal/domain/shared"
	"github.com/andrescamacho/craftsolver-go/internal/domain/solver"
)

// MetricsRecorder receives cache events. The Prometheus adapter implements it.
type MetricsRecorder interface {
	RecordBuild(duration time.Duration, stats solver.Stats)
	RecordBuildRejected()
	RecordRead(found bool, duration time.Duration)
	RecordCacheSize(size int)
}

type noOpRecorder struct{}

func (noOpRecorder) RecordBuild(time.Duration, solver.Stats) {}
func (noOpRecorder) RecordBuildRejected()                    {}
func (noOpRecorder) RecordRead(bool, time.Duration)          {}
func (noOpRecorder) RecordCacheSize(int)                     {}

// BuildInfo describes one built table pair
type BuildInfo struct {
	ID       uuid.UUID
	Key      solver.Key
	BuiltAt  time.Time
	Duration time.Duration
	Stats    solver.Stats
}

// Rotation is the read-out of a built solver for one status
type Rotation struct {
	Actions []crafting.Action
	Quality int
}

type entry struct {
	info   BuildInfo
	solver *solver.Solver
}

// Cache owns one Driver and Solver pair per crafting problem. A single mutex
// covers the whole map and is held for the full duration of Create and Read,
// including table construction.
type Cache struct {
	mu      sync.Mutex
	entries map[solver.Key]*entry
	clock   shared.Clock
	metrics MetricsRecorder
}

// Option configures a Cache
type Option func(*Cache)

// WithClock overrides the clock used for build timestamps
func WithClock(clock shared.Clock) Option {
	return func(c *Cache) { c.clock = clock }
}

// WithMetrics installs a metrics recorder
func WithMetrics(recorder MetricsRecorder) Option {
	return func(c *Cache) {
		if recorder != nil {
			c.metrics = recorder
		}
	}
}

// NewCache creates an empty cache
func NewCache(opts ...Option) *Cache {
	c := &Cache{
		entries: make(map[solver.Key]*entry),
		clock:   shared.NewRealClock(),
		metrics: noOpRecorder{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Create builds and stores the tables for the status' key. An existing entry
// is never replaced.
func (c *Cache) Create(ctx context.Context, status crafting.Status, progressActions, qualityActions []crafting.Action) (*BuildInfo, error) {
	logger := common.LoggerFromContext(ctx)
	key := solver.KeyOf(status)

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; exists {
		c.metrics.RecordBuildRejected()
		return nil, &ErrSolverAlreadyExists{Key: key}
	}

	start := c.clock.Now()
	driver := solver.NewDriver(status)
	driver.Init(progressActions)
	sv := solver.NewSolver(driver)
	sv.Init(qualityActions)

	e := &entry{
		info: BuildInfo{
			ID:       uuid.New(),
			Key:      key,
			BuiltAt:  start,
			Duration: c.clock.Now().Sub(start),
			Stats:    sv.Stats(),
		},
		solver: sv,
	}
	c.entries[key] = e

	c.metrics.RecordBuild(e.info.Duration, e.info.Stats)
	c.metrics.RecordCacheSize(len(c.entries))
	logger.Log("INFO", "solver built", map[string]interface{}{
		"build_id":     e.info.ID.String(),
		"key":          key.String(),
		"duration":     e.info.Duration.String(),
		"driver_cells": e.info.Stats.DriverCells,
		"solver_cells": e.info.Stats.SolverCells,
	})

	info := e.info
	return &info, nil
}

// Read returns the rotation the stored solver recommends from status.
func (c *Cache) Read(ctx context.Context, status crafting.Status) (*Rotation, error) {
	key := solver.KeyOf(status)

	c.mu.Lock()
	defer c.mu.Unlock()

	start := c.clock.Now()
	e, ok := c.entries[key]
	if !ok {
		c.metrics.RecordRead(false, c.clock.Now().Sub(start))
		return nil, &ErrSolverNotExists{Key: key}
	}

	quality, actions := e.solver.ReadAll(status)
	c.metrics.RecordRead(true, c.clock.Now().Sub(start))
	common.LoggerFromContext(ctx).Log("DEBUG", "solver read", map[string]interface{}{
		"build_id": e.info.ID.String(),
		"steps":    len(actions),
		"quality":  quality,
	})

	if actions == nil {
		actions = []crafting.Action{}
	}
	return &Rotation{Actions: actions, Quality: quality}, nil
}

// Lookup returns the build info for the status' key, if built.
func (c *Cache) Lookup(status crafting.Status) (*BuildInfo, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[solver.KeyOf(status)]
	if !ok {
		return nil, false
	}
	info := e.info
	return &info, true
}

// Len is the number of built solvers.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
