// Package session runs fill sessions: the driver loop that repeatedly
// picks a shape template and color, searches for a clear position, and
// commits the result until the session deadline.
package session

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kyiku/hackz-mosaic-back/internal/catalogue"
	"github.com/kyiku/hackz-mosaic-back/internal/geometry"
	"github.com/kyiku/hackz-mosaic-back/internal/model"
	"github.com/kyiku/hackz-mosaic-back/internal/placement"
	"github.com/kyiku/hackz-mosaic-back/internal/render"
	"github.com/kyiku/hackz-mosaic-back/internal/scene"
)

// Params are the clamped run parameters for one session.
type Params struct {
	Stretch  float64
	Seed     int64
	Duration time.Duration
}

// Summary describes a finished session.
type Summary struct {
	StartedAt time.Time
	EndedAt   time.Time
	Placed    int
}

// String formats the session result line.
func (s Summary) String() string {
	elapsed := s.EndedAt.Sub(s.StartedAt).Seconds()
	return fmt.Sprintf("%s - %s - %.1fs - %d",
		s.StartedAt.Format("15:04:05"),
		s.EndedAt.Format("15:04:05"),
		elapsed,
		s.Placed)
}

// Listener receives session events as they happen.
type Listener interface {
	PlacementAccepted(p scene.Placement)
	SessionFinished(s Summary)
}

// Config wires a session's collaborators. Catalogue and Params are
// required; the rest default sensibly.
type Config struct {
	Catalogue map[string]geometry.Outline
	Colors    []string
	Params    Params
	Bounds    placement.Bounds
	Buffer    float64
	Canvas    *render.Canvas

	// Now is the injected clock. Nil means time.Now.
	Now func() time.Time

	// Logf reports non-fatal placement failures. Nil means log.Printf.
	Logf func(format string, v ...interface{})
}

// Session owns one fill run: its registry, canvas, searcher, rng and
// listeners. Only Run mutates the registry; everything exposed to the
// HTTP surface reads through snapshots.
type Session struct {
	id     string
	params Params

	catalogue map[string]geometry.Outline
	names     []string
	colors    []string
	bounds    placement.Bounds
	canvas    *render.Canvas
	searcher  *placement.Searcher
	registry  *scene.Registry

	broadcaster *Broadcaster
	now         func() time.Time
	logf        func(format string, v ...interface{})

	mu        sync.RWMutex
	status    string
	rejected  int
	summary   Summary
	listeners []Listener
}

// New creates a session ready to Run.
func New(cfg Config) (*Session, error) {
	if len(cfg.Catalogue) == 0 {
		return nil, errors.New("session: empty catalogue")
	}
	colors := cfg.Colors
	if len(colors) == 0 {
		colors = render.DefaultColors
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	logf := cfg.Logf
	if logf == nil {
		logf = log.Printf
	}

	rng := rand.New(rand.NewSource(cfg.Params.Seed))
	s := &Session{
		id:        uuid.New().String(),
		params:    cfg.Params,
		catalogue: cfg.Catalogue,
		names:     catalogue.Names(cfg.Catalogue),
		colors:    colors,
		bounds:    cfg.Bounds,
		canvas:    cfg.Canvas,
		searcher: &placement.Searcher{
			Rand:   rng,
			Buffer: cfg.Buffer,
			Now:    cfg.Now,
		},
		registry:    scene.NewRegistry(),
		broadcaster: NewBroadcaster(),
		now:         now,
		logf:        logf,
		status:      model.StatusRunning,
	}
	s.listeners = append(s.listeners, s.broadcaster)
	return s, nil
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// Registry returns the session's scene registry.
func (s *Session) Registry() *scene.Registry { return s.registry }

// Canvas returns the session's render canvas, which may be nil for
// headless runs.
func (s *Session) Canvas() *render.Canvas { return s.canvas }

// Broadcaster returns the session's WebSocket fan-out.
func (s *Session) Broadcaster() *Broadcaster { return s.broadcaster }

// Status returns "running" or "finished".
func (s *Session) Status() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Counts returns the number of committed and rejected placements so
// far.
func (s *Session) Counts() (placed, rejected int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registry.Len(), s.rejected
}

// Summary returns the result of a finished session. The zero Summary is
// returned while the session is still running.
func (s *Session) Summary() Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.summary
}

// AddListener registers a listener for placement and finish events.
// Must be called before Run.
func (s *Session) AddListener(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// Run executes the fill loop until the session duration elapses: pick a
// random template and color, search for a clear anchor, commit and draw
// on success. A rejected shape is logged and the loop moves on; it
// never aborts the session. Run blocks and returns the summary.
func (s *Session) Run() Summary {
	started := s.now()
	deadline := started.Add(s.params.Duration)

	for !s.now().After(deadline) {
		name := s.names[s.searcher.Rand.Intn(len(s.names))]
		color := s.colors[s.searcher.Rand.Intn(len(s.colors))]

		p, err := s.searcher.TryPlace(
			s.catalogue[name], color, s.params.Stretch,
			s.bounds, s.registry.Snapshot(), deadline)
		if err != nil {
			s.recordRejection()
			s.logf("could not place shape %s: %v", name, err)
			continue
		}

		s.registry.Add(p)
		if s.canvas != nil {
			s.canvas.DrawPlacement(p)
		}
		s.notifyPlacement(p)
	}

	summary := Summary{StartedAt: started, EndedAt: s.now(), Placed: s.registry.Len()}

	s.mu.Lock()
	s.status = model.StatusFinished
	s.summary = summary
	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, l := range listeners {
		l.SessionFinished(summary)
	}
	return summary
}

func (s *Session) recordRejection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rejected++
}

func (s *Session) notifyPlacement(p scene.Placement) {
	s.mu.RLock()
	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.RUnlock()

	for _, l := range listeners {
		l.PlacementAccepted(p)
	}
}
