// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package clock provides the animation clock: a monotonic source of
// elapsed seconds and the per-tick delta derived from it.
package clock

import (
	"log/slog"
	"sync"
	"time"
)

// Source reports the elapsed time in seconds since some fixed origin.
type Source interface {
	Elapsed() float64
}

// Monotonic is a [Source] backed by the Go monotonic clock. It starts
// on the first read, which returns 0. It is safe for concurrent use.
type Monotonic struct {
	mu    sync.Mutex
	start time.Time
}

// NewMonotonic returns a new [Monotonic] source, not yet started.
func NewMonotonic() *Monotonic {
	return &Monotonic{}
}

func (m *Monotonic) Elapsed() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.start.IsZero() {
		m.start = time.Now()
		return 0
	}
	return time.Since(m.start).Seconds()
}

// Started returns whether the source has been read.
func (m *Monotonic) Started() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return !m.start.IsZero()
}

// Manual is a [Source] whose elapsed time is set explicitly.
// It is safe for concurrent use.
type Manual struct {
	mu      sync.Mutex
	elapsed float64
}

// Set sets the elapsed time returned by subsequent reads.
func (m *Manual) Set(elapsed float64) {
	m.mu.Lock()
	m.elapsed = elapsed
	m.mu.Unlock()
}

// Advance adds d seconds to the elapsed time.
func (m *Manual) Advance(d float64) {
	m.mu.Lock()
	m.elapsed += d
	m.mu.Unlock()
}

func (m *Manual) Elapsed() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.elapsed
}

// Sequence is a [Source] that returns the given values in order,
// one per read, repeating the last value once exhausted.
type Sequence struct {
	Values []float64
	next   int
}

// NewSequence returns a new [Sequence] source for the given values.
func NewSequence(values ...float64) *Sequence {
	return &Sequence{Values: values}
}

func (s *Sequence) Elapsed() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	i := min(s.next, len(s.Values)-1)
	s.next++
	return s.Values[i]
}

// Reads returns the number of times Elapsed has been called.
func (s *Sequence) Reads() int {
	return s.next
}

// State holds the elapsed time observed by the previous tick.
// The zero value is ready to use.
type State struct {

	// Elapsed is the elapsed time read during the most recent tick.
	Elapsed float64

	// Previous is the elapsed time as of the end of the most recent
	// tick. It always equals Elapsed after [State.Advance] returns.
	Previous float64
}

// Advance records the given elapsed time and returns the delta since
// the previous tick, clamped to be non-negative. regressed is true
// when the source went backward and the delta was clamped.
func (s *State) Advance(elapsed float64) (delta float64, regressed bool) {
	delta = elapsed - s.Previous
	s.Elapsed = elapsed
	s.Previous = elapsed
	if delta < 0 {
		return 0, true
	}
	return delta, false
}

// Clock combines a [Source] with the [State] of the last tick.
type Clock struct {
	Source Source
	State  State
}

// New returns a new [Clock] reading from src;
// a nil src uses a new [Monotonic] source.
func New(src Source) *Clock {
	if src == nil {
		src = NewMonotonic()
	}
	return &Clock{Source: src}
}

// Tick reads the source once and returns the clamped delta in seconds.
func (c *Clock) Tick() float64 {
	elapsed := c.Source.Elapsed()
	prev := c.State.Previous
	delta, regressed := c.State.Advance(elapsed)
	if regressed {
		slog.Debug("clock went backward, clamping delta", "previous", prev, "elapsed", elapsed)
	}
	return delta
}

// Elapsed returns the elapsed time read during the most recent tick.
func (c *Clock) Elapsed() float64 {
	return c.State.Elapsed
}
