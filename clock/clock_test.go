// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTickDeltas(t *testing.T) {
	c := New(NewSequence(0, 0.016, 0.033))
	want := []float64{0, 0.016, 0.017}
	for i, w := range want {
		assert.InDelta(t, w, c.Tick(), 1e-9, "tick %d", i)
	}
}

func TestPreviousMatchesElapsed(t *testing.T) {
	vals := []float64{0.5, 1.25, 1.3, 7}
	c := New(NewSequence(vals...))
	for _, v := range vals {
		c.Tick()
		assert.Equal(t, v, c.State.Previous)
		assert.Equal(t, v, c.Elapsed())
	}
}

func TestBackwardJump(t *testing.T) {
	c := New(NewSequence(5.0, 4.9, 5.0))
	c.Tick()
	assert.Equal(t, 0.0, c.Tick())
	assert.Equal(t, 4.9, c.State.Previous)
	assert.InDelta(t, 0.1, c.Tick(), 1e-9)
}

func TestStateAdvance(t *testing.T) {
	var s State
	d, reg := s.Advance(2)
	assert.Equal(t, 2.0, d)
	assert.False(t, reg)
	d, reg = s.Advance(1)
	assert.Equal(t, 0.0, d)
	assert.True(t, reg)
	assert.Equal(t, 1.0, s.Previous)
}

func TestManual(t *testing.T) {
	m := &Manual{}
	c := New(m)
	m.Advance(0.25)
	assert.Equal(t, 0.25, c.Tick())
	m.Set(1)
	assert.Equal(t, 0.75, c.Tick())
}

func TestMonotonic(t *testing.T) {
	m := NewMonotonic()
	assert.False(t, m.Started())
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 0.0, m.Elapsed(), "starts on the first read")
	assert.True(t, m.Started())
	time.Sleep(time.Millisecond)
	assert.Greater(t, m.Elapsed(), 0.0)
}

func TestMonotonicFirstTick(t *testing.T) {
	c := New(nil)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 0.0, c.Tick())
	time.Sleep(time.Millisecond)
	d := c.Tick()
	assert.Greater(t, d, 0.0)
	assert.Less(t, d, 0.05)
}

func TestSequenceExhausted(t *testing.T) {
	s := NewSequence(1, 2)
	s.Elapsed()
	s.Elapsed()
	assert.Equal(t, 2.0, s.Elapsed())
	assert.Equal(t, 3, s.Reads())
	assert.Equal(t, 0.0, NewSequence().Elapsed())
}
