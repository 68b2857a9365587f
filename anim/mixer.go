// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package anim provides keyframe animation of scene nodes:
// clips of tracks, played by actions, advanced by a mixer.
package anim

import (
	"errors"
	"fmt"

	"cogentcore.org/stage/math32"
	"cogentcore.org/stage/scene"
)

// ErrNoNode is returned when a track names a node that is not in the scene.
var ErrNoNode = errors.New("no such node")

// Action plays a [Clip] on the nodes of a [Mixer]'s scene.
type Action struct {

	// Clip is the clip being played.
	Clip *Clip

	// Loop is what happens at the end of the clip.
	Loop LoopMode

	// TimeScale multiplies the delta time; negative plays backward.
	TimeScale float32

	// Weight blends the clip with the rest pose the nodes had when
	// the action was created, from 0 to 1.
	Weight float32

	// Time is the local time of the action in seconds, before looping.
	Time float32

	running  bool
	finished bool

	// poses are the resolved target of each track
	poses []*scene.Pose

	// rest holds each target pose as it was when the action was created
	rest []scene.Pose
}

// Play starts or resumes the action.
func (ac *Action) Play() *Action {
	ac.running = true
	ac.finished = false
	return ac
}

// Stop stops the action and rewinds it.
func (ac *Action) Stop() *Action {
	ac.running = false
	ac.Time = 0
	return ac
}

// IsRunning returns whether the action is playing.
func (ac *Action) IsRunning() bool {
	return ac.running
}

// Finished returns whether a [LoopOnce] action reached the end of its clip.
func (ac *Action) Finished() bool {
	return ac.finished
}

// ClipTime returns the time within the clip after applying the loop mode.
func (ac *Action) ClipTime() float32 {
	d := ac.Clip.Duration
	if d <= 0 {
		return 0
	}
	t := ac.Time
	switch ac.Loop {
	case LoopRepeat:
		t = math32.Mod(t, d)
		if t < 0 {
			t += d
		}
	case LoopPingPong:
		t = math32.Mod(t, 2*d)
		if t < 0 {
			t += 2 * d
		}
		if t > d {
			t = 2*d - t
		}
	default:
		t = math32.Clamp(t, 0, d)
	}
	return t
}

func (ac *Action) advance(dt float32) {
	ac.Time += dt * ac.TimeScale
	if ac.Loop != LoopOnce {
		return
	}
	d := ac.Clip.Duration
	if (ac.TimeScale >= 0 && ac.Time >= d) || (ac.TimeScale < 0 && ac.Time <= 0) {
		ac.Time = math32.Clamp(ac.Time, 0, d)
		ac.running = false
		ac.finished = true
	}
}

// Mixer plays actions on the nodes of a scene.
type Mixer struct {

	// Scene holds the animated nodes.
	Scene *scene.Scene

	// Time is the total time the mixer has been advanced, in seconds.
	Time float64

	actions []*Action
}

// NewMixer returns a new [Mixer] for the given scene.
func NewMixer(sc *scene.Scene) *Mixer {
	return &Mixer{Scene: sc}
}

// ClipAction returns the action for the given clip, creating it if needed.
// It fails if a track of the clip names a node that is not in the scene.
func (mx *Mixer) ClipAction(cl *Clip) (*Action, error) {
	for _, ac := range mx.actions {
		if ac.Clip == cl {
			return ac, nil
		}
	}
	ac := &Action{Clip: cl, TimeScale: 1, Weight: 1}
	for i := range cl.Tracks {
		tr := &cl.Tracks[i]
		n := mx.Scene.NodeByName(tr.Node)
		if n == nil {
			return nil, fmt.Errorf("clip %q: node %q: %w", cl.Name, tr.Node, ErrNoNode)
		}
		ps := &n.AsNodeBase().Pose
		rest := *ps
		rest.Defaults()
		ac.poses = append(ac.poses, ps)
		ac.rest = append(ac.rest, rest)
	}
	mx.actions = append(mx.actions, ac)
	return ac, nil
}

// Actions returns all actions created by [Mixer.ClipAction].
func (mx *Mixer) Actions() []*Action {
	return mx.actions
}

// StopAll stops every action.
func (mx *Mixer) StopAll() {
	for _, ac := range mx.actions {
		ac.Stop()
	}
}

// Update advances all running actions by dt seconds and writes the
// resulting values into the animated nodes.
func (mx *Mixer) Update(dt float32) error {
	if dt < 0 {
		return fmt.Errorf("anim: negative delta %g", dt)
	}
	mx.Time += float64(dt)
	for _, ac := range mx.actions {
		if !ac.running {
			continue
		}
		ac.advance(dt)
		t := ac.ClipTime()
		w := math32.Clamp(ac.Weight, 0, 1)
		for i := range ac.Clip.Tracks {
			ac.Clip.Tracks[i].apply(ac.poses[i], &ac.rest[i], t, w)
		}
	}
	return nil
}
