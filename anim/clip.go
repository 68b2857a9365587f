// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"errors"
	"fmt"
	"io"

	"cogentcore.org/stage/math32"
	"cogentcore.org/stage/scene"
	"gopkg.in/yaml.v3"
)

// ErrInvalidTrack is returned for tracks whose keys are inconsistent.
var ErrInvalidTrack = errors.New("invalid track")

// Track animates one property of one named node with keyframes.
type Track struct {

	// Node is the name of the animated node.
	Node string `yaml:"node"`

	// Property is the animated property.
	Property Property `yaml:"property"`

	// Times are the key times in seconds, ascending.
	Times []float32 `yaml:"times"`

	// Values holds Property.Stride() floats per key.
	Values []float32 `yaml:"values"`
}

// Validate checks that the track has keys in ascending order
// with the right number of values.
func (tr *Track) Validate() error {
	n := len(tr.Times)
	if n == 0 {
		return fmt.Errorf("track %s.%s: no keys: %w", tr.Node, tr.Property, ErrInvalidTrack)
	}
	if len(tr.Values) != n*tr.Property.Stride() {
		return fmt.Errorf("track %s.%s: %d values for %d keys: %w", tr.Node, tr.Property, len(tr.Values), n, ErrInvalidTrack)
	}
	for i := 1; i < n; i++ {
		if tr.Times[i] < tr.Times[i-1] {
			return fmt.Errorf("track %s.%s: times not ascending at key %d: %w", tr.Node, tr.Property, i, ErrInvalidTrack)
		}
	}
	return nil
}

func (tr *Track) vector3(i int) math32.Vector3 {
	v := tr.Values[i*3:]
	return math32.Vec3(v[0], v[1], v[2])
}

func (tr *Track) quat(i int) math32.Quat {
	v := tr.Values[i*4:]
	return math32.NewQuat(v[0], v[1], v[2], v[3])
}

// interval returns the key index at or before t and the fraction
// toward the next key.
func (tr *Track) interval(t float32) (int, float32) {
	n := len(tr.Times)
	if t <= tr.Times[0] {
		return 0, 0
	}
	if t >= tr.Times[n-1] {
		return n - 1, 0
	}
	i := 0
	for i < n-1 && tr.Times[i+1] <= t {
		i++
	}
	span := tr.Times[i+1] - tr.Times[i]
	if span <= 0 {
		return i + 1, 0
	}
	return i, (t - tr.Times[i]) / span
}

// SampleVector3 returns the position or scale value at time t.
func (tr *Track) SampleVector3(t float32) math32.Vector3 {
	i, f := tr.interval(t)
	if f == 0 {
		return tr.vector3(i)
	}
	return tr.vector3(i).Lerp(tr.vector3(i+1), f)
}

// SampleQuat returns the rotation value at time t.
func (tr *Track) SampleQuat(t float32) math32.Quat {
	i, f := tr.interval(t)
	if f == 0 {
		return tr.quat(i).Normal()
	}
	return tr.quat(i).Slerp(tr.quat(i+1), f).Normal()
}

// apply writes the value at time t into the pose, blended by weight
// from the rest pose.
func (tr *Track) apply(ps, rest *scene.Pose, t, weight float32) {
	ps.Defaults()
	switch tr.Property {
	case Position:
		ps.Pos = rest.Pos.Lerp(tr.SampleVector3(t), weight)
	case Scale:
		ps.Scale = rest.Scale.Lerp(tr.SampleVector3(t), weight)
	case Rotation:
		ps.Quat = rest.Quat.Slerp(tr.SampleQuat(t), weight)
	}
}

// Clip is a named, reusable set of tracks.
type Clip struct {

	// Name is the name of the clip.
	Name string `yaml:"name"`

	// Duration is the length of the clip in seconds;
	// zero means the time of the last key.
	Duration float32 `yaml:"duration"`

	// Tracks are the animated properties.
	Tracks []Track `yaml:"tracks"`
}

// Validate validates all tracks and fills in a zero Duration.
func (cl *Clip) Validate() error {
	var last float32
	for i := range cl.Tracks {
		tr := &cl.Tracks[i]
		if err := tr.Validate(); err != nil {
			return fmt.Errorf("clip %q: %w", cl.Name, err)
		}
		last = max(last, tr.Times[len(tr.Times)-1])
	}
	if cl.Duration <= 0 {
		cl.Duration = last
	}
	return nil
}

type clipFile struct {
	Clips []*Clip `yaml:"clips"`
}

// LoadClips decodes and validates clips from a YAML document of the form:
//
//	clips:
//	  - name: bob
//	    duration: 2
//	    tracks:
//	      - node: crate
//	        property: position
//	        times: [0, 1, 2]
//	        values: [0, 0.5, 0, 0, 1.5, 0, 0, 0.5, 0]
func LoadClips(r io.Reader) ([]*Clip, error) {
	var cf clipFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cf); err != nil {
		return nil, fmt.Errorf("decoding clips: %w", err)
	}
	for _, cl := range cf.Clips {
		if err := cl.Validate(); err != nil {
			return nil, err
		}
	}
	return cf.Clips, nil
}

// DemoClip returns a clip that bobs the crate up and down
// while turning it one revolution every two seconds.
func DemoClip() *Clip {
	rot := Track{Node: scene.CrateName, Property: Rotation}
	for i := range 5 {
		q := math32.NewQuatAxisAngle(math32.Vec3(0, 1, 0), float32(i)*math32.Pi/2)
		rot.Times = append(rot.Times, float32(i)*0.5)
		rot.Values = append(rot.Values, q.X, q.Y, q.Z, q.W)
	}
	return &Clip{
		Name:     "crate-bob",
		Duration: 2,
		Tracks: []Track{
			{
				Node:     scene.CrateName,
				Property: Position,
				Times:    []float32{0, 1, 2},
				Values:   []float32{0, 0.5, 0, 0, 1.5, 0, 0, 0.5, 0},
			},
			rot,
		},
	}
}
