// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

//go:generate core generate

// Property is the node property animated by a [Track].
type Property int32 //enums:enum -transform lower

const (
	// Position animates Pose.Pos; values are 3 floats per key.
	Position Property = iota

	// Scale animates Pose.Scale; values are 3 floats per key.
	Scale

	// Rotation animates Pose.Quat; values are 4 floats (x, y, z, w) per key.
	Rotation
)

// Stride returns the number of floats per key for the property.
func (i Property) Stride() int {
	if i == Rotation {
		return 4
	}
	return 3
}

// LoopMode determines what an [Action] does when it reaches the end of its clip.
type LoopMode int32 //enums:enum -trim-prefix Loop -transform kebab

const (
	// LoopRepeat starts over from the beginning.
	LoopRepeat LoopMode = iota

	// LoopOnce stops at the end, holding the final pose.
	LoopOnce

	// LoopPingPong alternates between playing forward and backward.
	LoopPingPong
)
