// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides the 3D scene graph: nodes, meshes, materials,
// lights and the camera.
package scene

import (
	"image/color"

	"cogentcore.org/core/base/ordmap"
	"cogentcore.org/core/colors"
	"cogentcore.org/stage/math32"
)

// Scene is the overall scene graph, containing nodes as children.
// Lights are stored separately, in order, keyed by name.
type Scene struct {

	// Children are the top-level nodes.
	Children []Node

	// Camera determines the view onto the scene.
	Camera Camera

	// Background is the clear color.
	Background color.RGBA

	// Lights are all the lights used in the scene.
	Lights *ordmap.Map[string, Light]
}

// Defaults sets default scene params (camera, bg = black).
func (sc *Scene) Defaults() {
	sc.Camera.Defaults()
	sc.Background = colors.FromRGB(0, 0, 0)
	if sc.Lights == nil {
		sc.Lights = ordmap.New[string, Light]()
	}
}

// New returns a new empty [Scene] with defaults.
func New() *Scene {
	sc := &Scene{}
	sc.Defaults()
	return sc
}

// Add appends the given node to the top level and returns it.
func (sc *Scene) Add(n Node) Node {
	sc.Children = append(sc.Children, n)
	return n
}

// AddLight adds the given light, replacing any light with the same name.
func (sc *Scene) AddLight(lt Light) {
	if sc.Lights == nil {
		sc.Lights = ordmap.New[string, Light]()
	}
	sc.Lights.Add(lt.AsLightBase().Name, lt)
}

// Light returns the light with the given name, or nil.
func (sc *Scene) Light(name string) Light {
	if sc.Lights == nil {
		return nil
	}
	lt, _ := sc.Lights.ValueByKeyTry(name)
	return lt
}

// Walk calls fn for every node in depth-first order, parents first.
// It stops descending when fn returns false.
func (sc *Scene) Walk(fn func(n Node) bool) {
	var walk func(nodes []Node)
	walk = func(nodes []Node) {
		for _, n := range nodes {
			if !fn(n) {
				continue
			}
			if gp, ok := n.(*Group); ok {
				walk(gp.Children)
			}
		}
	}
	walk(sc.Children)
}

// NodeByName returns the first node with the given name, or nil.
func (sc *Scene) NodeByName(name string) Node {
	var found Node
	sc.Walk(func(n Node) bool {
		if found != nil {
			return false
		}
		if n.AsNodeBase().Name == name {
			found = n
			return false
		}
		return true
	})
	return found
}

// UpdateWorldMatrices updates the local and world matrices of all nodes.
func (sc *Scene) UpdateWorldMatrices() {
	var update func(nodes []Node, par *math32.Matrix4)
	update = func(nodes []Node, par *math32.Matrix4) {
		for _, n := range nodes {
			ps := &n.AsNodeBase().Pose
			ps.UpdateMatrix()
			ps.UpdateWorldMatrix(par)
			if gp, ok := n.(*Group); ok {
				update(gp.Children, &ps.WorldMatrix)
			}
		}
	}
	update(sc.Children, nil)
}

// Solids returns all solids in the scene in depth-first order.
func (sc *Scene) Solids() []*Solid {
	var sds []*Solid
	sc.Walk(func(n Node) bool {
		if sd, ok := n.(*Solid); ok {
			sds = append(sds, sd)
		}
		return true
	})
	return sds
}

// Ambient returns the summed radiance of all ambient lights that are on.
func (sc *Scene) Ambient() math32.Vector3 {
	var sum math32.Vector3
	if sc.Lights == nil {
		return sum
	}
	for _, lt := range sc.Lights.Values() {
		if al, ok := lt.(*AmbientLight); ok && al.On {
			sum.SetAdd(al.Radiance())
		}
	}
	return sum
}

// DirLights returns all directional lights that are on, in order.
func (sc *Scene) DirLights() []*DirLight {
	var dls []*DirLight
	if sc.Lights == nil {
		return dls
	}
	for _, lt := range sc.Lights.Values() {
		if dl, ok := lt.(*DirLight); ok && dl.On {
			dls = append(dls, dl)
		}
	}
	return dls
}
