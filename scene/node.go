// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

// Node is an element of the scene graph.
type Node interface {

	// AsNodeBase returns the [NodeBase] for this Node.
	AsNodeBase() *NodeBase
}

// NodeBase holds the fields common to all nodes.
type NodeBase struct {

	// Name is used to look up nodes, for example as animation targets.
	Name string

	// Pose is the transform relative to the parent.
	Pose Pose
}

func (nb *NodeBase) AsNodeBase() *NodeBase {
	return nb
}

// Group is a node that contains other nodes, transformed by its Pose.
type Group struct {
	NodeBase

	// Children are the nodes in the group, in order.
	Children []Node
}

// NewGroup returns a new empty group.
func NewGroup(name string) *Group {
	gp := &Group{}
	gp.Name = name
	gp.Pose.Defaults()
	return gp
}

// Add appends the given node to the group and returns it.
func (gp *Group) Add(n Node) Node {
	gp.Children = append(gp.Children, n)
	return n
}

// Solid is a renderable node: a [Mesh] with a [Material].
type Solid struct {
	NodeBase

	// Mesh is the geometry to render.
	Mesh *Mesh

	// Material is the surface of the mesh.
	Material Material

	// CastShadow is whether the solid is drawn into shadow maps.
	CastShadow bool

	// ReceiveShadow is whether shadows are applied to the solid.
	ReceiveShadow bool
}

// NewSolid returns a new solid with the given mesh and a default material.
func NewSolid(name string, mesh *Mesh) *Solid {
	sd := &Solid{Mesh: mesh}
	sd.Name = name
	sd.Pose.Defaults()
	sd.Material.Defaults()
	return sd
}
