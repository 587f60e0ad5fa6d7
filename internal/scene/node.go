// Package scene implements the spatial node hierarchy: an arena of nodes
// addressed by handles, each storing its absolute pose. Writes to a pose
// propagate to every descendant so that a node's absolute pose always equals
// its parent's pose composed with its pose relative to that parent.
package scene

import (
	"slices"

	"github.com/Faultbox/yeentooth/internal/engine/shade"
	"github.com/Faultbox/yeentooth/internal/engine/texture"
	"github.com/Faultbox/yeentooth/pkg/math"
)

// NodeType discriminates the payload carried by a Node.
type NodeType uint8

const (
	// TypeContainer is a plain transform with no payload.
	TypeContainer NodeType = iota
	// TypeMesh groups triangles built by the mesh helpers.
	TypeMesh
	TypeTriangle
	TypeLight
	TypeCamera
)

var nodeTypeNames = [...]string{"container", "mesh", "triangle", "light", "camera"}

func (t NodeType) String() string {
	if int(t) < len(nodeTypeNames) {
		return nodeTypeNames[t]
	}
	return "unknown"
}

// NodeID is a handle into a Scene. The low 32 bits index the arena and the
// high 32 bits carry the slot generation, so handles to destroyed nodes are
// detected. The zero value is Nil.
type NodeID uint64

// Nil is the handle that refers to no node.
const Nil NodeID = 0

func makeID(index, gen uint32) NodeID {
	return NodeID(uint64(gen)<<32 | uint64(index))
}

func (id NodeID) index() uint32      { return uint32(id) }
func (id NodeID) generation() uint32 { return uint32(id >> 32) }

// Shading selects how a triangle is coloured. It is one of Flat, Gradient or
// Textured.
type Shading interface {
	shading()
}

// Flat fills the whole triangle with one colour.
type Flat struct {
	Color shade.Color
}

// Gradient interpolates a colour per corner.
type Gradient struct {
	Colors [3]shade.Color
}

// Textured samples Texture at UV coordinates given in texel units per corner.
type Textured struct {
	Texture *texture.Texture
	UV      [3]math.Vec2
}

func (Flat) shading()     {}
func (Gradient) shading() {}
func (Textured) shading() {}

// Triangle is the payload of a TypeTriangle node. Vertices are in the node's
// local frame.
type Triangle struct {
	Vertices [3]math.Vec3
	Shading  Shading
	Lit      bool
}

// LightKind selects the falloff model of a light.
type LightKind uint8

const (
	// PointLight falls off with the inverse square of distance and shines
	// from its position toward each sample.
	PointLight LightKind = iota
	// DirectionalLight has constant intensity and shines along its
	// orientation applied to the up vector.
	DirectionalLight
)

func (k LightKind) String() string {
	if k == DirectionalLight {
		return "directional"
	}
	return "point"
}

// Light is the payload of a TypeLight node.
type Light struct {
	Kind       LightKind
	Brightness float64
	Color      shade.Color
}

// Camera is the payload of a TypeCamera node. K is the perspective constant
// derived once from the field of view and the vertical resolution.
type Camera struct {
	FOV float64
	K   float64
}

// Node is a single element of the hierarchy. A single flat struct is used for
// every node type; Type says which payload pointer is set.
type Node struct {
	Name string
	Type NodeType

	Triangle *Triangle
	Light    *Light
	Camera   *Camera

	position    math.Vec3
	orientation math.Mat3
	parent      NodeID
	children    []NodeID
	tags        []string
}

// Position returns the absolute position.
func (n *Node) Position() math.Vec3 { return n.position }

// Orientation returns the absolute orientation. Its columns are the node's
// basis vectors and need not be orthonormal.
func (n *Node) Orientation() math.Mat3 { return n.orientation }

// Parent returns the parent handle, or Nil for standalone nodes and the root.
func (n *Node) Parent() NodeID { return n.parent }

// Children returns the ordered child handles. The slice must not be modified.
func (n *Node) Children() []NodeID { return n.children }

// Tags returns the node's tags in insertion order.
func (n *Node) Tags() []string { return n.tags }

// HasTag reports whether the node carries tag.
func (n *Node) HasTag(tag string) bool {
	return slices.Contains(n.tags, tag)
}
