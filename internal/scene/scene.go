package scene

import (
	"errors"
	gomath "math"

	"go.uber.org/zap"

	"github.com/Faultbox/yeentooth/internal/logger"
	"github.com/Faultbox/yeentooth/pkg/math"
)

var (
	// ErrInvalidNode is returned for Nil, stale or out-of-range handles.
	ErrInvalidNode = errors.New("scene: invalid node")
	// ErrRoot is returned when an operation would detach or destroy the root.
	ErrRoot = errors.New("scene: operation not allowed on root")
	// ErrCycle is returned when attaching a node beneath itself.
	ErrCycle = errors.New("scene: attach would create a cycle")
)

type slot struct {
	node Node
	gen  uint32
	live bool
}

// Scene owns every node in an arena. It is not safe for concurrent use.
type Scene struct {
	slots []slot
	free  []uint32
	root  NodeID
	live  int
	log   *zap.Logger
}

// Option configures a Scene.
type Option func(*Scene)

// WithLogger sets the logger used for diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(s *Scene) {
		if l != nil {
			s.log = l
		}
	}
}

// New creates a scene holding only its root node.
func New(opts ...Option) *Scene {
	s := &Scene{log: logger.Named("scene")}
	for _, opt := range opts {
		opt(s)
	}
	s.root = s.alloc(Node{Name: "root", Type: TypeContainer})
	return s
}

// Root returns the root handle. The root is never detached or destroyed.
func (s *Scene) Root() NodeID { return s.root }

// Len returns the number of live nodes, including the root.
func (s *Scene) Len() int { return s.live }

func (s *Scene) alloc(n Node) NodeID {
	n.orientation = math.Identity3()
	n.parent = Nil
	var idx uint32
	if k := len(s.free); k > 0 {
		idx = s.free[k-1]
		s.free = s.free[:k-1]
	} else {
		idx = uint32(len(s.slots))
		s.slots = append(s.slots, slot{})
	}
	sl := &s.slots[idx]
	sl.gen++
	if sl.gen == 0 {
		sl.gen = 1
	}
	sl.node = n
	sl.live = true
	s.live++
	return makeID(idx, sl.gen)
}

func (s *Scene) release(id NodeID) {
	sl := &s.slots[id.index()]
	sl.node = Node{}
	sl.live = false
	s.free = append(s.free, id.index())
	s.live--
}

func (s *Scene) get(id NodeID) *Node {
	if id == Nil {
		return nil
	}
	idx := id.index()
	if int(idx) >= len(s.slots) {
		return nil
	}
	sl := &s.slots[idx]
	if !sl.live || sl.gen != id.generation() {
		return nil
	}
	return &sl.node
}

// Node resolves a handle. The pointer is valid until the node is destroyed;
// pose must only be changed through Scene methods.
func (s *Scene) Node(id NodeID) (*Node, bool) {
	n := s.get(id)
	return n, n != nil
}

// Valid reports whether id refers to a live node.
func (s *Scene) Valid(id NodeID) bool {
	return s.get(id) != nil
}

// NewNode creates a standalone container with identity pose.
func (s *Scene) NewNode(name string, tags ...string) NodeID {
	return s.newNode(Node{Name: name, Type: TypeContainer}, tags)
}

// NewMesh creates a standalone mesh group.
func (s *Scene) NewMesh(name string, tags ...string) NodeID {
	return s.newNode(Node{Name: name, Type: TypeMesh}, tags)
}

// NewTriangle creates a standalone triangle. A nil shading becomes flat black.
func (s *Scene) NewTriangle(tri Triangle, tags ...string) NodeID {
	if tri.Shading == nil {
		tri.Shading = Flat{}
	}
	return s.newNode(Node{Name: "triangle", Type: TypeTriangle, Triangle: &tri}, tags)
}

// NewLight creates a standalone light.
func (s *Scene) NewLight(name string, light Light, tags ...string) NodeID {
	return s.newNode(Node{Name: name, Type: TypeLight, Light: &light}, tags)
}

// NewCamera creates a standalone camera with fov in degrees. The perspective
// constant is derived from the vertical resolution height and is not updated
// if the framebuffer is later resized.
func (s *Scene) NewCamera(name string, fov float64, height int, tags ...string) NodeID {
	cam := &Camera{FOV: fov, K: PerspectiveConstant(fov, height)}
	return s.newNode(Node{Name: name, Type: TypeCamera, Camera: cam}, append([]string{"Camera"}, tags...))
}

// PerspectiveConstant returns tan(fov/2) / (height/2) for fov in degrees.
func PerspectiveConstant(fov float64, height int) float64 {
	return gomath.Tan(fov/180*gomath.Pi/2) / (float64(max(height, 1)) / 2)
}

func (s *Scene) newNode(n Node, tags []string) NodeID {
	id := s.alloc(n)
	for _, t := range tags {
		s.AddTag(id, t)
	}
	return id
}

// Type returns the node's type, or TypeContainer for invalid handles.
func (s *Scene) Type(id NodeID) NodeType {
	if n := s.get(id); n != nil {
		return n.Type
	}
	return TypeContainer
}

// Parent returns the parent handle, or Nil.
func (s *Scene) Parent(id NodeID) NodeID {
	if n := s.get(id); n != nil {
		return n.parent
	}
	return Nil
}

// Children returns a copy of the ordered child handles.
func (s *Scene) Children(id NodeID) []NodeID {
	if n := s.get(id); n != nil {
		return append([]NodeID(nil), n.children...)
	}
	return nil
}
