package debug

import (
	"github.com/davecgh/go-spew/spew"

	"github.com/Faultbox/yeentooth/internal/scene"
)

// NodeDump is a plain snapshot of a node and its subtree.
type NodeDump struct {
	Name        string
	Type        string
	Tags        []string
	Position    [3]float64
	Orientation [3][3]float64
	Children    []NodeDump
}

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          true,
	SortKeys:                true,
}

// Snapshot copies the subtree rooted at id.
func Snapshot(s *scene.Scene, id scene.NodeID) NodeDump {
	n, ok := s.Node(id)
	if !ok {
		return NodeDump{Name: "<invalid>"}
	}
	p := n.Position()
	d := NodeDump{
		Name:        n.Name,
		Type:        n.Type.String(),
		Tags:        append([]string(nil), n.Tags()...),
		Position:    [3]float64{p.X, p.Y, p.Z},
		Orientation: n.Orientation(),
	}
	for _, c := range n.Children() {
		d.Children = append(d.Children, Snapshot(s, c))
	}
	return d
}

// DumpTree renders the subtree rooted at id as indented text.
func DumpTree(s *scene.Scene, id scene.NodeID) string {
	return dumpConfig.Sdump(Snapshot(s, id))
}
