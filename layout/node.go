// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"fmt"

	"latticeui.org/f32"
)

// Node is the result of laying out a widget: its bounds relative to
// its parent and the nodes of its children, in the order the widget
// produced them.
type Node struct {
	bounds   f32.Rectangle
	children []Node
}

// NewNode returns a leaf node of size sz.
func NewNode(sz f32.Size) Node {
	return Node{bounds: f32.Rectangle{Width: sz.Width, Height: sz.Height}}
}

// WithChildren returns a node of size sz with the given children.
func WithChildren(sz f32.Size, children []Node) Node {
	n := NewNode(sz)
	n.children = children
	return n
}

// Size returns the resolved size of n.
func (n Node) Size() f32.Size {
	return n.bounds.Size()
}

// Bounds returns the bounds of n relative to its parent.
func (n Node) Bounds() f32.Rectangle {
	return n.bounds
}

// Children returns the child nodes of n.
func (n Node) Children() []Node {
	return n.children
}

// MoveTo positions n at p relative to its parent.
func (n *Node) MoveTo(p f32.Point) {
	n.bounds.X = p.X
	n.bounds.Y = p.Y
}

// Align places n inside space according to the horizontal and
// vertical alignments. Stretch resizes n to fill space on that axis.
func (n *Node) Align(h, v Alignment, space f32.Size) {
	switch h {
	case Center:
		n.bounds.X += (space.Width - n.bounds.Width) / 2
	case End:
		n.bounds.X += space.Width - n.bounds.Width
	case Stretch:
		n.bounds.Width = space.Width
	}
	switch v {
	case Center:
		n.bounds.Y += (space.Height - n.bounds.Height) / 2
	case End:
		n.bounds.Y += space.Height - n.bounds.Height
	case Stretch:
		n.bounds.Height = space.Height
	}
}

func (n Node) String() string {
	return fmt.Sprintf("Node%v%v", n.bounds, n.children)
}

// Layout is a read-only view of a Node with the absolute offset of
// its parent applied. Traversals hand each child widget the Layout
// at the same index as the child.
type Layout struct {
	offset f32.Vector
	node   *Node
}

// NewLayout returns the view of the root node n.
func NewLayout(n *Node) Layout {
	return Layout{node: n}
}

// WithOffset returns the view of n positioned relative to offset.
func WithOffset(offset f32.Vector, n *Node) Layout {
	return Layout{offset: offset, node: n}
}

// Position returns the absolute top left corner of the node.
func (l Layout) Position() f32.Point {
	return l.node.bounds.Position().Add(l.offset)
}

// Bounds returns the absolute bounds of the node.
func (l Layout) Bounds() f32.Rectangle {
	return l.node.bounds.Translate(l.offset)
}

// Node returns the underlying node.
func (l Layout) Node() *Node {
	return l.node
}

// ChildCount returns the number of children of the node.
func (l Layout) ChildCount() int {
	return len(l.node.children)
}

// Child returns the view of the i'th child.
func (l Layout) Child(i int) Layout {
	if i < 0 || i >= len(l.node.children) {
		panic(fmt.Errorf("layout: child %d requested from a node with %d children", i, len(l.node.children)))
	}
	return Layout{offset: l.Position().Vec(), node: &l.node.children[i]}
}

// Children returns the views of all children, in order.
func (l Layout) Children() []Layout {
	kids := make([]Layout, len(l.node.children))
	off := l.Position().Vec()
	for i := range l.node.children {
		kids[i] = Layout{offset: off, node: &l.node.children[i]}
	}
	return kids
}

// MustHaveChildren panics if the node does not have exactly n
// children. Containers call it before walking their children
// alongside the child layouts.
func (l Layout) MustHaveChildren(n int) {
	if got := len(l.node.children); got != n {
		panic(fmt.Errorf("layout: child layout count mismatch: %d widgets, %d layouts", n, got))
	}
}
