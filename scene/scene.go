// Package scene holds the in-memory scene-graph model produced by decoding
// an asset container: node trees, animation clips, and skin bindings.
//
// Nodes form a tree with local TRS transforms. The trees stored inside a
// cached document are immutable; consumers receive deep copies via Clone.
package scene

// Node is a single scene-graph node with a local transform.
type Node struct {
	Name        string
	Translation [3]float64
	Rotation    [4]float64 // quaternion xyzw
	Scale       [3]float64
	Children    []*Node
	Parent      *Node
}

// IdentityRotation is the no-op quaternion.
var IdentityRotation = [4]float64{0, 0, 0, 1}

// New returns a node with identity transform.
func New(name string) *Node {
	return &Node{
		Name:     name,
		Rotation: IdentityRotation,
		Scale:    [3]float64{1, 1, 1},
	}
}

// Attach adds child to n and sets its parent pointer.
func (n *Node) Attach(child *Node) {
	child.Parent = n
	n.Children = append(n.Children, child)
}

// WorldTranslation returns the node's position in world space, accumulated
// from the root. Parent rotation is not applied; rest poses in humanoid
// containers are authored axis-aligned, which is all height and bounds
// estimation needs.
func (n *Node) WorldTranslation() [3]float64 {
	var world [3]float64
	scale := [3]float64{1, 1, 1}

	// Walk up collecting the chain, then apply root-down.
	var chain []*Node
	for cur := n; cur != nil; cur = cur.Parent {
		chain = append(chain, cur)
	}
	for i := len(chain) - 1; i >= 0; i-- {
		cur := chain[i]
		for axis := 0; axis < 3; axis++ {
			world[axis] += cur.Translation[axis] * scale[axis]
			scale[axis] *= cur.Scale[axis]
		}
	}
	return world
}

// Find returns the first node named name in a depth-first walk of the
// subtree rooted at n, or nil.
func (n *Node) Find(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, child := range n.Children {
		if found := child.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// Walk visits n and every descendant in depth-first order. Returning false
// from fn stops the walk.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, child := range n.Children {
		if !child.Walk(fn) {
			return false
		}
	}
	return true
}

// Count returns the number of nodes in the subtree rooted at n.
func (n *Node) Count() int {
	count := 0
	n.Walk(func(*Node) bool {
		count++
		return true
	})
	return count
}

// Clone deep-copies the subtree rooted at n. The copy's root has no parent.
func (n *Node) Clone() *Node {
	return n.clone(nil)
}

func (n *Node) clone(parent *Node) *Node {
	out := &Node{
		Name:        n.Name,
		Translation: n.Translation,
		Rotation:    n.Rotation,
		Scale:       n.Scale,
		Parent:      parent,
	}
	if len(n.Children) > 0 {
		out.Children = make([]*Node, len(n.Children))
		for i, child := range n.Children {
			out.Children[i] = child.clone(out)
		}
	}
	return out
}

// Bounds is an axis-aligned box in world space.
type Bounds struct {
	Min [3]float64
	Max [3]float64
}

// Expand grows b to include point p.
func (b *Bounds) Expand(p [3]float64) {
	for axis := 0; axis < 3; axis++ {
		if p[axis] < b.Min[axis] {
			b.Min[axis] = p[axis]
		}
		if p[axis] > b.Max[axis] {
			b.Max[axis] = p[axis]
		}
	}
}

// TreeBounds computes the bounding box of every node position under root.
func TreeBounds(root *Node) Bounds {
	first := root.WorldTranslation()
	bounds := Bounds{Min: first, Max: first}
	root.Walk(func(n *Node) bool {
		bounds.Expand(n.WorldTranslation())
		return true
	})
	return bounds
}
