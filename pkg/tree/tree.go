// Package tree defines the bounded subtree handed to visualization
// adapters.
//
// Its JSON form is the contract consumed by renderers:
//
//	{"name": "...", "synset_key": "...", "children": [...]}
//
// children is always an array, empty for leaves. A sense reachable
// through several selected parents appears once under each of them.
package tree

// Node is one vertex of a projected subtree.
type Node struct {
	Name      string  `json:"name"`
	SynsetKey string  `json:"synset_key"`
	Children  []*Node `json:"children"`
}

// New returns a leaf node with a non-nil children slice.
func New(key, name string) *Node {
	return &Node{Name: name, SynsetKey: key, Children: []*Node{}}
}

// Walk visits every node in depth-first pre-order, children in order.
// It stops early when fn returns false.
func (n *Node) Walk(fn func(node *Node, depth int) bool) {
	type item struct {
		node  *Node
		depth int
	}
	stack := []item{{n, 0}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(it.node, it.depth) {
			return
		}
		for i := len(it.node.Children) - 1; i >= 0; i-- {
			stack = append(stack, item{it.node.Children[i], it.depth + 1})
		}
	}
}

// Len returns the number of tree nodes, counting duplicated senses once
// per occurrence.
func (n *Node) Len() int {
	count := 0
	n.Walk(func(*Node, int) bool {
		count++
		return true
	})
	return count
}

// Keys returns the distinct synset keys in pre-order of first occurrence.
func (n *Node) Keys() []string {
	seen := make(map[string]struct{})
	var keys []string
	n.Walk(func(node *Node, _ int) bool {
		if _, ok := seen[node.SynsetKey]; !ok {
			seen[node.SynsetKey] = struct{}{}
			keys = append(keys, node.SynsetKey)
		}
		return true
	})
	return keys
}

// Find returns the first node in pre-order with the given key.
func (n *Node) Find(key string) *Node {
	var found *Node
	n.Walk(func(node *Node, _ int) bool {
		if node.SynsetKey == key {
			found = node
			return false
		}
		return true
	})
	return found
}
