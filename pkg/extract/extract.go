// Package extract selects a size-bounded set of senses below a root and
// projects it into a tree for display.
//
// Selection is a breadth-first search in stored child order that admits
// unseen senses until the limit is reached or nothing is left below the
// root. Projection then walks the subgraph induced by the selection and
// emits a tree node per path, so a sense with several selected parents
// appears under each of them. The projected tree can therefore hold more
// nodes than the limit; the limit bounds distinct senses.
//
// Extraction reads a frozen [snapshot.Snapshot] and keeps all state local,
// so any number of extractions may run concurrently.
package extract

import (
	"errors"
	"fmt"

	"github.com/matzehuels/synsetree/pkg/classify"
	"github.com/matzehuels/synsetree/pkg/snapshot"
	"github.com/matzehuels/synsetree/pkg/tree"
)

var (
	// ErrUnknownNode is matched by [UnknownNodeError].
	ErrUnknownNode = errors.New("unknown node")

	// ErrInvalidLimit is returned when the limit is below 1.
	ErrInvalidLimit = errors.New("limit must be at least 1")
)

// UnknownNodeError reports a root key that is not in the snapshot.
type UnknownNodeError struct {
	Key string
}

func (e *UnknownNodeError) Error() string {
	return fmt.Sprintf("%v: %q", ErrUnknownNode, e.Key)
}

func (e *UnknownNodeError) Unwrap() error { return ErrUnknownNode }

// Options configures an extraction. The zero value is valid.
type Options struct {
	// Name resolves the display name of each projected node. It is called
	// once per tree node. Defaults to the key itself.
	Name func(key string) string

	// Progress is called after each admitted sense with the number admitted
	// so far and the root's full subtree size.
	Progress func(admitted, expected int)
}

// Result is one bounded extraction.
type Result struct {
	Root     string          `json:"root"`
	Limit    int             `json:"limit"`
	Size     int             `json:"size"`     // closed descendant count of Root
	Trimmed  bool            `json:"trimmed"`  // Size > Limit
	Selected []string        `json:"selected"` // admitted senses in BFS order, Root first
	Counts   classify.Counts `json:"counts"`
	Tree     *tree.Node      `json:"tree"`
}

// Extract selects at most limit distinct senses at or below root and
// projects them into a tree. It returns a [*UnknownNodeError] if root is
// not in s, or [ErrInvalidLimit] if limit < 1.
func Extract(s *snapshot.Snapshot, root string, limit int, opts Options) (*Result, error) {
	if limit < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLimit, limit)
	}
	if !s.Has(root) {
		return nil, &UnknownNodeError{Key: root}
	}
	size, _ := s.Size(root)

	selected := selectBFS(s, root, limit, size, opts.Progress)
	return &Result{
		Root:     root,
		Limit:    limit,
		Size:     size,
		Trimmed:  size > limit,
		Selected: selected,
		Counts:   classify.Count(s.Graph(), selected),
		Tree:     project(s, root, selected, opts.Name),
	}, nil
}

func selectBFS(s *snapshot.Snapshot, root string, limit, expected int, progress func(int, int)) []string {
	g := s.Graph()
	visited := map[string]struct{}{root: {}}
	order := []string{root}
	if progress != nil {
		progress(1, expected)
	}

	for head := 0; head < len(order) && len(order) < limit; head++ {
		for _, child := range g.Children(order[head]) {
			if len(order) == limit {
				break
			}
			if _, seen := visited[child]; seen {
				continue
			}
			visited[child] = struct{}{}
			order = append(order, child)
			if progress != nil {
				progress(len(order), expected)
			}
		}
	}
	return order
}

// project builds the tree over the subgraph induced by selected with an
// explicit stack. Children keep stored edge order.
func project(s *snapshot.Snapshot, root string, selected []string, name func(string) string) *tree.Node {
	if name == nil {
		name = func(key string) string { return key }
	}
	g := s.Graph()
	in := make(map[string]struct{}, len(selected))
	for _, k := range selected {
		in[k] = struct{}{}
	}

	top := tree.New(root, name(root))
	stack := []*tree.Node{top}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, child := range g.Children(n.SynsetKey) {
			if _, ok := in[child]; !ok {
				continue
			}
			c := tree.New(child, name(child))
			n.Children = append(n.Children, c)
			stack = append(stack, c)
		}
	}
	return top
}
