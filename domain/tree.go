package domain

import "fmt"

// BuildForest links a flat comment list into an ordered, rooted forest and
// assigns depths (0 for roots, parent+1 below).
//
// Comments whose parent is absent from the input are promoted to roots rather
// than rejected: thread payloads are occasionally truncated server-side, and
// dropping a whole discussion over one missing ancestor makes long threads
// unreadable. Sibling order follows input order, which is the site's canonical
// ordering — it is never re-sorted locally.
//
// Duplicate IDs or parent cycles return ErrMalformedThread. The input is
// untrusted, so BuildForest must terminate on any shape.
func BuildForest(comments []Comment) ([]*CommentNode, error) {
	nodes := make(map[string]*CommentNode, len(comments))
	for i := range comments {
		c := comments[i]
		if c.ShortID == "" {
			return nil, fmt.Errorf("%w: comment without id", ErrMalformedThread)
		}
		if _, dup := nodes[c.ShortID]; dup {
			return nil, fmt.Errorf("%w: duplicate comment id %q", ErrMalformedThread, c.ShortID)
		}
		nodes[c.ShortID] = &CommentNode{Comment: c}
	}

	var roots []*CommentNode
	for i := range comments {
		n := nodes[comments[i].ShortID]
		if n.ParentID == n.ShortID {
			// A self-parented comment is a cycle, not a truncated thread.
			return nil, fmt.Errorf("%w: comment %q is its own parent", ErrMalformedThread, n.ShortID)
		}
		parent, ok := nodes[n.ParentID]
		if n.ParentID == "" || !ok {
			roots = append(roots, n)
			continue
		}
		parent.Children = append(parent.Children, n)
	}

	// Assign depths top-down. Any node unreachable from a root sits on a
	// parent cycle: every acyclic chain ends at a root by construction.
	visited := 0
	stack := make([]*CommentNode, 0, len(roots))
	for i := len(roots) - 1; i >= 0; i-- {
		roots[i].Depth = 0
		stack = append(stack, roots[i])
	}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visited++
		for i := len(n.Children) - 1; i >= 0; i-- {
			child := n.Children[i]
			child.Depth = n.Depth + 1
			stack = append(stack, child)
		}
	}
	if visited != len(nodes) {
		return nil, fmt.Errorf("%w: %d comments unreachable through parent links", ErrMalformedThread, len(nodes)-visited)
	}
	return roots, nil
}
