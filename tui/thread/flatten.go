package thread

import "lobsterm/domain"

// CollapseState tracks folded comment IDs. It is a UI overlay: the forest
// itself is never mutated.
type CollapseState map[string]bool

// FlatComment is one visible row of the thread.
type FlatComment struct {
	Node        *domain.CommentNode
	Collapsed   bool
	HiddenCount int // Descendants hidden under a collapsed node.
}

// FlattenVisible walks the forest depth-first and returns the rows the
// renderer should show. Descendants of collapsed nodes are skipped but stay
// in the forest.
func FlattenVisible(forest []*domain.CommentNode, collapsed CollapseState) []FlatComment {
	var out []FlatComment
	var walk func(n *domain.CommentNode)
	walk = func(n *domain.CommentNode) {
		folded := collapsed[n.ShortID]
		row := FlatComment{Node: n, Collapsed: folded}
		if folded {
			row.HiddenCount = countDescendants(n)
		}
		out = append(out, row)
		if folded {
			return
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	for _, r := range forest {
		walk(r)
	}
	return out
}

func countDescendants(n *domain.CommentNode) int {
	total := 0
	for _, c := range n.Children {
		total += 1 + countDescendants(c)
	}
	return total
}
