package domain

import (
	"errors"
	"testing"
)

func comment(id, parent string) Comment {
	return Comment{ShortID: id, ParentID: parent, Author: "user_" + id, Body: "<p>body " + id + "</p>"}
}

func flatten(forest []*CommentNode) []*CommentNode {
	var out []*CommentNode
	var walk func(n *CommentNode)
	walk = func(n *CommentNode) {
		out = append(out, n)
		for _, c := range n.Children {
			walk(c)
		}
	}
	for _, r := range forest {
		walk(r)
	}
	return out
}

func TestBuildForest_DepthAndSiblingOrder(t *testing.T) {
	in := []Comment{
		comment("a", ""),
		comment("b", "a"),
		comment("c", "b"),
		comment("d", "a"),
		comment("e", ""),
	}
	forest, err := BuildForest(in)
	if err != nil {
		t.Fatalf("BuildForest: %v", err)
	}
	if len(forest) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(forest))
	}

	flat := flatten(forest)
	wantOrder := []string{"a", "b", "c", "d", "e"}
	wantDepth := []int{0, 1, 2, 1, 0}
	if len(flat) != len(wantOrder) {
		t.Fatalf("expected %d nodes, got %d", len(wantOrder), len(flat))
	}
	for i, n := range flat {
		if n.ShortID != wantOrder[i] {
			t.Fatalf("node %d: expected %q, got %q", i, wantOrder[i], n.ShortID)
		}
		if n.Depth != wantDepth[i] {
			t.Fatalf("node %q: expected depth %d, got %d", n.ShortID, wantDepth[i], n.Depth)
		}
	}
}

func TestBuildForest_NonRootDepthIsParentPlusOne(t *testing.T) {
	in := []Comment{
		comment("r", ""),
		comment("c1", "r"),
		comment("c2", "c1"),
		comment("c3", "c2"),
		comment("c4", "r"),
	}
	forest, err := BuildForest(in)
	if err != nil {
		t.Fatalf("BuildForest: %v", err)
	}
	byID := map[string]*CommentNode{}
	for _, n := range flatten(forest) {
		byID[n.ShortID] = n
	}
	for _, n := range byID {
		for _, c := range n.Children {
			if c.Depth != n.Depth+1 {
				t.Fatalf("child %q depth %d under parent %q depth %d", c.ShortID, c.Depth, n.ShortID, n.Depth)
			}
		}
	}
}

func TestBuildForest_MissingParentBecomesRoot(t *testing.T) {
	in := []Comment{
		comment("a", ""),
		comment("orphan", "gone"),
		comment("b", "a"),
	}
	forest, err := BuildForest(in)
	if err != nil {
		t.Fatalf("BuildForest: %v", err)
	}
	if len(forest) != 2 {
		t.Fatalf("expected orphan promoted to root, got %d roots", len(forest))
	}
	if forest[1].ShortID != "orphan" || forest[1].Depth != 0 {
		t.Fatalf("expected orphan at root depth 0, got %q depth %d", forest[1].ShortID, forest[1].Depth)
	}
}

func TestBuildForest_SelfParentIsMalformed(t *testing.T) {
	_, err := BuildForest([]Comment{comment("a", "a")})
	if !errors.Is(err, ErrMalformedThread) {
		t.Fatalf("expected ErrMalformedThread, got %v", err)
	}
}

func TestBuildForest_CycleIsMalformed(t *testing.T) {
	in := []Comment{
		comment("ok", ""),
		comment("a", "b"),
		comment("b", "c"),
		comment("c", "a"),
	}
	_, err := BuildForest(in)
	if !errors.Is(err, ErrMalformedThread) {
		t.Fatalf("expected ErrMalformedThread for cycle, got %v", err)
	}
}

func TestBuildForest_DuplicateIDIsMalformed(t *testing.T) {
	_, err := BuildForest([]Comment{comment("a", ""), comment("a", "")})
	if !errors.Is(err, ErrMalformedThread) {
		t.Fatalf("expected ErrMalformedThread for duplicate id, got %v", err)
	}
}

func TestBuildForest_EmptyInput(t *testing.T) {
	forest, err := BuildForest(nil)
	if err != nil {
		t.Fatalf("BuildForest(nil): %v", err)
	}
	if len(forest) != 0 {
		t.Fatalf("expected empty forest, got %d roots", len(forest))
	}
}
