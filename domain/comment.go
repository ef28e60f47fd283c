package domain

import "time"

// Comment is a single reply within a story's discussion, as transmitted by
// the site. ParentID is empty for comments made directly on the story.
// Depth is derived locally by BuildForest, never transmitted.
type Comment struct {
	ShortID   string
	ParentID  string
	Author    string
	Body      string // HTML as transmitted; rendered to text at display time.
	Score     int
	Depth     int
	CreatedAt time.Time
}

// CommentNode is a Comment with its ordered replies. Nodes are immutable
// after BuildForest returns; UI-only state such as collapsing lives in an
// overlay keyed by ShortID, not on the node.
type CommentNode struct {
	Comment
	Children []*CommentNode
}
