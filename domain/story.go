package domain

import "time"

// Story represents a single submitted link on the site front page.
type Story struct {
	ShortID      string
	Title        string
	URL          string
	Submitter    string
	Score        int // May go negative on heavily flagged stories.
	CommentCount int
	Tags         []string
	CreatedAt    time.Time
}

// Page is one fetched batch of stories for a pagination page number.
// Page numbers start at 1.
type Page struct {
	Number  int
	Stories []Story
}
