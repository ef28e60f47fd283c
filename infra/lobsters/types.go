package lobsters

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"lobsterm/domain"
)

// Wire types for the site's JSON API. Only the fields the browser needs are
// decoded; everything else is dropped on the floor.

type userJSON struct {
	Username string `json:"username"`
}

type storyJSON struct {
	ShortID       string   `json:"short_id"`
	Title         string   `json:"title"`
	URL           string   `json:"url"`
	Score         int      `json:"score"`
	CommentCount  int      `json:"comment_count"`
	Tags          []string `json:"tags"`
	CreatedAt     string   `json:"created_at"`
	SubmitterUser userJSON `json:"submitter_user"`
}

type commentJSON struct {
	ShortID        string   `json:"short_id"`
	ParentComment  string   `json:"parent_comment"`
	Comment        string   `json:"comment"`
	Score          int      `json:"score"`
	CreatedAt      string   `json:"created_at"`
	CommentingUser userJSON `json:"commenting_user"`
}

type storyDetailJSON struct {
	Comments []commentJSON `json:"comments"`
}

func (s storyJSON) toDomain() (domain.Story, error) {
	if s.ShortID == "" {
		return domain.Story{}, fmt.Errorf("%w: story without short_id", domain.ErrParse)
	}
	created, err := parseSiteTime(s.CreatedAt)
	if err != nil {
		return domain.Story{}, fmt.Errorf("%w: story %s created_at %q", domain.ErrParse, s.ShortID, s.CreatedAt)
	}
	return domain.Story{
		ShortID:      s.ShortID,
		Title:        s.Title,
		URL:          s.URL,
		Submitter:    s.SubmitterUser.Username,
		Score:        s.Score,
		CommentCount: s.CommentCount,
		Tags:         s.Tags,
		CreatedAt:    created,
	}, nil
}

func (c commentJSON) toDomain() (domain.Comment, error) {
	if c.ShortID == "" {
		return domain.Comment{}, fmt.Errorf("%w: comment without short_id", domain.ErrParse)
	}
	created, err := parseSiteTime(c.CreatedAt)
	if err != nil {
		return domain.Comment{}, fmt.Errorf("%w: comment %s created_at %q", domain.ErrParse, c.ShortID, c.CreatedAt)
	}
	return domain.Comment{
		ShortID:   c.ShortID,
		ParentID:  c.ParentComment,
		Author:    c.CommentingUser.Username,
		Body:      c.Comment,
		Score:     c.Score,
		CreatedAt: created,
	}, nil
}

// parseSiteTime accepts the RFC 3339 timestamps the site emits. An absent
// timestamp is tolerated; a present-but-garbled one is a contract violation.
func parseSiteTime(v string) (time.Time, error) {
	if v == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, v)
}

func decodeJSON(r io.Reader, dst any) error {
	return json.NewDecoder(r).Decode(dst)
}
