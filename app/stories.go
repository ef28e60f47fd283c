package app

import (
	"context"

	"lobsterm/domain"
)

// StoryService fetches story pages and comment threads from the remote site.
// Implementations do not cache; every call hits the network.
type StoryService interface {
	// FetchPage returns one page of stories. Page numbers start at 1.
	FetchPage(ctx context.Context, page int) (domain.Page, error)

	// FetchComments returns the flat comment list for a story, in the
	// site's canonical order.
	FetchComments(ctx context.Context, storyID string) ([]domain.Comment, error)
}
