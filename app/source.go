package app

import (
	"context"

	"lobsterm/domain"
)

// PageSource serves story pages and comment forests to the UI, caching
// behind the scenes. Implemented by cache.Store.
type PageSource interface {
	// GetOrFetchPage returns a cached page or fetches and stores it.
	GetOrFetchPage(ctx context.Context, page int) (domain.Page, error)

	// GetOrFetchThread returns a cached comment forest or fetches the flat
	// comment list, builds the forest, stores and returns it.
	GetOrFetchThread(ctx context.Context, storyID string) ([]*domain.CommentNode, error)

	// PrefetchPage warms the cache for a page the user is likely to visit
	// next. Best-effort: failures are logged and swallowed.
	PrefetchPage(page int)

	// InvalidatePage drops a page from the cache so the next request
	// refetches it.
	InvalidatePage(page int)

	// PinPage marks the currently displayed page; a pinned entry is never
	// evicted. Pinning replaces the previous pin.
	PinPage(page int)

	// PinThread marks the currently displayed thread. An empty id unpins.
	PinThread(storyID string)
}
