// Package cache keeps fetched story pages and comment forests in memory for
// the session. It is bounded-size LRU with two hard guarantees: concurrent
// requests for the same key trigger at most one upstream fetch, and the
// currently displayed page or thread is never evicted.
package cache

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"lobsterm/app"
	"lobsterm/domain"
)

const prefetchTimeout = 30 * time.Second

// Options bounds the cache. Capacities below 2 are rejected: with a single
// slot the pinned entry would block all other inserts.
type Options struct {
	PageCapacity   int
	ThreadCapacity int
}

var errInvalidCapacity = errors.New("cache capacity must be at least 2")

// Store is the session cache in front of a StoryService.
type Store struct {
	client app.StoryService
	log    *slog.Logger

	mu           sync.Mutex
	pages        *lru.Cache[int, domain.Page]
	threads      *lru.Cache[string, []*domain.CommentNode]
	pageCap      int
	threadCap    int
	pinnedPage   int
	pinnedThread string

	pageFlight   singleflight.Group
	threadFlight singleflight.Group
}

// New creates a Store. It returns an error for capacities below 2.
func New(client app.StoryService, log *slog.Logger, opts Options) (*Store, error) {
	if opts.PageCapacity < 2 || opts.ThreadCapacity < 2 {
		return nil, errInvalidCapacity
	}
	pages, err := lru.New[int, domain.Page](opts.PageCapacity)
	if err != nil {
		return nil, err
	}
	threads, err := lru.New[string, []*domain.CommentNode](opts.ThreadCapacity)
	if err != nil {
		return nil, err
	}
	return &Store{
		client:    client,
		log:       log,
		pages:     pages,
		threads:   threads,
		pageCap:   opts.PageCapacity,
		threadCap: opts.ThreadCapacity,
	}, nil
}

// GetOrFetchPage returns a cached page, refreshing its access order, or
// fetches, stores and returns it. Concurrent callers for the same page share
// one fetch and observe the same result.
func (s *Store) GetOrFetchPage(ctx context.Context, page int) (domain.Page, error) {
	if p, ok := s.pages.Get(page); ok {
		return p, nil
	}
	v, err, _ := s.pageFlight.Do(strconv.Itoa(page), func() (any, error) {
		if p, ok := s.pages.Get(page); ok {
			return p, nil
		}
		p, err := s.client.FetchPage(ctx, page)
		if err != nil {
			return nil, err
		}
		s.addPage(p)
		return p, nil
	})
	if err != nil {
		return domain.Page{}, err
	}
	return v.(domain.Page), nil
}

// GetOrFetchThread returns a cached comment forest, or fetches the flat
// comment list, builds the forest, stores and returns it. A malformed thread
// is surfaced and never cached.
func (s *Store) GetOrFetchThread(ctx context.Context, storyID string) ([]*domain.CommentNode, error) {
	if f, ok := s.threads.Get(storyID); ok {
		return f, nil
	}
	v, err, _ := s.threadFlight.Do(storyID, func() (any, error) {
		if f, ok := s.threads.Get(storyID); ok {
			return f, nil
		}
		comments, err := s.client.FetchComments(ctx, storyID)
		if err != nil {
			return nil, err
		}
		forest, err := domain.BuildForest(comments)
		if err != nil {
			return nil, err
		}
		s.addThread(storyID, forest)
		return forest, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]*domain.CommentNode), nil
}

// PrefetchPage warms the cache in the background. Prefetch is best-effort:
// failures are logged, never surfaced.
func (s *Store) PrefetchPage(page int) {
	if page < 1 {
		return
	}
	if s.pages.Contains(page) {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), prefetchTimeout)
		defer cancel()
		if _, err := s.GetOrFetchPage(ctx, page); err != nil {
			s.log.Debug("prefetch failed", "page", page, "error", err)
		}
	}()
}

// InvalidatePage drops a page so the next request refetches it.
func (s *Store) InvalidatePage(page int) {
	s.pages.Remove(page)
}

// PinPage marks the displayed page. A pinned entry survives eviction.
func (s *Store) PinPage(page int) {
	s.mu.Lock()
	s.pinnedPage = page
	s.mu.Unlock()
}

// PinThread marks the displayed thread. An empty id unpins.
func (s *Store) PinThread(storyID string) {
	s.mu.Lock()
	s.pinnedThread = storyID
	s.mu.Unlock()
}

// addPage inserts under the lock, touching the pinned page first so a full
// cache always evicts some other entry.
func (s *Store) addPage(p domain.Page) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pages.Len() >= s.pageCap && s.pinnedPage != p.Number {
		s.pages.Get(s.pinnedPage)
	}
	s.pages.Add(p.Number, p)
}

func (s *Store) addThread(storyID string, forest []*domain.CommentNode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.threads.Len() >= s.threadCap && s.pinnedThread != storyID {
		s.threads.Get(s.pinnedThread)
	}
	s.threads.Add(storyID, forest)
}
