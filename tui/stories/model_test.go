package stories

import (
	"context"
	"fmt"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"lobsterm/domain"
)

type stubSource struct {
	mu          sync.Mutex
	prefetched  []int
	invalidated []int
	pinnedPages []int
}

func (s *stubSource) GetOrFetchPage(ctx context.Context, page int) (domain.Page, error) {
	return domain.Page{Number: page}, nil
}

func (s *stubSource) GetOrFetchThread(ctx context.Context, storyID string) ([]*domain.CommentNode, error) {
	return nil, nil
}

func (s *stubSource) PrefetchPage(page int) {
	s.mu.Lock()
	s.prefetched = append(s.prefetched, page)
	s.mu.Unlock()
}

func (s *stubSource) InvalidatePage(page int) {
	s.mu.Lock()
	s.invalidated = append(s.invalidated, page)
	s.mu.Unlock()
}

func (s *stubSource) PinPage(page int) {
	s.mu.Lock()
	s.pinnedPages = append(s.pinnedPages, page)
	s.mu.Unlock()
}

func (s *stubSource) PinThread(storyID string) {}

func makeStories(n int) []domain.Story {
	out := make([]domain.Story, n)
	for i := range out {
		out[i] = domain.Story{ShortID: fmt.Sprintf("s%d", i+1), Title: fmt.Sprintf("Story %d", i+1)}
	}
	return out
}

func loadedModel(t *testing.T, src *stubSource, page int, n int) Model {
	t.Helper()
	m := New(src)
	m.SetSize(80, 24)
	m, _ = m.Update(PageLoadedMsg{Page: domain.Page{Number: page, Stories: makeStories(n)}, ReqSeq: m.reqSeq})
	if m.loading {
		t.Fatal("model still loading after PageLoadedMsg")
	}
	return m
}

func keyMsg(s string) tea.KeyMsg {
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestUpdate_PageLoadedReplacesStories(t *testing.T) {
	src := &stubSource{}
	m := loadedModel(t, src, 1, 10)
	if m.Page() != 1 || len(m.stories) != 10 {
		t.Fatalf("page %d, %d stories", m.Page(), len(m.stories))
	}
	if len(src.pinnedPages) == 0 || src.pinnedPages[len(src.pinnedPages)-1] != 1 {
		t.Fatalf("loaded page must be pinned, got %v", src.pinnedPages)
	}
}

func TestUpdate_StalePageLoadedIgnored(t *testing.T) {
	src := &stubSource{}
	m := loadedModel(t, src, 1, 10)
	m.reqSeq = 5
	m.loading = true

	updated, _ := m.Update(PageLoadedMsg{Page: domain.Page{Number: 7, Stories: makeStories(3)}, ReqSeq: 4})
	if updated.Page() != 1 || len(updated.stories) != 10 {
		t.Fatal("stale response must not mutate the list")
	}
	if !updated.loading {
		t.Fatal("stale response must not clear loading state")
	}
}

func TestUpdate_StaleErrorIgnored(t *testing.T) {
	src := &stubSource{}
	m := loadedModel(t, src, 1, 10)
	m.reqSeq = 5

	updated, _ := m.Update(PageErrorMsg{PageNumber: 2, Err: domain.ErrNetwork, ReqSeq: 4})
	if updated.status != "" {
		t.Fatalf("stale error must not set status, got %q", updated.status)
	}
}

func TestUpdate_CursorClampsAtBounds(t *testing.T) {
	src := &stubSource{}
	m := loadedModel(t, src, 1, 3)

	m, _ = m.Update(keyMsg("k"))
	if m.cursor != 0 {
		t.Fatalf("cursor moved above 0: %d", m.cursor)
	}
	for i := 0; i < 10; i++ {
		m, _ = m.Update(keyMsg("j"))
	}
	if m.cursor != 2 {
		t.Fatalf("cursor beyond last story: %d", m.cursor)
	}
}

func TestUpdate_NextPagePrefetchesBeyond(t *testing.T) {
	src := &stubSource{}
	m := loadedModel(t, src, 1, 10)
	src.prefetched = nil

	m, cmd := m.Update(keyMsg("n"))
	if !m.loading {
		t.Fatal("next page should set loading")
	}
	if cmd == nil {
		t.Fatal("next page should emit a fetch command")
	}
	if len(src.prefetched) != 1 || src.prefetched[0] != 3 {
		t.Fatalf("expected prefetch of page 3, got %v", src.prefetched)
	}
}

func TestUpdate_PrevPageNeverBelowOne(t *testing.T) {
	src := &stubSource{}
	m := loadedModel(t, src, 1, 10)

	updated, cmd := m.Update(keyMsg("p"))
	if updated.loading || cmd != nil {
		t.Fatal("prev page from page 1 must be a no-op")
	}

	m = loadedModel(t, src, 3, 10)
	src.prefetched = nil
	updated, cmd = m.Update(keyMsg("p"))
	if !updated.loading || cmd == nil {
		t.Fatal("prev page from page 3 should fetch page 2")
	}
	if len(src.prefetched) != 1 || src.prefetched[0] != 1 {
		t.Fatalf("expected prefetch of page 1, got %v", src.prefetched)
	}
}

func TestUpdate_RefreshInvalidatesCurrentPage(t *testing.T) {
	src := &stubSource{}
	m := loadedModel(t, src, 2, 10)

	m, cmd := m.Update(keyMsg("r"))
	if !m.loading || cmd == nil {
		t.Fatal("refresh should reload")
	}
	if len(src.invalidated) != 1 || src.invalidated[0] != 2 {
		t.Fatalf("expected page 2 invalidated, got %v", src.invalidated)
	}
}

func TestUpdate_OpenEmitsOpenStoryMsg(t *testing.T) {
	src := &stubSource{}
	m := loadedModel(t, src, 1, 10)
	m, _ = m.Update(keyMsg("j"))

	_, cmd := m.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("enter should emit a command")
	}
	msg, ok := cmd().(OpenStoryMsg)
	if !ok {
		t.Fatalf("expected OpenStoryMsg, got %T", cmd())
	}
	if msg.Story.ShortID != "s2" {
		t.Fatalf("expected selected story s2, got %q", msg.Story.ShortID)
	}
}

func TestUpdate_OpenWithNoStoriesIsNoop(t *testing.T) {
	src := &stubSource{}
	m := New(src)
	m.SetSize(80, 24)

	_, cmd := m.Update(keyMsg("enter"))
	if cmd != nil {
		t.Fatal("enter with empty list must be a no-op")
	}
}

func TestUpdate_ErrorSetsInlineStatusWithoutTransition(t *testing.T) {
	src := &stubSource{}
	m := loadedModel(t, src, 1, 10)
	m.reqSeq++
	m.loading = true

	m, _ = m.Update(PageErrorMsg{PageNumber: 2, Err: domain.ErrNotFound, ReqSeq: m.reqSeq})
	if m.loading {
		t.Fatal("error should clear loading")
	}
	if m.status == "" {
		t.Fatal("error should set an inline status")
	}
	if m.Page() != 1 || len(m.stories) != 10 {
		t.Fatal("error must leave the current view intact")
	}
}

func TestUpdate_UnknownKeysAreNoops(t *testing.T) {
	src := &stubSource{}
	m := loadedModel(t, src, 1, 5)
	before := m

	for _, s := range []string{"x", "Z", "1", "!", "€"} {
		updated, cmd := m.Update(keyMsg(s))
		if cmd != nil {
			t.Fatalf("key %q produced a command", s)
		}
		if updated.cursor != before.cursor || updated.Page() != before.Page() {
			t.Fatalf("key %q mutated state", s)
		}
	}
}

func TestSelectedStory(t *testing.T) {
	src := &stubSource{}
	m := New(src)
	if _, ok := m.SelectedStory(); ok {
		t.Fatal("empty list has no selection")
	}
	m = loadedModel(t, src, 1, 2)
	s, ok := m.SelectedStory()
	if !ok || s.ShortID != "s1" {
		t.Fatalf("expected s1 selected, got %+v ok=%v", s, ok)
	}
}
