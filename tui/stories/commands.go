package stories

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// loadPage fetches a page through the cache. Deps are captured before the
// closure so the command reads no model state when it runs.
func (m Model) loadPage(page, reqSeq int) tea.Cmd {
	source := m.source
	return func() tea.Msg {
		p, err := source.GetOrFetchPage(context.Background(), page)
		if err != nil {
			return PageErrorMsg{PageNumber: page, Err: err, ReqSeq: reqSeq}
		}
		return PageLoadedMsg{Page: p, ReqSeq: reqSeq}
	}
}
