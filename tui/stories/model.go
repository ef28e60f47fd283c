package stories

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"lobsterm/app"
	"lobsterm/domain"
	"lobsterm/tui/common"
)

// PageLoadedMsg is sent when a story page fetch completes.
type PageLoadedMsg struct {
	Page   domain.Page
	ReqSeq int
}

// PageErrorMsg is sent when a story page fetch fails permanently.
type PageErrorMsg struct {
	PageNumber int
	Err        error
	ReqSeq     int
}

// OpenStoryMsg asks the root model to open a story's comment thread.
type OpenStoryMsg struct {
	Story domain.Story
}

// Model holds the state for the story list view.
type Model struct {
	source app.PageSource

	page    int // Currently displayed page number
	stories []domain.Story
	cursor  int
	start   int // First visible story (scroll offset)
	loading bool
	status  string

	keys    common.KeyMap
	spinner spinner.Model
	width   int
	height  int

	// reqSeq guards against late completions: a response carrying an older
	// sequence belongs to a request the user has navigated past.
	reqSeq int
}

// New creates the story list model.
func New(source app.PageSource) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#AC130D"))

	return Model{
		source:  source,
		page:    1,
		loading: true,
		keys:    common.DefaultKeyMap(),
		spinner: s,
	}
}

// Init starts the initial page fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.loadPage(1, m.reqSeq),
		func() tea.Msg { m.source.PrefetchPage(2); return nil },
		m.spinner.Tick,
	)
}

// SetSize records the terminal dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.ensureCursorVisible()
}

// Update handles messages for the story list.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case spinner.TickMsg:
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case PageLoadedMsg:
		if msg.ReqSeq != m.reqSeq {
			// Stale completion; the cache already has the data.
			return m, nil
		}
		m.page = msg.Page.Number
		m.stories = msg.Page.Stories
		m.cursor = 0
		m.start = 0
		m.loading = false
		m.status = ""
		m.source.PinPage(m.page)
		return m, nil

	case PageErrorMsg:
		if msg.ReqSeq != m.reqSeq {
			return m, nil
		}
		m.loading = false
		m.status = describeError(msg.Err)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		m.ensureCursorVisible()

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.stories)-1 {
			m.cursor++
		}
		m.ensureCursorVisible()

	case key.Matches(msg, m.keys.NextPage):
		return m.requestPage(m.page + 1)

	case key.Matches(msg, m.keys.PrevPage):
		if m.page <= 1 {
			return m, nil // Never below page 1.
		}
		return m.requestPage(m.page - 1)

	case key.Matches(msg, m.keys.Refresh):
		m.source.InvalidatePage(m.page)
		m.reqSeq++
		m.loading = true
		m.status = ""
		return m, tea.Batch(m.loadPage(m.page, m.reqSeq), m.spinner.Tick)

	case key.Matches(msg, m.keys.Open):
		if len(m.stories) == 0 {
			return m, nil
		}
		story := m.stories[m.cursor]
		return m, func() tea.Msg { return OpenStoryMsg{Story: story} }

	case key.Matches(msg, m.keys.OpenURL):
		if len(m.stories) == 0 {
			return m, nil
		}
		return m, common.OpenInBrowser(m.stories[m.cursor].URL)
	}

	return m, nil
}

// requestPage loads an adjacent page and warms the cache for the page beyond
// it in the direction of travel.
func (m Model) requestPage(target int) (Model, tea.Cmd) {
	beyond := target + 1
	if target < m.page {
		beyond = target - 1 // PrefetchPage ignores pages below 1.
	}
	m.reqSeq++
	m.loading = true
	m.status = ""
	m.source.PrefetchPage(beyond)
	return m, tea.Batch(m.loadPage(target, m.reqSeq), m.spinner.Tick)
}

func (m *Model) ensureCursorVisible() {
	rows := m.visibleRows()
	if m.cursor < m.start {
		m.start = m.cursor
	}
	if m.cursor >= m.start+rows {
		m.start = m.cursor - rows + 1
	}
	if m.start < 0 {
		m.start = 0
	}
}

// Page returns the currently displayed page number.
func (m Model) Page() int { return m.page }

// Loading reports whether a page fetch is outstanding.
func (m Model) Loading() bool { return m.loading }

// SelectedStory returns the highlighted story, if any.
func (m Model) SelectedStory() (domain.Story, bool) {
	if len(m.stories) == 0 {
		return domain.Story{}, false
	}
	return m.stories[m.cursor], true
}

func describeError(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return "That page doesn't exist."
	case errors.Is(err, domain.ErrRateLimited):
		return "The site is rate limiting us — slow down a little."
	case errors.Is(err, domain.ErrParse):
		return "The site sent something unreadable."
	case errors.Is(err, domain.ErrNetwork):
		return "Network trouble — press r to retry."
	case err == nil:
		return ""
	default:
		return err.Error()
	}
}
