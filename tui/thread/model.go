package thread

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"lobsterm/app"
	"lobsterm/domain"
	"lobsterm/tui/common"
)

// ThreadLoadedMsg is sent when a comment thread fetch completes.
type ThreadLoadedMsg struct {
	StoryID string
	Forest  []*domain.CommentNode
}

// ThreadErrorMsg is sent when a comment thread fetch fails permanently.
type ThreadErrorMsg struct {
	StoryID string
	Err     error
}

// BackMsg asks the root model to return to the story list.
type BackMsg struct{}

// Model holds the state for a single story's thread view. A fresh Model is
// created each time a story is opened; completions for other stories are
// identified by StoryID and ignored, so a fetch the user navigated away from
// can never repaint this view.
type Model struct {
	source app.PageSource
	story  domain.Story

	forest    []*domain.CommentNode
	collapsed CollapseState
	flat      []FlatComment
	cursor    int
	start     int
	loading   bool
	status    string

	keys    common.KeyMap
	spinner spinner.Model
	width   int
	height  int
}

// New creates a thread model for one story.
func New(story domain.Story, source app.PageSource) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#AC130D"))

	return Model{
		source:    source,
		story:     story,
		collapsed: make(CollapseState),
		loading:   true,
		keys:      common.DefaultKeyMap(),
		spinner:   s,
	}
}

// Init starts the thread fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadThread(), m.spinner.Tick)
}

// SetSize records the terminal dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.ensureCursorVisible()
}

// StoryID returns the story whose thread this model shows.
func (m Model) StoryID() string { return m.story.ShortID }

// loadThread fetches the forest through the cache.
func (m Model) loadThread() tea.Cmd {
	source := m.source
	id := m.story.ShortID
	return func() tea.Msg {
		forest, err := source.GetOrFetchThread(context.Background(), id)
		if err != nil {
			return ThreadErrorMsg{StoryID: id, Err: err}
		}
		return ThreadLoadedMsg{StoryID: id, Forest: forest}
	}
}

// Update handles messages for the thread view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case spinner.TickMsg:
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ThreadLoadedMsg:
		if msg.StoryID != m.story.ShortID {
			// Completion for a thread the user navigated away from.
			return m, nil
		}
		m.forest = msg.Forest
		m.flat = FlattenVisible(m.forest, m.collapsed)
		m.cursor = 0
		m.start = 0
		m.loading = false
		m.status = ""
		return m, nil

	case ThreadErrorMsg:
		if msg.StoryID != m.story.ShortID {
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
		if m.cursor < len(m.flat)-1 {
			m.cursor++
		}
		m.ensureCursorVisible()

	case key.Matches(msg, m.keys.Collapse):
		if len(m.flat) == 0 {
			return m, nil
		}
		id := m.flat[m.cursor].Node.ShortID
		m.collapsed[id] = !m.collapsed[id]
		m.flat = FlattenVisible(m.forest, m.collapsed)
		m.cursorTo(id)

	case key.Matches(msg, m.keys.OpenURL):
		if m.story.URL == "" {
			return m, nil
		}
		return m, common.OpenInBrowser(m.story.URL)

	case key.Matches(msg, m.keys.Refresh):
		if m.loading {
			return m, nil
		}
		m.loading = true
		m.status = ""
		return m, tea.Batch(m.loadThread(), m.spinner.Tick)

	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Quit):
		return m, func() tea.Msg { return BackMsg{} }
	}

	return m, nil
}

// cursorTo moves the cursor to the row holding id; the row is always present
// after a collapse toggle because toggling never hides the toggled node.
func (m *Model) cursorTo(id string) {
	for i, row := range m.flat {
		if row.Node.ShortID == id {
			m.cursor = i
			break
		}
	}
	if m.cursor >= len(m.flat) {
		m.cursor = len(m.flat) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.ensureCursorVisible()
}

func (m *Model) ensureCursorVisible() {
	slots := m.visibleSlots()
	if m.cursor < m.start {
		m.start = m.cursor
	}
	if m.cursor >= m.start+slots {
		m.start = m.cursor - slots + 1
	}
	if m.start < 0 {
		m.start = 0
	}
}

func describeError(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return "That story is gone."
	case errors.Is(err, domain.ErrMalformedThread):
		return "This thread is broken and can't be displayed."
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
