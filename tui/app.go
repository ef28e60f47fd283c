package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"lobsterm/app"
	"lobsterm/domain"
	"lobsterm/tui/common"
	"lobsterm/tui/stories"
	"lobsterm/tui/thread"
)

// Deps holds all dependencies the TUI needs. Plain struct, not a DI container.
type Deps struct {
	Source app.PageSource
	Logger *slog.Logger
}

type viewKind int

const (
	storyListView viewKind = iota
	threadView
	helpView
	exitingView
)

// App is the root Bubble Tea model. It routes between sub-views and owns the
// help overlay, which remembers the view it was opened from.
type App struct {
	deps     Deps
	active   viewKind
	previous viewKind // View to restore when the help overlay closes.

	stories stories.Model
	thread  thread.Model

	keys   common.KeyMap
	help   help.Model
	width  int
	height int
}

// NewApp creates the root model with all dependencies wired.
func NewApp(deps Deps) App {
	h := help.New()
	h.ShowAll = true
	return App{
		deps:    deps,
		active:  storyListView,
		stories: stories.New(deps.Source),
		keys:    common.DefaultKeyMap(),
		help:    h,
	}
}

// Init starts the story list's initial fetch.
func (a App) Init() tea.Cmd {
	return a.stories.Init()
}

// Update handles messages and routes to the active sub-model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		a.stories.SetSize(msg.Width, msg.Height-1)
		a.thread.SetSize(msg.Width, msg.Height-1)
		return a, nil

	case tea.KeyMsg:
		if a.active == exitingView {
			// Exiting is terminal; nothing may transition out of it.
			if a.deps.Logger != nil {
				a.deps.Logger.Error("key received after exit", "err", domain.ErrState)
			}
			return a, nil
		}
		if msg.String() == "ctrl+c" {
			a.active = exitingView
			return a, tea.Quit
		}
		if key.Matches(msg, a.keys.Help) {
			return a.toggleHelp(), nil
		}
		switch a.active {
		case helpView:
			// Any dismissal key closes the overlay; everything else no-ops.
			if key.Matches(msg, a.keys.Back) || key.Matches(msg, a.keys.Quit) {
				a.active = a.previous
			}
			return a, nil
		case storyListView:
			if key.Matches(msg, a.keys.Quit) {
				a.active = exitingView
				return a, tea.Quit
			}
		}

	case stories.OpenStoryMsg:
		a.active = threadView
		a.thread = thread.New(msg.Story, a.deps.Source)
		a.thread.SetSize(a.width, a.height-1)
		a.deps.Source.PinThread(msg.Story.ShortID)
		return a, a.thread.Init()

	case thread.BackMsg:
		a.active = storyListView
		a.deps.Source.PinThread("")
		return a, nil

	case spinner.TickMsg:
		// Spinners tick in both sub-models; only the active one animates.
		var cmd tea.Cmd
		switch a.active {
		case storyListView:
			a.stories, cmd = a.stories.Update(msg)
		case threadView:
			a.thread, cmd = a.thread.Update(msg)
		}
		return a, cmd
	}

	// Completion messages route to their owning sub-model even when it is not
	// on screen, so a finished fetch lands in the model that asked for it.
	switch msg.(type) {
	case stories.PageLoadedMsg, stories.PageErrorMsg:
		var cmd tea.Cmd
		a.stories, cmd = a.stories.Update(msg)
		return a, cmd
	case thread.ThreadLoadedMsg, thread.ThreadErrorMsg:
		var cmd tea.Cmd
		a.thread, cmd = a.thread.Update(msg)
		return a, cmd
	}

	switch a.active {
	case storyListView:
		updated, cmd := a.stories.Update(msg)
		a.stories = updated
		return a, cmd
	case threadView:
		updated, cmd := a.thread.Update(msg)
		a.thread = updated
		return a, cmd
	case helpView, exitingView:
		return a, nil
	}

	// Unreachable unless a new view is added without a route.
	if a.deps.Logger != nil {
		a.deps.Logger.Error("unroutable view state", "view", int(a.active), "err", domain.ErrState)
	}
	a.active = exitingView
	return a, tea.Quit
}

func (a App) toggleHelp() App {
	if a.active == helpView {
		a.active = a.previous
		return a
	}
	a.previous = a.active
	a.active = helpView
	return a
}

// View renders the active sub-model plus the status line.
func (a App) View() string {
	var s string

	switch a.active {
	case storyListView:
		s = a.stories.View()
	case threadView:
		s = a.thread.View()
	case helpView:
		s = common.HelpTitleStyle.Render("Key bindings") + "\n\n" + a.help.View(a.keys)
	case exitingView:
		return ""
	}

	return s + "\n" + common.StatusBarStyle.Render(a.help.ShortHelpView(a.keys.ShortHelp()))
}
