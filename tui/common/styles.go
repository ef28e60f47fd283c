package common

import "github.com/charmbracelet/lipgloss"

var (
	// AppTitleStyle styles the application title bar.
	AppTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#AC130D")).
			Padding(0, 1)

	// PageStyle styles the page indicator next to the title.
	PageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D")).
			MarginLeft(1)

	// ScoreStyle styles the story/comment score column.
	ScoreStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F5A97F"))

	// NegativeScoreStyle styles scores below zero.
	NegativeScoreStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#ED8796"))

	// TitleStyle styles story titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#CAD3F5"))

	// SelectedTitleStyle highlights the selected story's title.
	SelectedTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#A6DA95"))

	// URLStyle styles story target URLs and domains.
	URLStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7DC4E4"))

	// TagStyle styles story tags.
	TagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EED49F")).
			Faint(true)

	// AuthorStyle styles submitter and comment author handles.
	AuthorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8BD5CA"))

	// MetaStyle styles secondary metadata (comment counts, timestamps).
	MetaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D"))

	// CommentBodyStyle styles comment text.
	CommentBodyStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#CAD3F5"))

	// SelectedMarkerStyle styles the selection cursor.
	SelectedMarkerStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#A6DA95"))

	// CollapsedBadgeStyle styles the [+N] badge on folded comments.
	CollapsedBadgeStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#EED49F")).
				Bold(true)

	// StatusBarStyle styles the bottom status line.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D")).
			Padding(0, 1)

	// ErrorStyle styles inline error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ED8796")).
			Bold(true)

	// LoadingStyle styles the loading indicator line.
	LoadingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EED49F"))

	// HelpTitleStyle styles the help overlay heading.
	HelpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#AC130D")).
			Padding(1, 1, 0, 1)
)
