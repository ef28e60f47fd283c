package stories

import (
	"fmt"
	"strings"
	"time"

	"lobsterm/tui/common"
)

const linesPerStory = 3 // Title line, meta line, blank separator.

// View renders the story list. Pure: reads model state, returns a frame.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(common.AppTitleStyle.Render("lobsterm"))
	b.WriteString(common.PageStyle.Render(fmt.Sprintf("page %d", m.page)))
	b.WriteString("\n\n")

	switch {
	case m.loading && len(m.stories) == 0:
		b.WriteString(common.LoadingStyle.Render(m.spinner.View() + " Loading stories..."))
		b.WriteString("\n")
	case m.status != "" && len(m.stories) == 0:
		b.WriteString(common.ErrorStyle.Render(m.status))
		b.WriteString("\n")
	case len(m.stories) == 0:
		b.WriteString(common.MetaStyle.Render("No stories on this page."))
		b.WriteString("\n")
	default:
		m.renderList(&b)
	}

	// Inline status on top of an existing list (e.g. paging failed).
	if m.status != "" && len(m.stories) > 0 {
		b.WriteString(common.ErrorStyle.Render(m.status))
		b.WriteString("\n")
	}
	if m.loading && len(m.stories) > 0 {
		b.WriteString(common.LoadingStyle.Render(m.spinner.View() + " Loading..."))
		b.WriteString("\n")
	}

	return common.ClampToWidth(b.String(), m.width)
}

func (m Model) renderList(b *strings.Builder) {
	rows := m.visibleRows()
	end := m.start + rows
	if end > len(m.stories) {
		end = len(m.stories)
	}
	now := time.Now()

	for i := m.start; i < end; i++ {
		s := m.stories[i]
		selected := i == m.cursor

		marker := "  "
		titleStyle := common.TitleStyle
		if selected {
			marker = common.SelectedMarkerStyle.Render("> ")
			titleStyle = common.SelectedTitleStyle
		}

		b.WriteString(marker)
		b.WriteString(scoreColumn(s.Score))
		b.WriteString(" ")
		b.WriteString(titleStyle.Render(s.Title))
		if d := common.Domain(s.URL); d != "" {
			b.WriteString(" ")
			b.WriteString(common.URLStyle.Render("(" + d + ")"))
		}
		b.WriteString("\n")

		b.WriteString("       ")
		if len(s.Tags) > 0 {
			b.WriteString(common.TagStyle.Render(strings.Join(s.Tags, " ")))
			b.WriteString(" ")
		}
		b.WriteString(common.MetaStyle.Render("via "))
		b.WriteString(common.AuthorStyle.Render(s.Submitter))
		b.WriteString(common.MetaStyle.Render(fmt.Sprintf(" %s | %d comments",
			common.RelativeTime(s.CreatedAt, now), s.CommentCount)))
		b.WriteString("\n\n")
	}

	if end < len(m.stories) {
		b.WriteString(common.MetaStyle.Render(fmt.Sprintf("... %d more", len(m.stories)-end)))
		b.WriteString("\n")
	}
}

func scoreColumn(score int) string {
	text := fmt.Sprintf("%4d", score)
	if score < 0 {
		return common.NegativeScoreStyle.Render(text)
	}
	return common.ScoreStyle.Render(text)
}

func (m Model) visibleRows() int {
	usable := m.height - 4 // Title bar and status area.
	if usable < linesPerStory {
		return 1
	}
	return usable / linesPerStory
}
