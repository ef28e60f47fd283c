package thread

import (
	"fmt"
	"strings"
	"time"

	"lobsterm/render"
	"lobsterm/tui/common"
)

const indentPerLevel = 2

// View renders the thread. Pure: reads model state, returns a frame.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(common.AppTitleStyle.Render("lobsterm"))
	b.WriteString("\n\n")
	m.renderHeader(&b)

	switch {
	case m.loading:
		b.WriteString(common.LoadingStyle.Render(m.spinner.View() + " Loading comments..."))
		b.WriteString("\n")
	case m.status != "":
		b.WriteString(common.ErrorStyle.Render(m.status))
		b.WriteString("\n")
	case len(m.flat) == 0:
		b.WriteString(common.MetaStyle.Render("No comments yet."))
		b.WriteString("\n")
	default:
		m.renderComments(&b)
	}

	return common.ClampToWidth(b.String(), m.width)
}

func (m Model) renderHeader(b *strings.Builder) {
	b.WriteString(common.TitleStyle.Render(m.story.Title))
	if d := common.Domain(m.story.URL); d != "" {
		b.WriteString(" ")
		b.WriteString(common.URLStyle.Render("(" + d + ")"))
	}
	b.WriteString("\n")
	b.WriteString(common.MetaStyle.Render(fmt.Sprintf("%d points via ", m.story.Score)))
	b.WriteString(common.AuthorStyle.Render(m.story.Submitter))
	if len(m.story.Tags) > 0 {
		b.WriteString(common.MetaStyle.Render(" | "))
		b.WriteString(common.TagStyle.Render(strings.Join(m.story.Tags, " ")))
	}
	b.WriteString("\n\n")
}

func (m Model) renderComments(b *strings.Builder) {
	slots := m.visibleSlots()
	end := m.start + slots
	if end > len(m.flat) {
		end = len(m.flat)
	}
	now := time.Now()

	for i := m.start; i < end; i++ {
		row := m.flat[i]
		c := row.Node
		indent := strings.Repeat(" ", indentPerLevel*c.Depth)

		marker := "  "
		if i == m.cursor {
			marker = common.SelectedMarkerStyle.Render("> ")
		}

		b.WriteString(marker)
		b.WriteString(indent)
		b.WriteString(common.AuthorStyle.Render(c.Author))
		b.WriteString(common.MetaStyle.Render(fmt.Sprintf(" %s, %s",
			points(c.Score), common.RelativeTime(c.CreatedAt, now))))
		if row.Collapsed {
			b.WriteString(" ")
			b.WriteString(common.CollapsedBadgeStyle.Render(fmt.Sprintf("[+%d]", row.HiddenCount)))
			b.WriteString("\n")
			continue
		}
		b.WriteString("\n")

		bodyWidth := m.width - indentPerLevel*c.Depth - 4
		if bodyWidth < 20 {
			bodyWidth = 20
		}
		body := render.HTMLToText(c.Body, bodyWidth)
		for _, line := range strings.Split(body, "\n") {
			b.WriteString("  ")
			b.WriteString(indent)
			b.WriteString(common.CommentBodyStyle.Render(line))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if end < len(m.flat) {
		b.WriteString(common.MetaStyle.Render(fmt.Sprintf("... %d more comments", len(m.flat)-end)))
		b.WriteString("\n")
	}
}

func points(score int) string {
	if score == 1 || score == -1 {
		return fmt.Sprintf("%d point", score)
	}
	return fmt.Sprintf("%d points", score)
}

// visibleSlots estimates how many comments fit on screen. Comment heights
// vary, so this errs low; the remainder scrolls.
func (m Model) visibleSlots() int {
	usable := m.height - 8
	if usable < 4 {
		return 3
	}
	slots := usable / 4
	if slots < 3 {
		slots = 3
	}
	return slots
}
