// Package render converts the site's comment HTML into plain terminal text.
package render

import (
	"html"
	"strings"

	xhtml "golang.org/x/net/html"
)

// HTMLToText converts the site's limited comment markup to plain text wrapped
// at width. Comments use <p>, <a>, <em>/<i>, <strong>/<b>, <code>,
// <pre><code>, <blockquote>, <ul>/<ol>/<li> and HTML entities.
func HTMLToText(raw string, width int) string {
	if raw == "" {
		return ""
	}

	tokenizer := xhtml.NewTokenizer(strings.NewReader(raw))
	var sb strings.Builder
	var inPre bool
	var anchorURL string
	quoteDepth := 0

	writeBreak := func() {
		if sb.Len() > 0 {
			sb.WriteString("\n\n")
		}
		for i := 0; i < quoteDepth; i++ {
			sb.WriteString("> ")
		}
	}

	for {
		tt := tokenizer.Next()
		switch tt {
		case xhtml.ErrorToken:
			return wrapText(strings.TrimSpace(sb.String()), width)

		case xhtml.TextToken:
			text := html.UnescapeString(string(tokenizer.Text()))
			if !inPre {
				text = strings.ReplaceAll(text, "\n", " ")
			}
			sb.WriteString(text)

		case xhtml.StartTagToken:
			t := tokenizer.Token()
			switch t.Data {
			case "p":
				writeBreak()
			case "i", "em":
				sb.WriteString("*")
			case "strong", "b":
				sb.WriteString("**")
			case "code":
				if !inPre {
					sb.WriteString("`")
				}
			case "pre":
				inPre = true
				sb.WriteString("\n")
			case "blockquote":
				// The inner <p> writes the break with the quote prefix.
				quoteDepth++
			case "li":
				sb.WriteString("\n  • ")
			case "a":
				anchorURL = ""
				for _, attr := range t.Attr {
					if attr.Key == "href" {
						anchorURL = attr.Val
					}
				}
			}

		case xhtml.EndTagToken:
			t := tokenizer.Token()
			switch t.Data {
			case "i", "em":
				sb.WriteString("*")
			case "strong", "b":
				sb.WriteString("**")
			case "code":
				if !inPre {
					sb.WriteString("`")
				}
			case "pre":
				inPre = false
				sb.WriteString("\n")
			case "blockquote":
				if quoteDepth > 0 {
					quoteDepth--
				}
			case "a":
				if anchorURL != "" && !strings.Contains(sb.String(), anchorURL) {
					sb.WriteString(" (" + anchorURL + ")")
				}
				anchorURL = ""
			}
		}
	}
}

// wrapText wraps plain text at width, preserving existing line breaks.
// Preformatted lines are left alone; terminals scroll horizontally badly,
// but reflowing code is worse.
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if len([]rune(line)) <= width {
			out = append(out, line)
			continue
		}
		out = append(out, wrapLine(line, width)...)
	}
	return strings.Join(out, "\n")
}

func wrapLine(line string, width int) []string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return []string{line}
	}
	var lines []string
	current := words[0]
	for _, w := range words[1:] {
		if len([]rune(current))+1+len([]rune(w)) > width {
			lines = append(lines, current)
			current = w
			continue
		}
		current += " " + w
	}
	return append(lines, current)
}
