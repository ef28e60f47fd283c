package stories

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"lobsterm/domain"
)

func plainView(m Model) string {
	return ansi.Strip(m.View())
}

func TestView_ShowsLoadingPlaceholder(t *testing.T) {
	m := New(&stubSource{})
	m.SetSize(80, 24)
	out := plainView(m)
	if !strings.Contains(out, "Loading stories") {
		t.Fatalf("expected loading placeholder, got:\n%s", out)
	}
}

func TestView_RendersStoryRows(t *testing.T) {
	src := &stubSource{}
	m := loadedModel(t, src, 1, 2)
	m.stories[0] = domain.Story{
		ShortID:      "abc",
		Title:        "Generics in practice",
		URL:          "https://www.example.com/post",
		Submitter:    "alice",
		Score:        42,
		CommentCount: 7,
		Tags:         []string{"go", "practices"},
		CreatedAt:    time.Now().Add(-2 * time.Hour),
	}

	out := plainView(m)
	for _, want := range []string{"Generics in practice", "example.com", "alice", "42", "go practices", "7 comments", "2 hours ago", "page 1"} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "> ") {
		t.Fatalf("view missing selection marker:\n%s", out)
	}
}

func TestView_ErrorRendersInline(t *testing.T) {
	src := &stubSource{}
	m := loadedModel(t, src, 1, 3)
	m.status = "Network trouble — press r to retry."

	out := plainView(m)
	if !strings.Contains(out, "Network trouble") {
		t.Fatalf("expected inline error, got:\n%s", out)
	}
	if !strings.Contains(out, "Story 1") {
		t.Fatalf("error must not hide the list:\n%s", out)
	}
}

func TestView_EmptyPage(t *testing.T) {
	src := &stubSource{}
	m := loadedModel(t, src, 5, 0)
	out := plainView(m)
	if !strings.Contains(out, "No stories") {
		t.Fatalf("expected empty-page notice, got:\n%s", out)
	}
}
