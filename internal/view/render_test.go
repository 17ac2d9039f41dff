package view

import (
	"html/template"
	"strings"
	"testing"

	"github.com/preston-bernstein/nfl-teams-console/internal/domain/teams"
)

const rowMarker = `class="list-group-item team-item`

func mustRender(t *testing.T, items []teams.Team) template.HTML {
	t.Helper()
	out, err := Render(items)
	if err != nil {
		t.Fatalf("expected render to succeed, got %v", err)
	}
	return out
}

func TestRenderEmptyProducesNoRows(t *testing.T) {
	if got := mustRender(t, nil); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
	if got := mustRender(t, []teams.Team{}); strings.Count(string(got), rowMarker) != 0 {
		t.Fatalf("expected zero rows, got %q", got)
	}
}

func TestRenderSingleTeam(t *testing.T) {
	out := string(mustRender(t, []teams.Team{{ID: "1", Name: "Patriots", Conference: "AFC", Division: "East", City: "Foxborough"}}))

	if n := strings.Count(out, rowMarker); n != 1 {
		t.Fatalf("expected 1 row, got %d", n)
	}
	for _, want := range []string{"Patriots", "AFC East | Foxborough", `data-id="1"`, DeleteClass, `action="/teams/1/delete"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
}

func TestRenderKeepsInputOrder(t *testing.T) {
	items := []teams.Team{
		{ID: "3", Name: "Dolphins"},
		{ID: "1", Name: "Patriots"},
		{ID: "2", Name: "Bills"},
	}
	out := string(mustRender(t, items))

	if n := strings.Count(out, rowMarker); n != len(items) {
		t.Fatalf("expected %d rows, got %d", len(items), n)
	}
	last := -1
	for _, team := range items {
		idx := strings.Index(out, team.Name)
		if idx <= last {
			t.Fatalf("expected %s after previous row", team.Name)
		}
		last = idx
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	items := []teams.Team{{ID: "1", Name: "Patriots"}, {ID: "2", Name: "Jets"}}
	if mustRender(t, items) != mustRender(t, items) {
		t.Fatalf("expected identical output for identical input")
	}

	page := NewPage()
	page.ReplaceList(mustRender(t, items), len(items))
	once := page.Snapshot()
	page.ReplaceList(mustRender(t, items), len(items))
	if twice := page.Snapshot(); twice != once {
		t.Fatalf("expected rendering twice to equal rendering once")
	}
}

func TestRenderEscapesValues(t *testing.T) {
	out := string(mustRender(t, []teams.Team{{ID: `x"y`, Name: "<script>alert(1)</script>"}}))
	if strings.Contains(out, "<script>") {
		t.Fatalf("expected name escaped, got %q", out)
	}
	if !strings.Contains(out, "&lt;script&gt;") {
		t.Fatalf("expected escaped markup, got %q", out)
	}
}

func TestRenderEscapesIDInDeletePath(t *testing.T) {
	out := string(mustRender(t, []teams.Team{{ID: "a/b", Name: "Odd"}}))
	if !strings.Contains(out, `action="/teams/a%2fb/delete"`) && !strings.Contains(out, `action="/teams/a%2Fb/delete"`) {
		t.Fatalf("expected escaped id in path, got %q", out)
	}
}

func TestRenderReturnsTemplateError(t *testing.T) {
	orig := rowsTemplate
	defer func() { rowsTemplate = orig }()
	rowsTemplate = template.Must(template.New("rows").Parse(`{{range .}}{{.Missing}}{{end}}`))

	out, err := Render([]teams.Team{{ID: "1", Name: "Patriots"}})
	if err == nil {
		t.Fatalf("expected error for failing template")
	}
	if out != "" {
		t.Fatalf("expected no partial output, got %q", out)
	}
}
