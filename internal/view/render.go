package view

import (
	"bytes"
	"fmt"
	"html/template"
	"net/url"

	"github.com/preston-bernstein/nfl-teams-console/internal/domain/teams"
)

// DeleteClass marks the delete affordance inside a rendered row; the id it
// acts on travels in the element's data-id attribute.
const DeleteClass = "delete-btn"

var rowsTemplate = template.Must(template.New("rows").Funcs(template.FuncMap{
	"pathID": func(id teams.ID) string { return url.PathEscape(id.String()) },
}).Parse(
	`{{range .}}<div class="list-group-item team-item d-flex justify-content-between align-items-center">
<div>
<h5 class="team-name">{{.Name}}</h5>
<p class="team-info mb-0">{{.Conference}} {{.Division}} | {{.City}}</p>
</div>
<form method="post" action="/teams/{{pathID .ID}}/delete" class="m-0">
<button type="submit" class="btn btn-danger btn-sm ` + DeleteClass + `" data-id="{{.ID}}">Delete</button>
</form>
</div>
{{end}}`))

// Render turns an ordered team sequence into list rows, one per team, in input order.
// It has no side effects; equal input yields byte-identical output.
func Render(items []teams.Team) (template.HTML, error) {
	var buf bytes.Buffer
	if err := rowsTemplate.Execute(&buf, items); err != nil {
		return "", fmt.Errorf("view: render rows: %w", err)
	}
	return template.HTML(buf.String()), nil
}
