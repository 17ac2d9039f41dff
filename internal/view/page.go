package view

import (
	"html/template"
	"sync"

	"github.com/preston-bernstein/nfl-teams-console/internal/domain/teams"
)

// Page holds what the browser would keep in its DOM: the rendered list container
// and the current values of the create form inputs. The mutex only keeps
// concurrent writers memory-safe; it imposes no ordering between them.
type Page struct {
	mu    sync.RWMutex
	list  template.HTML
	rows  int
	form  teams.Fields
	ready bool
}

// Snapshot is a consistent copy of the page for rendering.
type Snapshot struct {
	List   template.HTML
	Rows   int
	Form   teams.Fields
	Loaded bool
}

// NewPage returns an empty page with no list rendered yet.
func NewPage() *Page {
	return &Page{}
}

// ReplaceList swaps the container content wholesale.
func (p *Page) ReplaceList(list template.HTML, rows int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.list = list
	p.rows = rows
	p.ready = true
}

// SetForm records the values currently typed into the form inputs.
func (p *Page) SetForm(fields teams.Fields) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.form = fields
}

// Form returns the current form input values.
func (p *Page) Form() teams.Fields {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.form
}

// ResetForm empties every form input.
func (p *Page) ResetForm() {
	p.SetForm(teams.Fields{})
}

// Snapshot copies the page state.
func (p *Page) Snapshot() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return Snapshot{
		List:   p.list,
		Rows:   p.rows,
		Form:   p.form,
		Loaded: p.ready,
	}
}
