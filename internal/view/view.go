// Package view renders the HTML pages and fragments of the contact card.
package view

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"sync"

	"htmxcontacts/internal/model"
)

// Template names. Each one is a {{define}} block in templates/.
const (
	Index        = "index"
	ContactPage  = "contact_page"
	ContactCard  = "contact"
	ContactEdit  = "contact_edit"
	templateGlob = "*.html"
)

var names = map[string]struct{}{
	Index:       {},
	ContactPage: {},
	ContactCard: {},
	ContactEdit: {},
}

var (
	ErrUnknownTemplate = errors.New("unknown template")
	ErrNotLoaded       = errors.New("templates not loaded")
)

//go:embed templates/*.html
var embedded embed.FS

// ContactView is the view-model for the contact page, card and edit form.
type ContactView struct {
	ID        uint32
	FirstName string
	LastName  string
	Email     string
}

// NewContactView builds the view-model for c, linked to id.
func NewContactView(id uint32, c model.Contact) ContactView {
	return ContactView{
		ID:        id,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
	}
}

// Engine is a fiber.Views implementation backed by html/template.
type Engine struct {
	fsys fs.FS

	mu   sync.RWMutex
	tmpl *template.Template
}

// New returns an Engine reading *.html from fsys. Call Load before Render.
func New(fsys fs.FS) *Engine {
	return &Engine{fsys: fsys}
}

// Embedded returns an Engine over the templates compiled into the binary.
func Embedded() *Engine {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		// fs.Sub only fails on an invalid path literal.
		panic(err)
	}
	return New(sub)
}

// Load parses every template. Only the first successful call parses; later
// calls, such as the one fiber.New makes after start-up already loaded the
// engine, return nil.
func (e *Engine) Load() error {
	e.mu.RLock()
	done := e.tmpl != nil
	e.mu.RUnlock()
	if done {
		return nil
	}

	t, err := template.ParseFS(e.fsys, templateGlob)
	if err != nil {
		return fmt.Errorf("parse templates: %w", err)
	}

	e.mu.Lock()
	if e.tmpl == nil {
		e.tmpl = t
	}
	e.mu.Unlock()
	return nil
}

// Render executes the named template into w. The output is buffered so a
// failing template writes nothing. Layouts are not supported and are ignored.
func (e *Engine) Render(w io.Writer, name string, data interface{}, _ ...string) error {
	if _, ok := names[name]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTemplate, name)
	}

	e.mu.RLock()
	t := e.tmpl
	e.mu.RUnlock()
	if t == nil {
		return ErrNotLoaded
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}
