// Package document holds the head of a rendered document: its title and
// meta tags.
package document

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Meta is an ordered set of <meta name content> pairs.
type Meta struct {
	keys   []string
	values map[string]string
}

// NewMeta returns an empty Meta.
func NewMeta() *Meta {
	return &Meta{values: make(map[string]string)}
}

// Set replaces the value of name, keeping its position, or appends it.
func (m *Meta) Set(name, content string) {
	if m.values == nil {
		m.values = make(map[string]string)
	}
	if _, ok := m.values[name]; !ok {
		m.keys = append(m.keys, name)
	}
	m.values[name] = content
}

// Get returns the value of name.
func (m *Meta) Get(name string) (string, bool) {
	v, ok := m.values[name]
	return v, ok
}

// Delete removes name.
func (m *Meta) Delete(name string) {
	if _, ok := m.values[name]; !ok {
		return
	}
	delete(m.values, name)
	for i, k := range m.keys {
		if k == name {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the names in insertion order.
func (m *Meta) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Len returns the number of entries.
func (m *Meta) Len() int {
	return len(m.keys)
}

// RenderMeta returns the meta tags of m, one per line.
func RenderMeta(m *Meta) string {
	var b strings.Builder
	for _, k := range m.keys {
		n := &html.Node{
			Type:     html.ElementNode,
			DataAtom: atom.Meta,
			Data:     "meta",
			Attr: []html.Attribute{
				{Key: "name", Val: k},
				{Key: "content", Val: m.values[k]},
			},
		}
		// Writes to a strings.Builder cannot fail.
		_ = html.Render(&b, n)
		b.WriteByte('\n')
	}
	return b.String()
}

// Head returns a component writing the title, the meta tags of m and
// extra, which is already rendered HTML such as link tags.
func Head(title string, m *Meta, extra string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<title>"+html.EscapeString(title)+"</title>\n"); err != nil {
			return err
		}
		if _, err := io.WriteString(w, RenderMeta(m)); err != nil {
			return err
		}
		_, err := io.WriteString(w, extra)
		return err
	})
}
