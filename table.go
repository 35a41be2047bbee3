package seo

import (
	"context"
	"fmt"
	"sort"

	"github.com/eringen/pubengine-seo/document"
	"github.com/eringen/pubengine-seo/form"
)

// Source identifies the host component raising an event.
type Source string

// Kind is the name of an event raised by a source.
type Kind string

const (
	SourcePageRenderer    Source = "pages.PageRenderer"
	SourcePageEditBlock   Source = "pages.EditBlock"
	SourceSiteEditBlock   Source = "sites.EditBlock"
	SourceExportOperation Source = "pages.ExportOperation"
	SourceDocument        Source = "document"
)

const (
	KindRender            Kind = "render"
	KindAlterChildren     Kind = "alter_children"
	KindProcess           Kind = "process"
	KindRenderTitleBefore Kind = "render_title:before"
	KindRenderMetaBefore  Kind = "render_meta:before"
	KindRenderMeta        Kind = "render_meta"
)

// Key addresses a slot in the Table.
type Key struct {
	Source Source
	Kind   Kind
}

func (k Key) String() string {
	return string(k.Source) + "::" + string(k.Kind)
}

// Event binds a Key to the payload type its handlers receive.
type Event[E any] struct {
	Key
}

// Handler reacts to an event by mutating its payload.
type Handler[E any] func(ctx context.Context, req *Request, ev *E) error

// RenderEvent is raised once the page HTML is complete.
type RenderEvent struct {
	HTML string
	Page *Page
}

// TitleEvent is raised before the document title is rendered.
type TitleEvent struct {
	Title     string
	Separator string
}

// MetaEvent is raised before the document meta tags are rendered.
type MetaEvent struct {
	Meta *document.Meta
}

// RenderMetaEvent is raised after the meta tags are rendered; HTML holds
// the markup that goes into the document head.
type RenderMetaEvent struct {
	HTML string
}

// AlterChildrenEvent is raised while an admin edit form is built.
type AlterChildrenEvent struct {
	Attributes *form.Attributes
	Children   *form.Children
}

// ExportEvent is raised by the export operation. Records is keyed by
// record id and shared with the operation.
type ExportEvent struct {
	Records map[int64]*ExportRecord
}

var (
	PageRender          = Event[RenderEvent]{Key{SourcePageRenderer, KindRender}}
	PageEditChildren    = Event[AlterChildrenEvent]{Key{SourcePageEditBlock, KindAlterChildren}}
	SiteEditChildren    = Event[AlterChildrenEvent]{Key{SourceSiteEditBlock, KindAlterChildren}}
	PageExport          = Event[ExportEvent]{Key{SourceExportOperation, KindProcess}}
	DocumentTitleBefore = Event[TitleEvent]{Key{SourceDocument, KindRenderTitleBefore}}
	DocumentMetaBefore  = Event[MetaEvent]{Key{SourceDocument, KindRenderMetaBefore}}
	DocumentMeta        = Event[RenderMetaEvent]{Key{SourceDocument, KindRenderMeta}}
)

// Table maps event keys to handlers. It is filled at startup and only read
// afterwards.
type Table struct {
	handlers map[Key][]any
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{handlers: make(map[Key][]any)}
}

// On appends h to the handlers of ev.
func On[E any](t *Table, ev Event[E], h Handler[E]) {
	t.handlers[ev.Key] = append(t.handlers[ev.Key], h)
}

// Dispatch calls the handlers of ev in registration order. The first error
// stops propagation.
func Dispatch[E any](ctx context.Context, t *Table, ev Event[E], req *Request, payload *E) error {
	for _, h := range t.handlers[ev.Key] {
		if err := h.(Handler[E])(ctx, req, payload); err != nil {
			return fmt.Errorf("%s: %w", ev.Key, err)
		}
	}
	return nil
}

// Keys returns the registered keys sorted by source then kind.
func (t *Table) Keys() []Key {
	keys := make([]Key, 0, len(t.handlers))
	for k := range t.handlers {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Source != keys[j].Source {
			return keys[i].Source < keys[j].Source
		}
		return keys[i].Kind < keys[j].Kind
	})
	return keys
}

// Len returns the number of handlers registered for k.
func (t *Table) Len(k Key) int {
	return len(t.handlers[k])
}
