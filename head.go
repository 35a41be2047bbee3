package seo

import (
	"context"

	"github.com/a-h/templ"

	"github.com/eringen/pubengine-seo/document"
)

// DefaultTitleSeparator separates the document title from the site title.
const DefaultTitleSeparator = " | "

// RenderHead raises the document events of t for req and returns the
// resulting head: title, meta tags and the markup added after them.
// Hosts call it where their layout writes the document head. A nil req
// yields an empty title and no meta tags.
func RenderHead(ctx context.Context, t *Table, req *Request, separator string) (templ.Component, error) {
	title := TitleEvent{Separator: separator}
	if req != nil && req.Page != nil {
		title.Title = req.Page.Title
	}
	if err := Dispatch(ctx, t, DocumentTitleBefore, req, &title); err != nil {
		return nil, err
	}

	meta := MetaEvent{Meta: document.NewMeta()}
	if err := Dispatch(ctx, t, DocumentMetaBefore, req, &meta); err != nil {
		return nil, err
	}

	rendered := RenderMetaEvent{}
	if err := Dispatch(ctx, t, DocumentMeta, req, &rendered); err != nil {
		return nil, err
	}

	return document.Head(title.Title, meta.Meta, rendered.HTML), nil
}
