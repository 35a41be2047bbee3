package seo

import "context"

// Meta names written by ComputeMeta.
const (
	MetaDescription            = "Description"
	MetaSiteVerificationHeader = "google-site-verification"
)

// ComposeTitle replaces the document title with the page document title
// followed by the site title. An empty document title still yields the
// separator.
func (m *Module) ComposeTitle(_ context.Context, req *Request, ev *TitleEvent) error {
	m.called("title")

	if req == nil || req.Page == nil {
		return nil
	}
	page := req.Page
	var siteTitle string
	if page.Site != nil {
		siteTitle = page.Site.Title
	}
	ev.Title = page.DocumentTitle + ev.Separator + siteTitle
	return nil
}

// ComputeMeta adds the Description meta, from the record excerpt when the
// page displays a Content and from the page description otherwise. On the
// home page it also adds the google-site-verification meta.
func (m *Module) ComputeMeta(_ context.Context, req *Request, ev *MetaEvent) error {
	m.called("meta")

	if req == nil || req.Page == nil {
		return nil
	}
	page := req.Page

	description := page.Description
	if content, ok := page.Node.(Content); ok {
		description = content.Excerpt()
	}
	if description != "" {
		ev.Meta.Set(MetaDescription, NormalizeDescription(description))
	}

	if page.IsHome {
		if v := page.Site.Meta(MetaGoogleSiteVerification); v != "" {
			ev.Meta.Set(MetaSiteVerificationHeader, v)
		}
	}
	return nil
}

// AppendCanonical adds the canonical address of the displayed record. The
// address is written as returned by the record.
func (m *Module) AppendCanonical(_ context.Context, req *Request, ev *RenderMetaEvent) error {
	m.called("canonical")

	if req == nil || req.Page == nil {
		return nil
	}
	if n, ok := req.Page.Node.(AbsoluteURLer); ok {
		ev.HTML += `<link rel="canonical" href="` + n.AbsoluteURL() + `" />` + "\n"
	}
	return nil
}
