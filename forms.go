package seo

import (
	"context"

	"github.com/eringen/pubengine-seo/form"
)

// GroupSEO is the id of the form group holding the SEO controls.
const GroupSEO = "seo"

// Field keys added to the edit forms.
const (
	FieldGoogleAnalyticsUA      = "metas[google_analytics_ua]"
	FieldGoogleSiteVerification = "metas[google_site_verification]"
	FieldDocumentTitle          = "metas[document_title]"
	FieldDescription            = "metas[description]"
)

func addSEOGroup(attrs *form.Attributes) {
	attrs.SetGroup(GroupSEO, form.Group{Title: "SEO", Weight: 40})
}

// AlterSiteChildren extends the site edit form with a SEO group and
// controls for the Google Analytics UA and the Google Site Verification key.
func (m *Module) AlterSiteChildren(_ context.Context, _ *Request, ev *AlterChildrenEvent) error {
	m.called("site_form")

	addSEOGroup(ev.Attributes)

	extra := form.NewChildren()
	extra.Set(FieldGoogleAnalyticsUA, form.Field{
		Kind:  form.KindText,
		Label: "Google Analytics UA",
		Group: GroupSEO,
	})
	extra.Set(FieldGoogleSiteVerification, form.Field{
		Kind:  form.KindText,
		Label: "Google Site Verification",
		Group: GroupSEO,
	})
	ev.Children.Merge(extra)
	return nil
}

// AlterPageChildren adds controls to edit the SEO title and description of
// the page.
func (m *Module) AlterPageChildren(_ context.Context, _ *Request, ev *AlterChildrenEvent) error {
	m.called("page_form")

	addSEOGroup(ev.Attributes)

	ev.Children.Set(FieldDocumentTitle, form.Field{
		Kind:        form.KindText,
		Label:       "Document title",
		Group:       GroupSEO,
		Description: "Title shown in the browser tab and search results, followed by the site title.",
	})
	ev.Children.Set(FieldDescription, form.Field{
		Kind:        form.KindTextArea,
		Label:       "Description",
		Group:       GroupSEO,
		Description: "Short summary used by search engines below the page title. Ignored when the page displays a record with its own excerpt.",
		Rows:        3,
	})
	return nil
}
