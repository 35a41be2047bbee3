package seo

// AdminUserID is the reserved id of the site administrator. Pages viewed by
// this user are never tracked.
const AdminUserID int64 = 1

// Site metadata keys read by the hooks.
const (
	MetaGoogleAnalyticsUA      = "google_analytics_ua"
	MetaGoogleSiteVerification = "google_site_verification"
)

// Site is a tenant of the host CMS. Metas holds free-form settings edited
// through the SEO group of the site form.
type Site struct {
	ID    int64
	Title string
	URL   string
	Metas map[string]string
}

// Meta returns the site setting for key, or "" when the site is nil or the
// key is unset.
func (s *Site) Meta(key string) string {
	if s == nil {
		return ""
	}
	return s.Metas[key]
}

// Page is a renderable page of the host CMS, optionally backed by a Node.
type Page struct {
	ID            int64
	Title         string
	DocumentTitle string
	Description   string
	IsOnline      bool
	IsHome        bool
	Site          *Site
	Node          Node
}

// Node is a record linked to a page.
type Node interface {
	Online() bool
}

// Content is a node carrying an excerpt. When a page displays a Content,
// the excerpt replaces the page description.
type Content interface {
	Node
	Excerpt() string
}

// AbsoluteURLer is implemented by nodes that know their absolute address.
type AbsoluteURLer interface {
	AbsoluteURL() string
}

// Request carries the per-request values the hooks need. The host builds it
// once per request (see Middleware) and passes it to every dispatch.
type Request struct {
	ServerName string
	UserID     int64
	Page       *Page
}

// ExportRecord is a page being serialized by the host export operation.
type ExportRecord struct {
	ID  int64             `json:"id"`
	SEO map[string]string `json:"seo,omitempty"`
}
