package seo

import (
	"context"
	"fmt"
	"html/template"
	"strings"
)

const analyticsSnippet = `

<script type="text/javascript">

	(function(i,s,o,g,r,a,m){i['GoogleAnalyticsObject']=r;i[r]=i[r]||function(){
	(i[r].q=i[r].q||[]).push(arguments)},i[r].l=1*new Date();a=s.createElement(o),
	m=s.getElementsByTagName(o)[0];a.async=1;a.src=g;m.parentNode.insertBefore(a,m)
	})(window,document,'script','//www.google-analytics.com/analytics.js','ga');

	ga('create', '%s', 'auto');
	ga('send', 'pageview');

</script>


`

// AnalyticsSnippet returns the Google Analytics bootstrap script for ua.
func AnalyticsSnippet(ua string) string {
	return fmt.Sprintf(analyticsSnippet, template.JSEscapeString(ua))
}

// InsertBeforeBodyEnd inserts s before the first closing body tag of html.
// html is returned unchanged when it has no closing body tag.
func InsertBeforeBodyEnd(html, s string) string {
	i := strings.Index(html, "</body>")
	if i < 0 {
		return html
	}
	return html[:i] + s + html[i:]
}

// InjectAnalytics adds the Google Analytics script at the end of the body,
// unless the request is served from localhost, the viewer is the admin,
// the page or its record is offline, or the site has no UA configured.
func (m *Module) InjectAnalytics(_ context.Context, req *Request, ev *RenderEvent) error {
	m.called("analytics")

	if reason := m.analyticsSkipReason(req, ev.Page); reason != "" {
		m.Metrics.AnalyticsSkipped.WithLabelValues(reason).Inc()
		m.logger.Debugf("seo: analytics skipped: %s", reason)
		return nil
	}

	ua := ev.Page.Site.Meta(MetaGoogleAnalyticsUA)
	ev.HTML = InsertBeforeBodyEnd(ev.HTML, AnalyticsSnippet(ua))
	return nil
}

func (m *Module) analyticsSkipReason(req *Request, page *Page) string {
	switch {
	case req == nil:
		return "no_request"
	case strings.Contains(req.ServerName, "localhost"):
		return "localhost"
	case req.UserID == m.Config.AdminUserID:
		return "admin"
	case page == nil || !page.IsOnline:
		return "page_offline"
	case page.Node != nil && !page.Node.Online():
		return "node_offline"
	case page.Site.Meta(MetaGoogleAnalyticsUA) == "":
		return "no_ua"
	}
	return ""
}
