package seo

import (
	"bytes"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const requestContextKey = "seo.request"

// PageResolver returns the page served by the current request, or nil when
// the route does not display a page.
type PageResolver func(c echo.Context) (*Page, error)

// RequestFrom returns the Request built by Middleware, or nil.
func RequestFrom(c echo.Context) *Request {
	req, _ := c.Get(requestContextKey).(*Request)
	return req
}

// Middleware builds the Request of every call and raises the page render
// event of t on HTML responses of resolved pages.
func (m *Module) Middleware(t *Table, resolve PageResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			page, err := resolve(c)
			if err != nil {
				return err
			}
			req := &Request{
				ServerName: m.serverName(c.Request()),
				UserID:     m.userID(c),
				Page:       page,
			}
			c.Set(requestContextKey, req)

			if page == nil {
				return next(c)
			}

			res := c.Response()
			orig := res.Writer
			buf := &bufferWriter{ResponseWriter: orig, status: http.StatusOK}
			res.Writer = buf
			err = next(c)
			res.Writer = orig
			body := buf.body.Bytes()
			if err != nil {
				if res.Committed {
					orig.WriteHeader(buf.status)
					_, _ = orig.Write(body)
				}
				return err
			}

			if isHTML(orig.Header().Get(echo.HeaderContentType)) {
				ev := RenderEvent{HTML: string(body), Page: page}
				if err := Dispatch(c.Request().Context(), t, PageRender, req, &ev); err != nil {
					c.Logger().Errorf("seo: page render: %v", err)
				} else {
					body = []byte(ev.HTML)
				}
			}
			orig.Header().Set(echo.HeaderContentLength, strconv.Itoa(len(body)))
			orig.WriteHeader(buf.status)
			_, err = orig.Write(body)
			return err
		}
	}
}

func (m *Module) serverName(r *http.Request) string {
	if m.Config.ServerName != "" {
		return m.Config.ServerName
	}
	host, _, err := net.SplitHostPort(r.Host)
	if err != nil {
		return r.Host
	}
	return host
}

// userID reads the user_id value of the host session. Anonymous visitors
// get 0.
func (m *Module) userID(c echo.Context) int64 {
	sess, err := session.Get(m.Config.SessionName, c)
	if err != nil {
		return 0
	}
	switch v := sess.Values["user_id"].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	}
	return 0
}

func isHTML(contentType string) bool {
	return strings.HasPrefix(contentType, echo.MIMETextHTML)
}

// bufferWriter holds the response until the render event has run.
type bufferWriter struct {
	http.ResponseWriter
	body   bytes.Buffer
	status int
}

func (w *bufferWriter) WriteHeader(code int) {
	w.status = code
}

func (w *bufferWriter) Write(b []byte) (int, error) {
	return w.body.Write(b)
}

func (w *bufferWriter) Flush() {}
