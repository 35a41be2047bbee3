package seo

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/eringen/pubengine-seo/form"
)

// RegistryStore is the registry used by the admin handlers.
type RegistryStore interface {
	RegistryFinder
	Set(ctx context.Context, targetID int64, name, value string) error
}

// AdminHandler serves the SEO admin endpoints.
type AdminHandler struct {
	table *Table
	store RegistryStore
}

// NewAdminHandler creates an AdminHandler raising events on t and persisting
// page properties in store.
func NewAdminHandler(t *Table, store RegistryStore) *AdminHandler {
	return &AdminHandler{table: t, store: store}
}

// RegisterRoutes mounts the admin endpoints on g. Hosts pass their admin
// authentication middleware in mw.
func (h *AdminHandler) RegisterRoutes(g *echo.Group, mw ...echo.MiddlewareFunc) {
	g.GET("/seo/export/", h.Export, mw...)
	g.GET("/seo/fields/site/", h.SiteFields, mw...)
	g.GET("/seo/fields/page/:id/", h.PageFields, mw...)
	g.PUT("/seo/pages/:id/", h.SavePage, mw...)
}

// Export answers the records listed in the ids query parameter with their
// SEO properties.
func (h *AdminHandler) Export(c echo.Context) error {
	ids, err := parseIDs(c.QueryParam("ids"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ev := ExportEvent{Records: make(map[int64]*ExportRecord, len(ids))}
	for _, id := range ids {
		ev.Records[id] = &ExportRecord{ID: id}
	}
	if err := Dispatch(c.Request().Context(), h.table, PageExport, RequestFrom(c), &ev); err != nil {
		return err
	}
	out := make([]*ExportRecord, 0, len(ids))
	for _, id := range ids {
		out = append(out, ev.Records[id])
	}
	return c.JSON(http.StatusOK, out)
}

// SiteFields renders the controls added to the site edit form.
func (h *AdminHandler) SiteFields(c echo.Context) error {
	ev := AlterChildrenEvent{Attributes: &form.Attributes{}, Children: form.NewChildren()}
	if err := Dispatch(c.Request().Context(), h.table, SiteEditChildren, RequestFrom(c), &ev); err != nil {
		return err
	}
	return renderFragment(c, form.Render(ev.Attributes, ev.Children))
}

// PageFields renders the controls added to the page edit form, filled with
// the values stored for the page.
func (h *AdminHandler) PageFields(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid page id")
	}
	ctx := c.Request().Context()

	ev := AlterChildrenEvent{Attributes: &form.Attributes{}, Children: form.NewChildren()}
	if err := Dispatch(ctx, h.table, PageEditChildren, RequestFrom(c), &ev); err != nil {
		return err
	}

	entries, err := h.store.Find(ctx, []int64{id}, exportedProperties)
	if err != nil {
		return err
	}
	for _, e := range entries {
		key := "metas[" + e.Name + "]"
		if f, ok := ev.Children.Get(key); ok {
			f.Value = e.Value
			ev.Children.Set(key, f)
		}
	}
	return renderFragment(c, form.Render(ev.Attributes, ev.Children))
}

// SavePage stores the SEO properties posted from the page edit form.
func (h *AdminHandler) SavePage(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid page id")
	}
	if err := c.Request().ParseForm(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()
	for _, name := range exportedProperties {
		values, ok := c.Request().Form["metas["+name+"]"]
		if !ok {
			continue
		}
		if err := h.store.Set(ctx, id, name, strings.TrimSpace(values[0])); err != nil {
			return err
		}
	}
	return c.NoContent(http.StatusNoContent)
}

func parseIDs(s string) ([]int64, error) {
	var ids []int64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, errors.New("invalid id " + strconv.Quote(part))
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, errors.New("ids is required")
	}
	return ids, nil
}
