// Package seo adds search engine optimisation to a pubengine-style CMS.
// It hooks into the host through a Table of events: analytics injection
// on page render, document title and meta rewriting, canonical links,
// SEO fields on the site and page edit forms, and SEO properties on
// exported pages.
//
// Hosts build a Module, call Register on their Table and dispatch events
// at the matching extension points. Middleware and RegisterRoutes mount
// the module on an Echo server.
package seo

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/eringen/pubengine-seo/registry"
)

// RegistryFinder looks up registry entries by target id and property name.
type RegistryFinder interface {
	Find(ctx context.Context, targetIDs []int64, names []string) ([]registry.Entry, error)
}

// Module is the SEO feature. It holds configuration, the registry used by
// exports, logging and metrics shared by every hook.
type Module struct {
	Config  Config
	Metrics *Metrics

	logger     echo.Logger
	registerer prometheus.Registerer
	registry   RegistryFinder
}

// New creates a Module with the given configuration.
func New(cfg Config, opts ...Option) *Module {
	cfg.setDefaults()

	m := &Module{Config: cfg}
	for _, opt := range opts {
		opt(m)
	}

	if m.logger == nil {
		m.logger = log.New("seo")
	}
	if m.registerer == nil {
		m.registerer = prometheus.NewRegistry()
	}
	m.Metrics = NewMetrics(m.registerer, cfg.MetricsNamespace)
	return m
}

// Register installs the SEO hooks in t.
func (m *Module) Register(t *Table) {
	On(t, PageEditChildren, m.AlterPageChildren)
	On(t, PageExport, m.EnrichExport)
	On(t, PageRender, m.InjectAnalytics)
	On(t, SiteEditChildren, m.AlterSiteChildren)
	On(t, DocumentTitleBefore, m.ComposeTitle)
	On(t, DocumentMetaBefore, m.ComputeMeta)
	On(t, DocumentMeta, m.AppendCanonical)
}

// Table returns a new Table holding only the SEO hooks.
func (m *Module) Table() *Table {
	t := NewTable()
	m.Register(t)
	return t
}

func (m *Module) called(hook string) {
	m.Metrics.HookCalls.WithLabelValues(hook).Inc()
}
