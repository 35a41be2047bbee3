package seo

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownRecord is returned when the registry holds SEO properties for a
// record that is not part of the export.
var ErrUnknownRecord = errors.New("seo: registry entry for unknown record")

// Registry property names exported with each page.
const (
	PropertyDocumentTitle = "document_title"
	PropertyDescription   = "description"
)

var exportedProperties = []string{PropertyDocumentTitle, PropertyDescription}

// EnrichExport adds the SEO properties stored in the registry to the
// exported records. Records are only modified when every registry row
// matches an exported record.
func (m *Module) EnrichExport(ctx context.Context, _ *Request, ev *ExportEvent) error {
	m.called("export")

	if len(ev.Records) == 0 {
		return nil
	}
	if m.registry == nil {
		return errors.New("seo: export: no registry configured")
	}

	ids := make([]int64, 0, len(ev.Records))
	for id := range ev.Records {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	entries, err := m.registry.Find(ctx, ids, exportedProperties)
	if err != nil {
		return fmt.Errorf("seo: export: %w", err)
	}

	for _, e := range entries {
		if ev.Records[e.TargetID] == nil {
			m.logger.Errorf("seo: export: registry entry %q for record %d outside the export", e.Name, e.TargetID)
			return fmt.Errorf("%w: %d", ErrUnknownRecord, e.TargetID)
		}
	}

	for _, e := range entries {
		rec := ev.Records[e.TargetID]
		if rec.SEO == nil {
			rec.SEO = make(map[string]string)
		}
		rec.SEO[e.Name] = e.Value
	}
	m.Metrics.ExportRows.Add(float64(len(entries)))
	return nil
}
