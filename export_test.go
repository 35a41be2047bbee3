package seo

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/eringen/pubengine-seo/registry"
)

func TestEnrichExport(t *testing.T) {
	finder := &fakeFinder{entries: []registry.Entry{
		{TargetID: 1, Name: PropertyDescription, Value: "A"},
		{TargetID: 2, Name: PropertyDocumentTitle, Value: "B"},
	}}
	m := newTestModule(t, WithRegistry(finder))
	ev := ExportEvent{Records: map[int64]*ExportRecord{1: {ID: 1}, 2: {ID: 2}}}

	if err := m.EnrichExport(context.Background(), nil, &ev); err != nil {
		t.Fatalf("EnrichExport failed: %v", err)
	}
	if got := ev.Records[1].SEO[PropertyDescription]; got != "A" {
		t.Errorf("record 1 description = %q, want %q", got, "A")
	}
	if got := ev.Records[2].SEO[PropertyDocumentTitle]; got != "B" {
		t.Errorf("record 2 document_title = %q, want %q", got, "B")
	}
	if len(finder.ids) != 2 || finder.ids[0] != 1 || finder.ids[1] != 2 {
		t.Errorf("queried ids = %v, want [1 2]", finder.ids)
	}
	if len(finder.names) != 2 || finder.names[0] != PropertyDocumentTitle || finder.names[1] != PropertyDescription {
		t.Errorf("queried names = %v", finder.names)
	}
	if got := testutil.ToFloat64(m.Metrics.ExportRows); got != 2 {
		t.Errorf("export_rows_total = %v, want 2", got)
	}
}

func TestEnrichExportUnknownRecord(t *testing.T) {
	finder := &fakeFinder{entries: []registry.Entry{
		{TargetID: 1, Name: PropertyDescription, Value: "A"},
		{TargetID: 3, Name: PropertyDescription, Value: "C"},
	}}
	m := newTestModule(t, WithRegistry(finder))
	ev := ExportEvent{Records: map[int64]*ExportRecord{1: {ID: 1}, 2: {ID: 2}}}

	err := m.EnrichExport(context.Background(), nil, &ev)
	if !errors.Is(err, ErrUnknownRecord) {
		t.Fatalf("err = %v, want ErrUnknownRecord", err)
	}
	if ev.Records[1].SEO != nil {
		t.Errorf("records should be left untouched on error, got %v", ev.Records[1].SEO)
	}
}

func TestEnrichExportFinderError(t *testing.T) {
	boom := errors.New("db down")
	m := newTestModule(t, WithRegistry(&fakeFinder{err: boom}))
	ev := ExportEvent{Records: map[int64]*ExportRecord{1: {ID: 1}}}

	if err := m.EnrichExport(context.Background(), nil, &ev); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
}

func TestEnrichExportEmpty(t *testing.T) {
	finder := &fakeFinder{}
	m := newTestModule(t, WithRegistry(finder))

	if err := m.EnrichExport(context.Background(), nil, &ExportEvent{Records: map[int64]*ExportRecord{}}); err != nil {
		t.Fatalf("EnrichExport failed: %v", err)
	}
	if finder.calls != 0 {
		t.Errorf("registry queried %d times for an empty export", finder.calls)
	}
}

func TestEnrichExportWithoutRegistry(t *testing.T) {
	m := newTestModule(t)
	ev := ExportEvent{Records: map[int64]*ExportRecord{1: {ID: 1}}}
	if err := m.EnrichExport(context.Background(), nil, &ev); err == nil {
		t.Fatal("expected an error without registry")
	}
}

func TestEnrichExportSQLiteRegistry(t *testing.T) {
	store, err := registry.NewStore(filepath.Join(t.TempDir(), "seo.db"))
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	for _, e := range []registry.Entry{
		{TargetID: 1, Name: PropertyDocumentTitle, Value: "Home title"},
		{TargetID: 1, Name: "unrelated", Value: "x"},
		{TargetID: 2, Name: PropertyDescription, Value: "About us"},
		{TargetID: 9, Name: PropertyDescription, Value: "Not exported"},
	} {
		if err := store.Set(ctx, e.TargetID, e.Name, e.Value); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
	}

	m := newTestModule(t, WithRegistry(store))
	ev := ExportEvent{Records: map[int64]*ExportRecord{1: {ID: 1}, 2: {ID: 2}, 3: {ID: 3}}}
	if err := Dispatch(ctx, m.Table(), PageExport, nil, &ev); err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}

	if got := ev.Records[1].SEO; len(got) != 1 || got[PropertyDocumentTitle] != "Home title" {
		t.Errorf("record 1 seo = %v", got)
	}
	if got := ev.Records[2].SEO; len(got) != 1 || got[PropertyDescription] != "About us" {
		t.Errorf("record 2 seo = %v", got)
	}
	if ev.Records[3].SEO != nil {
		t.Errorf("record 3 seo = %v, want nil", ev.Records[3].SEO)
	}
}
