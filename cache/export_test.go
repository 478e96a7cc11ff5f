package cache

import (
	"bytes"
	"strings"
	"testing"
)

func TestExportImport_RoundTrip(t *testing.T) {
	src := NewInMemoryCache(0)
	src.Set("hash1:default:ah:11", "Muhammad")
	src.Set("hash2:default:ah:11", "Abdullah")

	var buf bytes.Buffer
	exporter := NewExporter(src)
	if err := exporter.Export(&buf, map[string]string{"mapping": "default"}); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	dst := NewInMemoryCache(0)
	importer := NewImporter(dst)
	result, err := importer.Import(&buf)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	if result.Imported != 2 || result.Failed != 0 {
		t.Errorf("Imported = %d, Failed = %d", result.Imported, result.Failed)
	}
	if result.Version != "1.0" {
		t.Errorf("Version = %q", result.Version)
	}
	if result.Metadata["mapping"] != "default" {
		t.Errorf("Metadata = %v", result.Metadata)
	}

	if val, ok := dst.Get("hash1:default:ah:11"); !ok || val != "Muhammad" {
		t.Errorf("round-tripped value = %q, %v", val, ok)
	}
}

func TestExport_UnsupportedCache(t *testing.T) {
	exporter := NewExporter(&unsupportedCache{})

	var buf bytes.Buffer
	if err := exporter.Export(&buf, nil); err == nil {
		t.Error("expected error for cache type without export support")
	}
}

func TestImport_InvalidJSON(t *testing.T) {
	importer := NewImporter(NewInMemoryCache(0))

	if _, err := importer.Import(strings.NewReader("not json")); err == nil {
		t.Error("expected error for malformed input")
	}
}

// unsupportedCache implements Cache without export support.
type unsupportedCache struct{}

func (c *unsupportedCache) Get(key string) (string, bool) { return "", false }
func (c *unsupportedCache) Set(key, value string) error   { return nil }
