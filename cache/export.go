package cache

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

// exportVersion is the envelope schema version written by Export and
// echoed back by Import.
const exportVersion = "1.0"

// ExportFormat is the JSON envelope for a cache snapshot. Snapshots let
// a reviewed set of renderings seed a fresh cache, e.g. when standing up
// a new instance, so known names never go back through letter-by-letter
// fallback.
type ExportFormat struct {
	Version    string            `json:"version"`
	ExportedAt string            `json:"exported_at"`
	Entries    []ExportEntry     `json:"entries"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// ExportEntry is one key/rendering pair. The key carries the engine
// fingerprint, so snapshots taken under one configuration import
// harmlessly into caches serving another.
type ExportEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// enumerable is implemented by caches whose live entries can be listed.
type enumerable interface {
	Entries() map[string]string
}

// Exporter writes cache snapshots. Only caches that can enumerate their
// entries are exportable; RedisCache is not, since keyspace scans belong
// to operational tooling rather than this library.
type Exporter struct {
	cache Cache
}

// NewExporter creates an exporter over cache.
func NewExporter(cache Cache) *Exporter {
	return &Exporter{cache: cache}
}

// Export writes the cache's live entries to w as an indented JSON
// envelope, stamped with the schema version and export time.
func (e *Exporter) Export(w io.Writer, metadata map[string]string) error {
	src, ok := e.cache.(enumerable)
	if !ok {
		return fmt.Errorf("cache type %T does not support export", e.cache)
	}

	snapshot := ExportFormat{
		Version:    exportVersion,
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Metadata:   metadata,
	}
	for key, value := range src.Entries() {
		snapshot.Entries = append(snapshot.Entries, ExportEntry{Key: key, Value: value})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snapshot); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// ExportToFile exports the cache to a file.
// The path is provided by the caller and is intentionally user-controlled.
func (e *Exporter) ExportToFile(path string, metadata map[string]string) error {
	f, err := os.Create(path) // #nosec G304 - path is intentionally user-provided
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	return e.Export(f, metadata)
}

// Importer loads cache snapshots. Any Cache can be an import target,
// including RedisCache.
type Importer struct {
	cache Cache
}

// NewImporter creates an importer over cache.
func NewImporter(cache Cache) *Importer {
	return &Importer{cache: cache}
}

// ImportResult summarizes an import: the snapshot's version and metadata
// plus how many entries were stored or rejected by the target cache.
type ImportResult struct {
	Version  string
	Metadata map[string]string
	Imported int
	Failed   int
}

// Import reads a snapshot from r and stores its entries. Entries the
// target rejects are counted, not fatal, so one bad store does not
// abandon the rest of the snapshot.
func (i *Importer) Import(r io.Reader) (*ImportResult, error) {
	var snapshot ExportFormat
	if err := json.NewDecoder(r).Decode(&snapshot); err != nil {
		return nil, fmt.Errorf("decoding JSON: %w", err)
	}

	result := &ImportResult{
		Version:  snapshot.Version,
		Metadata: snapshot.Metadata,
	}
	for _, entry := range snapshot.Entries {
		if err := i.cache.Set(entry.Key, entry.Value); err != nil {
			result.Failed++
			continue
		}
		result.Imported++
	}
	return result, nil
}

// ImportFromFile imports a snapshot from a file.
// The path is provided by the caller and is intentionally user-controlled.
func (i *Importer) ImportFromFile(path string) (*ImportResult, error) {
	f, err := os.Open(path) // #nosec G304 - path is intentionally user-provided
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return i.Import(f)
}
