package gallery

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/klauspost/compress/zstd"
)

// archiveVersion is bumped when the archive layout changes.
const archiveVersion = 1

// archive is the on-disk layout of an exported gallery: a
// Zstandard-compressed JSON document.
type archive struct {
	Version    int       `json:"version"`
	ExportedAt time.Time `json:"exported_at"`
	Prints     []*Record `json:"prints"`
}

// Export writes the whole gallery to w as a zstd-compressed JSON
// archive. Template bytes pass through verbatim (base64-encoded by the
// JSON layer, decoded back on import).
func (s *Store) Export(ctx context.Context, w io.Writer) error {
	recs, err := s.List(ctx)
	if err != nil {
		return err
	}

	zw, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("create zstd writer: %w", err)
	}

	doc := archive{
		Version:    archiveVersion,
		ExportedAt: time.Now().UTC(),
		Prints:     recs,
	}
	if err := json.NewEncoder(zw).Encode(&doc); err != nil {
		_ = zw.Close()
		return fmt.Errorf("encode archive: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("flush archive: %w", err)
	}

	s.logDebug("gallery exported", "prints", len(recs))
	return nil
}

// Import reads an archive produced by Export and saves every print in
// it, replacing records that share an ID. Returns the number of prints
// imported.
func (s *Store) Import(ctx context.Context, r io.Reader) (int, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return 0, fmt.Errorf("create zstd reader: %w", err)
	}
	defer zr.Close()

	var doc archive
	if err := json.NewDecoder(zr).Decode(&doc); err != nil {
		return 0, fmt.Errorf("decode archive: %w", err)
	}
	if doc.Version != archiveVersion {
		return 0, fmt.Errorf("unsupported archive version %d", doc.Version)
	}

	for i, rec := range doc.Prints {
		if err := s.Save(ctx, rec); err != nil {
			return i, fmt.Errorf("import print %d: %w", i, err)
		}
	}

	s.logDebug("gallery imported", "prints", len(doc.Prints))
	return len(doc.Prints), nil
}
