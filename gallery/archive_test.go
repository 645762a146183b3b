package gallery

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
)

func TestExportImportRoundTrip(t *testing.T) {
	src := openTestStore(t)
	ctx := context.Background()

	templates := [][]byte{
		{0x03, 0x00, 0xAA},
		{0xDE, 0xAD, 0xBE, 0xEF, 0x00},
	}
	ids := make([]string, len(templates))
	for i, tmpl := range templates {
		rec := &Record{Username: "alice", Finger: i + 1, Template: tmpl}
		if err := src.Save(ctx, rec); err != nil {
			t.Fatalf("Save %d failed: %v", i, err)
		}
		ids[i] = rec.ID
	}

	var buf bytes.Buffer
	if err := src.Export(ctx, &buf); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	dst, err := Open(filepath.Join(t.TempDir(), "imported.db"))
	if err != nil {
		t.Fatalf("Open destination failed: %v", err)
	}
	defer func() { _ = dst.Close() }()

	n, err := dst.Import(ctx, &buf)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if n != len(templates) {
		t.Errorf("imported %d prints, want %d", n, len(templates))
	}

	for i, id := range ids {
		got, err := dst.Get(ctx, id)
		if err != nil {
			t.Fatalf("Get %s after import failed: %v", id, err)
		}
		if !bytes.Equal(got.Template, templates[i]) {
			t.Errorf("template %d altered by archive round trip: got %x, want %x",
				i, got.Template, templates[i])
		}
	}
}

func TestExportEmptyGallery(t *testing.T) {
	s := openTestStore(t)

	var buf bytes.Buffer
	if err := s.Export(context.Background(), &buf); err != nil {
		t.Fatalf("Export of empty gallery failed: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("export should still produce an archive document")
	}

	n, err := s.Import(context.Background(), &buf)
	if err != nil {
		t.Fatalf("Import of empty archive failed: %v", err)
	}
	if n != 0 {
		t.Errorf("imported %d prints from empty archive", n)
	}
}

func TestImportRejectsGarbage(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Import(context.Background(), strings.NewReader("not a zstd stream"))
	if err == nil {
		t.Fatal("expected error for garbage input")
	}
}

func TestImportRejectsUnknownVersion(t *testing.T) {
	s := openTestStore(t)

	var buf bytes.Buffer
	zw, err := zstd.NewWriter(&buf)
	if err != nil {
		t.Fatalf("zstd writer: %v", err)
	}
	doc := archive{Version: 99}
	if err := json.NewEncoder(zw).Encode(&doc); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	_, err = s.Import(context.Background(), &buf)
	if err == nil || !strings.Contains(err.Error(), "version") {
		t.Errorf("expected version error, got %v", err)
	}
}
