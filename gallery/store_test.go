package gallery

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "gallery.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSaveAndGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	template := []byte{0x03, 0x00, 0xFF, 0x10, 0x00, 0x7F, 0x80}
	rec := &Record{
		Username: "bruce.banner",
		Finger:   7,
		Driver:   "synaptics",
		DeviceID: "0090",
		Template: template,
	}

	if err := s.Save(ctx, rec); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if rec.ID == "" {
		t.Fatal("Save should assign an ID")
	}
	if rec.EnrolledAt.IsZero() {
		t.Fatal("Save should stamp EnrolledAt")
	}

	got, err := s.Get(ctx, rec.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Username != "bruce.banner" {
		t.Errorf("username = %q", got.Username)
	}
	if got.Finger != 7 {
		t.Errorf("finger = %d", got.Finger)
	}
	if got.Driver != "synaptics" || got.DeviceID != "0090" {
		t.Errorf("device identity = %q/%q", got.Driver, got.DeviceID)
	}
	// The template must survive byte-for-byte.
	if !bytes.Equal(got.Template, template) {
		t.Errorf("template altered in round trip: got %x, want %x", got.Template, template)
	}
}

func TestSaveRejectsEmptyTemplate(t *testing.T) {
	s := openTestStore(t)

	err := s.Save(context.Background(), &Record{Username: "nobody"})
	if !errors.Is(err, ErrEmptyTemplate) {
		t.Errorf("expected ErrEmptyTemplate, got %v", err)
	}
}

func TestSaveReplacesExistingID(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	rec := &Record{Username: "old", Template: []byte{1, 2, 3}}
	if err := s.Save(ctx, rec); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	rec.Username = "new"
	rec.Template = []byte{4, 5, 6}
	if err := s.Save(ctx, rec); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	got, err := s.Get(ctx, rec.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Username != "new" || !bytes.Equal(got.Template, []byte{4, 5, 6}) {
		t.Errorf("record not replaced: %q %x", got.Username, got.Template)
	}

	all, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("expected 1 record after upsert, got %d", len(all))
	}
}

func TestGetMissing(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Get(context.Background(), "no-such-id")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestByUsername(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i, user := range []string{"alice", "bob", "alice"} {
		rec := &Record{
			Username:   user,
			Finger:     i,
			Template:   []byte{byte(i + 1)},
			EnrolledAt: base.Add(time.Duration(i) * time.Hour),
		}
		if err := s.Save(ctx, rec); err != nil {
			t.Fatalf("Save %d failed: %v", i, err)
		}
	}

	recs, err := s.ByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("ByUsername failed: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 prints for alice, got %d", len(recs))
	}
	if recs[0].Finger != 0 || recs[1].Finger != 2 {
		t.Errorf("prints not ordered oldest first: %d, %d", recs[0].Finger, recs[1].Finger)
	}

	none, err := s.ByUsername(ctx, "nobody")
	if err != nil {
		t.Fatalf("ByUsername for unknown user failed: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("expected no prints for unknown user, got %d", len(none))
	}
}

func TestDelete(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	rec := &Record{Username: "alice", Template: []byte{1}}
	if err := s.Save(ctx, rec); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if err := s.Delete(ctx, rec.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := s.Get(ctx, rec.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("record still present after delete: %v", err)
	}

	if err := s.Delete(ctx, rec.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("deleting a missing record should return ErrNotFound, got %v", err)
	}
}

type recordingLogger struct {
	messages []string
}

func (l *recordingLogger) Debug(msg string, kv ...interface{}) { l.messages = append(l.messages, msg) }
func (l *recordingLogger) Info(msg string, kv ...interface{})  { l.messages = append(l.messages, msg) }
func (l *recordingLogger) Error(msg string, kv ...interface{}) { l.messages = append(l.messages, msg) }

func TestWithLogger(t *testing.T) {
	logger := &recordingLogger{}
	s, err := Open(filepath.Join(t.TempDir(), "gallery.db"), WithLogger(logger))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer func() { _ = s.Close() }()

	if err := s.Save(context.Background(), &Record{Username: "alice", Template: []byte{1}}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if len(logger.messages) == 0 {
		t.Error("expected debug log output")
	}
}

func TestWithBusyTimeout(t *testing.T) {
	cfg := defaultConfig()
	WithBusyTimeout(10 * time.Second)(&cfg)
	if cfg.BusyTimeout != 10*time.Second {
		t.Errorf("busy timeout = %v", cfg.BusyTimeout)
	}

	// Non-positive values keep the default.
	WithBusyTimeout(0)(&cfg)
	if cfg.BusyTimeout != 10*time.Second {
		t.Errorf("zero timeout should be ignored, got %v", cfg.BusyTimeout)
	}
}
