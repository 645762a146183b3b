package gallery

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Sentinel errors returned by store operations.
var (
	// ErrNotFound is returned when no record matches the given ID.
	ErrNotFound = errors.New("gallery: print not found")

	// ErrEmptyTemplate is returned when saving a record without
	// template bytes.
	ErrEmptyTemplate = errors.New("gallery: record has no template data")
)

// Logger is an optional logging interface for store operations,
// allowing integration with any logging framework.
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// Config holds the store configuration.
type Config struct {
	// Logger is used for store diagnostics (optional).
	Logger Logger

	// BusyTimeout is how long SQLite waits on a locked database.
	BusyTimeout time.Duration
}

func defaultConfig() Config {
	return Config{
		BusyTimeout: 5 * time.Second,
	}
}

// Option is a functional option for configuring the Store.
type Option func(*Config)

// WithLogger sets a logger for store operations.
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithBusyTimeout sets how long SQLite waits on a locked database.
// Default is 5 seconds.
func WithBusyTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		if timeout > 0 {
			c.BusyTimeout = timeout
		}
	}
}

// Store is a SQLite-backed print gallery.
type Store struct {
	db     *bun.DB
	config Config
}

// Open opens (creating if needed) the gallery database at path.
//
// Example:
//
//	store, err := gallery.Open("gallery.db",
//	    gallery.WithBusyTimeout(10*time.Second),
//	)
func Open(path string, opts ...Option) (*Store, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)&_pragma=journal_mode(WAL)",
		path, cfg.BusyTimeout.Milliseconds())
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open gallery database: %w", err)
	}

	db := bun.NewDB(sqlDB, sqlitedialect.New())
	s := &Store{db: db, config: cfg}

	if err := s.migrate(context.Background()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create gallery schema: %w", err)
	}

	s.logDebug("gallery opened", "path", path)
	return s, nil
}

func (s *Store) migrate(ctx context.Context) error {
	_, err := s.db.NewCreateTable().
		Model((*Record)(nil)).
		IfNotExists().
		Exec(ctx)
	return err
}

// Save inserts the record, or replaces it when a record with the same
// ID already exists. A missing ID is assigned a fresh UUID.
func (s *Store) Save(ctx context.Context, rec *Record) error {
	if len(rec.Template) == 0 {
		return ErrEmptyTemplate
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.EnrolledAt.IsZero() {
		rec.EnrolledAt = time.Now().UTC()
	}

	_, err := s.db.NewInsert().
		Model(rec).
		On("CONFLICT (id) DO UPDATE").
		Set("username = EXCLUDED.username").
		Set("finger = EXCLUDED.finger").
		Set("driver = EXCLUDED.driver").
		Set("device_id = EXCLUDED.device_id").
		Set("enrolled_at = EXCLUDED.enrolled_at").
		Set("template = EXCLUDED.template").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("save print: %w", err)
	}

	s.logDebug("print saved", "id", rec.ID, "username", rec.Username)
	return nil
}

// Get returns the record with the given ID, or ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (*Record, error) {
	rec := new(Record)
	err := s.db.NewSelect().
		Model(rec).
		Where("id = ?", id).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load print: %w", err)
	}
	return rec, nil
}

// ByUsername returns all records enrolled for the given username,
// oldest first. The slice may be empty.
func (s *Store) ByUsername(ctx context.Context, username string) ([]*Record, error) {
	var recs []*Record
	err := s.db.NewSelect().
		Model(&recs).
		Where("username = ?", username).
		Order("enrolled_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("load prints for %q: %w", username, err)
	}
	return recs, nil
}

// List returns all stored records, oldest first.
func (s *Store) List(ctx context.Context) ([]*Record, error) {
	var recs []*Record
	err := s.db.NewSelect().
		Model(&recs).
		Order("enrolled_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("list prints: %w", err)
	}
	return recs, nil
}

// Delete removes the record with the given ID, or returns ErrNotFound.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.NewDelete().
		Model((*Record)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete print: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete print: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}

	s.logDebug("print deleted", "id", id)
	return nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) logDebug(msg string, keysAndValues ...interface{}) {
	if s.config.Logger != nil {
		s.config.Logger.Debug(msg, keysAndValues...)
	}
}
