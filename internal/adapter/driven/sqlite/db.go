// Package sqlite implements the ConfigStore port backed by SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"

	_ "modernc.org/sqlite"
)

// MemoryPath selects a private in-memory database instead of a file.
const MemoryPath = ":memory:"

// readerConns bounds the read pool. Writes are serialised on one connection
// so SQLite never reports "database is locked" to a caller.
const readerConns = 4

// filePragmas apply to on-disk databases. In-memory databases skip WAL,
// which they do not support.
var filePragmas = []string{
	"journal_mode(WAL)",
	"busy_timeout(5000)",
	"synchronous(NORMAL)",
	"cache_size(-16000)",
}

// DB holds the write connection and the read pool for one SQLite database.
type DB struct {
	Writer *sql.DB
	Reader *sql.DB
	path   string
}

// NewDB opens the database file at path, creating it if needed. MemoryPath
// opens a shared in-memory database that lives until Close.
func NewDB(ctx context.Context, path string) (*DB, error) {
	if path == MemoryPath {
		return NewMemoryDB(ctx, "masterdata")
	}
	return open(ctx, path, dsn("file:"+path, nil, filePragmas))
}

// NewMemoryDB opens a named in-memory database. The writer and the readers see
// the same data through SQLite's shared cache; distinct names are isolated.
func NewMemoryDB(ctx context.Context, name string) (*DB, error) {
	params := url.Values{"mode": {"memory"}, "cache": {"shared"}}
	return open(ctx, MemoryPath, dsn("file:"+url.PathEscape(name), params, filePragmas[1:]))
}

func dsn(base string, params url.Values, pragmas []string) string {
	var b strings.Builder
	b.WriteString(base)
	sep := "?"
	if enc := params.Encode(); enc != "" {
		b.WriteString(sep + enc)
		sep = "&"
	}
	for _, p := range pragmas {
		b.WriteString(sep + "_pragma=" + p)
		sep = "&"
	}
	return b.String()
}

func open(ctx context.Context, path, dsn string) (*DB, error) {
	writer, err := openPool(ctx, dsn, 1)
	if err != nil {
		return nil, fmt.Errorf("open writer %s: %w", path, err)
	}

	reader, err := openPool(ctx, dsn, readerConns)
	if err != nil {
		_ = writer.Close()
		return nil, fmt.Errorf("open reader %s: %w", path, err)
	}

	return &DB{Writer: writer, Reader: reader, path: path}, nil
}

func openPool(ctx context.Context, dsn string, conns int) (*sql.DB, error) {
	pool, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	pool.SetMaxOpenConns(conns)
	if err := pool.PingContext(ctx); err != nil {
		_ = pool.Close()
		return nil, err
	}
	return pool, nil
}

// Path returns the file path the DB was opened with, or MemoryPath.
func (db *DB) Path() string { return db.path }

// Close releases the read pool first, then the writer.
func (db *DB) Close() error {
	var errs []error
	if err := db.Reader.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close reader: %w", err))
	}
	if err := db.Writer.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close writer: %w", err))
	}
	return errors.Join(errs...)
}
