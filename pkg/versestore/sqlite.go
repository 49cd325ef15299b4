package versestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/coolbeans/bibleref/pkg/books"

	_ "modernc.org/sqlite"
)

const driverName = "sqlite"

const schema = `
CREATE TABLE IF NOT EXISTS verses (
	version    TEXT    NOT NULL,
	id         INTEGER NOT NULL,
	book_major INTEGER NOT NULL,
	book_minor INTEGER NOT NULL DEFAULT 0,
	chapter    INTEGER NOT NULL,
	verse      INTEGER NOT NULL,
	see        TEXT    NOT NULL DEFAULT '',
	text       TEXT    NOT NULL DEFAULT '',
	PRIMARY KEY (version, id)
);
CREATE INDEX IF NOT EXISTS verses_position
	ON verses (version, book_major, book_minor, chapter, verse);
`

const verseColumns = `id, version, book_major, book_minor, chapter, verse, see, text`

// SQLiteStore keeps verses in a SQLite database through the pure Go
// modernc.org/sqlite driver.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database at path. ":memory:" opens a
// private in-memory database.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("opening verse database %s: %w", path, err)
	}
	if path == ":memory:" || strings.Contains(path, "mode=memory") {
		// Every connection to :memory: is a separate database.
		db.SetMaxOpenConns(1)
	}
	return &SQLiteStore{db: db}, nil
}

// NewSQLiteStore wraps an open database.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Init creates the verses table if it does not exist.
func (s *SQLiteStore) Init(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating verse schema: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Insert adds verses in one transaction, replacing verses with the same
// version and ID and verses already stored at the same position.
func (s *SQLiteStore) Insert(ctx context.Context, verses ...*Verse) error {
	prepared := make([]*Verse, 0, len(verses))
	for _, v := range verses {
		c, err := v.canonical()
		if err != nil {
			return err
		}
		prepared = append(prepared, c)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting insert: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT OR REPLACE INTO verses (`+verseColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	evict, err := tx.PrepareContext(ctx, `DELETE FROM verses
		WHERE version = ? AND book_major = ? AND book_minor = ? AND chapter = ? AND verse = ? AND id <> ?`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer evict.Close()

	for _, v := range prepared {
		if _, err := evict.ExecContext(ctx, v.Version, v.Book.Major, v.Book.Minor, v.Chapter, v.Number, v.ID); err != nil {
			return fmt.Errorf("replacing verse %s: %w", v, err)
		}
		if _, err := stmt.ExecContext(ctx, v.ID, v.Version, v.Book.Major, v.Book.Minor, v.Chapter, v.Number, string(v.Redirect), v.Text); err != nil {
			return fmt.Errorf("inserting verse %s: %w", v, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing insert: %w", err)
	}
	return nil
}

// Lookup implements Store.
func (s *SQLiteStore) Lookup(ctx context.Context, version string, book books.BookID, chapter, verse int) (*Verse, error) {
	var row *sql.Row
	if verse == LastVerse {
		row = s.db.QueryRowContext(ctx,
			`SELECT `+verseColumns+` FROM verses
			WHERE version = ? AND book_major = ? AND book_minor = ? AND chapter = ?
			ORDER BY verse DESC LIMIT 1`,
			version, book.Major, book.Minor, chapter)
	} else {
		row = s.db.QueryRowContext(ctx,
			`SELECT `+verseColumns+` FROM verses
			WHERE version = ? AND book_major = ? AND book_minor = ? AND chapter = ? AND verse = ?`,
			version, book.Major, book.Minor, chapter, verse)
	}

	v, err := scanVerse(row)
	if err != nil {
		return nil, fmt.Errorf("%s %s %d:%d: %w", version, book, chapter, verse, err)
	}
	return v, nil
}

// ByID implements Store.
func (s *SQLiteStore) ByID(ctx context.Context, version string, id int64) (*Verse, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+verseColumns+` FROM verses WHERE version = ? AND id = ?`,
		version, id)

	v, err := scanVerse(row)
	if err != nil {
		return nil, fmt.Errorf("%s #%d: %w", version, id, err)
	}
	return v, nil
}

// Range implements Store.
func (s *SQLiteStore) Range(ctx context.Context, version string, from, to int64) ([]*Verse, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+verseColumns+` FROM verses
		WHERE version = ? AND id BETWEEN ? AND ?
		ORDER BY id`,
		version, from, to)
	if err != nil {
		return nil, fmt.Errorf("querying %s #%d-#%d: %w", version, from, to, err)
	}
	defer rows.Close()

	var out []*Verse
	for rows.Next() {
		v, err := scanVerse(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading %s #%d-#%d: %w", version, from, to, err)
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanVerse(row scanner) (*Verse, error) {
	var (
		v   Verse
		see string
	)
	err := row.Scan(&v.ID, &v.Version, &v.Book.Major, &v.Book.Minor, &v.Chapter, &v.Number, &see, &v.Text)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning verse: %w", err)
	}
	if v.Redirect, err = ParseRedirect(see); err != nil {
		return nil, fmt.Errorf("verse %d: %w", v.ID, err)
	}
	return &v, nil
}
