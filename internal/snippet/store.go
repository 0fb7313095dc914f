// Package snippet implements snippet persistence with immutable version history.
//
// Every save appends a new version; versions are never rewritten, so any
// two of them can be diffed after the fact.
package snippet

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/RahilKothari9/difflab/pkg/differ"
	"github.com/RahilKothari9/difflab/pkg/storage"
)

// Schema creates the snippet tables.
const Schema = `
CREATE TABLE IF NOT EXISTS snippets (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER NOT NULL,
	title TEXT NOT NULL,
	language TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE IF NOT EXISTS snippet_versions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	snippet_id INTEGER NOT NULL,
	num INTEGER NOT NULL,
	body TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	UNIQUE(snippet_id, num)
);
CREATE INDEX IF NOT EXISTS idx_versions_snippet ON snippet_versions(snippet_id);
`

// Store provides persistence for snippets using the common storage layer.
type Store struct {
	db *storage.DB
}

// NewStore creates a new snippet store.
func NewStore(db *storage.DB) *Store {
	return &Store{db: db}
}

// Snippet represents a stored snippet owned by a user.
type Snippet struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Title     string    `json:"title"`
	Language  string    `json:"language"`
	CreatedAt time.Time `json:"created_at"`
}

// Version is one immutable revision of a snippet body. Num is 1-based and
// contiguous per snippet.
type Version struct {
	ID        int       `json:"id"`
	SnippetID int       `json:"snippet_id"`
	Num       int       `json:"num"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// Create inserts a new snippet and stores body as version 1.
func (s *Store) Create(ctx context.Context, userID int, title, language, body string) (int, error) {
	var snippetID int64
	err := s.db.Transaction(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO snippets (user_id, title, language) VALUES (?, ?, ?)`,
			userID, title, language)
		if err != nil {
			return fmt.Errorf("insert snippet: %w", err)
		}
		snippetID, _ = res.LastInsertId()
		_, err = tx.ExecContext(ctx,
			`INSERT INTO snippet_versions (snippet_id, num, body) VALUES (?, 1, ?)`,
			snippetID, body)
		if err != nil {
			return fmt.Errorf("insert version: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return int(snippetID), nil
}

// Get returns a snippet by ID, or nil when it does not exist.
func (s *Store) Get(ctx context.Context, id int) (*Snippet, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, user_id, title, language, created_at FROM snippets WHERE id = ?`, id)
	sn := &Snippet{}
	if err := row.Scan(&sn.ID, &sn.UserID, &sn.Title, &sn.Language, &sn.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return sn, nil
}

// ListByUser returns all snippets for a user, newest first.
func (s *Store) ListByUser(ctx context.Context, userID int) ([]Snippet, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, title, language, created_at FROM snippets
		 WHERE user_id = ? ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var result []Snippet
	for rows.Next() {
		var sn Snippet
		if err := rows.Scan(&sn.ID, &sn.UserID, &sn.Title, &sn.Language, &sn.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, sn)
	}
	return result, rows.Err()
}

// SaveVersion appends a new version of the snippet body and returns its
// version number.
func (s *Store) SaveVersion(ctx context.Context, snippetID int, body string) (int, error) {
	var num int
	err := s.db.Transaction(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx,
			`SELECT COALESCE(MAX(num), 0) FROM snippet_versions WHERE snippet_id = ?`, snippetID)
		var maxNum int
		if err := row.Scan(&maxNum); err != nil {
			return fmt.Errorf("next version: %w", err)
		}
		num = maxNum + 1
		_, err := tx.ExecContext(ctx,
			`INSERT INTO snippet_versions (snippet_id, num, body) VALUES (?, ?, ?)`,
			snippetID, num, body)
		if err != nil {
			return fmt.Errorf("insert version: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return num, nil
}

// GetVersion returns one version of a snippet, or nil when absent.
func (s *Store) GetVersion(ctx context.Context, snippetID, num int) (*Version, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, snippet_id, num, body, created_at FROM snippet_versions
		 WHERE snippet_id = ? AND num = ?`, snippetID, num)
	v := &Version{}
	if err := row.Scan(&v.ID, &v.SnippetID, &v.Num, &v.Body, &v.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return v, nil
}

// LatestVersion returns the snippet's newest version, or nil when the
// snippet has none.
func (s *Store) LatestVersion(ctx context.Context, snippetID int) (*Version, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, snippet_id, num, body, created_at FROM snippet_versions
		 WHERE snippet_id = ? ORDER BY num DESC LIMIT 1`, snippetID)
	v := &Version{}
	if err := row.Scan(&v.ID, &v.SnippetID, &v.Num, &v.Body, &v.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return v, nil
}

// DiffVersions diffs two versions of a snippet, oldest side first.
func (s *Store) DiffVersions(ctx context.Context, snippetID, from, to int) (differ.Result, error) {
	fromVer, err := s.GetVersion(ctx, snippetID, from)
	if err != nil {
		return differ.Result{}, fmt.Errorf("load version %d: %w", from, err)
	}
	if fromVer == nil {
		return differ.Result{}, fmt.Errorf("snippet %d has no version %d", snippetID, from)
	}
	toVer, err := s.GetVersion(ctx, snippetID, to)
	if err != nil {
		return differ.Result{}, fmt.Errorf("load version %d: %w", to, err)
	}
	if toVer == nil {
		return differ.Result{}, fmt.Errorf("snippet %d has no version %d", snippetID, to)
	}
	return differ.Compute(fromVer.Body, toVer.Body), nil
}

// Counts holds aggregate numbers for the dashboard endpoint.
type Counts struct {
	Snippets int `json:"snippets"`
	Versions int `json:"versions"`
}

// CountsByUser returns dashboard aggregates for one user.
func (s *Store) CountsByUser(ctx context.Context, userID int) (Counts, error) {
	var c Counts
	row := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM snippets WHERE user_id = ?`, userID)
	if err := row.Scan(&c.Snippets); err != nil {
		return c, err
	}
	row = s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM snippet_versions v
		 JOIN snippets sn ON sn.id = v.snippet_id WHERE sn.user_id = ?`, userID)
	if err := row.Scan(&c.Versions); err != nil {
		return c, err
	}
	return c, nil
}
