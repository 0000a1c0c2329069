// Package library persists named surface trees.
//
// Trees are stored as compact JSON documents alongside a SHA256 checksum of
// those bytes. Loading verifies the checksum and decodes the document back
// into a surface.SurfaceRule, so a stored tree re-renders byte-identically.
package library

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/solatis/surfacegen/internal/core/db"
	"github.com/solatis/surfacegen/internal/render"
	"github.com/solatis/surfacegen/internal/surface"
	"github.com/solatis/surfacegen/internal/types"
)

// Entry is the stored metadata and document for one tree.
type Entry struct {
	TreeID    types.TreeID
	Name      string
	RootType  surface.RuleType
	Checksum  string
	CreatedAt time.Time
	UpdatedAt time.Time
	Document  types.Document
}

// row mirrors the surface_trees columns. Timestamps are RFC3339 text on
// both drivers.
type row struct {
	TreeID    string `db:"tree_id"`
	Name      string `db:"name"`
	RootType  string `db:"root_type"`
	Document  string `db:"document"`
	Checksum  string `db:"checksum"`
	CreatedAt string `db:"created_at"`
	UpdatedAt string `db:"updated_at"`
}

func (r row) entry() (Entry, error) {
	rootType, ok := surface.RuleTypes.Parse(r.RootType)
	if !ok {
		return Entry{}, fmt.Errorf("tree %q: %w: %q", r.Name, surface.ErrUnknownRuleType, r.RootType)
	}
	created, err := time.Parse(time.RFC3339, r.CreatedAt)
	if err != nil {
		return Entry{}, fmt.Errorf("tree %q: created_at: %w", r.Name, err)
	}
	updated, err := time.Parse(time.RFC3339, r.UpdatedAt)
	if err != nil {
		return Entry{}, fmt.Errorf("tree %q: updated_at: %w", r.Name, err)
	}
	return Entry{
		TreeID:    types.TreeID(r.TreeID),
		Name:      r.Name,
		RootType:  rootType,
		Checksum:  r.Checksum,
		CreatedAt: created,
		UpdatedAt: updated,
		Document:  types.Document(r.Document),
	}, nil
}

// Store reads and writes trees through the named queries.
type Store struct {
	queries *db.Queries
	now     func() time.Time
}

// NewStore wraps loaded queries.
func NewStore(queries *db.Queries) *Store {
	return &Store{queries: queries, now: time.Now}
}

// Checksum returns the hex SHA256 of a document.
func Checksum(doc []byte) string {
	return fmt.Sprintf("%x", sha256.Sum256(doc))
}

func validName(name string) error {
	if name == "" || utf8.RuneCountInString(name) > types.MaxTreeNameLength {
		return fmt.Errorf("%w: %q", types.ErrInvalidTreeName, name)
	}
	return nil
}

// Save stores rule under name, replacing any tree already stored there.
// A replaced tree keeps its ID and creation time.
func (s *Store) Save(ctx context.Context, name string, rule surface.SurfaceRule) (Entry, error) {
	if err := validName(name); err != nil {
		return Entry{}, err
	}
	if rule == nil {
		return Entry{}, fmt.Errorf("tree %q: %w", name, surface.ErrMissingChild)
	}

	doc, err := render.JSON(rule)
	if err != nil {
		return Entry{}, fmt.Errorf("tree %q: %w", name, err)
	}
	if len(doc) > types.MaxDocumentSize {
		return Entry{}, fmt.Errorf("tree %q: %w (%d bytes)", name, types.ErrDocumentTooLarge, len(doc))
	}

	now := s.now().UTC().Format(time.RFC3339)
	id := types.NewTreeID()
	if _, err := s.queries.Exec(ctx, "upsert-tree",
		string(id), name, string(rule.RuleType()), string(doc), Checksum(doc), now, now,
	); err != nil {
		return Entry{}, fmt.Errorf("failed to save tree %q: %w", name, err)
	}

	// Upsert may have kept an older ID; read back the stored row.
	return s.entry(ctx, name)
}

func (s *Store) entry(ctx context.Context, name string) (Entry, error) {
	var r row
	if err := s.queries.Get(ctx, "get-tree", &r, name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Entry{}, fmt.Errorf("%w: %q", types.ErrTreeNotFound, name)
		}
		return Entry{}, fmt.Errorf("failed to get tree %q: %w", name, err)
	}
	return r.entry()
}

// Load returns the tree stored under name.
func (s *Store) Load(ctx context.Context, name string) (surface.SurfaceRule, Entry, error) {
	e, err := s.entry(ctx, name)
	if err != nil {
		return nil, Entry{}, err
	}
	if Checksum(e.Document) != e.Checksum {
		return nil, e, fmt.Errorf("tree %q: %w", name, types.ErrChecksumMismatch)
	}
	rule, err := surface.DecodeRule(e.Document)
	if err != nil {
		return nil, e, fmt.Errorf("tree %q: %w", name, err)
	}
	return rule, e, nil
}

// List returns every stored tree ordered by name.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	var rows []row
	if err := s.queries.Select(ctx, "list-trees", &rows); err != nil {
		return nil, fmt.Errorf("failed to list trees: %w", err)
	}
	entries := make([]Entry, 0, len(rows))
	for _, r := range rows {
		e, err := r.entry()
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Delete removes the tree stored under name.
func (s *Store) Delete(ctx context.Context, name string) error {
	res, err := s.queries.Exec(ctx, "delete-tree", name)
	if err != nil {
		return fmt.Errorf("failed to delete tree %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete tree %q: %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", types.ErrTreeNotFound, name)
	}
	return nil
}
