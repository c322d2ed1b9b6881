package dictcc

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"strings"
	"time"

	"github.com/gofrs/uuid"
	"github.com/jackc/pgx/v5/stdlib"
	sqlite3 "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
)

// DB is the subset of *sql.DB the index store needs.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	BeginTx(ctx context.Context, txOptions *sql.TxOptions) (*sql.Tx, error)
	Driver() driver.Driver
}

var _ DB = &sql.DB{}

// IndexStore persists the searchable projection of a dictionary into a
// relational store, so later lookups do not have to re-parse the text
// database. Supported backends: embedded sqlite and PostgreSQL.
type IndexStore struct {
	db DB
}

// IndexedEntry is one row of the persistent index.
type IndexedEntry struct {
	LeftIndexed  string
	RightIndexed string
	LeftWord     string
	RightWord    string
	WordClasses  string
}

func NewIndexStore(db DB) *IndexStore {
	return &IndexStore{db: db}
}

func (s *IndexStore) placeholderStyle() string {
	if _, ok := s.db.Driver().(*stdlib.Driver); ok {
		return "pg"
	}
	if _, ok := s.db.Driver().(*sqlite3.SQLiteDriver); ok {
		return "sqlite"
	}
	return "sqlite"
}

const indexSchema = `
create table if not exists dict_entry (
    left_indexed_word  text not null,
    right_indexed_word text not null,
    left_word          text not null,
    right_word         text not null,
    word_classes       text not null
);
create index if not exists dict_entry_left_idx on dict_entry (left_indexed_word);
create index if not exists dict_entry_right_idx on dict_entry (right_indexed_word);
create table if not exists dict_meta (
    build_id       text not null,
    left_language  text not null,
    right_language text not null,
    seeded_at      text not null
);
`

// Seed (re)builds the index from dict in a single transaction, recording a
// fresh build id and the language pair in the meta table.
func (s *IndexStore) Seed(ctx context.Context, dict *Dict) error {
	for _, stmt := range strings.Split(indexSchema, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `delete from dict_entry`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `delete from dict_meta`); err != nil {
		return err
	}

	insertEntry := `insert into dict_entry (left_indexed_word, right_indexed_word, left_word, right_word, word_classes) values (?, ?, ?, ?, ?)`
	insertMeta := `insert into dict_meta (build_id, left_language, right_language, seeded_at) values (?, ?, ?, ?)`
	if s.placeholderStyle() == "pg" {
		insertEntry = `insert into dict_entry (left_indexed_word, right_indexed_word, left_word, right_word, word_classes) values ($1, $2, $3, $4, $5)`
		insertMeta = `insert into dict_meta (build_id, left_language, right_language, seeded_at) values ($1, $2, $3, $4)`
	}

	stmt, err := tx.PrepareContext(ctx, insertEntry)
	if err != nil {
		return err
	}
	defer func() {
		_ = stmt.Close()
	}()

	for _, entry := range dict.Entries() {
		classes := make([]string, len(entry.WordClasses))
		for i, wc := range entry.WordClasses {
			classes[i] = wc.String()
		}
		_, err := stmt.ExecContext(ctx,
			entry.Left.IndexedWord,
			entry.Right.IndexedWord,
			entry.Left.Nodes.String(),
			entry.Right.Nodes.String(),
			strings.Join(classes, ", "),
		)
		if err != nil {
			return err
		}
	}

	buildID := uuid.Must(uuid.NewV4()).String()
	pair := dict.LanguagePair()
	_, err = tx.ExecContext(ctx, insertMeta,
		buildID, pair.Left.Code(), pair.Right.Code(), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return err
	}

	logrus.Infof("committing index build %s (%d entries)", buildID, len(dict.Entries()))
	return tx.Commit()
}

// Languages returns the language pair recorded by the last Seed.
func (s *IndexStore) Languages(ctx context.Context) (LanguagePair, error) {
	var left, right string
	err := s.db.QueryRowContext(ctx, `select left_language, right_language from dict_meta`).Scan(&left, &right)
	if err != nil {
		return LanguagePair{}, err
	}
	leftLang, err := ParseLanguage(left)
	if err != nil {
		return LanguagePair{}, err
	}
	rightLang, err := ParseLanguage(right)
	if err != nil {
		return LanguagePair{}, err
	}
	return LanguagePair{Left: leftLang, Right: rightLang}, nil
}

// Search answers a case-insensitive substring lookup against the indexed
// words, honoring the direction the same way the in-memory query engine
// does. Rows come back in seed order.
func (s *IndexStore) Search(ctx context.Context, term string, direction QueryDirection) ([]IndexedEntry, error) {
	needle := "%" + strings.ToLower(term) + "%"

	var qs string
	switch {
	case s.placeholderStyle() == "pg" && direction == ToRight:
		qs = `select left_indexed_word, right_indexed_word, left_word, right_word, word_classes from dict_entry where left_indexed_word like $1`
	case s.placeholderStyle() == "pg" && direction == ToLeft:
		qs = `select left_indexed_word, right_indexed_word, left_word, right_word, word_classes from dict_entry where right_indexed_word like $1`
	case s.placeholderStyle() == "pg":
		qs = `select left_indexed_word, right_indexed_word, left_word, right_word, word_classes from dict_entry where left_indexed_word like $1 or right_indexed_word like $1`
	case direction == ToRight:
		qs = `select left_indexed_word, right_indexed_word, left_word, right_word, word_classes from dict_entry where left_indexed_word like ?`
	case direction == ToLeft:
		qs = `select left_indexed_word, right_indexed_word, left_word, right_word, word_classes from dict_entry where right_indexed_word like ?`
	default:
		qs = `select left_indexed_word, right_indexed_word, left_word, right_word, word_classes from dict_entry where left_indexed_word like ?1 or right_indexed_word like ?1`
	}

	args := []interface{}{needle}

	rows, err := s.db.QueryContext(ctx, qs, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = rows.Close()
	}()

	var entries []IndexedEntry
	for rows.Next() {
		var e IndexedEntry
		if err := rows.Scan(&e.LeftIndexed, &e.RightIndexed, &e.LeftWord, &e.RightWord, &e.WordClasses); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
