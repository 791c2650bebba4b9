package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

// tokenRecord is the persisted row. A single row with a fixed id holds the
// current token set.
type tokenRecord struct {
	bun.BaseModel `bun:"table:allauth_tokens,alias:tok"`

	ID           int       `bun:"id,pk"`
	SessionToken string    `bun:"session_token"`
	AccessToken  string    `bun:"access_token"`
	UpdatedAt    time.Time `bun:"updated_at"`
}

const currentTokenID = 1

// BunStore persists tokens through a bun database handle. Any dialect bun
// supports works; OpenSQLite covers the common local case.
type BunStore struct {
	db *bun.DB
}

// NewBunStore wraps an existing bun handle.
func NewBunStore(db *bun.DB) *BunStore {
	return &BunStore{db: db}
}

// OpenSQLite opens a SQLite-backed store at the given DSN, e.g.
// "file:tokens.db" or "file::memory:?cache=shared".
func OpenSQLite(dsn string) (*BunStore, error) {
	sqldb, err := sql.Open(sqliteshim.ShimName, dsn)
	if err != nil {
		return nil, err
	}
	return NewBunStore(bun.NewDB(sqldb, sqlitedialect.New())), nil
}

// Init creates the backing table if it does not exist yet.
func (s *BunStore) Init(ctx context.Context) error {
	_, err := s.db.NewCreateTable().
		Model((*tokenRecord)(nil)).
		IfNotExists().
		Exec(ctx)
	return err
}

func (s *BunStore) Load(ctx context.Context) (*Token, error) {
	rec := &tokenRecord{}
	err := s.db.NewSelect().
		Model(rec).
		Where("id = ?", currentTokenID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &Token{SessionToken: rec.SessionToken, AccessToken: rec.AccessToken}, nil
}

func (s *BunStore) Save(ctx context.Context, token *Token) error {
	if token == nil {
		return s.Clear(ctx)
	}
	rec := &tokenRecord{
		ID:           currentTokenID,
		SessionToken: token.SessionToken,
		AccessToken:  token.AccessToken,
		UpdatedAt:    time.Now(),
	}
	_, err := s.db.NewInsert().
		Model(rec).
		On("CONFLICT (id) DO UPDATE").
		Set("session_token = EXCLUDED.session_token").
		Set("access_token = EXCLUDED.access_token").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	return err
}

func (s *BunStore) Clear(ctx context.Context) error {
	_, err := s.db.NewDelete().
		Model((*tokenRecord)(nil)).
		Where("id = ?", currentTokenID).
		Exec(ctx)
	return err
}
