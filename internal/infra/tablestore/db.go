package tablestore

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Pool is a DBTX that can also open transactions.
type Pool interface {
	DBTX
	Begin(ctx context.Context) (pgx.Tx, error)
}

// TableMeta is a table that was confirmed to exist in the store.
type TableMeta struct {
	Schema string
	Name   string
}

// Identifier returns the quoted, schema-qualified table name.
func (t TableMeta) Identifier() string {
	if t.Schema == "" {
		return pgx.Identifier{t.Name}.Sanitize()
	}
	return pgx.Identifier{t.Schema, t.Name}.Sanitize()
}

type SuggestionRow struct {
	ID             pgtype.UUID
	ProductID      pgtype.Text
	CurrentPrice   pgtype.Numeric
	SuggestedPrice pgtype.Numeric
	Status         pgtype.Text
	CreatedAt      pgtype.Timestamptz
}

type UpdateSuggestedPriceParams struct {
	ID             pgtype.UUID
	SuggestedPrice pgtype.Numeric
}

type InsertSuggestionParams struct {
	ID             pgtype.UUID
	ProductID      pgtype.Text
	CurrentPrice   pgtype.Numeric
	SuggestedPrice pgtype.Numeric
	Status         pgtype.Text
	// CreatedAt defaults to NOW() when not valid.
	CreatedAt      pgtype.Timestamptz
}
