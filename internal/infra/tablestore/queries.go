package tablestore

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// Queries holds the pricing table statements. Table names are only ever taken
// from a TableMeta returned by ResolveTable and are quoted by pgx; every value
// is passed as a bind parameter.
type Queries struct{}

func New() *Queries {
	return &Queries{}
}

const resolveTable = `
SELECT table_schema, table_name
FROM information_schema.tables
WHERE table_name = $1
  AND table_schema::name = ANY (current_schemas(false))
ORDER BY array_position(current_schemas(false), table_schema::name)
LIMIT 1`

// ResolveTable returns pgx.ErrNoRows when no visible table has that name.
func (q *Queries) ResolveTable(ctx context.Context, db DBTX, name string) (TableMeta, error) {
	var meta TableMeta
	err := db.QueryRow(ctx, resolveTable, name).Scan(&meta.Schema, &meta.Name)
	return meta, err
}

const suggestionColumns = `id, product_id, current_price, suggested_price, status, created_at`

func (q *Queries) ListSuggestions(ctx context.Context, db DBTX, table TableMeta) ([]SuggestionRow, error) {
	sql := `SELECT ` + suggestionColumns + ` FROM ` + table.Identifier() + ` ORDER BY created_at, id`
	rows, err := db.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanSuggestion)
}

func (q *Queries) ListSuggestionsByStatusForUpdate(ctx context.Context, db DBTX, table TableMeta, status string) ([]SuggestionRow, error) {
	sql := `SELECT ` + suggestionColumns + ` FROM ` + table.Identifier() +
		` WHERE status = $1 ORDER BY created_at, id FOR UPDATE`
	rows, err := db.Query(ctx, sql, status)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanSuggestion)
}

func (q *Queries) DeleteSuggestion(ctx context.Context, db DBTX, table TableMeta, id pgtype.UUID) (int64, error) {
	tag, err := db.Exec(ctx, `DELETE FROM `+table.Identifier()+` WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (q *Queries) UpdateSuggestedPrice(ctx context.Context, db DBTX, table TableMeta, arg UpdateSuggestedPriceParams) (int64, error) {
	tag, err := db.Exec(ctx, `UPDATE `+table.Identifier()+` SET suggested_price = $2 WHERE id = $1`, arg.ID, arg.SuggestedPrice)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (q *Queries) InsertSuggestion(ctx context.Context, db DBTX, table TableMeta, arg InsertSuggestionParams) error {
	_, err := db.Exec(ctx,
		`INSERT INTO `+table.Identifier()+` (id, product_id, current_price, suggested_price, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, COALESCE($6, NOW()))`,
		arg.ID, arg.ProductID, arg.CurrentPrice, arg.SuggestedPrice, arg.Status, arg.CreatedAt,
	)
	return err
}

func scanSuggestion(row pgx.CollectableRow) (SuggestionRow, error) {
	var r SuggestionRow
	err := row.Scan(&r.ID, &r.ProductID, &r.CurrentPrice, &r.SuggestedPrice, &r.Status, &r.CreatedAt)
	return r, err
}
