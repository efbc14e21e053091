//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"pricing-panel/internal/infra/tablestore"
	"pricing-panel/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const PricingTable = "pricing_suggestions"

// CreateTestSuggestion inserts the builder's row into the pricing table.
func CreateTestSuggestion(t *testing.T, db tablestore.DBTX, b *builder.SuggestionBuilder) uuid.UUID {
	t.Helper()

	ctx := context.Background()
	q := tablestore.New()

	table, err := q.ResolveTable(ctx, db, PricingTable)
	require.NoError(t, err)

	err = q.InsertSuggestion(ctx, db, table, b.BuildInsertParams())
	require.NoError(t, err)

	return b.ID
}

func CountSuggestions(t *testing.T, db DBLike) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT COUNT(*) FROM "+PricingTable).Scan(&n)
	require.NoError(t, err)
	return n
}

func SuggestedPriceOf(t *testing.T, db DBLike, id uuid.UUID) string {
	t.Helper()

	var price string
	err := db.QueryRow(context.Background(),
		"SELECT suggested_price::text FROM "+PricingTable+" WHERE id = $1", id).Scan(&price)
	require.NoError(t, err)
	return price
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
