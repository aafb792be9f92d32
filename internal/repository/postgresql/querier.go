package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/massimocristi1970/hr-dashboard/internal/pkg/database"
)

type txKey struct{}

// ContextWithTx binds a transaction to the context so repository calls
// made with it run inside that transaction.
func ContextWithTx(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// GetQuerier returns the transaction bound to ctx, or the pool when
// there is none. Every repository method goes through this.
func GetQuerier(ctx context.Context, db *database.DB) database.Querier {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return db.Pool
}
