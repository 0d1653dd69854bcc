package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/habit-tracker/internal/middlewares"
)

// ext returns the executor for the current request: the transaction stored
// in the context when present, otherwise the shared database handle.
func ext(ctx context.Context, db *sqlx.DB) sqlx.ExtContext {
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return db
}
