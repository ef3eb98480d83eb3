package middlewares

import (
	"context"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/sysrai/sysrai-platform/internal/logger"
)

// TxMiddleware wraps a handler in one database transaction. Tx-aware
// repositories pick the transaction up from the request context, so a debit
// and the project row it pays for commit or roll back together.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tx, err := db.Beginx()
			if err != nil {
				logger.Log.Errorw("failed to begin transaction", "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			defer func() {
				if rec := recover(); rec != nil {
					tx.Rollback()
					panic(rec)
				}
			}()

			rw := &txResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			r = r.WithContext(setTxToContext(r.Context(), tx))

			next.ServeHTTP(rw, r)

			// A handler that answered with an error status already reported it;
			// throw its uncommitted writes away.
			if rw.statusCode >= http.StatusBadRequest {
				tx.Rollback()
				return
			}

			if err := tx.Commit(); err != nil {
				logger.Log.Errorw("failed to commit transaction", "error", err)
			}
		})
	}
}

type txResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *txResponseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var txKey = contextKey{}

// setTxToContext stores a transaction in the context
func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}
