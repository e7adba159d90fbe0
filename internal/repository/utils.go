package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/special-brownies/booster-pack/internal/domain"
	"github.com/special-brownies/booster-pack/internal/logger"
)

// Log messages
const (
	LogMsgRollbackFailed = "Failed to rollback transaction"
	LogFieldError        = "error"
)

// SafeRollback rolls back a transaction and logs any error. Rolling back an
// already committed transaction is expected on the success path and is not
// logged.
func SafeRollback(ctx context.Context, tx Tx) {
	err := tx.Rollback(ctx)
	if err == nil || errors.Is(err, sql.ErrTxDone) || err.Error() == domain.ErrMsgTxClosed {
		return
	}
	logger.FromContext(ctx).Error(LogMsgRollbackFailed, LogFieldError, err)
}
