package note

import (
	"context"
	"fmt"
	"github.com/ribgsilva/burn-note/sys"
	"time"
)

// DeleteExpired removes unread notes created before the given instant.
func DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	db := sys.R.Database

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()

	res, err := db.ExecContext(dbCtx, "DELETE FROM notes WHERE viewed = FALSE AND createdAt < ?", before.UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to exec expire stmt: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read expire result: %w", err)
	}
	return n, nil
}
