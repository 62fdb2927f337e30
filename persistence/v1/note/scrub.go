package note

import (
	"context"
	"fmt"
	"github.com/ribgsilva/burn-note/sys"
)

// Scrub overwrites the content of a viewed note with DestroyedContent.
// It reports whether a row was changed; a deleted note is not an error.
func Scrub(ctx context.Context, id string) (bool, error) {
	db := sys.R.Database

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()

	res, err := db.ExecContext(dbCtx, "UPDATE notes SET content = ? WHERE id = ? AND viewed = TRUE", DestroyedContent, id)
	if err != nil {
		return false, fmt.Errorf("failed to exec scrub stmt: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read scrub result: %w", err)
	}
	return affected > 0, nil
}
