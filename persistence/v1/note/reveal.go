package note

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"github.com/ribgsilva/burn-note/platform/database"
	"github.com/ribgsilva/burn-note/sys"
)

// Reveal flips viewed from false to true and returns the content read in the same transaction.
// revealed is false when no unread note matched, either because it does not exist or because
// someone else already revealed it.
func Reveal(ctx context.Context, id string) (note Note, revealed bool, err error) {
	db := sys.R.Database

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()

	err = database.WithTx(dbCtx, db, func(ctx context.Context, tx database.DBTX) error {
		res, err := tx.ExecContext(ctx, "UPDATE notes SET viewed = TRUE WHERE id = ? AND viewed = FALSE", id)
		if err != nil {
			return fmt.Errorf("failed to exec reveal stmt: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to read reveal result: %w", err)
		}
		switch affected {
		case 0:
			return nil
		case 1:
		default:
			return fmt.Errorf("reveal matched %d rows for id %s", affected, id)
		}

		err = tx.QueryRowContext(ctx, "SELECT id, content, viewed, createdAt FROM notes WHERE id = ?", id).
			Scan(&note.Id, &note.Content, &note.Viewed, &note.CreatedAt)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("revealed note %s vanished", id)
		}
		if err != nil {
			return fmt.Errorf("failed to read revealed note: %w", err)
		}
		revealed = true
		return nil
	})
	if err != nil {
		return Note{}, false, err
	}
	return note, revealed, nil
}
