package note

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"github.com/ribgsilva/burn-note/sys"
)

// Lookup reads a note without its content. A missing note returns a zero Note.
func Lookup(ctx context.Context, id string) (Note, error) {
	db := sys.R.Database

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()

	var note Note
	err := db.QueryRowContext(dbCtx, "SELECT id, viewed, createdAt FROM notes WHERE id = ?", id).
		Scan(&note.Id, &note.Viewed, &note.CreatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return Note{}, nil
	case err != nil:
		return Note{}, fmt.Errorf("failed to query lookup stmt: %w", err)
	default:
		return note, nil
	}
}
