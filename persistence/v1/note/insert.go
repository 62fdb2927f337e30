package note

import (
	"context"
	"fmt"
	"github.com/google/uuid"
	"github.com/ribgsilva/burn-note/sys"
	"time"
)

// Insert stores a new unread note and returns its generated id.
func Insert(ctx context.Context, newN NewNote) (string, error) {
	db := sys.R.Database

	id := uuid.NewString()
	n := time.Now().UTC()

	dbCtx, dbCancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer dbCancel()
	stmt, err := db.PrepareContext(dbCtx, "INSERT INTO notes (id, content, viewed, createdAt) VALUES (?, ?, FALSE, ?)")
	if err != nil {
		return "", fmt.Errorf("failed to prepare insert stmt: %w", err)
	}
	defer stmt.Close()
	if _, err = stmt.ExecContext(dbCtx, id, newN.Content, n); err != nil {
		return "", fmt.Errorf("failed to exec insert stmt: %w", err)
	}
	return id, nil
}
