package schema

import (
	"context"
	"fmt"
	"github.com/ribgsilva/burn-note/sys"
)

// Create builds the notes table and its sweep index when they are missing.
func Create(ctx context.Context) error {
	db := sys.R.Database

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	return nil
}
