package sweep

import (
	"context"
	"github.com/ribgsilva/burn-note/app/cmd/schema"
	"github.com/ribgsilva/burn-note/business/v1/note"
	"github.com/ribgsilva/burn-note/platform/env"
	"github.com/ribgsilva/burn-note/platform/logger"
	"github.com/ribgsilva/burn-note/sys"
)

func ListCommands() {
	println("Sweep Commands")
	println("\trun\t\t\t- Deletes unread notes older than NOTES_RETENTION_WINDOW once")
	println("\thelp\t\t\t- Print the commands available")
}

func Run(options []string) {
	if len(options) == 0 || options[0] != "run" {
		ListCommands()
		return
	}

	log, err := logger.New("Burn-Note-Cmd")
	if err != nil {
		println("error:", err.Error())
		return
	}
	defer func() {
		_ = log.Sync()
	}()

	if err := schema.Connect(log); err != nil {
		println("error:", err.Error())
		return
	}
	defer func() {
		if err := sys.R.Database.Close(); err != nil {
			log.Errorf("could not close db conn gracefully: %s", err)
		}
	}()
	sys.Configs.Notes.RetentionWindow = env.DurationDefault(log, "NOTES_RETENTION_WINDOW", "720h")

	sweeper := note.NewSweeper(log, note.MySQL(), sys.Configs.Notes.RetentionWindow)
	if err := sweeper.Sweep(context.Background()); err != nil {
		println("failed to sweep:", err.Error())
	}
}
