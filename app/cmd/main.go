package main

import (
	"github.com/ribgsilva/burn-note/app/cmd/schema"
	"github.com/ribgsilva/burn-note/app/cmd/sweep"
	"os"

	_ "github.com/go-sql-driver/mysql"
)

func main() {
	if len(os.Args) < 2 {
		listCommands()
		return
	}

	switch os.Args[1] {
	case "schema":
		schema.Run(os.Args[2:])
	case "sweep":
		sweep.Run(os.Args[2:])
	default:
		listCommands()
	}
}

func listCommands() {
	println("Usage: cmd <group> <command>")
	schema.ListCommands()
	sweep.ListCommands()
}
