package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/lanegrid/internal/cli"
	"github.com/alexanderramin/lanegrid/internal/db"
	"github.com/alexanderramin/lanegrid/internal/repository"
	"github.com/alexanderramin/lanegrid/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.lanegrid/lanegrid.db
	dbPath := os.Getenv("LANEGRID_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".lanegrid", "lanegrid.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	itemRepo := repository.NewSQLiteWorkItemRepo(database)
	assigneeRepo := repository.NewSQLiteAssigneeRepo(database)
	projectRepo := repository.NewSQLiteProjectRepo(database)

	app := &cli.App{
		WorkItems: service.NewWorkItemService(itemRepo, assigneeRepo, projectRepo),
		Assignees: service.NewAssigneeService(assigneeRepo),
		Projects:  service.NewProjectService(projectRepo),
		Timeline:  service.NewTimelineService(itemRepo),
	}

	// Detect interactive terminal for the form and board entrypoints.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
