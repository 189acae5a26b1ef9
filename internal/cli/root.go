package cli

import (
	"github.com/alexanderramin/lanegrid/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	WorkItems service.WorkItemService
	Assignees service.AssigneeService
	Projects  service.ProjectService
	Timeline  service.TimelineService

	// IsInteractive reports whether stdin is a real terminal; the board
	// command refuses to start without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "lanegrid" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "lanegrid",
		Short: "Team timeline with lane-packed gantt views",
	}

	root.AddCommand(
		newItemCmd(app),
		newAssigneeCmd(app),
		newProjectCmd(app),
		newTimelineCmd(app),
		newBoardCmd(app),
	)

	return root
}
