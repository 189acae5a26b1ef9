package cli

import (
	"fmt"

	"github.com/alexanderramin/lanegrid/internal/cli/formatter"
	"github.com/alexanderramin/lanegrid/internal/domain"
	"github.com/spf13/cobra"
)

func newAssigneeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assignee",
		Short: "Manage assignees",
	}

	cmd.AddCommand(
		newAssigneeAddCmd(app),
		newAssigneeListCmd(app),
		newAssigneeRemoveCmd(app),
	)

	return cmd
}

func newAssigneeAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Add an assignee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := &domain.Assignee{Name: args[0]}
			if err := app.Assignees.Create(cmd.Context(), a); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added assignee %s: %s\n", shortID(a.ID), a.Name)
			return nil
		},
	}
}

func newAssigneeListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List assignees in canonical order",
		RunE: func(cmd *cobra.Command, args []string) error {
			assignees, err := app.Assignees.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(assignees) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No assignees yet.")
				return nil
			}
			rows := make([][]string, 0, len(assignees))
			for _, a := range assignees {
				rows = append(rows, []string{shortID(a.ID), a.Name})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable([]string{"ID", "Name"}, rows))
			return nil
		},
	}
}

func newAssigneeRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <name-or-id>",
		Short: "Delete an assignee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveAssigneeID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Assignees.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted assignee %s\n", shortID(id))
			return nil
		},
	}
}
