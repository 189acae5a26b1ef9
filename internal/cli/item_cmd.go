package cli

import (
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/lanegrid/internal/cli/formatter"
	"github.com/alexanderramin/lanegrid/internal/domain"
	"github.com/spf13/cobra"
)

func newItemCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Manage work items",
	}

	cmd.AddCommand(
		newItemAddCmd(app),
		newItemListCmd(app),
		newItemDoneCmd(app),
		newItemRemoveCmd(app),
	)

	return cmd
}

func newItemAddCmd(app *App) *cobra.Command {
	var title, start, due, priority, assignee, project string
	var estimate int
	var interactive bool

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Create a new work item",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				title = args[0]
			}

			if interactive {
				if err := runItemForm(&title, &start, &due, &priority, &estimate); err != nil {
					return err
				}
			}

			ctx := cmd.Context()
			w := &domain.WorkItem{
				Title:    title,
				Priority: domain.Priority(priority),
			}
			var err error
			if w.StartDate, err = parseOptionalDate(start); err != nil {
				return err
			}
			if w.DueDate, err = parseOptionalDate(due); err != nil {
				return err
			}
			w.EstimateMin = estimate

			if assignee != "" {
				if w.AssigneeID, err = resolveAssigneeID(ctx, app, assignee); err != nil {
					return err
				}
			}
			if project != "" {
				if w.ProjectID, err = resolveProjectID(ctx, app, project); err != nil {
					return err
				}
			}

			if err := app.WorkItems.Create(ctx, w); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created work item %s: %s\n", shortID(w.ID), w.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&due, "due", "", "due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&priority, "priority", "normal", "priority (low|normal|high|urgent)")
	cmd.Flags().StringVar(&assignee, "assignee", "", "assignee name or ID")
	cmd.Flags().StringVar(&project, "project", "", "project name or ID")
	cmd.Flags().IntVar(&estimate, "estimate", 0, "estimated minutes")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "fill fields via an interactive form")

	return cmd
}

func newItemListCmd(app *App) *cobra.Command {
	var project, assignee string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List work items",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var items []domain.WorkItem
			var err error
			switch {
			case project != "":
				var id string
				if id, err = resolveProjectID(ctx, app, project); err != nil {
					return err
				}
				items, err = app.WorkItems.ListByProject(ctx, id)
			case assignee != "":
				var id string
				if id, err = resolveAssigneeID(ctx, app, assignee); err != nil {
					return err
				}
				items, err = app.WorkItems.ListByAssignee(ctx, id)
			default:
				items, err = app.WorkItems.List(ctx)
			}
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No work items yet. Create one with: lanegrid item add")
				return nil
			}

			// Board-column order, most urgent first within a column.
			sort.SliceStable(items, func(i, j int) bool {
				if a, b := domain.StatusRank(items[i].Status), domain.StatusRank(items[j].Status); a != b {
					return a < b
				}
				return domain.PriorityRank(items[i].Priority) < domain.PriorityRank(items[j].Priority)
			})

			rows := make([][]string, 0, len(items))
			for _, w := range items {
				rows = append(rows, []string{
					shortID(w.ID),
					w.Title,
					formatter.StatusStyle(w.Status).Render(domain.StatusLabel(w.Status)),
					formatter.PriorityStyle(w.Priority).Render(string(w.Priority)),
					fmtOptDate(w.StartDate),
					fmtOptDate(w.DueDate),
				})
			}
			out := formatter.RenderTable(
				[]string{"ID", "Title", "Status", "Priority", "Start", "Due"}, rows)
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "only items in this project (name or ID)")
	cmd.Flags().StringVar(&assignee, "assignee", "", "only items assigned to this person (name or ID)")
	return cmd
}

func newItemDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a work item done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveItemID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.WorkItems.MarkDone(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Marked %s done\n", shortID(id))
			return nil
		},
	}
}

func newItemRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a work item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveItemID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.WorkItems.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", shortID(id))
			return nil
		},
	}
}

// parseOptionalDate parses a YYYY-MM-DD string, mapping blank to nil.
func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, err)
	}
	return &t, nil
}
