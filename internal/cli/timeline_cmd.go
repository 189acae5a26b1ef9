package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/lanegrid/internal/cli/formatter"
	"github.com/alexanderramin/lanegrid/internal/service"
	"github.com/spf13/cobra"
)

func newTimelineCmd(app *App) *cobra.Command {
	var view, anchor, groupBy string
	var zoom int

	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Render the timeline to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			var anchorTime time.Time
			if anchor != "" {
				t, err := time.Parse("2006-01-02", anchor)
				if err != nil {
					return fmt.Errorf("invalid anchor date %q (want YYYY-MM-DD): %w", anchor, err)
				}
				anchorTime = t
			}

			resp, err := app.Timeline.Render(cmd.Context(), service.TimelineRequest{
				View:    view,
				Anchor:  anchorTime,
				Zoom:    zoom,
				GroupBy: groupBy,
			})
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderGantt(resp.Result))
			return nil
		},
	}

	cmd.Flags().StringVar(&view, "view", "week", "view kind (week|twoweek|month)")
	cmd.Flags().StringVar(&anchor, "anchor", "", "anchor date (YYYY-MM-DD, default today)")
	cmd.Flags().IntVar(&zoom, "zoom", 100, "zoom percentage (60-200, clamped)")
	cmd.Flags().StringVar(&groupBy, "group-by", "assignee", "grouping dimension (assignee|project|status)")

	return cmd
}
