package cli

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// resolveItemID maps user input (full UUID or unambiguous prefix) to a work
// item ID.
func resolveItemID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("work item ID is required")
	}

	items, err := app.WorkItems.List(ctx)
	if err != nil {
		return "", err
	}

	for _, it := range items {
		if it.ID == input {
			return it.ID, nil
		}
	}

	var matches []string
	for _, it := range items {
		if strings.HasPrefix(it.ID, input) {
			matches = append(matches, it.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("work item not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("work item ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveProjectID maps a project name, full UUID or unambiguous prefix to
// a project ID.
func resolveProjectID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("project is required")
	}

	projects, err := app.Projects.List(ctx, true)
	if err != nil {
		return "", err
	}

	for _, p := range projects {
		if strings.EqualFold(p.Name, input) || p.ID == input {
			return p.ID, nil
		}
	}

	var matches []string
	for _, p := range projects {
		if strings.HasPrefix(p.ID, input) {
			matches = append(matches, p.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("project not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("project %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveAssigneeID maps an assignee name, full UUID or unambiguous prefix
// to an assignee ID.
func resolveAssigneeID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("assignee is required")
	}

	assignees, err := app.Assignees.List(ctx)
	if err != nil {
		return "", err
	}

	for _, a := range assignees {
		if strings.EqualFold(a.Name, input) || a.ID == input {
			return a.ID, nil
		}
	}

	var matches []string
	for _, a := range assignees {
		if strings.HasPrefix(a.ID, input) {
			matches = append(matches, a.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("assignee not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("assignee %q is ambiguous (%d matches)", input, len(matches))
	}
}

// shortID truncates a UUID for display.
func shortID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

// fmtOptDate renders an optional date for display, blank when nil.
func fmtOptDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
