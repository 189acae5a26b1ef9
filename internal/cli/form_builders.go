package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
)

// validateOptionalDate accepts blank or a YYYY-MM-DD date.
func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

// validateOptionalInt accepts blank or a non-negative integer.
func validateOptionalInt(s string) error {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return fmt.Errorf("enter a non-negative number")
	}
	return nil
}

// dateInput returns a huh.Input for an optional date field with YYYY-MM-DD validation.
func dateInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("2026-03-31").
		Value(value).
		Validate(validateOptionalDate)
}

// runItemForm collects work item fields interactively.
func runItemForm(title, start, due, priority *string, estimate *int) error {
	estimateStr := ""
	if *estimate > 0 {
		estimateStr = strconv.Itoa(*estimate)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(title).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("title is required")
					}
					return nil
				}),
			dateInput("Start Date (blank for none)", start),
			dateInput("Due Date (blank for none)", due),
			huh.NewSelect[string]().
				Title("Priority").
				Options(
					huh.NewOption("Low", "low"),
					huh.NewOption("Normal", "normal"),
					huh.NewOption("High", "high"),
					huh.NewOption("Urgent", "urgent"),
				).
				Value(priority),
			huh.NewInput().
				Title("Estimate (minutes, blank for none)").
				Value(&estimateStr).
				Validate(validateOptionalInt),
		),
	).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return fmt.Errorf("running item form: %w", err)
	}

	if estimateStr != "" {
		n, err := strconv.Atoi(estimateStr)
		if err != nil {
			return fmt.Errorf("invalid estimate %q: %w", estimateStr, err)
		}
		*estimate = n
	}
	return nil
}
