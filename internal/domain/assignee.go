package domain

import (
	"fmt"
	"time"
)

// Assignee is a member of the team work items can be assigned to.
// Seq fixes the canonical display order used by timeline groupings.
type Assignee struct {
	ID        string
	Name      string
	Seq       int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks required fields before persistence.
func (a *Assignee) Validate() error {
	if a.Name == "" {
		return fmt.Errorf("assignee name is required")
	}
	return nil
}
