package domain

import (
	"fmt"
	"time"
)

type Project struct {
	ID         string
	Name       string
	Seq        int
	Status     ProjectStatus
	ArchivedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Validate checks required fields before persistence.
func (p *Project) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("project name is required")
	}
	return nil
}

// DisplayID returns the best short identifier for display.
// It truncates the UUID to 8 characters.
func (p *Project) DisplayID() string {
	if len(p.ID) >= 8 {
		return p.ID[:8]
	}
	return p.ID
}
