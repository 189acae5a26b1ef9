package domain

import "time"

// CoalesceTime returns the first non-nil *time.Time from ptrs, or nil.
func CoalesceTime(ptrs ...*time.Time) *time.Time {
	for _, p := range ptrs {
		if p != nil {
			return p
		}
	}
	return nil
}
