package layout

import "github.com/alexanderramin/lanegrid/internal/domain"

// Catch-all group identifiers for items without a reference.
const (
	GroupIDUnassigned = "unassigned"
	GroupIDNoProject  = "no_project"
)

// Identity is a minimal reference entry (assignee or project) carrying the
// canonical display order the caller wants groups emitted in.
type Identity struct {
	ID   string
	Name string
}

// ReferenceData supplies the canonical orderings grouping is based on.
type ReferenceData struct {
	Assignees []Identity
	Projects  []Identity
}

// Group is a named partition of work items. Items keep the order they were
// supplied in.
type Group struct {
	ID    string
	Label string
	Items []domain.WorkItem
}

// GroupItems partitions items by the chosen dimension. Assignee and project
// groupings follow the reference list's order, emit only non-empty groups,
// and append a catch-all for items without (or with an unknown) reference.
// Status grouping follows the fixed canonical status order and needs no
// catch-all. An unrecognized key behaves like assignee grouping.
func GroupItems(items []domain.WorkItem, key domain.GroupKey, ref ReferenceData) []Group {
	switch key {
	case domain.GroupByProject:
		return groupByReference(items, ref.Projects, GroupIDNoProject, "No Project",
			func(w domain.WorkItem) string { return w.ProjectID })
	case domain.GroupByStatus:
		return groupByStatus(items)
	default:
		return groupByReference(items, ref.Assignees, GroupIDUnassigned, "Unassigned",
			func(w domain.WorkItem) string { return w.AssigneeID })
	}
}

func groupByReference(items []domain.WorkItem, refs []Identity, restID, restLabel string, keyOf func(domain.WorkItem) string) []Group {
	known := make(map[string]bool, len(refs))
	for _, r := range refs {
		known[r.ID] = true
	}

	var groups []Group
	for _, r := range refs {
		var members []domain.WorkItem
		for _, it := range items {
			if keyOf(it) == r.ID {
				members = append(members, it)
			}
		}
		if len(members) > 0 {
			groups = append(groups, Group{ID: r.ID, Label: r.Name, Items: members})
		}
	}

	// Items without a reference, or pointing at one the reference list does
	// not know, land in the trailing catch-all instead of being dropped.
	var rest []domain.WorkItem
	for _, it := range items {
		if k := keyOf(it); k == "" || !known[k] {
			rest = append(rest, it)
		}
	}
	if len(rest) > 0 {
		groups = append(groups, Group{ID: restID, Label: restLabel, Items: rest})
	}
	return groups
}

func groupByStatus(items []domain.WorkItem) []Group {
	var groups []Group
	for _, s := range domain.StatusOrder {
		var members []domain.WorkItem
		for _, it := range items {
			if it.Status == s {
				members = append(members, it)
			}
		}
		if len(members) > 0 {
			groups = append(groups, Group{ID: string(s), Label: domain.StatusLabel(s), Items: members})
		}
	}
	return groups
}
