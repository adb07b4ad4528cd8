package task

import "strings"

// Task is a single task row as stored in SQLite. Description is ""
// when absent (stored as NULL).
type Task struct {
	ID          int64
	Title       string
	Description string
	Done        bool
	Deleted     bool
}

// Filter selects which subset of the snapshot is shown. Exactly one
// filter is active at a time.
type Filter int

const (
	FilterAll Filter = iota
	FilterActive
	FilterCompleted
	FilterDeleted
)

func (f Filter) String() string {
	switch f {
	case FilterAll:
		return "All"
	case FilterActive:
		return "Active"
	case FilterCompleted:
		return "Completed"
	case FilterDeleted:
		return "Deleted"
	default:
		return "Unknown"
	}
}

// ParseFilter parses a filter name case-insensitively. Unknown names
// fall back to FilterAll.
func ParseFilter(s string) Filter {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "active":
		return FilterActive
	case "completed", "done":
		return FilterCompleted
	case "deleted", "trash":
		return FilterDeleted
	default:
		return FilterAll
	}
}

// Match reports whether t is visible under f. Note All is not every
// row: soft-deleted tasks only surface under FilterDeleted.
func (f Filter) Match(t Task) bool {
	switch f {
	case FilterAll:
		return !t.Deleted
	case FilterActive:
		return !t.Done && !t.Deleted
	case FilterCompleted:
		return t.Done && !t.Deleted
	case FilterDeleted:
		return t.Deleted
	default:
		return false
	}
}

// Visible returns the subset of tasks matching f, preserving snapshot
// order.
func Visible(tasks []Task, f Filter) []Task {
	var out []Task
	for _, t := range tasks {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}
