package filter

import (
	"strings"

	"github.com/Harshvardhan-91/Project-Management/internal/entities"
)

// Category selects one bucket of a mixed result set.
type Category string

const (
	All      Category = "all"
	Projects Category = "projects"
	Tasks    Category = "tasks"
	Users    Category = "users"
	Teams    Category = "teams"
)

// ParseCategory normalizes a selector key. Blank input means All; unknown
// keys are kept as-is and select nothing.
func ParseCategory(raw string) Category {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	if c == "" {
		return All
	}
	return c
}

// Valid reports whether c is one of the known selectors.
func (c Category) Valid() bool {
	switch c {
	case All, Projects, Tasks, Users, Teams:
		return true
	default:
		return false
	}
}

// Apply keeps the bucket selected by c and empties the others.
func (c Category) Apply(r entities.SearchResults) entities.SearchResults {
	out := Empty()
	switch c {
	case All:
		out.Projects = nonNil(r.Projects)
		out.Tasks = nonNil(r.Tasks)
		out.Users = nonNil(r.Users)
		out.Teams = nonNil(r.Teams)
	case Projects:
		out.Projects = nonNil(r.Projects)
	case Tasks:
		out.Tasks = nonNil(r.Tasks)
	case Users:
		out.Users = nonNil(r.Users)
	case Teams:
		out.Teams = nonNil(r.Teams)
	}
	return out
}

// Empty returns a result set with every bucket empty and non-nil.
func Empty() entities.SearchResults {
	return entities.SearchResults{
		Projects: []entities.Project{},
		Tasks:    []entities.Task{},
		Users:    []entities.User{},
		Teams:    []entities.Team{},
	}
}

// Results filters every bucket by q, then applies the category.
func Results(r entities.SearchResults, q Query, c Category) entities.SearchResults {
	return c.Apply(entities.SearchResults{
		Projects: Text(r.Projects, q),
		Tasks:    Text(r.Tasks, q),
		Users:    Text(r.Users, q),
		Teams:    Text(r.Teams, q),
	})
}

// Counts sizes each bucket of r.
func Counts(r entities.SearchResults) entities.SearchCounts {
	c := entities.SearchCounts{
		Projects: len(r.Projects),
		Tasks:    len(r.Tasks),
		Users:    len(r.Users),
		Teams:    len(r.Teams),
	}
	c.Total = c.Projects + c.Tasks + c.Users + c.Teams
	return c
}

func nonNil[T any](items []T) []T {
	return append(make([]T, 0, len(items)), items...)
}
