// Package entities contains core business entities.
package entities

import (
	"strings"
	"time"
)

// ProjectStatus describes delivery health of a project.
type ProjectStatus string

const (
	ProjectOnTrack   ProjectStatus = "On Track"
	ProjectAtRisk    ProjectStatus = "At Risk"
	ProjectDelayed   ProjectStatus = "Delayed"
	ProjectCompleted ProjectStatus = "Completed"
)

// ProjectPriority ranks projects on the timeline.
type ProjectPriority string

const (
	ProjectPriorityHigh   ProjectPriority = "High"
	ProjectPriorityMedium ProjectPriority = "Medium"
	ProjectPriorityLow    ProjectPriority = "Low"
)

// Project is a unit of planned work with an optional date range.
type Project struct {
	ID          int64
	Name        string
	Description string
	StartDate   *time.Time
	EndDate     *time.Time
	Status      ProjectStatus
	Priority    ProjectPriority
	Completion  int
}

// SearchFields returns the values matched by free-text queries.
func (p Project) SearchFields() []string {
	return []string{p.Name, p.Description}
}

var projectStatuses = []ProjectStatus{ProjectOnTrack, ProjectAtRisk, ProjectDelayed, ProjectCompleted}

// ParseProjectStatus resolves a status name case-insensitively.
func ParseProjectStatus(s string) (ProjectStatus, bool) {
	s = strings.TrimSpace(s)
	for _, st := range projectStatuses {
		if strings.EqualFold(string(st), s) {
			return st, true
		}
	}
	return "", false
}

var projectPriorities = []ProjectPriority{ProjectPriorityHigh, ProjectPriorityMedium, ProjectPriorityLow}

// ParseProjectPriority resolves a priority name case-insensitively.
func ParseProjectPriority(s string) (ProjectPriority, bool) {
	s = strings.TrimSpace(s)
	for _, p := range projectPriorities {
		if strings.EqualFold(string(p), s) {
			return p, true
		}
	}
	return "", false
}
