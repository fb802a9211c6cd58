// Package entities contains core business entities.
package entities

import (
	"strings"
	"time"
)

// TaskStatus enumerates board columns.
type TaskStatus string

const (
	TaskToDo           TaskStatus = "To Do"
	TaskWorkInProgress TaskStatus = "Work In Progress"
	TaskUnderReview    TaskStatus = "Under Review"
	TaskCompleted      TaskStatus = "Completed"
)

// TaskPriority enumerates the priority pages.
type TaskPriority string

const (
	PriorityUrgent  TaskPriority = "Urgent"
	PriorityHigh    TaskPriority = "High"
	PriorityMedium  TaskPriority = "Medium"
	PriorityLow     TaskPriority = "Low"
	PriorityBacklog TaskPriority = "Backlog"
)

// Task belongs to a project and is optionally assigned to a user.
type Task struct {
	ID             int64
	Title          string
	Description    string
	Status         TaskStatus
	Priority       TaskPriority
	Tags           string
	StartDate      *time.Time
	DueDate        *time.Time
	Points         *int
	ProjectID      int64
	AuthorUserID   int64
	AssignedUserID *int64
}

// SearchFields returns the values matched by free-text queries.
func (t Task) SearchFields() []string {
	return []string{t.Title, t.Description, t.Tags}
}

// TaskFilter narrows task listings.
type TaskFilter struct {
	ProjectID *int64
	Priority  *TaskPriority
	UserID    *int64
}

var taskPriorities = []TaskPriority{PriorityUrgent, PriorityHigh, PriorityMedium, PriorityLow, PriorityBacklog}

// ParseTaskPriority resolves a priority name case-insensitively.
func ParseTaskPriority(s string) (TaskPriority, bool) {
	s = strings.TrimSpace(s)
	for _, p := range taskPriorities {
		if strings.EqualFold(string(p), s) {
			return p, true
		}
	}
	return "", false
}

var taskStatuses = []TaskStatus{TaskToDo, TaskWorkInProgress, TaskUnderReview, TaskCompleted}

// ParseTaskStatus resolves a status name case-insensitively.
func ParseTaskStatus(s string) (TaskStatus, bool) {
	s = strings.TrimSpace(s)
	for _, st := range taskStatuses {
		if strings.EqualFold(string(st), s) {
			return st, true
		}
	}
	return "", false
}
