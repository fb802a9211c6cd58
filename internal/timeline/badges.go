package timeline

import (
	"strings"

	"github.com/Harshvardhan-91/Project-Management/internal/entities"
)

const neutralBadge = "bg-gray-100 text-gray-800 border-gray-200"

var (
	taskPriorityBadges = map[string]string{
		"urgent": "bg-red-100 text-red-800 border-red-200",
		"high":   "bg-orange-100 text-orange-800 border-orange-200",
		"medium": "bg-yellow-100 text-yellow-800 border-yellow-200",
		"low":    "bg-green-100 text-green-800 border-green-200",
	}
	taskStatusBadges = map[string]string{
		"completed":        "bg-green-100 text-green-800 border-green-200",
		"work in progress": "bg-blue-100 text-blue-800 border-blue-200",
		"under review":     "bg-purple-100 text-purple-800 border-purple-200",
		"to do":            neutralBadge,
	}
	projectStatusBadges = map[string]string{
		"completed": "bg-green-100 text-green-800 border-green-200",
		"on track":  "bg-blue-100 text-blue-800 border-blue-200",
		"at risk":   "bg-orange-100 text-orange-800 border-orange-200",
		"delayed":   "bg-red-100 text-red-800 border-red-200",
	}
)

// TaskPriorityBadge returns the badge classes for a task priority.
func TaskPriorityBadge(p entities.TaskPriority) string {
	return badge(taskPriorityBadges, string(p))
}

// TaskStatusBadge returns the badge classes for a task status.
func TaskStatusBadge(s entities.TaskStatus) string {
	return badge(taskStatusBadges, string(s))
}

// ProjectStatusBadge returns the badge classes for a project status.
func ProjectStatusBadge(s entities.ProjectStatus) string {
	return badge(projectStatusBadges, string(s))
}

func badge(m map[string]string, key string) string {
	if c, ok := m[strings.ToLower(strings.TrimSpace(key))]; ok {
		return c
	}
	return neutralBadge
}
