package timeline

import (
	"fmt"

	"github.com/Harshvardhan-91/Project-Management/internal/entities"
)

type rgb struct{ r, g, b int }

var (
	projectColors = map[entities.ProjectStatus]rgb{
		entities.ProjectCompleted: {34, 197, 94},
		entities.ProjectOnTrack:   {59, 130, 246},
		entities.ProjectAtRisk:    {249, 115, 22},
		entities.ProjectDelayed:   {239, 68, 68},
	}
	progressColors = map[entities.ProjectStatus]rgb{
		entities.ProjectCompleted: {21, 128, 61},
		entities.ProjectOnTrack:   {37, 99, 235},
		entities.ProjectAtRisk:    {234, 88, 12},
		entities.ProjectDelayed:   {220, 38, 38},
	}
	defaultProjectColor  = rgb{107, 114, 128}
	defaultProgressColor = rgb{75, 85, 99}
)

// ProjectColor returns the bar color for a project status.
func ProjectColor(status entities.ProjectStatus, selected bool) string {
	c, ok := projectColors[status]
	if !ok {
		c = defaultProjectColor
	}
	opacity := "0.8"
	if selected {
		opacity = "1"
	}
	return c.rgba(opacity)
}

// ProgressColor returns the progress fill color for a project status.
func ProgressColor(status entities.ProjectStatus, selected bool) string {
	c, ok := progressColors[status]
	if !ok {
		c = defaultProgressColor
	}
	opacity := "0.9"
	if selected {
		opacity = "1"
	}
	return c.rgba(opacity)
}

func (c rgb) rgba(opacity string) string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.r, c.g, c.b, opacity)
}
