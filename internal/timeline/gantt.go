// Package timeline turns projects and tasks into Gantt chart rows.
package timeline

import (
	"strconv"
	"time"

	"github.com/Harshvardhan-91/Project-Management/internal/entities"
)

const dateLayout = "2006-01-02"

// BarType is the row kind understood by the chart.
type BarType string

const (
	BarProject BarType = "project"
	BarTask    BarType = "task"
)

// BarStyles carries per-row colors.
type BarStyles struct {
	BackgroundColor         string
	BackgroundSelectedColor string
	ProgressColor           string
	ProgressSelectedColor   string
}

// Bar is one row of a Gantt chart.
type Bar struct {
	ID          string
	Name        string
	Start       string
	End         string
	Type        BarType
	Progress    int
	Styles      *BarStyles
	CustomClass string
}

// Projects maps projects to rows, skipping those without a full date range.
func Projects(projects []entities.Project) []Bar {
	bars := make([]Bar, 0, len(projects))
	for _, p := range projects {
		if p.StartDate == nil || p.EndDate == nil {
			continue
		}
		bars = append(bars, Bar{
			ID:       "Project-" + strconv.FormatInt(p.ID, 10),
			Name:     p.Name,
			Start:    formatDate(*p.StartDate),
			End:      formatDate(*p.EndDate),
			Type:     BarProject,
			Progress: clampPercent(p.Completion),
			Styles: &BarStyles{
				BackgroundColor:         ProjectColor(p.Status, false),
				BackgroundSelectedColor: ProjectColor(p.Status, true),
				ProgressColor:           ProgressColor(p.Status, false),
				ProgressSelectedColor:   ProgressColor(p.Status, true),
			},
		})
	}
	return bars
}

// Tasks maps tasks to rows. Progress is derived from story points on a
// ten-point scale.
func Tasks(tasks []entities.Task, dark bool) []Bar {
	class := "light-task"
	if dark {
		class = "dark-task"
	}

	bars := make([]Bar, 0, len(tasks))
	for _, t := range tasks {
		if t.StartDate == nil || t.DueDate == nil {
			continue
		}
		bars = append(bars, Bar{
			ID:          "Task-" + strconv.FormatInt(t.ID, 10),
			Name:        t.Title,
			Start:       formatDate(*t.StartDate),
			End:         formatDate(*t.DueDate),
			Type:        BarTask,
			Progress:    pointsProgress(t.Points),
			CustomClass: class,
		})
	}
	return bars
}

func pointsProgress(points *int) int {
	if points == nil {
		return 0
	}
	return clampPercent(*points * 10)
}

func clampPercent(v int) int {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return v
	}
}

func formatDate(t time.Time) string {
	return t.UTC().Format(dateLayout)
}
