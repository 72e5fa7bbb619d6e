// Package progress aggregates task and lesson completion.
package progress

import (
	"math"

	"github.com/wellness-hub/wellness/internal/entities"
)

// TaskProgress ...
type TaskProgress struct {
	Total      int
	Completed  int
	Remaining  int
	Percentage int
}

// LessonSummary ...
type LessonSummary struct {
	Total      int
	Completed  int
	InProgress int
	Upcoming   int
	Percentage int
}

// Percentage returns round(100*completed/total), or 0 when total is 0.
func Percentage(completed, total int) int {
	if total <= 0 {
		return 0
	}

	return int(math.Round(100 * float64(completed) / float64(total)))
}

// Tasks summarizes a task list.
func Tasks(tasks []entities.Task) TaskProgress {
	var p TaskProgress
	p.Total = len(tasks)
	for _, v := range tasks {
		if v.Completed {
			p.Completed++
		}
	}
	p.Remaining = p.Total - p.Completed
	p.Percentage = Percentage(p.Completed, p.Total)

	return p
}

// Lessons summarizes a lesson list. Anything neither completed nor in progress is upcoming.
func Lessons(lessons []entities.Lesson) LessonSummary {
	var s LessonSummary
	s.Total = len(lessons)
	for _, v := range lessons {
		switch v.Status {
		case entities.LessonCompleted:
			s.Completed++
		case entities.LessonInProgress:
			s.InProgress++
		}
	}
	s.Upcoming = s.Total - s.Completed - s.InProgress
	s.Percentage = Percentage(s.Completed, s.Total)

	return s
}
