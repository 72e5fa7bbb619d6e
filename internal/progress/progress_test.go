package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wellness-hub/wellness/internal/entities"
)

func TestPercentage(t *testing.T) {
	tt := []struct {
		completed, total, want int
	}{
		{0, 0, 0},
		{3, 0, 0},
		{0, 8, 0},
		{3, 8, 38},
		{4, 8, 50},
		{2, 7, 29},
		{1, 3, 33},
		{2, 3, 67},
		{1, 8, 13},
		{8, 8, 100},
	}

	for _, tc := range tt {
		assert.Equal(t, tc.want, Percentage(tc.completed, tc.total), "%d/%d", tc.completed, tc.total)
	}
}

func TestTasks(t *testing.T) {
	assert.Equal(t, TaskProgress{}, Tasks(nil))

	p := Tasks([]entities.Task{
		{ID: "t1", Completed: true},
		{ID: "t2", Completed: true},
		{ID: "t3"},
		{ID: "t4"},
		{ID: "t5"},
		{ID: "t6", Completed: true},
		{ID: "t7"},
		{ID: "t8"},
	})
	assert.Equal(t, TaskProgress{Total: 8, Completed: 3, Remaining: 5, Percentage: 38}, p)
}

func TestLessons(t *testing.T) {
	assert.Equal(t, LessonSummary{}, Lessons(nil))

	s := Lessons([]entities.Lesson{
		{Status: entities.LessonCompleted},
		{Status: entities.LessonCompleted},
		{Status: entities.LessonInProgress},
		{Status: entities.LessonInProgress},
		{Status: entities.LessonNotStarted},
		{Status: entities.LessonNotStarted},
		{Status: entities.LessonNotStarted},
	})
	assert.Equal(t, LessonSummary{Total: 7, Completed: 2, InProgress: 2, Upcoming: 3, Percentage: 29}, s)
}
