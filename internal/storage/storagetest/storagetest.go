// Package storagetest contains behaviour tests shared by storage implementations.
package storagetest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wellness-hub/wellness/internal/entities"
	"github.com/wellness-hub/wellness/internal/storage"
)

// Factory creates a storage filled with s.
type Factory func(t *testing.T, s storage.Snapshot) storage.Storage

// Snapshot returns a small fixture.
func Snapshot() storage.Snapshot {
	return storage.Snapshot{
		Tasks: []entities.Task{
			{ID: "t1", Title: "water", Category: "Nutrition", Icon: "💧", IconBg: "#D4E8F7", Completed: true},
			{ID: "t2", Title: "walk", Category: "Physical Activity", Icon: "🏃‍♀️", IconBg: "#FCE4EE"},
		},
		Lessons: []entities.Lesson{
			{ID: "l1", Title: "cycle", CategoryID: "sleep-fertility", Status: entities.LessonCompleted, WeekNumber: 1},
			{ID: "l2", Title: "sleep", CategoryID: "sleep-fertility", Status: entities.LessonNotStarted, WeekNumber: 2},
		},
		Posts: []entities.Post{
			{ID: "p1", Username: "luna", Tag: entities.TagAll, LikeCount: 47, Comments: []entities.Comment{{ID: "c1", Text: "yes"}}},
			{ID: "p2", Username: "emma", Tag: entities.TagPregnancy, LikeCount: 89, Liked: true},
			{ID: "p3", Username: "zoe", Tag: entities.TagMentalHealth, LikeCount: 156},
		},
	}
}

// Run runs every behaviour test against storages made by f.
func Run(t *testing.T, f Factory) {
	tt := []struct {
		name string
		fn   func(t *testing.T, s storage.Storage)
	}{
		{"Ping", testPing},
		{"Tasks", testTasks},
		{"CreateTaskDuplicate", testCreateTaskDuplicate},
		{"UpdateTaskError", testUpdateTaskError},
		{"UpdateTaskKeepsID", testUpdateTaskKeepsID},
		{"Lessons", testLessons},
		{"Posts", testPosts},
		{"ListPostsByTag", testListPostsByTag},
		{"CreatePostPrepends", testCreatePostPrepends},
		{"UpdatePostComments", testUpdatePostComments},
		{"ReturnsCopies", testReturnsCopies},
		{"Reset", testReset},
		{"ConcurrentUpdates", testConcurrentUpdates},
		{"ConcurrentWriters", testConcurrentWriters},
	}

	for i := range tt {
		tc := tt[i]
		t.Run(tc.name, func(t *testing.T) {
			tc.fn(t, f(t, Snapshot()))
		})
	}
}

func testPing(t *testing.T, s storage.Storage) {
	assert.NoError(t, s.Ping(context.Background()))
}

func testTasks(t *testing.T, s storage.Storage) {
	ctx := context.Background()

	tasks, err := s.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "t1", tasks[0].ID)
	assert.Equal(t, "t2", tasks[1].ID)

	require.NoError(t, s.CreateTask(ctx, &entities.Task{ID: "t-1", Title: "stretch"}))

	tasks, err = s.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "t-1", tasks[2].ID)

	got, err := s.UpdateTask(ctx, "t2", func(t *entities.Task) error {
		t.Completed = !t.Completed
		return nil
	})
	require.NoError(t, err)
	assert.True(t, got.Completed)

	task, err := s.GetTask(ctx, "t2")
	require.NoError(t, err)
	assert.True(t, task.Completed)
	assert.Equal(t, "walk", task.Title)

	_, err = s.GetTask(ctx, "missing")
	assert.True(t, errors.Is(err, storage.ErrNotFound))

	_, err = s.UpdateTask(ctx, "missing", func(t *entities.Task) error { return nil })
	assert.True(t, errors.Is(err, storage.ErrNotFound))
}

func testCreateTaskDuplicate(t *testing.T, s storage.Storage) {
	ctx := context.Background()

	err := s.CreateTask(ctx, &entities.Task{ID: "t1", Title: "dup"})
	require.True(t, errors.Is(err, storage.ErrAlreadyExists))

	tasks, err := s.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "water", tasks[0].Title)
}

func testUpdateTaskError(t *testing.T, s storage.Storage) {
	ctx := context.Background()
	errStop := errors.New("stop")

	_, err := s.UpdateTask(ctx, "t1", func(t *entities.Task) error {
		t.Completed = false
		return errStop
	})
	require.True(t, errors.Is(err, errStop))

	task, err := s.GetTask(ctx, "t1")
	require.NoError(t, err)
	assert.True(t, task.Completed)
}

func testUpdateTaskKeepsID(t *testing.T, s storage.Storage) {
	ctx := context.Background()

	got, err := s.UpdateTask(ctx, "t1", func(t *entities.Task) error {
		t.ID = "other"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "t1", got.ID)

	_, err = s.GetTask(ctx, "t1")
	assert.NoError(t, err)
}

func testLessons(t *testing.T, s storage.Storage) {
	ctx := context.Background()

	lessons, err := s.ListLessons(ctx)
	require.NoError(t, err)
	require.Len(t, lessons, 2)
	assert.Equal(t, "l1", lessons[0].ID)

	got, err := s.UpdateLesson(ctx, "l2", func(l *entities.Lesson) error {
		l.Status = entities.LessonCompleted
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, entities.LessonCompleted, got.Status)

	l, err := s.GetLesson(ctx, "l2")
	require.NoError(t, err)
	assert.Equal(t, entities.LessonCompleted, l.Status)
	assert.Equal(t, 2, l.WeekNumber)

	_, err = s.GetLesson(ctx, "missing")
	assert.True(t, errors.Is(err, storage.ErrNotFound))

	_, err = s.UpdateLesson(ctx, "missing", func(l *entities.Lesson) error { return nil })
	assert.True(t, errors.Is(err, storage.ErrNotFound))
}

func testPosts(t *testing.T, s storage.Storage) {
	ctx := context.Background()

	posts, err := s.ListPosts(ctx, nil)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, []string{"p1", "p2", "p3"}, postIDs(posts))

	p, err := s.GetPost(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, p.Comments, 1)
	assert.Equal(t, "yes", p.Comments[0].Text)

	_, err = s.GetPost(ctx, "missing")
	assert.True(t, errors.Is(err, storage.ErrNotFound))

	_, err = s.UpdatePost(ctx, "missing", func(p *entities.Post) error { return nil })
	assert.True(t, errors.Is(err, storage.ErrNotFound))
}

func testListPostsByTag(t *testing.T, s storage.Storage) {
	ctx := context.Background()

	tag := entities.TagPregnancy
	posts, err := s.ListPosts(ctx, &tag)
	require.NoError(t, err)
	assert.Equal(t, []string{"p2"}, postIDs(posts))

	tag = entities.TagAll
	posts, err = s.ListPosts(ctx, &tag)
	require.NoError(t, err)
	assert.Equal(t, []string{"p1"}, postIDs(posts))
}

func testCreatePostPrepends(t *testing.T, s storage.Storage) {
	ctx := context.Background()

	require.NoError(t, s.CreatePost(ctx, &entities.Post{ID: "p-1", Tag: entities.TagMentalHealth, Timestamp: "Just now"}))

	posts, err := s.ListPosts(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"p-1", "p1", "p2", "p3"}, postIDs(posts))

	err = s.CreatePost(ctx, &entities.Post{ID: "p2"})
	assert.True(t, errors.Is(err, storage.ErrAlreadyExists))

	posts, err = s.ListPosts(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, posts, 4)
}

func testUpdatePostComments(t *testing.T, s storage.Storage) {
	ctx := context.Background()

	got, err := s.UpdatePost(ctx, "p1", func(p *entities.Post) error {
		p.Comments = append(p.Comments, entities.Comment{ID: "c-1", Text: "me too"})
		p.Liked = true
		p.LikeCount++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, got.CommentCount())

	p, err := s.GetPost(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, p.Comments, 2)
	assert.Equal(t, "yes", p.Comments[0].Text)
	assert.Equal(t, "me too", p.Comments[1].Text)
	assert.Equal(t, 48, p.LikeCount)
	assert.True(t, p.Liked)
}

func testReturnsCopies(t *testing.T, s storage.Storage) {
	ctx := context.Background()

	p, err := s.GetPost(ctx, "p1")
	require.NoError(t, err)
	p.Comments[0].Text = "changed"
	p.LikeCount = 0

	task, err := s.GetTask(ctx, "t1")
	require.NoError(t, err)
	task.Title = "changed"

	p, err = s.GetPost(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "yes", p.Comments[0].Text)
	assert.Equal(t, 47, p.LikeCount)

	task, err = s.GetTask(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, "water", task.Title)
}

func testReset(t *testing.T, s storage.Storage) {
	ctx := context.Background()

	require.NoError(t, s.CreateTask(ctx, &entities.Task{ID: "t-1"}))
	require.NoError(t, s.CreatePost(ctx, &entities.Post{ID: "p-1"}))
	_, err := s.UpdateLesson(ctx, "l2", func(l *entities.Lesson) error {
		l.Status = entities.LessonCompleted
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, s.Reset(ctx, Snapshot()))

	tasks, err := s.ListTasks(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 2)

	_, err = s.GetTask(ctx, "t-1")
	assert.True(t, errors.Is(err, storage.ErrNotFound))

	posts, err := s.ListPosts(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p2", "p3"}, postIDs(posts))

	l, err := s.GetLesson(ctx, "l2")
	require.NoError(t, err)
	assert.Equal(t, entities.LessonNotStarted, l.Status)

	require.NoError(t, s.Reset(ctx, storage.Snapshot{}))
	tasks, err = s.ListTasks(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func testConcurrentUpdates(t *testing.T, s storage.Storage) {
	ctx := context.Background()

	const n = 10

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.UpdatePost(ctx, "p3", func(p *entities.Post) error {
				p.LikeCount++
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	p, err := s.GetPost(ctx, "p3")
	require.NoError(t, err)
	assert.Equal(t, 156+n, p.LikeCount)
}

func testConcurrentWriters(t *testing.T, s storage.Storage) {
	ctx := context.Background()

	const (
		likes    = 200
		comments = 100
		tasks    = 50
	)

	var wg sync.WaitGroup
	for i := 0; i < likes; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.UpdatePost(ctx, "p1", func(p *entities.Post) error {
				if p.Liked {
					p.LikeCount--
				} else {
					p.LikeCount++
				}
				p.Liked = !p.Liked
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	for i := 0; i < comments; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := s.UpdatePost(ctx, "p1", func(p *entities.Post) error {
				p.Comments = append(p.Comments, entities.Comment{ID: fmt.Sprintf("c-%d", i), Text: "hi"})
				return nil
			})
			assert.NoError(t, err)
		}(i)
	}
	for i := 0; i < tasks; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, s.CreateTask(ctx, &entities.Task{ID: fmt.Sprintf("t-%d", i), Title: "walk"}))
		}(i)
	}
	wg.Wait()

	p, err := s.GetPost(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 47, p.LikeCount)
	assert.False(t, p.Liked)
	assert.Len(t, p.Comments, 1+comments)

	all, err := s.ListTasks(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2+tasks)
}

func postIDs(posts []*entities.Post) []string {
	out := make([]string, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.ID)
	}
	return out
}
