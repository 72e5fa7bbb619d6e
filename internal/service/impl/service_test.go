package impl

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wellness-hub/wellness/internal/entities"
	"github.com/wellness-hub/wellness/internal/idgen"
	"github.com/wellness-hub/wellness/internal/progress"
	"github.com/wellness-hub/wellness/internal/seed"
	"github.com/wellness-hub/wellness/internal/service"
	storageinterface "github.com/wellness-hub/wellness/internal/storage"
	"github.com/wellness-hub/wellness/internal/storage/memory"
	storage "github.com/wellness-hub/wellness/internal/storage/mock"
)

func newSession() service.Service {
	sd := seed.Default()
	return New(memory.New(sd.Snapshot()), sd, idgen.NewSequence())
}

func TestSrv_ListTasks(t *testing.T) {
	srv := newSession()

	tasks, p, err := srv.ListTasks(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 8)
	assert.Equal(t, progress.TaskProgress{Total: 8, Completed: 3, Remaining: 5, Percentage: 38}, p)
}

func TestSrv_ListTasks_Error(t *testing.T) {
	ctrl := gomock.NewController(t)

	s := storage.NewMockStorage(ctrl)
	srv := New(s, seed.Default(), idgen.NewSequence())

	s.EXPECT().ListTasks(gomock.Any()).Return(nil, context.Canceled)
	_, _, err := srv.ListTasks(context.Background())
	require.True(t, errors.Is(err, context.Canceled))
}

func TestSrv_AddTask(t *testing.T) {
	tt := []struct {
		name   string
		params service.AddTaskParams
		want   *entities.Task
		err    error
	}{
		{
			name:   "success",
			params: service.AddTaskParams{Title: "  Eat an apple ", Category: "Nutrition", Icon: "🍎"},
			want:   &entities.Task{ID: "t-1", Title: "Eat an apple", Category: "Nutrition", Icon: "🍎", IconBg: "#FCE4EE"},
		},
		{
			name:   "defaults",
			params: service.AddTaskParams{Title: "Rest"},
			want:   &entities.Task{ID: "t-1", Title: "Rest", Category: "Nutrition", Icon: "💧", IconBg: "#D4E8F7"},
		},
		{
			name:   "unknown icon",
			params: service.AddTaskParams{Title: "Ride", Category: "Physical Activity", Icon: "🚲"},
			want:   &entities.Task{ID: "t-1", Title: "Ride", Category: "Physical Activity", Icon: "🚲", IconBg: "#EDE0F7"},
		},
		{
			name:   "empty title",
			params: service.AddTaskParams{Title: "   ", Category: "Nutrition"},
			err:    service.ErrInvalidInput,
		},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			srv := newSession()

			task, err := srv.AddTask(context.Background(), tc.params)
			tasks, p, lerr := srv.ListTasks(context.Background())
			require.NoError(t, lerr)

			if tc.err != nil {
				require.True(t, errors.Is(err, tc.err))
				assert.Len(t, tasks, 8)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, task)
			require.Len(t, tasks, 9)
			assert.Equal(t, tc.want, tasks[8])
			assert.Equal(t, 33, p.Percentage)
		})
	}
}

func TestSrv_AddTask_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)

	s := storage.NewMockStorage(ctrl)
	srv := New(s, seed.Default(), idgen.NewSequence())

	s.EXPECT().CreateTask(gomock.Any(), gomock.Any()).Return(storageinterface.ErrAlreadyExists)
	_, err := srv.AddTask(context.Background(), service.AddTaskParams{Title: "x"})
	require.True(t, errors.Is(err, storageinterface.ErrAlreadyExists))
}

func TestSrv_ToggleTask(t *testing.T) {
	srv := newSession()
	ctx := context.Background()

	task, err := srv.ToggleTask(ctx, "t3")
	require.NoError(t, err)
	assert.True(t, task.Completed)

	_, p, err := srv.ListTasks(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, p.Completed)
	assert.Equal(t, 50, p.Percentage)

	task, err = srv.ToggleTask(ctx, "t3")
	require.NoError(t, err)
	assert.False(t, task.Completed)

	_, err = srv.ToggleTask(ctx, "missing")
	require.True(t, errors.Is(err, storageinterface.ErrNotFound))

	_, p, err = srv.ListTasks(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, p.Completed)
}

func TestSrv_GetTask(t *testing.T) {
	srv := newSession()

	task, err := srv.GetTask(context.Background(), "t5")
	require.NoError(t, err)
	assert.Equal(t, "Sleep by 10:30 PM", task.Title)

	_, err = srv.GetTask(context.Background(), "t9")
	require.True(t, errors.Is(err, storageinterface.ErrNotFound))
}

func TestSrv_Lessons(t *testing.T) {
	srv := newSession()
	ctx := context.Background()

	lessons, sum, err := srv.ListLessons(ctx)
	require.NoError(t, err)
	require.Len(t, lessons, 7)
	assert.Equal(t, progress.LessonSummary{Total: 7, Completed: 2, InProgress: 2, Upcoming: 3, Percentage: 29}, sum)

	l, err := srv.CompleteLesson(ctx, "l3")
	require.NoError(t, err)
	assert.Equal(t, entities.LessonCompleted, l.Status)

	l, err = srv.CompleteLesson(ctx, "l1")
	require.NoError(t, err)
	assert.Equal(t, entities.LessonCompleted, l.Status)

	_, sum, err = srv.ListLessons(ctx)
	require.NoError(t, err)
	assert.Equal(t, progress.LessonSummary{Total: 7, Completed: 3, InProgress: 1, Upcoming: 3, Percentage: 43}, sum)

	l, err = srv.GetLesson(ctx, "l3")
	require.NoError(t, err)
	assert.Equal(t, entities.LessonCompleted, l.Status)

	_, err = srv.CompleteLesson(ctx, "l8")
	require.True(t, errors.Is(err, storageinterface.ErrNotFound))

	_, err = srv.GetLesson(ctx, "l8")
	require.True(t, errors.Is(err, storageinterface.ErrNotFound))
}

func TestSrv_ListPosts(t *testing.T) {
	tt := []struct {
		filter entities.Tag
		ids    []string
		err    error
	}{
		{filter: "", ids: []string{"p1", "p2", "p3", "p4", "p5", "p6"}},
		{filter: entities.TagAll, ids: []string{"p1", "p2", "p3", "p4", "p5", "p6"}},
		{filter: entities.TagPregnancy, ids: []string{"p2", "p4"}},
		{filter: entities.TagMentalHealth, ids: []string{"p3", "p6"}},
		{filter: "Fitness", err: service.ErrInvalidInput},
	}

	srv := newSession()

	for i := range tt {
		tc := tt[i]

		t.Run(string(tc.filter), func(t *testing.T) {
			posts, err := srv.ListPosts(context.Background(), tc.filter)
			if tc.err != nil {
				require.True(t, errors.Is(err, tc.err))
				return
			}

			require.NoError(t, err)
			ids := make([]string, len(posts))
			for i, p := range posts {
				ids[i] = p.ID
			}
			assert.Equal(t, tc.ids, ids)
		})
	}
}

func TestSrv_AddPost(t *testing.T) {
	srv := newSession()
	ctx := context.Background()

	p, err := srv.AddPost(ctx, service.AddPostParams{Text: " Hello ", Tag: entities.TagMentalHealth})
	require.NoError(t, err)
	assert.Equal(t, &entities.Post{
		ID:        "p-1",
		Username:  "Sarah Johnson",
		Avatar:    "🌸",
		AvatarBg:  "#EDE0F7",
		Timestamp: "Just now",
		Text:      "Hello",
		Tag:       entities.TagMentalHealth,
	}, p)

	posts, err := srv.ListPosts(ctx, "")
	require.NoError(t, err)
	require.Len(t, posts, 7)
	assert.Equal(t, "p-1", posts[0].ID)
	assert.Equal(t, "p1", posts[1].ID)

	posts, err = srv.ListPosts(ctx, entities.TagMentalHealth)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "p-1", posts[0].ID)

	p, err = srv.AddPost(ctx, service.AddPostParams{Text: "no tag"})
	require.NoError(t, err)
	assert.Equal(t, entities.TagAll, p.Tag)

	_, err = srv.AddPost(ctx, service.AddPostParams{Text: "  "})
	require.True(t, errors.Is(err, service.ErrInvalidInput))

	_, err = srv.AddPost(ctx, service.AddPostParams{Text: "x", Tag: "Fitness"})
	require.True(t, errors.Is(err, service.ErrInvalidInput))

	posts, err = srv.ListPosts(ctx, "")
	require.NoError(t, err)
	assert.Len(t, posts, 8)
}

func TestSrv_ToggleLike(t *testing.T) {
	srv := newSession()
	ctx := context.Background()

	p, err := srv.ToggleLike(ctx, "p1")
	require.NoError(t, err)
	assert.True(t, p.Liked)
	assert.Equal(t, 48, p.LikeCount)

	p, err = srv.ToggleLike(ctx, "p1")
	require.NoError(t, err)
	assert.False(t, p.Liked)
	assert.Equal(t, 47, p.LikeCount)

	p, err = srv.ToggleLike(ctx, "p2")
	require.NoError(t, err)
	assert.False(t, p.Liked)
	assert.Equal(t, 88, p.LikeCount)

	_, err = srv.ToggleLike(ctx, "p9")
	require.True(t, errors.Is(err, storageinterface.ErrNotFound))
}

func TestSrv_ToggleLike_NoFloor(t *testing.T) {
	ctrl := gomock.NewController(t)

	s := storage.NewMockStorage(ctrl)
	srv := New(s, seed.Default(), idgen.NewSequence())

	s.EXPECT().UpdatePost(gomock.Any(), "p1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, f func(p *entities.Post) error) (*entities.Post, error) {
			p := &entities.Post{ID: "p1", Liked: true, LikeCount: 0}
			return p, f(p)
		},
	)

	p, err := srv.ToggleLike(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, -1, p.LikeCount)
	assert.False(t, p.Liked)
}

func TestSrv_AddComment(t *testing.T) {
	srv := newSession()
	ctx := context.Background()

	p, err := srv.AddComment(ctx, "p1", " Same here ")
	require.NoError(t, err)
	require.Len(t, p.Comments, 3)
	assert.Equal(t, 3, p.CommentCount())
	assert.Equal(t, "c1", p.Comments[0].ID)
	assert.Equal(t, entities.Comment{
		ID:        "c-1",
		Username:  "Sarah Johnson",
		Avatar:    "🌸",
		AvatarBg:  "#EDE0F7",
		Text:      "Same here",
		Timestamp: "Just now",
	}, p.Comments[2])

	p, err = srv.AddComment(ctx, "p4", "First!")
	require.NoError(t, err)
	assert.Equal(t, 1, p.CommentCount())

	_, err = srv.AddComment(ctx, "p1", "   ")
	require.True(t, errors.Is(err, service.ErrInvalidInput))

	_, err = srv.AddComment(ctx, "p9", "hello")
	require.True(t, errors.Is(err, storageinterface.ErrNotFound))

	p, err = srv.GetPost(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 3, p.CommentCount())
}

func TestSrv_GetCategory(t *testing.T) {
	srv := newSession()
	ctx := context.Background()

	d, err := srv.GetCategory(ctx, "sleep-fertility")
	require.NoError(t, err)
	assert.Equal(t, "Sleep & Fertility", d.Category.Title)
	require.Len(t, d.RelatedLessons, 3)
	assert.Equal(t, "l1", d.RelatedLessons[0].ID)
	assert.Equal(t, "l3", d.RelatedLessons[1].ID)
	assert.Equal(t, "l7", d.RelatedLessons[2].ID)
	require.Len(t, d.Articles, 3)
	assert.Equal(t, "a1", d.Articles[0].ID)

	_, err = srv.CompleteLesson(ctx, "l7")
	require.NoError(t, err)
	d, err = srv.GetCategory(ctx, "sleep-fertility")
	require.NoError(t, err)
	assert.Equal(t, entities.LessonCompleted, d.RelatedLessons[2].Status)

	_, err = srv.GetCategory(ctx, "gardening")
	require.True(t, errors.Is(err, storageinterface.ErrNotFound))
}

func TestSrv_Catalog(t *testing.T) {
	srv := newSession()
	ctx := context.Background()

	assert.Len(t, srv.ListCategories(ctx, ""), 4)
	assert.Len(t, srv.ListCategories(ctx, "nutri"), 1)
	assert.Len(t, srv.ListArticles(ctx, "healthy-habits"), 2)

	st := srv.Styles(ctx)
	assert.Len(t, st.TagColors, 3)
	assert.Len(t, st.StatusStyles, 3)
	assert.Len(t, st.Icons, 10)
	assert.Len(t, st.TaskCategories, 4)
}

func TestSrv_Home(t *testing.T) {
	srv := newSession()
	ctx := context.Background()

	h, err := srv.Home(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 38, h.WellnessScore)
	assert.Equal(t, 8, h.Tasks.Total)
	assert.Equal(t, "daily-1", h.Recommendation.ID)
	assert.Len(t, h.Moods, 3)
	assert.Len(t, h.Categories, 4)

	_, err = srv.ToggleTask(ctx, "t3")
	require.NoError(t, err)

	h, err = srv.Home(ctx, "activity")
	require.NoError(t, err)
	assert.Equal(t, 50, h.WellnessScore)
	require.Len(t, h.Categories, 1)
	assert.Equal(t, "physical-activity", h.Categories[0].ID)
}

func TestSrv_Reset(t *testing.T) {
	srv := newSession()
	ctx := context.Background()

	_, err := srv.AddTask(ctx, service.AddTaskParams{Title: "x"})
	require.NoError(t, err)
	_, err = srv.ToggleLike(ctx, "p1")
	require.NoError(t, err)
	_, err = srv.CompleteLesson(ctx, "l7")
	require.NoError(t, err)

	require.NoError(t, srv.Reset(ctx))

	tasks, _, err := srv.ListTasks(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 8)

	p, err := srv.GetPost(ctx, "p1")
	require.NoError(t, err)
	assert.False(t, p.Liked)
	assert.Equal(t, 47, p.LikeCount)

	l, err := srv.GetLesson(ctx, "l7")
	require.NoError(t, err)
	assert.Equal(t, entities.LessonNotStarted, l.Status)
}

func TestSrv_Reset_Error(t *testing.T) {
	ctrl := gomock.NewController(t)

	s := storage.NewMockStorage(ctrl)
	srv := New(s, seed.Default(), idgen.NewSequence())

	s.EXPECT().Reset(gomock.Any(), gomock.Any()).Return(context.Canceled)
	require.True(t, errors.Is(srv.Reset(context.Background()), context.Canceled))
}
