package actions

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wellness-hub/wellness/internal/entities"
	"github.com/wellness-hub/wellness/internal/service"
	"github.com/wellness-hub/wellness/internal/service/mock"
)

func TestApply(t *testing.T) {
	task := &entities.Task{ID: "t-1"}
	lesson := &entities.Lesson{ID: "l1"}
	post := &entities.Post{ID: "p1"}

	tt := []struct {
		name   string
		action Action
		expect func(s *mock.MockService)
		want   Result
	}{
		{
			name:   "add_task",
			action: Action{Type: AddTask, Title: "walk", Category: "Physical Activity", Icon: "🏃‍♀️"},
			expect: func(s *mock.MockService) {
				s.EXPECT().AddTask(gomock.Any(), service.AddTaskParams{Title: "walk", Category: "Physical Activity", Icon: "🏃‍♀️"}).Return(task, nil)
			},
			want: Result{Task: task},
		},
		{
			name:   "toggle_task",
			action: Action{Type: ToggleTask, ID: "t1"},
			expect: func(s *mock.MockService) {
				s.EXPECT().ToggleTask(gomock.Any(), "t1").Return(task, nil)
			},
			want: Result{Task: task},
		},
		{
			name:   "complete_lesson",
			action: Action{Type: CompleteLesson, ID: "l1"},
			expect: func(s *mock.MockService) {
				s.EXPECT().CompleteLesson(gomock.Any(), "l1").Return(lesson, nil)
			},
			want: Result{Lesson: lesson},
		},
		{
			name:   "add_post",
			action: Action{Type: AddPost, Text: "hi", Tag: entities.TagPregnancy},
			expect: func(s *mock.MockService) {
				s.EXPECT().AddPost(gomock.Any(), service.AddPostParams{Text: "hi", Tag: entities.TagPregnancy}).Return(post, nil)
			},
			want: Result{Post: post},
		},
		{
			name:   "toggle_like",
			action: Action{Type: ToggleLike, ID: "p1"},
			expect: func(s *mock.MockService) {
				s.EXPECT().ToggleLike(gomock.Any(), "p1").Return(post, nil)
			},
			want: Result{Post: post},
		},
		{
			name:   "add_comment",
			action: Action{Type: AddComment, ID: "p1", Text: "nice"},
			expect: func(s *mock.MockService) {
				s.EXPECT().AddComment(gomock.Any(), "p1", "nice").Return(post, nil)
			},
			want: Result{Post: post},
		},
		{
			name:   "reset",
			action: Action{Type: Reset},
			expect: func(s *mock.MockService) {
				s.EXPECT().Reset(gomock.Any()).Return(nil)
			},
		},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			s := mock.NewMockService(ctrl)
			tc.expect(s)

			r, err := Apply(context.Background(), s, tc.action)
			require.NoError(t, err)
			assert.Equal(t, tc.want, r)
		})
	}
}

func TestApply_Invalid(t *testing.T) {
	tt := []struct {
		name   string
		action Action
	}{
		{name: "empty type", action: Action{}},
		{name: "unknown type", action: Action{Type: "delete_task", ID: "t1"}},
		{name: "toggle without id", action: Action{Type: ToggleTask}},
		{name: "comment without id", action: Action{Type: AddComment, Text: "x"}},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			s := mock.NewMockService(ctrl)

			_, err := Apply(context.Background(), s, tc.action)
			require.True(t, errors.Is(err, service.ErrInvalidInput))
		})
	}
}

func TestApply_ServiceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := mock.NewMockService(ctrl)

	s.EXPECT().ToggleTask(gomock.Any(), "t1").Return(nil, context.Canceled)

	_, err := Apply(context.Background(), s, Action{Type: ToggleTask, ID: "t1"})
	require.True(t, errors.Is(err, context.Canceled))
}
