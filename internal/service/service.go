// Package service contains interface for service business-logic.
package service

import (
	"context"
	"errors"

	"github.com/wellness-hub/wellness/internal/entities"
	"github.com/wellness-hub/wellness/internal/progress"
)

//go:generate mockgen -destination=./mock/service.go -package=mock -source=service.go

// ErrInvalidInput is returned when a request is rejected without changing the state.
var ErrInvalidInput = errors.New("invalid input")

// TimestampJustNow is the display timestamp of posts and comments created in a session.
const TimestampJustNow = "Just now"

// Service ...
type Service interface {
	ListTasks(ctx context.Context) ([]*entities.Task, progress.TaskProgress, error)
	GetTask(ctx context.Context, id string) (*entities.Task, error)
	AddTask(ctx context.Context, p AddTaskParams) (*entities.Task, error)
	ToggleTask(ctx context.Context, id string) (*entities.Task, error)

	ListLessons(ctx context.Context) ([]*entities.Lesson, progress.LessonSummary, error)
	GetLesson(ctx context.Context, id string) (*entities.Lesson, error)
	CompleteLesson(ctx context.Context, id string) (*entities.Lesson, error)

	ListPosts(ctx context.Context, filter entities.Tag) ([]*entities.Post, error)
	GetPost(ctx context.Context, id string) (*entities.Post, error)
	AddPost(ctx context.Context, p AddPostParams) (*entities.Post, error)
	ToggleLike(ctx context.Context, id string) (*entities.Post, error)
	AddComment(ctx context.Context, postID, text string) (*entities.Post, error)

	ListCategories(ctx context.Context, query string) []entities.Category
	GetCategory(ctx context.Context, id string) (*CategoryDetail, error)
	ListArticles(ctx context.Context, categoryID string) []entities.Article
	Styles(ctx context.Context) *Styles
	Home(ctx context.Context, query string) (*Home, error)

	Reset(ctx context.Context) error
}

// AddTaskParams ...
type AddTaskParams struct {
	Title    string
	Category string
	Icon     string
}

// AddPostParams ...
type AddPostParams struct {
	Text string
	Tag  entities.Tag
}

// CategoryDetail joins a category with its lessons and articles.
type CategoryDetail struct {
	Category       entities.Category
	RelatedLessons []*entities.Lesson
	Articles       []entities.Article
}

// Styles is display configuration of tags, lesson statuses and task icons.
type Styles struct {
	TagColors      []entities.Style
	StatusStyles   []entities.Style
	Icons          []entities.IconOption
	TaskCategories []string
}

// Home is the home dashboard.
type Home struct {
	WellnessScore  int
	Tasks          progress.TaskProgress
	Recommendation entities.Recommendation
	Moods          []entities.Mood
	Categories     []entities.Category
}
