// Package storage contains a storage interface.
package storage

import (
	"context"
	"fmt"

	"github.com/wellness-hub/wellness/internal/entities"
)

//go:generate mockgen -destination=./mock/storage.go -package=mock -source=storage.go

// ErrNotFound ...
var ErrNotFound = fmt.Errorf("not found")

// ErrAlreadyExists ...
var ErrAlreadyExists = fmt.Errorf("already exists")

// Storage keeps the mutable session collections.
// Update* methods apply f to a copy of the record and store it only if f returns nil.
type Storage interface {
	Ping(ctx context.Context) error
	Reset(ctx context.Context, s Snapshot) error

	ListTasks(ctx context.Context) ([]*entities.Task, error)
	GetTask(ctx context.Context, id string) (*entities.Task, error)
	CreateTask(ctx context.Context, t *entities.Task) error
	UpdateTask(ctx context.Context, id string, f func(t *entities.Task) error) (*entities.Task, error)

	ListLessons(ctx context.Context) ([]*entities.Lesson, error)
	GetLesson(ctx context.Context, id string) (*entities.Lesson, error)
	UpdateLesson(ctx context.Context, id string, f func(l *entities.Lesson) error) (*entities.Lesson, error)

	// ListPosts returns posts newest first. Nil tag means every post.
	ListPosts(ctx context.Context, tag *entities.Tag) ([]*entities.Post, error)
	GetPost(ctx context.Context, id string) (*entities.Post, error)
	// CreatePost puts p in front of existing posts.
	CreatePost(ctx context.Context, p *entities.Post) error
	UpdatePost(ctx context.Context, id string, f func(p *entities.Post) error) (*entities.Post, error)
}

// Snapshot is a full set of session collections in display order.
type Snapshot struct {
	Tasks   []entities.Task
	Lessons []entities.Lesson
	Posts   []entities.Post
}
