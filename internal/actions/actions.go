// Package actions contains reducer-style session actions dispatched against the service.
package actions

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/wellness-hub/wellness/internal/entities"
	"github.com/wellness-hub/wellness/internal/service"
)

var log = logrus.WithField("package", "actions")

var validate = validator.New() // nolint:gochecknoglobals

// Type ...
type Type string

const (
	// AddTask ...
	AddTask Type = "add_task"
	// ToggleTask ...
	ToggleTask Type = "toggle_task"
	// CompleteLesson ...
	CompleteLesson Type = "complete_lesson"
	// AddPost ...
	AddPost Type = "add_post"
	// ToggleLike ...
	ToggleLike Type = "toggle_like"
	// AddComment ...
	AddComment Type = "add_comment"
	// Reset ...
	Reset Type = "reset"
)

// Action is a single state transition. ID addresses the task, lesson or post it applies to.
type Action struct {
	Type     Type         `json:"type" validate:"required,oneof=add_task toggle_task complete_lesson add_post toggle_like add_comment reset"`
	ID       string       `json:"id,omitempty" validate:"required_if=Type toggle_task,required_if=Type complete_lesson,required_if=Type toggle_like,required_if=Type add_comment"`
	Title    string       `json:"title,omitempty"`
	Category string       `json:"category,omitempty"`
	Icon     string       `json:"icon,omitempty"`
	Text     string       `json:"text,omitempty"`
	Tag      entities.Tag `json:"tag,omitempty"`
}

// Result holds the record changed by an action. Reset leaves it empty.
type Result struct {
	Task   *entities.Task
	Lesson *entities.Lesson
	Post   *entities.Post
}

// Apply dispatches a against s.
func Apply(ctx context.Context, s service.Service, a Action) (Result, error) {
	if err := validate.Struct(a); err != nil {
		return Result{}, fmt.Errorf("%w: %s", service.ErrInvalidInput, err.Error())
	}

	var (
		r   Result
		err error
	)

	switch a.Type {
	case AddTask:
		r.Task, err = s.AddTask(ctx, service.AddTaskParams{Title: a.Title, Category: a.Category, Icon: a.Icon})
	case ToggleTask:
		r.Task, err = s.ToggleTask(ctx, a.ID)
	case CompleteLesson:
		r.Lesson, err = s.CompleteLesson(ctx, a.ID)
	case AddPost:
		r.Post, err = s.AddPost(ctx, service.AddPostParams{Text: a.Text, Tag: a.Tag})
	case ToggleLike:
		r.Post, err = s.ToggleLike(ctx, a.ID)
	case AddComment:
		r.Post, err = s.AddComment(ctx, a.ID, a.Text)
	case Reset:
		err = s.Reset(ctx)
	default:
		return Result{}, fmt.Errorf("%w: unknown action %q", service.ErrInvalidInput, a.Type)
	}

	if err != nil {
		return Result{}, fmt.Errorf("failed to apply %s: %w", a.Type, err)
	}

	log.WithField("type", a.Type).WithField("id", a.ID).Debug("action applied")

	return r, nil
}
