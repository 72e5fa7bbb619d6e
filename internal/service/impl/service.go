// Package impl is implementation of service interface.
package impl

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/wellness-hub/wellness/internal/catalog"
	"github.com/wellness-hub/wellness/internal/entities"
	"github.com/wellness-hub/wellness/internal/idgen"
	"github.com/wellness-hub/wellness/internal/progress"
	"github.com/wellness-hub/wellness/internal/seed"
	"github.com/wellness-hub/wellness/internal/service"
	"github.com/wellness-hub/wellness/internal/storage"
)

var log = logrus.WithField("layer", "service").WithField("package", "impl")

// service ...
type srv struct {
	s    storage.Storage
	c    *catalog.Catalog
	seed *seed.Seed
	ids  idgen.Provider
}

// New creates new instance of service.
func New(s storage.Storage, sd *seed.Seed, ids idgen.Provider) service.Service {
	return srv{
		s:    s,
		c:    catalog.New(sd),
		seed: sd,
		ids:  ids,
	}
}

func (s srv) ListTasks(ctx context.Context) ([]*entities.Task, progress.TaskProgress, error) {
	tasks, err := s.s.ListTasks(ctx)
	if err != nil {
		return nil, progress.TaskProgress{}, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, progress.Tasks(derefTasks(tasks)), nil
}

func (s srv) GetTask(ctx context.Context, id string) (*entities.Task, error) {
	t, err := s.s.GetTask(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get task %s: %w", id, err)
	}

	return t, nil
}

func (s srv) AddTask(ctx context.Context, p service.AddTaskParams) (*entities.Task, error) {
	title := strings.TrimSpace(p.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is empty", service.ErrInvalidInput)
	}

	category := strings.TrimSpace(p.Category)
	if category == "" {
		category = s.c.DefaultTaskCategory()
	}

	icon := strings.TrimSpace(p.Icon)
	if icon == "" {
		icon = s.c.DefaultIcon()
	}

	t := &entities.Task{
		ID:       s.ids.NewID("t"),
		Title:    title,
		Category: category,
		Icon:     icon,
		IconBg:   s.c.IconBackground(icon),
	}

	if err := s.s.CreateTask(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	log.WithField("id", t.ID).Debug("task added")

	return t, nil
}

func (s srv) ToggleTask(ctx context.Context, id string) (*entities.Task, error) {
	t, err := s.s.UpdateTask(ctx, id, func(t *entities.Task) error {
		t.Completed = !t.Completed
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to toggle task %s: %w", id, err)
	}

	log.WithField("id", id).WithField("completed", t.Completed).Debug("task toggled")

	return t, nil
}

func (s srv) ListLessons(ctx context.Context) ([]*entities.Lesson, progress.LessonSummary, error) {
	lessons, err := s.s.ListLessons(ctx)
	if err != nil {
		return nil, progress.LessonSummary{}, fmt.Errorf("failed to list lessons: %w", err)
	}

	return lessons, progress.Lessons(derefLessons(lessons)), nil
}

func (s srv) GetLesson(ctx context.Context, id string) (*entities.Lesson, error) {
	l, err := s.s.GetLesson(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get lesson %s: %w", id, err)
	}

	return l, nil
}

func (s srv) CompleteLesson(ctx context.Context, id string) (*entities.Lesson, error) {
	l, err := s.s.UpdateLesson(ctx, id, func(l *entities.Lesson) error {
		l.Status = entities.LessonCompleted
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to complete lesson %s: %w", id, err)
	}

	log.WithField("id", id).Debug("lesson completed")

	return l, nil
}

func (s srv) ListPosts(ctx context.Context, filter entities.Tag) ([]*entities.Post, error) {
	var tag *entities.Tag
	switch {
	case filter == "" || filter == entities.TagAll:
	case filter.Valid():
		tag = &filter
	default:
		return nil, fmt.Errorf("%w: unknown tag %q", service.ErrInvalidInput, filter)
	}

	posts, err := s.s.ListPosts(ctx, tag)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return posts, nil
}

func (s srv) GetPost(ctx context.Context, id string) (*entities.Post, error) {
	p, err := s.s.GetPost(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get post %s: %w", id, err)
	}

	return p, nil
}

func (s srv) AddPost(ctx context.Context, p service.AddPostParams) (*entities.Post, error) {
	text := strings.TrimSpace(p.Text)
	if text == "" {
		return nil, fmt.Errorf("%w: text is empty", service.ErrInvalidInput)
	}

	tag := p.Tag
	if tag == "" {
		tag = entities.TagAll
	}
	if !tag.Valid() {
		return nil, fmt.Errorf("%w: unknown tag %q", service.ErrInvalidInput, tag)
	}

	post := &entities.Post{
		ID:        s.ids.NewID("p"),
		Username:  s.seed.Author.Username,
		Avatar:    s.seed.Author.Avatar,
		AvatarBg:  s.seed.Author.AvatarBg,
		Timestamp: service.TimestampJustNow,
		Text:      text,
		Tag:       tag,
	}

	if err := s.s.CreatePost(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	log.WithField("id", post.ID).WithField("tag", tag).Debug("post added")

	return post, nil
}

func (s srv) ToggleLike(ctx context.Context, id string) (*entities.Post, error) {
	p, err := s.s.UpdatePost(ctx, id, func(p *entities.Post) error {
		if p.Liked {
			p.LikeCount--
		} else {
			p.LikeCount++
		}
		p.Liked = !p.Liked
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to toggle like of post %s: %w", id, err)
	}

	log.WithField("id", id).WithField("liked", p.Liked).Debug("like toggled")

	return p, nil
}

func (s srv) AddComment(ctx context.Context, postID, text string) (*entities.Post, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: text is empty", service.ErrInvalidInput)
	}

	id := s.ids.NewID("c")
	p, err := s.s.UpdatePost(ctx, postID, func(p *entities.Post) error {
		p.Comments = append(p.Comments, entities.Comment{
			ID:        id,
			Username:  s.seed.Author.Username,
			Avatar:    s.seed.Author.Avatar,
			AvatarBg:  s.seed.Author.AvatarBg,
			Text:      text,
			Timestamp: service.TimestampJustNow,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add comment to post %s: %w", postID, err)
	}

	log.WithField("post", postID).WithField("id", id).Debug("comment added")

	return p, nil
}

func (s srv) ListCategories(_ context.Context, query string) []entities.Category {
	return s.c.ListCategories(query)
}

func (s srv) GetCategory(ctx context.Context, id string) (*service.CategoryDetail, error) {
	c, ok := s.c.GetCategory(id)
	if !ok {
		return nil, fmt.Errorf("category %s: %w", id, storage.ErrNotFound)
	}

	lessons, err := s.s.ListLessons(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list lessons: %w", err)
	}

	related := s.c.RelatedLessons(id, derefLessons(lessons))
	out := &service.CategoryDetail{
		Category:       c,
		RelatedLessons: make([]*entities.Lesson, len(related)),
		Articles:       s.c.ListArticles(id),
	}
	for i := range related {
		out.RelatedLessons[i] = &related[i]
	}

	return out, nil
}

func (s srv) ListArticles(_ context.Context, categoryID string) []entities.Article {
	return s.c.ListArticles(categoryID)
}

func (s srv) Styles(_ context.Context) *service.Styles {
	return &service.Styles{
		TagColors:      s.c.TagColors(),
		StatusStyles:   s.c.StatusStyles(),
		Icons:          s.c.Icons(),
		TaskCategories: s.c.TaskCategories(),
	}
}

func (s srv) Home(ctx context.Context, query string) (*service.Home, error) {
	tasks, err := s.s.ListTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	p := progress.Tasks(derefTasks(tasks))

	return &service.Home{
		WellnessScore:  p.Percentage,
		Tasks:          p,
		Recommendation: s.c.Recommendation(),
		Moods:          s.c.Moods(),
		Categories:     s.c.ListCategories(query),
	}, nil
}

func (s srv) Reset(ctx context.Context) error {
	if err := s.s.Reset(ctx, s.seed.Snapshot()); err != nil {
		return fmt.Errorf("failed to reset storage: %w", err)
	}

	log.Info("session reset")

	return nil
}

func derefTasks(in []*entities.Task) []entities.Task {
	out := make([]entities.Task, len(in))
	for i, v := range in {
		out[i] = *v
	}
	return out
}

func derefLessons(in []*entities.Lesson) []entities.Lesson {
	out := make([]entities.Lesson, len(in))
	for i, v := range in {
		out[i] = *v
	}
	return out
}
