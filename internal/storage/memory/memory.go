// Package memory is implementation of storage interface backed by process memory.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/wellness-hub/wellness/internal/entities"
	"github.com/wellness-hub/wellness/internal/storage"
)

var log = logrus.WithField("layer", "storage").WithField("package", "memory")

type mem struct {
	mu sync.RWMutex

	tasks   []entities.Task
	lessons []entities.Lesson
	posts   []entities.Post
}

// New returns new instance of in-memory storage filled with s.
func New(s storage.Snapshot) storage.Storage {
	m := &mem{}
	m.load(s)

	return m
}

func (m *mem) load(s storage.Snapshot) {
	m.tasks = append([]entities.Task(nil), s.Tasks...)
	m.lessons = append([]entities.Lesson(nil), s.Lessons...)
	m.posts = make([]entities.Post, len(s.Posts))
	for i, v := range s.Posts {
		m.posts[i] = v.Clone()
	}
}

func (m *mem) Ping(_ context.Context) error {
	return nil
}

func (m *mem) Reset(_ context.Context, s storage.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.load(s)
	log.WithField("tasks", len(m.tasks)).
		WithField("lessons", len(m.lessons)).
		WithField("posts", len(m.posts)).
		Debug("storage reset")

	return nil
}

func (m *mem) ListTasks(_ context.Context) ([]*entities.Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*entities.Task, len(m.tasks))
	for i := range m.tasks {
		t := m.tasks[i]
		out[i] = &t
	}

	return out, nil
}

func (m *mem) GetTask(_ context.Context, id string) (*entities.Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i := m.taskIndex(id)
	if i < 0 {
		return nil, storage.ErrNotFound
	}
	t := m.tasks[i]

	return &t, nil
}

func (m *mem) CreateTask(_ context.Context, t *entities.Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.taskIndex(t.ID) >= 0 {
		return fmt.Errorf("task %s: %w", t.ID, storage.ErrAlreadyExists)
	}
	m.tasks = append(m.tasks, *t)

	return nil
}

func (m *mem) UpdateTask(_ context.Context, id string, f func(t *entities.Task) error) (*entities.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.taskIndex(id)
	if i < 0 {
		return nil, storage.ErrNotFound
	}

	t := m.tasks[i]
	if err := f(&t); err != nil {
		return nil, err
	}
	t.ID = id
	m.tasks[i] = t

	return &t, nil
}

func (m *mem) ListLessons(_ context.Context) ([]*entities.Lesson, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*entities.Lesson, len(m.lessons))
	for i := range m.lessons {
		l := m.lessons[i]
		out[i] = &l
	}

	return out, nil
}

func (m *mem) GetLesson(_ context.Context, id string) (*entities.Lesson, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i := m.lessonIndex(id)
	if i < 0 {
		return nil, storage.ErrNotFound
	}
	l := m.lessons[i]

	return &l, nil
}

func (m *mem) UpdateLesson(_ context.Context, id string, f func(l *entities.Lesson) error) (*entities.Lesson, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.lessonIndex(id)
	if i < 0 {
		return nil, storage.ErrNotFound
	}

	l := m.lessons[i]
	if err := f(&l); err != nil {
		return nil, err
	}
	l.ID = id
	m.lessons[i] = l

	return &l, nil
}

func (m *mem) ListPosts(_ context.Context, tag *entities.Tag) ([]*entities.Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*entities.Post, 0, len(m.posts))
	for i := range m.posts {
		if tag != nil && m.posts[i].Tag != *tag {
			continue
		}
		p := m.posts[i].Clone()
		out = append(out, &p)
	}

	return out, nil
}

func (m *mem) GetPost(_ context.Context, id string) (*entities.Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i := m.postIndex(id)
	if i < 0 {
		return nil, storage.ErrNotFound
	}
	p := m.posts[i].Clone()

	return &p, nil
}

func (m *mem) CreatePost(_ context.Context, p *entities.Post) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.postIndex(p.ID) >= 0 {
		return fmt.Errorf("post %s: %w", p.ID, storage.ErrAlreadyExists)
	}

	posts := make([]entities.Post, 0, len(m.posts)+1)
	posts = append(posts, p.Clone())
	m.posts = append(posts, m.posts...)

	return nil
}

func (m *mem) UpdatePost(_ context.Context, id string, f func(p *entities.Post) error) (*entities.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.postIndex(id)
	if i < 0 {
		return nil, storage.ErrNotFound
	}

	p := m.posts[i].Clone()
	if err := f(&p); err != nil {
		return nil, err
	}
	p.ID = id
	m.posts[i] = p.Clone()

	return &p, nil
}

func (m *mem) taskIndex(id string) int {
	for i := range m.tasks {
		if m.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func (m *mem) lessonIndex(id string) int {
	for i := range m.lessons {
		if m.lessons[i].ID == id {
			return i
		}
	}
	return -1
}

func (m *mem) postIndex(id string) int {
	for i := range m.posts {
		if m.posts[i].ID == id {
			return i
		}
	}
	return -1
}
