// Package badger is implementation of storage interface on top of in-memory badger.
package badger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	badgerdb "github.com/dgraph-io/badger/v4"
	"github.com/sirupsen/logrus"

	"github.com/wellness-hub/wellness/internal/entities"
	"github.com/wellness-hub/wellness/internal/storage"
)

var log = logrus.WithField("layer", "storage").WithField("package", "badger")

const (
	taskPrefix   = "task:"
	lessonPrefix = "lesson:"
	postPrefix   = "post:"

	taskOrderKey   = "order:task"
	lessonOrderKey = "order:lesson"
	postOrderKey   = "order:post"
)

type kv struct {
	db *badgerdb.DB
	// mu serializes read-write transactions, concurrent commits of one session would conflict.
	mu *sync.Mutex
}

// Open opens an in-memory badger database. Nothing is written to disk.
func Open() (*badgerdb.DB, error) {
	db, err := badgerdb.Open(badgerdb.DefaultOptions("").WithInMemory(true).WithLogger(logger{log}))
	if err != nil {
		return nil, fmt.Errorf("failed to open badger: %w", err)
	}

	return db, nil
}

// New returns new instance of badger storage filled with s.
func New(db *badgerdb.DB, s storage.Snapshot) (storage.Storage, error) {
	k := kv{db: db, mu: &sync.Mutex{}}
	if err := k.Reset(context.Background(), s); err != nil {
		return nil, err
	}

	return k, nil
}

func (k kv) Ping(_ context.Context) error {
	if k.db.IsClosed() {
		return errors.New("badger is closed")
	}

	return nil
}

func (k kv) Reset(_ context.Context, s storage.Snapshot) error {
	return k.update(func(txn *badgerdb.Txn) error {
		for _, c := range []struct {
			orderKey string
			prefix   string
		}{
			{taskOrderKey, taskPrefix},
			{lessonOrderKey, lessonPrefix},
			{postOrderKey, postPrefix},
		} {
			ids, err := readOrder(txn, c.orderKey)
			if err != nil {
				return err
			}
			for _, id := range ids {
				if err := txn.Delete([]byte(c.prefix + id)); err != nil {
					return fmt.Errorf("failed to delete %s%s: %w", c.prefix, id, err)
				}
			}
		}

		tasks := make([]string, 0, len(s.Tasks))
		for i := range s.Tasks {
			if err := set(txn, taskPrefix+s.Tasks[i].ID, s.Tasks[i]); err != nil {
				return err
			}
			tasks = append(tasks, s.Tasks[i].ID)
		}

		lessons := make([]string, 0, len(s.Lessons))
		for i := range s.Lessons {
			if err := set(txn, lessonPrefix+s.Lessons[i].ID, s.Lessons[i]); err != nil {
				return err
			}
			lessons = append(lessons, s.Lessons[i].ID)
		}

		posts := make([]string, 0, len(s.Posts))
		for i := range s.Posts {
			if err := set(txn, postPrefix+s.Posts[i].ID, s.Posts[i]); err != nil {
				return err
			}
			posts = append(posts, s.Posts[i].ID)
		}

		if err := set(txn, taskOrderKey, tasks); err != nil {
			return err
		}
		if err := set(txn, lessonOrderKey, lessons); err != nil {
			return err
		}
		return set(txn, postOrderKey, posts)
	})
}

func (k kv) ListTasks(_ context.Context) ([]*entities.Task, error) {
	var out []*entities.Task
	err := k.db.View(func(txn *badgerdb.Txn) error {
		var err error
		out, err = list[entities.Task](txn, taskOrderKey, taskPrefix)
		return err
	})

	return out, err
}

func (k kv) GetTask(_ context.Context, id string) (*entities.Task, error) {
	var t entities.Task
	if err := k.db.View(func(txn *badgerdb.Txn) error {
		return get(txn, taskPrefix+id, &t)
	}); err != nil {
		return nil, err
	}

	return &t, nil
}

func (k kv) CreateTask(_ context.Context, t *entities.Task) error {
	return k.update(func(txn *badgerdb.Txn) error {
		return create(txn, taskOrderKey, taskPrefix, t.ID, t, false)
	})
}

func (k kv) UpdateTask(_ context.Context, id string, f func(t *entities.Task) error) (*entities.Task, error) {
	var out *entities.Task
	if err := k.update(func(txn *badgerdb.Txn) error {
		var err error
		out, err = modify(txn, taskPrefix+id, func(t *entities.Task) error {
			if err := f(t); err != nil {
				return err
			}
			t.ID = id
			return nil
		})
		return err
	}); err != nil {
		return nil, err
	}

	return out, nil
}

func (k kv) ListLessons(_ context.Context) ([]*entities.Lesson, error) {
	var out []*entities.Lesson
	err := k.db.View(func(txn *badgerdb.Txn) error {
		var err error
		out, err = list[entities.Lesson](txn, lessonOrderKey, lessonPrefix)
		return err
	})

	return out, err
}

func (k kv) GetLesson(_ context.Context, id string) (*entities.Lesson, error) {
	var l entities.Lesson
	if err := k.db.View(func(txn *badgerdb.Txn) error {
		return get(txn, lessonPrefix+id, &l)
	}); err != nil {
		return nil, err
	}

	return &l, nil
}

func (k kv) UpdateLesson(_ context.Context, id string, f func(l *entities.Lesson) error) (*entities.Lesson, error) {
	var out *entities.Lesson
	if err := k.update(func(txn *badgerdb.Txn) error {
		var err error
		out, err = modify(txn, lessonPrefix+id, func(l *entities.Lesson) error {
			if err := f(l); err != nil {
				return err
			}
			l.ID = id
			return nil
		})
		return err
	}); err != nil {
		return nil, err
	}

	return out, nil
}

func (k kv) ListPosts(_ context.Context, tag *entities.Tag) ([]*entities.Post, error) {
	var out []*entities.Post
	err := k.db.View(func(txn *badgerdb.Txn) error {
		posts, err := list[entities.Post](txn, postOrderKey, postPrefix)
		if err != nil {
			return err
		}

		out = make([]*entities.Post, 0, len(posts))
		for _, p := range posts {
			if tag == nil || p.Tag == *tag {
				out = append(out, p)
			}
		}
		return nil
	})

	return out, err
}

func (k kv) GetPost(_ context.Context, id string) (*entities.Post, error) {
	var p entities.Post
	if err := k.db.View(func(txn *badgerdb.Txn) error {
		return get(txn, postPrefix+id, &p)
	}); err != nil {
		return nil, err
	}

	return &p, nil
}

func (k kv) CreatePost(_ context.Context, p *entities.Post) error {
	return k.update(func(txn *badgerdb.Txn) error {
		return create(txn, postOrderKey, postPrefix, p.ID, p, true)
	})
}

func (k kv) UpdatePost(_ context.Context, id string, f func(p *entities.Post) error) (*entities.Post, error) {
	var out *entities.Post
	if err := k.update(func(txn *badgerdb.Txn) error {
		var err error
		out, err = modify(txn, postPrefix+id, func(p *entities.Post) error {
			if err := f(p); err != nil {
				return err
			}
			p.ID = id
			return nil
		})
		return err
	}); err != nil {
		return nil, err
	}

	return out, nil
}

// update runs f in a read-write transaction, one writer at a time.
func (k kv) update(f func(txn *badgerdb.Txn) error) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if err := k.db.Update(f); err != nil {
		if errors.Is(err, badgerdb.ErrConflict) {
			return fmt.Errorf("failed to commit transaction: %w", err)
		}
		return err
	}

	return nil
}

func get(txn *badgerdb.Txn, key string, v interface{}) error {
	item, err := txn.Get([]byte(key))
	if errors.Is(err, badgerdb.ErrKeyNotFound) {
		return storage.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to get %s: %w", key, err)
	}

	return item.Value(func(val []byte) error {
		if err := json.Unmarshal(val, v); err != nil {
			return fmt.Errorf("failed to unmarshal %s: %w", key, err)
		}
		return nil
	})
}

func set(txn *badgerdb.Txn, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}

	if err := txn.Set([]byte(key), data); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	return nil
}

func readOrder(txn *badgerdb.Txn, key string) ([]string, error) {
	var ids []string
	if err := get(txn, key, &ids); err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	return ids, nil
}

func list[T any](txn *badgerdb.Txn, orderKey, prefix string) ([]*T, error) {
	ids, err := readOrder(txn, orderKey)
	if err != nil {
		return nil, err
	}

	out := make([]*T, 0, len(ids))
	for _, id := range ids {
		var v T
		if err := get(txn, prefix+id, &v); err != nil {
			return nil, fmt.Errorf("failed to read %s%s: %w", prefix, id, err)
		}
		out = append(out, &v)
	}

	return out, nil
}

func create(txn *badgerdb.Txn, orderKey, prefix, id string, v interface{}, front bool) error {
	_, err := txn.Get([]byte(prefix + id))
	switch {
	case err == nil:
		return fmt.Errorf("%s%s: %w", prefix, id, storage.ErrAlreadyExists)
	case !errors.Is(err, badgerdb.ErrKeyNotFound):
		return fmt.Errorf("failed to get %s%s: %w", prefix, id, err)
	}

	ids, err := readOrder(txn, orderKey)
	if err != nil {
		return err
	}

	if front {
		ids = append([]string{id}, ids...)
	} else {
		ids = append(ids, id)
	}

	if err := set(txn, prefix+id, v); err != nil {
		return err
	}

	return set(txn, orderKey, ids)
}

func modify[T any](txn *badgerdb.Txn, key string, f func(v *T) error) (*T, error) {
	var v T
	if err := get(txn, key, &v); err != nil {
		return nil, err
	}

	if err := f(&v); err != nil {
		return nil, err
	}

	if err := set(txn, key, &v); err != nil {
		return nil, err
	}

	return &v, nil
}

type logger struct {
	*logrus.Entry
}

// Infof is lowered to debug, badger is chatty on startup.
func (l logger) Infof(format string, args ...interface{}) {
	l.Entry.Debugf(format, args...)
}
