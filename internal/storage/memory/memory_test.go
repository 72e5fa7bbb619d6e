package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wellness-hub/wellness/internal/entities"
	"github.com/wellness-hub/wellness/internal/storage"
	"github.com/wellness-hub/wellness/internal/storage/storagetest"
)

func TestMemory(t *testing.T) {
	storagetest.Run(t, func(_ *testing.T, s storage.Snapshot) storage.Storage {
		return New(s)
	})
}

func TestNew_DoesNotAliasSnapshot(t *testing.T) {
	snap := storagetest.Snapshot()
	s := New(snap)

	snap.Tasks[0].Title = "changed"
	snap.Posts[0].Comments[0].Text = "changed"

	task, err := s.GetTask(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, "water", task.Title)

	p, err := s.GetPost(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "yes", p.Comments[0].Text)
}

func TestCreatePost_DoesNotAliasInput(t *testing.T) {
	s := New(storage.Snapshot{})

	p := &entities.Post{ID: "p-1", Comments: []entities.Comment{{ID: "c-1", Text: "a"}}}
	require.NoError(t, s.CreatePost(context.Background(), p))
	p.Comments[0].Text = "b"

	got, err := s.GetPost(context.Background(), "p-1")
	require.NoError(t, err)
	assert.Equal(t, "a", got.Comments[0].Text)
}
