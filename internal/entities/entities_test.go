package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPost_Clone(t *testing.T) {
	p := Post{
		ID:       "p1",
		Comments: []Comment{{ID: "c1", Text: "one"}, {ID: "c2", Text: "two"}},
	}

	c := p.Clone()
	c.Comments[0].Text = "changed"
	c.Comments = append(c.Comments, Comment{ID: "c3"})

	require.Len(t, p.Comments, 2)
	assert.Equal(t, "one", p.Comments[0].Text)
	assert.Equal(t, 3, c.CommentCount())
	assert.Equal(t, 2, p.CommentCount())
}

func TestPost_CloneNilComments(t *testing.T) {
	c := Post{ID: "p1"}.Clone()
	assert.Nil(t, c.Comments)
	assert.Zero(t, c.CommentCount())
}

func TestTag_Valid(t *testing.T) {
	for _, v := range Tags {
		assert.True(t, v.Valid(), v)
	}
	assert.False(t, Tag("").Valid())
	assert.False(t, Tag("mental health").Valid())
}

func TestLessonStatus_Valid(t *testing.T) {
	for _, v := range LessonStatuses {
		assert.True(t, v.Valid(), v)
	}
	assert.False(t, LessonStatus("done").Valid())
}
