package seed

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wellness-hub/wellness/internal/entities"
)

func TestDefault(t *testing.T) {
	s := Default()

	require.Len(t, s.Tasks, 8)
	require.Len(t, s.Lessons, 7)
	require.Len(t, s.Posts, 6)
	require.Len(t, s.Categories, 4)
	require.Len(t, s.Articles, 10)
	require.Len(t, s.Moods, 3)
	require.Len(t, s.TagStyles, 3)
	require.Len(t, s.StatusStyles, 3)

	assert.Equal(t, entities.Task{
		ID:        "t1",
		Title:     "Drink 8 glasses of water",
		Category:  "Nutrition",
		Icon:      "💧",
		IconBg:    "#D4E8F7",
		Completed: true,
	}, s.Tasks[0])

	assert.Equal(t, "sleep-fertility", s.Lessons[0].CategoryID)
	assert.Equal(t, entities.LessonCompleted, s.Lessons[0].Status)
	assert.Equal(t, 4, s.Lessons[6].WeekNumber)

	assert.Equal(t, entities.TagPregnancy, s.Posts[1].Tag)
	assert.True(t, s.Posts[1].Liked)
	assert.Equal(t, 89, s.Posts[1].LikeCount)
	assert.Equal(t, 2, s.Posts[0].CommentCount())
	assert.Zero(t, s.Posts[3].CommentCount())

	assert.Equal(t, "Sarah Johnson", s.Author.Username)
	assert.Equal(t, "#EDE0F7", s.DefaultIconBg)
	assert.Equal(t, []string{"Nutrition", "Physical Activity", "Healthy Habits", "Sleep & Fertility"}, s.TaskCategories)
	assert.Equal(t, "daily-1", s.Recommendation.ID)
}

func TestDefault_CommentIDsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range Default().Posts {
		for _, c := range p.Comments {
			assert.False(t, seen[c.ID], c.ID)
			seen[c.ID] = true
		}
	}
	assert.Len(t, seen, 5)
}

func TestSeed_Clone(t *testing.T) {
	s := Default()
	c := s.Clone()

	c.Tasks[0].Completed = false
	c.Lessons[5].Status = entities.LessonCompleted
	c.Posts[0].Comments[0].Text = "changed"
	c.Posts[0].LikeCount = 0

	assert.True(t, s.Tasks[0].Completed)
	assert.Equal(t, entities.LessonNotStarted, s.Lessons[5].Status)
	assert.NotEqual(t, "changed", s.Posts[0].Comments[0].Text)
	assert.Equal(t, 47, s.Posts[0].LikeCount)
}

func TestLoad_Errors(t *testing.T) {
	base := string(defaultSeed)

	tt := []struct {
		name string
		data string
		err  string
	}{
		{
			name: "malformed",
			data: "tasks: [",
			err:  "failed to decode seed",
		},
		{
			name: "unknown field",
			data: base + "\nunknown: 1\n",
			err:  "failed to decode seed",
		},
		{
			name: "bad color",
			data: strings.Replace(base, `default_icon_bg: "#EDE0F7"`, `default_icon_bg: "purple"`, 1),
			err:  "invalid seed",
		},
		{
			name: "bad status",
			data: strings.Replace(base, "status: in-progress", "status: started", 1),
			err:  "invalid seed",
		},
		{
			name: "duplicate task",
			data: strings.Replace(base, "{ id: t2,", "{ id: t1,", 1),
			err:  "duplicate task id t1",
		},
		{
			name: "unknown lesson category",
			data: strings.Replace(base, "category_id: nutrition", "category_id: gardening", 1),
			err:  "unknown category gardening",
		},
		{
			name: "unknown article category",
			data: strings.Replace(base, "tag: healthy-habits }", "tag: cooking }", 1),
			err:  "unknown category cooking",
		},
	}

	for i := range tt {
		tc := tt[i]
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tc.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, defaultSeed, 0o600))

	s, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), s)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestSeed_Snapshot(t *testing.T) {
	s := Default()
	snap := s.Snapshot()

	require.Len(t, snap.Tasks, 8)
	require.Len(t, snap.Lessons, 7)
	require.Len(t, snap.Posts, 6)

	snap.Posts[0].Comments[0].Text = "changed"
	assert.NotEqual(t, "changed", s.Posts[0].Comments[0].Text)
}
