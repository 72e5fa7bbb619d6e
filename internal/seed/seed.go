// Package seed contains static seed data of the wellness session.
package seed

import (
	"bytes"
	_ "embed" // for seed.yaml
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/wellness-hub/wellness/internal/entities"
	"github.com/wellness-hub/wellness/internal/storage"
)

//go:embed seed.yaml
var defaultSeed []byte

// Seed is a complete snapshot of the initial session state and reference data.
type Seed struct {
	Author         entities.Author
	DefaultIconBg  string
	TaskCategories []string
	Icons          []entities.IconOption

	Tasks   []entities.Task
	Lessons []entities.Lesson
	Posts   []entities.Post

	Categories     []entities.Category
	Articles       []entities.Article
	Recommendation entities.Recommendation
	Moods          []entities.Mood
	TagStyles      []entities.Style
	StatusStyles   []entities.Style
}

type file struct {
	Author         author         `yaml:"author"`
	DefaultIconBg  string         `yaml:"default_icon_bg" validate:"required,hexcolor"`
	TaskCategories []string       `yaml:"task_categories" validate:"required,min=1,dive,required"`
	Icons          []icon         `yaml:"icons" validate:"required,min=1,dive"`
	Tasks          []task         `yaml:"tasks" validate:"dive"`
	Lessons        []lesson       `yaml:"lessons" validate:"dive"`
	Posts          []post         `yaml:"posts" validate:"dive"`
	Categories     []category     `yaml:"categories" validate:"dive"`
	Articles       []article      `yaml:"articles" validate:"dive"`
	Recommendation recommendation `yaml:"recommendation"`
	Moods          []mood         `yaml:"moods" validate:"dive"`
	TagStyles      []style        `yaml:"tag_styles" validate:"dive"`
	StatusStyles   []style        `yaml:"status_styles" validate:"dive"`
}

type author struct {
	Username string `yaml:"username" validate:"required"`
	Avatar   string `yaml:"avatar" validate:"required"`
	AvatarBg string `yaml:"avatar_bg" validate:"required,hexcolor"`
}

type icon struct {
	Icon string `yaml:"icon" validate:"required"`
	Bg   string `yaml:"bg" validate:"required,hexcolor"`
}

type task struct {
	ID        string `yaml:"id" validate:"required"`
	Title     string `yaml:"title" validate:"required"`
	Category  string `yaml:"category" validate:"required"`
	Icon      string `yaml:"icon" validate:"required"`
	IconBg    string `yaml:"icon_bg" validate:"required,hexcolor"`
	Completed bool   `yaml:"completed"`
}

type lesson struct {
	ID            string `yaml:"id" validate:"required"`
	Title         string `yaml:"title" validate:"required"`
	Duration      string `yaml:"duration" validate:"required"`
	Category      string `yaml:"category" validate:"required"`
	CategoryID    string `yaml:"category_id"`
	CategoryColor string `yaml:"category_color" validate:"required,hexcolor"`
	CategoryBg    string `yaml:"category_bg" validate:"required,hexcolor"`
	Status        string `yaml:"status" validate:"required,oneof=completed in-progress not-started"`
	Thumbnail     string `yaml:"thumbnail"`
	Description   string `yaml:"description"`
	WeekNumber    int    `yaml:"week_number" validate:"min=1"`
}

type comment struct {
	ID        string `yaml:"id" validate:"required"`
	Username  string `yaml:"username" validate:"required"`
	Avatar    string `yaml:"avatar"`
	AvatarBg  string `yaml:"avatar_bg" validate:"omitempty,hexcolor"`
	Text      string `yaml:"text" validate:"required"`
	Timestamp string `yaml:"timestamp"`
}

type post struct {
	ID        string    `yaml:"id" validate:"required"`
	Username  string    `yaml:"username" validate:"required"`
	Avatar    string    `yaml:"avatar"`
	AvatarBg  string    `yaml:"avatar_bg" validate:"omitempty,hexcolor"`
	Timestamp string    `yaml:"timestamp"`
	Text      string    `yaml:"text" validate:"required"`
	Tag       string    `yaml:"tag" validate:"required,oneof=All Pregnancy 'Mental Health'"`
	LikeCount int       `yaml:"like_count" validate:"min=0"`
	Liked     bool      `yaml:"liked"`
	Comments  []comment `yaml:"comments" validate:"dive"`
}

type category struct {
	ID           string `yaml:"id" validate:"required"`
	Title        string `yaml:"title" validate:"required"`
	Icon         string `yaml:"icon"`
	Color        string `yaml:"color" validate:"required,hexcolor"`
	BgColor      string `yaml:"bg_color" validate:"required,hexcolor"`
	Description  string `yaml:"description"`
	ArticleCount int    `yaml:"article_count" validate:"min=0"`
}

type article struct {
	ID       string `yaml:"id" validate:"required"`
	Title    string `yaml:"title" validate:"required"`
	ReadTime string `yaml:"read_time"`
	Tag      string `yaml:"tag" validate:"required"`
}

type recommendation struct {
	ID       string `yaml:"id" validate:"required"`
	Title    string `yaml:"title" validate:"required"`
	Subtitle string `yaml:"subtitle"`
	Category string `yaml:"category"`
	Duration string `yaml:"duration"`
	BgColor  string `yaml:"bg_color" validate:"required,hexcolor"`
	Icon     string `yaml:"icon"`
}

type mood struct {
	Label string `yaml:"label" validate:"required"`
	Emoji string `yaml:"emoji" validate:"required"`
	Color string `yaml:"color" validate:"required,hexcolor"`
	Bg    string `yaml:"bg" validate:"required,hexcolor"`
}

type style struct {
	Key   string `yaml:"key" validate:"required"`
	Label string `yaml:"label" validate:"required"`
	Color string `yaml:"color" validate:"required,hexcolor"`
	Bg    string `yaml:"bg" validate:"required,hexcolor"`
}

var validate = validator.New() // nolint:gochecknoglobals

// Default returns the embedded seed. It panics if the embedded file is broken.
func Default() *Seed {
	s, err := Load(bytes.NewReader(defaultSeed))
	if err != nil {
		panic(fmt.Errorf("embedded seed is invalid: %w", err))
	}

	return s
}

// LoadFile reads and validates a seed file.
func LoadFile(path string) (*Seed, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close() // nolint:errcheck

	return Load(f)
}

// Load decodes and validates seed data from r.
func Load(r io.Reader) (*Seed, error) {
	var f file

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to decode seed: %w", err)
	}

	if err := validate.Struct(f); err != nil {
		return nil, fmt.Errorf("invalid seed: %w", err)
	}

	if err := f.checkReferences(); err != nil {
		return nil, fmt.Errorf("invalid seed: %w", err)
	}

	return f.toSeed(), nil
}

func (f file) checkReferences() error {
	if err := unique("task", len(f.Tasks), func(i int) string { return f.Tasks[i].ID }); err != nil {
		return err
	}
	if err := unique("lesson", len(f.Lessons), func(i int) string { return f.Lessons[i].ID }); err != nil {
		return err
	}
	if err := unique("post", len(f.Posts), func(i int) string { return f.Posts[i].ID }); err != nil {
		return err
	}
	if err := unique("category", len(f.Categories), func(i int) string { return f.Categories[i].ID }); err != nil {
		return err
	}
	if err := unique("article", len(f.Articles), func(i int) string { return f.Articles[i].ID }); err != nil {
		return err
	}

	var comments []string
	for _, p := range f.Posts {
		for _, c := range p.Comments {
			comments = append(comments, c.ID)
		}
	}
	if err := unique("comment", len(comments), func(i int) string { return comments[i] }); err != nil {
		return err
	}

	categories := make(map[string]struct{}, len(f.Categories))
	for _, c := range f.Categories {
		categories[c.ID] = struct{}{}
	}
	for _, l := range f.Lessons {
		if l.CategoryID == "" {
			continue
		}
		if _, ok := categories[l.CategoryID]; !ok {
			return fmt.Errorf("lesson %s refers to unknown category %s", l.ID, l.CategoryID)
		}
	}
	for _, a := range f.Articles {
		if _, ok := categories[a.Tag]; !ok {
			return fmt.Errorf("article %s refers to unknown category %s", a.ID, a.Tag)
		}
	}

	return nil
}

func unique(kind string, n int, id func(i int) string) error {
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		v := id(i)
		if _, ok := seen[v]; ok {
			return fmt.Errorf("duplicate %s id %s", kind, v)
		}
		seen[v] = struct{}{}
	}

	return nil
}

func (f file) toSeed() *Seed {
	s := &Seed{
		Author: entities.Author{
			Username: f.Author.Username,
			Avatar:   f.Author.Avatar,
			AvatarBg: f.Author.AvatarBg,
		},
		DefaultIconBg:  f.DefaultIconBg,
		TaskCategories: append([]string(nil), f.TaskCategories...),
		Recommendation: entities.Recommendation{
			ID:       f.Recommendation.ID,
			Title:    f.Recommendation.Title,
			Subtitle: f.Recommendation.Subtitle,
			Category: f.Recommendation.Category,
			Duration: f.Recommendation.Duration,
			BgColor:  f.Recommendation.BgColor,
			Icon:     f.Recommendation.Icon,
		},
	}

	for _, v := range f.Icons {
		s.Icons = append(s.Icons, entities.IconOption{Icon: v.Icon, Bg: v.Bg})
	}

	for _, v := range f.Tasks {
		s.Tasks = append(s.Tasks, entities.Task{
			ID:        v.ID,
			Title:     v.Title,
			Category:  v.Category,
			Icon:      v.Icon,
			IconBg:    v.IconBg,
			Completed: v.Completed,
		})
	}

	for _, v := range f.Lessons {
		s.Lessons = append(s.Lessons, entities.Lesson{
			ID:            v.ID,
			Title:         v.Title,
			Duration:      v.Duration,
			Category:      v.Category,
			CategoryID:    v.CategoryID,
			CategoryColor: v.CategoryColor,
			CategoryBg:    v.CategoryBg,
			Status:        entities.LessonStatus(v.Status),
			Thumbnail:     v.Thumbnail,
			Description:   v.Description,
			WeekNumber:    v.WeekNumber,
		})
	}

	for _, v := range f.Posts {
		p := entities.Post{
			ID:        v.ID,
			Username:  v.Username,
			Avatar:    v.Avatar,
			AvatarBg:  v.AvatarBg,
			Timestamp: v.Timestamp,
			Text:      v.Text,
			Tag:       entities.Tag(v.Tag),
			LikeCount: v.LikeCount,
			Liked:     v.Liked,
		}
		for _, c := range v.Comments {
			p.Comments = append(p.Comments, entities.Comment{
				ID:        c.ID,
				Username:  c.Username,
				Avatar:    c.Avatar,
				AvatarBg:  c.AvatarBg,
				Text:      c.Text,
				Timestamp: c.Timestamp,
			})
		}
		s.Posts = append(s.Posts, p)
	}

	for _, v := range f.Categories {
		s.Categories = append(s.Categories, entities.Category{
			ID:           v.ID,
			Title:        v.Title,
			Icon:         v.Icon,
			Color:        v.Color,
			BgColor:      v.BgColor,
			Description:  v.Description,
			ArticleCount: v.ArticleCount,
		})
	}

	for _, v := range f.Articles {
		s.Articles = append(s.Articles, entities.Article{
			ID:       v.ID,
			Title:    v.Title,
			ReadTime: v.ReadTime,
			Tag:      v.Tag,
		})
	}

	for _, v := range f.Moods {
		s.Moods = append(s.Moods, entities.Mood{Label: v.Label, Emoji: v.Emoji, Color: v.Color, Bg: v.Bg})
	}

	for _, v := range f.TagStyles {
		s.TagStyles = append(s.TagStyles, entities.Style{Key: v.Key, Label: v.Label, Color: v.Color, Bg: v.Bg})
	}

	for _, v := range f.StatusStyles {
		s.StatusStyles = append(s.StatusStyles, entities.Style{Key: v.Key, Label: v.Label, Color: v.Color, Bg: v.Bg})
	}

	return s
}

// Clone returns a deep copy of the mutable session collections.
func (s *Seed) Clone() *Seed {
	c := *s
	c.Tasks = append([]entities.Task(nil), s.Tasks...)
	c.Lessons = append([]entities.Lesson(nil), s.Lessons...)
	c.Posts = make([]entities.Post, len(s.Posts))
	for i, p := range s.Posts {
		c.Posts[i] = p.Clone()
	}

	return &c
}

// Snapshot returns a deep copy of the mutable session collections.
func (s *Seed) Snapshot() storage.Snapshot {
	c := s.Clone()

	return storage.Snapshot{
		Tasks:   c.Tasks,
		Lessons: c.Lessons,
		Posts:   c.Posts,
	}
}
