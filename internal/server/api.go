package server

import (
	"github.com/wellness-hub/wellness/internal/actions"
	"github.com/wellness-hub/wellness/internal/entities"
	"github.com/wellness-hub/wellness/internal/progress"
	"github.com/wellness-hub/wellness/internal/service"
)

// Error ...
// swagger:model
type Error struct {
	Error string `json:"error"`
}

// Task ...
// swagger:model
type Task struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Category  string `json:"category"`
	Icon      string `json:"icon"`
	IconBg    string `json:"iconBg"`
	Completed bool   `json:"completed"`
}

// TaskProgress ...
type TaskProgress struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	Remaining  int `json:"remaining"`
	Percentage int `json:"percentage"`
}

// ListTasksResponse ...
// swagger:model
type ListTasksResponse struct {
	Tasks    []Task       `json:"tasks"`
	Progress TaskProgress `json:"progress"`
}

// AddTaskRequest ...
// swagger:model
type AddTaskRequest struct {
	Title    string `json:"title" validate:"max=200"`
	Category string `json:"category" validate:"max=64"`
	Icon     string `json:"icon" validate:"max=32"`
}

// Lesson ...
// swagger:model
type Lesson struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Duration      string `json:"duration"`
	Category      string `json:"category"`
	CategoryID    string `json:"categoryId,omitempty"`
	CategoryColor string `json:"categoryColor"`
	CategoryBg    string `json:"categoryBg"`
	Status        string `json:"status"`
	Thumbnail     string `json:"thumbnail"`
	Description   string `json:"description"`
	WeekNumber    int    `json:"weekNumber"`
}

// LessonSummary ...
type LessonSummary struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	InProgress int `json:"inProgress"`
	Upcoming   int `json:"upcoming"`
	Percentage int `json:"percentage"`
}

// ListLessonsResponse ...
// swagger:model
type ListLessonsResponse struct {
	Lessons []Lesson      `json:"lessons"`
	Summary LessonSummary `json:"summary"`
}

// GetLessonResponse ...
// swagger:model
type GetLessonResponse struct {
	Lesson      Lesson `json:"lesson"`
	StatusStyle *Style `json:"statusStyle,omitempty"`
}

// Comment ...
type Comment struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Avatar    string `json:"avatar"`
	AvatarBg  string `json:"avatarBg"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

// Post ...
// swagger:model
type Post struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Avatar       string    `json:"avatar"`
	AvatarBg     string    `json:"avatarBg"`
	Timestamp    string    `json:"timestamp"`
	Text         string    `json:"text"`
	Tag          string    `json:"tag"`
	LikeCount    int       `json:"likeCount"`
	CommentCount int       `json:"commentCount"`
	Liked        bool      `json:"liked"`
	Comments     []Comment `json:"comments"`
}

// AddPostRequest ...
// swagger:model
type AddPostRequest struct {
	Text string `json:"text" validate:"max=2000"`
	Tag  string `json:"tag" validate:"max=32"`
}

// AddCommentRequest ...
// swagger:model
type AddCommentRequest struct {
	Text string `json:"text" validate:"max=1000"`
}

// Category ...
// swagger:model
type Category struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Icon         string `json:"icon"`
	Color        string `json:"color"`
	BgColor      string `json:"bgColor"`
	Description  string `json:"description"`
	ArticleCount int    `json:"articleCount"`
}

// Article ...
// swagger:model
type Article struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	ReadTime string `json:"readTime"`
	Tag      string `json:"tag"`
}

// CategoryDetailResponse ...
// swagger:model
type CategoryDetailResponse struct {
	Category       Category  `json:"category"`
	RelatedLessons []Lesson  `json:"relatedLessons"`
	Articles       []Article `json:"articles"`
}

// Style ...
type Style struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Color string `json:"color"`
	Bg    string `json:"bg"`
}

// IconOption ...
type IconOption struct {
	Icon string `json:"icon"`
	Bg   string `json:"bg"`
}

// StylesResponse ...
// swagger:model
type StylesResponse struct {
	TagColors      []Style      `json:"tagColors"`
	StatusStyles   []Style      `json:"statusStyles"`
	Icons          []IconOption `json:"icons"`
	TaskCategories []string     `json:"taskCategories"`
}

// Recommendation ...
type Recommendation struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Category string `json:"category"`
	Duration string `json:"duration"`
	BgColor  string `json:"bgColor"`
	Icon     string `json:"icon"`
}

// Mood ...
type Mood struct {
	Label string `json:"label"`
	Emoji string `json:"emoji"`
	Color string `json:"color"`
	Bg    string `json:"bg"`
}

// HomeResponse ...
// swagger:model
type HomeResponse struct {
	WellnessScore  int            `json:"wellnessScore"`
	Tasks          TaskProgress   `json:"tasks"`
	Recommendation Recommendation `json:"recommendation"`
	Moods          []Mood         `json:"moods"`
	Categories     []Category     `json:"categories"`
}

// ActionsRequest ...
// swagger:model
type ActionsRequest struct {
	Actions []actions.Action `json:"actions" validate:"required,min=1,max=100,dive"`
}

// ActionResult ...
type ActionResult struct {
	Type   actions.Type `json:"type"`
	Task   *Task        `json:"task,omitempty"`
	Lesson *Lesson      `json:"lesson,omitempty"`
	Post   *Post        `json:"post,omitempty"`
}

// ActionsResponse ...
// swagger:model
type ActionsResponse struct {
	Results []ActionResult `json:"results"`
}

func toAPITask(t *entities.Task) Task {
	return Task{
		ID:        t.ID,
		Title:     t.Title,
		Category:  t.Category,
		Icon:      t.Icon,
		IconBg:    t.IconBg,
		Completed: t.Completed,
	}
}

func toAPITasks(tasks []*entities.Task) []Task {
	out := make([]Task, len(tasks))
	for i, v := range tasks {
		out[i] = toAPITask(v)
	}
	return out
}

func toAPITaskProgress(p progress.TaskProgress) TaskProgress {
	return TaskProgress{
		Total:      p.Total,
		Completed:  p.Completed,
		Remaining:  p.Remaining,
		Percentage: p.Percentage,
	}
}

func toAPILesson(l *entities.Lesson) Lesson {
	return Lesson{
		ID:            l.ID,
		Title:         l.Title,
		Duration:      l.Duration,
		Category:      l.Category,
		CategoryID:    l.CategoryID,
		CategoryColor: l.CategoryColor,
		CategoryBg:    l.CategoryBg,
		Status:        string(l.Status),
		Thumbnail:     l.Thumbnail,
		Description:   l.Description,
		WeekNumber:    l.WeekNumber,
	}
}

func toAPILessons(lessons []*entities.Lesson) []Lesson {
	out := make([]Lesson, len(lessons))
	for i, v := range lessons {
		out[i] = toAPILesson(v)
	}
	return out
}

func toAPILessonSummary(s progress.LessonSummary) LessonSummary {
	return LessonSummary{
		Total:      s.Total,
		Completed:  s.Completed,
		InProgress: s.InProgress,
		Upcoming:   s.Upcoming,
		Percentage: s.Percentage,
	}
}

func toAPIPost(p *entities.Post) Post {
	out := Post{
		ID:           p.ID,
		Username:     p.Username,
		Avatar:       p.Avatar,
		AvatarBg:     p.AvatarBg,
		Timestamp:    p.Timestamp,
		Text:         p.Text,
		Tag:          string(p.Tag),
		LikeCount:    p.LikeCount,
		CommentCount: p.CommentCount(),
		Liked:        p.Liked,
		Comments:     make([]Comment, len(p.Comments)),
	}
	for i, c := range p.Comments {
		out.Comments[i] = Comment{
			ID:        c.ID,
			Username:  c.Username,
			Avatar:    c.Avatar,
			AvatarBg:  c.AvatarBg,
			Text:      c.Text,
			Timestamp: c.Timestamp,
		}
	}
	return out
}

func toAPIPosts(posts []*entities.Post) []Post {
	out := make([]Post, len(posts))
	for i, v := range posts {
		out[i] = toAPIPost(v)
	}
	return out
}

func toAPICategory(c entities.Category) Category {
	return Category{
		ID:           c.ID,
		Title:        c.Title,
		Icon:         c.Icon,
		Color:        c.Color,
		BgColor:      c.BgColor,
		Description:  c.Description,
		ArticleCount: c.ArticleCount,
	}
}

func toAPICategories(categories []entities.Category) []Category {
	out := make([]Category, len(categories))
	for i, v := range categories {
		out[i] = toAPICategory(v)
	}
	return out
}

func toAPIArticles(articles []entities.Article) []Article {
	out := make([]Article, len(articles))
	for i, v := range articles {
		out[i] = Article{ID: v.ID, Title: v.Title, ReadTime: v.ReadTime, Tag: v.Tag}
	}
	return out
}

func toAPIStyles(styles []entities.Style) []Style {
	out := make([]Style, len(styles))
	for i, v := range styles {
		out[i] = Style{Key: v.Key, Label: v.Label, Color: v.Color, Bg: v.Bg}
	}
	return out
}

func toAPIStylesResponse(s *service.Styles) StylesResponse {
	out := StylesResponse{
		TagColors:      toAPIStyles(s.TagColors),
		StatusStyles:   toAPIStyles(s.StatusStyles),
		Icons:          make([]IconOption, len(s.Icons)),
		TaskCategories: append([]string{}, s.TaskCategories...),
	}
	for i, v := range s.Icons {
		out.Icons[i] = IconOption{Icon: v.Icon, Bg: v.Bg}
	}
	return out
}

func toAPIHome(h *service.Home) HomeResponse {
	out := HomeResponse{
		WellnessScore: h.WellnessScore,
		Tasks:         toAPITaskProgress(h.Tasks),
		Recommendation: Recommendation{
			ID:       h.Recommendation.ID,
			Title:    h.Recommendation.Title,
			Subtitle: h.Recommendation.Subtitle,
			Category: h.Recommendation.Category,
			Duration: h.Recommendation.Duration,
			BgColor:  h.Recommendation.BgColor,
			Icon:     h.Recommendation.Icon,
		},
		Moods:      make([]Mood, len(h.Moods)),
		Categories: toAPICategories(h.Categories),
	}
	for i, v := range h.Moods {
		out.Moods[i] = Mood{Label: v.Label, Emoji: v.Emoji, Color: v.Color, Bg: v.Bg}
	}
	return out
}

func toAPIActionResult(t actions.Type, r actions.Result) ActionResult {
	out := ActionResult{Type: t}
	if r.Task != nil {
		v := toAPITask(r.Task)
		out.Task = &v
	}
	if r.Lesson != nil {
		v := toAPILesson(r.Lesson)
		out.Lesson = &v
	}
	if r.Post != nil {
		v := toAPIPost(r.Post)
		out.Post = &v
	}
	return out
}
