// Package entities contains main entities of service.
package entities

// Task is a daily wellness task.
type Task struct {
	ID        string
	Title     string
	Category  string
	Icon      string
	IconBg    string
	Completed bool
}

// LessonStatus is a tri-state progress marker of a lesson.
type LessonStatus string

const (
	// LessonCompleted ...
	LessonCompleted LessonStatus = "completed"
	// LessonInProgress ...
	LessonInProgress LessonStatus = "in-progress"
	// LessonNotStarted ...
	LessonNotStarted LessonStatus = "not-started"
)

// LessonStatuses lists every known status in display order.
var LessonStatuses = []LessonStatus{LessonCompleted, LessonInProgress, LessonNotStarted} // nolint:gochecknoglobals

// Valid reports whether s is one of the known statuses.
func (s LessonStatus) Valid() bool {
	switch s {
	case LessonCompleted, LessonInProgress, LessonNotStarted:
		return true
	default:
		return false
	}
}

// Lesson ...
type Lesson struct {
	ID            string
	Title         string
	Duration      string
	Category      string
	CategoryID    string
	CategoryColor string
	CategoryBg    string
	Status        LessonStatus
	Thumbnail     string
	Description   string
	WeekNumber    int
}

// Tag partitions community posts into topical groups.
type Tag string

const (
	// TagAll is also the "no filter" pseudo-tag when used as a filter.
	TagAll Tag = "All"
	// TagPregnancy ...
	TagPregnancy Tag = "Pregnancy"
	// TagMentalHealth ...
	TagMentalHealth Tag = "Mental Health"
)

// Tags lists every known tag in display order.
var Tags = []Tag{TagAll, TagPregnancy, TagMentalHealth} // nolint:gochecknoglobals

// Valid reports whether t is one of the known tags.
func (t Tag) Valid() bool {
	switch t {
	case TagAll, TagPregnancy, TagMentalHealth:
		return true
	default:
		return false
	}
}

// Post is a community post. It owns its comments.
type Post struct {
	ID        string
	Username  string
	Avatar    string
	AvatarBg  string
	Timestamp string
	Text      string
	Tag       Tag
	LikeCount int
	Liked     bool
	Comments  []Comment
}

// CommentCount is derived from the comment list.
func (p Post) CommentCount() int {
	return len(p.Comments)
}

// Clone returns a deep copy of the post.
func (p Post) Clone() Post {
	if p.Comments != nil {
		c := make([]Comment, len(p.Comments))
		copy(c, p.Comments)
		p.Comments = c
	}

	return p
}

// Comment ...
type Comment struct {
	ID        string
	Username  string
	Avatar    string
	AvatarBg  string
	Text      string
	Timestamp string
}

// Author is the identity attached to posts and comments created in a session.
type Author struct {
	Username string
	Avatar   string
	AvatarBg string
}

// Category is read-only reference data.
type Category struct {
	ID           string
	Title        string
	Icon         string
	Color        string
	BgColor      string
	Description  string
	ArticleCount int
}

// Article belongs to a category through its Tag, which is a category id.
type Article struct {
	ID       string
	Title    string
	ReadTime string
	Tag      string
}

// Recommendation is the daily recommendation shown on the home screen.
type Recommendation struct {
	ID       string
	Title    string
	Subtitle string
	Category string
	Duration string
	BgColor  string
	Icon     string
}

// Mood ...
type Mood struct {
	Label string
	Emoji string
	Color string
	Bg    string
}

// Style is a display color pair keyed by a tag or a lesson status.
type Style struct {
	Key   string
	Label string
	Color string
	Bg    string
}

// IconOption maps a task icon to its background color.
type IconOption struct {
	Icon string
	Bg   string
}
