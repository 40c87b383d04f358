package model

// Story status values as the backend reports them.
const (
	StoryOngoing   = "ONGOING"
	StoryCompleted = "COMPLETED"
	StoryPaused    = "PAUSED"
)

type Story struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	CoverImage    string     `json:"coverImage"`
	Status        string     `json:"status"`
	AuthorID      int64      `json:"authorId"`
	AuthorName    string     `json:"authorName"`
	Categories    []Category `json:"categories"`
	TotalChapters int64      `json:"totalChapters"`
	TotalViews    int64      `json:"totalViews"`
	AverageRating float64    `json:"averageRating"`
	CreatedAt     string     `json:"createdAt"`
	UpdatedAt     string     `json:"updatedAt"`
}

type Chapter struct {
	ID            int64  `json:"id"`
	StoryID       int64  `json:"storyId"`
	ChapterNumber int64  `json:"chapterNumber"`
	Title         string `json:"title"`
	Content       string `json:"content"`
	CreatedAt     string `json:"createdAt"`
}

type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Author struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Bio      string `json:"bio"`
	Avatar   string `json:"avatar"`
	StoryNum int64  `json:"storyCount"`
}

type Comment struct {
	ID        int64  `json:"id"`
	StoryID   int64  `json:"storyId"`
	ChapterID *int64 `json:"chapterId"`
	UserID    int64  `json:"userId"`
	Username  string `json:"username"`
	Avatar    string `json:"avatar"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
}

type Rating struct {
	ID      int64  `json:"id"`
	StoryID int64  `json:"storyId"`
	Rating  int    `json:"rating"`
	Review  string `json:"review"`
}

// RatingSummary is the aggregate the backend returns per story.
type RatingSummary struct {
	AverageRating float64 `json:"averageRating"`
	RatingCount   int64   `json:"ratingCount"`
}

// HistoryEntry records the last chapter a reader reached in a story.
type HistoryEntry struct {
	ID            int64   `json:"id"`
	StoryID       int64   `json:"storyId"`
	StoryTitle    string  `json:"storyTitle"`
	CoverImage    string  `json:"coverImage"`
	ChapterID     int64   `json:"chapterId"`
	ChapterNumber int64   `json:"chapterNumber"`
	ReadAt        string  `json:"readAt"`
}
