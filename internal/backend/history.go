package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nguyenedu/truyen-fe/internal/model"
)

func (c *Client) ReadingHistory(ctx context.Context, page, size int) (Page[model.HistoryEntry], error) {
	if size <= 0 {
		size = 10
	}
	return get[Page[model.HistoryEntry]](ctx, c, "/api/reading-history", pageQuery(page, size))
}

func (c *Client) StoryHistory(ctx context.Context, storyID int64) (model.HistoryEntry, error) {
	return get[model.HistoryEntry](ctx, c, fmt.Sprintf("/api/reading-history/story/%d", storyID), nil)
}

// SaveHistory records that the reader reached the chapter.
func (c *Client) SaveHistory(ctx context.Context, storyID, chapterID int64) error {
	_, err := c.call(ctx, http.MethodPost, fmt.Sprintf("/api/reading-history/story/%d/chapter/%d", storyID, chapterID), nil, nil)
	return err
}

func (c *Client) DeleteStoryHistory(ctx context.Context, storyID int64) error {
	_, err := c.call(ctx, http.MethodDelete, fmt.Sprintf("/api/reading-history/story/%d", storyID), nil, nil)
	return err
}

func (c *Client) ClearHistory(ctx context.Context) error {
	_, err := c.call(ctx, http.MethodDelete, "/api/reading-history/all", nil, nil)
	return err
}
