package backend

import (
	"context"
	"fmt"

	"github.com/nguyenedu/truyen-fe/internal/model"
)

func (c *Client) ChaptersByStory(ctx context.Context, storyID int64) ([]model.Chapter, error) {
	return get[[]model.Chapter](ctx, c, fmt.Sprintf("/api/chapters/story/%d", storyID), nil)
}

func (c *Client) Chapter(ctx context.Context, id int64) (model.Chapter, error) {
	return get[model.Chapter](ctx, c, fmt.Sprintf("/api/chapters/%d", id), nil)
}
