package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nguyenedu/truyen-fe/internal/model"
)

func (c *Client) StoryComments(ctx context.Context, storyID int64, page, size int) (Page[model.Comment], error) {
	if size <= 0 {
		size = 10
	}
	return get[Page[model.Comment]](ctx, c, fmt.Sprintf("/api/comments/story/%d", storyID), pageQuery(page, size))
}

func (c *Client) ChapterComments(ctx context.Context, chapterID int64, page, size int) (Page[model.Comment], error) {
	if size <= 0 {
		size = 10
	}
	return get[Page[model.Comment]](ctx, c, fmt.Sprintf("/api/comments/chapter/%d", chapterID), pageQuery(page, size))
}

// CreateComment posts a comment on a story, or on a chapter when
// chapterID is non-nil.
func (c *Client) CreateComment(ctx context.Context, storyID int64, chapterID *int64, content string) (model.Comment, error) {
	body := map[string]any{
		"storyId": storyID,
		"content": content,
	}
	if chapterID != nil {
		body["chapterId"] = *chapterID
	}
	return request[model.Comment](ctx, c, http.MethodPost, "/api/comments", nil, body)
}

func (c *Client) UpdateComment(ctx context.Context, id int64, content string) (model.Comment, error) {
	return request[model.Comment](ctx, c, http.MethodPut, fmt.Sprintf("/api/comments/%d", id), nil, map[string]string{
		"content": content,
	})
}

func (c *Client) DeleteComment(ctx context.Context, id int64) error {
	_, err := c.call(ctx, http.MethodDelete, fmt.Sprintf("/api/comments/%d", id), nil, nil)
	return err
}

func (c *Client) StoryCommentCount(ctx context.Context, storyID int64) (int64, error) {
	return get[int64](ctx, c, fmt.Sprintf("/api/comments/count/story/%d", storyID), nil)
}

func (c *Client) ChapterCommentCount(ctx context.Context, chapterID int64) (int64, error) {
	return get[int64](ctx, c, fmt.Sprintf("/api/comments/count/chapter/%d", chapterID), nil)
}
