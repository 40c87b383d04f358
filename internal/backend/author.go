package backend

import (
	"context"
	"fmt"

	"github.com/nguyenedu/truyen-fe/internal/model"
)

func (c *Client) Author(ctx context.Context, id int64) (model.Author, error) {
	return get[model.Author](ctx, c, fmt.Sprintf("/api/authors/%d", id), nil)
}

func (c *Client) StoriesByAuthor(ctx context.Context, authorID int64) ([]model.Story, error) {
	return get[[]model.Story](ctx, c, fmt.Sprintf("/api/stories/author/%d", authorID), nil)
}
