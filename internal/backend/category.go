package backend

import (
	"context"
	"fmt"

	"github.com/nguyenedu/truyen-fe/internal/model"
)

func (c *Client) Categories(ctx context.Context, page, size int) (Page[model.Category], error) {
	if size <= 0 {
		size = 20
	}
	return get[Page[model.Category]](ctx, c, "/api/categories", pageQuery(page, size))
}

func (c *Client) Category(ctx context.Context, id int64) (model.Category, error) {
	return get[model.Category](ctx, c, fmt.Sprintf("/api/categories/%d", id), nil)
}
