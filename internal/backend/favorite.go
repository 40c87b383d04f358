package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nguyenedu/truyen-fe/internal/model"
)

func (c *Client) Favorites(ctx context.Context, page, size int) (Page[model.Story], error) {
	if size <= 0 {
		size = 10
	}
	return get[Page[model.Story]](ctx, c, "/api/favorites", pageQuery(page, size))
}

// CheckFavorite reports whether the current user has favorited the story.
func (c *Client) CheckFavorite(ctx context.Context, storyID int64) (bool, error) {
	return get[bool](ctx, c, fmt.Sprintf("/api/favorites/check/%d", storyID), nil)
}

func (c *Client) AddFavorite(ctx context.Context, storyID int64) error {
	_, err := c.call(ctx, http.MethodPost, fmt.Sprintf("/api/favorites/%d", storyID), nil, nil)
	return err
}

func (c *Client) RemoveFavorite(ctx context.Context, storyID int64) error {
	_, err := c.call(ctx, http.MethodDelete, fmt.Sprintf("/api/favorites/%d", storyID), nil, nil)
	return err
}

func (c *Client) FavoriteCount(ctx context.Context, storyID int64) (int64, error) {
	return get[int64](ctx, c, fmt.Sprintf("/api/favorites/count/%d", storyID), nil)
}
