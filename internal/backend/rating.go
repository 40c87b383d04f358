package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nguyenedu/truyen-fe/internal/model"
)

func ratingBody(storyID int64, rating int, review string) map[string]any {
	body := map[string]any{
		"storyId": storyID,
		"rating":  rating,
	}
	if review != "" {
		body["review"] = review
	}
	return body
}

func (c *Client) RateStory(ctx context.Context, storyID int64, rating int, review string) (model.Rating, error) {
	return request[model.Rating](ctx, c, http.MethodPost, "/api/ratings", nil, ratingBody(storyID, rating, review))
}

func (c *Client) UpdateRating(ctx context.Context, storyID int64, rating int, review string) (model.Rating, error) {
	return request[model.Rating](ctx, c, http.MethodPut, fmt.Sprintf("/api/ratings/%d", storyID), nil, ratingBody(storyID, rating, review))
}

func (c *Client) DeleteRating(ctx context.Context, storyID int64) error {
	_, err := c.call(ctx, http.MethodDelete, fmt.Sprintf("/api/ratings/%d", storyID), nil, nil)
	return err
}

// MyRating returns the current user's rating of the story.
func (c *Client) MyRating(ctx context.Context, storyID int64) (model.Rating, error) {
	return get[model.Rating](ctx, c, fmt.Sprintf("/api/ratings/my/%d", storyID), nil)
}

// StoryRating returns the story's aggregate rating.
func (c *Client) StoryRating(ctx context.Context, storyID int64) (model.RatingSummary, error) {
	return get[model.RatingSummary](ctx, c, fmt.Sprintf("/api/ratings/story/%d", storyID), nil)
}
