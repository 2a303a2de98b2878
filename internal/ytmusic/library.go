package ytmusic

import (
	"context"
	"fmt"
)

// browseCachePrefix covers every cached browse page. Mutations invalidate
// the whole prefix so the next read of any collection reflects the change.
const browseCachePrefix = "browse:"

// ratingEndpoint maps a rating onto its endpoint; the service models
// "remove rating" as an endpoint of its own rather than a parameter.
func ratingEndpoint(r Rating) (string, error) {
	switch r {
	case RatingLike:
		return "like/like", nil
	case RatingDislike:
		return "like/dislike", nil
	case RatingNone:
		return "like/removelike", nil
	default:
		return "", fmt.Errorf("unknown rating %q", r)
	}
}

// Rate sets or clears the thumb rating on a track, then drops every cached
// browse page.
func (c *Client) Rate(ctx context.Context, videoID string, rating Rating) error {
	if videoID == "" {
		return fmt.Errorf("rate: empty video id")
	}
	endpoint, err := ratingEndpoint(rating)
	if err != nil {
		return err
	}
	body := map[string]any{"target": map[string]any{"videoId": videoID}}
	if _, err := c.execute(ctx, endpoint, body, 0); err != nil {
		return err
	}
	c.cache.Invalidate(browseCachePrefix)
	return nil
}

// EditLibrary adds a track to or removes it from the library, using a
// feedback token parsed off a row's menu (Song.Feedback).
func (c *Client) EditLibrary(ctx context.Context, feedbackToken string) error {
	if feedbackToken == "" {
		return fmt.Errorf("edit library: empty feedback token")
	}
	body := map[string]any{"feedbackTokens": []any{feedbackToken}}
	if _, err := c.execute(ctx, "feedback", body, 0); err != nil {
		return err
	}
	c.cache.Invalidate(browseCachePrefix)
	return nil
}
