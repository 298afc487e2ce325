package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/tessro/cadence/internal/core"
)

// ratingRequest is the write body for the ratings endpoint.
type ratingRequest struct {
	Type       string           `json:"type"`
	Attributes ratingAttributes `json:"attributes"`
}

type ratingAttributes struct {
	Value int `json:"value"`
}

// Rate writes a rating value for the item. Exactly HTTP 200 is success; any
// other status is returned as *Error, and transport failures pass through
// unchanged. The client never retries — the caller owns retry policy.
func (c *Client) Rate(ctx context.Context, item core.MediaItem, value int) error {
	body := ratingRequest{
		Type:       "rating",
		Attributes: ratingAttributes{Value: value},
	}

	status, respBody, err := c.do(ctx, http.MethodPut, "/v1/me/ratings/songs/"+url.PathEscape(item.ID), body)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return newError(status, respBody)
	}
	return nil
}

// Love rates the item +1.
func (c *Client) Love(ctx context.Context, item core.MediaItem) error {
	return c.Rate(ctx, item, 1)
}

// Dislike rates the item -1.
func (c *Client) Dislike(ctx context.Context, item core.MediaItem) error {
	return c.Rate(ctx, item, -1)
}
