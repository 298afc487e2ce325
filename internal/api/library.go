package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/tessro/cadence/internal/core"
)

// Recommendations returns the user's personal recommendations.
func (c *Client) Recommendations(ctx context.Context) ([]core.MediaItem, error) {
	var resp envelope
	if err := c.Get(ctx, "/v1/me/recommendations", &resp); err != nil {
		return nil, err
	}
	return toItems(resp.Data), nil
}

// RecentlyAdded returns the newest additions to the user's library.
func (c *Client) RecentlyAdded(ctx context.Context, limit int) ([]core.MediaItem, error) {
	return c.itemList(ctx, "/v1/me/library/recently-added", limit)
}

// RecentlyPlayed returns the user's recently played resources.
func (c *Client) RecentlyPlayed(ctx context.Context, limit int) ([]core.MediaItem, error) {
	return c.itemList(ctx, "/v1/me/recent/played", limit)
}

// HeavyRotation returns the resources the user has been playing most.
func (c *Client) HeavyRotation(ctx context.Context, limit int) ([]core.MediaItem, error) {
	return c.itemList(ctx, "/v1/me/history/heavy-rotation", limit)
}

func (c *Client) itemList(ctx context.Context, path string, limit int) ([]core.MediaItem, error) {
	params := make(map[string]string)
	if limit > 0 {
		params["limit"] = strconv.Itoa(limit)
	}
	var resp envelope
	if err := c.Get(ctx, BuildURL(path, params), &resp); err != nil {
		return nil, err
	}
	return toItems(resp.Data), nil
}

// SearchOptions configures a catalog search.
type SearchOptions struct {
	Term  string
	Types []string
	Limit int
}

// SearchResponse groups search hits by resource type.
type SearchResponse struct {
	Results map[string]struct {
		Data []Resource `json:"data"`
	} `json:"results"`
}

// Search queries the storefront catalog.
func (c *Client) Search(ctx context.Context, opts SearchOptions) (*SearchResponse, error) {
	if opts.Term == "" {
		return nil, fmt.Errorf("search term cannot be empty")
	}

	types := opts.Types
	if len(types) == 0 {
		types = []string{"songs"}
	}

	params := map[string]string{
		"term":  opts.Term,
		"types": strings.Join(types, ","),
	}
	if opts.Limit > 0 {
		params["limit"] = strconv.Itoa(opts.Limit)
	}

	path := "/v1/catalog/" + url.PathEscape(c.storefront) + "/search"
	var resp SearchResponse
	if err := c.Get(ctx, BuildURL(path, params), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SearchItems is Search narrowed to song results.
func (c *Client) SearchItems(ctx context.Context, term string, limit int) ([]core.MediaItem, error) {
	resp, err := c.Search(ctx, SearchOptions{Term: term, Limit: limit})
	if err != nil {
		return nil, err
	}
	songs, ok := resp.Results["songs"]
	if !ok {
		return nil, nil
	}
	return toItems(songs.Data), nil
}

// Collection fetches a catalog collection (album, playlist, station) by
// kind and id.
func (c *Client) Collection(ctx context.Context, kind, id string) ([]core.MediaItem, error) {
	path := "/v1/catalog/" + url.PathEscape(c.storefront) + "/" + url.PathEscape(kind) + "/" + url.PathEscape(id)
	var resp envelope
	if err := c.Get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return toItems(resp.Data), nil
}

// FetchByPath performs a raw GET against an arbitrary API path and returns
// the undecoded payload, for callers that pass resources through unchanged.
func (c *Client) FetchByPath(ctx context.Context, path string) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.Get(ctx, path, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}
