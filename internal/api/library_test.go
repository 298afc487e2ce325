package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const recentlyPlayedBody = `{
	"data": [
		{
			"id": "song-1",
			"type": "songs",
			"attributes": {
				"name": "First Song",
				"artistName": "Some Artist",
				"albumName": "Some Album",
				"durationInMillis": 180000,
				"artwork": {"url": "https://img.example/{w}x{h}.jpg", "width": 3000, "height": 3000}
			}
		},
		{
			"id": "song-2",
			"type": "songs",
			"attributes": {"name": "Second Song", "artistName": "Other Artist"}
		}
	]
}`

func TestRecentlyPlayed(t *testing.T) {
	var gotURL string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotURL = r.URL.String()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(recentlyPlayedBody))
	}))
	defer srv.Close()

	c := New(srv.URL, "dev", "user", "us")
	items, err := c.RecentlyPlayed(context.Background(), 10)
	require.NoError(t, err)

	assert.Equal(t, "/v1/me/recent/played?limit=10", gotURL)
	require.Len(t, items, 2)
	assert.Equal(t, "song-1", items[0].ID)
	assert.Equal(t, "First Song", items[0].Title)
	assert.Equal(t, "Some Artist", items[0].Artist)
	assert.Equal(t, 180.0, items[0].Duration)
	assert.Equal(t, "https://img.example/300x300.jpg", items[0].ArtworkURL)
}

func TestSearchUsesStorefront(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results": {"songs": {"data": [{"id": "s1", "attributes": {"name": "Hit"}}]}}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "dev", "user", "gb")
	items, err := c.SearchItems(context.Background(), "hit", 5)
	require.NoError(t, err)

	assert.Equal(t, "/v1/catalog/gb/search", gotPath)
	require.Len(t, items, 1)
	assert.Equal(t, "Hit", items[0].Title)
}

func TestSearchEmptyTerm(t *testing.T) {
	c := New("http://unused", "dev", "user", "us")
	_, err := c.Search(context.Background(), SearchOptions{})
	assert.Error(t, err)
}

func TestFetchByPathPassesThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": [], "meta": {"total": 0}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "dev", "user", "us")
	raw, err := c.FetchByPath(context.Background(), "/v1/me/library/albums")
	require.NoError(t, err)
	assert.JSONEq(t, `{"data": [], "meta": {"total": 0}}`, string(raw))
}

func TestGetErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"errors": [{"title": "Unauthorized", "detail": "Developer token expired"}]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "dev", "user", "us")
	_, err := c.Recommendations(context.Background())

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Developer token expired", apiErr.Detail)
}
