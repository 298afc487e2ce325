package api

import (
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/tessro/cadence/internal/core"
)

// Resource is one entry in a response envelope. Attributes beyond the ones
// the sync layer displays pass through untouched.
type Resource struct {
	ID         string             `json:"id"`
	Type       string             `json:"type"`
	Href       string             `json:"href"`
	Attributes ResourceAttributes `json:"attributes"`
}

// ResourceAttributes is the subset of catalog attributes the client reads.
type ResourceAttributes struct {
	Name             string  `json:"name"`
	ArtistName       string  `json:"artistName"`
	AlbumName        string  `json:"albumName"`
	DurationInMillis float64 `json:"durationInMillis"`
	Artwork          Artwork `json:"artwork"`
}

// Artwork describes a sized artwork URL template.
type Artwork struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// envelope is the standard {data: [...]} response wrapper.
type envelope struct {
	Data []Resource `json:"data"`
	Next string     `json:"next"`
}

// MediaItem converts a resource to the local item type.
func (r Resource) MediaItem() core.MediaItem {
	return core.MediaItem{
		ID:         r.ID,
		Title:      r.Attributes.Name,
		Artist:     r.Attributes.ArtistName,
		Album:      r.Attributes.AlbumName,
		ArtworkURL: artworkURL(r.Attributes.Artwork, 300),
		Duration:   r.Attributes.DurationInMillis / 1000,
	}
}

func toItems(resources []Resource) []core.MediaItem {
	return lo.Map(resources, func(r Resource, _ int) core.MediaItem {
		return r.MediaItem()
	})
}

// artworkURL resolves the {w}x{h} placeholders in an artwork template.
func artworkURL(a Artwork, size int) string {
	if a.URL == "" {
		return ""
	}
	s := strings.ReplaceAll(a.URL, "{w}", strconv.Itoa(size))
	return strings.ReplaceAll(s, "{h}", strconv.Itoa(size))
}
