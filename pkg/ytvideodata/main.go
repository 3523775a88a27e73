// Package ytvideodata looks up public metadata of a streaming video by id.
package ytvideodata

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const (
	defaultOEmbedURL    = "https://www.youtube.com/oembed"
	defaultWatchURL     = "https://www.youtube.com/watch"
	defaultPageURL      = "https://youtu.be/"
	defaultThumbnailURL = "https://i.ytimg.com/vi/%s/hqdefault.jpg"
	defaultTimeout      = 5 * time.Second
)

type VideoData struct {
	Title        string `json:"title"`
	AuthorName   string `json:"author_name"`
	ThumbnailUrl string `json:"thumbnail_url"`
}

type Client struct {
	http         *http.Client
	oembedURL    string
	watchURL     string
	pageURL      string
	thumbnailURL string
}

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.http = c
	}
}

// WithBaseURL points both the oEmbed endpoint and the page fallback at base.
func WithBaseURL(base string) Option {
	return func(cl *Client) {
		cl.oembedURL = base + "/oembed"
		cl.pageURL = base + "/"
	}
}

func NewClient(opts ...Option) *Client {
	c := &Client{
		http:         &http.Client{Timeout: defaultTimeout},
		oembedURL:    defaultOEmbedURL,
		watchURL:     defaultWatchURL,
		pageURL:      defaultPageURL,
		thumbnailURL: defaultThumbnailURL,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Get asks oEmbed first and scrapes the watch page when the video refuses
// embedding.
func (c *Client) Get(ctx context.Context, videoID string) (*VideoData, error) {
	videoData, err := c.getWithEmbed(ctx, videoID)
	if err != nil {
		if !errors.Is(err, ErrVideoNotEmbeddable) {
			return nil, fmt.Errorf("failed to get video data with embed: %w", err)
		}

		videoData, err = c.getFromPage(ctx, videoID)
		if err != nil {
			return nil, fmt.Errorf("failed to get video data from page: %w", err)
		}
	}

	return videoData, nil
}
